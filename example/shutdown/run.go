package main

import (
	uatomic "atomic-toolkit/util/atomic"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

type result struct {
	Winners  int
	Reason   string
	Cleanups int
	Rearmed  bool
}

type shutdown struct {
	requested uatomic.Bool
	published uatomic.Bool
	cleaned   uatomic.Bool

	// Written only by the goroutine that wins requested, read only after
	// published is observed true.
	reason string

	winners  int32
	cleanups int32
}

func run(cfg Config) result {
	cfg = sanitizeConfig(cfg)
	s := &shutdown{}

	observed := make(chan string, 1)
	go s.observeRoutine(observed)

	wg := &sync.WaitGroup{}
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go s.workerRoutine(wg, i)
	}
	wg.Wait()
	reason := <-observed

	rearmed := s.requested.CompareAndSet(true, false)
	if rearmed {
		log.Debug("Shutdown request handled, flag re-armed")
	}

	return result{
		Winners:  int(atomic.LoadInt32(&s.winners)),
		Reason:   reason,
		Cleanups: int(atomic.LoadInt32(&s.cleanups)),
		Rearmed:  rearmed,
	}
}

func (s *shutdown) workerRoutine(wg *sync.WaitGroup, id int) {
	defer wg.Done()
	defer s.cleanup(id)
	fields := logrus.Fields{
		"worker": id,
	}
	if !s.requested.TrySetTrue() {
		log.WithFields(fields).Debug("Shutdown already requested")
		return
	}
	atomic.AddInt32(&s.winners, 1)
	s.reason = fmt.Sprintf("worker %d requested shutdown", id)
	s.published.Set(true)
	log.WithFields(fields).Debug("Shutdown requested")
}

func (s *shutdown) observeRoutine(observed chan<- string) {
	for s.published.IsFalse() {
		runtime.Gosched()
	}
	observed <- s.reason
}

func (s *shutdown) cleanup(id int) {
	fields := logrus.Fields{
		"worker":  id,
		"cleaned": &s.cleaned,
	}
	if !s.cleaned.TrySetTrue() {
		log.WithFields(fields).Debug("Cleanup already ran")
		return
	}
	atomic.AddInt32(&s.cleanups, 1)
	log.WithFields(fields).Debug("Cleanup done")
}
