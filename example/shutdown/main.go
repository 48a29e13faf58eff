package main

import (
	"atomic-toolkit/example/shared"
	"flag"
	"os"

	"github.com/sirupsen/logrus"
)

var log = shared.NewLogger(os.Stdout, logrus.InfoLevel)

func main() {
	if err := start(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func start(args []string) error {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("shutdown", flag.ContinueOnError)
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of goroutines racing to request shutdown")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log every worker")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	res := run(cfg)
	log.WithFields(logrus.Fields{
		"winners":  res.Winners,
		"cleanups": res.Cleanups,
		"rearmed":  res.Rearmed,
	}).Infof("Shutdown complete: %s", res.Reason)
	return nil
}
