package atomic

import "sync/atomic"

const (
	boolFalse uint32 = iota
	boolTrue
)

// Bool is a boolean that can be shared between goroutines without locking.
// The zero value is false and ready to use. A Bool must not be copied after
// first use.
type Bool struct {
	v uint32
}

var _ Flag = (*Bool)(nil)

func NewBool(v bool) *Bool {
	return &Bool{v: toUint32(v)}
}

func (b *Bool) Get() bool {
	return atomic.LoadUint32(&b.v) == boolTrue
}

func (b *Bool) Set(v bool) {
	atomic.StoreUint32(&b.v, toUint32(v))
}

// CompareAndSet stores newValue only if the current value equals expected,
// and reports whether it did.
func (b *Bool) CompareAndSet(expected, newValue bool) bool {
	return atomic.CompareAndSwapUint32(&b.v, toUint32(expected), toUint32(newValue))
}

// TrySetTrue sets the flag and reports whether it was false before.
func (b *Bool) TrySetTrue() bool {
	return atomic.SwapUint32(&b.v, boolTrue) == boolFalse
}

// TrySetFalse clears the flag and reports whether it was true before.
func (b *Bool) TrySetFalse() bool {
	return atomic.SwapUint32(&b.v, boolFalse) == boolTrue
}

// Exchange stores v and returns the previous value.
func (b *Bool) Exchange(v bool) bool {
	return atomic.SwapUint32(&b.v, toUint32(v)) == boolTrue
}

func (b *Bool) IsTrue() bool {
	return b.Get()
}

func (b *Bool) IsFalse() bool {
	return !b.Get()
}

func (b *Bool) String() string {
	if b.Get() {
		return "True"
	}
	return "False"
}

func toUint32(v bool) uint32 {
	if v {
		return boolTrue
	}
	return boolFalse
}
