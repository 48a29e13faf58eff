// Package atomic provides lock-free primitives built on sync/atomic.
//
// All loads and stores are sequentially consistent, so writes made before
// Set(true) are visible to any goroutine that later observes Get() == true.
package atomic

import "fmt"

// Flag is the contract implemented by Bool.
type Flag interface {
	fmt.Stringer

	Get() bool
	Set(v bool)
	CompareAndSet(expected, newValue bool) bool
	TrySetTrue() bool
	TrySetFalse() bool
	Exchange(v bool) bool
	IsTrue() bool
	IsFalse() bool
}
