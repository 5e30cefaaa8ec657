package syncx

import (
	"sync"
	"sync/atomic"
)

// Lazy is a value that is computed on first use.
// Once Get returns, the value (and error) are cached for other calls to Get.
//
// The compute function is called at most once, even if Get is called from multiple goroutines at the same time.
// Callers that race with the first computation block until it's done.
type Lazy[T any] struct {
	compute func() (T, error)
	once    sync.Once
	done    atomic.Bool
	val     T
	err     error
}

// NewLazy creates a [Lazy] that will call compute on first use.
// Passing a nil compute function to this function will panic.
func NewLazy[T any](compute func() (T, error)) *Lazy[T] {
	if compute == nil {
		panic("nil compute function")
	}
	return &Lazy[T]{compute: compute}
}

// Get returns the cached result, computing it first if this is the first call.
func (l *Lazy[T]) Get() (T, error) {
	l.once.Do(func() {
		defer l.done.Store(true)
		l.val, l.err = l.compute()
		l.compute = nil
	})
	return l.val, l.err
}

// Value is the same as [Lazy.Get], but the error is discarded.
func (l *Lazy[T]) Value() T {
	val, _ := l.Get()
	return val
}

// Done reports whether the value has already been computed, without computing it.
func (l *Lazy[T]) Done() bool {
	return l.done.Load()
}
