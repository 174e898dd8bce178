package gen

import (
	"errors"
	"iter"
)

// ErrConflict is the panic value raised when the handoff slot is found
// in a state the yield protocol makes impossible: a yield while a
// previous value is still pending, or a yield resumed before its value
// was consumed. Either means the generating function is being driven by
// something other than its own generator, and continuing would corrupt
// or lose values.
var ErrConflict = errors.New("gen: handoff out of sync: generator driven by a foreign resumer")

// Coro is the handle a generating function receives from New. Yield is
// the function's only way to emit values; the handle carries no other
// state.
type Coro[T any] struct {
	cell    *handoff[T]
	suspend func()
}

// Yield passes v to the generator and suspends the generating function
// until the value has been consumed by Next. It returns once the
// function is resumed for its next value.
//
// Yield must be called from inside the generating function. Calling it
// through an escaped handle after the generator has completed or been
// stopped panics with ErrStopped.
func (c *Coro[T]) Yield(v T) {
	if !c.cell.put(v) {
		panic(ErrConflict)
	}
	c.suspend()
	if c.cell.occupied() {
		panic(ErrConflict)
	}
}

// A Generator produces, one Next call at a time, the values yielded by
// a generating function. The zero value is not useful; use New.
type Generator[T any] struct {
	cell   *handoff[T]
	resume func() bool
	stop   func()
	done   bool
}

// New creates a generator for fn. The coroutine backing fn is allocated
// immediately, but fn does not start running until the first call to
// Next.
//
// A Generator may be handed between goroutines at any point in its
// life, but its methods must be externally serialized: one call
// finishes before the next begins.
func New[T any](fn func(*Coro[T])) *Generator[T] {
	co := &Coro[T]{cell: new(handoff[T])}
	resume, stop := newRunner(func(suspend func()) {
		co.suspend = suspend
		fn(co)
	})
	return &Generator[T]{cell: co.cell, resume: resume, stop: stop}
}

// Next runs the generating function until it yields its next value and
// returns that value. Once the function has returned, Next reports
// false, and keeps reporting false on every later call without resuming
// anything.
//
// A panic inside the generating function propagates out of the Next
// call that resumed it, wrapped with the stack of the panic site; the
// generator is exhausted afterwards, so the panic surfaces exactly
// once.
func (g *Generator[T]) Next() (item T, ok bool) {
	if g.done {
		return item, false
	}

	// Marked exhausted up front; a value arriving clears it, while a
	// panic escaping the computation leaves the generator terminal.
	g.done = true

	// Run the computation until it yields a new value or finishes. A
	// step may also suspend without yielding; such steps are stepped
	// through without surfacing anything.
	for g.resume() {
		if v, taken := g.cell.take(); taken {
			g.done = false
			return v, true
		}
	}

	return item, false
}

// Stop abandons the generating function. If the function is suspended
// mid-run it is resumed one last time to unwind through its deferred
// statements; no other notification is delivered to it. The generator
// is exhausted afterwards. Stop is idempotent, and calling it before
// the first Next prevents the function from ever starting.
//
// A panic raised by the function's own deferred statements while
// unwinding propagates out of Stop.
func (g *Generator[T]) Stop() {
	if g.done {
		return
	}
	g.done = true
	g.stop()
}

// Seq adapts the generator for use with a for-range statement, pulling
// values until exhaustion or until the loop body breaks. Breaking does
// not stop the generator; it remains pullable from where it left off.
func (g *Generator[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := g.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
