package gen

import (
	"errors"
	"fmt"
	_ "unsafe" // for go:linkname
)

// ErrStopped is the panic value raised when a Coro handle that escaped
// its generating function is used to yield, or otherwise resume, after
// the generator has completed or been stopped.
var ErrStopped = errors.New("gen: generator stopped or completed")

// coroutine represents a native Go coroutine instance. It's an opaque
// struct used by the runtime functions.
type coroutine struct{}

//go:linkname newcoro runtime.newcoro
func newcoro(func(*coroutine)) *coroutine

//go:linkname coroswitch runtime.coroswitch
func coroswitch(*coroutine)

// newRunner places fn on its own coroutine and returns the two controls
// a generator needs to drive it.
//
// The resume function advances fn by one step: it transfers control to
// the coroutine and regains it at fn's next suspension point, reporting
// true, or at fn's completion, reporting false. fn itself decides where
// it suspends by calling the suspend function it receives; suspending
// returns control to whichever resume call is in flight.
//
// The stop function abandons a partially-run fn: it resumes the
// coroutine one last time with a stop sentinel so that fn unwinds
// through its deferred statements. Stopping before the first resume
// prevents fn from ever starting. Stopping a completed runner is a
// no-op.
//
// A panic inside fn is captured on the coroutine, wrapped with the
// stack trace of the panic site, and re-raised on the goroutine that
// called resume (or stop, for panics raised while unwinding). The
// runner is finished afterwards.
//
// Resume and stop must be externally serialized, but need not be called
// from the goroutine that created the runner.
func newRunner(fn func(suspend func())) (resume func() bool, stop func()) {
	var (
		c    *coroutine
		done bool
		perr error
	)

	c = newcoro(func(c *coroutine) {
		defer func() {
			if !done {
				// The stop sentinel unwinds fn but is not an error of
				// fn's own making; anything else is.
				if p := recover(); p != nil && p != any(perr) {
					perr = newPanicError(p)
				}
				done = true
			}
		}()

		suspend := func() {
			if done {
				panic(ErrStopped)
			}
			coroswitch(c)
			if perr != nil {
				panic(perr)
			}
		}

		if perr == nil {
			fn(suspend)
		}
	})

	resume = func() bool {
		if perr != nil {
			panic(perr)
		}
		if done {
			return false
		}
		coroswitch(c)
		if perr != nil {
			panic(perr)
		}
		return !done
	}

	stop = func() {
		if done {
			return
		}
		sentinel := fmt.Errorf("%w", ErrStopped)
		perr = sentinel
		coroswitch(c)
		if perr != nil && perr != sentinel {
			panic(perr)
		}
	}

	return resume, stop
}
