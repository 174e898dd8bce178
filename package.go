// Package gen turns a cooperative, suspendable function into a fully
// synchronous pull-based generator. Each call to Next resumes the
// function until it yields its next value, then pauses it and hands the
// value back to the caller. The function and its consumer never run at
// the same time; a single logical thread of control alternates between
// the two, whichever goroutine happens to issue the pull.
//
// A generator is created with the New function, which takes the
// generating function and returns a Generator. The function receives a
// Coro handle whose Yield method is its only way to emit values: Yield
// stores the value in a single-slot handoff shared with the generator
// and suspends the function until Next has consumed it. Values are
// delivered in exactly the order they were yielded, one at a time, with
// no buffering beyond the one value in flight.
//
// A generator may migrate between goroutines over its lifetime, but
// calls to Next and Stop must be externally serialized; only one pull
// may be in progress at a time. Once the function returns, the
// generator is exhausted and every further Next call reports
// end-of-sequence without resuming anything.
//
// The package handles panics within the generating function
// appropriately, wrapping and propagating them to the Next caller with
// helpful stack traces, after which the generator is exhausted. It also
// ensures that a Coro handle escaping its function cannot be misused
// after the generator completes or is stopped.
package gen
