package gen

import (
	"fmt"
	"runtime/debug"
)

// panicError carries a panic raised inside a generating function across
// the coroutine boundary, along with the stack captured at the panic
// site. The runner re-raises it on the goroutine driving the
// generator, where the original stack would otherwise be lost.
type panicError struct {
	value any
	stack []byte
}

func (p *panicError) Error() string {
	return fmt.Sprintf("%v", p.value)
}

// ErrorWithStack returns the panic message followed by the stack trace
// of the generating function at the point it panicked.
func (p *panicError) ErrorWithStack() string {
	return fmt.Sprintf("%v\n\n%s", p.value, p.stack)
}

func (p *panicError) Unwrap() error {
	err, ok := p.value.(error)
	if !ok {
		return nil
	}
	return err
}

func newPanicError(v any) error {
	return &panicError{
		value: v,
		stack: debug.Stack(),
	}
}
