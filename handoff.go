package gen

import "sync"

// handoff is the single-slot cell a generating function and its driver
// use to pass one value at a time. Yield is the only writer and the
// driver's pull loop is the only reader; the yield protocol alternates
// the two strictly, so the mutex never arbitrates real contention. It
// exists to keep the slot visible across goroutines, since consecutive
// pulls may come from different ones.
type handoff[T any] struct {
	mu   sync.Mutex
	item T
	full bool
}

// put stores v and reports whether the slot was empty. The slot itself
// does not treat an occupied put as fatal; callers do.
func (h *handoff[T]) put(v T) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.full {
		return false
	}
	h.item = v
	h.full = true
	return true
}

// take reads and clears the slot, reporting whether it held a value.
// Clearing drops the slot's reference to the value so it is not
// retained past the handoff.
func (h *handoff[T]) take() (T, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	var zero T
	if !h.full {
		return zero, false
	}
	v := h.item
	h.item = zero
	h.full = false
	return v, true
}

func (h *handoff[T]) occupied() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.full
}
