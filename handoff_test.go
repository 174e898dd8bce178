package gen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandoffSlot(t *testing.T) {
	r := require.New(t)

	h := new(handoff[int])

	_, ok := h.take()
	r.False(ok, "take on an empty slot")

	r.True(h.put(7))
	r.True(h.occupied())
	r.False(h.put(8), "put on an occupied slot")

	v, ok := h.take()
	r.True(ok)
	r.Equal(7, v)
	r.False(h.occupied())

	// Drained slots accept the next value.
	r.True(h.put(9))
	v, ok = h.take()
	r.True(ok)
	r.Equal(9, v)
}

func TestYieldPanicsOnPendingValue(t *testing.T) {
	r := require.New(t)

	// A foreign driver left a value in the slot instead of draining it.
	co := &Coro[int]{cell: new(handoff[int]), suspend: func() {}}
	r.True(co.cell.put(7))

	r.PanicsWithError(ErrConflict.Error(), func() { co.Yield(8) })
}

func TestYieldPanicsOnUndrainedResume(t *testing.T) {
	r := require.New(t)

	// A foreign driver resumes the suspension point without consuming
	// the value first.
	co := &Coro[int]{cell: new(handoff[int]), suspend: func() {}}

	r.PanicsWithError(ErrConflict.Error(), func() { co.Yield(8) })
	v, ok := co.cell.take()
	r.True(ok)
	r.Equal(8, v)
}
