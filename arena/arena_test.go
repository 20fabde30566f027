package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"achronyme/types"
)

func TestAllocGetRelease(t *testing.T) {
	a := New(nil)
	h := a.Alloc(types.NewScalar(42))

	v, ok := a.Get(h)
	assert.True(t, ok)
	assert.Equal(t, 42.0, v.(types.Scalar).Val)

	a.Release(h)
	_, ok = a.Get(h)
	assert.False(t, ok)
}

func TestReleaseIsIdempotent(t *testing.T) {
	a := New(nil)
	h := a.Alloc(types.NewScalar(1))
	a.Release(h)
	assert.NotPanics(t, func() { a.Release(h) })
	assert.NotPanics(t, func() { a.Release(Handle(999)) })
}

func TestFreedSlotsAreReused(t *testing.T) {
	a := New(nil)
	h1 := a.Alloc(types.NewScalar(1))
	a.Release(h1)
	h2 := a.Alloc(types.NewScalar(2))
	assert.Equal(t, h1, h2, "a freed slot should be handed back out before growing the table")
}

// TestHandleAccounting is the arena half of the testable property: after
// any sequence of N allocations and M <= N releases, active handles
// equals N - M; after reset, both counters are zero.
func TestHandleAccounting(t *testing.T) {
	a := New(nil)
	var handles []Handle
	for i := 0; i < 10; i++ {
		handles = append(handles, a.Alloc(types.NewScalar(float64(i))))
	}
	for _, h := range handles[:4] {
		a.Release(h)
	}
	assert.EqualValues(t, 6, a.Active())

	a.Reset()
	assert.EqualValues(t, 0, a.Active())
	assert.EqualValues(t, 0, a.Stats().TotalAlloc)
	assert.EqualValues(t, 0, a.Stats().TotalFree)
}

func TestBindAndLookup(t *testing.T) {
	a := New(nil)
	h := a.Alloc(types.NewVector([]float64{1, 2, 3}))
	a.Bind("v", h)

	got, ok := a.Lookup("v")
	assert.True(t, ok)
	assert.Equal(t, h, got)

	// Rebinding replaces the previous mapping.
	h2 := a.Alloc(types.NewScalar(9))
	a.Bind("v", h2)
	got, _ = a.Lookup("v")
	assert.Equal(t, h2, got)
}

func TestReleaseClearsBinding(t *testing.T) {
	a := New(nil)
	h := a.Alloc(types.NewScalar(1))
	a.Bind("x", h)
	a.Release(h)

	_, ok := a.Lookup("x")
	assert.False(t, ok)
}

func TestResetClearsBindings(t *testing.T) {
	a := New(nil)
	h := a.Alloc(types.NewScalar(1))
	a.Bind("x", h)
	a.Reset()

	_, ok := a.Lookup("x")
	assert.False(t, ok)
}
