// Package arena implements the handle arena described in the data
// model: a process-wide slot table mapping small integer handles to
// engine values, plus the optional name bindings the host uses to make
// a handle addressable from eval() source.
//
// The arena has no internal locking, matching the engine's single-
// threaded, cooperative concurrency model: concurrent use from multiple
// goroutines is undefined, exactly as concurrent use from multiple host
// threads is undefined.
package arena

import (
	"achronyme/config"
	"achronyme/types"
)

// Handle is an opaque, process-wide identifier for a value held in the
// arena. Zero is a valid handle (the first slot allocated).
type Handle uint32

// Stats mirrors the data model's arena counters, exposed read-only for
// host introspection.
type Stats struct {
	TotalAlloc  uint64
	TotalFree   uint64
	FastPathOps uint64
	SlowPathOps uint64
}

// Arena is the handle table. slots[h] is nil for a freed or never
// allocated handle; free holds reclaimed indices as a LIFO stack so
// allocation is O(1) amortized and handles are reused rather than
// growing without bound.
type Arena struct {
	slots    []*types.Value
	free     []Handle
	bindings map[string]Handle
	stats    Stats
}

// New creates an empty arena pre-sized to limits.ArenaInitialCapacity.
// A nil limits argument falls back to config.Default().
func New(limits *config.Limits) *Arena {
	if limits == nil {
		limits = config.Default()
	}
	return &Arena{
		slots:    make([]*types.Value, 0, limits.ArenaInitialCapacity),
		bindings: make(map[string]Handle),
	}
}

// Alloc stores v in a reused slot if one is free, otherwise appends a
// new slot, and returns its handle. Every fast-path operation that
// produces a structured value calls this exactly once on success.
func (a *Arena) Alloc(v types.Value) Handle {
	a.stats.TotalAlloc++
	if n := len(a.free); n > 0 {
		h := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[h] = &v
		return h
	}
	a.slots = append(a.slots, &v)
	return Handle(len(a.slots) - 1)
}

// Get returns the value stored under h, and whether h currently refers
// to an occupied slot. An out-of-range or freed handle reports false;
// callers translate that into ErrInvalidHandle.
func (a *Arena) Get(h Handle) (types.Value, bool) {
	if int(h) < 0 || int(h) >= len(a.slots) || a.slots[h] == nil {
		return nil, false
	}
	return *a.slots[h], true
}

// Release frees h, returning its slot to the free list. Idempotent:
// releasing an already-freed or never-allocated handle is a no-op, per
// the lifecycle contract in the handle arena design. Releasing also
// clears any name binding that pointed at h.
func (a *Arena) Release(h Handle) {
	if int(h) < 0 || int(h) >= len(a.slots) || a.slots[h] == nil {
		return
	}
	a.slots[h] = nil
	a.free = append(a.free, h)
	a.stats.TotalFree++
	for name, bound := range a.bindings {
		if bound == h {
			delete(a.bindings, name)
		}
	}
}

// Reset clears every slot, every binding, and both counters — the bulk
// teardown the host calls between unrelated sessions in the same
// process image.
func (a *Arena) Reset() {
	a.slots = a.slots[:0]
	a.free = a.free[:0]
	a.bindings = make(map[string]Handle)
	a.stats = Stats{}
}

// Bind installs name -> h, replacing any previous binding of name. It
// does not validate that h is occupied; the caller
// (abi.Engine.BindVariableToHandle) is responsible for that so it can report InvalidHandle distinctly
// from a bad name.
func (a *Arena) Bind(name string, h Handle) {
	a.bindings[name] = h
}

// Lookup resolves a bound name back to its handle.
func (a *Arena) Lookup(name string) (Handle, bool) {
	h, ok := a.bindings[name]
	return h, ok
}

// Active reports the number of currently occupied slots, i.e.
// TotalAlloc - TotalFree, the quantity the handle-accounting property
// in the testable-properties section checks after any allocate/release
// sequence.
func (a *Arena) Active() uint64 {
	return a.stats.TotalAlloc - a.stats.TotalFree
}

// Stats returns a copy of the current counters.
func (a *Arena) Stats() Stats {
	return a.stats
}

// RecordFastPath and RecordSlowPath bump the dispatcher-call counters;
// the abi package calls RecordFastPath once per entry point (after also
// emitting a trace record, which needs the operation name the arena
// itself does not track), and RecordSlowPath once per eval() call.
func (a *Arena) RecordFastPath() {
	a.stats.FastPathOps++
}

func (a *Arena) RecordSlowPath() {
	a.stats.SlowPathOps++
}
