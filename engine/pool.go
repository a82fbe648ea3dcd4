package engine

import "github.com/lixenwraith/horde/core"

type slot[T any] struct {
	gen  uint32
	used bool
	val  T
}

// Pool is a slot array addressed by generation-tagged handles
// Removing an element bumps its slot generation so outstanding handles go stale
// instead of aliasing whatever reuses the slot
type Pool[T any] struct {
	slots []slot[T]
	free  []uint32
	live  int
}

func NewPool[T any](capacity int) *Pool[T] {
	return &Pool[T]{slots: make([]slot[T], 0, capacity)}
}

// Insert stores v and returns its handle
func (p *Pool[T]) Insert(v T) core.Handle {
	var idx uint32
	if n := len(p.free); n > 0 {
		idx = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		idx = uint32(len(p.slots))
		p.slots = append(p.slots, slot[T]{})
	}

	s := &p.slots[idx]
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	s.used = true
	s.val = v
	p.live++
	return core.Handle{Index: idx, Gen: s.gen}
}

// Get returns a pointer to the element, nil for stale or unknown handles
// The pointer is valid until the next Insert
func (p *Pool[T]) Get(h core.Handle) *T {
	if int(h.Index) >= len(p.slots) {
		return nil
	}
	s := &p.slots[h.Index]
	if !s.used || s.gen != h.Gen {
		return nil
	}
	return &s.val
}

// Remove frees the slot; returns false for stale handles
func (p *Pool[T]) Remove(h core.Handle) bool {
	if p.Get(h) == nil {
		return false
	}
	s := &p.slots[h.Index]
	var zero T
	s.val = zero
	s.used = false
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	p.free = append(p.free, h.Index)
	p.live--
	return true
}

// Handles returns a snapshot of live handles in slot order
// Iterating the snapshot is safe while inserting or removing
func (p *Pool[T]) Handles() []core.Handle {
	out := make([]core.Handle, 0, p.live)
	for i := range p.slots {
		if p.slots[i].used {
			out = append(out, core.Handle{Index: uint32(i), Gen: p.slots[i].gen})
		}
	}
	return out
}

// Each visits live elements in slot order; fn must not insert or remove
func (p *Pool[T]) Each(fn func(h core.Handle, v *T)) {
	for i := range p.slots {
		s := &p.slots[i]
		if s.used {
			fn(core.Handle{Index: uint32(i), Gen: s.gen}, &s.val)
		}
	}
}

// Retain removes every element for which keep returns false, returning the count removed
func (p *Pool[T]) Retain(keep func(v *T) bool) int {
	removed := 0
	for _, h := range p.Handles() {
		if !keep(p.Get(h)) {
			p.Remove(h)
			removed++
		}
	}
	return removed
}

func (p *Pool[T]) Len() int {
	return p.live
}

// Clear removes all elements, invalidating every handle
func (p *Pool[T]) Clear() {
	for _, h := range p.Handles() {
		p.Remove(h)
	}
}
