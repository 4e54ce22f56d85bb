// Package entity provides owned, ordered collections of live game entities.
package entity

import (
	"fmt"
	"iter"
)

// ID identifies an entity within one Registry. The generation changes every
// time a slot is reused, so an ID held past its entity's removal never
// refers to a newer entity.
type ID struct {
	index      uint32
	generation uint32
}

func (id ID) String() string {
	return fmt.Sprintf("%d#%d", id.index, id.generation)
}

type slot[T any] struct {
	value      T
	generation uint32
	alive      bool
}

// Registry owns a set of entities of one kind. Iteration follows insertion
// order. Not safe for concurrent use.
type Registry[T any] struct {
	slots []slot[T]
	free  []uint32 // Reclaimed slot indices
	order []uint32 // Live slot indices in insertion order
}

// NewRegistry creates an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{}
}

// Insert adds value and returns its new ID.
func (r *Registry[T]) Insert(value T) ID {
	var index uint32
	if n := len(r.free); n > 0 {
		index = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		index = uint32(len(r.slots))
		r.slots = append(r.slots, slot[T]{})
	}

	s := &r.slots[index]
	s.value = value
	s.alive = true
	r.order = append(r.order, index)
	return ID{index: index, generation: s.generation}
}

// Contains reports whether id refers to a live entity.
func (r *Registry[T]) Contains(id ID) bool {
	if int(id.index) >= len(r.slots) {
		return false
	}
	s := &r.slots[id.index]
	return s.alive && s.generation == id.generation
}

// Get returns the entity for id.
func (r *Registry[T]) Get(id ID) (T, bool) {
	if !r.Contains(id) {
		var zero T
		return zero, false
	}
	return r.slots[id.index].value, true
}

// MustGet returns the entity for id and panics if it is not live.
// Use only where the caller guarantees existence.
func (r *Registry[T]) MustGet(id ID) T {
	v, ok := r.Get(id)
	if !ok {
		panic(fmt.Sprintf("entity: no live entity with id %s", id))
	}
	return v
}

// Remove deletes the entity for id. Removing an absent or stale ID is a
// no-op that returns false.
func (r *Registry[T]) Remove(id ID) bool {
	if !r.Contains(id) {
		return false
	}

	s := &r.slots[id.index]
	var zero T
	s.value = zero
	s.alive = false
	s.generation++
	r.free = append(r.free, id.index)

	for i, idx := range r.order {
		if idx == id.index {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of live entities.
func (r *Registry[T]) Len() int {
	return len(r.order)
}

// All iterates live entities in insertion order. Entities removed during
// iteration are skipped; entities inserted during iteration are not visited.
func (r *Registry[T]) All() iter.Seq2[ID, T] {
	return func(yield func(ID, T) bool) {
		for _, id := range r.IDs() {
			v, ok := r.Get(id)
			if !ok {
				continue
			}
			if !yield(id, v) {
				return
			}
		}
	}
}

// IDs returns a copy of the live IDs in insertion order.
func (r *Registry[T]) IDs() []ID {
	ids := make([]ID, len(r.order))
	for i, idx := range r.order {
		ids[i] = ID{index: idx, generation: r.slots[idx].generation}
	}
	return ids
}

// Clear removes every entity. Outstanding IDs become stale.
func (r *Registry[T]) Clear() {
	for _, idx := range r.order {
		s := &r.slots[idx]
		var zero T
		s.value = zero
		s.alive = false
		s.generation++
		r.free = append(r.free, idx)
	}
	r.order = r.order[:0]
}
