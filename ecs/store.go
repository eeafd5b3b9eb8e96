package ecs

import (
	"fmt"
	"sync"
)

// AnyStore is the type-erased surface of a Store, used by the Registry for
// uniform cleanup.
type AnyStore interface {
	Discard(e Entity)
	Clear()
}

// Store is a sparse-set storage holding one component of type T per entity.
// The dense arrays keep iteration cache-friendly.
//
// All access goes through borrowed views: any number of concurrent readers,
// or exactly one writer. The rule is checked when a view is taken and a
// violation panics, so a scheduler running units with conflicting access
// declarations fails loudly instead of racing.
type Store[T any] struct {
	mu      sync.Mutex
	readers int
	writer  bool

	dense    []T
	entities []Entity
	sparse   []int
}

// NewStore creates an empty component storage for type T.
func NewStore[T any]() *Store[T] {
	return &Store[T]{}
}

// Borrow takes a shared read-only view. Panics if a writer holds the store.
func (s *Store[T]) Borrow() View[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writer {
		panic(fmt.Sprintf("ecs: read borrow of %T while exclusively borrowed", s))
	}
	s.readers++
	return View[T]{s: s}
}

// BorrowMut takes the exclusive read-write view. Panics if any other view is
// live.
func (s *Store[T]) BorrowMut() MutView[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writer || s.readers > 0 {
		panic(fmt.Sprintf("ecs: exclusive borrow of %T while already borrowed", s))
	}
	s.writer = true
	return MutView[T]{View[T]{s: s}}
}

// Discard removes the entity's component without borrow accounting. It is
// meant for the Registry's destruction pass, outside any unit invocation.
func (s *Store[T]) Discard(e Entity) {
	s.remove(e)
}

// Clear drops every component.
func (s *Store[T]) Clear() {
	s.dense = s.dense[:0]
	s.entities = s.entities[:0]
	for i := range s.sparse {
		s.sparse[i] = -1
	}
}

func (s *Store[T]) index(e Entity) (int, bool) {
	id := int(e)
	if id <= 0 || id > len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[id-1]
	if idx < 0 || idx >= len(s.entities) || s.entities[idx] != e {
		return 0, false
	}
	return idx, true
}

func (s *Store[T]) set(e Entity, v T) {
	id := int(e)
	if id <= 0 {
		return
	}
	for id-1 >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if idx, ok := s.index(e); ok {
		s.dense[idx] = v
		return
	}
	s.entities = append(s.entities, e)
	s.dense = append(s.dense, v)
	s.sparse[id-1] = len(s.entities) - 1
}

func (s *Store[T]) remove(e Entity) {
	idx, ok := s.index(e)
	if !ok {
		return
	}
	last := len(s.entities) - 1
	lastEntity := s.entities[last]

	s.entities[idx] = lastEntity
	s.dense[idx] = s.dense[last]
	s.sparse[int(lastEntity)-1] = idx

	s.entities = s.entities[:last]
	s.dense = s.dense[:last]
	s.sparse[int(e)-1] = -1
}

// View is a shared read-only handle on a Store.
type View[T any] struct {
	s *Store[T]
}

// Release gives the borrow back. The view must not be used afterwards.
func (v View[T]) Release() {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	v.s.readers--
}

// Has reports whether the entity carries this component.
func (v View[T]) Has(e Entity) bool {
	_, ok := v.s.index(e)
	return ok
}

// Get returns the entity's component, if present.
func (v View[T]) Get(e Entity) (T, bool) {
	var zero T
	idx, ok := v.s.index(e)
	if !ok {
		return zero, false
	}
	return v.s.dense[idx], true
}

// Entities returns the dense entity list. The slice is owned by the store;
// callers must not mutate it and must not retain it past Release.
func (v View[T]) Entities() []Entity {
	return v.s.entities
}

// Len returns the number of stored components.
func (v View[T]) Len() int {
	return len(v.s.entities)
}

// MutView is the exclusive read-write handle on a Store.
type MutView[T any] struct {
	View[T]
}

// Release gives the exclusive borrow back.
func (v MutView[T]) Release() {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	v.s.writer = false
}

// Set inserts or overwrites the entity's component.
//
// Overwriting an existing slot touches only that entity's dense cell, so
// concurrent Sets on distinct, already-present entities are safe; inserting
// a new slot is not.
func (v MutView[T]) Set(e Entity, val T) {
	v.s.set(e, val)
}

// Remove deletes the entity's component, if present.
func (v MutView[T]) Remove(e Entity) {
	v.s.remove(e)
}
