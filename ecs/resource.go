package ecs

import (
	"fmt"
	"sync"
)

// Resource is a tick-scoped global value shared across units, with the same
// many-readers-or-one-writer borrow rule as Store. The scheduler writes it
// once per tick; units read it for the duration of their invocation.
type Resource[T any] struct {
	mu      sync.Mutex
	readers int
	writer  bool
	value   T
}

// NewResource creates a resource holding the given initial value.
func NewResource[T any](value T) *Resource[T] {
	return &Resource[T]{value: value}
}

// Borrow takes a shared read-only handle. Panics if a writer holds it.
func (r *Resource[T]) Borrow() Res[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.writer {
		panic(fmt.Sprintf("ecs: read borrow of %T while exclusively borrowed", r))
	}
	r.readers++
	return Res[T]{r: r}
}

// BorrowMut takes the exclusive handle. Panics if any handle is live.
func (r *Resource[T]) BorrowMut() ResMut[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.writer || r.readers > 0 {
		panic(fmt.Sprintf("ecs: exclusive borrow of %T while already borrowed", r))
	}
	r.writer = true
	return ResMut[T]{Res[T]{r: r}}
}

// Res is a shared read-only handle on a Resource.
type Res[T any] struct {
	r *Resource[T]
}

// Release gives the borrow back.
func (h Res[T]) Release() {
	h.r.mu.Lock()
	defer h.r.mu.Unlock()
	h.r.readers--
}

// Get returns the current value.
func (h Res[T]) Get() T {
	return h.r.value
}

// ResMut is the exclusive handle on a Resource.
type ResMut[T any] struct {
	Res[T]
}

// Release gives the exclusive borrow back.
func (h ResMut[T]) Release() {
	h.r.mu.Lock()
	defer h.r.mu.Unlock()
	h.r.writer = false
}

// Set replaces the value.
func (h ResMut[T]) Set(val T) {
	h.r.value = val
}

// System is one schedulable unit of work. A system borrows the storages and
// resources it declared when Run is called and releases them before
// returning; it keeps no state between invocations.
type System interface {
	Run()
}
