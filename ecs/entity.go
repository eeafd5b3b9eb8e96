package ecs

// Entity is an opaque identifier grouping an arbitrary subset of components.
// Identifiers are never reused; destroying an entity only removes its
// component slots.
type Entity uint64

// Registry allocates entities and tracks every storage they may occupy, so
// destruction can clear all slots in one pass.
type Registry struct {
	nextID Entity
	stores []AnyStore
}

// NewRegistry creates an empty entity registry.
func NewRegistry() *Registry {
	return &Registry{nextID: 1}
}

// Track registers a storage for entity-destruction cleanup.
func (r *Registry) Track(s AnyStore) {
	r.stores = append(r.stores, s)
}

// Create reserves a new entity without adding any components.
func (r *Registry) Create() Entity {
	e := r.nextID
	r.nextID++
	return e
}

// Destroy removes the entity from every tracked storage.
func (r *Registry) Destroy(e Entity) {
	for _, s := range r.stores {
		s.Discard(e)
	}
}

// Clear removes all components from every tracked storage.
func (r *Registry) Clear() {
	for _, s := range r.stores {
		s.Clear()
	}
}
