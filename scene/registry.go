package scene

import (
	"io"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// ErrEntityDoesNotExist is the cause attached to the panic raised when an
// operation is handed an id that is not live in the registry.
var ErrEntityDoesNotExist = eris.New("entity does not exist")

// Registry owns every entity and all attached component data for one scene.
// It is passed explicitly to every operation; there is no process-wide
// instance. A Registry is not safe for concurrent use: all mutation is
// expected to happen from the single scene-update pass.
type Registry struct {
	Logger zerolog.Logger

	nextID     Entity
	entities   map[Entity]struct{}
	components map[string]map[Entity]Component
}

// RegistryOption configures a Registry at construction time.
type RegistryOption func(*Registry)

// WithLogger replaces the registry's default discard logger.
func WithLogger(logger zerolog.Logger) RegistryOption {
	return func(r *Registry) {
		r.Logger = logger
	}
}

// NewRegistry returns an empty registry. Entity ids start at 1 so that Null
// never aliases a live entity.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		Logger:     zerolog.New(io.Discard),
		nextID:     1,
		entities:   make(map[Entity]struct{}),
		components: make(map[string]map[Entity]Component),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create allocates a new entity with no components attached.
func (r *Registry) Create() Entity {
	id := r.nextID
	r.nextID++
	r.entities[id] = struct{}{}
	return id
}

// Valid reports whether id refers to a live entity in this registry.
func (r *Registry) Valid(id Entity) bool {
	_, ok := r.entities[id]
	return ok
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return len(r.entities)
}

// Destroy removes the entity and every component attached to it. The entity
// is detached from its parent first and each of its children is promoted to
// a root, so no sibling chain is left pointing at a dead id.
func (r *Registry) Destroy(id Entity) {
	r.mustValid(id)
	for _, child := range Children(r, id) {
		ClearParent(r, child)
	}
	ClearParent(r, id)
	for _, store := range r.components {
		delete(store, id)
	}
	delete(r.entities, id)
}

// mustValid is the assertion-class guard on every operation: an invalid id
// is a caller bug, not a recoverable condition. zerolog's Panic event logs
// and then panics.
func (r *Registry) mustValid(id Entity) {
	if !r.Valid(id) {
		r.Logger.Panic().
			Err(ErrEntityDoesNotExist).
			Uint64("entity_id", uint64(id)).
			Msg("operation on invalid entity")
	}
}

// Storage-level accessors keyed by component name. Structural code always
// re-fetches through these by id; no references are held across mutations.

func (r *Registry) get(name string, id Entity) (Component, bool) {
	c, ok := r.components[name][id]
	return c, ok
}

func (r *Registry) set(name string, id Entity, c Component) {
	store, ok := r.components[name]
	if !ok {
		store = make(map[Entity]Component)
		r.components[name] = store
	}
	store[id] = c
}

func (r *Registry) remove(name string, id Entity) {
	delete(r.components[name], id)
}
