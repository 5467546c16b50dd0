package scene

// Component is implemented by every data block that can be attached to an
// entity. Name must be unique per component type; it keys the registry's
// per-type storage.
type Component interface {
	Name() string
}

// Get returns the T attached to id, or ok=false when the entity does not
// carry one.
func Get[T Component](r *Registry, id Entity) (*T, bool) {
	r.mustValid(id)
	var t T
	c, ok := r.get(t.Name(), id)
	if !ok {
		return nil, false
	}
	return any(c).(*T), true
}

// MustGet returns the T attached to id and treats absence as a caller bug.
func MustGet[T Component](r *Registry, id Entity) *T {
	c, ok := Get[T](r, id)
	if !ok {
		var t T
		r.Logger.Panic().
			Uint64("entity_id", uint64(id)).
			Str("component_name", t.Name()).
			Msg("required component missing")
	}
	return c
}

// Has reports whether id carries a T.
func Has[T Component](r *Registry, id Entity) bool {
	_, ok := Get[T](r, id)
	return ok
}

// Add attaches c to id, replacing any T already present, and returns the
// stored value.
func Add[T Component](r *Registry, id Entity, c T) *T {
	r.mustValid(id)
	stored := &c
	r.set(c.Name(), id, any(stored).(Component))
	return stored
}

// Ensure returns the T attached to id, attaching a zero value first when the
// entity does not have one yet.
func Ensure[T Component](r *Registry, id Entity) *T {
	if c, ok := Get[T](r, id); ok {
		return c
	}
	var t T
	return Add(r, id, t)
}

// Remove detaches the T attached to id. Removing an absent component is a
// no-op.
func Remove[T Component](r *Registry, id Entity) {
	r.mustValid(id)
	var t T
	r.remove(t.Name(), id)
}

// Each calls fn for every entity that carries a T. Iteration order is
// unspecified. fn must not attach or detach components of type T.
func Each[T Component](r *Registry, fn func(id Entity, c *T)) {
	var t T
	for id, c := range r.components[t.Name()] {
		fn(id, any(c).(*T))
	}
}
