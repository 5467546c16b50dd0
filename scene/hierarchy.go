package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/RauliTop/HL-Tools/mathutil"
)

// Hierarchy links an entity into the scene forest. It is attached only to
// entities that currently have a parent and/or children; SetParent creates
// and removes it as entities move between those states.
//
// Children of one parent form a doubly-linked sibling chain: the parent's
// FirstChild starts it and each child's Previous/Next continue it. All links
// are entity ids, never references, so a stale pointer cannot outlive a
// structural mutation.
type Hierarchy struct {
	Parent     Entity
	Previous   Entity
	Next       Entity
	FirstChild Entity
}

func (Hierarchy) Name() string { return "hierarchy" }

// HasParent reports whether the entity is linked under a parent.
func (h Hierarchy) HasParent() bool { return h.Parent != Null }

// HasSiblings reports whether the entity is linked to a sibling on either side.
func (h Hierarchy) HasSiblings() bool { return h.Previous != Null || h.Next != Null }

// HasChildren reports whether the entity has at least one child.
func (h Hierarchy) HasChildren() bool { return h.FirstChild != Null }

// GetParent returns the entity's parent, or Null when it has none.
func GetParent(r *Registry, entity Entity) Entity {
	r.mustValid(entity)
	if h, ok := Get[Hierarchy](r, entity); ok {
		return h.Parent
	}
	return Null
}

// SetParent makes parent the new parent of entity, detaching entity from any
// previous parent first. The new child is inserted at the head of the
// parent's sibling chain. Passing Null detaches only.
//
// Self-parenting and reparenting under one of the entity's own descendants
// are rejected: the scene is left unchanged and a warning is logged.
// Reparenting to the current parent is a no-op.
func SetParent(r *Registry, entity, parent Entity) {
	r.mustValid(entity)

	if entity == parent {
		r.Logger.Warn().
			Uint64("entity_id", uint64(entity)).
			Msg("rejected reparent: entity cannot be its own parent")
		return
	}

	if parent != Null {
		r.mustValid(parent)
		// Verify that the requested parent is not a descendant of entity.
		// Only the immediate link needs a presence check: a Hierarchy
		// component implies an unbroken parent chain up to a Null-parent
		// root, so the walk always terminates.
		for ancestor, ok := Get[Hierarchy](r, parent); ok && ancestor.HasParent(); ancestor, ok = Get[Hierarchy](r, ancestor.Parent) {
			if ancestor.Parent == entity {
				r.Logger.Warn().
					Uint64("entity_id", uint64(entity)).
					Uint64("parent_id", uint64(parent)).
					Msg("rejected reparent: parent is a descendant of entity")
				return
			}
		}
	}

	h, ok := Get[Hierarchy](r, entity)

	if ok {
		// Already a child of the requested parent.
		if h.Parent == parent {
			return
		}

		// Splice the entity out of its current sibling chain.
		if h.Previous != Null {
			MustGet[Hierarchy](r, h.Previous).Next = h.Next
		}
		if h.Next != Null {
			MustGet[Hierarchy](r, h.Next).Previous = h.Previous
		}

		if h.Parent != Null {
			oldParent := MustGet[Hierarchy](r, h.Parent)
			if oldParent.FirstChild == entity {
				oldParent.FirstChild = h.Next
			}
			// Drop the old parent's linkage state once nothing links to it
			// anymore. This deliberately stops at the immediate parent;
			// ancestors further up are left untouched even if they are now
			// childless.
			if !oldParent.HasChildren() && !oldParent.HasParent() {
				Remove[Hierarchy](r, h.Parent)
				Remove[LocalToParent](r, h.Parent)
			}
		}

		h.Parent = Null
		h.Previous = Null
		h.Next = Null
	}

	if parent != Null {
		if h == nil {
			h = Ensure[Hierarchy](r, entity)
		}
		// A parented entity always carries a LocalToParent; the propagation
		// pass fills in the matrix.
		Ensure[LocalToParent](r, entity)

		h.Parent = parent

		children := Ensure[Hierarchy](r, parent)
		if children.FirstChild != Null {
			MustGet[Hierarchy](r, children.FirstChild).Previous = entity
			h.Next = children.FirstChild
			h.Previous = Null
		}
		children.FirstChild = entity
	} else if h != nil {
		Remove[LocalToParent](r, entity)
		if !h.HasChildren() {
			Remove[Hierarchy](r, entity)
		}
	}
}

// ClearParent detaches entity from its parent, if any.
func ClearParent(r *Registry, entity Entity) {
	SetParent(r, entity, Null)
}

// Children returns entity's children in sibling-chain order, most recently
// attached first. A nil slice means the entity has no children.
func Children(r *Registry, entity Entity) []Entity {
	r.mustValid(entity)
	h, ok := Get[Hierarchy](r, entity)
	if !ok {
		return nil
	}
	var children []Entity
	for child := h.FirstChild; child != Null; child = MustGet[Hierarchy](r, child).Next {
		children = append(children, child)
	}
	return children
}

// CalculateAbsoluteRotationEulerXYZ sums the entity's Euler rotation with
// that of every ancestor, skipping ancestors without the component, and
// normalizes the result into [-180, 180] per axis. The entity itself must
// carry RotationEulerXYZ.
//
// This is an additive approximation of world rotation for callers that do
// not need (or do not yet have) the matrix-based LocalToWorld path.
func CalculateAbsoluteRotationEulerXYZ(r *Registry, entity Entity) mgl32.Vec3 {
	r.mustValid(entity)

	degrees := MustGet[RotationEulerXYZ](r, entity).Value

	for parent := GetParent(r, entity); parent != Null; parent = GetParent(r, parent) {
		if rot, ok := Get[RotationEulerXYZ](r, parent); ok {
			degrees = degrees.Add(rot.Value)
		}
	}

	return mathutil.FixAngles(degrees)
}
