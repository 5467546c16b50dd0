package scene

import "github.com/go-gl/mathgl/mgl32"

// UpdateTransforms recomputes every derived transform after scene mutation,
// in dependency order: Euler angles fold into Rotation, LocalToParent picks
// up the entity's own translation/rotation/scale, and LocalToWorld
// accumulates the ancestor chain.
//
// The pass runs once per frame from the scene-update phase; operations like
// SetParent only adjust structure and rely on this pass to refresh matrices.
func UpdateTransforms(r *Registry) {
	applyRotationEulerXYZ(r)
	updateLocalToParent(r)
	updateLocalToWorld(r)
}

func applyRotationEulerXYZ(r *Registry) {
	Each(r, func(id Entity, euler *RotationEulerXYZ) {
		if rot, ok := Get[Rotation](r, id); ok {
			rot.Value = mgl32.AnglesToQuat(
				mgl32.DegToRad(euler.Value.X()),
				mgl32.DegToRad(euler.Value.Y()),
				mgl32.DegToRad(euler.Value.Z()),
				mgl32.XYZ,
			)
		}
	})
}

func updateLocalToParent(r *Registry) {
	Each(r, func(id Entity, ltp *LocalToParent) {
		ltp.Value = localMatrix(r, id)
	})
}

func updateLocalToWorld(r *Registry) {
	Each(r, func(id Entity, ltw *LocalToWorld) {
		ltw.Value = worldMatrix(r, id)
	})
}

// localMatrix composes T * R * S from whichever transform components the
// entity carries; a missing Scale means 1.
func localMatrix(r *Registry, id Entity) mgl32.Mat4 {
	m := mgl32.Ident4()
	if t, ok := Get[Translation](r, id); ok {
		m = mgl32.Translate3D(t.Value.X(), t.Value.Y(), t.Value.Z())
	}
	if rot, ok := Get[Rotation](r, id); ok {
		m = m.Mul4(rot.Value.Mat4())
	}
	if s, ok := Get[Scale](r, id); ok {
		m = m.Mul4(mgl32.Scale3D(s.Value, s.Value, s.Value))
	}
	return m
}

// worldMatrix composes the entity's ancestor chain root-down. Each level is
// re-fetched by id; O(depth) per ancestor is fine at tool scene sizes.
func worldMatrix(r *Registry, id Entity) mgl32.Mat4 {
	m := localMatrix(r, id)
	for parent := GetParent(r, id); parent != Null; parent = GetParent(r, parent) {
		m = localMatrix(r, parent).Mul4(m)
	}
	return m
}
