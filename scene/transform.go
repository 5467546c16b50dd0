package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/RauliTop/HL-Tools/mathutil"
)

// Translation is an entity's position in local space: relative to its parent,
// or to the world when it has none.
type Translation struct {
	Value mgl32.Vec3
}

func (Translation) Name() string { return "translation" }

// Rotation is an entity's orientation in local space.
type Rotation struct {
	Value mgl32.Quat
}

func (Rotation) Name() string { return "rotation" }

// NewRotation returns a Rotation holding the identity orientation.
func NewRotation() Rotation {
	return Rotation{Value: mgl32.QuatIdent()}
}

// RotationEulerXYZ is an optional Euler-angle representation (degrees, XYZ
// order) layered on top of Rotation. UpdateTransforms folds it into Rotation
// each pass for entities that carry both.
type RotationEulerXYZ struct {
	Value mgl32.Vec3
}

func (RotationEulerXYZ) Name() string { return "rotation_euler_xyz" }

// Scale is an entity's uniform scale factor.
type Scale struct {
	Value float32
}

func (Scale) Name() string { return "scale" }

// NewScale returns a Scale holding the default factor of 1.
func NewScale() Scale {
	return Scale{Value: 1}
}

// LocalToParent transforms local space into the parent's coordinate system.
// It is attached exactly while the entity has a parent; SetParent owns its
// lifecycle.
type LocalToParent struct {
	Value mgl32.Mat4
}

func (LocalToParent) Name() string { return "local_to_parent" }

// LocalToWorld transforms local space into world space, accumulated over the
// entity's whole ancestor chain.
type LocalToWorld struct {
	Value mgl32.Mat4
}

func (LocalToWorld) Name() string { return "local_to_world" }

// Position returns the world position (the matrix translation column).
func (l LocalToWorld) Position() mgl32.Vec3 {
	return l.Value.Col(3).Vec3()
}

// Rotation returns the world orientation, decomposed from the matrix with
// scale divided out.
func (l LocalToWorld) Rotation() mgl32.Quat {
	sx, sy, sz := mgl32.Extract3DScale(l.Value)
	c0 := l.Value.Col(0).Mul(1 / sx)
	c1 := l.Value.Col(1).Mul(1 / sy)
	c2 := l.Value.Col(2).Mul(1 / sz)
	rot := mgl32.Mat4{
		c0.X(), c0.Y(), c0.Z(), 0,
		c1.X(), c1.Y(), c1.Z(), 0,
		c2.X(), c2.Y(), c2.Z(), 0,
		0, 0, 0, 1,
	}
	return mgl32.Mat4ToQuat(rot)
}

// Forward returns the world-space forward basis vector.
func (l LocalToWorld) Forward() mgl32.Vec3 {
	return mathutil.ForwardVector(l.Value)
}

// Right returns the world-space right basis vector.
func (l LocalToWorld) Right() mgl32.Vec3 {
	return mathutil.RightVector(l.Value)
}

// Up returns the world-space up basis vector.
func (l LocalToWorld) Up() mgl32.Vec3 {
	return mathutil.UpVector(l.Value)
}
