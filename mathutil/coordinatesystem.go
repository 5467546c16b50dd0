// Package mathutil carries the small pieces of shared tool math: the Quake
// coordinate system and Euler-angle normalization.
package mathutil

import "github.com/go-gl/mathgl/mgl32"

// World axes, Quake convention: x forward, y left, z up.
var (
	WorldForward = mgl32.Vec3{1, 0, 0}
	WorldLeft    = mgl32.Vec3{0, 1, 0}
	WorldUp      = mgl32.Vec3{0, 0, 1}
)

// ForwardVector returns the normalized world-space forward axis of m.
func ForwardVector(m mgl32.Mat4) mgl32.Vec3 {
	return transformAxis(m, WorldForward)
}

// RightVector returns the normalized world-space right axis of m. Right is
// the negated left axis.
func RightVector(m mgl32.Mat4) mgl32.Vec3 {
	return transformAxis(m, WorldLeft).Mul(-1)
}

// UpVector returns the normalized world-space up axis of m.
func UpVector(m mgl32.Mat4) mgl32.Vec3 {
	return transformAxis(m, WorldUp)
}

func transformAxis(m mgl32.Mat4, axis mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(axis.Vec4(0)).Vec3().Normalize()
}
