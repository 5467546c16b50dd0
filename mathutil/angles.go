package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// FixAngle normalizes a degree angle into [-180, 180].
func FixAngle(angle float32) float32 {
	a := float32(math.Mod(float64(angle), 360))
	switch {
	case a > 180:
		a -= 360
	case a < -180:
		a += 360
	}
	return a
}

// FixAngles normalizes each Euler angle of v into [-180, 180].
func FixAngles(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{FixAngle(v.X()), FixAngle(v.Y()), FixAngle(v.Z())}
}
