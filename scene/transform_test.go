package scene_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/RauliTop/HL-Tools/scene"
)

const epsilon = 1e-4

func vec3InDelta(t *testing.T, got, want mgl32.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X(), got.X(), epsilon)
	assert.InDelta(t, want.Y(), got.Y(), epsilon)
	assert.InDelta(t, want.Z(), got.Z(), epsilon)
}

func TestLocalToWorldPosition(t *testing.T) {
	ltw := scene.LocalToWorld{Value: mgl32.Translate3D(1, 2, 3)}

	vec3InDelta(t, ltw.Position(), mgl32.Vec3{1, 2, 3})
}

func TestLocalToWorldRotationDecomposition(t *testing.T) {
	rot := mgl32.AnglesToQuat(0, 0, mgl32.DegToRad(90), mgl32.XYZ)
	m := mgl32.Translate3D(1, 2, 3).
		Mul4(rot.Mat4()).
		Mul4(mgl32.Scale3D(2, 2, 2))

	ltw := scene.LocalToWorld{Value: m}

	// Decomposition divides the scale back out before extracting rotation.
	assert.True(t, ltw.Rotation().OrientationEqualThreshold(rot, epsilon))
	vec3InDelta(t, ltw.Position(), mgl32.Vec3{1, 2, 3})
}

func TestLocalToWorldBasisVectors(t *testing.T) {
	// 90 degrees about z (up): forward swings from +x to +y.
	m := mgl32.HomogRotate3DZ(mgl32.DegToRad(90))
	ltw := scene.LocalToWorld{Value: m}

	vec3InDelta(t, ltw.Forward(), mgl32.Vec3{0, 1, 0})
	vec3InDelta(t, ltw.Right(), mgl32.Vec3{1, 0, 0})
	vec3InDelta(t, ltw.Up(), mgl32.Vec3{0, 0, 1})
}

func TestUpdateTransformsComposesAncestors(t *testing.T) {
	r := scene.NewRegistry()
	parent := r.Create()
	child := r.Create()

	scene.Add(r, parent, scene.Translation{Value: mgl32.Vec3{10, 0, 0}})
	scene.Add(r, parent, scene.LocalToWorld{})
	scene.Add(r, child, scene.Translation{Value: mgl32.Vec3{0, 5, 0}})
	scene.Add(r, child, scene.LocalToWorld{})
	scene.SetParent(r, child, parent)

	scene.UpdateTransforms(r)

	vec3InDelta(t, scene.MustGet[scene.LocalToWorld](r, parent).Position(), mgl32.Vec3{10, 0, 0})
	vec3InDelta(t, scene.MustGet[scene.LocalToWorld](r, child).Position(), mgl32.Vec3{10, 5, 0})
}

func TestUpdateTransformsFillsLocalToParent(t *testing.T) {
	r := scene.NewRegistry()
	parent := r.Create()
	child := r.Create()

	scene.Add(r, child, scene.Translation{Value: mgl32.Vec3{0, 5, 0}})
	scene.SetParent(r, child, parent)

	scene.UpdateTransforms(r)

	ltp := scene.MustGet[scene.LocalToParent](r, child)
	vec3InDelta(t, ltp.Value.Col(3).Vec3(), mgl32.Vec3{0, 5, 0})
}

func TestUpdateTransformsAppliesEulerAngles(t *testing.T) {
	r := scene.NewRegistry()
	e := r.Create()

	scene.Add(r, e, scene.NewRotation())
	scene.Add(r, e, scene.RotationEulerXYZ{Value: mgl32.Vec3{0, 0, 90}})
	scene.Add(r, e, scene.LocalToWorld{})

	scene.UpdateTransforms(r)

	vec3InDelta(t, scene.MustGet[scene.LocalToWorld](r, e).Forward(), mgl32.Vec3{0, 1, 0})
}

func TestUpdateTransformsAppliesAncestorScale(t *testing.T) {
	r := scene.NewRegistry()
	parent := r.Create()
	child := r.Create()

	scene.Add(r, parent, scene.Scale{Value: 2})
	scene.Add(r, child, scene.Translation{Value: mgl32.Vec3{1, 0, 0}})
	scene.Add(r, child, scene.LocalToWorld{})
	scene.SetParent(r, child, parent)

	scene.UpdateTransforms(r)

	vec3InDelta(t, scene.MustGet[scene.LocalToWorld](r, child).Position(), mgl32.Vec3{2, 0, 0})
}
