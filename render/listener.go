package render

import "github.com/go-gl/mathgl/mgl32"

// ModelRenderInfo is the per-draw state of the model being rendered, handed
// to listeners around each draw.
type ModelRenderInfo struct {
	Origin mgl32.Vec3
	Angles mgl32.Vec3
	Scale  mgl32.Vec3

	Transparency float32
	Body         int
	Skin         int
	Sequence     int
}

// Listener is notified around each studio model draw so tools can render
// overlays. The renderer's GL state is fully set up for both calls.
type Listener interface {
	// OnPreDraw is called before the model is drawn.
	OnPreDraw(info *ModelRenderInfo)

	// OnPostDraw is called after the model is drawn.
	OnPostDraw(info *ModelRenderInfo)
}

// NopListener ignores every draw stage. Embed it to implement only one hook.
type NopListener struct{}

func (NopListener) OnPreDraw(*ModelRenderInfo)  {}
func (NopListener) OnPostDraw(*ModelRenderInfo) {}
