package neoforge

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Event types carry renderer state across the host/mod boundary.
// The host constructs and dispatches them; mods only read them, except
// where a field or method is documented as a mod-side hook.

// Camera describes the viewpoint the level is rendered from.
type Camera struct {
	Position mgl64.Vec3
	Rotation cube.Rotation
}

// Frustum is the host's view-volume test for the current frame. Mods use it
// to skip drawing geometry that cannot be on screen.
type Frustum interface {
	// Visible reports whether any part of the box intersects the view
	// volume.
	Visible(box cube.BBox) bool
}

// EventRenderLevelStage is emitted at each stage checkpoint during level
// rendering. Check Stage before drawing to render at the appropriate time.
type EventRenderLevelStage struct {
	// Stage is the checkpoint being announced.
	Stage Stage

	// Pose is the transform stack used for rendering. Never nil; at
	// checkpoints without a live transform the host passes a fresh
	// identity stack.
	Pose *PoseStack

	// ModelView and Projection are the matrices the frame is rendered
	// with.
	ModelView  mgl32.Mat4
	Projection mgl32.Mat4

	// RenderTick is the level renderer's tick counter.
	RenderTick int

	// PartialTick is the fraction of the current tick elapsed, for
	// interpolating between ticks.
	PartialTick float64

	Camera  Camera
	Frustum Frustum
}

// EventRegisterStage is emitted once during startup, after the level
// renderer has been created. Mods register custom stages here; the host
// seals the registry when dispatch finishes.
type EventRegisterStage struct{}

// Register creates a custom stage. See RegisterStage for the render type
// binding rules.
func (e *EventRegisterStage) Register(name string, renderType *RenderType) (Stage, error) {
	return RegisterStage(name, renderType)
}
