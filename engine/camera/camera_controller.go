package camera

import (
	"github.com/Sebman56/orbit3d/engine/input"
	"github.com/Sebman56/orbit3d/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

// Orbit limits. Pitch stays strictly between the horizon and the pole; distance keeps the camera
// outside the unit meshes and inside the far plane.
const (
	MinPitch    float32 = 0.1
	MaxPitch    float32 = 1.5
	MinDistance float32 = 1.0
	MaxDistance float32 = 20.0

	// dragScale converts pointer pixels into radians before Sensitivity is applied.
	dragScale float32 = 0.01
)

// Cursor is the window surface the orbit controller needs: the pointer capture mode and visibility.
// window.Window satisfies it.
type Cursor interface {
	// CursorMode returns whether the pointer is free or captured.
	CursorMode() input.CursorMode

	// SetCursorMode switches between free and captured pointer handling.
	SetCursorMode(mode input.CursorMode)

	// CursorVisible reports whether the pointer is drawn.
	CursorVisible() bool

	// SetCursorVisible shows or hides the pointer.
	SetCursorVisible(visible bool)
}

// OrbitController keeps a camera on a sphere around the world origin.
// It is attached to exactly one camera entity and mutated once per frame by Update.
// The camera position is not stored here; Apply derives it from the angles and distance.
type OrbitController struct {
	// Enabled gates drag rotation. Scroll zoom is applied regardless.
	Enabled bool
	// Sensitivity scales pointer deltas into angle changes.
	Sensitivity float32
	// ZoomSensitivity scales scroll deltas into distance changes.
	ZoomSensitivity float32
	// Distance is the orbit radius, kept in [MinDistance, MaxDistance].
	Distance float32
	// Angles holds yaw (X) and pitch (Y) in radians. Pitch is kept in [MinPitch, MaxPitch];
	// yaw is unbounded.
	Angles mgl32.Vec2
}

// NewOrbitController creates an OrbitController with defaults (enabled, sensitivity 0.2,
// zoom sensitivity 0.1, distance 5, yaw 0, pitch 0.5) and applies the provided options.
// The resulting distance and pitch are clamped into their valid ranges.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - OrbitController: the configured controller component
func NewOrbitController(options ...OrbitControllerOption) OrbitController {
	c := OrbitController{
		Enabled:         true,
		Sensitivity:     0.2,
		ZoomSensitivity: 0.1,
		Distance:        5.0,
		Angles:          mgl32.Vec2{0.0, 0.5},
	}
	for _, opt := range options {
		opt(&c)
	}
	c.Angles[1] = mgl32.Clamp(c.Angles[1], MinPitch, MaxPitch)
	c.Distance = mgl32.Clamp(c.Distance, MinDistance, MaxDistance)
	return c
}

// Yaw returns the horizontal orbit angle in radians.
func (c *OrbitController) Yaw() float32 {
	return c.Angles[0]
}

// Pitch returns the vertical orbit angle in radians.
func (c *OrbitController) Pitch() float32 {
	return c.Angles[1]
}

// Rotate folds one pointer delta into the angles and clamps pitch.
// It does not check Enabled or the cursor mode; Update does.
//
// Parameters:
//   - dx, dy: pointer delta in pixels
func (c *OrbitController) Rotate(dx, dy float32) {
	c.Angles[0] -= dx * c.Sensitivity * dragScale
	c.Angles[1] -= dy * c.Sensitivity * dragScale
	c.Angles[1] = mgl32.Clamp(c.Angles[1], MinPitch, MaxPitch)
}

// Zoom folds one scroll delta into the distance and clamps it.
//
// Parameters:
//   - dy: scroll delta, positive moves the camera closer
func (c *OrbitController) Zoom(dy float32) {
	c.Distance -= dy * c.ZoomSensitivity
	c.Distance = mgl32.Clamp(c.Distance, MinDistance, MaxDistance)
}

// Orientation returns the yaw-then-pitch rotation of the orbit, Ry(yaw) * Rx(pitch), with no roll.
func (c *OrbitController) Orientation() mgl32.Quat {
	yaw := mgl32.QuatRotate(c.Angles[0], mgl32.Vec3{0, 1, 0})
	pitch := mgl32.QuatRotate(c.Angles[1], mgl32.Vec3{1, 0, 0})
	return yaw.Mul(pitch)
}

// Position returns the camera position on the orbit sphere: Orientation() applied to (0, 0, Distance).
func (c *OrbitController) Position() mgl32.Vec3 {
	return c.Orientation().Rotate(mgl32.Vec3{0, 0, c.Distance})
}

// Apply places t on the orbit sphere and turns it to face the origin with +Y as up.
//
// Parameters:
//   - t: the camera transform to overwrite
func (c *OrbitController) Apply(t *transform.Transform) {
	t.Translation = c.Position()
	t.LookAt(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
}

// Update runs one frame of orbit control.
//
// A primary button press captures and hides the cursor; a secondary press frees and shows it.
// Pointer motion is then folded in event by event, but only while Enabled and captured;
// other motion is dropped. Scroll events are always folded in. Finally t is recomputed with Apply.
//
// Parameters:
//   - in: this frame's input
//   - cursor: the window cursor, read and mutated
//   - t: the camera transform to update
func (c *OrbitController) Update(in *input.State, cursor Cursor, t *transform.Transform) {
	if in.JustPressed(input.MouseButtonLeft) {
		cursor.SetCursorMode(input.CursorModeCaptured)
		cursor.SetCursorVisible(false)
	}
	if in.JustPressed(input.MouseButtonRight) {
		cursor.SetCursorMode(input.CursorModeFree)
		cursor.SetCursorVisible(true)
	}

	if c.Enabled && cursor.CursorMode() == input.CursorModeCaptured {
		for _, ev := range in.Motion() {
			c.Rotate(ev.DX, ev.DY)
		}
	}

	for _, ev := range in.Scroll() {
		c.Zoom(ev.DY)
	}

	c.Apply(t)
}
