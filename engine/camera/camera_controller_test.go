package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Sebman56/orbit3d/engine/input"
	"github.com/Sebman56/orbit3d/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

type fakeCursor struct {
	mode    input.CursorMode
	visible bool
}

func (f *fakeCursor) CursorMode() input.CursorMode { return f.mode }

func (f *fakeCursor) SetCursorMode(mode input.CursorMode) { f.mode = mode }

func (f *fakeCursor) CursorVisible() bool { return f.visible }

func (f *fakeCursor) SetCursorVisible(visible bool) { f.visible = visible }

func capturedCursor() *fakeCursor {
	return &fakeCursor{mode: input.CursorModeCaptured}
}

func near(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}

// vecNear compares with an absolute tolerance so zero components do not demand an exact match.
func vecNear(a, b mgl32.Vec3, eps float32) bool {
	return a.Sub(b).Len() <= eps
}

func TestOrbitDefaults(t *testing.T) {
	c := NewOrbitController()
	if !c.Enabled || c.Sensitivity != 0.2 || c.ZoomSensitivity != 0.1 || c.Distance != 5.0 {
		t.Fatalf("defaults\nhave %+v", c)
	}
	if c.Angles != (mgl32.Vec2{0, 0.5}) {
		t.Fatalf("angles\nhave %v\nwant [0 0.5]", c.Angles)
	}
}

func TestOrbitOptionsClamp(t *testing.T) {
	c := NewOrbitController(WithDistance(100), WithAngles(3, -2), WithEnabled(false), WithSensitivity(1), WithZoomSensitivity(2))
	if c.Distance != MaxDistance {
		t.Fatalf("distance\nhave %v\nwant %v", c.Distance, MaxDistance)
	}
	if c.Yaw() != 3 || c.Pitch() != MinPitch {
		t.Fatalf("angles\nhave %v\nwant [3 %v]", c.Angles, MinPitch)
	}
	if c.Enabled || c.Sensitivity != 1 || c.ZoomSensitivity != 2 {
		t.Fatalf("options not applied: %+v", c)
	}
}

func TestOrbitInitialPlacement(t *testing.T) {
	// A controller at zero pitch sits on +Z looking at the origin.
	c := OrbitController{Distance: 5}
	tr := transform.Identity()
	c.Apply(&tr)

	if !vecNear(tr.Translation, mgl32.Vec3{0, 0, 5}, 1e-5) {
		t.Fatalf("position\nhave %v\nwant [0 0 5]", tr.Translation)
	}
	if !vecNear(tr.Forward(), mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Fatalf("forward\nhave %v\nwant [0 0 -1]", tr.Forward())
	}
}

func TestOrbitDragYaw(t *testing.T) {
	c := NewOrbitController()
	in := input.NewState()
	in.PushMotion(100, 0)
	tr := transform.Identity()

	c.Update(in, capturedCursor(), &tr)

	if !near(c.Yaw(), -0.2, 1e-6) {
		t.Fatalf("yaw\nhave %v\nwant -0.2", c.Yaw())
	}
	if c.Pitch() != 0.5 {
		t.Fatalf("pitch\nhave %v\nwant 0.5", c.Pitch())
	}

	d, y, p := float64(c.Distance), float64(c.Yaw()), float64(c.Pitch())
	want := mgl32.Vec3{
		float32(d * math.Cos(p) * math.Sin(y)),
		float32(-d * math.Sin(p)),
		float32(d * math.Cos(p) * math.Cos(y)),
	}
	if !vecNear(tr.Translation, want, 1e-4) {
		t.Fatalf("position\nhave %v\nwant %v", tr.Translation, want)
	}
	if !vecNear(tr.Forward(), want.Mul(-1).Normalize(), 1e-4) {
		t.Fatalf("camera does not face the origin: forward %v", tr.Forward())
	}
}

func TestOrbitScrollClampsToMinimum(t *testing.T) {
	c := NewOrbitController()
	in := input.NewState()
	in.PushScroll(50)
	tr := transform.Identity()

	c.Update(in, &fakeCursor{}, &tr)

	if c.Distance != 1.0 {
		t.Fatalf("distance\nhave %v\nwant 1.0", c.Distance)
	}
}

func TestOrbitScrollClampsToMaximum(t *testing.T) {
	c := NewOrbitController()
	in := input.NewState()
	for range 10 {
		in.PushScroll(-100)
	}
	tr := transform.Identity()

	c.Update(in, &fakeCursor{}, &tr)

	if c.Distance != 20.0 {
		t.Fatalf("distance\nhave %v\nwant 20.0", c.Distance)
	}
}

func TestOrbitPitchClampsToMaximum(t *testing.T) {
	c := NewOrbitController()
	in := input.NewState()
	in.PushMotion(0, -1000)
	tr := transform.Identity()

	c.Update(in, capturedCursor(), &tr)

	if c.Pitch() != 1.5 {
		t.Fatalf("pitch\nhave %v\nwant 1.5", c.Pitch())
	}
}

func TestOrbitPitchClampsToMinimum(t *testing.T) {
	c := NewOrbitController()
	in := input.NewState()
	in.PushMotion(0, 1000)
	tr := transform.Identity()

	c.Update(in, capturedCursor(), &tr)

	if c.Pitch() != 0.1 {
		t.Fatalf("pitch\nhave %v\nwant 0.1", c.Pitch())
	}
}

func TestOrbitDisabledIgnoresMotionOnly(t *testing.T) {
	c := NewOrbitController(WithEnabled(false))
	in := input.NewState()
	in.PushMotion(100, -100)
	in.PushScroll(10)
	tr := transform.Identity()

	c.Update(in, capturedCursor(), &tr)

	if c.Angles != (mgl32.Vec2{0, 0.5}) {
		t.Fatalf("angles changed while disabled: %v", c.Angles)
	}
	if !near(c.Distance, 4.0, 1e-6) {
		t.Fatalf("distance\nhave %v\nwant 4.0", c.Distance)
	}
}

func TestOrbitFreeCursorDropsMotion(t *testing.T) {
	c := NewOrbitController()
	cur := &fakeCursor{mode: input.CursorModeFree, visible: true}
	tr := transform.Identity()

	in := input.NewState()
	in.PushMotion(100, 100)
	c.Update(in, cur, &tr)
	if c.Angles != (mgl32.Vec2{0, 0.5}) {
		t.Fatalf("angles changed while free: %v", c.Angles)
	}

	// Dropped motion is not replayed once the cursor is captured.
	in.EndFrame()
	in.Press(input.MouseButtonLeft)
	c.Update(in, cur, &tr)
	if c.Angles != (mgl32.Vec2{0, 0.5}) {
		t.Fatalf("buffered motion applied: %v", c.Angles)
	}
}

func TestOrbitButtonsToggleCapture(t *testing.T) {
	c := NewOrbitController()
	cur := &fakeCursor{mode: input.CursorModeFree, visible: true}
	tr := transform.Identity()
	in := input.NewState()

	// Capture takes effect for motion in the same frame.
	in.Press(input.MouseButtonLeft)
	in.PushMotion(-50, 0)
	c.Update(in, cur, &tr)
	if cur.mode != input.CursorModeCaptured || cur.visible {
		t.Fatalf("left press: have mode=%v visible=%v", cur.mode, cur.visible)
	}
	if !near(c.Yaw(), 0.1, 1e-6) {
		t.Fatalf("yaw\nhave %v\nwant 0.1", c.Yaw())
	}

	in.EndFrame()
	in.Press(input.MouseButtonRight)
	in.PushMotion(-50, 0)
	c.Update(in, cur, &tr)
	if cur.mode != input.CursorModeFree || !cur.visible {
		t.Fatalf("right press: have mode=%v visible=%v", cur.mode, cur.visible)
	}
	if !near(c.Yaw(), 0.1, 1e-6) {
		t.Fatalf("motion applied after release: yaw %v", c.Yaw())
	}

	// Holding the left button is not a new press.
	in.EndFrame()
	in.Press(input.MouseButtonLeft)
	c.Update(in, cur, &tr)
	if cur.mode != input.CursorModeFree {
		t.Fatalf("held button re-captured the cursor")
	}
}

func TestOrbitRandomSequencesStayInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := NewOrbitController()
	cur := capturedCursor()
	tr := transform.Identity()
	in := input.NewState()

	for frame := 0; frame < 500; frame++ {
		for range rng.Intn(5) {
			in.PushMotion(float32(rng.NormFloat64()*300), float32(rng.NormFloat64()*300))
		}
		for range rng.Intn(3) {
			in.PushScroll(float32(rng.NormFloat64() * 40))
		}
		c.Update(in, cur, &tr)
		in.EndFrame()

		if c.Pitch() < MinPitch || c.Pitch() > MaxPitch {
			t.Fatalf("frame %d: pitch %v out of [%v, %v]", frame, c.Pitch(), MinPitch, MaxPitch)
		}
		if c.Distance < MinDistance || c.Distance > MaxDistance {
			t.Fatalf("frame %d: distance %v out of [%v, %v]", frame, c.Distance, MinDistance, MaxDistance)
		}
		if have := tr.Translation.Len(); !near(have, c.Distance, 1e-4*c.Distance) {
			t.Fatalf("frame %d: |position|\nhave %v\nwant %v", frame, have, c.Distance)
		}
	}
}

func TestOrbitPositionMatchesOrientation(t *testing.T) {
	c := NewOrbitController(WithAngles(1.2, 0.7), WithDistance(3))
	want := c.Orientation().Rotate(mgl32.Vec3{0, 0, 3})
	if have := c.Position(); !vecNear(have, want, 1e-5) {
		t.Fatalf("position\nhave %v\nwant %v", have, want)
	}
}
