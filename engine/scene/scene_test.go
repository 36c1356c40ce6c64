package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/Sebman56/orbit3d/common"
	"github.com/Sebman56/orbit3d/engine/camera"
	"github.com/Sebman56/orbit3d/engine/game_object"
	"github.com/Sebman56/orbit3d/engine/input"
	"github.com/Sebman56/orbit3d/engine/light"
	"github.com/Sebman56/orbit3d/engine/model"
	"github.com/Sebman56/orbit3d/engine/renderer/material"
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

func cube() model.Model {
	return model.NewCube(1, model.DefaultFaceColors)
}

func yawOf(q mgl32.Quat) float64 {
	x := q.Rotate(mgl32.Vec3{1, 0, 0})
	return math.Atan2(float64(-x[2]), float64(x[0]))
}

// vecNear compares with an absolute tolerance so zero components do not demand an exact match.
func vecNear(a, b mgl32.Vec3, eps float32) bool {
	return a.Sub(b).Len() <= eps
}

func expectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	fn()
}

func TestSpinSystemOneFrame(t *testing.T) {
	s := NewScene("spin", WithDrawWorkers(2))
	defer s.Release()
	obj := s.SpawnMesh(game_object.WithModel(cube()), game_object.WithSpin(DefaultSpinSpeed))
	still := s.SpawnMesh(game_object.WithModel(cube()))

	SpinSystem(s, Frame{Delta: 2.0})

	if have := yawOf(obj.Rotation()); math.Abs(have-1.0) > 1e-6 {
		t.Fatalf("spin angle\nhave %v\nwant 1.0", have)
	}
	if have := still.Rotation(); have != mgl32.QuatIdent() {
		t.Fatalf("non-spinning mesh rotated: %v", have)
	}
}

func TestSpinSystemAccumulates(t *testing.T) {
	s := NewScene("spin")
	defer s.Release()
	obj := s.SpawnMesh(game_object.WithModel(cube()), game_object.WithSpin(DefaultSpinSpeed))
	for range 4 {
		SpinSystem(s, Frame{Delta: 0.25})
	}
	if have := yawOf(obj.Rotation()); math.Abs(have-0.5) > 1e-5 {
		t.Fatalf("spin angle\nhave %v\nwant 0.5", have)
	}
}

func TestSpinSystemSeparateScenes(t *testing.T) {
	a := NewScene("a")
	defer a.Release()
	b := NewScene("b")
	defer b.Release()

	b.SpawnLight(transform.FromXYZ(0, 1, 0), light.NewPointLight())
	objA := a.SpawnMesh(game_object.WithModel(cube()), game_object.WithSpin(1))
	objB := b.SpawnMesh(game_object.WithModel(cube()), game_object.WithSpin(2))

	for range 2 {
		SpinSystem(a, Frame{Delta: 0.25})
		SpinSystem(b, Frame{Delta: 0.25})
	}
	if have := yawOf(objA.Rotation()); math.Abs(have-0.5) > 1e-5 {
		t.Fatalf("scene a angle\nhave %v\nwant 0.5", have)
	}
	if have := yawOf(objB.Rotation()); math.Abs(have-1.0) > 1e-5 {
		t.Fatalf("scene b angle\nhave %v\nwant 1.0", have)
	}
}

func TestOrbitCameraCardinality(t *testing.T) {
	s := NewScene("cameras")
	defer s.Release()

	if _, _, err := s.OrbitCamera(); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("empty scene\nhave %v\nwant %v", err, ErrNoMatch)
	}

	s.SpawnOrbitCamera(camera.NewCamera3D(), camera.NewOrbitController())
	tr, ctrl, err := s.OrbitCamera()
	if err != nil {
		t.Fatalf("single camera: %v", err)
	}
	if !vecNear(tr.Translation, mgl32.Vec3{0, 0, 5}, 1e-5) || ctrl.Distance != 5 {
		t.Fatalf("initial placement\nhave %v distance %v", tr.Translation, ctrl.Distance)
	}

	s.SpawnOrbitCamera(camera.NewCamera3D(), camera.NewOrbitController())
	if _, _, err := s.OrbitCamera(); !errors.Is(err, ErrMultipleMatches) {
		t.Fatalf("two cameras\nhave %v\nwant %v", err, ErrMultipleMatches)
	}
}

func TestStaticCameraIsNotOrbitCamera(t *testing.T) {
	s := NewScene("static")
	defer s.Release()
	s.SpawnCamera(transform.FromXYZ(-3, 3, 5), camera.NewCamera3D())

	if _, _, err := s.RenderCamera(); err != nil {
		t.Fatalf("render camera: %v", err)
	}
	if _, _, err := s.OrbitCamera(); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("static camera reported as orbit camera: %v", err)
	}
}

func TestOrbitCameraSystem(t *testing.T) {
	s := NewScene("orbit")
	defer s.Release()
	s.SpawnOrbitCamera(camera.NewCamera3D(), camera.NewOrbitController())
	cur := &fakeCursor{visible: true}
	in := input.NewState()

	in.Press(input.MouseButtonLeft)
	in.PushMotion(100, 0)
	in.PushScroll(50)
	OrbitCameraSystem(s, Frame{Delta: 0.016, Input: in, Cursor: cur})

	tr, ctrl, _ := s.OrbitCamera()
	if cur.mode != input.CursorModeCaptured || cur.visible {
		t.Fatalf("cursor not captured: %+v", cur)
	}
	if math.Abs(float64(ctrl.Yaw()+0.2)) > 1e-6 || ctrl.Distance != 1 {
		t.Fatalf("controller\nhave yaw %v distance %v\nwant yaw -0.2 distance 1", ctrl.Yaw(), ctrl.Distance)
	}
	if have := tr.Translation.Len(); math.Abs(float64(have-1)) > 1e-5 {
		t.Fatalf("|position|\nhave %v\nwant 1", have)
	}
}

func TestOrbitCameraSystemFatal(t *testing.T) {
	in := input.NewState()

	s := NewScene("no camera")
	defer s.Release()
	expectPanic(t, func() { OrbitCameraSystem(s, Frame{Input: in, Cursor: &fakeCursor{}}) })

	s.SpawnOrbitCamera(camera.NewCamera3D(), camera.NewOrbitController())
	expectPanic(t, func() { OrbitCameraSystem(s, Frame{Input: in}) })
}

func TestSpawnMeshIDs(t *testing.T) {
	s := NewScene("ids")
	defer s.Release()
	a := s.SpawnMesh(game_object.WithModel(cube()), game_object.WithID(99))
	b := s.SpawnMesh(game_object.WithModel(cube()))

	if a.ID() != 1 || b.ID() != 2 {
		t.Fatalf("ids\nhave %d, %d\nwant 1, 2", a.ID(), b.ID())
	}
	objs := s.GameObjects()
	if len(objs) != 2 || objs[0].ID() != 1 || objs[1].ID() != 2 {
		t.Fatalf("game objects out of order")
	}
}

func TestDrawList(t *testing.T) {
	s := NewScene("draw", WithDrawWorkers(3))
	defer s.Release()
	unlit := material.NewMaterial(material.WithUnlit(true), material.WithBaseColor(common.ColorRed))
	for i := range 5 {
		s.SpawnMesh(game_object.WithModel(cube()), game_object.WithMaterial(unlit), game_object.WithPosition(float32(i), 0, 0))
	}
	hidden := s.SpawnMesh(game_object.WithModel(cube()), game_object.WithVisible(false))

	items := s.DrawList()
	if len(items) != 5 {
		t.Fatalf("draw items\nhave %d\nwant 5", len(items))
	}
	for i, item := range items {
		if item.ID == hidden.ID() {
			t.Fatalf("hidden mesh drawn")
		}
		if item.ID != uint64(i+1) {
			t.Fatalf("item %d id\nhave %d\nwant %d", i, item.ID, i+1)
		}
		if item.Uniform.Unlit != 1 || item.Uniform.BaseColor != common.ColorRed.Array() {
			t.Fatalf("item %d uniform %+v", i, item.Uniform)
		}
		if have := item.Uniform.Model[12]; have != float32(i) {
			t.Fatalf("item %d translation x\nhave %v\nwant %d", i, have, i)
		}
	}
}

func TestDrawListAfterRelease(t *testing.T) {
	s := NewScene("released", WithDrawWorkers(2))
	for i := range 3 {
		s.SpawnMesh(game_object.WithModel(cube()), game_object.WithPosition(0, float32(i), 0))
	}
	s.Release()
	s.Release()

	items := s.DrawList()
	if len(items) != 3 {
		t.Fatalf("draw items\nhave %d\nwant 3", len(items))
	}
	for i, item := range items {
		if item.ID != uint64(i+1) {
			t.Fatalf("item %d id\nhave %d\nwant %d", i, item.ID, i+1)
		}
		if have := item.Uniform.Model[13]; have != float32(i) {
			t.Fatalf("item %d translation y\nhave %v\nwant %d", i, have, i)
		}
	}
}

func TestSetAspectAndUniforms(t *testing.T) {
	s := NewScene("uniforms")
	defer s.Release()
	s.SpawnCamera(transform.FromXYZ(-3, 3, 5).LookingAt(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}), camera.NewCamera3D())

	if g := s.LightUniform(); g.Enabled != 0 {
		t.Fatalf("light enabled without a light entity")
	}

	s.SpawnLight(transform.FromXYZ(4, 8, 4), light.NewPointLight(light.WithIntensity(1500), light.WithShadows(true)))
	g := s.LightUniform()
	if g.Enabled != 1 || g.Position != [3]float32{4, 8, 4} || g.Intensity != 1500 || g.CastsShadows != 1 {
		t.Fatalf("light uniform %+v", g)
	}

	s.SetAspect(2)
	s.SetAspect(-1)
	_, cam, err := s.RenderCamera()
	if err != nil {
		t.Fatalf("render camera: %v", err)
	}
	if cam.Aspect != 2 {
		t.Fatalf("aspect\nhave %v\nwant 2", cam.Aspect)
	}

	u, err := s.CameraUniform()
	if err != nil {
		t.Fatalf("camera uniform: %v", err)
	}
	if u.CameraPosition != [3]float32{-3, 3, 5} {
		t.Fatalf("camera position %v", u.CameraPosition)
	}
}
