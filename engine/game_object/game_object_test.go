package game_object

import (
	"testing"

	"github.com/Sebman56/orbit3d/common"
	"github.com/Sebman56/orbit3d/engine/model"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/arche/ecs"
)

func TestNewGameObject(t *testing.T) {
	w := ecs.NewWorld()
	cube := model.NewCube(1, model.DefaultFaceColors)

	obj := NewGameObject(&w, WithID(7), WithModel(cube), WithPosition(1, 2, 3))
	if obj.ID() != 7 {
		t.Fatalf("id\nhave %d\nwant 7", obj.ID())
	}
	if obj.Model() != cube {
		t.Fatal("model not stored")
	}
	if obj.Material() == nil || obj.Material().Unlit() {
		t.Fatal("default material should be lit")
	}
	if obj.Material().BaseColor() != common.ColorWhite {
		t.Fatalf("base color\nhave %+v\nwant white", obj.Material().BaseColor())
	}
	if !obj.Visible() {
		t.Fatal("objects are visible by default")
	}
	if have := obj.Position(); have != (mgl32.Vec3{1, 2, 3}) {
		t.Fatalf("position\nhave %v\nwant [1 2 3]", have)
	}
	if have := obj.Transform().Scale; have != (mgl32.Vec3{1, 1, 1}) {
		t.Fatalf("scale\nhave %v\nwant [1 1 1]", have)
	}
	if _, ok := obj.Spin(); ok {
		t.Fatal("object without WithSpin should not spin")
	}

	obj.SetPosition(0, 0, 0)
	obj.SetVisible(false)
	if obj.Position() != (mgl32.Vec3{}) || obj.Visible() {
		t.Fatal("setters did not update components")
	}
}

func TestSpin(t *testing.T) {
	w := ecs.NewWorld()
	cube := model.NewCube(1, model.DefaultFaceColors)

	spinning := NewGameObject(&w, WithModel(cube), WithSpin(0.5))
	if speed, ok := spinning.Spin(); !ok || speed != 0.5 {
		t.Fatalf("spin\nhave %v %v\nwant 0.5 true", speed, ok)
	}

	still := NewGameObject(&w, WithModel(cube))
	still.SetSpin(2)
	if speed, ok := still.Spin(); !ok || speed != 2 {
		t.Fatalf("SetSpin on new component\nhave %v %v\nwant 2 true", speed, ok)
	}
	still.SetSpin(3)
	if speed, _ := still.Spin(); speed != 3 {
		t.Fatalf("SetSpin on existing component\nhave %v\nwant 3", speed)
	}
}

func TestWrapAndRemove(t *testing.T) {
	w := ecs.NewWorld()
	obj := NewGameObject(&w, WithID(3), WithModel(model.NewCube(1, model.DefaultFaceColors)))

	h := Wrap(&w, obj.Entity())
	if h.ID() != 3 {
		t.Fatalf("wrapped id\nhave %d\nwant 3", h.ID())
	}
	h.Remove()
	if obj.Alive() {
		t.Fatal("entity still alive after Remove")
	}
}

func TestNewGameObjectWithoutModel(t *testing.T) {
	w := ecs.NewWorld()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic without a model")
		}
	}()
	NewGameObject(&w)
}
