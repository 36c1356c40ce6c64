package transform

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

// vecApprox compares with an absolute tolerance so zero components do not demand an exact match.
func vecApprox(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() <= eps
}

func TestLookAtFromPositiveZ(t *testing.T) {
	tr := FromXYZ(0, 0, 5).LookingAt(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})

	if have, want := tr.Forward(), (mgl32.Vec3{0, 0, -1}); !vecApprox(have, want) {
		t.Fatalf("forward\nhave %v\nwant %v", have, want)
	}
	if have, want := tr.Up(), (mgl32.Vec3{0, 1, 0}); !vecApprox(have, want) {
		t.Fatalf("up\nhave %v\nwant %v", have, want)
	}
}

func TestLookAtOblique(t *testing.T) {
	eye := mgl32.Vec3{-3, 3, 5}
	tr := FromXYZ(eye[0], eye[1], eye[2]).LookingAt(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})

	want := eye.Mul(-1).Normalize()
	if have := tr.Forward(); !vecApprox(have, want) {
		t.Fatalf("forward\nhave %v\nwant %v", have, want)
	}
	// No roll: the local right axis stays horizontal.
	right := tr.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
	if math.Abs(float64(right[1])) > eps {
		t.Fatalf("right axis tilted: %v", right)
	}
}

func TestLookAtStraightDown(t *testing.T) {
	tr := FromXYZ(0, 10, 0).LookingAt(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	if have, want := tr.Forward(), (mgl32.Vec3{0, -1, 0}); !vecApprox(have, want) {
		t.Fatalf("forward\nhave %v\nwant %v", have, want)
	}
}

func TestLookAtSelfKeepsRotation(t *testing.T) {
	tr := Identity()
	tr.LookAt(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	if tr.Rotation != mgl32.QuatIdent() {
		t.Fatalf("rotation changed: %v", tr.Rotation)
	}
}

func TestRotateYAccumulates(t *testing.T) {
	tr := Identity()
	tr.RotateY(0.25)
	tr.RotateY(0.75)

	x := tr.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
	angle := math.Atan2(float64(-x[2]), float64(x[0]))
	if math.Abs(angle-1.0) > eps {
		t.Fatalf("yaw\nhave %v\nwant 1.0", angle)
	}
}

func TestMatrixTranslation(t *testing.T) {
	tr := FromXYZ(4, 8, 4)
	tr.RotateY(1)
	m := tr.Matrix()
	if have, want := m.Col(3), (mgl32.Vec4{4, 8, 4, 1}); have.Sub(want).Len() > eps {
		t.Fatalf("translation column\nhave %v\nwant %v", have, want)
	}
}
