package model

import (
	"errors"
	"math"
	"testing"

	"github.com/Sebman56/orbit3d/common"
	"github.com/go-gl/mathgl/mgl32"
)

func TestCubeLayout(t *testing.T) {
	m := NewCube(1, DefaultFaceColors)

	if have := len(m.Vertices()); have != 24 {
		t.Fatalf("vertex count\nhave %d\nwant 24", have)
	}
	if have := m.IndexCount(); have != 36 {
		t.Fatalf("index count\nhave %d\nwant 36", have)
	}
	for i, v := range m.Vertices() {
		want := DefaultFaceColors[i/4].Array()
		if v.Color != want {
			t.Fatalf("vertex %d color\nhave %v\nwant %v", i, v.Color, want)
		}
		for axis := range 3 {
			if math.Abs(float64(v.Position[axis])) != 0.5 {
				t.Fatalf("vertex %d not on the unit cube: %v", i, v.Position)
			}
		}
	}
	if have, want := m.BoundingRadius(), float32(math.Sqrt(0.75)); math.Abs(float64(have-want)) > 1e-6 {
		t.Fatalf("bounding radius\nhave %v\nwant %v", have, want)
	}
}

func TestCubeFacesWindOutward(t *testing.T) {
	m := NewCube(2, DefaultFaceColors)
	vs, is := m.Vertices(), m.Indices()
	for tri := 0; tri < len(is); tri += 3 {
		a := mgl32.Vec3(vs[is[tri]].Position)
		b := mgl32.Vec3(vs[is[tri+1]].Position)
		c := mgl32.Vec3(vs[is[tri+2]].Position)
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Dot(mgl32.Vec3(vs[is[tri]].Normal)) <= 0 {
			t.Fatalf("triangle %d winds inward", tri/3)
		}
	}
}

func TestBrickBounds(t *testing.T) {
	m := NewBox(mgl32.Vec3{-1.5, -0.5, -1}, mgl32.Vec3{1.5, 0.5, 1}, DefaultFaceColors)
	lo := mgl32.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	hi := lo.Mul(-1)
	for _, v := range m.Vertices() {
		for axis := range 3 {
			lo[axis] = min(lo[axis], v.Position[axis])
			hi[axis] = max(hi[axis], v.Position[axis])
		}
	}
	if lo != (mgl32.Vec3{-1.5, -0.5, -1}) || hi != (mgl32.Vec3{1.5, 0.5, 1}) {
		t.Fatalf("bounds\nhave %v..%v\nwant [-1.5 -0.5 -1]..[1.5 0.5 1]", lo, hi)
	}
}

func TestBoxRejectsInvertedBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	NewBox(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 1}, DefaultFaceColors)
}

func TestHexadecagon(t *testing.T) {
	cyan := common.HSL(180, 1, 0.5)
	m := NewHexadecagon(cyan)

	vs, is := m.Vertices(), m.Indices()
	if len(vs) != 17 || len(is) != 48 {
		t.Fatalf("counts\nhave %d vertices, %d indices\nwant 17, 48", len(vs), len(is))
	}
	if vs[0].Position != [3]float32{} || vs[0].TexCoord != [2]float32{0.5, 0.5} {
		t.Fatalf("center vertex: %+v", vs[0])
	}
	for i, v := range vs {
		if v.Color != cyan.Array() {
			t.Fatalf("vertex %d color\nhave %v\nwant %v", i, v.Color, cyan.Array())
		}
		if v.Normal != [3]float32{0, 0, 1} {
			t.Fatalf("vertex %d normal %v", i, v.Normal)
		}
		if i > 0 {
			if r := mgl32.Vec3(v.Position).Len(); math.Abs(float64(r-1)) > 1e-6 {
				t.Fatalf("rim vertex %d radius %v", i, r)
			}
		}
	}
	if got := is[len(is)-3:]; got[0] != 0 || got[1] != 16 || got[2] != 1 {
		t.Fatalf("closing triangle\nhave %v\nwant [0 16 1]", got)
	}
	if got := is[:3]; got[0] != 0 || got[1] != 1 || got[2] != 2 {
		t.Fatalf("first triangle\nhave %v\nwant [0 1 2]", got)
	}
}

func TestPolygonRejectsDegenerate(t *testing.T) {
	for _, tc := range []struct {
		name     string
		segments int
		radius   float32
	}{
		{"two segments", 2, 1},
		{"zero radius", 8, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			NewPolygon(tc.segments, tc.radius, common.ColorWhite)
		})
	}
}

func TestValidate(t *testing.T) {
	v := []GPUVertex{{}, {}, {}}

	if err := NewModel(WithName("empty")).Validate(); !errors.Is(err, ErrEmptyMesh) {
		t.Fatalf("empty model\nhave %v\nwant %v", err, ErrEmptyMesh)
	}
	if err := NewModel(WithVertices(v), WithIndices([]uint32{0, 1})).Validate(); err == nil {
		t.Fatalf("partial triangle accepted")
	}
	if err := NewModel(WithVertices(v), WithIndices([]uint32{0, 1, 3})).Validate(); err == nil {
		t.Fatalf("out of range index accepted")
	}
	if err := NewModel(WithVertices(v), WithIndices([]uint32{0, 1, 2})).Validate(); err != nil {
		t.Fatalf("valid model rejected: %v", err)
	}
}

func TestGPUTypeSizes(t *testing.T) {
	var v GPUVertex
	if v.Size() != 48 || len(v.Marshal()) != 48 {
		t.Fatalf("GPUVertex size %d", v.Size())
	}
	u := GPUModelUniform{Unlit: 1}
	buf := u.Marshal()
	if u.Size() != 96 || len(buf) != 96 {
		t.Fatalf("GPUModelUniform size %d", u.Size())
	}
	if buf[80] != 1 {
		t.Fatalf("unlit flag not at offset 80")
	}
}

func TestByteViews(t *testing.T) {
	m := NewCube(1, DefaultFaceColors)
	if have := len(m.VertexData()); have != 24*48 {
		t.Fatalf("vertex bytes\nhave %d\nwant %d", have, 24*48)
	}
	if have := len(m.IndexData()); have != 36*4 {
		t.Fatalf("index bytes\nhave %d\nwant %d", have, 36*4)
	}
}
