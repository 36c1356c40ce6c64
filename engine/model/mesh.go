package model

import (
	"fmt"
	"math"

	"github.com/Sebman56/orbit3d/common"
	"github.com/go-gl/mathgl/mgl32"
)

// HexadecagonSegments is the rim vertex count of the generated polygon demo mesh.
const HexadecagonSegments = 16

// FaceColors assigns one color to each box face, in the order front (+Z), back (-Z),
// right (+X), left (-X), top (+Y), bottom (-Y).
type FaceColors [6]common.Color

// DefaultFaceColors is the palette of the cube and brick demos.
var DefaultFaceColors = FaceColors{
	common.ColorRed,
	common.ColorGreen,
	common.ColorBlue,
	common.ColorYellow,
	common.ColorCyan,
	common.ColorPurple,
}

// NewCube returns an axis-aligned cube of edge length size centered on the origin,
// with four vertices per face so each face carries its own color and normal.
// It panics if size is not positive.
//
// Parameters:
//   - size: edge length
//   - colors: per-face colors
//
// Returns:
//   - Model: 24 vertices, 36 indices
func NewCube(size float32, colors FaceColors) Model {
	h := size / 2
	return newBox("cube", mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{h, h, h}, colors)
}

// NewBox returns an axis-aligned box spanning min to max with per-face colors.
// It panics if min is not strictly below max on every axis.
//
// Parameters:
//   - min: lowest corner
//   - max: highest corner
//   - colors: per-face colors
//
// Returns:
//   - Model: 24 vertices, 36 indices
func NewBox(min, max mgl32.Vec3, colors FaceColors) Model {
	return newBox("box", min, max, colors)
}

func newBox(name string, min, max mgl32.Vec3, colors FaceColors) Model {
	for axis := range 3 {
		if !(min[axis] < max[axis]) {
			panic(fmt.Sprintf("%s: min %v is not below max %v", name, min, max))
		}
	}

	type corner struct {
		pos [3]float32
		uv  [2]float32
	}
	faces := [6]struct {
		normal  [3]float32
		corners [4]corner
	}{
		{[3]float32{0, 0, 1}, [4]corner{
			{[3]float32{min[0], min[1], max[2]}, [2]float32{0, 0}},
			{[3]float32{max[0], min[1], max[2]}, [2]float32{1, 0}},
			{[3]float32{max[0], max[1], max[2]}, [2]float32{1, 1}},
			{[3]float32{min[0], max[1], max[2]}, [2]float32{0, 1}},
		}},
		{[3]float32{0, 0, -1}, [4]corner{
			{[3]float32{min[0], max[1], min[2]}, [2]float32{1, 0}},
			{[3]float32{max[0], max[1], min[2]}, [2]float32{0, 0}},
			{[3]float32{max[0], min[1], min[2]}, [2]float32{0, 1}},
			{[3]float32{min[0], min[1], min[2]}, [2]float32{1, 1}},
		}},
		{[3]float32{1, 0, 0}, [4]corner{
			{[3]float32{max[0], min[1], min[2]}, [2]float32{0, 0}},
			{[3]float32{max[0], max[1], min[2]}, [2]float32{1, 0}},
			{[3]float32{max[0], max[1], max[2]}, [2]float32{1, 1}},
			{[3]float32{max[0], min[1], max[2]}, [2]float32{0, 1}},
		}},
		{[3]float32{-1, 0, 0}, [4]corner{
			{[3]float32{min[0], min[1], max[2]}, [2]float32{1, 0}},
			{[3]float32{min[0], max[1], max[2]}, [2]float32{0, 0}},
			{[3]float32{min[0], max[1], min[2]}, [2]float32{0, 1}},
			{[3]float32{min[0], min[1], min[2]}, [2]float32{1, 1}},
		}},
		{[3]float32{0, 1, 0}, [4]corner{
			{[3]float32{max[0], max[1], min[2]}, [2]float32{1, 0}},
			{[3]float32{min[0], max[1], min[2]}, [2]float32{0, 0}},
			{[3]float32{min[0], max[1], max[2]}, [2]float32{0, 1}},
			{[3]float32{max[0], max[1], max[2]}, [2]float32{1, 1}},
		}},
		{[3]float32{0, -1, 0}, [4]corner{
			{[3]float32{max[0], min[1], max[2]}, [2]float32{0, 0}},
			{[3]float32{min[0], min[1], max[2]}, [2]float32{1, 0}},
			{[3]float32{min[0], min[1], min[2]}, [2]float32{1, 1}},
			{[3]float32{max[0], min[1], min[2]}, [2]float32{0, 1}},
		}},
	}

	vertices := make([]GPUVertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for f, face := range faces {
		base := uint32(len(vertices))
		for _, c := range face.corners {
			vertices = append(vertices, GPUVertex{
				Position: c.pos,
				Normal:   face.normal,
				TexCoord: c.uv,
				Color:    colors[f].Array(),
			})
		}
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}

	return mustModel(NewModel(WithName(name), WithVertices(vertices), WithIndices(indices)))
}

// NewPolygon returns a flat regular polygon of the given radius in the XY plane, facing +Z,
// built as a triangle fan around a center vertex. Every vertex gets the same color.
// It panics if segments is below 3 or radius is not positive.
//
// Parameters:
//   - segments: number of rim vertices
//   - radius: distance from the center to each rim vertex
//   - color: the single vertex color
//
// Returns:
//   - Model: segments+1 vertices, 3*segments indices
func NewPolygon(segments int, radius float32, color common.Color) Model {
	if segments < 3 {
		panic(fmt.Sprintf("polygon: need at least 3 segments, got %d", segments))
	}
	if !(radius > 0) {
		panic(fmt.Sprintf("polygon: radius must be positive, got %v", radius))
	}

	normal := [3]float32{0, 0, 1}
	rgba := color.Array()

	vertices := make([]GPUVertex, 0, segments+1)
	vertices = append(vertices, GPUVertex{
		Normal:   normal,
		TexCoord: [2]float32{0.5, 0.5},
		Color:    rgba,
	})
	for i := range segments {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		cos, sin := float32(math.Cos(angle)), float32(math.Sin(angle))
		vertices = append(vertices, GPUVertex{
			Position: [3]float32{cos * radius, sin * radius, 0},
			Normal:   normal,
			TexCoord: [2]float32{0.5 + 0.5*cos, 0.5 + 0.5*sin},
			Color:    rgba,
		})
	}

	indices := make([]uint32, 0, 3*segments)
	for i := uint32(1); i < uint32(segments); i++ {
		indices = append(indices, 0, i, i+1)
	}
	indices = append(indices, 0, uint32(segments), 1)

	name := fmt.Sprintf("polygon-%d", segments)
	return mustModel(NewModel(WithName(name), WithVertices(vertices), WithIndices(indices)))
}

// NewHexadecagon returns the 16-sided unit polygon used by the polygon demo.
func NewHexadecagon(color common.Color) Model {
	return NewPolygon(HexadecagonSegments, 1, color)
}

func mustModel(m Model) Model {
	if err := m.Validate(); err != nil {
		panic(err)
	}
	return m
}
