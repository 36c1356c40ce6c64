package light

import (
	"github.com/Sebman56/orbit3d/common"
	"github.com/go-gl/mathgl/mgl32"
)

// PointLight is a light component that emits in all directions from its entity's transform position.
// Intensity is a luminous power in lumens; light fades out completely at Range.
type PointLight struct {
	Color          common.Color
	Intensity      float32
	Range          float32
	ShadowsEnabled bool
	Enabled        bool
}

// NewPointLight creates an enabled white PointLight of 800 lumens with a range of 20
// and shadows off, then applies the provided options.
//
// Parameters:
//   - options: functional options to configure the light
//
// Returns:
//   - PointLight: the configured light component
func NewPointLight(options ...LightBuilderOption) PointLight {
	l := PointLight{
		Color:     common.ColorWhite,
		Intensity: 800,
		Range:     20,
		Enabled:   true,
	}
	for _, opt := range options {
		opt(&l)
	}
	return l
}

// Uniform builds the GPU light uniform for a light at position.
// A disabled light marshals with its enabled flag cleared so the shader skips it.
//
// Parameters:
//   - position: the light entity's world position
//   - ambient: scene ambient color added to every lit fragment
//
// Returns:
//   - GPULight: the uniform ready for Marshal
func (l PointLight) Uniform(position mgl32.Vec3, ambient common.Color) GPULight {
	g := GPULight{
		Position:     position,
		Intensity:    l.Intensity,
		Color:        [3]float32{l.Color.R, l.Color.G, l.Color.B},
		LightRange:   l.Range,
		AmbientColor: [3]float32{ambient.R, ambient.G, ambient.B},
	}
	if l.Enabled {
		g.Enabled = 1
	}
	if l.ShadowsEnabled {
		g.CastsShadows = 1
	}
	return g
}
