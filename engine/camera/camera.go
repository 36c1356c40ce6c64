package camera

import (
	"math"

	"github.com/Sebman56/orbit3d/common"
	"github.com/Sebman56/orbit3d/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera3D is the projection component of a camera entity.
// Its placement comes from the entity's transform.Transform; the view matrix is the inverse of it.
type Camera3D struct {
	// Fov is the vertical field of view in radians.
	Fov float32
	// Aspect is the viewport width divided by its height.
	Aspect float32
	// Near and Far are the clipping plane distances.
	Near float32
	Far  float32
}

// NewCamera3D creates a Camera3D with a 45 degree field of view, a 16:9 aspect ratio
// and clip planes at 0.1 and 100, then applies the provided options.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera3D: the configured camera component
func NewCamera3D(options ...CameraBuilderOption) Camera3D {
	c := Camera3D{
		Fov:    float32(math.Pi / 4),
		Aspect: 16.0 / 9.0,
		Near:   0.1,
		Far:    100.0,
	}
	for _, opt := range options {
		opt(&c)
	}
	return c
}

// Projection returns the perspective projection matrix with WebGPU [0, 1] depth.
func (c Camera3D) Projection() mgl32.Mat4 {
	return common.Perspective(c.Fov, c.Aspect, c.Near, c.Far)
}

// View returns the world-to-view matrix for a camera placed at t.
func (c Camera3D) View(t transform.Transform) mgl32.Mat4 {
	return t.Matrix().Inv()
}

// ViewProjection returns Projection() * View(t).
func (c Camera3D) ViewProjection(t transform.Transform) mgl32.Mat4 {
	return c.Projection().Mul4(c.View(t))
}

// Uniform builds the GPU camera uniform for a camera placed at t.
//
// Parameters:
//   - t: the camera entity's transform
//
// Returns:
//   - GPUCameraUniform: the uniform ready for Marshal
func (c Camera3D) Uniform(t transform.Transform) GPUCameraUniform {
	return GPUCameraUniform{
		ViewProj:       c.ViewProjection(t),
		CameraPosition: t.Translation,
	}
}
