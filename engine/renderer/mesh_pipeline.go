package renderer

import (
	_ "embed"

	"github.com/Sebman56/orbit3d/engine/camera"
	"github.com/Sebman56/orbit3d/engine/light"
	"github.com/Sebman56/orbit3d/engine/model"
	"github.com/Sebman56/orbit3d/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed assets/mesh.wgsl
var meshShaderSource string

// MeshPipelineKey is the cache key of the built-in pipeline that draws every mesh.
const MeshPipelineKey = "mesh"

// Bind group numbers used by the mesh shader.
const (
	// frameGroup holds the camera (binding 0) and the point light (binding 1).
	frameGroup = 0
	// objectGroup holds the per-object model uniform (binding 0).
	objectGroup = 1
)

var (
	cameraUniformSize = uint64((&camera.GPUCameraUniform{}).Size())
	lightUniformSize  = uint64((&light.GPULight{}).Size())
	objectUniformSize = uint64((&model.GPUModelUniform{}).Size())
	vertexStride      = uint64((&model.GPUVertex{}).Size())
)

// meshVertexLayout mirrors model.GPUVertex: position, normal, uv, color.
func meshVertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: vertexStride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
			{Format: wgpu.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 2},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 3},
		},
	}
}

func frameBindGroupLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "Frame Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: cameraUniformSize,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: lightUniformSize,
				},
			},
		},
	}
}

func objectBindGroupLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "Object Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: objectUniformSize,
				},
			},
		},
	}
}

// newMeshPipeline describes the single pipeline used by the demos. Meshes are closed and wound
// counter-clockwise, so back faces are culled.
func newMeshPipeline() pipeline.Pipeline {
	return pipeline.NewPipeline(MeshPipelineKey,
		pipeline.WithSource(meshShaderSource),
		pipeline.WithVertexLayouts(meshVertexLayout()),
		pipeline.WithBindGroupLayouts(frameBindGroupLayout(), objectBindGroupLayout()),
		pipeline.WithCullMode(wgpu.CullModeBack),
		pipeline.WithFrontFace(wgpu.FrontFaceCCW),
	)
}
