package model

import (
	"errors"
	"fmt"

	"github.com/Sebman56/orbit3d/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrEmptyMesh is returned by Validate when a model has no vertices or no indices.
var ErrEmptyMesh = errors.New("mesh has no geometry")

// model is the implementation of the Model interface.
type model struct {
	name           string
	vertices       []GPUVertex
	indices        []uint32
	boundingRadius float32
}

// Model defines the interface for a CPU-side triangle mesh.
// A Model owns its vertex and index data; the renderer uploads it once per distinct model
// and shares the GPU buffers between every entity that draws it.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Vertices retrieves the vertex list.
	//
	// Returns:
	//   - []GPUVertex: the vertices, not to be modified by the caller
	Vertices() []GPUVertex

	// Indices retrieves the triangle list indices.
	//
	// Returns:
	//   - []uint32: three indices per triangle
	Indices() []uint32

	// VertexData returns the raw vertex bytes for GPU upload.
	//
	// Returns:
	//   - []byte: a view over the vertex slice
	VertexData() []byte

	// IndexData returns the raw index bytes for GPU upload.
	//
	// Returns:
	//   - []byte: a view over the index slice
	IndexData() []byte

	// IndexCount returns the number of indices in the model's mesh.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// BoundingRadius returns the distance from the model origin to its farthest vertex.
	//
	// Returns:
	//   - float32: the bounding sphere radius
	BoundingRadius() float32

	// Validate checks that the mesh is non-empty, made of whole triangles,
	// and that every index refers to an existing vertex.
	//
	// Returns:
	//   - error: nil if the mesh is drawable
	Validate() error
}

var _ Model = &model{}

// NewModel creates a Model from the provided options and computes its bounding radius.
//
// Parameters:
//   - options: functional options for the model name and geometry
//
// Returns:
//   - Model: the new model
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}
	m.boundingRadius = computeBoundingRadius(m.vertices)
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Vertices() []GPUVertex {
	return m.vertices
}

func (m *model) Indices() []uint32 {
	return m.indices
}

func (m *model) VertexData() []byte {
	return common.SliceToBytes(m.vertices)
}

func (m *model) IndexData() []byte {
	return common.SliceToBytes(m.indices)
}

func (m *model) IndexCount() int {
	return len(m.indices)
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}

func (m *model) Validate() error {
	if len(m.vertices) == 0 || len(m.indices) == 0 {
		return fmt.Errorf("model %q: %w", m.name, ErrEmptyMesh)
	}
	if len(m.indices)%3 != 0 {
		return fmt.Errorf("model %q: index count %d is not a multiple of 3", m.name, len(m.indices))
	}
	for i, idx := range m.indices {
		if int(idx) >= len(m.vertices) {
			return fmt.Errorf("model %q: index %d at position %d out of range [0, %d)", m.name, idx, i, len(m.vertices))
		}
	}
	return nil
}

func computeBoundingRadius(vertices []GPUVertex) float32 {
	var r float32
	for i := range vertices {
		if l := mgl32.Vec3(vertices[i].Position).Len(); l > r {
			r = l
		}
	}
	return r
}
