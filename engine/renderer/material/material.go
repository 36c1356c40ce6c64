package material

import "github.com/Sebman56/orbit3d/common"

// material is the implementation of the Material interface.
type material struct {
	name      string
	baseColor common.Color
	unlit     bool
}

// Material defines the interface for a surface description used by draw calls.
//
// An unlit material outputs vertex color times base color unchanged. A lit material
// additionally scales it by the scene ambient term plus a diffuse contribution of the point light.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// BaseColor retrieves the color multiplied with every vertex color.
	//
	// Returns:
	//   - common.Color: the base color
	BaseColor() common.Color

	// Unlit reports whether lighting is skipped for this material.
	//
	// Returns:
	//   - bool: true if the material ignores lights
	Unlit() bool
}

var _ Material = &material{}

// NewMaterial creates a white, lit Material and applies the provided options.
//
// Parameters:
//   - options: functional options to configure the material
//
// Returns:
//   - Material: the new material
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		name:      "default",
		baseColor: common.ColorWhite,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) BaseColor() common.Color {
	return m.baseColor
}

func (m *material) Unlit() bool {
	return m.unlit
}
