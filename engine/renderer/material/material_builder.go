package material

import "github.com/Sebman56/orbit3d/common"

// MaterialBuilderOption is a functional option for configuring a Material via NewMaterial.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the material identifier.
//
// Parameters:
//   - name: the material name
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithBaseColor is an option builder that sets the base color.
//
// Parameters:
//   - c: the color multiplied with vertex colors
//
// Returns:
//   - MaterialBuilderOption: a function that applies the base color option to a material
func WithBaseColor(c common.Color) MaterialBuilderOption {
	return func(m *material) {
		m.baseColor = c
	}
}

// WithUnlit is an option builder that disables lighting for the material.
//
// Parameters:
//   - unlit: true to output vertex colors unshaded
//
// Returns:
//   - MaterialBuilderOption: a function that applies the unlit option to a material
func WithUnlit(unlit bool) MaterialBuilderOption {
	return func(m *material) {
		m.unlit = unlit
	}
}
