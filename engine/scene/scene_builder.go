package scene

import "github.com/Sebman56/orbit3d/common"

// SceneBuilderOption is a functional option for configuring a Scene via NewScene.
type SceneBuilderOption func(*scene)

// WithDrawWorkers sets the number of workers that build draw uniforms in parallel.
// Values below 1 are ignored. Defaults to one less than the CPU count.
//
// Parameters:
//   - n: the worker count
//
// Returns:
//   - SceneBuilderOption: a function that applies the worker count to a scene
func WithDrawWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n > 0 {
			s.drawWorkers = n
		}
	}
}

// WithAmbientColor sets the ambient term added to lit materials.
//
// Parameters:
//   - c: the ambient color
//
// Returns:
//   - SceneBuilderOption: a function that applies the ambient color to a scene
func WithAmbientColor(c common.Color) SceneBuilderOption {
	return func(s *scene) {
		s.ambient = c
	}
}
