package light

import "github.com/Sebman56/orbit3d/common"

// LightBuilderOption is a function that configures a PointLight during construction.
type LightBuilderOption func(*PointLight)

// WithColor is an option builder that sets the color of the light.
//
// Parameters:
//   - c: the light color
//
// Returns:
//   - LightBuilderOption: a function that applies the color option
func WithColor(c common.Color) LightBuilderOption {
	return func(l *PointLight) {
		l.Color = c
	}
}

// WithIntensity is an option builder that sets the luminous power of the light in lumens.
//
// Parameters:
//   - intensity: the light power
//
// Returns:
//   - LightBuilderOption: a function that applies the intensity option
func WithIntensity(intensity float32) LightBuilderOption {
	return func(l *PointLight) {
		l.Intensity = intensity
	}
}

// WithRange is an option builder that sets the distance at which the light stops contributing.
//
// Parameters:
//   - r: the cutoff distance
//
// Returns:
//   - LightBuilderOption: a function that applies the range option
func WithRange(r float32) LightBuilderOption {
	return func(l *PointLight) {
		l.Range = r
	}
}

// WithShadows is an option builder that flags the light as a shadow caster.
func WithShadows(enabled bool) LightBuilderOption {
	return func(l *PointLight) {
		l.ShadowsEnabled = enabled
	}
}

// WithEnabled is an option builder that turns the light on or off.
func WithEnabled(enabled bool) LightBuilderOption {
	return func(l *PointLight) {
		l.Enabled = enabled
	}
}
