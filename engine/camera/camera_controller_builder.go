package camera

// OrbitControllerOption is a functional option for configuring an OrbitController.
type OrbitControllerOption func(*OrbitController)

// WithEnabled sets whether drag rotation is active.
//
// Parameters:
//   - enabled: false to ignore pointer motion
//
// Returns:
//   - OrbitControllerOption: functional option to set the enabled flag
func WithEnabled(enabled bool) OrbitControllerOption {
	return func(c *OrbitController) {
		c.Enabled = enabled
	}
}

// WithSensitivity sets the drag-to-angle scale factor.
//
// Parameters:
//   - sensitivity: multiplier applied to pointer deltas
//
// Returns:
//   - OrbitControllerOption: functional option to set the sensitivity
func WithSensitivity(sensitivity float32) OrbitControllerOption {
	return func(c *OrbitController) {
		c.Sensitivity = sensitivity
	}
}

// WithZoomSensitivity sets the scroll-to-distance scale factor.
//
// Parameters:
//   - sensitivity: multiplier applied to scroll deltas
//
// Returns:
//   - OrbitControllerOption: functional option to set the zoom sensitivity
func WithZoomSensitivity(sensitivity float32) OrbitControllerOption {
	return func(c *OrbitController) {
		c.ZoomSensitivity = sensitivity
	}
}

// WithDistance sets the initial orbit radius. It is clamped into [MinDistance, MaxDistance].
//
// Parameters:
//   - distance: distance from the origin
//
// Returns:
//   - OrbitControllerOption: functional option to set the distance
func WithDistance(distance float32) OrbitControllerOption {
	return func(c *OrbitController) {
		c.Distance = distance
	}
}

// WithAngles sets the initial yaw and pitch in radians. Pitch is clamped into [MinPitch, MaxPitch].
//
// Parameters:
//   - yaw: horizontal angle, 0 places the camera on +Z
//   - pitch: vertical angle
//
// Returns:
//   - OrbitControllerOption: functional option to set the angles
func WithAngles(yaw, pitch float32) OrbitControllerOption {
	return func(c *OrbitController) {
		c.Angles[0] = yaw
		c.Angles[1] = pitch
	}
}
