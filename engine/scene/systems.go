package scene

import "fmt"

// DefaultSpinSpeed is the angular velocity of the demo meshes in radians per second.
const DefaultSpinSpeed float32 = 0.5

// SpinSystem rotates every entity carrying a Spin component about world Y by Speed * Delta.
func SpinSystem(s Scene, f Frame) {
	s.RotateSpinning(f.Delta)
}

// OrbitCameraSystem applies this frame's input to the single orbit camera.
// A missing window cursor or anything other than exactly one orbit camera is fatal.
func OrbitCameraSystem(s Scene, f Frame) {
	if f.Cursor == nil {
		panic("scene: orbit camera system requires a window cursor")
	}
	if f.Input == nil {
		panic("scene: orbit camera system requires input state")
	}
	t, ctrl, err := s.OrbitCamera()
	if err != nil {
		panic(fmt.Sprintf("scene: %v", err))
	}
	ctrl.Update(f.Input, f.Cursor, t)
}
