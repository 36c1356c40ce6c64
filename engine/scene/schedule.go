package scene

import (
	"github.com/Sebman56/orbit3d/engine/camera"
	"github.com/Sebman56/orbit3d/engine/input"
)

// Frame is the per-frame context handed to every system.
type Frame struct {
	// Delta is the time since the previous frame in seconds.
	Delta float32
	// Input holds the pointer events and button edges of this frame.
	Input *input.State
	// Cursor is the window's pointer, or nil when running without a window.
	Cursor camera.Cursor
}

// System is a unit of per-frame logic run against a Scene.
type System func(s Scene, f Frame)

// Schedule runs startup systems once, then update systems every frame, each group in
// registration order.
type Schedule struct {
	startup []System
	update  []System
	started bool
}

// NewSchedule creates an empty Schedule.
//
// Returns:
//   - *Schedule: the new schedule
func NewSchedule() *Schedule {
	return &Schedule{}
}

// AddStartup registers systems that run once, before the first update.
// Systems added after the first Run never execute.
func (sc *Schedule) AddStartup(systems ...System) {
	sc.startup = append(sc.startup, systems...)
}

// AddUpdate registers systems that run every frame.
func (sc *Schedule) AddUpdate(systems ...System) {
	sc.update = append(sc.update, systems...)
}

// Started reports whether the startup systems have run.
func (sc *Schedule) Started() bool {
	return sc.started
}

// Run executes one frame: the startup systems on the first call, then every update system.
//
// Parameters:
//   - s: the scene the systems operate on
//   - f: this frame's context
func (sc *Schedule) Run(s Scene, f Frame) {
	if !sc.started {
		sc.started = true
		for _, sys := range sc.startup {
			sys(s, f)
		}
	}
	for _, sys := range sc.update {
		sys(s, f)
	}
}
