package loop

import (
	"sync"

	"github.com/Sebman56/orbit3d/engine/camera"
	"github.com/Sebman56/orbit3d/engine/input"
	"github.com/Sebman56/orbit3d/engine/scene"
)

// loop implements the Loop interface.
type loop struct {
	scene    scene.Scene
	schedule *scene.Schedule
	input    *input.State
	cursor   camera.Cursor

	onFirstStep func()
	onQuit      func()

	running  bool
	quitOnce sync.Once
}

// Loop advances a scene one frame at a time: it runs the system schedule against the frame's
// input and then clears that input. It knows nothing about windows or GPUs, which are attached
// through the cursor and the hooks.
type Loop interface {
	// Scene returns the scene the systems run against.
	//
	// Returns:
	//   - scene.Scene: the scene
	Scene() scene.Scene

	// Schedule returns the startup and update systems.
	//
	// Returns:
	//   - *scene.Schedule: the schedule
	Schedule() *scene.Schedule

	// Input returns the input state the systems read.
	//
	// Returns:
	//   - *input.State: the input state
	Input() *input.State

	// Step runs one frame of systems with the given delta time, then clears this frame's input.
	// Startup systems run on the first step, followed by the first-step hook.
	//
	// Parameters:
	//   - dt: seconds since the previous frame
	Step(dt float32)

	// Start marks the loop as running.
	Start()

	// Stop marks the loop as stopped without firing the quit hook.
	Stop()

	// Running reports whether frames should still be stepped.
	//
	// Returns:
	//   - bool: true between Start and Stop or Quit
	Running() bool

	// Quit stops the loop and fires the quit hook.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Loop = &loop{}

// NewLoop creates a Loop over s. Without WithSchedule or WithInput an empty schedule and a
// fresh input state are used. It panics if s is nil.
//
// Parameters:
//   - s: the scene to advance
//   - options: functional options for the loop
//
// Returns:
//   - Loop: the new loop
func NewLoop(s scene.Scene, options ...LoopBuilderOption) Loop {
	if s == nil {
		panic("loop: nil scene")
	}
	l := &loop{scene: s}
	for _, opt := range options {
		opt(l)
	}
	if l.schedule == nil {
		l.schedule = scene.NewSchedule()
	}
	if l.input == nil {
		l.input = input.NewState()
	}
	return l
}

func (l *loop) Scene() scene.Scene {
	return l.scene
}

func (l *loop) Schedule() *scene.Schedule {
	return l.schedule
}

func (l *loop) Input() *input.State {
	return l.input
}

func (l *loop) Step(dt float32) {
	first := !l.schedule.Started()
	l.schedule.Run(l.scene, scene.Frame{
		Delta:  dt,
		Input:  l.input,
		Cursor: l.cursor,
	})
	l.input.EndFrame()

	if first && l.onFirstStep != nil {
		l.onFirstStep()
	}
}

func (l *loop) Start() {
	l.running = true
}

func (l *loop) Stop() {
	l.running = false
}

func (l *loop) Running() bool {
	return l.running
}

func (l *loop) Quit() {
	l.quitOnce.Do(func() {
		l.running = false
		if l.onQuit != nil {
			l.onQuit()
		}
	})
}
