package loop

import (
	"github.com/Sebman56/orbit3d/engine/camera"
	"github.com/Sebman56/orbit3d/engine/input"
	"github.com/Sebman56/orbit3d/engine/scene"
)

// LoopBuilderOption is a functional option for configuring a Loop.
type LoopBuilderOption func(*loop)

// WithSchedule sets the systems the loop runs.
//
// Parameters:
//   - sc: the schedule
//
// Returns:
//   - LoopBuilderOption: option function to apply
func WithSchedule(sc *scene.Schedule) LoopBuilderOption {
	return func(l *loop) {
		l.schedule = sc
	}
}

// WithInput sets the input state handed to the systems and cleared after each step.
//
// Parameters:
//   - in: the input state
//
// Returns:
//   - LoopBuilderOption: option function to apply
func WithInput(in *input.State) LoopBuilderOption {
	return func(l *loop) {
		l.input = in
	}
}

// WithCursor sets the pointer the systems may capture. Leave unset when there is no window.
//
// Parameters:
//   - c: the cursor
//
// Returns:
//   - LoopBuilderOption: option function to apply
func WithCursor(c camera.Cursor) LoopBuilderOption {
	return func(l *loop) {
		l.cursor = c
	}
}

// WithFirstStepHook runs fn once, right after the startup systems and the first update.
func WithFirstStepHook(fn func()) LoopBuilderOption {
	return func(l *loop) {
		l.onFirstStep = fn
	}
}

// WithQuitHook runs fn on the first Quit.
func WithQuitHook(fn func()) LoopBuilderOption {
	return func(l *loop) {
		l.onQuit = fn
	}
}
