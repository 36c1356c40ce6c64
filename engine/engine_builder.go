package engine

import (
	"time"

	"github.com/Sebman56/orbit3d/engine/renderer"
	"github.com/Sebman56/orbit3d/engine/scene"
	"github.com/Sebman56/orbit3d/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithWindow sets the window whose message loop drives the engine and whose pointer feeds input.
//
// Parameters:
//   - w: a spawned Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer that draws the scene after every step.
//
// Parameters:
//   - r: a Renderer created for the engine's window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithScene sets the scene the systems run against.
//
// Parameters:
//   - s: the Scene
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scene = s
	}
}

// WithStartupSystem registers systems that run once before the first update.
//
// Parameters:
//   - systems: the systems, run in the given order
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithStartupSystem(systems ...scene.System) EngineBuilderOption {
	return func(e *engine) {
		e.schedule.AddStartup(systems...)
	}
}

// WithUpdateSystem registers systems that run every frame.
//
// Parameters:
//   - systems: the systems, run in the given order
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithUpdateSystem(systems ...scene.System) EngineBuilderOption {
	return func(e *engine) {
		e.schedule.AddUpdate(systems...)
	}
}

// WithRenderFrameLimit sets an optional frame rate cap in frames per second.
// Pass 0 to uncap the loop (default).
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
	}
}
