package engine

import (
	"log"
	"time"

	"github.com/Sebman56/orbit3d/engine/camera"
	"github.com/Sebman56/orbit3d/engine/input"
	"github.com/Sebman56/orbit3d/engine/loop"
	"github.com/Sebman56/orbit3d/engine/profiler"
	"github.com/Sebman56/orbit3d/engine/renderer"
	"github.com/Sebman56/orbit3d/engine/scene"
	"github.com/Sebman56/orbit3d/engine/window"
)

var _ camera.Cursor = window.Window(nil)

// engine implements the Engine interface.
// Everything runs on the thread that calls Run: event polling, systems, then rendering.
// Stepping and quitting are delegated to a loop.Loop; the engine adds the window and renderer.
type engine struct {
	window   window.Window
	renderer renderer.Renderer
	scene    scene.Scene
	schedule *scene.Schedule
	input    *input.State
	loop     loop.Loop

	profiler         *profiler.Profiler
	profilingEnabled bool

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	lastFrame        time.Time
	lastRenderErr    string
}

// Engine is the main entry point for the engine.
// It owns the scene, its system schedule and the per-frame input, and drives them from the
// window's message loop.
type Engine interface {
	// Window returns the underlying window, or nil when running headless.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Renderer returns the renderer, or nil when running headless.
	//
	// Returns:
	//   - renderer.Renderer: the renderer instance
	Renderer() renderer.Renderer

	// Scene returns the scene the systems run against.
	//
	// Returns:
	//   - scene.Scene: the scene
	Scene() scene.Scene

	// Input returns the input state fed by the window callbacks.
	//
	// Returns:
	//   - *input.State: the input state
	Input() *input.State

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Step runs one frame of systems with the given delta time, then clears this frame's input.
	// Startup systems run on the first step.
	//
	// Parameters:
	//   - dt: seconds since the previous frame
	Step(dt float32)

	// Run starts the main loop (blocks until the window closes), then releases the renderer,
	// the scene's worker pool and the window.
	Run()

	// Quit stops the main loop after the current frame.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Without WithScene a scene named "main" is created. The window callbacks are wired to the
// engine's input state and to renderer and camera resizing.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		schedule: scene.NewSchedule(),
		input:    input.NewState(),
		profiler: profiler.NewProfiler(time.Second),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.scene == nil {
		e.scene = scene.NewScene("main")
	}

	if e.window != nil {
		e.window.SetMouseButtonCallback(func(b input.MouseButton, pressed bool) {
			if pressed {
				e.input.Press(b)
			} else {
				e.input.Release(b)
			}
		})
		e.window.SetMouseMotionCallback(e.input.PushMotion)
		e.window.SetScrollCallback(e.input.PushScroll)
		e.window.SetResizeCallback(e.resize)

		if w, h := e.window.Width(), e.window.Height(); h > 0 {
			e.scene.SetAspect(float32(w) / float32(h))
		}
	}

	e.loop = loop.NewLoop(e.scene,
		loop.WithSchedule(e.schedule),
		loop.WithInput(e.input),
		loop.WithCursor(e.cursor()),
		// Cameras spawned by startup systems still carry the default aspect.
		loop.WithFirstStepHook(func() {
			if e.window != nil {
				e.resize(e.window.Width(), e.window.Height())
			}
		}),
		loop.WithQuitHook(func() {
			if e.window != nil {
				e.window.RequestClose()
			}
		}),
	)

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) Input() *input.State {
	return e.input
}

func (e *engine) Step(dt float32) {
	e.loop.Step(dt)
}

// cursor returns the window as the systems' cursor, or nil when headless.
func (e *engine) cursor() camera.Cursor {
	if e.window == nil {
		return nil
	}
	return e.window
}

func (e *engine) Run() {
	if e.window == nil {
		panic("engine: Run requires a window; use Step to drive a headless engine")
	}

	e.loop.Start()
	e.lastFrame = time.Now()
	e.profiler.Reset()
	e.window.SetUpdateCallback(e.frame)
	e.window.ProcessMessages()
	e.loop.Stop()

	if e.renderer != nil {
		e.renderer.Release()
	}
	e.scene.Release()
	if err := e.window.Close(); err != nil {
		log.Printf("engine: closing window: %v", err)
	}
}

// frame is the window update callback: one step, one render, then profiling and frame limiting.
func (e *engine) frame() {
	if !e.loop.Running() {
		return
	}

	now := time.Now()
	dt := float32(now.Sub(e.lastFrame).Seconds())
	e.lastFrame = now

	e.Step(dt)
	e.render()

	if e.profilingEnabled {
		e.profiler.Tick()
	}

	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - time.Since(now); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

// render draws the scene. Failures are logged once per distinct error and the frame is skipped.
func (e *engine) render() {
	if e.renderer == nil {
		return
	}

	cam, err := e.scene.CameraUniform()
	if err == nil {
		err = e.renderer.Draw(cam, e.scene.LightUniform(), e.scene.DrawList())
	}
	if err != nil {
		if msg := err.Error(); msg != e.lastRenderErr {
			log.Printf("engine: frame skipped: %v", err)
			e.lastRenderErr = msg
		}
		return
	}
	e.lastRenderErr = ""
}

func (e *engine) resize(width, height int) {
	if e.renderer != nil {
		e.renderer.Resize(width, height)
	}
	if height > 0 {
		e.scene.SetAspect(float32(width) / float32(height))
	}
}

// Quit stops the loop and asks the window to close. Safe to call multiple times.
func (e *engine) Quit() {
	e.loop.Quit()
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	if !e.profilingEnabled {
		e.profiler.Reset()
	}
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetRenderFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}
