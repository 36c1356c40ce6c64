// Package launcher opens a window for a demo.Config and runs it until the window closes.
package launcher

import (
	"fmt"
	"log"

	"github.com/Sebman56/orbit3d/demo"
	"github.com/Sebman56/orbit3d/engine"
	"github.com/Sebman56/orbit3d/engine/renderer"
	"github.com/Sebman56/orbit3d/engine/scene"
	"github.com/Sebman56/orbit3d/engine/window"
)

// Run builds the window, renderer, scene and engine for cfg and blocks until the window is closed.
// Invalid configurations are fatal.
//
// Parameters:
//   - cfg: the demo to run
//   - options: extra engine options, applied after the demo's own
func Run(cfg demo.Config, options ...engine.EngineBuilderOption) {
	if err := cfg.Validate(); err != nil {
		log.Fatalf("launcher: %v", err)
	}

	fmt.Printf("%s: left click to grab the cursor and orbit, right click to release, scroll to zoom, Esc to quit\n", cfg.Title)

	w := window.NewWindow(
		window.WithTitle(cfg.Title),
		window.WithSize(1280, 720),
	)
	r := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		w,
		renderer.WithPresentMode(renderer.PresentModeVSync),
		renderer.WithMSAA(renderer.MSAA4x),
	)

	opts := []engine.EngineBuilderOption{
		engine.WithWindow(w),
		engine.WithRenderer(r),
		engine.WithScene(scene.NewScene(cfg.Title)),
		engine.WithStartupSystem(cfg.Setup()),
		engine.WithUpdateSystem(cfg.Systems()...),
	}
	eng := engine.NewEngine(append(opts, options...)...)
	eng.Run()
}
