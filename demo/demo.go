// Package demo holds the four mesh viewer programs as data: each Config names a mesh factory and
// whether the mesh spins and the camera orbits. The shared startup system spawns the mesh, a point
// light and a camera.
package demo

import (
	"errors"
	"fmt"

	"github.com/Sebman56/orbit3d/common"
	"github.com/Sebman56/orbit3d/engine/camera"
	"github.com/Sebman56/orbit3d/engine/game_object"
	"github.com/Sebman56/orbit3d/engine/light"
	"github.com/Sebman56/orbit3d/engine/model"
	"github.com/Sebman56/orbit3d/engine/renderer/material"
	"github.com/Sebman56/orbit3d/engine/scene"
	"github.com/Sebman56/orbit3d/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrNoMesh is returned by Validate when a Config has no mesh factory.
var ErrNoMesh = errors.New("demo: config has no mesh factory")

var (
	// LightPosition is where every demo places its point light.
	LightPosition = mgl32.Vec3{4, 8, 4}
	// LightIntensity is the point light's power in lumens.
	LightIntensity float32 = 1500
	// FixedCameraPosition is the camera placement of demos without an orbit controller.
	FixedCameraPosition = mgl32.Vec3{-3, 3, 5}
)

// Config describes one demo program.
type Config struct {
	// Title is shown in the window title bar and names the mesh material.
	Title string
	// Mesh builds the displayed mesh. It is called once, by the startup system.
	Mesh func() model.Model
	// Orbit attaches an orbit controller to the camera.
	Orbit bool
	// Spin rotates the mesh about +Y at scene.DefaultSpinSpeed.
	Spin bool
	// CameraPosition places the camera when Orbit is false. It always looks at the origin.
	CameraPosition mgl32.Vec3
}

// Cube is a per-face colored unit cube seen from a fixed camera.
func Cube() Config {
	return Config{
		Title:          "cube",
		Mesh:           func() model.Model { return model.NewCube(1, model.DefaultFaceColors) },
		Spin:           true,
		CameraPosition: FixedCameraPosition,
	}
}

// CubeOrbit is the spinning per-face colored unit cube with an orbit camera.
func CubeOrbit() Config {
	return Config{
		Title: "cube_orbit",
		Mesh:  func() model.Model { return model.NewCube(1, model.DefaultFaceColors) },
		Orbit: true,
		Spin:  true,
	}
}

// BrickOrbit is a spinning 3 x 1 x 2 per-face colored box with an orbit camera.
func BrickOrbit() Config {
	return Config{
		Title: "brick_orbit",
		Mesh: func() model.Model {
			return model.NewBox(mgl32.Vec3{-1.5, -0.5, -1}, mgl32.Vec3{1.5, 0.5, 1}, model.DefaultFaceColors)
		},
		Orbit: true,
		Spin:  true,
	}
}

// HexadecagonOrbit is a spinning flat 16-sided polygon in cyan with an orbit camera.
func HexadecagonOrbit() Config {
	return Config{
		Title: "hexadecagon_orbit",
		Mesh:  func() model.Model { return model.NewHexadecagon(common.HSL(180, 1, 0.5)) },
		Orbit: true,
		Spin:  true,
	}
}

// Presets returns every demo keyed by title.
//
// Returns:
//   - map[string]Config: the four demos
func Presets() map[string]Config {
	presets := make(map[string]Config, 4)
	for _, c := range []Config{Cube(), CubeOrbit(), BrickOrbit(), HexadecagonOrbit()} {
		presets[c.Title] = c
	}
	return presets
}

// Validate reports configuration errors that would otherwise surface as a panic at startup.
//
// Returns:
//   - error: ErrNoMesh, or nil
func (c Config) Validate() error {
	if c.Mesh == nil {
		return fmt.Errorf("%q: %w", c.Title, ErrNoMesh)
	}
	return nil
}

// Setup returns the startup system that spawns the mesh at the origin, the point light and
// the camera.
//
// Returns:
//   - scene.System: the startup system
func (c Config) Setup() scene.System {
	return func(s scene.Scene, _ scene.Frame) {
		mat := material.NewMaterial(
			material.WithName(c.Title),
			material.WithUnlit(true),
		)
		opts := []game_object.GameObjectBuilderOption{
			game_object.WithModel(c.Mesh()),
			game_object.WithMaterial(mat),
		}
		if c.Spin {
			opts = append(opts, game_object.WithSpin(scene.DefaultSpinSpeed))
		}
		s.SpawnMesh(opts...)

		s.SpawnLight(
			transform.FromXYZ(LightPosition.X(), LightPosition.Y(), LightPosition.Z()),
			light.NewPointLight(light.WithIntensity(LightIntensity), light.WithShadows(true)),
		)

		if c.Orbit {
			s.SpawnOrbitCamera(camera.NewCamera3D(), camera.NewOrbitController())
			return
		}
		p := c.CameraPosition
		s.SpawnCamera(
			transform.FromXYZ(p.X(), p.Y(), p.Z()).LookingAt(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}),
			camera.NewCamera3D(),
		)
	}
}

// Systems returns the per-frame systems of the demo in run order: the spin first, then the
// orbit camera.
//
// Returns:
//   - []scene.System: the update systems
func (c Config) Systems() []scene.System {
	var systems []scene.System
	if c.Spin {
		systems = append(systems, scene.SpinSystem)
	}
	if c.Orbit {
		systems = append(systems, scene.OrbitCameraSystem)
	}
	return systems
}
