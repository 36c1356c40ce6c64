package scene

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Sebman56/orbit3d/common"
	"github.com/Sebman56/orbit3d/engine/camera"
	"github.com/Sebman56/orbit3d/engine/game_object"
	"github.com/Sebman56/orbit3d/engine/light"
	"github.com/Sebman56/orbit3d/engine/model"
	"github.com/Sebman56/orbit3d/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/arche/ecs"
	"github.com/mlange-42/arche/generic"
)

var (
	// ErrNoMatch is returned by single-entity queries when no entity matches.
	ErrNoMatch = errors.New("no matching entity")
	// ErrMultipleMatches is returned by single-entity queries when more than one entity matches.
	ErrMultipleMatches = errors.New("more than one matching entity")
)

// DrawItem is one mesh to draw this frame with its marshaled-ready object uniform.
type DrawItem struct {
	ID      uint64
	Model   model.Model
	Uniform model.GPUModelUniform
}

// scene is the implementation of the Scene interface.
type scene struct {
	mu *sync.Mutex

	name   string
	world  ecs.World
	nextID uint64

	ambient common.Color

	cameraSpawner generic.Map2[transform.Transform, camera.Camera3D]
	orbitSpawner  generic.Map3[transform.Transform, camera.Camera3D, camera.OrbitController]
	lightSpawner  generic.Map2[transform.Transform, light.PointLight]

	orbitFilter      *generic.Filter3[transform.Transform, camera.Camera3D, camera.OrbitController]
	cameraFilter     *generic.Filter2[transform.Transform, camera.Camera3D]
	lightFilter      *generic.Filter2[transform.Transform, light.PointLight]
	renderableFilter *generic.Filter2[transform.Transform, game_object.Renderable]
	spinFilter       *generic.Filter2[transform.Transform, game_object.Spin]

	// drawPool builds per-object uniforms in parallel. Workers persist across frames
	// until Release.
	drawPool    worker.DynamicWorkerPool
	drawWorkers int
	released    bool
}

// Scene owns the ECS world of a demo: cameras, lights and meshes, and the queries systems run on.
//
// Every method must be called from the frame loop goroutine; the world is not synchronized
// beyond the spawn counter.
type Scene interface {
	// Name returns the scene name.
	//
	// Returns:
	//   - string: the name
	Name() string

	// World returns the underlying ECS world for custom queries.
	//
	// Returns:
	//   - *ecs.World: the world
	World() *ecs.World

	// SpawnCamera adds a camera entity without a controller.
	//
	// Parameters:
	//   - t: the camera placement
	//   - cam: the projection settings
	//
	// Returns:
	//   - ecs.Entity: the new entity
	SpawnCamera(t transform.Transform, cam camera.Camera3D) ecs.Entity

	// SpawnOrbitCamera adds a camera entity driven by ctrl. The camera starts on +Z at the
	// controller's distance, looking at the origin, until the first orbit update moves it.
	//
	// Parameters:
	//   - cam: the projection settings
	//   - ctrl: the orbit state
	//
	// Returns:
	//   - ecs.Entity: the new entity
	SpawnOrbitCamera(cam camera.Camera3D, ctrl camera.OrbitController) ecs.Entity

	// SpawnLight adds a point light entity.
	//
	// Parameters:
	//   - t: the light placement
	//   - l: the light settings
	//
	// Returns:
	//   - ecs.Entity: the new entity
	SpawnLight(t transform.Transform, l light.PointLight) ecs.Entity

	// SpawnMesh adds a mesh entity with a fresh unique ID.
	//
	// Parameters:
	//   - options: game object options; WithModel is required
	//
	// Returns:
	//   - game_object.GameObject: a handle to the new entity
	SpawnMesh(options ...game_object.GameObjectBuilderOption) game_object.GameObject

	// GameObjects returns handles to every mesh entity, ordered by ID.
	//
	// Returns:
	//   - []game_object.GameObject: the mesh handles
	GameObjects() []game_object.GameObject

	// OrbitCamera returns the components of the single orbit-controlled camera.
	//
	// Returns:
	//   - *transform.Transform: the camera transform, writable
	//   - *camera.OrbitController: the controller state, writable
	//   - error: ErrNoMatch or ErrMultipleMatches unless exactly one orbit camera exists
	OrbitCamera() (*transform.Transform, *camera.OrbitController, error)

	// RenderCamera returns the components of the single camera used for drawing.
	//
	// Returns:
	//   - *transform.Transform: the camera transform
	//   - *camera.Camera3D: the projection settings
	//   - error: ErrNoMatch or ErrMultipleMatches unless exactly one camera exists
	RenderCamera() (*transform.Transform, *camera.Camera3D, error)

	// SetAspect updates the aspect ratio of every camera, typically after a window resize.
	//
	// Parameters:
	//   - aspect: width divided by height; ignored if not positive
	SetAspect(aspect float32)

	// PointLight returns the first enabled point light and its position.
	//
	// Returns:
	//   - mgl32.Vec3: the light position
	//   - light.PointLight: the light settings
	//   - bool: false if the scene has no enabled light
	PointLight() (mgl32.Vec3, light.PointLight, bool)

	// AmbientColor returns the ambient term added to lit materials.
	//
	// Returns:
	//   - common.Color: the ambient color
	AmbientColor() common.Color

	// CameraUniform builds the GPU uniform of the render camera.
	//
	// Returns:
	//   - camera.GPUCameraUniform: the camera uniform
	//   - error: the RenderCamera error, if any
	CameraUniform() (camera.GPUCameraUniform, error)

	// LightUniform builds the GPU uniform of the point light. The light term is disabled
	// when the scene has no enabled light.
	//
	// Returns:
	//   - light.GPULight: the light uniform
	LightUniform() light.GPULight

	// RotateSpinning rotates every entity carrying a Spin component about world Y by its speed times dt.
	//
	// Parameters:
	//   - dt: seconds elapsed this frame
	RotateSpinning(dt float32)

	// DrawList builds the object uniforms of every visible mesh, ordered by ID.
	// Uniforms are computed in parallel on the scene's worker pool, or on the calling
	// goroutine once the scene is released.
	//
	// Returns:
	//   - []DrawItem: one item per visible mesh
	DrawList() []DrawItem

	// Release stops the draw worker pool. Safe to call more than once.
	Release()
}

var _ Scene = &scene{}

// NewScene creates an empty Scene with the provided options.
//
// Parameters:
//   - name: the name of the scene
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:          &sync.Mutex{},
		name:        name,
		world:       ecs.NewWorld(),
		nextID:      1,
		ambient:     common.RGB(0.05, 0.05, 0.05),
		drawWorkers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(s)
	}

	s.cameraSpawner = generic.NewMap2[transform.Transform, camera.Camera3D](&s.world)
	s.orbitSpawner = generic.NewMap3[transform.Transform, camera.Camera3D, camera.OrbitController](&s.world)
	s.lightSpawner = generic.NewMap2[transform.Transform, light.PointLight](&s.world)
	ecs.ComponentID[game_object.Renderable](&s.world)
	ecs.ComponentID[game_object.Spin](&s.world)

	s.orbitFilter = generic.NewFilter3[transform.Transform, camera.Camera3D, camera.OrbitController]()
	s.cameraFilter = generic.NewFilter2[transform.Transform, camera.Camera3D]()
	s.lightFilter = generic.NewFilter2[transform.Transform, light.PointLight]()
	s.renderableFilter = generic.NewFilter2[transform.Transform, game_object.Renderable]()
	s.spinFilter = generic.NewFilter2[transform.Transform, game_object.Spin]()

	// Queue size of 256 leaves headroom for scenes with many meshes.
	s.drawPool = worker.NewDynamicWorkerPool(s.drawWorkers, 256, 1*time.Second)

	return s
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) World() *ecs.World {
	return &s.world
}

func (s *scene) SpawnCamera(t transform.Transform, cam camera.Camera3D) ecs.Entity {
	return s.cameraSpawner.NewWith(&t, &cam)
}

func (s *scene) SpawnOrbitCamera(cam camera.Camera3D, ctrl camera.OrbitController) ecs.Entity {
	t := transform.FromXYZ(0, 0, ctrl.Distance).LookingAt(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	return s.orbitSpawner.NewWith(&t, &cam, &ctrl)
}

func (s *scene) SpawnLight(t transform.Transform, l light.PointLight) ecs.Entity {
	return s.lightSpawner.NewWith(&t, &l)
}

func (s *scene) SpawnMesh(options ...game_object.GameObjectBuilderOption) game_object.GameObject {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.mu.Unlock()

	// WithID goes last so callers cannot collide with generated IDs.
	return game_object.NewGameObject(&s.world, append(options, game_object.WithID(id))...)
}

func (s *scene) GameObjects() []game_object.GameObject {
	query := s.renderableFilter.Query(&s.world)
	entities := make([]ecs.Entity, 0, query.Count())
	for query.Next() {
		entities = append(entities, query.Entity())
	}

	objects := make([]game_object.GameObject, 0, len(entities))
	for _, e := range entities {
		objects = append(objects, game_object.Wrap(&s.world, e))
	}
	sort.Slice(objects, func(i, j int) bool { return objects[i].ID() < objects[j].ID() })
	return objects
}

func (s *scene) OrbitCamera() (*transform.Transform, *camera.OrbitController, error) {
	query := s.orbitFilter.Query(&s.world)
	if err := expectOne("orbit camera", query.Count()); err != nil {
		query.Close()
		return nil, nil, err
	}
	query.Next()
	t, _, ctrl := query.Get()
	query.Close()
	return t, ctrl, nil
}

func (s *scene) RenderCamera() (*transform.Transform, *camera.Camera3D, error) {
	query := s.cameraFilter.Query(&s.world)
	if err := expectOne("camera", query.Count()); err != nil {
		query.Close()
		return nil, nil, err
	}
	query.Next()
	t, cam := query.Get()
	query.Close()
	return t, cam, nil
}

func (s *scene) SetAspect(aspect float32) {
	if !(aspect > 0) {
		return
	}
	query := s.cameraFilter.Query(&s.world)
	for query.Next() {
		_, cam := query.Get()
		cam.Aspect = aspect
	}
}

func (s *scene) PointLight() (mgl32.Vec3, light.PointLight, bool) {
	query := s.lightFilter.Query(&s.world)
	for query.Next() {
		t, l := query.Get()
		if l.Enabled {
			pos, found := t.Translation, *l
			query.Close()
			return pos, found, true
		}
	}
	return mgl32.Vec3{}, light.PointLight{}, false
}

func (s *scene) AmbientColor() common.Color {
	return s.ambient
}

func (s *scene) CameraUniform() (camera.GPUCameraUniform, error) {
	t, cam, err := s.RenderCamera()
	if err != nil {
		return camera.GPUCameraUniform{}, err
	}
	return cam.Uniform(*t), nil
}

func (s *scene) LightUniform() light.GPULight {
	pos, l, ok := s.PointLight()
	if !ok {
		l = light.NewPointLight(light.WithEnabled(false))
	}
	return l.Uniform(pos, s.ambient)
}

func (s *scene) DrawList() []DrawItem {
	type pending struct {
		t transform.Transform
		r game_object.Renderable
	}

	// ECS iteration stays on this goroutine; only the matrix work fans out.
	query := s.renderableFilter.Query(&s.world)
	batch := make([]pending, 0, query.Count())
	for query.Next() {
		t, r := query.Get()
		if !r.Visible || r.Model == nil {
			continue
		}
		batch = append(batch, pending{t: *t, r: *r})
	}

	items := make([]DrawItem, len(batch))
	build := func(idx int) {
		p := batch[idx]
		u := model.GPUModelUniform{
			Model:     p.t.Matrix(),
			BaseColor: p.r.Material.BaseColor().Array(),
		}
		if p.r.Material.Unlit() {
			u.Unlit = 1
		}
		items[idx] = DrawItem{ID: p.r.ID, Model: p.r.Model, Uniform: u}
	}

	if s.released {
		for i := range batch {
			build(i)
		}
	} else {
		var wg sync.WaitGroup
		for i := range batch {
			wg.Add(1)
			idx := i
			s.drawPool.SubmitTask(worker.Task{
				ID: idx,
				Do: func() (any, error) {
					defer wg.Done()
					build(idx)
					return nil, nil
				},
			})
		}
		wg.Wait()
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func (s *scene) RotateSpinning(dt float32) {
	query := s.spinFilter.Query(&s.world)
	for query.Next() {
		t, spin := query.Get()
		t.RotateY(spin.Speed * dt)
	}
}

func (s *scene) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return
	}
	s.released = true
	s.drawPool.Stop()
}

func expectOne(what string, n int) error {
	switch {
	case n == 0:
		return fmt.Errorf("%s: %w", what, ErrNoMatch)
	case n > 1:
		return fmt.Errorf("%s: %w (found %d)", what, ErrMultipleMatches, n)
	}
	return nil
}
