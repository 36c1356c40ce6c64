package game_object

import (
	"fmt"

	"github.com/Sebman56/orbit3d/engine/model"
	"github.com/Sebman56/orbit3d/engine/renderer/material"
	"github.com/Sebman56/orbit3d/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/arche/ecs"
	"github.com/mlange-42/arche/generic"
)

type gameObject struct {
	world  *ecs.World
	entity ecs.Entity

	transforms  generic.Map[transform.Transform]
	renderables generic.Map[Renderable]
	spins       generic.Map1[Spin]
	spinID      ecs.ID

	// initial state used to build the entity in NewGameObject
	id              uint64
	visible         bool
	mdl             model.Model
	mat             material.Material
	initialPosition mgl32.Vec3
	initialScale    mgl32.Vec3
	spin            *float32
}

// GameObject is a handle to a mesh entity in an ECS world.
// The entity's components are the source of truth; the handle only reads and writes them.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Entity returns the underlying ECS entity.
	//
	// Returns:
	//   - ecs.Entity: the entity
	Entity() ecs.Entity

	// Alive reports whether the entity still exists in its world.
	//
	// Returns:
	//   - bool: false after Remove
	Alive() bool

	// Model returns the mesh drawn for this object.
	//
	// Returns:
	//   - model.Model: the model
	Model() model.Model

	// Material returns the surface material of this object.
	//
	// Returns:
	//   - material.Material: the material
	Material() material.Material

	// Visible returns whether this object is drawn.
	//
	// Returns:
	//   - bool: true if drawn
	Visible() bool

	// SetVisible shows or hides the object.
	//
	// Parameters:
	//   - visible: false to skip the object when drawing
	SetVisible(visible bool)

	// Transform returns a copy of the object's transform.
	//
	// Returns:
	//   - transform.Transform: the current transform
	Transform() transform.Transform

	// Position returns the object's world position.
	//
	// Returns:
	//   - mgl32.Vec3: the translation
	Position() mgl32.Vec3

	// SetPosition moves the object.
	//
	// Parameters:
	//   - x, y, z: the new world position
	SetPosition(x, y, z float32)

	// Rotation returns the object's orientation.
	//
	// Returns:
	//   - mgl32.Quat: the rotation
	Rotation() mgl32.Quat

	// Spin returns the angular velocity about world Y and whether the object spins at all.
	//
	// Returns:
	//   - float32: radians per second
	//   - bool: false if the entity has no Spin component
	Spin() (float32, bool)

	// SetSpin sets the angular velocity about world Y, adding a Spin component if needed.
	//
	// Parameters:
	//   - speed: radians per second
	SetSpin(speed float32)

	// Remove deletes the entity from its world. The handle must not be used afterwards.
	Remove()
}

var _ GameObject = &gameObject{}

// NewGameObject creates a mesh entity in world with a transform and a Renderable, plus a Spin
// component when WithSpin is given. It panics if no model is set.
//
// Parameters:
//   - world: the ECS world that will own the entity
//   - options: functional options describing the object
//
// Returns:
//   - GameObject: a handle to the new entity
func NewGameObject(world *ecs.World, options ...GameObjectBuilderOption) GameObject {
	obj := newHandle(world, ecs.Entity{})
	obj.visible = true
	obj.initialScale = mgl32.Vec3{1, 1, 1}
	for _, opt := range options {
		opt(obj)
	}
	if obj.mdl == nil {
		panic(fmt.Sprintf("game object %d: no model", obj.id))
	}
	if obj.mat == nil {
		obj.mat = material.NewMaterial()
	}

	t := transform.Identity()
	t.Translation = obj.initialPosition
	t.Scale = obj.initialScale
	r := Renderable{ID: obj.id, Model: obj.mdl, Material: obj.mat, Visible: obj.visible}

	mapper := generic.NewMap2[transform.Transform, Renderable](world)
	obj.entity = mapper.NewWith(&t, &r)
	if obj.spin != nil {
		obj.spins.Assign(obj.entity, &Spin{Speed: *obj.spin})
	}
	return obj
}

// Wrap returns a handle to an existing mesh entity.
//
// Parameters:
//   - world: the ECS world owning the entity
//   - entity: an entity with a transform and a Renderable
//
// Returns:
//   - GameObject: the handle
func Wrap(world *ecs.World, entity ecs.Entity) GameObject {
	return newHandle(world, entity)
}

func newHandle(world *ecs.World, entity ecs.Entity) *gameObject {
	return &gameObject{
		world:       world,
		entity:      entity,
		transforms:  generic.NewMap[transform.Transform](world),
		renderables: generic.NewMap[Renderable](world),
		spins:       generic.NewMap1[Spin](world),
		spinID:      ecs.ComponentID[Spin](world),
	}
}

func (g *gameObject) ID() uint64 {
	return g.renderables.Get(g.entity).ID
}

func (g *gameObject) Entity() ecs.Entity {
	return g.entity
}

func (g *gameObject) Alive() bool {
	return g.world.Alive(g.entity)
}

func (g *gameObject) Model() model.Model {
	return g.renderables.Get(g.entity).Model
}

func (g *gameObject) Material() material.Material {
	return g.renderables.Get(g.entity).Material
}

func (g *gameObject) Visible() bool {
	return g.renderables.Get(g.entity).Visible
}

func (g *gameObject) SetVisible(visible bool) {
	g.renderables.Get(g.entity).Visible = visible
}

func (g *gameObject) Transform() transform.Transform {
	return *g.transforms.Get(g.entity)
}

func (g *gameObject) Position() mgl32.Vec3 {
	return g.transforms.Get(g.entity).Translation
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.transforms.Get(g.entity).Translation = mgl32.Vec3{x, y, z}
}

func (g *gameObject) Rotation() mgl32.Quat {
	return g.transforms.Get(g.entity).Rotation
}

func (g *gameObject) Spin() (float32, bool) {
	if !g.world.Has(g.entity, g.spinID) {
		return 0, false
	}
	return g.spins.Get(g.entity).Speed, true
}

func (g *gameObject) SetSpin(speed float32) {
	if g.world.Has(g.entity, g.spinID) {
		g.spins.Get(g.entity).Speed = speed
		return
	}
	g.spins.Assign(g.entity, &Spin{Speed: speed})
}

func (g *gameObject) Remove() {
	g.world.RemoveEntity(g.entity)
}
