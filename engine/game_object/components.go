package game_object

import (
	"github.com/Sebman56/orbit3d/engine/model"
	"github.com/Sebman56/orbit3d/engine/renderer/material"
)

// Renderable marks an entity as a drawable mesh. Its placement comes from the entity's transform.
type Renderable struct {
	// ID is unique per scene and keys the renderer's per-object GPU resources.
	ID       uint64
	Model    model.Model
	Material material.Material
	Visible  bool
}

// Spin rotates an entity about the world Y axis at a constant angular velocity.
type Spin struct {
	// Speed is in radians per second.
	Speed float32
}
