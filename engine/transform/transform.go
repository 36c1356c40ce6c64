package transform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// epsilon below which a look direction is treated as parallel to the up vector.
const parallelEpsilon = 1e-6

// Transform places an entity in world space. Cameras look down their local -Z axis with +Y up.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// Identity returns a Transform at the origin with no rotation and unit scale.
func Identity() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// FromXYZ returns an identity Transform translated to (x, y, z).
//
// Parameters:
//   - x, y, z: world position
//
// Returns:
//   - Transform: the translated transform
func FromXYZ(x, y, z float32) Transform {
	t := Identity()
	t.Translation = mgl32.Vec3{x, y, z}
	return t
}

// LookingAt returns a copy of t rotated so that its forward axis points at target.
//
// Parameters:
//   - target: world point to face
//   - up: world up reference
//
// Returns:
//   - Transform: the reoriented copy
func (t Transform) LookingAt(target, up mgl32.Vec3) Transform {
	t.LookAt(target, up)
	return t
}

// LookAt rotates t in place so that its forward (-Z) axis points at target and its
// local +Y axis lies in the plane spanned by forward and up.
// When target equals the translation the rotation is left unchanged. When the look direction
// is parallel to up, the world Z axis is used as the up reference instead.
//
// Parameters:
//   - target: world point to face
//   - up: world up reference
func (t *Transform) LookAt(target, up mgl32.Vec3) {
	dir := target.Sub(t.Translation)
	if dir.Len() < parallelEpsilon {
		return
	}
	back := dir.Mul(-1).Normalize()

	right := up.Cross(back)
	if right.Len() < parallelEpsilon {
		right = mgl32.Vec3{0, 0, 1}.Cross(back)
	}
	right = right.Normalize()
	newUp := back.Cross(right)

	t.Rotation = mgl32.Mat4ToQuat(mgl32.Mat3FromCols(right, newUp, back).Mat4()).Normalize()
}

// RotateY rotates t about the world Y axis by angle radians.
func (t *Transform) RotateY(angle float32) {
	t.Rotate(mgl32.QuatRotate(angle, mgl32.Vec3{0, 1, 0}))
}

// Rotate applies q on top of the current rotation, in world space.
func (t *Transform) Rotate(q mgl32.Quat) {
	t.Rotation = q.Mul(t.Rotation).Normalize()
}

// Forward returns the world-space direction of the local -Z axis.
func (t Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

// Up returns the world-space direction of the local +Y axis.
func (t Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
}

// Matrix returns the local-to-world matrix (translation * rotation * scale).
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Translation[0], t.Translation[1], t.Translation[2]).
		Mul4(t.Rotation.Mat4()).
		Mul4(mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2]))
}
