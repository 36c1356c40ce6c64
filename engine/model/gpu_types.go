package model

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUVertex is the GPU-aligned representation of a single mesh vertex.
// Matches the renderer's vertex buffer layout (stride 48, locations 0 to 3).
type GPUVertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	Normal   [3]float32 // offset 12: vertex normal for lighting (12 bytes)
	TexCoord [2]float32 // offset 24: UV texture coordinate (8 bytes)
	Color    [4]float32 // offset 32: per-vertex RGBA color (16 bytes)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, g.Size())
	putFloats(buf[0:], g.Position[:])
	putFloats(buf[12:], g.Normal[:])
	putFloats(buf[24:], g.TexCoord[:])
	putFloats(buf[32:], g.Color[:])
	return buf
}

// GPUModelUniform is the per-object uniform: model matrix, base color and shading flags.
// Matches the WGSL ObjectUniform struct in the renderer's shader.
// Size: 96 bytes.
type GPUModelUniform struct {
	Model     [16]float32 // offset  0: local-to-world matrix (mat4x4<f32>)
	BaseColor [4]float32  // offset 64: material base color multiplied with vertex color
	Unlit     uint32      // offset 80: 1 skips lighting
	_pad      [3]uint32   // offset 84: padding to 96 bytes
}

// Size returns the size of the GPUModelUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (96)
func (g *GPUModelUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUModelUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 96-byte buffer ready for GPU upload.
func (g *GPUModelUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	putFloats(buf[0:], g.Model[:])
	putFloats(buf[64:], g.BaseColor[:])
	binary.LittleEndian.PutUint32(buf[80:], g.Unlit)
	return buf
}

func putFloats(buf []byte, values []float32) {
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
}
