package light

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPULight is the GPU-aligned representation of the scene's point light.
// Matches the WGSL LightUniform struct in the renderer's shader.
// Size: 64 bytes.
type GPULight struct {
	Position     [3]float32 // offset  0: world-space position
	Intensity    float32    // offset 12: luminous power in lumens
	Color        [3]float32 // offset 16: RGB color
	LightRange   float32    // offset 28: attenuation cutoff distance
	AmbientColor [3]float32 // offset 32: scene ambient RGB
	Enabled      uint32     // offset 44: 0 disables the light term
	CastsShadows uint32     // offset 48: 1 = casts shadows, 0 = does not
	_pad         [3]uint32  // offset 52: padding to 64 bytes
}

// Size returns the size of the GPULight struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (g *GPULight) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload
func (g *GPULight) Marshal() []byte {
	buf := make([]byte, g.Size())
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Intensity))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Color[2]))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.LightRange))
	binary.LittleEndian.PutUint32(buf[32:36], math.Float32bits(g.AmbientColor[0]))
	binary.LittleEndian.PutUint32(buf[36:40], math.Float32bits(g.AmbientColor[1]))
	binary.LittleEndian.PutUint32(buf[40:44], math.Float32bits(g.AmbientColor[2]))
	binary.LittleEndian.PutUint32(buf[44:48], g.Enabled)
	binary.LittleEndian.PutUint32(buf[48:52], g.CastsShadows)
	return buf
}
