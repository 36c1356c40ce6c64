package common

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight (non-premultiplied) sRGB color with alpha, stored as 32-bit floats
// so it can be copied directly into vertex and uniform data.
type Color struct {
	R, G, B, A float32
}

// Named colors. The palette matches the common game-engine defaults, so PURPLE is half intensity.
var (
	ColorWhite  = Color{1, 1, 1, 1}
	ColorBlack  = Color{0, 0, 0, 1}
	ColorRed    = Color{1, 0, 0, 1}
	ColorGreen  = Color{0, 1, 0, 1}
	ColorBlue   = Color{0, 0, 1, 1}
	ColorYellow = Color{1, 1, 0, 1}
	ColorCyan   = Color{0, 1, 1, 1}
	ColorPurple = Color{0.5, 0, 0.5, 1}
)

// RGB returns an opaque color from its red, green and blue components in [0, 1].
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// HSL returns an opaque color from hue (degrees), saturation and lightness in [0, 1].
//
// Parameters:
//   - h: hue in degrees in [0, 360)
//   - s: saturation in [0, 1]
//   - l: lightness in [0, 1]
//
// Returns:
//   - Color: the equivalent sRGB color
func HSL(h, s, l float64) Color {
	c := colorful.Hsl(h, s, l).Clamped()
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: 1}
}

// Array returns the color as an RGBA array, the layout used by GPU vertex and uniform data.
func (c Color) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// Hex returns the "#rrggbb" form of the color, ignoring alpha.
func (c Color) Hex() string {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Clamped().Hex()
}
