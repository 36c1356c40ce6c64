package common

import "testing"

func TestHSL(t *testing.T) {
	for _, tc := range []struct {
		h, s, l float64
		want    Color
		hex     string
	}{
		{180, 1, 0.5, ColorCyan, "#00ffff"},
		{0, 1, 0.5, ColorRed, "#ff0000"},
		{120, 1, 0.5, ColorGreen, "#00ff00"},
		{0, 0, 1, ColorWhite, "#ffffff"},
	} {
		have := HSL(tc.h, tc.s, tc.l)
		if !approxEqual(have.R, tc.want.R, 1e-6) || !approxEqual(have.G, tc.want.G, 1e-6) ||
			!approxEqual(have.B, tc.want.B, 1e-6) || have.A != 1 {
			t.Fatalf("HSL(%v, %v, %v)\nhave %+v\nwant %+v", tc.h, tc.s, tc.l, have, tc.want)
		}
		if hex := have.Hex(); hex != tc.hex {
			t.Fatalf("HSL(%v, %v, %v).Hex()\nhave %s\nwant %s", tc.h, tc.s, tc.l, hex, tc.hex)
		}
	}
}

func TestColorArray(t *testing.T) {
	if have := ColorPurple.Array(); have != [4]float32{0.5, 0, 0.5, 1} {
		t.Fatalf("purple\nhave %v", have)
	}
	if have := RGB(0.1, 0.2, 0.3); have.A != 1 {
		t.Fatalf("RGB alpha\nhave %v\nwant 1", have.A)
	}
}
