package render

import "github.com/gdamore/tcell/v2"

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// clamp converts float to uint8
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Scale multiplies each channel by f
func (c RGB) Scale(f float64) RGB {
	return RGB{clamp(float64(c.R) * f), clamp(float64(c.G) * f), clamp(float64(c.B) * f)}
}

// Lerp blends c toward o by t in [0, 1]
func (c RGB) Lerp(o RGB, t float64) RGB {
	return RGB{
		clamp(float64(c.R) + (float64(o.R)-float64(c.R))*t),
		clamp(float64(c.G) + (float64(o.G)-float64(c.G))*t),
		clamp(float64(c.B) + (float64(o.B)-float64(c.B))*t),
	}
}

// TCell converts to a tcell true color
func (c RGB) TCell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
