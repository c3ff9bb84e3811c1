package math3d

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a linear RGBA color with unbounded float channels. Channels are
// kept non-negative; conversion to 8-bit clamps to [0, 1].
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Transparent = Color{}
)

// NewColor creates a color from the absolute values of its channels.
func NewColor(r, g, b, a float64) Color {
	return Color{math.Abs(r), math.Abs(g), math.Abs(b), math.Abs(a)}
}

// Solid creates an opaque color.
func Solid(r, g, b float64) Color {
	return NewColor(r, g, b, 1)
}

// ColorFromHex parses a "#rrggbb" string into an opaque color.
func ColorFromHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Solid(c.R, c.G, c.B), nil
}

// Add returns the channel-wise sum.
func (c Color) Add(o Color) Color {
	return NewColor(c.R+o.R, c.G+o.G, c.B+o.B, c.A+o.A)
}

// Sub returns the channel-wise difference, folded back to non-negative.
func (c Color) Sub(o Color) Color {
	return NewColor(c.R-o.R, c.G-o.G, c.B-o.B, c.A-o.A)
}

// Mul returns the channel-wise product, used to filter light through a material.
func (c Color) Mul(o Color) Color {
	return NewColor(c.R*o.R, c.G*o.G, c.B*o.B, c.A*o.A)
}

// Scale multiplies every channel by s.
func (c Color) Scale(s float64) Color {
	return NewColor(c.R*s, c.G*s, c.B*s, c.A*s)
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	return NewColor(c.R, c.G, c.B, a)
}

// Grayscale averages the color channels and keeps alpha.
func (c Color) Grayscale() Color {
	g := (c.R + c.G + c.B) / 3
	return NewColor(g, g, g, c.A)
}

// RGBA converts to an 8-bit color, clamping each channel to [0, 1].
func (c Color) RGBA() color.RGBA {
	r, g, b := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(c.A) * 255))}
}

// ApproxEqual reports whether every channel differs by at most tol.
func (c Color) ApproxEqual(o Color, tol float64) bool {
	return math.Abs(c.R-o.R) <= tol && math.Abs(c.G-o.G) <= tol &&
		math.Abs(c.B-o.B) <= tol && math.Abs(c.A-o.A) <= tol
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}
