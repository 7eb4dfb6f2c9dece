package catwalk

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default paint (full opacity, no tint).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied 8-bit color for submission to the
// drawing backend.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// HSL builds an opaque Color from hue (degrees), saturation, and lightness.
// Used throughout the scene palette so that related shades (canopy tints,
// hill layers) can be derived by nudging a single channel.
func HSL(h, s, l float64) Color {
	cc := colorful.Hsl(h, s, l)
	return Color{R: cc.R, G: cc.G, B: cc.B, A: 1}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Covers reports whether r fully covers other.
func (r Rect) Covers(other Rect) bool {
	return r.X <= other.X && r.Y <= other.Y &&
		r.X+r.Width >= other.X+other.Width &&
		r.Y+r.Height >= other.Y+other.Height
}
