package core

import "image/color"

// Color is an RGB triple. Components are not clamped.
type Color struct {
	R, G, B float64
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Hadamard returns the component-wise product of two colors
func (c Color) Hadamard(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equal reports whether two colors match within Epsilon
func (c Color) Equal(other Color) bool {
	return floatEqual(c.R, other.R) &&
		floatEqual(c.G, other.G) &&
		floatEqual(c.B, other.B)
}

// Clamp returns a color with components clamped to [min, max]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
	}
}

// ToRGBA converts the color to 8-bit RGBA, clamping to the displayable range
func (c Color) ToRGBA() color.RGBA {
	clamped := c.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255*clamped.R + 0.5),
		G: uint8(255*clamped.G + 0.5),
		B: uint8(255*clamped.B + 0.5),
		A: 255,
	}
}
