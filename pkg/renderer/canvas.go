package renderer

import (
	"image"
	"iter"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Pixel is a canvas coordinate paired with its color
type Pixel struct {
	X, Y  int
	Color core.Color
}

// Canvas is a fixed-size grid of colors, pre-filled with a background color
type Canvas struct {
	width      int
	height     int
	background core.Color
	pixels     []core.Color
}

// NewCanvas creates a width×height canvas filled with background
func NewCanvas(width, height int, background core.Color) *Canvas {
	width = max(width, 0)
	height = max(height, 0)

	pixels := make([]core.Color, width*height)
	for i := range pixels {
		pixels[i] = background
	}

	return &Canvas{
		width:      width,
		height:     height,
		background: background,
		pixels:     pixels,
	}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels
func (c *Canvas) Height() int {
	return c.height
}

func (c *Canvas) contains(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// WritePixel sets the color at (x, y). Writes outside the canvas are ignored.
func (c *Canvas) WritePixel(x, y int, color core.Color) {
	if !c.contains(x, y) {
		return
	}
	c.pixels[y*c.width+x] = color
}

// PixelAt returns the color at (x, y), or the background outside the canvas
func (c *Canvas) PixelAt(x, y int) core.Color {
	if !c.contains(x, y) {
		return c.background
	}
	return c.pixels[y*c.width+x]
}

// All yields every pixel in row-major order
func (c *Canvas) All() iter.Seq[Pixel] {
	return func(yield func(Pixel) bool) {
		for y := 0; y < c.height; y++ {
			for x := 0; x < c.width; x++ {
				if !yield(Pixel{X: x, Y: y, Color: c.pixels[y*c.width+x]}) {
					return
				}
			}
		}
	}
}

// Image converts the canvas to an 8-bit RGBA image, clamping each channel
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for p := range c.All() {
		img.SetRGBA(p.X, p.Y, p.Color.ToRGBA())
	}
	return img
}
