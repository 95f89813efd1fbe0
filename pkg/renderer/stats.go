package renderer

import (
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Pixels in the image
	RenderedPixels int           // Pixels shaded before completion or cancellation
	Duration       time.Duration // Wall time spent rendering
}

// Complete reports whether every pixel was shaded
func (s RenderStats) Complete() bool {
	return s.RenderedPixels == s.TotalPixels
}

// Luminance returns the perceptual luminance of a color (Rec. 709 weights)
func Luminance(c core.Color) float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// AverageLuminance returns the mean luminance over every pixel of the canvas
func AverageLuminance(canvas *Canvas) float64 {
	total := canvas.Width() * canvas.Height()
	if total == 0 {
		return 0
	}

	sum := 0.0
	for p := range canvas.All() {
		sum += Luminance(p.Color)
	}
	return sum / float64(total)
}
