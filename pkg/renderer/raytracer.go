package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// World interface to avoid importing the scene package
type World interface {
	ColorAt(ray core.Ray) (core.Color, error)
}

// Raytracer renders a world through a camera, one pixel at a time
type Raytracer struct {
	world      World
	camera     *Camera
	logger     core.Logger
	background core.Color
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(world World, camera *Camera, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		world:      world,
		camera:     camera,
		logger:     logger,
		background: core.Black,
	}
}

// SetBackground sets the color the canvas is pre-filled with
func (rt *Raytracer) SetBackground(background core.Color) {
	rt.background = background
}

// Render shades every pixel of the camera's image in row-major order.
// Cancellation is checked between rows.
func (rt *Raytracer) Render(ctx context.Context) (*Canvas, RenderStats, error) {
	width, height := rt.camera.Width(), rt.camera.Height()
	canvas := NewCanvas(width, height, rt.background)
	stats := RenderStats{TotalPixels: width * height}

	rt.logger.Printf("Rendering %dx%d image...\n", width, height)
	startTime := time.Now()

	for y := 0; y < height; y++ {
		if err := ctx.Err(); err != nil {
			rt.logger.Printf("Rendering cancelled at row %d\n", y)
			stats.Duration = time.Since(startTime)
			return canvas, stats, err
		}

		for x := 0; x < width; x++ {
			ray := rt.camera.RayForPixel(x, y)
			color, err := rt.world.ColorAt(ray)
			if err != nil {
				stats.Duration = time.Since(startTime)
				return canvas, stats, fmt.Errorf("pixel (%d,%d): %w", x, y, err)
			}
			canvas.WritePixel(x, y, color)
			stats.RenderedPixels++
		}
	}

	stats.Duration = time.Since(startTime)
	rt.logger.Printf("Render completed in %v (%d pixels)\n", stats.Duration, stats.RenderedPixels)

	return canvas, stats, nil
}
