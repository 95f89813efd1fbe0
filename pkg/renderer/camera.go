package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// ErrInvalidCamera is returned for camera configurations that cannot produce rays
var ErrInvalidCamera = errors.New("renderer: invalid camera")

// CameraConfig contains camera positioning and image size
type CameraConfig struct {
	Width       int        // Image width in pixels
	Height      int        // Image height in pixels
	FieldOfView float64    // Field of view in degrees, across the longer image side
	From        core.Tuple // Eye position (a point)
	To          core.Tuple // Point the camera looks at
	Up          core.Tuple // Approximate up direction (a vector)
}

// DefaultCameraConfig returns sensible default values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:       100,
		Height:      50,
		FieldOfView: 60.0,
		From:        core.Point(0, 1.5, -5),
		To:          core.Point(0, 1, 0),
		Up:          core.Vector(0, 1, 0),
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.FieldOfView != 0 {
		result.FieldOfView = override.FieldOfView
	}
	if override.From != (core.Tuple{}) {
		result.From = override.From
	}
	if override.To != (core.Tuple{}) {
		result.To = override.To
	}
	if override.Up != (core.Tuple{}) {
		result.Up = override.Up
	}
	return result
}

// Camera maps canvas pixels to world-space rays
type Camera struct {
	width      int
	height     int
	transform  core.Matrix
	inverse    core.Matrix
	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera looking from config.From toward config.To
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.From.Equal(config.To) {
		return nil, fmt.Errorf("%w: from and to are the same point", ErrInvalidCamera)
	}
	transform := core.ViewTransform(config.From, config.To, config.Up)
	return NewCameraFromTransform(config.Width, config.Height, config.FieldOfView, transform)
}

// NewCameraFromTransform creates a camera with an explicit world-to-view transform
func NewCameraFromTransform(width, height int, fieldOfView float64, transform core.Matrix) (*Camera, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image size must be positive, got %dx%d", ErrInvalidCamera, width, height)
	}
	if !(fieldOfView > 0 && fieldOfView < 180) {
		return nil, fmt.Errorf("%w: field of view must be in (0, 180) degrees, got %g", ErrInvalidCamera, fieldOfView)
	}
	if transform.Size() != 4 {
		return nil, fmt.Errorf("%w: transform must be 4x4, got %dx%d", ErrInvalidCamera, transform.Size(), transform.Size())
	}
	inverse, err := transform.Inverse()
	if err != nil {
		// up parallel to the view direction collapses the view transform
		return nil, fmt.Errorf("%w: %w", ErrInvalidCamera, err)
	}

	c := &Camera{
		width:     width,
		height:    height,
		transform: transform,
		inverse:   inverse,
	}

	// The canvas sits one unit in front of the eye
	halfView := math.Tan(fieldOfView * math.Pi / 180.0 / 2.0)
	aspect := float64(width) / float64(height)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(width)

	return c, nil
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.width
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.height
}

// Transform returns the world-to-view transform
func (c *Camera) Transform() core.Matrix {
	return c.transform
}

// PixelSize returns the world-space size of one pixel on the canvas plane
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// RayForPixel returns the ray from the eye through the center of pixel (px, py)
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// Camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.Apply(core.Point(worldX, worldY, -1))
	origin := c.inverse.Apply(core.Point(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}
