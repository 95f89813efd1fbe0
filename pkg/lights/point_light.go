package lights

import "github.com/df07/go-phong-raytracer/pkg/core"

// PointLight is a light source with no size, radiating equally in all directions
type PointLight struct {
	Position  core.Tuple // Location of the light (a point)
	Intensity core.Color // Brightness and color of the light
}

// NewPointLight creates a new point light
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// Type returns LightTypePoint
func (l PointLight) Type() LightType {
	return LightTypePoint
}

// Equal reports whether two lights share position and intensity
func (l PointLight) Equal(other PointLight) bool {
	return l.Position.Equal(other.Position) && l.Intensity.Equal(other.Intensity)
}
