package material

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// DefaultMaterial returns a white material with conventional Phong coefficients
func DefaultMaterial() Material {
	return Material{
		Color:     core.White,
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200.0,
	}
}

// NewMaterial creates a material and validates its coefficients
func NewMaterial(color core.Color, ambient, diffuse, specular, shininess float64) (Material, error) {
	m := Material{
		Color:     color,
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}
	if err := m.Validate(); err != nil {
		return Material{}, err
	}
	return m, nil
}

// Validate checks that coefficients are non-negative and shininess is positive
func (m Material) Validate() error {
	coefficients := []struct {
		name  string
		value float64
	}{
		{"ambient", m.Ambient},
		{"diffuse", m.Diffuse},
		{"specular", m.Specular},
	}
	for _, c := range coefficients {
		if c.value < 0 || math.IsNaN(c.value) {
			return fmt.Errorf("%w: %s must be >= 0, got %g", ErrInvalidMaterial, c.name, c.value)
		}
	}
	if !(m.Shininess > 0) {
		return fmt.Errorf("%w: shininess must be > 0, got %g", ErrInvalidMaterial, m.Shininess)
	}
	return nil
}

// Equal reports whether two materials have matching color and coefficients
func (m Material) Equal(other Material) bool {
	return m.Color.Equal(other.Color) &&
		m.Ambient == other.Ambient &&
		m.Diffuse == other.Diffuse &&
		m.Specular == other.Specular &&
		m.Shininess == other.Shininess
}

// Lighting shades a point with the Phong reflection model.
// eye and normal must be unit vectors. No occlusion test is performed.
func Lighting(m Material, light lights.PointLight, point, eye, normal core.Tuple) core.Color {
	// Combine surface color with the light's color
	effectiveColor := m.Color.Hadamard(light.Intensity)

	ambient := effectiveColor.Multiply(m.Ambient)

	lightVector := light.Position.Subtract(point).Normalize()

	// Cosine of the angle between the light vector and the normal.
	// Negative means the light is on the other side of the surface.
	lightDotNormal := lightVector.Dot(normal)
	if lightDotNormal < 0 {
		return ambient
	}

	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	// Cosine of the angle between the reflection vector and the eye.
	// Non-positive means the light reflects away from the eye.
	reflectVector := lightVector.Negate().Reflect(normal)
	reflectDotEye := reflectVector.Dot(eye)
	if reflectDotEye <= 0 {
		return ambient.Add(diffuse)
	}

	factor := math.Pow(reflectDotEye, m.Shininess)
	specular := light.Intensity.Multiply(m.Specular * factor)

	return ambient.Add(diffuse).Add(specular)
}
