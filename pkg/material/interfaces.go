package material

import (
	"errors"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// ErrInvalidMaterial is returned by Validate for coefficients outside their domain
var ErrInvalidMaterial = errors.New("material: invalid coefficients")

// Material describes how a surface responds to light under the Phong model
type Material struct {
	Color     core.Color // Base surface color
	Ambient   float64    // Background light reflected, typically in [0,1]
	Diffuse   float64    // Light reflected from a matte surface, typically in [0,1]
	Specular  float64    // Highlight reflected like a mirror, typically in [0,1]
	Shininess float64    // Size of the specular highlight; larger is smaller and tighter
}
