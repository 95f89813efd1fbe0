package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// ErrInvalidTransformation is returned when a shape transform is not an invertible 4x4 matrix
var ErrInvalidTransformation = errors.New("geometry: invalid transformation")

// transformable holds the state every shape variant shares: its
// transformation (with cached inverses) and its material
type transformable struct {
	transform        core.Matrix
	inverse          core.Matrix
	inverseTranspose core.Matrix
	material         material.Material
}

func newTransformable() transformable {
	return transformable{
		transform:        core.Identity(4),
		inverse:          core.Identity(4),
		inverseTranspose: core.Identity(4),
		material:         material.DefaultMaterial(),
	}
}

// Transformation returns the object-to-world transform
func (t *transformable) Transformation() core.Matrix {
	return t.transform
}

// SetTransformation replaces the object-to-world transform.
// The matrix must be 4x4 and invertible; on error the shape is unchanged.
func (t *transformable) SetTransformation(m core.Matrix) error {
	if m.Size() != 4 {
		return fmt.Errorf("%w: expected 4x4, got %dx%d", ErrInvalidTransformation, m.Size(), m.Size())
	}
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTransformation, err)
	}

	t.transform = m
	t.inverse = inv
	t.inverseTranspose = inv.Transpose()
	return nil
}

// Material returns the surface material
func (t *transformable) Material() material.Material {
	return t.material
}

// SetMaterial replaces the surface material
func (t *transformable) SetMaterial(m material.Material) {
	t.material = m
}

// rayToObject converts a world-space ray into object space
func (t *transformable) rayToObject(ray core.Ray) core.Ray {
	return ray.Transform(t.inverse)
}

// pointToObject converts a world-space point into object space
func (t *transformable) pointToObject(point core.Tuple) core.Tuple {
	return t.inverse.Apply(point)
}

// normalToWorld converts an object-space normal into a unit world-space normal.
// The w component is discarded since the inverse transpose can disturb it under translation.
func (t *transformable) normalToWorld(normal core.Tuple) core.Tuple {
	world := t.inverseTranspose.Apply(normal)
	world.W = 0
	return world.Normalize()
}
