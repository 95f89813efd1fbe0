package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Rays and points passed in are in world space; implementations convert
// to object space with the inverse of their transformation.
type Shape interface {
	Transformation() core.Matrix
	SetTransformation(m core.Matrix) error
	Material() material.Material
	SetMaterial(m material.Material)

	// Intersect returns every intersection of the ray with the shape, ascending by t
	Intersect(ray core.Ray) Intersections

	// NormalAt returns the unit world-space normal at a world-space point on the surface
	NormalAt(point core.Tuple) core.Tuple
}
