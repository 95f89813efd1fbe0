package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Sphere is the unit sphere centered at the object-space origin.
// Position, size and orientation in the world come from its transformation.
type Sphere struct {
	transformable
	origin core.Tuple
	radius float64
}

// NewSphere creates a unit sphere with identity transform and default material
func NewSphere() *Sphere {
	return &Sphere{
		transformable: newTransformable(),
		origin:        core.Point(0, 0, 0),
		radius:        1.0,
	}
}

// Origin returns the object-space center
func (s *Sphere) Origin() core.Tuple {
	return s.origin
}

// Radius returns the object-space radius
func (s *Sphere) Radius() float64 {
	return s.radius
}

// Intersect solves the ray-sphere quadratic in object space.
// The ray direction must be non-zero.
func (s *Sphere) Intersect(ray core.Ray) Intersections {
	local := s.rayToObject(ray)

	// Vector from sphere center to ray origin
	sphereToRay := local.Origin.Subtract(s.origin)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := local.Direction.Dot(local.Direction)
	b := 2 * local.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - s.radius*s.radius

	discriminant := b*b - 4*a*c

	// Ray misses
	if discriminant < 0 {
		return Intersections{}
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	return Intersections{
		NewIntersection(t1, s),
		NewIntersection(t2, s),
	}
}

// NormalAt returns the world-space normal at a world-space point on the sphere
func (s *Sphere) NormalAt(point core.Tuple) core.Tuple {
	objectPoint := s.pointToObject(point)
	objectNormal := objectPoint.Subtract(s.origin)
	return s.normalToWorld(objectNormal)
}
