package geometry

import (
	"sort"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Intersection pairs a ray parameter with the shape it hit.
// The shape is referenced, not owned.
type Intersection struct {
	T      float64 // Parameter t along the ray, may be negative
	Object Shape   // Shape that was hit
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections is a collection of intersections ordered ascending by t
type Intersections []Intersection

// NewIntersections collects intersections and sorts them ascending by t
func NewIntersections(xs ...Intersection) Intersections {
	result := make(Intersections, len(xs))
	copy(result, xs)
	result.sort()
	return result
}

// Merge returns a new collection holding both sets, ascending by t
func (xs Intersections) Merge(other Intersections) Intersections {
	result := make(Intersections, 0, len(xs)+len(other))
	result = append(result, xs...)
	result = append(result, other...)
	result.sort()
	return result
}

func (xs Intersections) sort() {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Len returns the number of intersections
func (xs Intersections) Len() int {
	return len(xs)
}

// At returns the i-th intersection
func (xs Intersections) At(i int) Intersection {
	return xs[i]
}

// IsEmpty reports whether the collection has no intersections
func (xs Intersections) IsEmpty() bool {
	return len(xs) == 0
}

// Hit returns the intersection with the lowest non-negative t.
// The collection must already be sorted, which every constructor in this package guarantees.
func (xs Intersections) Hit() (Intersection, bool) {
	for _, x := range xs {
		if x.T >= 0 {
			return x, true
		}
	}
	return Intersection{}, false
}

// Computations holds the geometric context needed to shade an intersection
type Computations struct {
	T            float64    // Parameter t along the ray
	Object       Shape      // Shape that was hit
	Point        core.Tuple // World-space hit point
	EyeVector    core.Tuple // Vector from the hit point back toward the ray origin
	NormalVector core.Tuple // Surface normal, flipped to face the eye
	Inside       bool       // Whether the hit is on the inner surface
}

// Prepare precomputes the shading context for this intersection along ray
func (x Intersection) Prepare(ray core.Ray) Computations {
	comps := Computations{
		T:      x.T,
		Object: x.Object,
	}

	comps.Point = ray.Position(x.T)
	comps.EyeVector = ray.Direction.Negate()
	comps.NormalVector = x.Object.NormalAt(comps.Point)

	if comps.NormalVector.Dot(comps.EyeVector) < 0 {
		comps.Inside = true
		comps.NormalVector = comps.NormalVector.Negate()
	}

	return comps
}
