package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// ErrNoLight is returned when the world's light is requested but none has been set
var ErrNoLight = errors.New("scene: world has no light")

// World is a collection of shapes lit by at most one point light.
// A World is not safe for concurrent mutation.
type World struct {
	objects []geometry.Shape
	light   *lights.PointLight
}

// NewWorld creates a world holding the given shapes and no light
func NewWorld(objects ...geometry.Shape) *World {
	w := &World{objects: make([]geometry.Shape, 0, len(objects))}
	w.objects = append(w.objects, objects...)
	return w
}

// Objects returns the shapes in insertion order. The returned slice is a copy.
func (w *World) Objects() []geometry.Shape {
	objects := make([]geometry.Shape, len(w.objects))
	copy(objects, w.objects)
	return objects
}

// Object returns the i-th shape
func (w *World) Object(i int) geometry.Shape {
	return w.objects[i]
}

// AddObject appends shapes to the world
func (w *World) AddObject(objects ...geometry.Shape) {
	w.objects = append(w.objects, objects...)
}

// Light returns the world's light, or ErrNoLight if none is set
func (w *World) Light() (lights.PointLight, error) {
	if w.light == nil {
		return lights.PointLight{}, ErrNoLight
	}
	return *w.light, nil
}

// SetLight replaces the world's light
func (w *World) SetLight(light lights.PointLight) {
	w.light = &light
}

// ClearLight removes the world's light
func (w *World) ClearLight() {
	w.light = nil
}

// HasLight reports whether a light is set
func (w *World) HasLight() bool {
	return w.light != nil
}

// Intersect intersects the ray with every shape and returns all hits ascending by t
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, object := range w.objects {
		xs = append(xs, object.Intersect(ray)...)
	}
	return geometry.NewIntersections(xs...)
}

// ShadeHit returns the Phong color at a prepared intersection.
// Every light contributes regardless of intervening geometry.
func (w *World) ShadeHit(comps geometry.Computations) (core.Color, error) {
	light, err := w.Light()
	if err != nil {
		return core.Black, fmt.Errorf("shade hit: %w", err)
	}

	return material.Lighting(
		comps.Object.Material(),
		light,
		comps.Point,
		comps.EyeVector,
		comps.NormalVector,
	), nil
}

// ColorAt returns the color seen along ray: black on a miss, otherwise the shaded nearest hit
func (w *World) ColorAt(ray core.Ray) (core.Color, error) {
	hit, found := w.Intersect(ray).Hit()
	if !found {
		return core.Black, nil
	}
	return w.ShadeHit(hit.Prepare(ray))
}
