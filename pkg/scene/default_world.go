package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewDefaultWorld creates the reference world: two concentric spheres lit from the upper left
func NewDefaultWorld() *World {
	outer := geometry.NewSphere()
	outer.SetMaterial(material.Material{
		Color:     core.NewColor(0.8, 1.0, 0.6),
		Ambient:   0.1,
		Diffuse:   0.7,
		Specular:  0.2,
		Shininess: 200.0,
	})

	inner := geometry.NewSphere()
	if err := inner.SetTransformation(core.Scaling(0.5, 0.5, 0.5)); err != nil {
		panic(err) // scaling by a non-zero factor is always invertible
	}

	w := NewWorld(outer, inner)
	w.SetLight(lights.NewPointLight(core.Point(-10, 10, -10), core.White))
	return w
}
