package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

var _ Shape = (*Sphere)(nil)

func TestSphere_Defaults(t *testing.T) {
	s := NewSphere()

	if !s.Origin().Equal(core.Point(0, 0, 0)) {
		t.Errorf("Expected origin at (0,0,0), got %v", s.Origin())
	}
	if s.Radius() != 1.0 {
		t.Errorf("Expected radius 1, got %f", s.Radius())
	}
	if !s.Transformation().Equal(core.Identity(4), 0) {
		t.Errorf("Expected identity transformation, got %v", s.Transformation().Rows())
	}
	if !s.Material().Equal(material.DefaultMaterial()) {
		t.Errorf("Expected default material, got %+v", s.Material())
	}
}

func TestSphere_Intersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		expected  []float64
	}{
		{
			name:      "two points",
			origin:    core.Point(0, 0, -5),
			direction: core.Vector(0, 0, 1),
			expected:  []float64{4.0, 6.0},
		},
		{
			name:      "tangent",
			origin:    core.Point(0, 1, -5),
			direction: core.Vector(0, 0, 1),
			expected:  []float64{5.0, 5.0},
		},
		{
			name:      "miss",
			origin:    core.Point(0, 2, -5),
			direction: core.Vector(0, 0, 1),
			expected:  nil,
		},
		{
			name:      "origin inside sphere",
			origin:    core.Point(0, 0, 0),
			direction: core.Vector(0, 0, 1),
			expected:  []float64{-1.0, 1.0},
		},
		{
			name:      "sphere behind ray",
			origin:    core.Point(0, 0, 5),
			direction: core.Vector(0, 0, 1),
			expected:  []float64{-6.0, -4.0},
		},
		{
			name:      "non-unit direction",
			origin:    core.Point(0, 0, -5),
			direction: core.Vector(0, 0, 2),
			expected:  []float64{2.0, 3.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSphere()
			xs := s.Intersect(core.NewRay(tt.origin, tt.direction))

			if xs.Len() != len(tt.expected) {
				t.Fatalf("Expected %d intersections, got %d", len(tt.expected), xs.Len())
			}
			for i, want := range tt.expected {
				if math.Abs(xs.At(i).T-want) > 1e-9 {
					t.Errorf("Intersection %d: expected t=%f, got t=%f", i, want, xs.At(i).T)
				}
				if xs.At(i).Object != Shape(s) {
					t.Errorf("Intersection %d: expected object to be the sphere", i)
				}
			}
		})
	}
}

func TestSphere_IntersectTransformed(t *testing.T) {
	ray := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))

	scaled := NewSphere()
	if err := scaled.SetTransformation(core.Scaling(2, 2, 2)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	xs := scaled.Intersect(ray)
	if xs.Len() != 2 || xs.At(0).T != 3 || xs.At(1).T != 7 {
		t.Errorf("Expected scaled sphere hits at 3 and 7, got %v", xs)
	}

	translated := NewSphere()
	if err := translated.SetTransformation(core.Translation(5, 0, 0)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if xs := translated.Intersect(ray); !xs.IsEmpty() {
		t.Errorf("Expected translated sphere to be missed, got %d hits", xs.Len())
	}

	if ray.Origin != core.Point(0, 0, -5) || ray.Direction != core.Vector(0, 0, 1) {
		t.Error("Intersect must not modify the world-space ray")
	}
}

func TestSphere_SetTransformation(t *testing.T) {
	s := NewSphere()
	translation := core.Translation(2, 3, 4)

	if err := s.SetTransformation(translation); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !s.Transformation().Equal(translation, 0) {
		t.Errorf("Expected %v, got %v", translation.Rows(), s.Transformation().Rows())
	}

	tests := []struct {
		name   string
		matrix core.Matrix
	}{
		{"singular", core.Scaling(0, 1, 1)},
		{"wrong size", core.Identity(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.SetTransformation(tt.matrix)
			if !errors.Is(err, ErrInvalidTransformation) {
				t.Fatalf("Expected ErrInvalidTransformation, got %v", err)
			}
			if !s.Transformation().Equal(translation, 0) {
				t.Error("Expected transformation to be unchanged after a rejected update")
			}
		})
	}
}

func TestSphere_SetMaterial(t *testing.T) {
	s := NewSphere()
	m := material.DefaultMaterial()
	m.Ambient = 1

	s.SetMaterial(m)
	if !s.Material().Equal(m) {
		t.Errorf("Expected %+v, got %+v", m, s.Material())
	}
}

func TestSphere_NormalAt(t *testing.T) {
	third := math.Sqrt(3) / 3

	tests := []struct {
		name     string
		point    core.Tuple
		expected core.Tuple
	}{
		{"x axis", core.Point(1, 0, 0), core.Vector(1, 0, 0)},
		{"y axis", core.Point(0, 1, 0), core.Vector(0, 1, 0)},
		{"z axis", core.Point(0, 0, 1), core.Vector(0, 0, 1)},
		{"nonaxial", core.Point(third, third, third), core.Vector(third, third, third)},
	}

	s := NewSphere()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.NormalAt(tt.point)
			if !got.Equal(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
			if !got.Equal(got.Normalize()) {
				t.Errorf("Expected normal %v to be normalized", got)
			}
		})
	}
}

func TestSphere_NormalAtTransformed(t *testing.T) {
	tests := []struct {
		name      string
		transform core.Matrix
		point     core.Tuple
		expected  core.Tuple
	}{
		{
			name:      "translated",
			transform: core.Translation(0, 1, 0),
			point:     core.Point(0, 1.70711, -0.70711),
			expected:  core.Vector(0, 0.70711, -0.70711),
		},
		{
			name:      "rotated then scaled",
			transform: core.Chain(core.RotationZ(math.Pi/5), core.Scaling(1, 0.5, 1)),
			point:     core.Point(0, math.Sqrt2/2, -math.Sqrt2/2),
			expected:  core.Vector(0, 0.97014, -0.24254),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSphere()
			if err := s.SetTransformation(tt.transform); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got := s.NormalAt(tt.point); !got.Equal(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
