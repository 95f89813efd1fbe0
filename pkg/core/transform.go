package core

import "math"

// Translation returns a 4x4 matrix that moves points by (x, y, z). Vectors are unaffected.
func Translation(x, y, z float64) Matrix {
	m := Identity(4)
	m.elements[3] = x
	m.elements[7] = y
	m.elements[11] = z
	return m
}

// Scaling returns a 4x4 matrix that scales along each axis
func Scaling(x, y, z float64) Matrix {
	m := Identity(4)
	m.elements[0] = x
	m.elements[5] = y
	m.elements[10] = z
	return m
}

// RotationX returns a rotation of r radians around the x axis
func RotationX(r float64) Matrix {
	sin, cos := math.Sincos(r)
	m := Identity(4)
	m.elements[5] = cos
	m.elements[6] = -sin
	m.elements[9] = sin
	m.elements[10] = cos
	return m
}

// RotationY returns a rotation of r radians around the y axis
func RotationY(r float64) Matrix {
	sin, cos := math.Sincos(r)
	m := Identity(4)
	m.elements[0] = cos
	m.elements[2] = sin
	m.elements[8] = -sin
	m.elements[10] = cos
	return m
}

// RotationZ returns a rotation of r radians around the z axis
func RotationZ(r float64) Matrix {
	sin, cos := math.Sincos(r)
	m := Identity(4)
	m.elements[0] = cos
	m.elements[1] = -sin
	m.elements[4] = sin
	m.elements[5] = cos
	return m
}

// Shearing returns a matrix moving each component in proportion to the other two
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	m := Identity(4)
	m.elements[1] = xy
	m.elements[2] = xz
	m.elements[4] = yx
	m.elements[6] = yz
	m.elements[8] = zx
	m.elements[9] = zy
	return m
}

// Chain composes transformations so that they apply in the order given:
// Chain(a, b, c) is c × b × a.
func Chain(transforms ...Matrix) Matrix {
	result := Identity(4)
	for _, t := range transforms {
		result = t.Multiply(result)
	}
	return result
}

// ViewTransform orients the world relative to an eye at from looking at to
func ViewTransform(from, to, up Tuple) Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := MustMatrix([][]float64{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	})
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}
