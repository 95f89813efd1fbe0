package core

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNotSquare is returned when matrix rows do not describe an NxN matrix
	ErrNotSquare = errors.New("matrix: elements do not describe a square matrix")

	// ErrNonFiniteElement is returned when a matrix element is NaN or infinite
	ErrNonFiniteElement = errors.New("matrix: element is not a finite float")

	// ErrUnsupportedOperation is returned for matrix-by-tuple multiplication on non-4x4 matrices
	ErrUnsupportedOperation = errors.New("matrix: tuple multiplication is only implemented for 4x4 matrices")

	// ErrNotInvertible is returned when inverting a matrix whose determinant is zero
	ErrNotInvertible = errors.New("matrix: not invertible")
)

// Matrix is an immutable square matrix stored row-major.
// All operations return a new Matrix.
type Matrix struct {
	size     int
	elements []float64
}

// NewMatrix creates a matrix from rows, validating that the rows form an
// NxN matrix of finite values. The input slice is copied.
func NewMatrix(rows [][]float64) (Matrix, error) {
	if err := ensureSquare(rows); err != nil {
		return Matrix{}, err
	}
	if err := ensureFinite(rows); err != nil {
		return Matrix{}, err
	}

	n := len(rows)
	m := newMatrix(n)
	for i, row := range rows {
		copy(m.elements[i*n:(i+1)*n], row)
	}
	return m, nil
}

// MustMatrix is like NewMatrix but panics on invalid input.
// Intended for literals whose shape is known at compile time.
func MustMatrix(rows [][]float64) Matrix {
	m, err := NewMatrix(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// Identity returns the NxN identity matrix
func Identity(n int) Matrix {
	m := newMatrix(n)
	for i := 0; i < n; i++ {
		m.elements[i*n+i] = 1.0
	}
	return m
}

// newMatrix allocates a zero matrix without validation
func newMatrix(n int) Matrix {
	return Matrix{size: n, elements: make([]float64, n*n)}
}

func ensureSquare(rows [][]float64) error {
	if len(rows) == 0 {
		return fmt.Errorf("%w: no rows", ErrNotSquare)
	}
	for i, row := range rows {
		if len(row) != len(rows) {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrNotSquare, i, len(row), len(rows))
		}
	}
	return nil
}

func ensureFinite(rows [][]float64) error {
	for i, row := range rows {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: element (%d,%d) is %v", ErrNonFiniteElement, i, j, v)
			}
		}
	}
	return nil
}

// Size returns N for an NxN matrix
func (m Matrix) Size() int {
	return m.size
}

// At returns the element at row i, column j
func (m Matrix) At(i, j int) float64 {
	return m.elements[i*m.size+j]
}

// Rows returns a copy of the elements as a slice of rows
func (m Matrix) Rows() [][]float64 {
	rows := make([][]float64, m.size)
	for i := range rows {
		rows[i] = make([]float64, m.size)
		copy(rows[i], m.elements[i*m.size:(i+1)*m.size])
	}
	return rows
}

// Equal reports whether both matrices have the same size and every pair of
// elements differs by at most delta
func (m Matrix) Equal(other Matrix, delta float64) bool {
	if m.size != other.size {
		return false
	}
	for i, v := range m.elements {
		if math.Abs(v-other.elements[i]) > delta {
			return false
		}
	}
	return true
}

// Multiply returns the product m × other. Both matrices must be the same size.
func (m Matrix) Multiply(other Matrix) Matrix {
	if m.size != other.size {
		panic(fmt.Sprintf("matrix: cannot multiply %dx%d by %dx%d", m.size, m.size, other.size, other.size))
	}

	n := m.size
	result := newMatrix(n)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				sum += m.elements[i*n+j] * other.elements[j*n+k]
			}
			result.elements[i*n+k] = sum
		}
	}
	return result
}

// MultiplyTuple returns m × t. Only defined for 4x4 matrices.
func (m Matrix) MultiplyTuple(t Tuple) (Tuple, error) {
	if m.size != 4 {
		return Tuple{}, fmt.Errorf("%w: got %dx%d", ErrUnsupportedOperation, m.size, m.size)
	}
	return m.apply(t), nil
}

// Apply is MultiplyTuple for a matrix already known to be 4x4.
// It panics if the matrix has any other size.
func (m Matrix) Apply(t Tuple) Tuple {
	if m.size != 4 {
		panic(fmt.Errorf("%w: got %dx%d", ErrUnsupportedOperation, m.size, m.size))
	}
	return m.apply(t)
}

func (m Matrix) apply(t Tuple) Tuple {
	e := m.elements
	return Tuple{
		X: e[0]*t.X + e[1]*t.Y + e[2]*t.Z + e[3]*t.W,
		Y: e[4]*t.X + e[5]*t.Y + e[6]*t.Z + e[7]*t.W,
		Z: e[8]*t.X + e[9]*t.Y + e[10]*t.Z + e[11]*t.W,
		W: e[12]*t.X + e[13]*t.Y + e[14]*t.Z + e[15]*t.W,
	}
}

// Transpose returns the matrix with rows and columns swapped
func (m Matrix) Transpose() Matrix {
	n := m.size
	result := newMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			result.elements[j*n+i] = m.elements[i*n+j]
		}
	}
	return result
}

// Determinant computes the determinant by cofactor expansion along row 0
func (m Matrix) Determinant() float64 {
	switch m.size {
	case 0:
		return 1
	case 1:
		return m.elements[0]
	case 2:
		return m.elements[0]*m.elements[3] - m.elements[1]*m.elements[2]
	}

	det := 0.0
	for col := 0; col < m.size; col++ {
		det += m.Cofactor(0, col) * m.elements[col]
	}
	return det
}

// Submatrix returns the (N-1)x(N-1) matrix with the given row and column removed
func (m Matrix) Submatrix(row, col int) Matrix {
	n := m.size
	result := newMatrix(n - 1)
	k := 0
	for i := 0; i < n; i++ {
		if i == row {
			continue
		}
		for j := 0; j < n; j++ {
			if j == col {
				continue
			}
			result.elements[k] = m.elements[i*n+j]
			k++
		}
	}
	return result
}

// Minor returns the determinant of the submatrix at (row, col)
func (m Matrix) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor at (row, col), negated when row+col is odd
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// Invertible reports whether the determinant is non-zero
func (m Matrix) Invertible() bool {
	return m.Determinant() != 0
}

// Inverse returns the transposed cofactor matrix divided by the determinant
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, ErrNotInvertible
	}

	n := m.size
	result := newMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			// transposed on write
			result.elements[j*n+i] = m.Cofactor(i, j) / det
		}
	}
	return result, nil
}
