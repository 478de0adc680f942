// Package mat provides a small dense matrix type for fixed-shape numeric
// work: 2-4 component vectors and the square matrices behind 2D and 3D
// transforms.
//
// A Mat has its shape fixed at construction. Operations that combine two
// matrices check shapes at run time and panic with an error wrapping
// [ErrShape] on mismatch, the same way an out-of-range slice index panics.
// Element access is not bounds-checked beyond what Go's slices provide.
//
// Element types are integers, floats and complex numbers. Equality is exact
// per element; callers comparing floating-point results choose their own
// tolerance.
package mat

import (
	"errors"
	"fmt"
)

// ErrShape is the panic value (wrapped) for mismatched dimensions.
var ErrShape = errors.New("mat: dimension mismatch")

// Mat is a rows×cols matrix stored in row-major order.
//
// A column vector is an n×1 Mat, a row vector is 1×n. The zero Mat is a
// 0×0 matrix. Mat values share their backing storage when copied; use
// Clone for an independent copy.
type Mat[T Scalar] struct {
	rows, cols int
	data       []T
}

func shapePanic(op string, r1, c1, r2, c2 int) {
	panic(fmt.Errorf("%w: %s %dx%d and %dx%d", ErrShape, op, r1, c1, r2, c2))
}

// New returns a rows×cols matrix. With no elements it is zero-filled;
// otherwise exactly rows*cols elements must be given, in row-major order.
func New[T Scalar](rows, cols int, elems ...T) Mat[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Errorf("%w: negative shape %dx%d", ErrShape, rows, cols))
	}
	data := make([]T, rows*cols)
	if len(elems) != 0 {
		if len(elems) != rows*cols {
			panic(fmt.Errorf("%w: %d elements for %dx%d", ErrShape, len(elems), rows, cols))
		}
		copy(data, elems)
	}
	return Mat[T]{rows: rows, cols: cols, data: data}
}

// Vec returns a column vector holding elems.
func Vec[T Scalar](elems ...T) Mat[T] {
	return New(len(elems), 1, elems...)
}

// RowVec returns a row vector holding elems.
func RowVec[T Scalar](elems ...T) Mat[T] {
	return New(1, len(elems), elems...)
}

// Zero returns a zero-filled rows×cols matrix.
func Zero[T Scalar](rows, cols int) Mat[T] {
	return New[T](rows, cols)
}

// Identity returns the n×n identity matrix.
func Identity[T Scalar](n int) Mat[T] {
	m := New[T](n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Diagm returns the square matrix with v on its diagonal.
// v must be a row or column vector.
func Diagm[T Scalar](v Mat[T]) Mat[T] {
	if !v.IsVector() {
		panic(fmt.Errorf("%w: Diagm of %dx%d", ErrShape, v.rows, v.cols))
	}
	n := len(v.data)
	m := New[T](n, n)
	for i, x := range v.data {
		m.data[i*n+i] = x
	}
	return m
}

// Convert returns m with every element converted to To.
func Convert[To, From Real](m Mat[From]) Mat[To] {
	out := New[To](m.rows, m.cols)
	for i, x := range m.data {
		out.data[i] = To(x)
	}
	return out
}

// ToComplex returns m with every element promoted to complex128.
func ToComplex[From Real](m Mat[From]) Mat[complex128] {
	out := New[complex128](m.rows, m.cols)
	for i, x := range m.data {
		out.data[i] = complex(float64(x), 0)
	}
	return out
}

// Dims returns the number of rows and columns.
func (m Mat[T]) Dims() (rows, cols int) { return m.rows, m.cols }

// Rows returns the number of rows.
func (m Mat[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Mat[T]) Cols() int { return m.cols }

// Len returns rows*cols.
func (m Mat[T]) Len() int { return len(m.data) }

// Data returns the row-major backing slice.
func (m Mat[T]) Data() []T { return m.data }

// IsVector reports whether m has a single row or a single column.
func (m Mat[T]) IsVector() bool { return m.rows == 1 || m.cols == 1 }

// At returns the element at row i, column j.
func (m Mat[T]) At(i, j int) T { return m.data[i*m.cols+j] }

// Set sets the element at row i, column j.
func (m Mat[T]) Set(i, j int, v T) { m.data[i*m.cols+j] = v }

// AtFlat returns the i-th element in storage order.
func (m Mat[T]) AtFlat(i int) T { return m.data[i] }

// SetFlat sets the i-th element in storage order.
func (m Mat[T]) SetFlat(i int, v T) { m.data[i] = v }

// Fill sets every element to v.
func (m Mat[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Clone returns a copy of m with its own storage.
func (m Mat[T]) Clone() Mat[T] {
	return New(m.rows, m.cols, m.data...)
}

func (m Mat[T]) component(i int, name string) T {
	if !m.IsVector() || len(m.data) <= i {
		panic(fmt.Errorf("%w: %s of %dx%d", ErrShape, name, m.rows, m.cols))
	}
	return m.data[i]
}

// X returns the first component of a vector.
func (m Mat[T]) X() T { return m.component(0, "X") }

// Y returns the second component of a vector.
func (m Mat[T]) Y() T { return m.component(1, "Y") }

// Z returns the third component of a vector.
func (m Mat[T]) Z() T { return m.component(2, "Z") }

// W returns the fourth component of a vector.
func (m Mat[T]) W() T { return m.component(3, "W") }

// Equal reports whether m and o have the same shape and identical elements.
func (m Mat[T]) Equal(o Mat[T]) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i, x := range m.data {
		if x != o.data[i] {
			return false
		}
	}
	return true
}
