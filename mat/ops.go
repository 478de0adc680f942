package mat

import (
	"fmt"
	"math"
)

func (m Mat[T]) sameShape(op string, o Mat[T]) {
	if m.rows != o.rows || m.cols != o.cols {
		shapePanic(op, m.rows, m.cols, o.rows, o.cols)
	}
}

func (m Mat[T]) apply(f func(T) T) Mat[T] {
	out := New[T](m.rows, m.cols)
	for i, x := range m.data {
		out.data[i] = f(x)
	}
	return out
}

func (m Mat[T]) zip(op string, o Mat[T], f func(a, b T) T) Mat[T] {
	m.sameShape(op, o)
	out := New[T](m.rows, m.cols)
	for i, x := range m.data {
		out.data[i] = f(x, o.data[i])
	}
	return out
}

// Add returns m + o.
func (m Mat[T]) Add(o Mat[T]) Mat[T] {
	return m.zip("Add", o, func(a, b T) T { return a + b })
}

// Sub returns m - o.
func (m Mat[T]) Sub(o Mat[T]) Mat[T] {
	return m.zip("Sub", o, func(a, b T) T { return a - b })
}

// MulElem returns the element-wise product of m and o.
func (m Mat[T]) MulElem(o Mat[T]) Mat[T] {
	return m.zip("MulElem", o, func(a, b T) T { return a * b })
}

// DivElem returns the element-wise quotient of m and o.
// Integer division by a zero element panics as in plain Go.
func (m Mat[T]) DivElem(o Mat[T]) Mat[T] {
	return m.zip("DivElem", o, func(a, b T) T { return a / b })
}

// Scale returns m * s.
func (m Mat[T]) Scale(s T) Mat[T] {
	return m.apply(func(x T) T { return x * s })
}

// Div returns m / s.
func (m Mat[T]) Div(s T) Mat[T] {
	return m.apply(func(x T) T { return x / s })
}

// Neg returns -m.
func (m Mat[T]) Neg() Mat[T] {
	return m.apply(func(x T) T { return -x })
}

// AddInPlace adds o to m element-wise.
func (m Mat[T]) AddInPlace(o Mat[T]) {
	m.sameShape("AddInPlace", o)
	for i := range m.data {
		m.data[i] += o.data[i]
	}
}

// ScaleInPlace multiplies every element of m by s.
func (m Mat[T]) ScaleInPlace(s T) {
	for i := range m.data {
		m.data[i] *= s
	}
}

// Mul returns the matrix product m·o. The column count of m must equal
// the row count of o.
func (m Mat[T]) Mul(o Mat[T]) Mat[T] {
	if m.cols != o.rows {
		shapePanic("Mul", m.rows, m.cols, o.rows, o.cols)
	}
	out := New[T](m.rows, o.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < o.cols; j++ {
			var s T
			for k := 0; k < m.cols; k++ {
				s += m.data[i*m.cols+k] * o.data[k*o.cols+j]
			}
			out.data[i*o.cols+j] = s
		}
	}
	return out
}

// Norm returns the Euclidean (Frobenius) norm over all elements.
func (m Mat[T]) Norm() float64 {
	var s float64
	for _, x := range m.data {
		s += abs2(x)
	}
	return math.Sqrt(s)
}

// Normalized returns m divided by its norm.
//
// A zero norm is not special-cased: float and complex results are NaN.
// Integer element types are divided in floating point and truncated, so
// most unit vectors collapse to zero.
func (m Mat[T]) Normalized() Mat[T] {
	n := complex(m.Norm(), 0)
	return m.apply(func(x T) T { return fromComplex[T](toComplex(x) / n) })
}

// Normalize divides m by its norm in place. See Normalized.
func (m Mat[T]) Normalize() {
	n := complex(m.Norm(), 0)
	for i, x := range m.data {
		m.data[i] = fromComplex[T](toComplex(x) / n)
	}
}

// Transpose returns the cols×rows transpose of m.
func (m Mat[T]) Transpose() Mat[T] {
	out := New[T](m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return out
}

// Adjoint returns the conjugate transpose of m. For real element types it
// equals Transpose.
func (m Mat[T]) Adjoint() Mat[T] {
	out := m.Transpose()
	if isComplex[T]() {
		for i, x := range out.data {
			out.data[i] = conj(x)
		}
	}
	return out
}

// Diag returns the main diagonal of m as a column vector of length
// min(rows, cols).
func (m Mat[T]) Diag() Mat[T] {
	n := min(m.rows, m.cols)
	out := New[T](n, 1)
	for i := 0; i < n; i++ {
		out.data[i] = m.data[i*m.cols+i]
	}
	return out
}

// Dot returns the sum of element-wise products of two vectors of equal
// length. Complex elements are not conjugated.
func Dot[T Scalar](u, v Mat[T]) T {
	if len(u.data) != len(v.data) || !u.IsVector() || !v.IsVector() {
		shapePanic("Dot", u.rows, u.cols, v.rows, v.cols)
	}
	var s T
	for i, x := range u.data {
		s += x * v.data[i]
	}
	return s
}

// Cross returns the cross product of two 3-vectors as a column vector.
func Cross[T Scalar](u, v Mat[T]) Mat[T] {
	if len(u.data) != 3 || len(v.data) != 3 {
		shapePanic("Cross", u.rows, u.cols, v.rows, v.cols)
	}
	a, b := u.data, v.data
	return Vec(
		a[1]*b[2]-a[2]*b[1],
		a[2]*b[0]-a[0]*b[2],
		a[0]*b[1]-a[1]*b[0],
	)
}

// Cos returns the cosine of the angle between two vectors.
func Cos[T Scalar](u, v Mat[T]) complex128 {
	d := toComplex(Dot(u, v))
	return d / complex(u.Norm()*v.Norm(), 0)
}

// CosReal is Cos for real vectors.
func CosReal[T Real](u, v Mat[T]) float64 {
	return float64(Dot(u, v)) / (u.Norm() * v.Norm())
}

// String formats a column vector as "(a, b)'", a row vector as "(a, b)"
// and any other matrix as bracketed rows separated by newlines.
func (m Mat[T]) String() string {
	if m.cols == 1 && m.rows != 1 {
		return "(" + join(m.data) + ")'"
	}
	if m.rows == 1 {
		return "(" + join(m.data) + ")"
	}
	s := "["
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			s += "\n"
		}
		s += join(m.data[i*m.cols : (i+1)*m.cols])
	}
	return s + "]"
}

func join[T Scalar](xs []T) string {
	s := ""
	for i, x := range xs {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprint(x)
	}
	return s
}
