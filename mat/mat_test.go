package mat

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diffData[T Scalar](t *testing.T, name string, want, got Mat[T], opts ...cmp.Option) {
	t.Helper()
	if wr, wc := want.Dims(); wr != got.Rows() || wc != got.Cols() {
		t.Fatalf("%s: dims = %dx%d, want %dx%d", name, got.Rows(), got.Cols(), wr, wc)
	}
	if d := cmp.Diff(want.Data(), got.Data(), opts...); d != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", name, d)
	}
}

func expectShapePanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("%s: expected panic", name)
			return
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrShape) {
			t.Errorf("%s: panic = %v, want ErrShape", name, r)
		}
	}()
	f()
}

func TestNew(t *testing.T) {
	m := New(2, 3, 1, 2, 3, 4, 5, 6)
	if r, c := m.Dims(); r != 2 || c != 3 {
		t.Fatalf("Dims() = (%d, %d), want (2, 3)", r, c)
	}
	if got := m.At(1, 2); got != 6 {
		t.Errorf("At(1, 2) = %v, want 6", got)
	}
	if got := m.AtFlat(4); got != 5 {
		t.Errorf("AtFlat(4) = %v, want 5", got)
	}

	z := New[float64](3, 2)
	for i := 0; i < z.Len(); i++ {
		if z.AtFlat(i) != 0 {
			t.Fatalf("New without elements not zero-filled at %d", i)
		}
	}

	expectShapePanic(t, "wrong element count", func() { New(2, 2, 1, 2, 3) })
	expectShapePanic(t, "negative shape", func() { New[int](-1, 2) })
}

func TestSetAndFill(t *testing.T) {
	m := Zero[int](2, 2)
	m.Set(0, 1, 7)
	m.SetFlat(2, 9)
	diffData(t, "Set", New(2, 2, 0, 7, 9, 0), m)

	m.Fill(3)
	diffData(t, "Fill", New(2, 2, 3, 3, 3, 3), m)
}

func TestCloneIsIndependent(t *testing.T) {
	a := Vec(1.0, 2.0)
	b := a.Clone()
	b.SetFlat(0, 5)
	if a.X() != 1 {
		t.Errorf("Clone shares storage: a.X() = %v after modifying clone", a.X())
	}
}

func TestComponents(t *testing.T) {
	v := Vec[float32](1, 2, 3, 4)
	if v.X() != 1 || v.Y() != 2 || v.Z() != 3 || v.W() != 4 {
		t.Errorf("components = %v %v %v %v, want 1 2 3 4", v.X(), v.Y(), v.Z(), v.W())
	}
	r := RowVec(5, 6)
	if r.Y() != 6 {
		t.Errorf("RowVec.Y() = %v, want 6", r.Y())
	}
	expectShapePanic(t, "Z of 2-vector", func() { _ = r.Z() })
	expectShapePanic(t, "X of matrix", func() { _ = Identity[int](2).X() })
}

func TestArithmetic(t *testing.T) {
	a := Vec(1.0, 2.0, 3.0)
	b := Vec(4.0, 5.0, 0.0)

	diffData(t, "Add", Vec(5.0, 7.0, 3.0), a.Add(b))
	diffData(t, "Sub", Vec(-3.0, -3.0, 3.0), a.Sub(b))
	diffData(t, "Scale", Vec(3.0, 6.0, 9.0), a.Scale(3))
	diffData(t, "Div", Vec(0.5, 1.0, 1.5), a.Div(2))
	diffData(t, "Neg", Vec(-1.0, -2.0, -3.0), a.Neg())
	diffData(t, "MulElem", Vec(4.0, 10.0, 0.0), a.MulElem(b))
	diffData(t, "DivElem", Vec(2.0, 2.5, 3.0), Vec(8.0, 5.0, 3.0).DivElem(Vec(4.0, 2.0, 1.0)))

	c := a.Clone()
	c.AddInPlace(b)
	c.ScaleInPlace(2)
	diffData(t, "in place", Vec(10.0, 14.0, 6.0), c)

	expectShapePanic(t, "Add mismatch", func() { a.Add(Vec(1.0, 2.0)) })
	expectShapePanic(t, "Add row vs column", func() { a.Add(RowVec(1.0, 2.0, 3.0)) })
}

func TestAddSubRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		a, b Mat[float64]
	}{
		{"small", New[float64](2, 2, 1, 2, 3, 4), New(2, 2, 0.5, 0.25, 0.125, 8)},
		{"integers as floats", Vec(10.0, -20.0, 30.0), Vec(3.0, 4.0, 5.0)},
		{"zeros", Zero[float64](3, 3), Identity[float64](3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Add(tt.b).Sub(tt.b)
			if !got.Equal(tt.a) {
				t.Errorf("(A+B)-B = %v, want %v", got, tt.a)
			}
		})
	}

	ai := New(2, 3, 1, -2, 3, -4, 5, -6)
	bi := New(2, 3, 7, 8, 9, 10, 11, 12)
	if got := ai.Add(bi).Sub(bi); !got.Equal(ai) {
		t.Errorf("int (A+B)-B = %v, want %v", got, ai)
	}
}

func TestMul(t *testing.T) {
	a := New(2, 3, 1, 2, 3, 4, 5, 6)
	b := New(3, 2, 7, 8, 9, 10, 11, 12)
	diffData(t, "Mul", New(2, 2, 58, 64, 139, 154), a.Mul(b))

	m := New(3, 3, 2.0, -1.0, 0.5, 3.0, 4.0, 1.0, -2.0, 0.0, 7.0)
	if got := m.Mul(Identity[float64](3)); !got.Equal(m) {
		t.Errorf("A*I = %v, want %v", got, m)
	}
	if got := Identity[float64](3).Mul(m); !got.Equal(m) {
		t.Errorf("I*A = %v, want %v", got, m)
	}

	v := Vec(1, 1, 1)
	diffData(t, "matrix-vector", Vec(6, 15), a.Mul(v))

	expectShapePanic(t, "inner mismatch", func() { a.Mul(a) })
}

func TestTranspose(t *testing.T) {
	a := New(2, 3, 1, 2, 3, 4, 5, 6)
	at := a.Transpose()
	diffData(t, "Transpose", New(3, 2, 1, 4, 2, 5, 3, 6), at)
	if got := at.Transpose(); !got.Equal(a) {
		t.Errorf("transpose(transpose(A)) = %v, want %v", got, a)
	}
	if got := Vec(1, 2, 3).Transpose(); !got.Equal(RowVec(1, 2, 3)) {
		t.Errorf("vector transpose = %v, want row vector", got)
	}
}

func TestAdjoint(t *testing.T) {
	c := New[complex128](1, 2, 1+2i, 3-4i)
	want := New[complex128](2, 1, 1-2i, 3+4i)
	if got := c.Adjoint(); !got.Equal(want) {
		t.Errorf("Adjoint = %v, want %v", got, want)
	}

	r := New(2, 2, 1.0, 2.0, 3.0, 4.0)
	if got := r.Adjoint(); !got.Equal(r.Transpose()) {
		t.Errorf("real Adjoint = %v, want transpose %v", got, r.Transpose())
	}
}

func TestNorm(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"3-4-5", Vec(3.0, 4.0).Norm(), 5},
		{"int", Vec(3, 4).Norm(), 5},
		{"matrix", New(2, 2, 1.0, 1.0, 1.0, 1.0).Norm(), 2},
		{"complex", Vec[complex128](3i, 4).Norm(), 5},
		{"zero", Zero[float64](2, 1).Norm(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > 1e-12 {
				t.Errorf("Norm() = %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	v := Vec(3.0, 4.0)
	diffData(t, "Normalized", Vec(0.6, 0.8), v.Normalized(), cmpopts.EquateApprox(0, 1e-12))
	if v.X() != 3 {
		t.Errorf("Normalized modified receiver: %v", v)
	}

	v.Normalize()
	diffData(t, "Normalize", Vec(0.6, 0.8), v, cmpopts.EquateApprox(0, 1e-12))

	c := Vec[complex128](3i, 4).Normalized()
	if cmplx.Abs(c.X()-0.6i) > 1e-12 || cmplx.Abs(c.Y()-0.8) > 1e-12 {
		t.Errorf("complex Normalized = %v", c)
	}
}

func TestNormalizeZeroIsNonFinite(t *testing.T) {
	z := Zero[float64](3, 1).Normalized()
	for i := 0; i < z.Len(); i++ {
		if !math.IsNaN(z.AtFlat(i)) {
			t.Errorf("element %d = %v, want NaN", i, z.AtFlat(i))
		}
	}

	// Integer vectors cannot hold NaN and must not panic.
	zi := Zero[int](2, 1).Normalized()
	if zi.X() != 0 || zi.Y() != 0 {
		t.Errorf("int zero Normalized = %v, want zeros", zi)
	}
}

func TestConstructors(t *testing.T) {
	diffData(t, "Identity", New(3, 3, 1, 0, 0, 0, 1, 0, 0, 0, 1), Identity[int](3))
	diffData(t, "Diagm col", New(2, 2, 4, 0, 0, 5), Diagm(Vec(4, 5)))
	diffData(t, "Diagm row", New(3, 3, 1, 0, 0, 0, 2, 0, 0, 0, 3), Diagm(RowVec(1, 2, 3)))
	diffData(t, "Diag", Vec(1, 5), New(2, 3, 1, 2, 3, 4, 5, 6).Diag())

	expectShapePanic(t, "Diagm of matrix", func() { Diagm(Identity[int](2)) })
}

func TestConvert(t *testing.T) {
	f := Convert[float64](Vec(1, 2, 3))
	diffData(t, "int to float", Vec(1.0, 2.0, 3.0), f)

	i := Convert[int](Vec(1.9, -2.9))
	diffData(t, "float to int", Vec(1, -2), i)

	c := ToComplex(Vec(1.5, 2.0))
	diffData(t, "to complex", Vec[complex128](1.5, 2), c)
}

func TestDotCrossCos(t *testing.T) {
	a := Vec(1.0, 2.0, 3.0)
	b := Vec(4.0, 5.0, 6.0)
	if got := Dot(a, b); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
	diffData(t, "Cross", Vec(-3.0, 6.0, -3.0), Cross(a, b))

	x := Vec(1.0, 0.0, 0.0)
	y := Vec(0.0, 1.0, 0.0)
	diffData(t, "x cross y", Vec(0.0, 0.0, 1.0), Cross(x, y))
	if got := CosReal(x, y); got != 0 {
		t.Errorf("CosReal(x, y) = %v, want 0", got)
	}
	if got := CosReal(a, a); math.Abs(got-1) > 1e-12 {
		t.Errorf("CosReal(a, a) = %v, want 1", got)
	}
	if got := Cos(a, a); cmplx.Abs(got-1) > 1e-12 {
		t.Errorf("Cos(a, a) = %v, want 1", got)
	}

	expectShapePanic(t, "Dot mismatch", func() { Dot(a, Vec(1.0, 2.0)) })
	expectShapePanic(t, "Cross of 2-vectors", func() { Cross(Vec(1, 2), Vec(3, 4)) })
}

func TestEqualExact(t *testing.T) {
	a := Vec(0.1+0.2, 1.0)
	b := Vec(0.3, 1.0)
	if a.Equal(b) {
		t.Error("Equal should be exact: 0.1+0.2 != 0.3")
	}
	if Vec(1, 2).Equal(RowVec(1, 2)) {
		t.Error("Equal should compare shape")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		m    Mat[int]
		want string
	}{
		{"column", Vec(1, 2, 3), "(1, 2, 3)'"},
		{"row", RowVec(1, 2, 3), "(1, 2, 3)"},
		{"matrix", New(2, 2, 1, 2, 3, 4), "[1, 2\n3, 4]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

type meters float64

func TestNamedElementType(t *testing.T) {
	v := Vec[meters](3, 4)
	if got := v.Norm(); got != 5 {
		t.Errorf("Norm() = %v, want 5", got)
	}
	n := v.Normalized()
	if math.Abs(float64(n.X())-0.6) > 1e-12 {
		t.Errorf("Normalized().X() = %v, want 0.6", n.X())
	}
}
