// Package transform builds 2D affine and 3D homogeneous transforms on top
// of package mat.
//
// Composition follows the usual matrix convention: a.Mul(b) is the
// transform that applies b first and then a.
package transform

import (
	"math"

	"golang.org/x/image/math/f64"

	"github.com/0382/games/mat"
)

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 { return deg * math.Pi / 180 }

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 { return rad * 180 / math.Pi }

// RotationMatrix2D returns the 2×2 counter-clockwise rotation by angle.
func RotationMatrix2D(angle float64) mat.Mat[float64] {
	sin, cos := math.Sincos(angle)
	return mat.New(2, 2,
		cos, -sin,
		sin, cos,
	)
}

// ScalingMatrix2D returns the 2×2 diagonal scale matrix for v.
func ScalingMatrix2D(v mat.Mat[float64]) mat.Mat[float64] {
	return mat.New(2, 2,
		v.X(), 0,
		0, v.Y(),
	)
}

// Rotate rotates the 2-vector v counter-clockwise by angle.
func Rotate(v mat.Mat[float64], angle float64) mat.Mat[float64] {
	sin, cos := math.Sincos(angle)
	return mat.Vec(v.X()*cos-v.Y()*sin, v.X()*sin+v.Y()*cos)
}

// Transform2D is an affine map p -> linear·p + translation.
// The zero value is the identity.
type Transform2D struct {
	linear      mat.Mat[float64] // 2×2
	translation mat.Mat[float64] // 2×1
}

// New2D returns the transform with the given 2×2 linear part and
// 2-vector translation.
func New2D(linear, translation mat.Mat[float64]) Transform2D {
	if r, c := linear.Dims(); r != 2 || c != 2 {
		panic(mat.ErrShape)
	}
	if translation.Len() != 2 {
		panic(mat.ErrShape)
	}
	return Transform2D{linear: linear.Clone(), translation: mat.Vec(translation.X(), translation.Y())}
}

// Identity2D returns the identity transform.
func Identity2D() Transform2D {
	return Transform2D{linear: mat.Identity[float64](2), translation: mat.Zero[float64](2, 1)}
}

// parts returns the linear part and translation, substituting the
// identity for a zero Transform2D.
func (t Transform2D) parts() (linear, translation mat.Mat[float64]) {
	if t.linear.Len() == 0 {
		return mat.Identity[float64](2), mat.Zero[float64](2, 1)
	}
	return t.linear, t.translation
}

// Translation2D returns a pure translation by v.
func Translation2D(v mat.Mat[float64]) Transform2D {
	return New2D(mat.Identity[float64](2), v)
}

// Rotation2D returns a pure counter-clockwise rotation by angle radians
// about the origin.
func Rotation2D(angle float64) Transform2D {
	return Transform2D{linear: RotationMatrix2D(angle), translation: mat.Zero[float64](2, 1)}
}

// Scaling2D returns a pure non-uniform scale by v.
func Scaling2D(v mat.Mat[float64]) Transform2D {
	return Transform2D{linear: ScalingMatrix2D(v), translation: mat.Zero[float64](2, 1)}
}

// Linear returns a copy of the 2×2 linear part.
func (t Transform2D) Linear() mat.Mat[float64] {
	l, _ := t.parts()
	return l.Clone()
}

// Translation returns a copy of the translation vector.
func (t Transform2D) Translation() mat.Mat[float64] {
	_, tr := t.parts()
	return tr.Clone()
}

// Mul returns t∘o: the transform applying o first, then t.
func (t Transform2D) Mul(o Transform2D) Transform2D {
	tl, tt := t.parts()
	ol, ot := o.parts()
	return Transform2D{
		linear:      tl.Mul(ol),
		translation: tt.Add(tl.Mul(ot)),
	}
}

// Apply maps the 2-vector v.
func (t Transform2D) Apply(v mat.Mat[float64]) mat.Mat[float64] {
	l, tr := t.parts()
	return tr.Add(l.Mul(v))
}

// ApplyXY maps the point (x, y).
func (t Transform2D) ApplyXY(x, y float64) (float64, float64) {
	lm, tm := t.parts()
	l, tr := lm.Data(), tm.Data()
	return tr[0] + l[0]*x + l[1]*y, tr[1] + l[2]*x + l[3]*y
}

// Aff3 returns t in the layout used by golang.org/x/image/draw.
func (t Transform2D) Aff3() f64.Aff3 {
	lm, tm := t.parts()
	l, tr := lm.Data(), tm.Data()
	return f64.Aff3{
		l[0], l[1], tr[0],
		l[2], l[3], tr[1],
	}
}
