package transform

import (
	"math"

	"github.com/0382/games/mat"
)

// RotationMatrix3D returns the 3×3 rotation by angle about axis using
// Rodrigues' formula. axis must be a unit 3-vector.
func RotationMatrix3D(axis mat.Mat[float64], angle float64) mat.Mat[float64] {
	s, c := math.Sincos(angle)
	t := 1 - c
	x, y, z := axis.X(), axis.Y(), axis.Z()
	return mat.New(3, 3,
		t*x*x+c, t*x*y-s*z, t*x*z+s*y,
		t*x*y+s*z, t*y*y+c, t*y*z-s*x,
		t*x*z-s*y, t*y*z+s*x, t*z*z+c,
	)
}

// Transform3D is a homogeneous 4×4 transform. The zero value is the
// identity.
type Transform3D struct {
	m mat.Mat[float64]
}

func (t Transform3D) matrix() mat.Mat[float64] {
	if t.m.Len() == 0 {
		return mat.Identity[float64](4)
	}
	return t.m
}

// New3D wraps a 4×4 matrix.
func New3D(m mat.Mat[float64]) Transform3D {
	if r, c := m.Dims(); r != 4 || c != 4 {
		panic(mat.ErrShape)
	}
	return Transform3D{m: m.Clone()}
}

// Identity3D returns the identity transform.
func Identity3D() Transform3D {
	return Transform3D{m: mat.Identity[float64](4)}
}

// Translation3D returns a translation by the 3-vector v.
func Translation3D(v mat.Mat[float64]) Transform3D {
	return Transform3D{m: mat.New(4, 4,
		1, 0, 0, v.X(),
		0, 1, 0, v.Y(),
		0, 0, 1, v.Z(),
		0, 0, 0, 1,
	)}
}

// Rotation3D returns a rotation by angle about the unit 3-vector axis.
func Rotation3D(axis mat.Mat[float64], angle float64) Transform3D {
	r := RotationMatrix3D(axis, angle)
	m := mat.Identity[float64](4)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, r.At(i, j))
		}
	}
	return Transform3D{m: m}
}

// Scaling3D returns a non-uniform scale by the 3-vector v.
func Scaling3D(v mat.Mat[float64]) Transform3D {
	return Transform3D{m: mat.Diagm(mat.Vec(v.X(), v.Y(), v.Z(), 1))}
}

// Perspective returns the OpenGL-style projection for a right-handed view
// space looking down -z. fov is the vertical field of view in radians;
// near and far are positive distances to the clip planes.
func Perspective(fov, aspect, near, far float64) Transform3D {
	f := 1 / math.Tan(fov/2)
	d := near - far
	return Transform3D{m: mat.New(4, 4,
		f/aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far+near)/d, 2*far*near/d,
		0, 0, -1, 0,
	)}
}

// RotationX returns a rotation by angle about the x axis.
func RotationX(angle float64) Transform3D {
	s, c := math.Sincos(angle)
	return Transform3D{m: mat.New(4, 4,
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)}
}

// RotationY returns a rotation by angle about the y axis.
func RotationY(angle float64) Transform3D {
	s, c := math.Sincos(angle)
	return Transform3D{m: mat.New(4, 4,
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)}
}

// RotationZ returns a rotation by angle about the z axis.
func RotationZ(angle float64) Transform3D {
	s, c := math.Sincos(angle)
	return Transform3D{m: mat.New(4, 4,
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)}
}

// Matrix returns a copy of the 4×4 matrix.
func (t Transform3D) Matrix() mat.Mat[float64] { return t.matrix().Clone() }

// Mul returns t∘o: the transform applying o first, then t.
func (t Transform3D) Mul(o Transform3D) Transform3D {
	return Transform3D{m: t.matrix().Mul(o.matrix())}
}

// Apply maps the homogeneous 4-vector v.
func (t Transform3D) Apply(v mat.Mat[float64]) mat.Mat[float64] {
	return t.matrix().Mul(v)
}

// ApplyPoint maps the 3-vector p with w = 1 and divides by the resulting
// w. A zero w yields non-finite components.
func (t Transform3D) ApplyPoint(p mat.Mat[float64]) mat.Mat[float64] {
	h := t.matrix().Mul(mat.Vec(p.X(), p.Y(), p.Z(), 1))
	w := h.W()
	return mat.Vec(h.X()/w, h.Y()/w, h.Z()/w)
}
