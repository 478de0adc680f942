package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/0382/games/mat"
	"github.com/0382/games/transform"
)

const epsilon = 1e-9

func sampleAngles() []float64 {
	angles := []float64{
		0, math.Pi, -math.Pi, math.Pi / 2, -math.Pi / 2, math.Pi / 4, -math.Pi / 4,
		2 * math.Pi, -2 * math.Pi, 3 * math.Pi, -3 * math.Pi,
		1e-12, -1e-12, 7, -7, 100, -100, 1e6, -1e6,
		math.Nextafter(math.Pi, 0), math.Nextafter(math.Pi/2, 4),
	}
	for i := -40; i <= 40; i++ {
		angles = append(angles, float64(i)*0.37)
	}
	return angles
}

func TestNormalizeRadCnRanges(t *testing.T) {
	for _, a := range sampleAngles() {
		n1 := NormalizeRadCn(a, 1)
		if n1 < -math.Pi || n1 >= math.Pi {
			t.Errorf("NormalizeRadCn(%v, 1) = %v, want in [-π, π)", a, n1)
		}
		n2 := NormalizeRadCn(a, 2)
		if n2 <= -math.Pi/2 || n2 > math.Pi/2 {
			t.Errorf("NormalizeRadCn(%v, 2) = %v, want in (-π/2, π/2]", a, n2)
		}
		n4 := NormalizeRadCn(a, 4)
		if n4 <= -math.Pi/4 || n4 > math.Pi/4 {
			t.Errorf("NormalizeRadCn(%v, 4) = %v, want in (-π/4, π/4]", a, n4)
		}
	}
}

func TestNormalizeRadCnIdempotent(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4} {
		for _, a := range sampleAngles() {
			once := NormalizeRadCn(a, n)
			if twice := NormalizeRadCn(once, n); twice != once {
				t.Errorf("n=%d: NormalizeRadCn(NormalizeRadCn(%v)) = %v, want %v", n, a, twice, once)
			}
		}
	}
}

func TestNormalizeRadCnPreservesOrientation(t *testing.T) {
	// The folded angle differs from the input by a multiple of 2π/n.
	for _, n := range []int{1, 2, 3} {
		period := 2 * math.Pi / float64(n)
		for _, a := range sampleAngles() {
			if math.Abs(a) > 1000 {
				continue
			}
			k := (a - NormalizeRadCn(a, n)) / period
			if math.Abs(k-math.Round(k)) > 1e-9 {
				t.Errorf("n=%d: %v folded by %v periods", n, a, k)
			}
		}
	}
}

func TestNormalizeRadCnCases(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		n     int
		want  float64
	}{
		{"pi wraps to -pi", math.Pi, 1, -math.Pi},
		{"pi folds to zero for C2", math.Pi, 2, 0},
		{"half pi stays", math.Pi / 2, 2, math.Pi / 2},
		{"minus half pi becomes half pi", -math.Pi / 2, 2, math.Pi / 2},
		{"three quarter pi", 3 * math.Pi / 4, 2, -math.Pi / 4},
		{"n below one", 3 * math.Pi, 0, -math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRadCn(tt.angle, tt.n)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("NormalizeRadCn(%v, %d) = %v, want %v", tt.angle, tt.n, got, tt.want)
			}
		})
	}
}

func TestNormalizeRadCnNonFinite(t *testing.T) {
	if got := NormalizeRadCn(math.NaN(), 2); !math.IsNaN(got) {
		t.Errorf("NaN -> %v", got)
	}
	if got := NormalizeRadCn(math.Inf(1), 2); !math.IsInf(got, 1) {
		t.Errorf("+Inf -> %v", got)
	}
}

func TestRectConstructors(t *testing.T) {
	r := RectXY(4, 20, 50, 50, math.Pi)
	want := Rect{Height: 4, Width: 20, Center: Pt(50, 50), Angle: 0}
	if d := cmp.Diff(want, r, cmpopts.EquateApprox(0, epsilon)); d != "" {
		t.Errorf("RectXY mismatch (-want +got):\n%s", d)
	}
	if got := NewRect(4, 20, Pt(50, 50), 3*math.Pi/4).Angle; math.Abs(got+math.Pi/4) > epsilon {
		t.Errorf("NewRect angle = %v, want -π/4", got)
	}
}

func TestRectExtents(t *testing.T) {
	r := RectXY(4, 20, 50, 50, 0)
	x0, x1 := r.XMinMax()
	y0, y1 := r.YMinMax()
	if x0 != 40 || x1 != 60 || y0 != 48 || y1 != 52 {
		t.Errorf("extents = [%v, %v]x[%v, %v], want [40, 60]x[48, 52]", x0, x1, y0, y1)
	}

	rot := RectXY(4, 20, 50, 50, math.Pi/2)
	x0, x1 = rot.XMinMax()
	y0, y1 = rot.YMinMax()
	got := []float64{x0, x1, y0, y1}
	if d := cmp.Diff([]float64{48, 52, 40, 60}, got, cmpopts.EquateApprox(0, epsilon)); d != "" {
		t.Errorf("rotated extents mismatch (-want +got):\n%s", d)
	}
}

func TestRectCornersAndContains(t *testing.T) {
	r := RectXY(2, 6, 10, 10, math.Pi/6)
	for i, c := range r.Corners() {
		// Corners lie on the boundary: nudging toward the center stays
		// inside, away from it leaves.
		in := c.Add(r.Center.Sub(c).Mul(1e-6))
		out := c.Add(c.Sub(r.Center).Mul(1e-6))
		if !r.Contains(in) {
			t.Errorf("corner %d nudged inward not contained", i)
		}
		if r.Contains(out) {
			t.Errorf("corner %d nudged outward contained", i)
		}
	}
	if !r.Contains(r.Center) {
		t.Error("center not contained")
	}
	// Along the width axis 2.9 is inside, along the height axis it is not.
	s, c := math.Sincos(math.Pi / 6)
	if !r.Contains(Pt(10+2.9*c, 10+2.9*s)) {
		t.Error("point along width axis not contained")
	}
	if r.Contains(Pt(10-2.9*s, 10+2.9*c)) {
		t.Error("point along height axis contained")
	}
}

func TestRectBoundaryInclusive(t *testing.T) {
	r := RectXY(4, 20, 50, 50, 0)
	for _, p := range []Point{Pt(40, 50), Pt(60, 50), Pt(50, 48), Pt(50, 52), Pt(40, 48)} {
		if !r.Contains(p) {
			t.Errorf("boundary point %v not contained", p)
		}
	}
}

func TestLine(t *testing.T) {
	l := LineXY(0, 0, 3, 4)
	if l.Width != DefaultLineWidth {
		t.Errorf("Width = %v, want %v", l.Width, DefaultLineWidth)
	}
	if l.Length() != 5 {
		t.Errorf("Length() = %v, want 5", l.Length())
	}
	if got := l.Slope(); math.Abs(got-4.0/3) > epsilon {
		t.Errorf("Slope() = %v, want 4/3", got)
	}

	r := l.WithWidth(2).StrokeRect(2)
	if r.Height != 2 || r.Width != 7 || r.Center != Pt(1.5, 2) {
		t.Errorf("StrokeRect = %+v", r)
	}
	if math.Abs(r.Angle-math.Atan2(4, 3)) > epsilon {
		t.Errorf("StrokeRect angle = %v", r.Angle)
	}

	// A vertical line keeps the C2-normalized direction π/2.
	v := LineXY(5, 0, 5, -10).StrokeRect(1)
	if math.Abs(v.Angle-math.Pi/2) > epsilon {
		t.Errorf("vertical stroke angle = %v, want π/2", v.Angle)
	}

	// A zero-length line degenerates to a square dot.
	dot := LineXY(5, 5, 5, 5).StrokeRect(3)
	if dot.Width != 3 || dot.Height != 3 || dot.Angle != 0 {
		t.Errorf("zero-length stroke = %+v", dot)
	}
}

func TestTriangle(t *testing.T) {
	tri := TriangleXY(0, 0, 4, 1, 2, 5)
	if tri.XMin() != 0 || tri.XMax() != 4 || tri.YMin() != 0 || tri.YMax() != 5 {
		t.Errorf("extents = %v %v %v %v", tri.XMin(), tri.XMax(), tri.YMin(), tri.YMax())
	}
	if got := tri.SignedArea(); got != 9 {
		t.Errorf("SignedArea() = %v, want 9", got)
	}
	rev := NewTriangle(tri.A, tri.C, tri.B)
	if got := rev.SignedArea(); got != -9 {
		t.Errorf("reversed SignedArea() = %v, want -9", got)
	}
}

func TestEllipse(t *testing.T) {
	e := EllipseXY(0, 0, 4, 2, math.Pi/2)
	x0, y0, x1, y1 := e.Bounds()
	got := []float64{x0, y0, x1, y1}
	if d := cmp.Diff([]float64{-2, -4, 2, 4}, got, cmpopts.EquateApprox(0, epsilon)); d != "" {
		t.Errorf("Bounds mismatch (-want +got):\n%s", d)
	}
	if !e.Contains(Pt(0, 3.9)) || e.Contains(Pt(3, 0)) {
		t.Error("rotated ellipse containment wrong")
	}
	if got := NewEllipse(Pt(0, 0), 1, 1, -math.Pi/2).Angle; got != math.Pi/2 {
		t.Errorf("ellipse angle = %v, want π/2", got)
	}
}

func TestMapThroughTransform(t *testing.T) {
	rot := transform.Translation2D(mat.Vec(10.0, 10.0)).Mul(transform.Rotation2D(math.Pi / 2))
	l := LineXY(0, 0, 1, 0).Map(rot)
	want := LineXY(10, 10, 10, 11)
	if d := cmp.Diff(want, l, cmpopts.EquateApprox(0, epsilon)); d != "" {
		t.Errorf("Line.Map mismatch (-want +got):\n%s", d)
	}

	tri := TriangleXY(0, 0, 1, 0, 0, 1).Map(rot)
	if math.Abs(tri.SignedArea()-0.5) > epsilon {
		t.Errorf("rotation changed triangle area: %v", tri.SignedArea())
	}
}

func TestPointVec(t *testing.T) {
	p := Pt(3, 4)
	if got := PointOf(p.Vec()); got != p {
		t.Errorf("PointOf(Vec()) = %v, want %v", got, p)
	}
	if p.Length() != 5 || p.Distance(Pt(0, 0)) != 5 {
		t.Errorf("Length = %v", p.Length())
	}
	if !p.IsFinite() || Pt(math.NaN(), 0).IsFinite() {
		t.Error("IsFinite wrong")
	}
}
