package geom

import "math"

// DefaultLineWidth is the stroke width NewLine and LineXY assign.
const DefaultLineWidth = 1

// Line is a segment from Start to Stop, stroked with Width.
type Line struct {
	Start, Stop Point
	Width       float64
}

// NewLine returns a line of DefaultLineWidth.
func NewLine(start, stop Point) Line {
	return Line{Start: start, Stop: stop, Width: DefaultLineWidth}
}

// LineXY returns the line (x0, y0)-(x1, y1) of DefaultLineWidth.
func LineXY(x0, y0, x1, y1 float64) Line {
	return NewLine(Pt(x0, y0), Pt(x1, y1))
}

// WithWidth returns l with its stroke width replaced.
func (l Line) WithWidth(w float64) Line {
	l.Width = w
	return l
}

// Length returns the distance between the endpoints.
func (l Line) Length() float64 {
	return l.Start.Distance(l.Stop)
}

// Angle returns the direction of Stop-Start. A zero-length line has
// angle 0.
func (l Line) Angle() float64 {
	return math.Atan2(l.Stop.Y-l.Start.Y, l.Stop.X-l.Start.X)
}

// Slope returns dy/dx. Vertical lines give ±Inf, and a zero-length line NaN.
func (l Line) Slope() float64 {
	return (l.Stop.Y - l.Start.Y) / (l.Stop.X - l.Start.X)
}

// Map returns l with both endpoints mapped through m.
func (l Line) Map(m Mapper) Line {
	return Line{Start: l.Start.Map(m), Stop: l.Stop.Map(m), Width: l.Width}
}

// StrokeRect returns the rectangle a stroke of width w covers: as tall
// as the stroke, as long as the segment plus w so the ends are squared
// off, centered on the midpoint and turned to the segment's direction.
func (l Line) StrokeRect(w float64) Rect {
	return NewRect(w, l.Length()+w, l.Start.Add(l.Stop).Div(2), l.Angle())
}

// Circle is a disc of Radius around Center.
type Circle struct {
	Center Point
	Radius float64
}

// NewCircle returns the circle centered at c.
func NewCircle(c Point, r float64) Circle {
	return Circle{Center: c, Radius: r}
}

// CircleXY returns the circle centered at (x, y).
func CircleXY(x, y, r float64) Circle {
	return Circle{Center: Pt(x, y), Radius: r}
}

// Area returns πr².
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Ellipse has semi-axes A along its rotated x axis and B along its
// rotated y axis. Angle is normalized to (-π/2, π/2] at construction.
type Ellipse struct {
	Center Point
	A, B   float64
	Angle  float64
}

// NewEllipse returns the ellipse centered at c.
func NewEllipse(c Point, a, b, angle float64) Ellipse {
	return Ellipse{Center: c, A: a, B: b, Angle: NormalizeRadCn(angle, 2)}
}

// EllipseXY returns the ellipse centered at (x, y).
func EllipseXY(x, y, a, b, angle float64) Ellipse {
	return NewEllipse(Pt(x, y), a, b, angle)
}

// Bounds returns the axis-aligned bounding box of e.
func (e Ellipse) Bounds() (xmin, ymin, xmax, ymax float64) {
	s, c := math.Sincos(e.Angle)
	hx := math.Hypot(e.A*c, e.B*s)
	hy := math.Hypot(e.A*s, e.B*c)
	return e.Center.X - hx, e.Center.Y - hy, e.Center.X + hx, e.Center.Y + hy
}

// Contains reports whether p lies inside or on e.
func (e Ellipse) Contains(p Point) bool {
	return e.Frame().Contains(p.X, p.Y)
}

// Frame returns e's local frame for repeated inside tests.
func (e Ellipse) Frame() EllipseFrame {
	s, c := math.Sincos(e.Angle)
	return EllipseFrame{cx: e.Center.X, cy: e.Center.Y, sin: s, cos: c, a: e.A, b: e.B}
}

// EllipseFrame caches the trigonometry of an Ellipse.
type EllipseFrame struct {
	cx, cy   float64
	sin, cos float64
	a, b     float64
}

// Contains reports whether (x, y) lies inside or on the ellipse.
func (f EllipseFrame) Contains(x, y float64) bool {
	dx, dy := x-f.cx, y-f.cy
	u := (float64(dx*f.cos) + float64(dy*f.sin)) / f.a
	v := (float64(dy*f.cos) - float64(dx*f.sin)) / f.b
	return float64(u*u)+float64(v*v) <= 1
}

// Triangle is given by three vertices in any winding order.
type Triangle struct {
	A, B, C Point
}

// NewTriangle returns the triangle abc.
func NewTriangle(a, b, c Point) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// TriangleXY returns the triangle (x0, y0), (x1, y1), (x2, y2).
func TriangleXY(x0, y0, x1, y1, x2, y2 float64) Triangle {
	return Triangle{A: Pt(x0, y0), B: Pt(x1, y1), C: Pt(x2, y2)}
}

// XMin returns the smallest vertex x.
func (t Triangle) XMin() float64 { return min(t.A.X, t.B.X, t.C.X) }

// XMax returns the largest vertex x.
func (t Triangle) XMax() float64 { return max(t.A.X, t.B.X, t.C.X) }

// YMin returns the smallest vertex y.
func (t Triangle) YMin() float64 { return min(t.A.Y, t.B.Y, t.C.Y) }

// YMax returns the largest vertex y.
func (t Triangle) YMax() float64 { return max(t.A.Y, t.B.Y, t.C.Y) }

// SignedArea returns the signed area; positive when A, B, C turn from +x
// toward +y.
func (t Triangle) SignedArea() float64 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)) / 2
}

// Map returns t with every vertex mapped through m.
func (t Triangle) Map(m Mapper) Triangle {
	return Triangle{A: t.A.Map(m), B: t.B.Map(m), C: t.C.Map(m)}
}

// Rect is a Width×Height rectangle centered at Center and turned by
// Angle. Width runs along the rotated x axis. Angle is normalized to
// (-π/2, π/2] at construction.
type Rect struct {
	Height, Width float64
	Center        Point
	Angle         float64
}

// NewRect returns the rectangle centered at c. Note that the height
// precedes the width.
func NewRect(h, w float64, c Point, angle float64) Rect {
	return Rect{Height: h, Width: w, Center: c, Angle: NormalizeRadCn(angle, 2)}
}

// RectXY returns the rectangle centered at (x, y).
func RectXY(h, w, x, y, angle float64) Rect {
	return NewRect(h, w, Pt(x, y), angle)
}

// Corners returns the four corners in order: (-w/2, -h/2), (w/2, -h/2),
// (w/2, h/2), (-w/2, h/2) in the rectangle's own frame.
func (r Rect) Corners() [4]Point {
	s, c := math.Sincos(r.Angle)
	hw, hh := r.Width/2, r.Height/2
	local := [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	var out [4]Point
	for i, p := range local {
		out[i] = Point{
			X: r.Center.X + p[0]*c - p[1]*s,
			Y: r.Center.Y + p[0]*s + p[1]*c,
		}
	}
	return out
}

// XMinMax returns the horizontal extent of r.
func (r Rect) XMinMax() (float64, float64) {
	s, c := math.Sincos(r.Angle)
	hx := math.Abs(r.Width/2*c) + math.Abs(r.Height/2*s)
	return r.Center.X - hx, r.Center.X + hx
}

// YMinMax returns the vertical extent of r.
func (r Rect) YMinMax() (float64, float64) {
	s, c := math.Sincos(r.Angle)
	hy := math.Abs(r.Width/2*s) + math.Abs(r.Height/2*c)
	return r.Center.Y - hy, r.Center.Y + hy
}

// Contains reports whether p lies inside or on r: the intersection of
// the four half-planes bounding it.
func (r Rect) Contains(p Point) bool {
	return r.Frame().Contains(p.X, p.Y)
}

// Frame returns r's local frame for repeated inside tests.
func (r Rect) Frame() RectFrame {
	s, c := math.Sincos(r.Angle)
	return RectFrame{
		cx: r.Center.X, cy: r.Center.Y,
		sin: s, cos: c,
		hw: r.Width / 2, hh: r.Height / 2,
	}
}

// RectFrame caches the trigonometry of a Rect. Every inside test of a
// rectangle, from any rasterization path, goes through Contains so that
// all paths agree on boundary samples.
type RectFrame struct {
	cx, cy   float64
	sin, cos float64
	hw, hh   float64
}

// Local returns (x, y) in the rectangle's frame: u along the width axis,
// v along the height axis.
func (f RectFrame) Local(x, y float64) (u, v float64) {
	dx, dy := x-f.cx, y-f.cy
	// Explicit conversions keep the compiler from fusing into FMA.
	u = float64(dx*f.cos) + float64(dy*f.sin)
	v = float64(dy*f.cos) - float64(dx*f.sin)
	return u, v
}

// Contains reports whether (x, y) lies inside or on the rectangle.
func (f RectFrame) Contains(x, y float64) bool {
	u, v := f.Local(x, y)
	return math.Abs(u) <= f.hw && math.Abs(v) <= f.hh
}

// HalfWidth returns half the rectangle's width.
func (f RectFrame) HalfWidth() float64 { return f.hw }

// HalfHeight returns half the rectangle's height.
func (f RectFrame) HalfHeight() float64 { return f.hh }
