package raster

import (
	"math"

	"github.com/0382/games/geom"
)

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// FillCircle paints every subpixel whose center is within the circle's
// radius, boundary included. A negative or non-finite radius paints
// nothing.
func (s *Subpixels) FillCircle(cl geom.Circle, c RGB) {
	if !(cl.Radius >= 0) || !finite(cl.Radius) || !cl.Center.IsFinite() {
		return
	}
	s.fillRing(cl.Center, -1, cl.Radius, c)
}

// StrokeCircle paints the ring of the given width centered on the
// circle's outline: distances from r-width/2 to r+width/2 inclusive. A
// ring whose inner radius falls below zero is a full disc.
func (s *Subpixels) StrokeCircle(cl geom.Circle, width float64, c RGB) {
	if !(cl.Radius >= 0) || !(width >= 0) || !finite(cl.Radius) || !finite(width) || !cl.Center.IsFinite() {
		return
	}
	s.fillRing(cl.Center, cl.Radius-width/2, cl.Radius+width/2, c)
}

// fillRing paints samples at distance d from center with r1 <= d <= r2.
// A negative r1 drops the inner bound.
func (s *Subpixels) fillRing(center geom.Point, r1, r2 float64, c RGB) {
	x0, x1, ok := s.sampleRange(center.X-r2, center.X+r2, s.sw)
	if !ok {
		return
	}
	y0, y1, ok := s.sampleRange(center.Y-r2, center.Y+r2, s.sh)
	if !ok {
		return
	}
	outer := r2 * r2
	inner := r1 * r1
	for y := y0; y <= y1; y++ {
		dy := s.center(y) - center.Y
		dy2 := float64(dy * dy)
		for x := x0; x <= x1; x++ {
			dx := s.center(x) - center.X
			d2 := float64(dx*dx) + dy2
			if d2 > outer || (r1 >= 0 && d2 < inner) {
				continue
			}
			s.Set(x, y, c)
		}
	}
}

// FillEllipse paints every subpixel whose center lies inside or on e.
// Non-positive semi-axes paint nothing.
func (s *Subpixels) FillEllipse(e geom.Ellipse, c RGB) {
	if !(e.A > 0) || !(e.B > 0) || !finite(e.A) || !finite(e.B) ||
		!e.Center.IsFinite() || !finite(e.Angle) {
		return
	}
	f := e.Frame()
	xlo, ylo, xhi, yhi := e.Bounds()
	x0, x1, ok := s.sampleRange(xlo, xhi, s.sw)
	if !ok {
		return
	}
	y0, y1, ok := s.sampleRange(ylo, yhi, s.sh)
	if !ok {
		return
	}
	for y := y0; y <= y1; y++ {
		py := s.center(y)
		for x := x0; x <= x1; x++ {
			if f.Contains(s.center(x), py) {
				s.Set(x, y, c)
			}
		}
	}
}

// edge is one directed triangle edge evaluated as a half-plane.
type edge struct {
	ax, ay, bx, by float64 // endpoints in lexicographic order
	neg            bool    // the directed edge runs b to a
	topLeft        bool    // samples exactly on the edge belong to it
}

func newEdge(a, b geom.Point) edge {
	d := b.Sub(a)
	e := edge{topLeft: d.Y < 0 || (d.Y == 0 && d.X > 0)}
	if a.X > b.X || (a.X == b.X && a.Y > b.Y) {
		a, b = b, a
		e.neg = true
	}
	e.ax, e.ay, e.bx, e.by = a.X, a.Y, b.X, b.Y
	return e
}

// eval returns the edge function at (x, y): positive on the interior
// side. Both directions of an edge share one evaluation, so a sample on
// a shared edge gets exactly opposite signs from the two triangles.
func (e edge) eval(x, y float64) float64 {
	v := float64((e.bx-e.ax)*(y-e.ay)) - float64((e.by-e.ay)*(x-e.ax))
	if e.neg {
		return -v
	}
	return v
}

func (e edge) covers(x, y float64) bool {
	v := e.eval(x, y)
	return v > 0 || (v == 0 && e.topLeft)
}

// FillTriangle paints the subpixels inside t by the half-plane test of
// its three edges. Samples exactly on an edge follow the top-left rule,
// so triangles sharing an edge never paint a sample twice. A triangle
// with zero area paints nothing.
func (s *Subpixels) FillTriangle(t geom.Triangle, c RGB) {
	if !t.A.IsFinite() || !t.B.IsFinite() || !t.C.IsFinite() {
		return
	}
	area := t.SignedArea()
	if area == 0 {
		return
	}
	a, b, cc := t.A, t.B, t.C
	if area < 0 {
		b, cc = cc, b
	}
	e0, e1, e2 := newEdge(a, b), newEdge(b, cc), newEdge(cc, a)

	x0, x1, ok := s.sampleRange(t.XMin(), t.XMax(), s.sw)
	if !ok {
		return
	}
	y0, y1, ok := s.sampleRange(t.YMin(), t.YMax(), s.sh)
	if !ok {
		return
	}
	for y := y0; y <= y1; y++ {
		py := s.center(y)
		for x := x0; x <= x1; x++ {
			px := s.center(x)
			if e0.covers(px, py) && e1.covers(px, py) && e2.covers(px, py) {
				s.Set(x, y, c)
			}
		}
	}
}
