package raster

import (
	"math"

	"github.com/0382/games/geom"
)

// uMargin is how far inside the end caps, in subpixels, a column's
// candidate rows must lie for its interior rows to be filled untested.
const uMargin = 1e-6

// maxScanExtent bounds the subpixel coordinates the incremental scan
// handles; larger rectangles are clipped by brute force instead.
const maxScanExtent = 1 << 40

func rectDrawable(r geom.Rect) bool {
	return r.Center.IsFinite() &&
		r.Width >= 0 && r.Height >= 0 &&
		!math.IsInf(r.Width, 0) && !math.IsInf(r.Height, 0) &&
		!math.IsNaN(r.Angle) && !math.IsInf(r.Angle, 0)
}

// FillRect rasterizes r. An unrotated rectangle takes the axis-aligned
// path; any other angle takes the incremental scan.
func (s *Subpixels) FillRect(r geom.Rect, c RGB) {
	if r.Angle == 0 {
		s.FillRectAxisAligned(r, c)
		return
	}
	s.FillRectScan(r, c)
}

// FillRectReference rasterizes r by testing every subpixel of its
// bounding box. It defines the coverage the other rectangle paths match.
func (s *Subpixels) FillRectReference(r geom.Rect, c RGB) {
	if !rectDrawable(r) {
		return
	}
	f := r.Frame()
	xlo, xhi := r.XMinMax()
	ylo, yhi := r.YMinMax()
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

// FillRectAxisAligned fills an unrotated rectangle as one block. A
// rotated rectangle is passed on to FillRectScan.
func (s *Subpixels) FillRectAxisAligned(r geom.Rect, c RGB) {
	if r.Angle != 0 {
		s.FillRectScan(r, c)
		return
	}
	if !rectDrawable(r) {
		return
	}
	// With a zero angle the inside test separates into one test per axis.
	f := r.Frame()
	cx, cy := r.Center.X, r.Center.Y
	x0, x1, ok := s.sampleRange(cx-r.Width/2, cx+r.Width/2, s.sw)
	if !ok {
		return
	}
	y0, y1, ok := s.sampleRange(cy-r.Height/2, cy+r.Height/2, s.sh)
	if !ok {
		return
	}
	for x0 <= x1 && !f.Contains(s.center(x0), cy) {
		x0++
	}
	for x1 >= x0 && !f.Contains(s.center(x1), cy) {
		x1--
	}
	for y0 <= y1 && !f.Contains(cx, s.center(y0)) {
		y0++
	}
	for y1 >= y0 && !f.Contains(cx, s.center(y1)) {
		y1--
	}
	s.FillBlock(x0, y0, x1+1, y1+1, c)
}

// FillRectScan rasterizes r column by column, or row by row when r is
// closer to vertical than to horizontal.
//
// Within a column the samples inside the band between the two long
// edges form one run. The run's first row is tracked incrementally
// across columns with an error term. Rows at least one subpixel inside
// the band are filled without a test when the column is clear of both
// end caps; rows near an edge, and all rows of end-cap columns, go
// through the same inside test FillRectReference uses.
func (s *Subpixels) FillRectScan(r geom.Rect, c RGB) {
	if !rectDrawable(r) {
		return
	}
	sc := float64(s.scale)

	// Scan space: x is the major axis, y the minor one.
	cx, cy := r.Center.X*sc, r.Center.Y*sc
	hw, hh := r.Width/2*sc, r.Height/2*sc
	angle := r.Angle
	nMaj, nMin := s.sw, s.sh
	transposed := math.Abs(angle) > math.Pi/4
	if transposed {
		cx, cy = cy, cx
		nMaj, nMin = s.sh, s.sw
		angle = geom.NormalizeRadCn(math.Pi/2-angle, 2)
	}

	sin, cos := math.Sincos(angle)
	slope := sin / cos
	band := 2 * hh / cos
	hx := math.Abs(hw*cos) + math.Abs(hh*sin)
	if math.Abs(cx)+math.Abs(cy)+hx+band > maxScanExtent {
		s.FillRectReference(r, c)
		return
	}

	x0f := math.Max(math.Floor(cx-hx-0.5)-1, 0)
	x1f := math.Min(math.Ceil(cx+hx-0.5)+1, float64(nMaj-1))
	if x0f > x1f {
		return
	}
	x0, x1 := int(x0f), int(x1f)

	f := r.Frame()
	inside := func(maj, mn int) bool {
		if transposed {
			return f.Contains(s.center(mn), s.center(maj))
		}
		return f.Contains(s.center(maj), s.center(mn))
	}
	set := func(maj, mn int) {
		if transposed {
			s.Set(mn, maj, c)
		} else {
			s.Set(maj, mn, c)
		}
	}

	// Row k lies in the band of column x when k >= top(x), where
	// top(x) = cy - 0.5 + (x+0.5-cx)*slope - hh/cos. ymin = ceil(top) and
	// e = ymin - top is in [0, 1); row ymin+j is e+j past the band's start.
	top := cy - 0.5 + (float64(x0)+0.5-cx)*slope - hh/cos
	ymin := int(math.Ceil(top))
	e := float64(ymin) - top
	lim := hw - uMargin

	for x := x0; x <= x1; x++ {
		jEnd := int(math.Floor(band-e)) + 1
		jIn := int(math.Floor(band - 1 - e))

		dx := float64(x) + 0.5 - cx
		uFirst := dx*cos + (float64(ymin-1)+0.5-cy)*sin
		uLast := dx*cos + (float64(ymin+jEnd)+0.5-cy)*sin
		middle := math.Abs(uFirst) <= lim && math.Abs(uLast) <= lim

		lo := max(-1, -ymin)
		hi := min(jEnd, nMin-1-ymin)
		for j := lo; j <= hi; j++ {
			row := ymin + j
			if middle && j >= 1 && j <= jIn {
				set(x, row)
				continue
			}
			if inside(x, row) {
				set(x, row)
			}
		}

		e -= slope
		for e < 0 {
			e++
			ymin++
		}
		for e >= 1 {
			e--
			ymin--
		}
	}
}
