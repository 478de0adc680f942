// Package raster scan-converts primitives into a supersampled RGB buffer
// and box-filters that buffer down to visible pixels.
//
// All kernels sample subpixel centers: subpixel (x, y) stands for the
// visible-space point ((x+0.5)/scale, (y+0.5)/scale). Writes outside the
// buffer are dropped, never wrapped.
package raster

import "math"

// DefaultScale is the default number of subpixels per pixel along each axis.
const DefaultScale = 4

// RGB is an 8-bit color (internal copy to avoid an import cycle).
type RGB struct {
	R, G, B uint8
}

// Subpixels is a supersampled RGB buffer, 3 bytes per subpixel, row-major.
type Subpixels struct {
	width  int // visible pixels
	height int
	scale  int
	sw, sh int // subpixels
	pix    []uint8
}

// NewSubpixels allocates a buffer for a width×height visible image
// sampled scale×scale times per pixel.
func NewSubpixels(width, height, scale int) *Subpixels {
	sw, sh := width*scale, height*scale
	return &Subpixels{
		width:  width,
		height: height,
		scale:  scale,
		sw:     sw,
		sh:     sh,
		pix:    make([]uint8, 3*sw*sh),
	}
}

// Width returns the visible width in pixels.
func (s *Subpixels) Width() int { return s.width }

// Height returns the visible height in pixels.
func (s *Subpixels) Height() int { return s.height }

// Scale returns the subpixels per pixel along one axis.
func (s *Subpixels) Scale() int { return s.scale }

// Bounds returns the buffer size in subpixels.
func (s *Subpixels) Bounds() (w, h int) { return s.sw, s.sh }

// Pix returns the raw RGB subpixel bytes.
func (s *Subpixels) Pix() []uint8 { return s.pix }

// Set writes one subpixel. Out-of-range coordinates are ignored.
func (s *Subpixels) Set(x, y int, c RGB) {
	if uint(x) >= uint(s.sw) || uint(y) >= uint(s.sh) {
		return
	}
	i := 3 * (y*s.sw + x)
	s.pix[i+0] = c.R
	s.pix[i+1] = c.G
	s.pix[i+2] = c.B
}

// At returns one subpixel, or black when out of range.
func (s *Subpixels) At(x, y int) RGB {
	if uint(x) >= uint(s.sw) || uint(y) >= uint(s.sh) {
		return RGB{}
	}
	i := 3 * (y*s.sw + x)
	return RGB{R: s.pix[i], G: s.pix[i+1], B: s.pix[i+2]}
}

// Fill sets every subpixel to c.
func (s *Subpixels) Fill(c RGB) {
	s.FillBlock(0, 0, s.sw, s.sh, c)
}

// FillBlock fills subpixels [x0, x1)×[y0, y1), clipped to the buffer.
func (s *Subpixels) FillBlock(x0, y0, x1, y1 int, c RGB) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, s.sw), min(y1, s.sh)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	row := s.pix[3*(y0*s.sw+x0) : 3*(y0*s.sw+x1)]
	for i := 0; i < len(row); i += 3 {
		row[i], row[i+1], row[i+2] = c.R, c.G, c.B
	}
	for y := y0 + 1; y < y1; y++ {
		copy(s.pix[3*(y*s.sw+x0):], row)
	}
}

// center returns the visible-space coordinate of subpixel index i.
func (s *Subpixels) center(i int) float64 {
	return (float64(i) + 0.5) / float64(s.scale)
}

// sampleRange returns the subpixel indices whose centers may fall in the
// visible-space interval [lo, hi], clipped to [0, n). The range is widened
// by one on each side; callers test every sample they write. ok is false
// when nothing remains or the interval is not finite.
func (s *Subpixels) sampleRange(lo, hi float64, n int) (first, last int, ok bool) {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return 0, 0, false
	}
	sc := float64(s.scale)
	a := math.Floor(lo*sc-0.5) - 1
	b := math.Ceil(hi*sc-0.5) + 1
	a = math.Max(a, 0)
	b = math.Min(b, float64(n-1))
	if a > b {
		return 0, 0, false
	}
	return int(a), int(b), true
}
