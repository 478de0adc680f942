package games

import (
	"fmt"
	"io"
	"time"

	"github.com/0382/games/geom"
	"github.com/0382/games/internal/parallel"
	"github.com/0382/games/internal/raster"
)

// MaxDimension is the largest accepted canvas width or height.
const MaxDimension = 1 << 14

// MaxSubpixelBytes bounds the subpixel buffer, which holds
// 3·(width·supersample)·(height·supersample) bytes.
const MaxSubpixelBytes = 1 << 30

// State is the position of a Canvas in its frame cycle.
type State int

const (
	// StateEmpty is a canvas that has not started a frame.
	StateEmpty State = iota
	// StateAccumulating is a canvas between BeginFrame and EndFrame.
	StateAccumulating
	// StateReduced is a canvas whose frame holds the latest reduction.
	StateReduced
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateAccumulating:
		return "Accumulating"
	case StateReduced:
		return "Reduced"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Canvas paints shapes into a supersampled buffer and reduces it to a
// visible Frame.
//
// Painting is not synchronized: a Canvas belongs to one goroutine. Share
// frames with other goroutines through a FrontBuffer.
type Canvas struct {
	width  int
	height int
	sub    *raster.Subpixels
	frame  *Frame
	state  State
	pool   *parallel.Pool // nil reduces on the caller's goroutine
}

// NewCanvas creates a width×height canvas cleared to black. It fails with
// ErrInvalidSize when a side exceeds MaxDimension or the subpixel buffer
// would exceed MaxSubpixelBytes.
func NewCanvas(width, height int, opts ...CanvasOption) (*Canvas, error) {
	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if o.supersample < 1 || o.supersample > MaxSupersample {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSupersample, o.supersample)
	}
	ss := int64(o.supersample)
	if n := 3 * int64(width) * ss * int64(height) * ss; n > MaxSubpixelBytes {
		return nil, fmt.Errorf("%w: %dx%d at supersample %d needs %d subpixel bytes", ErrInvalidSize, width, height, o.supersample, n)
	}

	c := &Canvas{
		width:  width,
		height: height,
		sub:    raster.NewSubpixels(width, height, o.supersample),
		frame:  NewFrame(width, height),
	}
	if o.workers != 1 {
		c.pool = parallel.NewPool(o.workers)
	}
	Logger().Debug("canvas created",
		"width", width, "height", height,
		"supersample", o.supersample,
		"subpixel_bytes", len(c.sub.Pix()),
		"parallel", c.pool != nil)
	return c, nil
}

// Width returns the visible width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the visible height in pixels.
func (c *Canvas) Height() int { return c.height }

// Supersample returns the subpixels per pixel along one axis.
func (c *Canvas) Supersample() int { return c.sub.Scale() }

// State returns the canvas' position in its frame cycle.
func (c *Canvas) State() State { return c.state }

// BeginFrame starts a frame. It changes nothing in the buffers; the
// subpixels keep the previous frame until Clear or a shape covers them.
func (c *Canvas) BeginFrame() {
	c.state = StateAccumulating
}

func (c *Canvas) touch() {
	c.state = StateAccumulating
}

// Clear fills every subpixel with col.
func (c *Canvas) Clear(col Color) {
	c.touch()
	c.sub.Fill(col.raster())
}

// FillCircle paints the disc of ci.
func (c *Canvas) FillCircle(ci geom.Circle, col Color) {
	c.touch()
	c.sub.FillCircle(ci, col.raster())
}

// StrokeCircle paints a ring of the given width centered on ci's outline.
func (c *Canvas) StrokeCircle(ci geom.Circle, width float64, col Color) {
	c.touch()
	c.sub.StrokeCircle(ci, width, col.raster())
}

// FillRect paints r.
func (c *Canvas) FillRect(r geom.Rect, col Color) {
	c.touch()
	c.sub.FillRect(r, col.raster())
}

// FillRectReference paints r by testing every subpixel of its bounding
// box. It paints exactly what FillRect paints, only slower.
func (c *Canvas) FillRectReference(r geom.Rect, col Color) {
	c.touch()
	c.sub.FillRectReference(r, col.raster())
}

// StrokeLine paints l as a rectangle width thick, extended by width/2
// past each endpoint. A zero-length line paints a width×width square.
func (c *Canvas) StrokeLine(l geom.Line, width float64, col Color) {
	c.touch()
	c.sub.FillRect(l.StrokeRect(width), col.raster())
}

// DrawLine strokes l with its own Width.
func (c *Canvas) DrawLine(l geom.Line, col Color) {
	c.StrokeLine(l, l.Width, col)
}

// FillTriangle paints t. Triangles sharing an edge never paint the same
// subpixel twice.
func (c *Canvas) FillTriangle(t geom.Triangle, col Color) {
	c.touch()
	c.sub.FillTriangle(t, col.raster())
}

// FillEllipse paints e.
func (c *Canvas) FillEllipse(e geom.Ellipse, col Color) {
	c.touch()
	c.sub.FillEllipse(e, col.raster())
}

// EndFrame reduces the subpixels into the visible frame and returns it.
// The returned frame is reused by later reductions.
func (c *Canvas) EndFrame() *Frame {
	c.reduce()
	c.state = StateReduced
	return c.frame
}

// Frame returns the visible frame as of the last reduction.
func (c *Canvas) Frame() *Frame {
	return c.frame
}

func (c *Canvas) reduce() {
	start := time.Now()
	pix, stride := c.frame.Pix, c.frame.Stride
	if c.pool == nil {
		c.sub.Downsample(pix, stride, 0, c.height)
	} else {
		c.pool.ForEachBand(c.height, func(b parallel.Band) {
			c.sub.Downsample(pix, stride, b.Y0, b.Y1)
		})
	}
	Logger().Debug("frame reduced", "elapsed", time.Since(start))
}

// WriteBMP reduces the current subpixels and writes them as a BMP.
func (c *Canvas) WriteBMP(w io.Writer) error {
	return c.EndFrame().WriteBMP(w)
}

// SaveBMP reduces the current subpixels and writes them to a BMP file.
func (c *Canvas) SaveBMP(path string) error {
	return c.EndFrame().SaveBMP(path)
}

// SavePNG reduces the current subpixels and writes them to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return c.EndFrame().SavePNG(path)
}

// Close releases the reduction workers. The canvas stays usable and
// reduces on the caller's goroutine afterwards.
func (c *Canvas) Close() error {
	if c.pool != nil {
		c.pool.Close()
	}
	return nil
}
