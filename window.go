package games

import (
	"fmt"
	"math"
	"sync"
)

// Blitter shows a BGR frame in a window's client area, stretching the
// srcW×srcH pixels to dstW×dstH.
type Blitter interface {
	Blit(pix []byte, srcW, srcH, dstW, dstH int)
}

// WindowHandler is what a window shell calls into on window events.
type WindowHandler interface {
	// OnCreate is called once when the window is created with the given
	// client size. An error aborts the window.
	OnCreate(width, height int) error
	// OnDestroy is called once when the window goes away.
	OnDestroy()
	// OnTimer is called on the repaint timer. It reports whether a new
	// frame is waiting to be painted.
	OnTimer() bool
	// OnResize is called when the user resizes the window. It returns
	// the client size to use instead.
	OnResize(width, height int) (int, int)
	// OnPaint is called when the window needs repainting.
	OnPaint(b Blitter)
}

// SizePolicy limits the client sizes a window accepts. A positive
// AspectRatio (width/height) additionally fixes the shape.
type SizePolicy struct {
	MinWidth, MaxWidth   int
	MinHeight, MaxHeight int
	AspectRatio          float64
}

// FixedSize accepts exactly width×height.
func FixedSize(width, height int) SizePolicy {
	return SizePolicy{width, width, height, height, 0}
}

// RatioSize accepts any size with the given width/height ratio.
func RatioSize(ratio float64) SizePolicy {
	return SizePolicy{0, math.MaxInt, 0, math.MaxInt, ratio}
}

// MinMaxSize accepts sizes within the given bounds.
func MinMaxSize(minWidth, maxWidth, minHeight, maxHeight int) SizePolicy {
	return SizePolicy{minWidth, maxWidth, minHeight, maxHeight, 0}
}

// AnySize accepts every size.
func AnySize() SizePolicy {
	return SizePolicy{0, math.MaxInt, 0, math.MaxInt, 0}
}

// Compatible reports whether width×height satisfies p.
func (p SizePolicy) Compatible(width, height int) bool {
	if width < p.MinWidth || width > p.MaxWidth || height < p.MinHeight || height > p.MaxHeight {
		return false
	}
	if p.AspectRatio > 0 {
		return height > 0 && float64(width)/float64(height) == p.AspectRatio
	}
	return true
}

// Constrain returns the size nearest to width×height that p accepts,
// keeping the width when the aspect ratio forces a choice.
func (p SizePolicy) Constrain(width, height int) (int, int) {
	width = min(max(width, p.MinWidth), p.MaxWidth)
	height = min(max(height, p.MinHeight), p.MaxHeight)
	if p.AspectRatio > 0 {
		height = int(float64(width) / p.AspectRatio)
		if height < p.MinHeight || height > p.MaxHeight {
			height = min(max(height, p.MinHeight), p.MaxHeight)
			width = int(float64(height) * p.AspectRatio)
		}
	}
	return width, height
}

// Presenter implements WindowHandler on top of a FrontBuffer.
type Presenter struct {
	front  *FrontBuffer
	policy SizePolicy

	mu      sync.Mutex
	width   int
	height  int
	shown   uint64 // generation last painted
	open    bool
	painted int
}

var _ WindowHandler = (*Presenter)(nil)

// NewPresenter returns a presenter showing front under the given policy.
func NewPresenter(front *FrontBuffer, policy SizePolicy) *Presenter {
	return &Presenter{front: front, policy: policy}
}

// OnCreate records the initial client size. It fails with ErrInvalidSize
// if the policy rejects it.
func (p *Presenter) OnCreate(width, height int) error {
	if !p.policy.Compatible(width, height) {
		return fmt.Errorf("%w: window %dx%d", ErrInvalidSize, width, height)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.width, p.height = width, height
	p.open = true
	return nil
}

// OnDestroy marks the window closed.
func (p *Presenter) OnDestroy() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.open = false
}

// OnTimer reports whether a frame newer than the last painted one has
// been published.
func (p *Presenter) OnTimer() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.open && p.front.Generation() != p.shown
}

// OnResize applies the size policy and returns the accepted size.
func (p *Presenter) OnResize(width, height int) (int, int) {
	width, height = p.policy.Constrain(width, height)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.width, p.height = width, height
	return width, height
}

// OnPaint blits the current front frame to the client area.
func (p *Presenter) OnPaint(b Blitter) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open {
		return
	}
	dw, dh := p.width, p.height
	p.shown = p.front.View(func(pix []byte, w, h int) {
		b.Blit(pix, w, h, dw, dh)
	})
	p.painted++
}

// Size returns the current client size.
func (p *Presenter) Size() (width, height int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.width, p.height
}

// Painted returns how many times OnPaint has blitted a frame.
func (p *Presenter) Painted() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.painted
}
