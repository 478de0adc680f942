package games

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"
)

// FrontBuffer holds the most recently published frame. One goroutine
// publishes while others read; a reader never sees a partial frame.
type FrontBuffer struct {
	mu    sync.Mutex
	frame *Frame
	gen   uint64
}

// NewFrontBuffer creates a black width×height front buffer.
func NewFrontBuffer(width, height int) *FrontBuffer {
	return &FrontBuffer{frame: NewFrame(width, height)}
}

// Publish copies f into the front buffer and bumps its generation.
// A frame of another size replaces the buffer.
func (fb *FrontBuffer) Publish(f *Frame) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if fb.frame.Width != f.Width || fb.frame.Height != f.Height {
		fb.frame = NewFrame(f.Width, f.Height)
	}
	for y := 0; y < f.Height; y++ {
		copy(fb.frame.Pix[y*fb.frame.Stride:(y+1)*fb.frame.Stride], f.Pix[y*f.Stride:])
	}
	fb.gen++
}

// View calls fn with the current frame's BGR bytes while holding the
// lock, and returns the generation it showed. fn must not retain pix.
func (fb *FrontBuffer) View(fn func(pix []byte, width, height int)) uint64 {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fn(fb.frame.Pix, fb.frame.Width, fb.frame.Height)
	return fb.gen
}

// Generation returns how many frames have been published.
func (fb *FrontBuffer) Generation() uint64 {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.gen
}

// Snapshot returns a copy of the current frame.
func (fb *FrontBuffer) Snapshot() *Frame {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.frame.Clone()
}

// Scene draws one frame of an animation. frame counts from 0.
type Scene interface {
	Draw(c *Canvas, frame int)
}

// SceneFunc adapts a function to the Scene interface.
type SceneFunc func(c *Canvas, frame int)

// Draw calls f(c, frame).
func (f SceneFunc) Draw(c *Canvas, frame int) { f(c, frame) }

// Loop renders a Scene into a Canvas at a fixed rate and publishes every
// frame to a FrontBuffer.
type Loop struct {
	canvas *Canvas
	front  *FrontBuffer
	opts   loopOptions
	frames atomic.Int64
}

// NewLoop creates a loop drawing into c.
func NewLoop(c *Canvas, opts ...LoopOption) (*Loop, error) {
	o := defaultLoopOptions()
	for _, opt := range opts {
		opt(&o)
	}
	// The frame interval must be a positive time.Duration.
	if !(o.fps > 0) || math.IsInf(o.fps, 0) ||
		float64(time.Second)/o.fps >= math.MaxInt64 || o.interval() <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFPS, o.fps)
	}
	if o.maxFrames < 0 {
		o.maxFrames = 0
	}
	front := o.front
	if front == nil {
		front = NewFrontBuffer(c.Width(), c.Height())
	}
	return &Loop{canvas: c, front: front, opts: o}, nil
}

// Front returns the buffer frames are published to.
func (l *Loop) Front() *FrontBuffer { return l.front }

// Frames returns how many frames Run has rendered so far.
func (l *Loop) Frames() int { return int(l.frames.Load()) }

// Run renders frames until ctx is done or the frame limit is reached.
// Each frame is BeginFrame, Scene.Draw, EndFrame and Publish. The first
// frame renders immediately and later ones on ticks of the frame
// interval; ticks missed by a slow frame are dropped.
//
// Run returns ctx.Err() when cancelled and nil when the limit is reached.
func (l *Loop) Run(ctx context.Context, s Scene) error {
	interval := l.opts.interval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log := Logger()
	log.Info("loop started", "fps", l.opts.fps, "max_frames", l.opts.maxFrames)
	defer func() { log.Info("loop stopped", "frames", l.Frames()) }()

	for n := 0; ; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		l.canvas.BeginFrame()
		s.Draw(l.canvas, n)
		l.front.Publish(l.canvas.EndFrame())
		l.frames.Add(1)
		if elapsed := time.Since(start); elapsed > interval {
			log.Warn("frame overran its tick", "frame", n, "elapsed", elapsed, "interval", interval)
		}

		if l.opts.maxFrames > 0 && n+1 >= l.opts.maxFrames {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
