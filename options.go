package games

import (
	"time"

	"github.com/0382/games/internal/raster"
)

// MaxSupersample is the largest accepted supersampling factor.
const MaxSupersample = 16

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	// 8×8 samples per pixel, reduction on all CPUs
//	cv, err := games.NewCanvas(800, 600, games.WithSupersample(8), games.WithWorkers(0))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	supersample int
	workers     int
}

// defaultCanvasOptions returns the default canvas options.
func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		supersample: raster.DefaultScale,
		workers:     1,
	}
}

// WithSupersample sets the number of subpixels per pixel along each axis.
// NewCanvas rejects values outside [1, MaxSupersample].
func WithSupersample(n int) CanvasOption {
	return func(o *canvasOptions) {
		o.supersample = n
	}
}

// WithWorkers sets how many goroutines reduce the subpixel buffer.
// 1 reduces on the calling goroutine; 0 or less uses GOMAXPROCS.
func WithWorkers(n int) CanvasOption {
	return func(o *canvasOptions) {
		o.workers = n
	}
}

// LoopOption configures a Loop during creation.
type LoopOption func(*loopOptions)

// loopOptions holds optional configuration for Loop creation.
type loopOptions struct {
	fps       float64
	maxFrames int
	front     *FrontBuffer
}

// DefaultFPS is the frame rate a Loop runs at unless WithFPS is given.
const DefaultFPS = 60

func defaultLoopOptions() loopOptions {
	return loopOptions{fps: DefaultFPS}
}

// WithFPS sets the target frame rate. NewLoop rejects non-positive rates.
func WithFPS(fps float64) LoopOption {
	return func(o *loopOptions) {
		o.fps = fps
	}
}

// WithMaxFrames stops Run after n frames. 0 means no limit.
func WithMaxFrames(n int) LoopOption {
	return func(o *loopOptions) {
		o.maxFrames = n
	}
}

// WithFrontBuffer publishes frames into fb instead of a buffer the loop
// allocates itself.
func WithFrontBuffer(fb *FrontBuffer) LoopOption {
	return func(o *loopOptions) {
		o.front = fb
	}
}

func (o loopOptions) interval() time.Duration {
	return time.Duration(float64(time.Second) / o.fps)
}
