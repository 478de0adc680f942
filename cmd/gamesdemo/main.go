// Command gamesdemo renders an animated scene headlessly and saves the
// last frame.
//
// Usage:
//
//	gamesdemo [-config scene.toml] [-frames N] [-o out.bmp] [-png out.png -scale k] [-v]
//	gamesdemo inspect FILE.bmp
package main

import (
	"cmp"
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"sync"
	"time"

	"golang.org/x/image/draw"

	"github.com/0382/games"
	"github.com/0382/games/mat"
	"github.com/0382/games/transform"
)

type options struct {
	config string
	frames int
	fps    float64
	out    string
	png    string
	scale  float64
}

func main() {
	var (
		o       options
		verbose = flag.Bool("v", false, "log debug output")
	)
	flag.StringVar(&o.config, "config", "", "TOML scene file (built-in scene if empty)")
	flag.IntVar(&o.frames, "frames", 60, "number of frames to render")
	flag.Float64Var(&o.fps, "fps", 0, "frame rate (0 uses the scene's, default 60)")
	flag.StringVar(&o.out, "o", "out.bmp", "BMP output file")
	flag.StringVar(&o.png, "png", "", "optional PNG output file")
	flag.Float64Var(&o.scale, "scale", 1, "PNG scale factor")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	games.SetLogger(logger)

	var err error
	if flag.Arg(0) == "inspect" {
		if flag.NArg() != 2 {
			fmt.Fprintln(os.Stderr, "usage: gamesdemo inspect FILE.bmp")
			os.Exit(2)
		}
		err = inspect(os.Stdout, flag.Arg(1))
	} else {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		err = render(ctx, o)
		stop()
	}
	if err != nil {
		logger.Error("gamesdemo failed", "err", err)
		os.Exit(1)
	}
}

func loadScene(path string) (sceneConfig, error) {
	if path == "" {
		return parseScene(builtinScene)
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return sceneConfig{}, err
	}
	return parseScene(string(data))
}

// render runs the scene for o.frames frames and writes the last one.
func render(ctx context.Context, o options) error {
	cfg, err := loadScene(o.config)
	if err != nil {
		return err
	}
	sc, err := cfg.compile()
	if err != nil {
		return err
	}

	var copts []games.CanvasOption
	if cfg.Supersample > 0 {
		copts = append(copts, games.WithSupersample(cfg.Supersample))
	}
	if cfg.Workers != 0 {
		copts = append(copts, games.WithWorkers(cfg.Workers))
	}
	cv, err := games.NewCanvas(cfg.Width, cfg.Height, copts...)
	if err != nil {
		return err
	}
	defer func() { _ = cv.Close() }()

	fps := cmp.Or(o.fps, cfg.FPS, games.DefaultFPS)
	loop, err := games.NewLoop(cv, games.WithFPS(fps), games.WithMaxFrames(max(o.frames, 1)))
	if err != nil {
		return err
	}

	p := games.NewPresenter(loop.Front(), games.FixedSize(cfg.Width, cfg.Height))
	if err := p.OnCreate(cfg.Width, cfg.Height); err != nil {
		return err
	}
	var blits countingBlitter
	pctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		present(pctx, p, time.Duration(float64(time.Second)/fps), &blits)
	}()

	err = loop.Run(ctx, sc)
	cancel()
	wg.Wait()
	if p.OnTimer() {
		p.OnPaint(&blits)
	}
	p.OnDestroy()
	slog.Info("rendered", "frames", loop.Frames(), "painted", p.Painted(), "blits", blits.calls, "blitted_bytes", blits.bytes)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	last := loop.Front().Snapshot()
	if err := last.SaveBMP(o.out); err != nil {
		return err
	}
	if o.png != "" {
		if err := savePNG(o.png, last, o.scale); err != nil {
			return err
		}
	}
	return nil
}

// countingBlitter stands in for a window's client area.
type countingBlitter struct {
	calls int
	bytes int
}

func (b *countingBlitter) Blit(pix []byte, _, _, _, _ int) {
	b.calls++
	b.bytes += len(pix)
}

// present drives p the way a window's repaint timer would.
func present(ctx context.Context, p *games.Presenter, every time.Duration, b games.Blitter) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if p.OnTimer() {
				p.OnPaint(b)
			}
		}
	}
}

// savePNG writes f scaled by k with nearest-neighbor sampling.
func savePNG(path string, f *games.Frame, k float64) (err error) {
	if !(k > 0) || math.IsInf(k, 0) {
		return fmt.Errorf("invalid scale %v", k)
	}
	if k == 1 {
		return f.SavePNG(path)
	}
	src := f.ToImage()
	w := max(int(math.Round(float64(f.Width)*k)), 1)
	h := max(int(math.Round(float64(f.Height)*k)), 1)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	s2d := transform.Scaling2D(mat.Vec(k, k))
	draw.NearestNeighbor.Transform(dst, s2d.Aff3(), src, src.Bounds(), draw.Src, nil)

	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return writePNG(file, dst)
}

func writePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	slog.Info("png written", "size", img.Bounds().Size())
	return nil
}
