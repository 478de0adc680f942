package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/0382/games"
	"github.com/0382/games/geom"
	"github.com/0382/games/mat"
	"github.com/0382/games/transform"
)

var errScene = errors.New("invalid scene")

// builtinScene is rendered when no -config is given.
const builtinScene = `
width = 320
height = 240
background = "dark_gray"

[[shape]]
kind = "ring"
color = "gold"
center = [160.0, 120.0]
radius = 100.0
width = 3.0

[[shape]]
kind = "ellipse"
color = "teal"
center = [160.0, 120.0]
axes = [80.0, 30.0]
spin = -0.02

[[shape]]
kind = "rect"
color = "sky_blue"
center = [160.0, 120.0]
size = [150.0, 12.0]
spin = 0.05

[[shape]]
kind = "triangle"
color = "coral"
points = [[160.0, 40.0], [230.0, 160.0], [90.0, 160.0]]
spin = 0.01

[[shape]]
kind = "line"
color = "light_white"
points = [[60.0, 220.0], [260.0, 220.0]]
width = 2.0

[[shape]]
kind = "circle"
color = "red"
center = [160.0, 120.0]
radius = 8.0
`

// sceneConfig is the TOML layout of a scene file.
type sceneConfig struct {
	Width       int           `toml:"width"`
	Height      int           `toml:"height"`
	Supersample int           `toml:"supersample"`
	Workers     int           `toml:"workers"`
	FPS         float64       `toml:"fps"`
	Background  string        `toml:"background"`
	Shapes      []shapeConfig `toml:"shape"`
}

type shapeConfig struct {
	Kind   string      `toml:"kind"`
	Color  string      `toml:"color"`
	Center []float64   `toml:"center"`
	Radius float64     `toml:"radius"`
	Width  float64     `toml:"width"`
	Size   []float64   `toml:"size"` // rect width, height
	Axes   []float64   `toml:"axes"` // ellipse semi-axes
	Angle  float64     `toml:"angle"`
	Points [][]float64 `toml:"points"`
	Spin   float64     `toml:"spin"` // radians per frame about the canvas center
}

// parseScene decodes a TOML scene. Unknown keys are an error.
func parseScene(data string) (sceneConfig, error) {
	cfg := sceneConfig{Width: 320, Height: 240, Background: "black"}
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("%w: %v", errScene, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return cfg, fmt.Errorf("%w: unknown keys %s", errScene, strings.Join(names, ", "))
	}
	return cfg, nil
}

// shape is one drawable of a compiled scene.
type shape interface {
	draw(c *games.Canvas, m transform.Transform2D, turn float64)
}

type circleShape struct {
	circle geom.Circle
	color  games.Color
}

func (s circleShape) draw(c *games.Canvas, m transform.Transform2D, _ float64) {
	c.FillCircle(geom.NewCircle(s.circle.Center.Map(m), s.circle.Radius), s.color)
}

type ringShape struct {
	circle geom.Circle
	width  float64
	color  games.Color
}

func (s ringShape) draw(c *games.Canvas, m transform.Transform2D, _ float64) {
	c.StrokeCircle(geom.NewCircle(s.circle.Center.Map(m), s.circle.Radius), s.width, s.color)
}

type rectShape struct {
	rect  geom.Rect
	color games.Color
}

func (s rectShape) draw(c *games.Canvas, m transform.Transform2D, turn float64) {
	r := s.rect
	c.FillRect(geom.NewRect(r.Height, r.Width, r.Center.Map(m), r.Angle+turn), s.color)
}

type lineShape struct {
	line  geom.Line
	color games.Color
}

func (s lineShape) draw(c *games.Canvas, m transform.Transform2D, _ float64) {
	c.DrawLine(s.line.Map(m), s.color)
}

type triangleShape struct {
	tri   geom.Triangle
	color games.Color
}

func (s triangleShape) draw(c *games.Canvas, m transform.Transform2D, _ float64) {
	c.FillTriangle(s.tri.Map(m), s.color)
}

type ellipseShape struct {
	ellipse geom.Ellipse
	color   games.Color
}

func (s ellipseShape) draw(c *games.Canvas, m transform.Transform2D, turn float64) {
	e := s.ellipse
	c.FillEllipse(geom.NewEllipse(e.Center.Map(m), e.A, e.B, e.Angle+turn), s.color)
}

type spinning struct {
	shape
	spin float64
}

// scene is a compiled sceneConfig. It implements games.Scene.
type scene struct {
	width, height int
	background    games.Color
	items         []spinning
}

var _ games.Scene = (*scene)(nil)

// Draw clears to the background and paints every shape turned by its
// spin rate times frame about the canvas center.
func (s *scene) Draw(c *games.Canvas, frame int) {
	c.Clear(s.background)
	cx, cy := float64(s.width)/2, float64(s.height)/2
	for _, it := range s.items {
		turn := it.spin * float64(frame)
		it.draw(c, spinAbout(cx, cy, turn), turn)
	}
}

// spinAbout returns the rotation by theta about (cx, cy).
func spinAbout(cx, cy, theta float64) transform.Transform2D {
	return transform.Translation2D(mat.Vec(cx, cy)).
		Mul(transform.Rotation2D(theta)).
		Mul(transform.Translation2D(mat.Vec(-cx, -cy)))
}

func point(v []float64, what string) (geom.Point, error) {
	if len(v) != 2 {
		return geom.Point{}, fmt.Errorf("%w: %s needs 2 coordinates, got %d", errScene, what, len(v))
	}
	return geom.Pt(v[0], v[1]), nil
}

func points(vs [][]float64, n int) ([]geom.Point, error) {
	if len(vs) != n {
		return nil, fmt.Errorf("%w: want %d points, got %d", errScene, n, len(vs))
	}
	out := make([]geom.Point, n)
	for i, v := range vs {
		p, err := point(v, "point")
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// compile resolves colors and geometry.
func (cfg sceneConfig) compile() (*scene, error) {
	bg, err := games.ParseColor(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	s := &scene{width: cfg.Width, height: cfg.Height, background: bg}
	for i, sc := range cfg.Shapes {
		sh, err := sc.compile()
		if err != nil {
			return nil, fmt.Errorf("shape %d (%s): %w", i, sc.Kind, err)
		}
		s.items = append(s.items, spinning{shape: sh, spin: sc.Spin})
	}
	return s, nil
}

func (sc shapeConfig) compile() (shape, error) {
	col, err := games.ParseColor(sc.Color)
	if err != nil {
		return nil, err
	}
	kind := strings.ToLower(sc.Kind)
	switch kind {
	case "circle", "ring":
		c, err := point(sc.Center, "center")
		if err != nil {
			return nil, err
		}
		ci := geom.NewCircle(c, sc.Radius)
		if kind == "ring" {
			return ringShape{circle: ci, width: max(sc.Width, 1), color: col}, nil
		}
		return circleShape{circle: ci, color: col}, nil
	case "rect":
		c, err := point(sc.Center, "center")
		if err != nil {
			return nil, err
		}
		size, err := point(sc.Size, "size")
		if err != nil {
			return nil, err
		}
		return rectShape{rect: geom.NewRect(size.Y, size.X, c, sc.Angle), color: col}, nil
	case "ellipse":
		c, err := point(sc.Center, "center")
		if err != nil {
			return nil, err
		}
		axes, err := point(sc.Axes, "axes")
		if err != nil {
			return nil, err
		}
		return ellipseShape{ellipse: geom.NewEllipse(c, axes.X, axes.Y, sc.Angle), color: col}, nil
	case "line":
		ps, err := points(sc.Points, 2)
		if err != nil {
			return nil, err
		}
		l := geom.NewLine(ps[0], ps[1])
		if sc.Width > 0 {
			l = l.WithWidth(sc.Width)
		}
		return lineShape{line: l, color: col}, nil
	case "triangle":
		ps, err := points(sc.Points, 3)
		if err != nil {
			return nil, err
		}
		return triangleShape{tri: geom.NewTriangle(ps[0], ps[1], ps[2]), color: col}, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", errScene, sc.Kind)
	}
}
