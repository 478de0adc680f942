package games

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/0382/games/internal/raster"
)

// Color is an opaque 8-bit RGB color.
//
// Scale, Div, Add and Sub wrap each channel modulo 256 the way 8-bit
// integer arithmetic does; they never saturate. Callers that need a
// result in range keep it in range by construction, for example by
// scaling with a factor in [0, 1].
type Color struct {
	R, G, B uint8
}

// RGB creates a color from its channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// wrap8 truncates v toward zero and wraps it into a channel value.
// Non-finite values become 0.
func wrap8(v float64) uint8 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return uint8(int64(math.Mod(math.Trunc(v), 256)))
}

// Scale multiplies every channel by k.
func (c Color) Scale(k float64) Color {
	return Color{
		R: wrap8(float64(c.R) * k),
		G: wrap8(float64(c.G) * k),
		B: wrap8(float64(c.B) * k),
	}
}

// Div divides every channel by k, as Scale(1/k).
func (c Color) Div(k float64) Color {
	return c.Scale(1 / k)
}

// Add returns the channel-wise sum.
func (c Color) Add(d Color) Color {
	return Color{R: c.R + d.R, G: c.G + d.G, B: c.B + d.B}
}

// Sub returns the channel-wise difference.
func (c Color) Sub(d Color) Color {
	return Color{R: c.R - d.R, G: c.G - d.G, B: c.B - d.B}
}

// Mix returns k·c1 + (1-k)·c2 with k clamped to [0, 1].
func Mix(k float64, c1, c2 Color) Color {
	k = min(max(k, 0), 1)
	if math.IsNaN(k) {
		k = 0
	}
	mix := func(a, b uint8) uint8 {
		return wrap8(float64(a)*k + float64(b)*(1-k))
	}
	return Color{R: mix(c1.R, c2.R), G: mix(c1.G, c2.G), B: mix(c1.B, c2.B)}
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the palette name of c, or its hex form.
func (c Color) String() string {
	if name, ok := nameOf(c); ok {
		return name
	}
	return c.Hex()
}

func (c Color) raster() raster.RGB {
	return raster.RGB{R: c.R, G: c.G, B: c.B}
}

// ColorModel converts any color to an opaque Color. Alpha is dropped
// after un-premultiplying.
var ColorModel = color.ModelFunc(colorModel)

func colorModel(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B}
}

// ParseColor returns the color for a palette name (see Named) or a hex
// triple in the form "#rgb" or "#rrggbb", the '#' being optional.
func ParseColor(s string) (Color, error) {
	if c, ok := Named(s); ok {
		return c, nil
	}
	if c, ok := parseHex(strings.TrimPrefix(strings.TrimSpace(s), "#")); ok {
		return c, nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

func parseHex(s string) (Color, bool) {
	var v [6]uint8
	switch len(s) {
	case 3, 6:
	default:
		return Color{}, false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case '0' <= ch && ch <= '9':
			v[i] = ch - '0'
		case 'a' <= ch && ch <= 'f':
			v[i] = ch - 'a' + 10
		case 'A' <= ch && ch <= 'F':
			v[i] = ch - 'A' + 10
		default:
			return Color{}, false
		}
	}
	if len(s) == 3 {
		return Color{R: v[0] * 17, G: v[1] * 17, B: v[2] * 17}, true
	}
	return Color{R: v[0]<<4 | v[1], G: v[2]<<4 | v[3], B: v[4]<<4 | v[5]}, true
}
