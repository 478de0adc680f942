package games

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/0382/games/internal/bmp"
)

// Frame is a visible pixel buffer: row-major, top-down, three bytes per
// pixel in blue, green, red order, Stride = 3·Width with no padding.
type Frame struct {
	Pix    []uint8
	Stride int
	Width  int
	Height int
}

// NewFrame allocates a black width×height frame.
func NewFrame(width, height int) *Frame {
	return &Frame{
		Pix:    make([]uint8, 3*width*height),
		Stride: 3 * width,
		Width:  width,
		Height: height,
	}
}

// Pixel returns the color at (x, y), or black outside the frame.
func (f *Frame) Pixel(x, y int) Color {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return Color{}
	}
	i := y*f.Stride + 3*x
	return Color{R: f.Pix[i+2], G: f.Pix[i+1], B: f.Pix[i]}
}

// SetPixel sets the color at (x, y). Writes outside the frame are ignored.
func (f *Frame) SetPixel(x, y int, c Color) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	i := y*f.Stride + 3*x
	f.Pix[i+0] = c.B
	f.Pix[i+1] = c.G
	f.Pix[i+2] = c.R
}

// Clone returns a deep copy of f.
func (f *Frame) Clone() *Frame {
	g := *f
	g.Pix = append([]uint8(nil), f.Pix...)
	return &g
}

// ToImage converts the frame to an image.RGBA.
func (f *Frame) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		src := f.Pix[y*f.Stride : y*f.Stride+3*f.Width]
		dst := img.Pix[y*img.Stride : y*img.Stride+4*f.Width]
		for x := 0; x < f.Width; x++ {
			dst[4*x+0] = src[3*x+2]
			dst[4*x+1] = src[3*x+1]
			dst[4*x+2] = src[3*x+0]
			dst[4*x+3] = 0xff
		}
	}
	return img
}

// At implements the image.Image interface.
func (f *Frame) At(x, y int) color.Color {
	return f.Pixel(x, y)
}

// Bounds implements the image.Image interface.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

// ColorModel implements the image.Image interface.
func (f *Frame) ColorModel() color.Model {
	return ColorModel
}

// WriteBMP writes the frame as a 24-bit top-down BMP.
func (f *Frame) WriteBMP(w io.Writer) error {
	if err := bmp.Encode(w, f.Width, f.Height, f.Pix, f.Stride); err != nil {
		return fmt.Errorf("games: write bmp: %w", err)
	}
	return nil
}

// SaveBMP writes the frame to a BMP file.
func (f *Frame) SaveBMP(path string) error {
	return saveFile(path, f.WriteBMP)
}

// SavePNG writes the frame to a PNG file.
func (f *Frame) SavePNG(path string) error {
	return saveFile(path, func(w io.Writer) error {
		if err := png.Encode(w, f.ToImage()); err != nil {
			return fmt.Errorf("games: write png: %w", err)
		}
		return nil
	})
}

func saveFile(path string, write func(io.Writer) error) (err error) {
	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("games: create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("games: close file: %w", cerr)
		}
	}()
	if err := write(file); err != nil {
		return err
	}
	Logger().Info("frame saved", "path", path)
	return nil
}
