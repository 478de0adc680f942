package main

import (
	"fmt"
	"io"
	"os"

	xbmp "golang.org/x/image/bmp"

	"github.com/0382/games/internal/bmp"
)

// inspect prints the headers of a BMP file and checks that its pixel
// data decodes.
func inspect(w io.Writer, path string) error {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	h, err := bmp.DecodeHeader(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	order := "bottom-up"
	if h.TopDown {
		order = "top-down"
	}
	fmt.Fprintf(w, "%s: %dx%d %d-bit %s\n", path, h.Width, h.Height, h.BitCount, order)
	fmt.Fprintf(w, "  file size   %d\n", h.FileSize)
	fmt.Fprintf(w, "  data offset %d\n", h.DataOffset)
	fmt.Fprintf(w, "  image size  %d (row %d bytes)\n", h.ImageSize, bmp.RowSize(h.Width))

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	img, err := xbmp.Decode(f)
	if err != nil {
		return fmt.Errorf("%s: pixel data: %w", path, err)
	}
	fmt.Fprintf(w, "  decodes     ok (%v)\n", img.Bounds().Size())
	return nil
}
