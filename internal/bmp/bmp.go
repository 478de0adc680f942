// Package bmp writes 24-bit uncompressed top-down BMP files and reads
// their headers back.
//
// golang.org/x/image/bmp decodes these files but always encodes
// bottom-up, so the encoder here writes the headers itself.
package bmp

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Header sizes in bytes.
const (
	FileHeaderSize = 14
	InfoHeaderSize = 40
	DataOffset     = FileHeaderSize + InfoHeaderSize
)

const (
	bitCount = 24
	biRGB    = 0
)

var (
	// ErrInvalidHeader is returned when a header is malformed.
	ErrInvalidHeader = errors.New("bmp: invalid header")

	// ErrUnsupported is returned for valid BMP variants this package
	// does not handle.
	ErrUnsupported = errors.New("bmp: unsupported format")
)

// fileHeader is BITMAPFILEHEADER.
type fileHeader struct {
	Magic    [2]byte
	Size     uint32
	Reserved uint32
	Offset   uint32
}

// infoHeader is BITMAPINFOHEADER.
type infoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	ImageSize     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

// Header holds the fields of a BMP file header pair.
type Header struct {
	FileSize    uint32
	DataOffset  uint32
	Width       int
	Height      int // always positive; see TopDown
	TopDown     bool
	Planes      uint16
	BitCount    uint16
	Compression uint32
	ImageSize   uint32
}

// RowSize returns the padded size of one 24-bit row.
func RowSize(width int) int {
	return (3*width + 3) &^ 3
}

// Encode writes a width×height image as a top-down 24-bit BMP. pix holds
// BGR rows of stride bytes each.
func Encode(w io.Writer, width, height int, pix []byte, stride int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidHeader, width, height)
	}
	if stride < 3*width || len(pix) < stride*(height-1)+3*width {
		return fmt.Errorf("%w: %d bytes with stride %d for %dx%d", ErrInvalidHeader, len(pix), stride, width, height)
	}
	row := RowSize(width)
	imageSize := int64(row) * int64(height)
	if width > math.MaxInt32 || height > math.MaxInt32 || imageSize+DataOffset > math.MaxUint32 {
		return fmt.Errorf("%w: %dx%d too large", ErrUnsupported, width, height)
	}

	fh := fileHeader{
		Magic:  [2]byte{'B', 'M'},
		Size:   uint32(imageSize) + DataOffset,
		Offset: DataOffset,
	}
	ih := infoHeader{
		Size:        InfoHeaderSize,
		Width:       int32(width),
		Height:      -int32(height),
		Planes:      1,
		BitCount:    bitCount,
		Compression: biRGB,
		ImageSize:   uint32(imageSize),
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, fh); err != nil {
		return fmt.Errorf("bmp: write file header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, ih); err != nil {
		return fmt.Errorf("bmp: write info header: %w", err)
	}
	pad := make([]byte, row-3*width)
	for y := 0; y < height; y++ {
		if _, err := bw.Write(pix[y*stride : y*stride+3*width]); err != nil {
			return fmt.Errorf("bmp: write row %d: %w", y, err)
		}
		if _, err := bw.Write(pad); err != nil {
			return fmt.Errorf("bmp: write row %d: %w", y, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("bmp: flush: %w", err)
	}
	return nil
}

// DecodeHeader reads the file and info headers from r.
func DecodeHeader(r io.Reader) (Header, error) {
	var fh fileHeader
	if err := binary.Read(r, binary.LittleEndian, &fh); err != nil {
		return Header{}, fmt.Errorf("%w: file header: %w", ErrInvalidHeader, err)
	}
	if fh.Magic != [2]byte{'B', 'M'} {
		return Header{}, fmt.Errorf("%w: magic %q", ErrInvalidHeader, fh.Magic[:])
	}
	var ih infoHeader
	if err := binary.Read(r, binary.LittleEndian, &ih); err != nil {
		return Header{}, fmt.Errorf("%w: info header: %w", ErrInvalidHeader, err)
	}
	if ih.Size < InfoHeaderSize {
		return Header{}, fmt.Errorf("%w: info header size %d", ErrUnsupported, ih.Size)
	}
	if ih.Width <= 0 || ih.Height == 0 || ih.Height == math.MinInt32 {
		return Header{}, fmt.Errorf("%w: size %dx%d", ErrInvalidHeader, ih.Width, ih.Height)
	}

	h := Header{
		FileSize:    fh.Size,
		DataOffset:  fh.Offset,
		Width:       int(ih.Width),
		Height:      int(ih.Height),
		Planes:      ih.Planes,
		BitCount:    ih.BitCount,
		Compression: ih.Compression,
		ImageSize:   ih.ImageSize,
	}
	if h.Height < 0 {
		h.Height = -h.Height
		h.TopDown = true
	}
	return h, nil
}
