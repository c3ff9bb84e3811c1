package render

import (
	"bufio"
	"errors"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an image file format the framebuffer can be written as.
type Format string

// Supported formats.
const (
	FormatPPM  Format = "ppm"
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// ErrUnknownFormat is returned for file extensions with no matching Format.
var ErrUnknownFormat = errors.New("unknown image format")

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ppm", ".pbm":
		return FormatPPM, nil
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// Save writes the framebuffer to path in the format its extension names.
func (fb *Framebuffer) Save(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	if err := fb.Encode(f, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close image: %w", err)
	}
	return nil
}

// Encode writes the framebuffer to w in the given format.
func (fb *Framebuffer) Encode(w io.Writer, format Format) error {
	var err error
	switch format {
	case FormatPPM:
		err = fb.WritePPM(w)
	case FormatPNG:
		err = png.Encode(w, fb.ToImage())
	case FormatJPEG:
		err = jpeg.Encode(w, fb.ToImage(), &jpeg.Options{Quality: 95})
	case FormatBMP:
		err = bmp.Encode(w, fb.ToImage())
	case FormatTIFF:
		err = tiff.Encode(w, fb.ToImage(), &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}

// WritePPM writes the framebuffer as a plain-text P3 pixmap, one "r g b"
// line per pixel in framebuffer order, so the bottom row of the view comes
// first. Channels are truncated to 0-255.
func (fb *Framebuffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height)
	for _, c := range fb.Pixels {
		fmt.Fprintf(bw, "%d %d %d\n", channel255(c.R), channel255(c.G), channel255(c.B))
	}
	return bw.Flush()
}

func channel255(f float64) int {
	return int(math.Max(0, math.Min(255, f*255)))
}
