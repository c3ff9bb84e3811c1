package render

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Cubidev3/Moonshade/pkg/math3d"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func TestFramebufferStartsBlack(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	if w, h := fb.Resolution(); w != 3 || h != 2 {
		t.Errorf("Resolution = %d, %d", w, h)
	}
	if fb.PixelCount() != 6 {
		t.Errorf("PixelCount = %d, want 6", fb.PixelCount())
	}
	for i, p := range fb.Pixels {
		if p != math3d.Black {
			t.Errorf("pixel %d = %v, want black", i, p)
		}
	}
}

func TestFramebufferPaint(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Paint(2, 1, math3d.Red)

	if c, ok := fb.ColorAt(2, 1); !ok || c != math3d.Red {
		t.Errorf("ColorAt(2, 1) = %v, %v", c, ok)
	}
	if fb.Pixels[5] != math3d.Red {
		t.Errorf("pixel stored at wrong index: %v", fb.Pixels)
	}

	// Out of range paints are ignored.
	for _, p := range [][2]int{{-1, 0}, {3, 0}, {0, 2}, {0, -1}} {
		fb.Paint(p[0], p[1], math3d.Blue)
		if _, ok := fb.ColorAt(p[0], p[1]); ok {
			t.Errorf("ColorAt(%d, %d) should fail", p[0], p[1])
		}
	}
	for i, p := range fb.Pixels {
		if p == math3d.Blue {
			t.Errorf("out of range paint landed on pixel %d", i)
		}
	}
}

func TestFramebufferResize(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Paint(0, 0, math3d.White)
	fb.Resize(4, 1)
	if fb.Width != 4 || fb.Height != 1 || len(fb.Pixels) != 4 {
		t.Fatalf("Resize gave %dx%d with %d pixels", fb.Width, fb.Height, len(fb.Pixels))
	}
	if fb.Pixels[0] != math3d.Black {
		t.Error("Resize should clear to black")
	}
}

func TestFramebufferToImage(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.Paint(1, 0, math3d.Solid(1, 0.5, 0))

	img := fb.ToImage()
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("pixel 0 = %v", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{255, 128, 0, 255}) {
		t.Errorf("pixel 1 = %v", got)
	}
}

func TestFramebufferToImageFlipsRows(t *testing.T) {
	fb := NewFramebuffer(1, 3)
	fb.Paint(0, 0, math3d.Red)
	fb.Paint(0, 2, math3d.Blue)

	img := fb.ToImage()
	if got := img.RGBAAt(0, 2); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom image row = %v, want red", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top image row = %v, want blue", got)
	}

	// PPM keeps framebuffer order.
	var buf bytes.Buffer
	if err := fb.WritePPM(&buf); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}
	want := "P3\n1 3\n255\n255 0 0\n0 0 0\n0 0 255\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWritePPM(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.Paint(0, 0, math3d.White)
	fb.Paint(1, 0, math3d.Solid(0.5, 0, 2))

	var buf bytes.Buffer
	if err := fb.WritePPM(&buf); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}
	want := "P3\n2 1\n255\n255 255 255\n127 0 255\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestSaveFormats(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.Paint(1, 1, math3d.Green)
	dir := t.TempDir()

	decoders := map[string]func(f *os.File) (color.Color, error){
		"out.png": func(f *os.File) (color.Color, error) {
			img, err := png.Decode(f)
			if err != nil {
				return nil, err
			}
			return img.At(1, 1), nil
		},
		"out.bmp": func(f *os.File) (color.Color, error) {
			img, err := bmp.Decode(f)
			if err != nil {
				return nil, err
			}
			return img.At(1, 1), nil
		},
		"out.tiff": func(f *os.File) (color.Color, error) {
			img, err := tiff.Decode(f)
			if err != nil {
				return nil, err
			}
			return img.At(1, 1), nil
		},
	}

	for name, decode := range decoders {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := fb.Save(path); err != nil {
				t.Fatalf("Save: %v", err)
			}
			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()

			c, err := decode(f)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			r, g, b, _ := c.RGBA()
			if r != 0 || g != 0xffff || b != 0 {
				t.Errorf("pixel (1, 1) = %v, want green", c)
			}
		})
	}

	for _, name := range []string{"out.ppm", "out.jpg"} {
		if err := fb.Save(filepath.Join(dir, name)); err != nil {
			t.Errorf("Save(%s): %v", name, err)
		}
	}
}

func TestSaveUnknownFormat(t *testing.T) {
	err := NewFramebuffer(1, 1).Save(filepath.Join(t.TempDir(), "out.gif"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}
