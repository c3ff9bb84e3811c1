// Package render turns scenes into images: lens shaders generate primary
// rays, ray and pixel shaders decide what each ray sees, and the Renderer
// fans rows out to workers and paints the results into a Framebuffer.
package render

import (
	"image"

	"github.com/Cubidev3/Moonshade/pkg/math3d"
)

// Framebuffer is a 2D array of float colors. It implements Canvas.
type Framebuffer struct {
	Width  int            // Width in pixels
	Height int            // Height in pixels
	Pixels []math3d.Color // Row-major pixel data, row 0 at the bottom of the view
}

// NewFramebuffer creates a framebuffer filled with opaque black.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]math3d.Color, width*height),
	}
	fb.Clear(math3d.Black)
	return fb
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c math3d.Color) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// Paint sets the pixel at (x, y). Coordinates outside the framebuffer are ignored.
func (fb *Framebuffer) Paint(x, y int, c math3d.Color) {
	if !fb.InBounds(x, y) {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// ColorAt returns the color at (x, y), or false if out of bounds.
func (fb *Framebuffer) ColorAt(x, y int) (math3d.Color, bool) {
	if !fb.InBounds(x, y) {
		return math3d.Color{}, false
	}
	return fb.Pixels[y*fb.Width+x], true
}

// InBounds reports whether (x, y) is inside the framebuffer.
func (fb *Framebuffer) InBounds(x, y int) bool {
	return x >= 0 && x < fb.Width && y >= 0 && y < fb.Height
}

// Resolution returns the width and height.
func (fb *Framebuffer) Resolution() (int, int) {
	return fb.Width, fb.Height
}

// PixelCount returns Width * Height.
func (fb *Framebuffer) PixelCount() int {
	return fb.Width * fb.Height
}

// Resize reallocates the framebuffer if the size changed and clears it to black.
func (fb *Framebuffer) Resize(width, height int) {
	if width != fb.Width || height != fb.Height {
		fb.Width, fb.Height = width, height
		fb.Pixels = make([]math3d.Color, width*height)
	}
	fb.Clear(math3d.Black)
}

// ToImage converts the framebuffer to a standard Go image.RGBA. Lenses map
// row 0 to the bottom of the view, so rows are flipped to put it last.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		row := fb.Height - 1 - y
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, row, fb.Pixels[y*fb.Width+x].RGBA())
		}
	}
	return img
}

var _ Canvas = (*Framebuffer)(nil)
