package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw paints the framebuffer on a terminal screen, two pixel rows per
// cell: ▀ (upper half block) with fg = top pixel and bg = bottom pixel.
// A framebuffer for an area of h rows should therefore be 2h pixels tall.
// The last framebuffer row, the top of the view, lands on the first line.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := fb.Height - 1 - (row-area.Min.Y)*2
		botY := topY - 1

		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			top, ok := fb.ColorAt(x, topY)
			if !ok {
				continue
			}
			bot, _ := fb.ColorAt(x, botY)

			scr.SetCell(col, row, &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: terminalColor(top.RGBA()),
					Bg: terminalColor(bot.RGBA()),
				},
			})
		}
	}
}

// terminalColor converts to a cell color; fully transparent pixels use the
// terminal default.
func terminalColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil
	}
	return c
}

var _ uv.Drawable = (*Framebuffer)(nil)
