package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// CellSurface is a cell screen that can flush itself to the terminal.
// *uv.Terminal satisfies it.
type CellSurface interface {
	uv.Screen
	Display() error
}

// TerminalRenderer presents framebuffers on a terminal using half-block
// cells, two framebuffer rows per terminal row.
type TerminalRenderer struct {
	surface CellSurface
	cols    int
	rows    int
}

// NewTerminalRenderer creates a renderer for a cols x rows terminal.
func NewTerminalRenderer(surface CellSurface, cols, rows int) *TerminalRenderer {
	return &TerminalRenderer{surface: surface, cols: cols, rows: rows}
}

// FramebufferSize returns the framebuffer dimensions that exactly cover the
// terminal.
func (t *TerminalRenderer) FramebufferSize() (width, height int) {
	return t.cols, t.rows * 2
}

// Screen returns the underlying cell screen for overlays.
func (t *TerminalRenderer) Screen() uv.Screen {
	return t.surface
}

// Render converts the framebuffer to cells.
func (t *TerminalRenderer) Render(fb *Framebuffer) {
	fb.Draw(t.surface, uv.Rect(0, 0, t.cols, t.rows))
}

// Flush writes pending cell changes to the terminal.
func (t *TerminalRenderer) Flush() error {
	return t.surface.Display()
}

// Draw paints fb onto area of scr. Each cell is an upper half block whose
// foreground is the even pixel row and background the odd one below it.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		for col := area.Min.X; col < min(area.Max.X, fb.Width); col++ {
			scr.SetCell(col, row, &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: cellColor(fb.GetPixel(col, 2*row)),
					Bg: cellColor(fb.GetPixel(col, 2*row+1)),
				},
			})
		}
	}
}

// DrawText writes a single line of narrow text at (x, y), clipped to the
// screen bounds.
func DrawText(scr uv.Screen, x, y int, text string, fg, bg Color) {
	bounds := scr.Bounds()
	if y < bounds.Min.Y || y >= bounds.Max.Y {
		return
	}
	style := uv.Style{Fg: cellColor(fg), Bg: cellColor(bg)}
	for _, ch := range text {
		if x >= bounds.Max.X {
			return
		}
		if x >= bounds.Min.X {
			scr.SetCell(x, y, &uv.Cell{Content: string(ch), Width: 1, Style: style})
		}
		x++
	}
}

// cellColor leaves fully transparent pixels unstyled.
func cellColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil
	}
	return c
}
