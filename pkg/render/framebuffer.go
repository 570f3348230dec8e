package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

// Framebuffer is the render target. Each terminal cell shows two pixels
// stacked with a half block, so Height is twice the row count.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []color.RGBA // row-major
}

func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{}
	fb.Resize(width, height)
	return fb
}

// Resize reallocates the pixels and discards the old contents. Sizes
// below one pixel are ignored.
func (fb *Framebuffer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	fb.Width, fb.Height = width, height
	fb.Pixels = make([]color.RGBA, width*height)
}

func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

func (fb *Framebuffer) index(x, y int) (int, bool) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return 0, false
	}
	return y*fb.Width + x, true
}

// SetPixel ignores points outside the buffer.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if i, ok := fb.index(x, y); ok {
		fb.Pixels[i] = c
	}
}

// GetPixel returns transparent black outside the buffer.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if i, ok := fb.index(x, y); ok {
		return fb.Pixels[i]
	}
	return color.RGBA{}
}

// DrawLineClipped draws the segment between two fractional pixel positions
// after clipping it to the buffer with Liang-Barsky.
func (fb *Framebuffer) DrawLineClipped(x0, y0, x1, y1 float64, c color.RGBA) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0

	for _, e := range [4]struct{ p, q float64 }{
		{-dx, x0},
		{dx, float64(fb.Width-1) - x0},
		{-dy, y0},
		{dy, float64(fb.Height-1) - y0},
	} {
		if e.p == 0 {
			if e.q < 0 {
				return
			}
			continue
		}
		if t := e.q / e.p; e.p < 0 {
			t0 = max(t0, t)
		} else {
			t1 = min(t1, t)
		}
		if t0 > t1 {
			return
		}
	}

	round := func(v float64) int { return int(math.Round(v)) }
	fb.line(round(x0+t0*dx), round(y0+t0*dy), round(x0+t1*dx), round(y0+t1*dy), c)
}

// line is Bresenham between integer endpoints, both inclusive.
func (fb *Framebuffer) line(x0, y0, x1, y1 int, c color.RGBA) {
	dx, sx := x1-x0, 1
	if dx < 0 {
		dx, sx = -dx, -1
	}
	dy, sy := y0-y1, 1
	if dy > 0 {
		dy, sy = -dy, -1
	}

	for err := dx + dy; ; {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		if e2 := 2 * err; e2 >= dy {
			err += dy
			x0 += sx
			if e2 <= dx {
				err += dx
				y0 += sy
			}
		} else {
			err += dx
			y0 += sy
		}
	}
}

// ToImage copies the pixels into an image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for i, p := range fb.Pixels {
		copy(img.Pix[i*4:], []uint8{p.R, p.G, p.B, p.A})
	}
	return img
}

func (fb *Framebuffer) SavePNG(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return png.Encode(f, fb.ToImage())
}
