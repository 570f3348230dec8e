package render

import (
	"testing"
)

func TestFramebufferBounds(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.SetPixel(-1, 0, ColorWhite)
	fb.SetPixel(4, 0, ColorWhite)
	fb.SetPixel(3, 2, ColorWhite)

	if got := fb.GetPixel(3, 2); got != ColorWhite {
		t.Errorf("pixel (3,2) = %v", got)
	}
	if got := fb.GetPixel(0, 3); got != (Color{}) {
		t.Errorf("out of range pixel = %v, want zero", got)
	}

	fb.Resize(0, 5)
	if fb.Width != 4 || fb.Height != 3 {
		t.Errorf("zero width resize changed size to %dx%d", fb.Width, fb.Height)
	}
	fb.Resize(2, 2)
	if len(fb.Pixels) != 4 || fb.GetPixel(1, 1) != (Color{}) {
		t.Error("resize should reallocate cleared pixels")
	}
}

func countWhite(fb *Framebuffer) int {
	n := 0
	for _, p := range fb.Pixels {
		if p == ColorWhite {
			n++
		}
	}
	return n
}

func TestDrawLineClipped(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
		lit            int
	}{
		{"horizontal", 1, 2, 8, 2, 8},
		{"diagonal", 0, 0, 9, 9, 10},
		{"steep", 3, 0, 4, 9, 10},
		{"clipped both ends", -5, 5, 20, 5, 10},
		{"outside", -5, -1, 20, -1, 0},
		{"single point", 4, 4, 4, 4, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fb := NewFramebuffer(10, 10)
			fb.DrawLineClipped(tc.x0, tc.y0, tc.x1, tc.y1, ColorWhite)
			if got := countWhite(fb); got != tc.lit {
				t.Errorf("lit %d pixels, want %d", got, tc.lit)
			}
		})
	}
}

func TestFramebufferToImage(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.SetPixel(1, 0, RGB(10, 20, 30))

	img := fb.ToImage()
	if got := img.RGBAAt(1, 0); got != RGB(10, 20, 30) {
		t.Errorf("image pixel = %v", got)
	}
	if got := img.RGBAAt(0, 1); got != (Color{}) {
		t.Errorf("image pixel = %v, want zero", got)
	}
}
