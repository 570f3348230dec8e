package render

import (
	"path/filepath"
	"testing"

	"github.com/taigrr/scenery/pkg/math3d"
)

func TestSampleEquirect(t *testing.T) {
	// Columns: u in [0,0.25) red, [0.25,0.5) green, [0.5,0.75) blue, rest white.
	// Top row bright, bottom row dark.
	tex := NewTexture(4, 2)
	cols := []Color{RGB(255, 0, 0), RGB(0, 255, 0), RGB(0, 0, 255), RGB(255, 255, 255)}
	for x, c := range cols {
		tex.SetPixel(x, 0, c)
		tex.SetPixel(x, 1, RGB(c.R/2, c.G/2, c.B/2))
	}

	tests := []struct {
		name string
		dir  math3d.Vec3
		want Color
	}{
		// atan2(z, x): -X is u=0 (wraps), -Z is u=0.25, +X is u=0.5, +Z is u=0.75
		{"minus z, slightly up", math3d.V3(0.01, 0.1, -1), RGB(0, 255, 0)},
		{"plus x, slightly up", math3d.V3(1, 0.1, 0.01), RGB(0, 0, 255)},
		{"plus z, slightly down", math3d.V3(-0.01, -0.1, 1), RGB(127, 127, 127)},
		{"straight up", math3d.V3(0.01, 1, -0.5), RGB(0, 255, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tex.SampleEquirect(tc.dir); got != tc.want {
				t.Errorf("SampleEquirect(%v) = %v, want %v", tc.dir, got, tc.want)
			}
		})
	}

	if got := tex.SampleEquirect(math3d.Zero3()); got == (Color{}) {
		t.Error("zero direction should still sample a texel")
	}
}

func TestSkyTexture(t *testing.T) {
	zenith, horizon, ground := RGB(0, 0, 200), RGB(200, 200, 255), RGB(40, 30, 20)
	sky := NewSkyTexture(8, 9, zenith, horizon, ground)

	if got := sky.GetPixel(0, 0); got != zenith {
		t.Errorf("top row = %v, want zenith", got)
	}
	if got := sky.GetPixel(3, 4); got != horizon {
		t.Errorf("middle row = %v, want horizon", got)
	}
	if got := sky.GetPixel(7, 8); got != ground {
		t.Errorf("bottom row = %v, want ground", got)
	}
}

func TestCheckerTextureRepeatWrap(t *testing.T) {
	tex := NewCheckerTexture(2, 2, 1, ColorWhite, ColorGray)
	if tex.Sample(0.25, 0.75) != tex.Sample(1.25, 2.75) {
		t.Error("repeat wrap should tile the texture")
	}
	tex.WrapU = WrapClamp
	if tex.Sample(5, 0.75) != tex.Sample(0.99, 0.75) {
		t.Error("clamp wrap should stick to the edge")
	}
}

func TestLoadTextureRoundTrip(t *testing.T) {
	if _, err := LoadTexture(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("loading a missing file should fail")
	}

	fb := NewFramebuffer(3, 2)
	fb.Clear(RGB(10, 20, 30))
	fb.SetPixel(2, 1, RGB(200, 100, 50))
	path := filepath.Join(t.TempDir(), "fb.png")
	if err := fb.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	tex, err := LoadTexture(path)
	if err != nil {
		t.Fatalf("LoadTexture: %v", err)
	}
	if tex.Width != 3 || tex.Height != 2 {
		t.Fatalf("size = %dx%d, want 3x2", tex.Width, tex.Height)
	}
	if got := tex.GetPixel(2, 1); got != RGB(200, 100, 50) {
		t.Errorf("pixel (2,1) = %v", got)
	}
	if got := tex.GetPixel(0, 0); got != RGB(10, 20, 30) {
		t.Errorf("pixel (0,0) = %v", got)
	}
}
