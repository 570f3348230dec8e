package render

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"github.com/taigrr/scenery/pkg/math3d"
)

// WrapMode says what happens to texture coordinates outside [0, 1].
type WrapMode int

const (
	WrapRepeat WrapMode = iota
	WrapClamp
)

type FilterMode int

const (
	FilterNearest FilterMode = iota
	FilterBilinear
)

// Texture is a row-major RGBA image sampled by UV. V=0 is the bottom row.
type Texture struct {
	Width      int
	Height     int
	Pixels     []Color
	WrapU      WrapMode
	WrapV      WrapMode
	FilterMode FilterMode
}

// NewTexture returns a transparent black texture that repeats and samples
// the nearest texel.
func NewTexture(width, height int) *Texture {
	return &Texture{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

// LoadTexture decodes a PNG or JPEG file.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}
	return TextureFromImage(img), nil
}

func TextureFromImage(img image.Image) *Texture {
	b := img.Bounds()
	tex := NewTexture(b.Dx(), b.Dy())
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			tex.Pixels[i] = color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			i++
		}
	}
	return tex
}

// NewCheckerTexture alternates c1 and c2 in squares of size cell, with c1
// in the top left.
func NewCheckerTexture(width, height, cell int, c1, c2 Color) *Texture {
	tex := NewTexture(width, height)
	for i := range tex.Pixels {
		x, y := i%width, i/width
		if (x/cell+y/cell)%2 == 0 {
			tex.Pixels[i] = c1
		} else {
			tex.Pixels[i] = c2
		}
	}
	return tex
}

// NewSkyTexture builds an equirectangular gradient from zenith at the top
// row through horizon at the middle row to ground at the bottom.
func NewSkyTexture(width, height int, zenith, horizon, ground Color) *Texture {
	tex := NewTexture(width, height)
	tex.FilterMode = FilterBilinear
	tex.WrapV = WrapClamp

	mid := float64(height-1) / 2
	for y := range height {
		t := float64(y) / mid
		c := lerpColor(zenith, horizon, t*t)
		if t > 1 {
			c = lerpColor(horizon, ground, math.Sqrt(t-1))
		}
		row := tex.Pixels[y*width : (y+1)*width]
		for x := range row {
			row[x] = c
		}
	}
	return tex
}

func (t *Texture) inside(x, y int) bool {
	return x >= 0 && x < t.Width && y >= 0 && y < t.Height
}

// SetPixel ignores coordinates outside the texture.
func (t *Texture) SetPixel(x, y int, c Color) {
	if t.inside(x, y) {
		t.Pixels[y*t.Width+x] = c
	}
}

// GetPixel returns transparent black outside the texture.
func (t *Texture) GetPixel(x, y int) Color {
	if !t.inside(x, y) {
		return Color{}
	}
	return t.Pixels[y*t.Width+x]
}

// Sample looks up the texel at (u, v) after wrapping.
func (t *Texture) Sample(u, v float64) Color {
	u = wrapUnit(u, t.WrapU)
	v = 1 - wrapUnit(v, t.WrapV)

	if t.FilterMode == FilterBilinear {
		return t.bilinear(u*float64(t.Width)-0.5, v*float64(t.Height)-0.5)
	}
	x := min(int(u*float64(t.Width)), t.Width-1)
	y := min(int(v*float64(t.Height)), t.Height-1)
	return t.GetPixel(x, y)
}

// SampleEquirect treats the texture as a panorama and looks up the texel
// seen along dir. +Y is the top row and -X the left edge.
func (t *Texture) SampleEquirect(dir math3d.Vec3) Color {
	if dir.LenSq() == 0 {
		return t.Sample(0.5, 0.5)
	}
	d := dir.Normalize()
	u := 0.5 + math.Atan2(d.Z, d.X)/(2*math.Pi)
	v := 0.5 + math.Asin(math3d.Clamp(d.Y, -1, 1))/math.Pi
	return t.Sample(u, v)
}

// bilinear blends the four texels around pixel-space point (fx, fy).
func (t *Texture) bilinear(fx, fy float64) Color {
	x0, y0 := math.Floor(fx), math.Floor(fy)
	tx, ty := fx-x0, fy-y0

	xa := wrapIndex(int(x0), t.Width, t.WrapU)
	xb := wrapIndex(int(x0)+1, t.Width, t.WrapU)
	ya := wrapIndex(int(y0), t.Height, t.WrapV)
	yb := wrapIndex(int(y0)+1, t.Height, t.WrapV)

	top := lerpColor(t.GetPixel(xa, ya), t.GetPixel(xb, ya), tx)
	bottom := lerpColor(t.GetPixel(xa, yb), t.GetPixel(xb, yb), tx)
	return lerpColor(top, bottom, ty)
}

func wrapUnit(c float64, mode WrapMode) float64 {
	if mode == WrapClamp {
		return math3d.Clamp(c, 0, 1)
	}
	return c - math.Floor(c)
}

func wrapIndex(i, n int, mode WrapMode) int {
	if mode == WrapClamp {
		return max(0, min(i, n-1))
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func lerpColor(a, b Color, t float64) Color {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
