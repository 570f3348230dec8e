package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit framebuffer pixel.
type Color = color.RGBA

var (
	ColorBlack  = RGB(0, 0, 0)
	ColorWhite  = RGB(255, 255, 255)
	ColorGray   = RGB(128, 128, 128)
	ColorYellow = RGB(255, 255, 0)
)

// RGB returns an opaque Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// ColorF is a floating point RGB color with components nominally in [0, 1].
// Materials and lights carry ColorF so tweens and lighting can work on
// fractional values; the framebuffer stores 8-bit Color.
type ColorF struct {
	R, G, B float64
}

// Hex builds a ColorF from a 0xRRGGBB literal.
func Hex(hex uint32) ColorF {
	return ColorF{
		R: float64(hex>>16&0xff) / 255,
		G: float64(hex>>8&0xff) / 255,
		B: float64(hex&0xff) / 255,
	}
}

// ColorFromRGB8 builds a ColorF from 8-bit channel values.
func ColorFromRGB8(r, g, b uint8) ColorF {
	return ColorF{float64(r) / 255, float64(g) / 255, float64(b) / 255}
}

// ColorFromHSL builds a ColorF from hue in degrees and saturation and
// lightness in [0, 1].
func ColorFromHSL(h, s, l float64) ColorF {
	return ColorF(colorful.Hsl(h, s, l).Clamped())
}

var namedColors = map[string]ColorF{
	"black":  {0, 0, 0},
	"white":  {1, 1, 1},
	"red":    {1, 0, 0},
	"green":  {0, 128.0 / 255, 0},
	"blue":   {0, 0, 1},
	"yellow": {1, 1, 0},
}

// ParseColor parses CSS-style color strings: "#rgb", "#rrggbb",
// "rgb(r, g, b)", "hsl(h, s%, l%)" and a handful of names.
func ParseColor(s string) (ColorF, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	switch {
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return ColorF{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		return ColorF(c), nil

	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		var r, g, b int
		if _, err := fmt.Sscanf(strings.ReplaceAll(s, " ", ""), "rgb(%d,%d,%d)", &r, &g, &b); err != nil {
			return ColorF{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		return ColorF{
			R: clamp01(float64(r) / 255),
			G: clamp01(float64(g) / 255),
			B: clamp01(float64(b) / 255),
		}, nil

	case strings.HasPrefix(s, "hsl(") && strings.HasSuffix(s, ")"):
		var h, sat, l float64
		if _, err := fmt.Sscanf(strings.ReplaceAll(s, " ", ""), "hsl(%g,%g%%,%g%%)", &h, &sat, &l); err != nil {
			return ColorF{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		return ColorFromHSL(math.Mod(h, 360), sat/100, l/100), nil
	}

	return ColorF{}, fmt.Errorf("parse color %q: unsupported format", s)
}

// MustParseColor is ParseColor for literals known to be valid.
func MustParseColor(s string) ColorF {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// HexString returns the color as "rrggbb" without a leading '#'.
func (c ColorF) HexString() string {
	return strings.TrimPrefix(colorful.Color(c.Clamped()).Hex(), "#")
}

// SetHex replaces the color with a parsed "#rrggbb" style string.
func (c *ColorF) SetHex(s string) error {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// HSL returns hue in degrees and saturation and lightness in [0, 1].
func (c ColorF) HSL() (h, s, l float64) {
	return colorful.Color(c.Clamped()).Hsl()
}

// Clamped returns the color with every channel limited to [0, 1].
func (c ColorF) Clamped() ColorF {
	return ColorF{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// Mul returns the component-wise product.
func (c ColorF) Mul(o ColorF) ColorF {
	return ColorF{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Add returns the component-wise sum.
func (c ColorF) Add(o ColorF) ColorF {
	return ColorF{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Scale multiplies every channel by s.
func (c ColorF) Scale(s float64) ColorF {
	return ColorF{c.R * s, c.G * s, c.B * s}
}

// RGBA converts to an opaque 8-bit framebuffer color, rounding and clamping.
func (c ColorF) RGBA() Color {
	return RGB(to8(c.R), to8(c.G), to8(c.B))
}

// ColorFFromRGBA converts an 8-bit color back to floating point.
func ColorFFromRGBA(c Color) ColorF {
	return ColorFromRGB8(c.R, c.G, c.B)
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
