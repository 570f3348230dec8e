package render

import (
	"math"
	"testing"
)

func approxColor(a, b ColorF) bool {
	const eps = 1e-3
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps && math.Abs(a.B-b.B) < eps
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want ColorF
	}{
		{"#00ff83", Hex(0x00ff83)},
		{"#8AC", Hex(0x88aacc)},
		{"#ca8", Hex(0xccaa88)},
		{"white", ColorF{1, 1, 1}},
		{" rgb(255, 0, 128) ", ColorFromRGB8(255, 0, 128)},
		{"rgb(300,0,0)", ColorF{1, 0, 0}},
		{"hsl(0, 100%, 50%)", ColorF{1, 0, 0}},
		{"hsl(480, 100%, 50%)", ColorF{0, 1, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tc.in, err)
			}
			if !approxColor(got, tc.want) {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "#12", "#gggggg", "rgb(1,2)", "chartreuse-ish"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) should fail", in)
		}
	}
}

func TestHexStringRoundTrip(t *testing.T) {
	for _, hex := range []string{"000000", "ffffff", "00ff83", "88aacc", "123456"} {
		var c ColorF
		if err := c.SetHex(hex); err != nil {
			t.Fatalf("SetHex(%q): %v", hex, err)
		}
		if got := c.HexString(); got != hex {
			t.Errorf("HexString after SetHex(%q) = %q", hex, got)
		}
	}

	// Out of range channels are clamped first
	if got := (ColorF{2, -1, 0.5}).HexString(); got != "ff0080" {
		t.Errorf("clamped hex = %q, want ff0080", got)
	}
}

func TestColorFRGBA(t *testing.T) {
	tests := []struct {
		in   ColorF
		want Color
	}{
		{ColorF{0, 0, 0}, RGB(0, 0, 0)},
		{ColorF{1, 1, 1}, RGB(255, 255, 255)},
		{ColorF{0.5, 0.25, 2}, RGB(128, 64, 255)},
		{ColorF{-1, 0.002, 0.998}, RGB(0, 1, 254)},
	}
	for _, tc := range tests {
		if got := tc.in.RGBA(); got != tc.want {
			t.Errorf("%+v.RGBA() = %v, want %v", tc.in, got, tc.want)
		}
	}

	if got := ColorFFromRGBA(RGB(255, 0, 51)); !approxColor(got, ColorF{1, 0, 0.2}) {
		t.Errorf("ColorFFromRGBA = %+v", got)
	}
}

func TestColorHSL(t *testing.T) {
	c := ColorFromHSL(210, 0.5, 0.5)
	h, s, l := c.HSL()
	if math.Abs(h-210) > 0.5 || math.Abs(s-0.5) > 0.01 || math.Abs(l-0.5) > 0.01 {
		t.Errorf("HSL round trip = (%v, %v, %v)", h, s, l)
	}
}

func TestColorArithmetic(t *testing.T) {
	a := ColorF{0.5, 0.2, 1}
	b := ColorF{0.5, 0.5, 0.5}
	if got := a.Mul(b); !approxColor(got, ColorF{0.25, 0.1, 0.5}) {
		t.Errorf("Mul = %+v", got)
	}
	if got := a.Add(b); !approxColor(got, ColorF{1, 0.7, 1.5}) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Scale(2).Clamped(); !approxColor(got, ColorF{1, 0.4, 1}) {
		t.Errorf("Scale.Clamped = %+v", got)
	}
}
