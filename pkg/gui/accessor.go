package gui

import (
	"github.com/taigrr/scenery/pkg/render"
)

// ColorAccessor reads and writes a color as a "#rrggbb" string.
type ColorAccessor struct {
	Get func() string
	Set func(string) error
}

// ColorOf binds an accessor to a color value.
func ColorOf(c *render.ColorF) ColorAccessor {
	return ColorAccessor{
		Get: func() string { return "#" + c.HexString() },
		Set: c.SetHex,
	}
}
