// Package gui is a small keyboard-driven parameter panel drawn over the
// terminal view. Controllers bind to fields by pointer or by accessor
// functions and report edits through OnChange callbacks.
package gui

import (
	"fmt"
	"math"
	"strconv"

	"github.com/taigrr/scenery/pkg/render"
)

// Controller is one editable row of a panel.
type Controller interface {
	Name() string
	// Display formats the current value.
	Display() string
	Increment()
	Decrement()
}

// NumberController edits a float64 within [Min, Max], snapped to Step.
type NumberController struct {
	name     string
	target   *float64
	Min      float64
	Max      float64
	Step     float64
	onChange func(float64)
}

// SetName renames the row.
func (c *NumberController) SetName(name string) *NumberController {
	c.name = name
	return c
}

// OnChange sets a callback run after every edit.
func (c *NumberController) OnChange(fn func(float64)) *NumberController {
	c.onChange = fn
	return c
}

// Name implements Controller.
func (c *NumberController) Name() string { return c.name }

// Value returns the bound field.
func (c *NumberController) Value() float64 { return *c.target }

// SetValue clamps and snaps v, writes it and fires OnChange.
func (c *NumberController) SetValue(v float64) {
	if c.Step > 0 {
		v = c.Min + math.Round((v-c.Min)/c.Step)*c.Step
	}
	v = math.Max(c.Min, math.Min(c.Max, v))
	*c.target = v
	if c.onChange != nil {
		c.onChange(v)
	}
}

// Increment implements Controller.
func (c *NumberController) Increment() { c.SetValue(*c.target + c.stepSize()) }

// Decrement implements Controller.
func (c *NumberController) Decrement() { c.SetValue(*c.target - c.stepSize()) }

func (c *NumberController) stepSize() float64 {
	if c.Step > 0 {
		return c.Step
	}
	return (c.Max - c.Min) / 100
}

// Display implements Controller.
func (c *NumberController) Display() string {
	return strconv.FormatFloat(*c.target, 'f', decimals(c.Step), 64)
}

func decimals(step float64) int {
	if step <= 0 || step >= 1 {
		return 2
	}
	return max(0, int(math.Ceil(-math.Log10(step)-1e-9)))
}

// HueStep is how far one key press turns a color's hue, in degrees.
const HueStep = 10

// ColorController edits a color through a ColorAccessor. Key presses
// turn its hue.
type ColorController struct {
	name     string
	access   ColorAccessor
	onChange func(string)
	err      error
}

// SetName renames the row.
func (c *ColorController) SetName(name string) *ColorController {
	c.name = name
	return c
}

// OnChange sets a callback run after every edit.
func (c *ColorController) OnChange(fn func(string)) *ColorController {
	c.onChange = fn
	return c
}

// Name implements Controller.
func (c *ColorController) Name() string { return c.name }

// Value returns the current color string.
func (c *ColorController) Value() string { return c.access.Get() }

// Err returns the error from the last failed edit.
func (c *ColorController) Err() error { return c.err }

// SetValue writes a color string and fires OnChange.
func (c *ColorController) SetValue(s string) error {
	if err := c.access.Set(s); err != nil {
		c.err = fmt.Errorf("set %s: %w", c.name, err)
		return c.err
	}
	c.err = nil
	if c.onChange != nil {
		c.onChange(c.access.Get())
	}
	return nil
}

// Increment implements Controller.
func (c *ColorController) Increment() { c.turnHue(HueStep) }

// Decrement implements Controller.
func (c *ColorController) Decrement() { c.turnHue(-HueStep) }

func (c *ColorController) turnHue(deg float64) {
	col, err := render.ParseColor(c.access.Get())
	if err != nil {
		c.err = err
		return
	}
	h, s, l := col.HSL()
	if math.IsNaN(h) {
		h = 0
	}
	// Greys have no hue to turn. Start them from the pure hue instead.
	if s < 1e-6 {
		s, l = 1, 0.5
	}
	h = math.Mod(h+deg+360, 360)
	_ = c.SetValue("#" + render.ColorFromHSL(h, s, l).HexString())
}

// Display implements Controller.
func (c *ColorController) Display() string {
	return c.access.Get()
}

// ChannelController steps one 8-bit channel of a ColorController's color.
// Edits go through the color row, so its OnChange fires.
type ChannelController struct {
	name    string
	color   *ColorController
	channel int // 0 red, 1 green, 2 blue
	Step    int
}

// Name implements Controller.
func (c *ChannelController) Name() string { return c.name }

// Value returns the channel in [0, 255].
func (c *ChannelController) Value() int {
	rgb, err := c.rgb()
	if err != nil {
		return 0
	}
	return int(rgb[c.channel])
}

// Increment implements Controller.
func (c *ChannelController) Increment() { c.add(c.Step) }

// Decrement implements Controller.
func (c *ChannelController) Decrement() { c.add(-c.Step) }

func (c *ChannelController) add(delta int) {
	rgb, err := c.rgb()
	if err != nil {
		c.color.err = err
		return
	}
	rgb[c.channel] = uint8(max(0, min(255, int(rgb[c.channel])+delta)))
	_ = c.color.SetValue("#" + render.ColorFromRGB8(rgb[0], rgb[1], rgb[2]).HexString())
}

func (c *ChannelController) rgb() ([3]uint8, error) {
	col, err := render.ParseColor(c.color.Value())
	if err != nil {
		return [3]uint8{}, err
	}
	px := col.RGBA()
	return [3]uint8{px.R, px.G, px.B}, nil
}

// Display implements Controller.
func (c *ChannelController) Display() string { return strconv.Itoa(c.Value()) }
