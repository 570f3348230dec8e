package main

import (
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/scenery/internal/demo"
)

// resize carries a new terminal size from the event goroutine.
type resize struct {
	cols, rows int
}

// Keys forwarded to demos by name.
var demoKeys = []string{"up", "down", "left", "right", "enter", "h"}

// pixel maps a terminal cell to the framebuffer pixel at its center.
// Each cell covers two framebuffer rows.
func pixel(x, y int) (float64, float64) {
	return float64(x) + 0.5, float64(y)*2 + 1
}

func button(b uv.MouseButton) demo.Button {
	switch b {
	case uv.MouseRight:
		return demo.ButtonRight
	case uv.MouseMiddle:
		return demo.ButtonMiddle
	}
	return demo.ButtonLeft
}

// translate turns a terminal mouse or key event into demo events. A
// release is followed by a click.
func translate(ev uv.Event) []demo.Event {
	switch ev := ev.(type) {
	case uv.MouseClickEvent:
		x, y := pixel(ev.X, ev.Y)
		return []demo.Event{demo.PointerDown{X: x, Y: y, Button: button(ev.Button)}}
	case uv.MouseReleaseEvent:
		x, y := pixel(ev.X, ev.Y)
		return []demo.Event{
			demo.PointerUp{X: x, Y: y, Button: button(ev.Button)},
			demo.Click{X: x, Y: y},
		}
	case uv.MouseMotionEvent:
		x, y := pixel(ev.X, ev.Y)
		return []demo.Event{demo.PointerMove{X: x, Y: y}}
	case uv.MouseWheelEvent:
		switch ev.Button {
		case uv.MouseWheelUp:
			return []demo.Event{demo.Wheel{Steps: 1}}
		case uv.MouseWheelDown:
			return []demo.Event{demo.Wheel{Steps: -1}}
		}
	case uv.KeyPressEvent:
		for _, name := range demoKeys {
			if ev.MatchString(name) {
				return []demo.Event{demo.Key{Name: name}}
			}
		}
	}
	return nil
}
