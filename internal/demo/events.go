package demo

// Event is an input event. Pointer coordinates are framebuffer pixels
// with the origin at the top left.
type Event interface {
	event()
}

// Button identifies a mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// PointerDown is a button press.
type PointerDown struct {
	X, Y   float64
	Button Button
}

// PointerUp is a button release.
type PointerUp struct {
	X, Y   float64
	Button Button
}

// PointerMove is pointer motion, with or without a button held.
type PointerMove struct {
	X, Y float64
}

// Click follows the PointerUp of a press and release.
type Click struct {
	X, Y float64
}

// Wheel is a number of scroll notches. Positive steps zoom in.
type Wheel struct {
	Steps int
}

// Key is a key press by name ("up", "enter", "h", ...).
type Key struct {
	Name string
}

func (PointerDown) event() {}
func (PointerUp) event()   {}
func (PointerMove) event() {}
func (Click) event()       {}
func (Wheel) event()       {}
func (Key) event()         {}
