// Package controls moves a camera around a target in response to pointer
// input: rotate by dragging, zoom with the wheel, pan with a modifier.
package controls

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/scenery/pkg/math3d"
	"github.com/taigrr/scenery/pkg/render"
)

const polarEpsilon = 1e-6

// zoomStep is the distance factor of one wheel notch.
const zoomStep = 0.95

// axis holds the part of a queued turn not yet applied. With damping the
// remainder springs toward zero, so the full turn lands over several
// frames without overshoot.
type axis struct {
	remaining float64
	speed     float64
	spring    harmonica.Spring
}

func newAxis(fps int) axis {
	// Frequency 4 with damping 1 is critically damped
	return axis{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

// step returns how much of the turn to apply this frame.
func (a *axis) step(damped bool) float64 {
	prev := a.remaining
	if damped {
		a.remaining, a.speed = a.spring.Update(a.remaining, a.speed, 0)
	} else {
		a.remaining, a.speed = 0, 0
	}
	return prev - a.remaining
}

// Mode is what a pointer drag does.
type Mode int

const (
	ModeNone Mode = iota
	ModeRotate
	ModePan
)

// OrbitControls orbits a camera around Target.
type OrbitControls struct {
	Camera *render.Camera
	Target math3d.Vec3

	EnableDamping bool
	EnableRotate  bool
	EnableZoom    bool
	EnablePan     bool

	// AutoRotate spins around the target; speed 1 is one turn per minute.
	AutoRotate      bool
	AutoRotateSpeed float64

	RotateSpeed float64
	ZoomSpeed   float64

	MinDistance   float64
	MaxDistance   float64
	MinPolarAngle float64
	MaxPolarAngle float64

	theta, phi axis
	scale      float64
	pan        math3d.Vec3

	mode         Mode
	lastX, lastY float64
}

// NewOrbitControls attaches controls to cam, looking at the origin. fps
// sets the damping spring's time step.
func NewOrbitControls(cam *render.Camera, fps int) *OrbitControls {
	if fps <= 0 {
		fps = 60
	}
	c := &OrbitControls{
		Camera:          cam,
		EnableRotate:    true,
		EnableZoom:      true,
		EnablePan:       true,
		AutoRotateSpeed: 2,
		RotateSpeed:     1,
		ZoomSpeed:       1,
		MaxDistance:     math.Inf(1),
		MaxPolarAngle:   math.Pi,
		theta:           newAxis(fps),
		phi:             newAxis(fps),
		scale:           1,
	}
	return c
}

// Azimuth is the camera's angle around the target's Y axis.
func (c *OrbitControls) Azimuth() float64 {
	return math3d.SphericalFrom(c.Camera.Position.Sub(c.Target)).Theta
}

// Polar is the camera's angle down from the target's +Y axis.
func (c *OrbitControls) Polar() float64 {
	return math3d.SphericalFrom(c.Camera.Position.Sub(c.Target)).Phi
}

// Distance is the camera's distance from the target.
func (c *OrbitControls) Distance() float64 {
	return c.Camera.Position.Distance(c.Target)
}

// Rotate queues a turn: left moves the camera to the left around the
// target, up moves it toward the top pole.
func (c *OrbitControls) Rotate(left, up float64) {
	c.theta.remaining -= left
	c.phi.remaining -= up
}

// Zoom queues wheel notches. Positive steps move closer.
func (c *OrbitControls) Zoom(steps int) {
	if !c.EnableZoom || steps == 0 {
		return
	}
	c.scale *= math.Pow(zoomStep, c.ZoomSpeed*float64(steps))
}

// Pan shifts the target by a pointer delta in pixels of a view viewHeight
// pixels tall, so a drag across the view moves by its visible extent.
func (c *OrbitControls) Pan(dx, dy, viewHeight float64) {
	if !c.EnablePan || viewHeight <= 0 {
		return
	}
	extent := c.Distance() * math.Tan(c.Camera.FOV/2) * 2 / viewHeight
	right := c.Camera.Right().Scale(-dx * extent)
	up := c.Camera.Up().Scale(dy * extent)
	c.pan = c.pan.Add(right).Add(up)
}

// Start begins a drag at (x, y).
func (c *OrbitControls) Start(mode Mode, x, y float64) {
	switch {
	case mode == ModeRotate && !c.EnableRotate, mode == ModePan && !c.EnablePan:
		mode = ModeNone
	}
	c.mode = mode
	c.lastX, c.lastY = x, y
}

// Move continues a drag. A full view height of motion turns the camera
// once around.
func (c *OrbitControls) Move(x, y, viewHeight float64) {
	dx, dy := x-c.lastX, y-c.lastY
	c.lastX, c.lastY = x, y
	if viewHeight <= 0 {
		return
	}

	switch c.mode {
	case ModeRotate:
		turn := 2 * math.Pi * c.RotateSpeed / viewHeight
		c.Rotate(dx*turn, dy*turn)
	case ModePan:
		c.Pan(dx, dy, viewHeight)
	}
}

// End finishes a drag.
func (c *OrbitControls) End() {
	c.mode = ModeNone
}

// Dragging reports whether a drag is in progress.
func (c *OrbitControls) Dragging() bool {
	return c.mode != ModeNone
}

// Update applies queued motion and auto-rotation for a frame of dt
// seconds, then places and aims the camera. It reports whether the camera
// moved.
func (c *OrbitControls) Update(dt float64) bool {
	if c.AutoRotate && c.mode == ModeNone {
		c.Rotate(2*math.Pi/60*c.AutoRotateSpeed*dt, 0)
	}

	before := c.Camera.Position
	offset := c.Camera.Position.Sub(c.Target)
	s := math3d.SphericalFrom(offset)
	if s.Radius == 0 {
		s = math3d.Spherical{Radius: polarEpsilon, Phi: math.Pi / 2}
	}

	s.Theta += c.theta.step(c.EnableDamping)
	s.Phi += c.phi.step(c.EnableDamping)
	s.Phi = math3d.Clamp(s.Phi, math.Max(c.MinPolarAngle, polarEpsilon), math.Min(c.MaxPolarAngle, math.Pi-polarEpsilon))

	s.Radius = math3d.Clamp(s.Radius*c.scale, c.MinDistance, c.MaxDistance)
	c.scale = 1

	c.Target = c.Target.Add(c.pan)
	c.pan = math3d.Zero3()

	c.Camera.SetPosition(c.Target.Add(s.Vec3()))
	c.Camera.LookAt(c.Target)
	return !before.ApproxEqual(c.Camera.Position, 1e-12)
}
