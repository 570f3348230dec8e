// Package demo holds the four scenes: sphere, light, picker and gltf. Each
// builds its scene graph up front and keeps all mutable state in a Context
// that the run loop and the event handlers share.
package demo

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/taigrr/scenery/pkg/controls"
	"github.com/taigrr/scenery/pkg/gui"
	"github.com/taigrr/scenery/pkg/loop"
	"github.com/taigrr/scenery/pkg/render"
	"github.com/taigrr/scenery/pkg/scene"
	"github.com/taigrr/scenery/pkg/tween"
)

// Options are the inputs a demo may use while bootstrapping.
type Options struct {
	// Seed drives the demo's random source. Zero picks a time based seed.
	Seed int64

	Texture  string // checker image for the light demo
	Panorama string // equirectangular background for the sphere demo
	Model    string // glTF model for the gltf demo

	FPS int
	Log *zap.Logger
}

// Context is everything a running demo owns.
type Context struct {
	Name string

	Scene *scene.Scene
	// Background is drawn before Scene when set.
	Background *scene.Scene

	Camera      *render.Camera
	Framebuffer *render.Framebuffer
	Rasterizer  *render.Rasterizer
	Controls    *controls.OrbitControls
	Tweens      *tween.Group
	Panel       *gui.Panel
	Log         *zap.Logger
	Rand        *rand.Rand

	Width, Height int
	Elapsed       float64

	// AutoClearColor clears the framebuffer before each pass. Drawing a
	// background scene turns it off.
	AutoClearColor bool
}

func newContext(name string, width, height int, cam *render.Camera, opts Options) *Context {
	width, height = max(width, 1), max(height, 1)
	fb := render.NewFramebuffer(width, height)

	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	c := &Context{
		Name:           name,
		Scene:          scene.New(),
		Camera:         cam,
		Framebuffer:    fb,
		Rasterizer:     render.NewRasterizer(cam, fb),
		Tweens:         tween.NewGroup(),
		Log:            log.Named(name),
		Rand:           newRand(opts.Seed),
		AutoClearColor: true,
	}
	c.Resize(width, height)
	return c
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// between returns a random value in [lo, hi).
func (c *Context) between(lo, hi float64) float64 {
	return lo + (hi-lo)*c.Rand.Float64()
}

// Resize matches the camera and buffers to a width x height view.
// Non-positive sizes are ignored.
func (c *Context) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Width, c.Height = width, height
	c.Camera.SetAspectRatio(float64(width) / float64(height))
	if c.Framebuffer.Width != width || c.Framebuffer.Height != height {
		c.Framebuffer.Resize(width, height)
		c.Rasterizer.Resize()
	}
}

// Render draws the background scene, if any, then the foreground.
func (c *Context) Render() {
	if c.Background != nil {
		c.pass(c.Background)
		c.AutoClearColor = false
	}
	c.pass(c.Scene)
}

func (c *Context) pass(s *scene.Scene) {
	if c.AutoClearColor {
		bg := render.ColorBlack
		if s.Background != nil {
			bg = s.Background.RGBA()
		}
		c.Framebuffer.Clear(bg)
	}
	s.Render(c.Rasterizer, false)
}

// Demo is a running scene.
type Demo interface {
	Context() *Context
	// Update runs the demo's own per-frame logic.
	Update(f loop.Frame)
	// HandleEvent receives input the shared handlers did not consume.
	HandleEvent(ev Event)
}

// Step advances d by one frame and draws it: tweens, then orbit
// controls, then the demo's own update, then the render passes.
func Step(d Demo, f loop.Frame) {
	c := d.Context()
	c.Elapsed = f.Elapsed
	c.Tweens.Update(f.Dt)
	if c.Controls != nil {
		c.Controls.Update(f.Dt)
	}
	d.Update(f)
	c.Render()
}

// Dispatch routes an event through orbit controls and the panel, then to
// the demo.
func Dispatch(d Demo, ev Event) {
	c := d.Context()
	switch e := ev.(type) {
	case Wheel:
		if c.Controls != nil {
			c.Controls.Zoom(e.Steps)
		}
	case PointerDown:
		if c.Controls != nil {
			mode := controls.ModeRotate
			if e.Button == ButtonRight {
				mode = controls.ModePan
			}
			c.Controls.Start(mode, e.X, e.Y)
		}
	case PointerMove:
		if c.Controls != nil {
			c.Controls.Move(e.X, e.Y, float64(c.Height))
		}
	case PointerUp:
		if c.Controls != nil {
			c.Controls.End()
		}
	case Key:
		if c.Panel != nil && c.Panel.Press(e.Name) {
			return
		}
	}
	d.HandleEvent(ev)
}
