package demo

import (
	"fmt"
	"math"

	"github.com/taigrr/scenery/pkg/loop"
	"github.com/taigrr/scenery/pkg/math3d"
	"github.com/taigrr/scenery/pkg/models"
	"github.com/taigrr/scenery/pkg/render"
	"github.com/taigrr/scenery/pkg/scene"
)

// PickerBoxes is how many boxes the picker scatters.
const PickerBoxes = 10

// offscreen is a pick position no ray from the view can hit.
var offscreen = math3d.V2(-100000, -100000)

// Picker scatters boxes around a camera that circles on a pole. Clicking
// outlines whatever is under the pointer.
type Picker struct {
	ctx   *Context
	Pole  *scene.Node
	Light *scene.DirectionalLight
	Boxes []*scene.Mesh
	Pick  *PickHelper

	// PickPosition is where rays are cast, in NDC.
	PickPosition math3d.Vec2
}

// NewPicker bootstraps the picker demo.
func NewPicker(width, height int, opts Options) *Picker {
	cam := render.NewPerspectiveCamera(60, 2, 0.1, 200)
	cam.SetPosition(math3d.V3(0, 0, 30))
	c := newContext("picker", width, height, cam, opts)

	black := render.MustParseColor("black")
	c.Scene.Background = &black

	pole := scene.NewNode("camera pole")
	c.Scene.Add(pole)
	cam.Parent = pole

	light := scene.NewDirectionalLight(render.Hex(0xffffff), 1)
	light.Position = math3d.V3(-1, 2, 4)
	light.AttachTo(cam)
	c.Scene.Add(light)

	geometry := models.NewBox(1, 1, 1)
	p := &Picker{
		ctx:          c,
		Pole:         pole,
		Light:        light,
		Pick:         NewPickHelper(),
		PickPosition: offscreen,
	}
	for range PickerBoxes {
		color := render.MustParseColor(fmt.Sprintf("hsl(%d, %d%%, 50%%)",
			int(c.between(0, 360)), int(c.between(50, 100))))
		box := scene.NewMesh(geometry, phong(color))
		box.Position = math3d.V3(c.between(-20, 20), c.between(-20, 20), c.between(-20, 20))
		box.Rotation = math3d.V3(c.between(0, math.Pi), c.between(0, math.Pi), 0)
		box.Scale = math3d.V3(c.between(3, 6), c.between(3, 6), c.between(3, 6))
		c.Scene.Add(box)
		p.Boxes = append(p.Boxes, box)
	}
	return p
}

// Context implements Demo.
func (p *Picker) Context() *Context { return p.ctx }

// Update turns the pole and picks at the last click.
func (p *Picker) Update(f loop.Frame) {
	p.Pole.Rotation.Y = f.Elapsed * 0.1
	p.Pick.Pick(p.PickPosition, p.ctx.Scene, p.ctx.Camera)
}

// HandleEvent moves the pick position on clicks.
func (p *Picker) HandleEvent(ev Event) {
	if e, ok := ev.(Click); ok {
		p.PickPosition = NDC(e.X, e.Y, p.ctx.Width, p.ctx.Height)
	}
}
