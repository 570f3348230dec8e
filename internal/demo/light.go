package demo

import (
	"math"

	"github.com/taigrr/scenery/pkg/controls"
	"github.com/taigrr/scenery/pkg/gui"
	"github.com/taigrr/scenery/pkg/loop"
	"github.com/taigrr/scenery/pkg/math3d"
	"github.com/taigrr/scenery/pkg/models"
	"github.com/taigrr/scenery/pkg/render"
	"github.com/taigrr/scenery/pkg/scene"
)

// phongRoughness stands in for a phong material's default shininess.
const phongRoughness = 0.5

// Light is a checkered floor, a cube and a sphere under a point light whose
// color, intensity and position are edited from the panel.
type Light struct {
	ctx    *Context
	Plane  *scene.Mesh
	Cube   *scene.Mesh
	Sphere *scene.Mesh
	Light  *scene.PointLight
	Helper *scene.PointLightHelper
}

// NewLight bootstraps the light demo.
func NewLight(width, height int, opts Options) *Light {
	cam := render.NewPerspectiveCamera(45, float64(width)/float64(max(height, 1)), 0.1, 100)
	cam.SetPosition(math3d.V3(0, 10, 20))
	c := newContext("light", width, height, cam, opts)

	black := render.Hex(0x000000)
	c.Scene.Background = &black

	c.Controls = controls.NewOrbitControls(cam, opts.FPS)
	c.Controls.Target = math3d.V3(0, 5, 0)
	c.Controls.Update(0)

	const planeSize = 40
	planeMat := phong(render.Hex(0xffffff))
	planeMat.Map = loadChecker(opts.Texture, c.Log)
	planeMat.Repeat = math3d.V2(planeSize/2, planeSize/2)
	planeMat.Side = scene.DoubleSide
	plane := scene.NewMesh(models.NewPlane(planeSize, planeSize, 1, 1), planeMat)
	plane.Rotation.X = -math.Pi / 2
	c.Scene.Add(plane)

	cube := scene.NewMesh(models.NewBox(4, 4, 4), phong(render.MustParseColor("#8AC")))
	cube.Position = math3d.V3(5, 2, 0)
	c.Scene.Add(cube)

	sphere := scene.NewMesh(models.NewSphere(3, 32, 16), phong(render.MustParseColor("#CA8")))
	sphere.Position = math3d.V3(-4, 5, 0)
	c.Scene.Add(sphere)

	light := scene.NewPointLight(render.Hex(0xffffff), 1, 0)
	light.Position = math3d.V3(0, 10, 0)
	c.Scene.Add(light)

	helper := scene.NewPointLightHelper(light, 1)
	c.Scene.Add(helper)

	c.Panel = gui.New("Controls")
	color := c.Panel.AddColor(gui.ColorOf(&light.Color)).SetName("color").OnChange(func(string) { helper.Update() })
	c.Panel.Add(&light.Intensity, 0, 2, 0.01).SetName("intensity")
	gui.MakeXYZ(&c.Panel.Folder, "position", &light.Position, helper.Update)
	gui.MakeRGB(&c.Panel.Folder, "color rgb", color)

	return &Light{
		ctx:    c,
		Plane:  plane,
		Cube:   cube,
		Sphere: sphere,
		Light:  light,
		Helper: helper,
	}
}

func phong(color scene.Color) *scene.Material {
	m := scene.NewStandardMaterial(color)
	m.Roughness = phongRoughness
	return m
}

// Context implements Demo.
func (l *Light) Context() *Context { return l.ctx }

// Update implements Demo.
func (l *Light) Update(loop.Frame) {}

// HandleEvent implements Demo.
func (l *Light) HandleEvent(Event) {}
