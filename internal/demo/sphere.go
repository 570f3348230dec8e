package demo

import (
	"github.com/taigrr/scenery/pkg/controls"
	"github.com/taigrr/scenery/pkg/loop"
	"github.com/taigrr/scenery/pkg/math3d"
	"github.com/taigrr/scenery/pkg/models"
	"github.com/taigrr/scenery/pkg/render"
	"github.com/taigrr/scenery/pkg/scene"
	"github.com/taigrr/scenery/pkg/tween"
)

// Sphere is a glossy sphere that scales in over a panorama, orbits on its
// own and changes color while dragged.
type Sphere struct {
	ctx     *Context
	Mesh    *scene.Mesh
	Light   *scene.PointLight
	BgMesh  *scene.Mesh
	Intro   *tween.Timeline
	Recolor Recolor
}

// NewSphere bootstraps the sphere demo.
func NewSphere(width, height int, opts Options) *Sphere {
	cam := render.NewPerspectiveCamera(45, float64(width)/float64(max(height, 1)), 0.1, 100)
	cam.SetPosition(math3d.V3(0, 0, 20))
	c := newContext("sphere", width, height, cam, opts)

	mat := scene.NewStandardMaterial(render.MustParseColor("#00ff83"))
	mat.Roughness = 0.2
	mesh := scene.NewMesh(models.NewSphere(3, 64, 64), mat)
	c.Scene.Add(mesh)

	light := scene.NewPointLight(render.Hex(0xffffff), 1, 100)
	light.Intensity = 1.25
	light.Position = math3d.V3(0, 10, 10)
	c.Scene.Add(light)

	c.Controls = controls.NewOrbitControls(cam, opts.FPS)
	c.Controls.EnableDamping = true
	c.Controls.EnablePan = false
	c.Controls.AutoRotate = true
	c.Controls.AutoRotateSpeed = 0.618

	bgMat := scene.NewBasicMaterial(render.Hex(0xffffff))
	bgMat.Map = loadPanorama(opts.Panorama, c.Log)
	bgMat.Equirect = true
	bgMat.Side = scene.BackSide
	bgMat.DepthWrite = false
	bgMesh := scene.NewMesh(models.NewBox(5, 5, 5), bgMat)
	c.Background = scene.New()
	c.Background.Add(bgMesh)

	intro := tween.NewTimeline().
		FromTo(tween.Vec3(&mesh.Scale), tween.Values(math3d.Zero3()), tween.Values(math3d.V3(1, 1, 1)), 0)
	c.Tweens.Add(&mesh.Scale, intro)

	return &Sphere{
		ctx:     c,
		Mesh:    mesh,
		Light:   light,
		BgMesh:  bgMesh,
		Intro:   intro,
		Recolor: Recolor{Target: &mat.Color},
	}
}

// Context implements Demo.
func (s *Sphere) Context() *Context { return s.ctx }

// Update keeps the panorama box centred on the camera.
func (s *Sphere) Update(loop.Frame) {
	s.BgMesh.Position = s.ctx.Camera.Position
}

// HandleEvent implements Demo.
func (s *Sphere) HandleEvent(ev Event) {
	s.Recolor.Handle(s.ctx, ev)
}
