package demo

import (
	"go.uber.org/zap"

	"github.com/taigrr/scenery/pkg/controls"
	"github.com/taigrr/scenery/pkg/loop"
	"github.com/taigrr/scenery/pkg/math3d"
	"github.com/taigrr/scenery/pkg/models"
	"github.com/taigrr/scenery/pkg/render"
	"github.com/taigrr/scenery/pkg/scene"
)

// ModelSize is the edge of the box a loaded model is scaled to fit.
const ModelSize = 4

// placeholderRadius sizes the sphere shown when no model is loaded.
const placeholderRadius = 2

// GLTF shows a model under a point light. Dragging recolors it.
type GLTF struct {
	ctx     *Context
	Light   *scene.PointLight
	Model   *scene.Mesh
	Recolor Recolor

	// Loaded is false when Model is the placeholder.
	Loaded bool
}

// NewGLTF bootstraps the gltf demo. A model that fails to load is logged
// and replaced by a placeholder sphere.
func NewGLTF(width, height int, opts Options) *GLTF {
	cam := render.NewPerspectiveCamera(45, float64(width)/float64(max(height, 1)), 0.1, 100)
	cam.SetPosition(math3d.V3(0, 10, 20))
	c := newContext("gltf", width, height, cam, opts)

	black := render.MustParseColor("black")
	c.Scene.Background = &black

	light := scene.NewPointLight(render.Hex(0xffffff), 1, 100)
	light.Intensity = 1.25
	light.Position = math3d.V3(0, 10, 10)
	c.Scene.Add(light)

	c.Controls = controls.NewOrbitControls(cam, opts.FPS)
	c.Controls.Target = math3d.V3(0, 5, 0)
	c.Controls.Update(0)

	g := &GLTF{ctx: c, Light: light}
	g.Model, g.Loaded = buildModel(opts.Model, c.Log)
	g.Model.Position = c.Controls.Target
	c.Scene.Add(g.Model)
	g.Recolor.Target = &g.Model.Material.Color
	return g
}

func buildModel(path string, log *zap.Logger) (*scene.Mesh, bool) {
	if path != "" {
		geom, tex, err := loadModel(path, log)
		if err == nil {
			geom.FitTo(ModelSize)
			base := geom.BaseColor()
			mat := scene.NewStandardMaterial(scene.Color{R: base[0], G: base[1], B: base[2]})
			if len(geom.Materials) > 0 {
				mat.Roughness = geom.Materials[0].Roughness
			}
			mat.Map = tex
			return scene.NewMesh(geom, mat), true
		}
		log.Warn("showing placeholder", zap.String("path", path), zap.Error(err))
	}
	return scene.NewMesh(models.NewSphere(placeholderRadius, 32, 16), nil), false
}

// Context implements Demo.
func (g *GLTF) Context() *Context { return g.ctx }

// Update implements Demo.
func (g *GLTF) Update(loop.Frame) {}

// HandleEvent implements Demo.
func (g *GLTF) HandleEvent(ev Event) {
	g.Recolor.Handle(g.ctx, ev)
}
