package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taigrr/scenery/pkg/math3d"
	"github.com/taigrr/scenery/pkg/models"
	"github.com/taigrr/scenery/pkg/render"
)

func assertVec(t *testing.T, want, got math3d.Vec3) {
	t.Helper()
	assert.Truef(t, want.ApproxEqual(got, 1e-9), "want %v, got %v", want, got)
}

func TestNodeAddReparents(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	child := NewNode("child")

	a.Add(child)
	require.Len(t, a.Children(), 1)
	assert.Same(t, a, child.Parent())

	b.Add(child)
	assert.Empty(t, a.Children())
	require.Len(t, b.Children(), 1)
	assert.Same(t, b, child.Parent())

	b.Remove(child)
	assert.Empty(t, b.Children())
	assert.Nil(t, child.Parent())

	// Adding a node to itself is ignored
	a.Add(a)
	assert.Empty(t, a.Children())
}

func TestNodeWorldMatrix(t *testing.T) {
	pole := NewNode("pole")
	pole.Rotation.Y = math.Pi / 2

	arm := NewNode("arm")
	arm.Position = math3d.V3(0, 0, 10)
	arm.Scale = math3d.V3(2, 2, 2)
	pole.Add(arm)

	tip := NewNode("tip")
	tip.Position = math3d.V3(0, 1, 0)
	arm.Add(tip)

	assertVec(t, math3d.V3(10, 0, 0), arm.WorldPosition())
	assertVec(t, math3d.V3(10, 2, 0), tip.WorldPosition())
}

func TestNodeAttachTo(t *testing.T) {
	s := New()
	cam := render.NewCamera()
	cam.SetPosition(math3d.V3(0, 0, 30))

	light := NewDirectionalLight(Color{R: 1, G: 1, B: 1}, 1)
	light.Position = math3d.V3(-1, 2, 4)
	s.Add(light)
	light.AttachTo(cam)

	assertVec(t, math3d.V3(-1, 2, 34), light.WorldPosition())
	require.Len(t, s.Lights(), 1, "attached light stays discoverable")

	light.AttachTo(nil)
	assertVec(t, math3d.V3(-1, 2, 4), light.WorldPosition())
}

func TestTraverseVisible(t *testing.T) {
	s := New()
	hidden := NewNode("hidden")
	hidden.Visible = false
	hidden.Add(NewMesh(models.NewBox(1, 1, 1), nil))
	s.Add(hidden, NewMesh(models.NewSphere(1, 8, 6), nil))

	var all, visible int
	s.Traverse(func(Object) { all++ })
	s.TraverseVisible(func(Object) { visible++ })

	assert.Equal(t, 3, all)
	assert.Equal(t, 1, visible)
	assert.Len(t, s.Meshes(), 2)
}

func TestLightsResolve(t *testing.T) {
	white := Color{R: 1, G: 1, B: 1}
	point := NewPointLight(white, 1.25, 100)
	point.Position = math3d.V3(0, 10, 10)

	dir := NewDirectionalLight(white, 1)
	dir.Position = math3d.V3(0, 5, 0)
	dir.Target = math3d.V3(0, 1, 0)

	s := New()
	s.Add(point, dir, NewAmbientLight(white, 0.2), NewHemisphereLight(white, Color{}, 0.5))

	lights := s.Lights()
	require.Len(t, lights, 4)

	assert.Equal(t, render.LightPoint, lights[0].Kind)
	assertVec(t, math3d.V3(0, 10, 10), lights[0].Position)
	assert.Equal(t, 1.25, lights[0].Intensity)
	assert.Equal(t, 100.0, lights[0].Distance)
	assert.Equal(t, 1.0, lights[0].Decay)

	assert.Equal(t, render.LightDirectional, lights[1].Kind)
	assertVec(t, math3d.V3(0, 4, 0), lights[1].Direction)

	assert.Equal(t, render.LightAmbient, lights[2].Kind)
	assert.Equal(t, render.LightHemisphere, lights[3].Kind)
}

func TestMaterialSurface(t *testing.T) {
	m := NewStandardMaterial(Color{R: 1})
	s := m.Surface()
	assert.Equal(t, render.CullBack, s.Cull)
	assert.False(t, s.NoDepthWrite)
	assert.False(t, s.Unlit)
	assert.Equal(t, render.MapUV, s.Mapping)

	m.Side = BackSide
	m.DepthWrite = false
	m.Equirect = true
	s = m.Surface()
	assert.Equal(t, render.CullFront, s.Cull)
	assert.True(t, s.NoDepthWrite)
	assert.Equal(t, render.MapEquirect, s.Mapping)

	m.Side = DoubleSide
	assert.Equal(t, render.CullNone, m.Surface().Cull)

	assert.True(t, NewBasicMaterial(Color{}).Surface().Unlit)
}

func TestBoxHelper(t *testing.T) {
	box := NewMesh(models.NewBox(2, 2, 2), nil)
	box.Position = math3d.V3(5, 0, 0)
	box.Scale = math3d.V3(3, 1, 1)

	h := NewBoxHelper(box)
	assertVec(t, math3d.V3(2, -1, -1), h.Box().Min)
	assertVec(t, math3d.V3(8, 1, 1), h.Box().Max)
	assert.Equal(t, render.ColorYellow, h.Color)

	box.Position = math3d.Zero3()
	h.Update()
	assertVec(t, math3d.V3(-3, -1, -1), h.Box().Min)

	assert.True(t, NewBoxHelper(nil).Box().IsEmpty())
}

func TestPointLightHelperUpdate(t *testing.T) {
	light := NewPointLight(Color{R: 1, G: 1, B: 1}, 1, 0)
	light.Position = math3d.V3(0, 10, 0)
	h := NewPointLightHelper(light, 0.5)
	assertVec(t, math3d.V3(0, 10, 0), h.at)

	light.Position.X = 3
	light.Color = Color{R: 1}
	assertVec(t, math3d.V3(0, 10, 0), h.at)

	h.Update()
	assertVec(t, math3d.V3(3, 10, 0), h.at)
	assert.Equal(t, render.RGB(255, 0, 0), h.color)
}

func TestSceneRender(t *testing.T) {
	fb := render.NewFramebuffer(256, 128)
	cam := render.NewPerspectiveCamera(45, 2, 0.1, 100)
	cam.SetPosition(math3d.V3(0, 0, 20))
	r := render.NewRasterizer(cam, fb)

	s := New()
	bg := Color{R: 0.2, G: 0.2, B: 0.2}
	s.Background = &bg
	box := NewMesh(models.NewBox(6, 6, 6), NewBasicMaterial(Color{G: 1}))
	s.Add(box, NewBoxHelper(box))

	s.Render(r, true)
	assert.Equal(t, render.RGB(0, 255, 0), fb.GetPixel(128, 64))
	assert.Equal(t, bg.RGBA(), fb.GetPixel(0, 0))
	filled := countColor(fb, render.RGB(0, 255, 0))

	// Without clearing, earlier color survives outside the box
	fb.Clear(render.ColorWhite)
	s.Render(r, false)
	assert.Equal(t, render.ColorWhite, fb.GetPixel(0, 0))

	box.Material.Wireframe = true
	fb.Clear(render.ColorBlack)
	s.Render(r, false)
	wire := countColor(fb, render.RGB(0, 255, 0))
	assert.Positive(t, wire)
	assert.Less(t, wire, filled, "wireframe leaves gaps between edges")
}

func countColor(fb *render.Framebuffer, c render.Color) int {
	n := 0
	for _, p := range fb.Pixels {
		if p == c {
			n++
		}
	}
	return n
}
