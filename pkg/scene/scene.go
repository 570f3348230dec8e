package scene

import (
	"github.com/taigrr/scenery/pkg/render"
)

// Scene is the root of a graph.
type Scene struct {
	Node

	// Background is the clear color, or nil to leave the framebuffer as is.
	Background *Color
}

// New creates an empty scene.
func New() *Scene {
	s := &Scene{}
	s.init("scene")
	return s
}

// Lights resolves every visible light in the graph.
func (s *Scene) Lights() []render.Light {
	var lights []render.Light
	s.TraverseVisible(func(o Object) {
		if l, ok := o.(Light); ok {
			lights = append(lights, l.Resolve())
		}
	})
	return lights
}

// Meshes returns every mesh in the graph, visible or not.
func (s *Scene) Meshes() []*Mesh {
	var meshes []*Mesh
	s.Traverse(func(o Object) {
		if m, ok := o.(*Mesh); ok {
			meshes = append(meshes, m)
		}
	})
	return meshes
}

// Render draws the scene through r: meshes first, then helpers. When
// clearColor is set and the scene has a background, the framebuffer is
// cleared to it first. Depth is always cleared.
func (s *Scene) Render(r *render.Rasterizer, clearColor bool) {
	if clearColor && s.Background != nil {
		r.Framebuffer().Clear(s.Background.RGBA())
	}
	r.BeginFrame()

	lights := s.Lights()
	var helpers []Helper
	s.TraverseVisible(func(o Object) {
		switch v := o.(type) {
		case *Mesh:
			v.draw(r, lights)
		case Helper:
			helpers = append(helpers, v)
		}
	})

	for _, h := range helpers {
		h.DrawHelper(r)
	}
}
