package scene

import (
	"github.com/taigrr/scenery/pkg/math3d"
	"github.com/taigrr/scenery/pkg/render"
)

// Helper is a scene object drawn as lines on top of the shaded pass.
type Helper interface {
	Object
	DrawHelper(r *render.Rasterizer)
}

// BoxHelper outlines the world-space bounding box of an object.
type BoxHelper struct {
	Node
	Target Object
	Color  render.Color
	box    render.AABB
}

// NewBoxHelper creates a yellow box helper around target. A nil target
// produces an empty helper that draws nothing.
func NewBoxHelper(target Object) *BoxHelper {
	h := &BoxHelper{Target: target, Color: render.ColorYellow}
	h.init("box helper")
	h.Update()
	return h
}

// Update recomputes the box from the target's current transform.
func (h *BoxHelper) Update() {
	h.box = WorldBounds(h.Target)
}

// Box returns the last computed world box.
func (h *BoxHelper) Box() render.AABB {
	return h.box
}

// DrawHelper implements Helper.
func (h *BoxHelper) DrawHelper(r *render.Rasterizer) {
	if h.box.IsEmpty() {
		return
	}
	r.DrawBox(h.box, h.Color)
}

// WorldBounds returns the world box around every mesh in obj's subtree,
// or an empty box when there are none.
func WorldBounds(obj Object) render.AABB {
	box := render.EmptyAABB()
	if obj == nil {
		return box
	}
	if m, ok := obj.(*Mesh); ok {
		box = box.Union(m.WorldBounds())
	}
	obj.Base().Traverse(func(o Object) {
		if m, ok := o.(*Mesh); ok {
			box = box.Union(m.WorldBounds())
		}
	})
	return box
}

// PointLightHelper marks a point light with a small wire octahedron in the
// light's color.
type PointLightHelper struct {
	Node
	Light *PointLight
	Size  float64

	color render.Color
	at    math3d.Vec3
}

// NewPointLightHelper creates a helper for light.
func NewPointLightHelper(light *PointLight, size float64) *PointLightHelper {
	h := &PointLightHelper{Light: light, Size: size}
	h.init("point light helper")
	h.Update()
	return h
}

// Update re-reads the light's position and color.
func (h *PointLightHelper) Update() {
	h.at = h.Light.WorldPosition()
	h.color = h.Light.Color.RGBA()
}

// DrawHelper implements Helper.
func (h *PointLightHelper) DrawHelper(r *render.Rasterizer) {
	r.DrawOctahedron(h.at, h.Size, h.color)
}
