package render

import (
	"github.com/taigrr/scenery/pkg/math3d"
)

// DrawBox outlines a world-space box. Corners that differ in exactly one
// index bit share an edge.
func (r *Rasterizer) DrawBox(box AABB, color Color) {
	c := box.Corners()
	for i := range c {
		for bit := 1; bit < len(c); bit <<= 1 {
			if i&bit == 0 {
				r.DrawLine3D(c[i], c[i|bit], color)
			}
		}
	}
}

// DrawOctahedron draws a wire octahedron, the gizmo used for point lights.
func (r *Rasterizer) DrawOctahedron(center math3d.Vec3, radius float64, color Color) {
	top := center.Add(math3d.V3(0, radius, 0))
	bottom := center.Add(math3d.V3(0, -radius, 0))
	ring := [4]math3d.Vec3{
		center.Add(math3d.V3(radius, 0, 0)),
		center.Add(math3d.V3(0, 0, radius)),
		center.Add(math3d.V3(-radius, 0, 0)),
		center.Add(math3d.V3(0, 0, -radius)),
	}
	for i, p := range ring {
		r.DrawLine3D(p, ring[(i+1)%len(ring)], color)
		r.DrawLine3D(p, top, color)
		r.DrawLine3D(p, bottom, color)
	}
}
