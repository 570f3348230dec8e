package render

import (
	"math"

	"github.com/taigrr/scenery/pkg/math3d"
)

// AABB is an axis-aligned bounding box. A box with Min above Max on any
// axis is empty.
type AABB struct {
	Min math3d.Vec3
	Max math3d.Vec3
}

func NewAABB(min, max math3d.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns the identity for Union and ExpandByPoint.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{Min: math3d.V3(inf, inf, inf), Max: math3d.V3(-inf, -inf, -inf)}
}

func (b AABB) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

func (b AABB) Center() math3d.Vec3 { return b.Min.Lerp(b.Max, 0.5) }
func (b AABB) Size() math3d.Vec3   { return b.Max.Sub(b.Min) }

// ExpandByPoint grows the box to include p.
func (b AABB) ExpandByPoint(p math3d.Vec3) AABB {
	return AABB{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Union returns the smallest box holding both. Empty boxes contribute
// nothing.
func (b AABB) Union(o AABB) AABB {
	switch {
	case b.IsEmpty():
		return o
	case o.IsEmpty():
		return b
	}
	return AABB{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

// Corners lists the eight corners. Bits 0, 1 and 2 of the index pick the
// max side of X, Y and Z.
func (b AABB) Corners() [8]math3d.Vec3 {
	var c [8]math3d.Vec3
	for i := range c {
		c[i] = b.corner(i&1 != 0, i&2 != 0, i&4 != 0)
	}
	return c
}

func (b AABB) corner(maxX, maxY, maxZ bool) math3d.Vec3 {
	p := b.Min
	if maxX {
		p.X = b.Max.X
	}
	if maxY {
		p.Y = b.Max.Y
	}
	if maxZ {
		p.Z = b.Max.Z
	}
	return p
}

// Transform bounds the box after m is applied to it.
func (b AABB) Transform(m math3d.Mat4) AABB {
	if b.IsEmpty() {
		return b
	}
	out := EmptyAABB()
	for _, c := range b.Corners() {
		out = out.ExpandByPoint(m.MulVec3(c))
	}
	return out
}

// ContainsPoint reports whether p lies inside or on the box.
func (b AABB) ContainsPoint(p math3d.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}
