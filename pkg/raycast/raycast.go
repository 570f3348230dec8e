// Package raycast finds scene meshes under a ray, typically one cast from
// the camera through a pointer position.
package raycast

import (
	"cmp"
	"math"
	"slices"

	"github.com/taigrr/scenery/pkg/math3d"
	"github.com/taigrr/scenery/pkg/render"
	"github.com/taigrr/scenery/pkg/scene"
)

// Ray is a half line. Direction is kept unit length.
type Ray struct {
	Origin    math3d.Vec3
	Direction math3d.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) math3d.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

const epsilon = 1e-9

// IntersectTriangle returns the distance to a clockwise-wound triangle.
// front reports whether the ray meets the triangle's front face.
func (r Ray) IntersectTriangle(a, b, c math3d.Vec3) (t float64, front, ok bool) {
	// Möller-Trumbore
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := r.Direction.Cross(e2)
	det := e1.Dot(p)
	if math.Abs(det) < epsilon {
		return 0, false, false
	}
	inv := 1 / det

	s := r.Origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false, false
	}

	q := s.Cross(e1)
	v := r.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false, false
	}

	t = e2.Dot(q) * inv
	if t < 0 {
		return 0, false, false
	}

	// det = Direction . ((c-a) x (b-a)), the clockwise face normal
	return t, det < 0, true
}

// IntersectAABB reports whether the ray meets box at a distance <= far.
func (r Ray) IntersectAABB(box render.AABB, far float64) bool {
	if box.IsEmpty() {
		return false
	}
	tmin, tmax := 0.0, far
	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float64{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float64{box.Max.X, box.Max.Y, box.Max.Z}

	for i := range 3 {
		if math.Abs(dir[i]) < epsilon {
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return false
			}
			continue
		}
		t1 := (lo[i] - origin[i]) / dir[i]
		t2 := (hi[i] - origin[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return false
		}
	}
	return true
}

// Intersection is one hit of a ray on a mesh.
type Intersection struct {
	Distance float64
	Point    math3d.Vec3
	Face     int
	Object   *scene.Mesh
}

// Raycaster casts a ray into a scene. Only meshes are hit; helpers and
// lines are ignored.
type Raycaster struct {
	Ray  Ray
	Near float64
	Far  float64
}

// New creates a raycaster with an unbounded range.
func New() *Raycaster {
	return &Raycaster{Far: math.Inf(1)}
}

// Set points the ray from origin along direction.
func (rc *Raycaster) Set(origin, direction math3d.Vec3) {
	rc.Ray = Ray{Origin: origin, Direction: direction.Normalize()}
}

// SetFromCamera casts from the camera's eye through a point in normalized
// device coordinates (x and y in [-1, 1], +y up).
func (rc *Raycaster) SetFromCamera(ndc math3d.Vec2, cam *render.Camera) {
	origin := cam.WorldPosition()
	through := cam.Unproject(math3d.V3(ndc.X, ndc.Y, 0.5))
	rc.Set(origin, through.Sub(origin))
}

// IntersectObjects returns every hit on the given objects, nearest first.
// With recursive set, descendants are tested too.
func (rc *Raycaster) IntersectObjects(objects []scene.Object, recursive bool) []Intersection {
	var hits []Intersection
	visit := func(o scene.Object) {
		if m, ok := o.(*scene.Mesh); ok {
			hits = rc.intersectMesh(m, hits)
		}
	}
	for _, o := range objects {
		visit(o)
		if recursive {
			o.Base().Traverse(visit)
		}
	}

	slices.SortStableFunc(hits, func(a, b Intersection) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
	return hits
}

// IntersectObject is IntersectObjects for a single object.
func (rc *Raycaster) IntersectObject(object scene.Object, recursive bool) []Intersection {
	return rc.IntersectObjects([]scene.Object{object}, recursive)
}

func (rc *Raycaster) intersectMesh(m *scene.Mesh, hits []Intersection) []Intersection {
	if m.Geometry == nil || !rc.Ray.IntersectAABB(m.WorldBounds(), rc.Far) {
		return hits
	}

	world := m.WorldMatrix()
	side := scene.FrontSide
	if m.Material != nil {
		side = m.Material.Side
	}

	geom := m.Geometry
	for i, f := range geom.Faces {
		a := world.MulVec3(geom.Vertices[f.V[0]].Position)
		b := world.MulVec3(geom.Vertices[f.V[1]].Position)
		c := world.MulVec3(geom.Vertices[f.V[2]].Position)

		t, front, ok := rc.Ray.IntersectTriangle(a, b, c)
		if !ok || t < rc.Near || t > rc.Far {
			continue
		}
		if (side == scene.FrontSide && !front) || (side == scene.BackSide && front) {
			continue
		}

		hits = append(hits, Intersection{
			Distance: t,
			Point:    rc.Ray.At(t),
			Face:     i,
			Object:   m,
		})
	}
	return hits
}
