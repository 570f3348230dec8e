package raycast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taigrr/scenery/pkg/math3d"
	"github.com/taigrr/scenery/pkg/models"
	"github.com/taigrr/scenery/pkg/render"
	"github.com/taigrr/scenery/pkg/scene"
)

func newBox(z float64, side scene.Side) *scene.Mesh {
	mat := scene.NewStandardMaterial(scene.Color{R: 1, G: 1, B: 1})
	mat.Side = side
	m := scene.NewMesh(models.NewBox(2, 2, 2), mat)
	m.Position = math3d.V3(0, 0, z)
	return m
}

func downZ() *Raycaster {
	rc := New()
	rc.Set(math3d.V3(0.3, 0.2, 10), math3d.V3(0, 0, -1))
	return rc
}

func TestIntersectTriangleFacing(t *testing.T) {
	ray := Ray{Origin: math3d.V3(0.2, 0.2, 5), Direction: math3d.V3(0, 0, -1)}

	// Clockwise seen from +Z
	a, b, c := math3d.V3(0, 0, 0), math3d.V3(0, 1, 0), math3d.V3(1, 0, 0)
	dist, front, ok := ray.IntersectTriangle(a, b, c)
	require.True(t, ok)
	assert.InDelta(t, 5, dist, 1e-9)
	assert.True(t, front)

	_, front, ok = ray.IntersectTriangle(a, c, b)
	require.True(t, ok)
	assert.False(t, front)

	_, _, ok = ray.IntersectTriangle(a.Add(math3d.V3(5, 0, 0)), b.Add(math3d.V3(5, 0, 0)), c.Add(math3d.V3(5, 0, 0)))
	assert.False(t, ok)

	behind := Ray{Origin: math3d.V3(0.2, 0.2, -5), Direction: math3d.V3(0, 0, -1)}
	_, _, ok = behind.IntersectTriangle(a, b, c)
	assert.False(t, ok)
}

func TestIntersectAABB(t *testing.T) {
	box := render.NewAABB(math3d.V3(-1, -1, -1), math3d.V3(1, 1, 1))
	ray := Ray{Origin: math3d.V3(0, 0, 10), Direction: math3d.V3(0, 0, -1)}

	assert.True(t, ray.IntersectAABB(box, math.Inf(1)))
	assert.False(t, ray.IntersectAABB(box, 5), "box beyond far")
	assert.False(t, ray.IntersectAABB(render.EmptyAABB(), math.Inf(1)))

	side := Ray{Origin: math3d.V3(3, 0, 10), Direction: math3d.V3(0, 0, -1)}
	assert.False(t, side.IntersectAABB(box, math.Inf(1)))
}

func TestIntersectObjectsSorted(t *testing.T) {
	far := newBox(-5, scene.FrontSide)
	near := newBox(0, scene.FrontSide)

	hits := downZ().IntersectObjects([]scene.Object{far, near}, false)
	require.Len(t, hits, 2)
	assert.Same(t, near, hits[0].Object)
	assert.InDelta(t, 9, hits[0].Distance, 1e-9)
	assert.Same(t, far, hits[1].Object)
	assert.InDelta(t, 14, hits[1].Distance, 1e-9)
	assert.True(t, hits[0].Point.ApproxEqual(math3d.V3(0.3, 0.2, 1), 1e-9))
}

func TestIntersectObjectsSide(t *testing.T) {
	tests := []struct {
		name  string
		side  scene.Side
		dists []float64
	}{
		{"front", scene.FrontSide, []float64{9}},
		{"back", scene.BackSide, []float64{11}},
		{"double", scene.DoubleSide, []float64{9, 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := downZ().IntersectObject(newBox(0, tt.side), false)
			require.Len(t, hits, len(tt.dists))
			for i, d := range tt.dists {
				assert.InDelta(t, d, hits[i].Distance, 1e-9)
			}
		})
	}
}

func TestIntersectObjectsRecursive(t *testing.T) {
	group := scene.NewNode("group")
	group.Position = math3d.V3(0, 0, -2)
	group.Add(newBox(0, scene.FrontSide))

	rc := downZ()
	assert.Empty(t, rc.IntersectObject(group, false))

	hits := rc.IntersectObject(group, true)
	require.Len(t, hits, 1)
	assert.InDelta(t, 11, hits[0].Distance, 1e-9)
}

func TestIntersectIgnoresHelpers(t *testing.T) {
	box := newBox(0, scene.FrontSide)
	s := scene.New()
	s.Add(box, scene.NewBoxHelper(box))

	hits := downZ().IntersectObjects(s.Children(), true)
	require.Len(t, hits, 1)
	assert.Same(t, box, hits[0].Object)
}

func TestIntersectMiss(t *testing.T) {
	rc := New()
	rc.Set(math3d.V3(0, 0, 10), math3d.V3(0, 0, 1))
	assert.Empty(t, rc.IntersectObject(newBox(0, scene.DoubleSide), false))

	rc = downZ()
	rc.Far = 8
	assert.Empty(t, rc.IntersectObject(newBox(0, scene.FrontSide), false))
}

func TestSetFromCamera(t *testing.T) {
	cam := render.NewPerspectiveCamera(60, 1, 0.1, 100)
	cam.SetPosition(math3d.V3(0, 0, 10))

	rc := New()
	rc.SetFromCamera(math3d.V2(0, 0), cam)
	assert.True(t, rc.Ray.Origin.ApproxEqual(math3d.V3(0, 0, 10), 1e-9))
	assert.True(t, rc.Ray.Direction.ApproxEqual(math3d.V3(0, 0, -1), 1e-6))

	// The right edge of the view at 60 degrees and aspect 1
	rc.SetFromCamera(math3d.V2(1, 0), cam)
	want := math3d.V3(math.Tan(math.Pi/6), 0, -1).Normalize()
	assert.True(t, rc.Ray.Direction.ApproxEqual(want, 1e-6), "got %v", rc.Ray.Direction)
}
