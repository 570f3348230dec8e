package models

import (
	"math"

	"github.com/taigrr/scenery/pkg/math3d"
)

// NewSphere builds a UV sphere centred on the origin. widthSegments runs
// around the Y axis and heightSegments from pole to pole.
func NewSphere(radius float64, widthSegments, heightSegments int) *Mesh {
	widthSegments = max(widthSegments, 3)
	heightSegments = max(heightSegments, 2)

	mesh := NewMesh("sphere")
	grid := make([][]int, heightSegments+1)

	for iy := 0; iy <= heightSegments; iy++ {
		v := float64(iy) / float64(heightSegments)
		theta := v * math.Pi
		row := make([]int, widthSegments+1)

		for ix := 0; ix <= widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)
			phi := u * 2 * math.Pi

			normal := math3d.V3(
				-math.Cos(phi)*math.Sin(theta),
				math.Cos(theta),
				math.Sin(phi)*math.Sin(theta),
			)
			row[ix] = len(mesh.Vertices)
			mesh.Vertices = append(mesh.Vertices, MeshVertex{
				Position: normal.Scale(radius),
				Normal:   normal,
				UV:       math3d.V2(u, 1-v),
			})
		}
		grid[iy] = row
	}

	for iy := range heightSegments {
		for ix := range widthSegments {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]

			// The pole rows collapse to a point, so only one triangle each.
			if iy != 0 {
				mesh.Faces = append(mesh.Faces, Face{V: [3]int{a, d, b}, Material: -1})
			}
			if iy != heightSegments-1 {
				mesh.Faces = append(mesh.Faces, Face{V: [3]int{b, d, c}, Material: -1})
			}
		}
	}

	mesh.CalculateBounds()
	return mesh
}

// boxSide describes one face of a box: its outward normal and the in-plane
// axes with u × v = normal.
type boxSide struct {
	normal, u, v math3d.Vec3
}

var boxSides = [6]boxSide{
	{math3d.V3(1, 0, 0), math3d.V3(0, 0, -1), math3d.V3(0, 1, 0)},
	{math3d.V3(-1, 0, 0), math3d.V3(0, 0, 1), math3d.V3(0, 1, 0)},
	{math3d.V3(0, 1, 0), math3d.V3(1, 0, 0), math3d.V3(0, 0, -1)},
	{math3d.V3(0, -1, 0), math3d.V3(1, 0, 0), math3d.V3(0, 0, 1)},
	{math3d.V3(0, 0, 1), math3d.V3(1, 0, 0), math3d.V3(0, 1, 0)},
	{math3d.V3(0, 0, -1), math3d.V3(-1, 0, 0), math3d.V3(0, 1, 0)},
}

// NewBox builds an axis-aligned box centred on the origin with 24 vertices
// so each side has its own normals and UVs.
func NewBox(width, height, depth float64) *Mesh {
	mesh := NewMesh("box")
	half := math3d.V3(width/2, height/2, depth/2)

	extent := func(axis math3d.Vec3) float64 {
		a := axis.Mul(half)
		return math.Abs(a.X) + math.Abs(a.Y) + math.Abs(a.Z)
	}

	for _, side := range boxSides {
		center := side.normal.Mul(half)
		hu := side.u.Scale(extent(side.u))
		hv := side.v.Scale(extent(side.v))

		base := len(mesh.Vertices)
		corners := [4]struct {
			su, sv float64
		}{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
		for _, c := range corners {
			mesh.Vertices = append(mesh.Vertices, MeshVertex{
				Position: center.Add(hu.Scale(c.su)).Add(hv.Scale(c.sv)),
				Normal:   side.normal,
				UV:       math3d.V2((c.su+1)/2, (c.sv+1)/2),
			})
		}
		mesh.Faces = append(mesh.Faces,
			Face{V: [3]int{base, base + 2, base + 1}, Material: -1},
			Face{V: [3]int{base, base + 3, base + 2}, Material: -1},
		)
	}

	mesh.CalculateBounds()
	return mesh
}

// NewPlane builds a plane in the XY plane facing +Z, subdivided into
// widthSegments × heightSegments quads.
func NewPlane(width, height float64, widthSegments, heightSegments int) *Mesh {
	widthSegments = max(widthSegments, 1)
	heightSegments = max(heightSegments, 1)

	mesh := NewMesh("plane")
	normal := math3d.V3(0, 0, 1)

	for iy := 0; iy <= heightSegments; iy++ {
		v := float64(iy) / float64(heightSegments)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)
			mesh.Vertices = append(mesh.Vertices, MeshVertex{
				Position: math3d.V3((u-0.5)*width, (v-0.5)*height, 0),
				Normal:   normal,
				UV:       math3d.V2(u, v),
			})
		}
	}

	stride := widthSegments + 1
	for iy := range heightSegments {
		for ix := range widthSegments {
			a := iy*stride + ix
			b := a + 1
			c := a + stride + 1
			d := a + stride
			mesh.Faces = append(mesh.Faces,
				Face{V: [3]int{a, c, b}, Material: -1},
				Face{V: [3]int{a, d, c}, Material: -1},
			)
		}
	}

	mesh.CalculateBounds()
	return mesh
}
