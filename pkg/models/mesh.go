// Package models provides geometry for scenery: procedural primitives
// and meshes loaded from glTF files.
package models

import (
	"github.com/taigrr/scenery/pkg/math3d"
)

// Mesh is indexed triangle geometry. Faces wind clockwise when seen from
// the front, matching the rasterizer's screen-space Y flip.
type Mesh struct {
	Name      string
	Vertices  []MeshVertex
	Faces     []Face
	Materials []Material

	// Refreshed by CalculateBounds.
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

type MeshVertex struct {
	Position math3d.Vec3
	Normal   math3d.Vec3
	UV       math3d.Vec2
}

// Face is one triangle. Material indexes Mesh.Materials, -1 for none.
type Face struct {
	V        [3]int
	Material int
}

// Material is the PBR description read from glTF. Demos use the base
// color as the starting tint of a loaded model.
type Material struct {
	Name      string
	BaseColor [4]float64 // linear RGBA, 0-1
	Metallic  float64
	Roughness float64

	// Image is the document image index of the base color texture, or -1.
	Image int
}

func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// CalculateBounds refreshes BoundsMin and BoundsMax. An empty mesh keeps
// its previous bounds.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}
	lo, hi := m.Vertices[0].Position, m.Vertices[0].Position
	for _, v := range m.Vertices[1:] {
		lo, hi = lo.Min(v.Position), hi.Max(v.Position)
	}
	m.BoundsMin, m.BoundsMax = lo, hi
}

func (m *Mesh) Center() math3d.Vec3 { return m.BoundsMin.Lerp(m.BoundsMax, 0.5) }
func (m *Mesh) Size() math3d.Vec3   { return m.BoundsMax.Sub(m.BoundsMin) }

func (m *Mesh) TriangleCount() int { return len(m.Faces) }
func (m *Mesh) VertexCount() int   { return len(m.Vertices) }

// faceNormal is the unnormalized normal of face f, its length twice the
// triangle's area.
func (m *Mesh) faceNormal(f Face) math3d.Vec3 {
	p0 := m.Vertices[f.V[0]].Position
	e1 := m.Vertices[f.V[1]].Position.Sub(p0)
	e2 := m.Vertices[f.V[2]].Position.Sub(p0)
	return e2.Cross(e1)
}

// CalculateNormals gives each face's vertices that face's normal. Shared
// vertices end up with the normal of the last face that uses them.
func (m *Mesh) CalculateNormals() {
	for _, f := range m.Faces {
		n := m.faceNormal(f).Normalize()
		for _, vi := range f.V {
			m.Vertices[vi].Normal = n
		}
	}
}

// CalculateSmoothNormals averages the normals of the faces around each
// vertex, weighted by face area.
func (m *Mesh) CalculateSmoothNormals() {
	sums := make([]math3d.Vec3, len(m.Vertices))
	for _, f := range m.Faces {
		n := m.faceNormal(f)
		for _, vi := range f.V {
			sums[vi] = sums[vi].Add(n)
		}
	}
	for i, n := range sums {
		m.Vertices[i].Normal = n.Normalize()
	}
}

// Transform bakes mat into the vertices and refreshes the bounds.
func (m *Mesh) Transform(mat math3d.Mat4) {
	nm := mat.NormalMatrix()
	for i := range m.Vertices {
		v := &m.Vertices[i]
		v.Position = mat.MulVec3(v.Position)
		v.Normal = nm.MulVec3Dir(v.Normal).Normalize()
	}
	m.CalculateBounds()
}

// GetVertex, GetFace and GetBounds let the rasterizer draw a Mesh directly.

func (m *Mesh) GetVertex(i int) (pos, normal math3d.Vec3, uv math3d.Vec2) {
	v := m.Vertices[i]
	return v.Position, v.Normal, v.UV
}

func (m *Mesh) GetFace(i int) [3]int { return m.Faces[i].V }

func (m *Mesh) GetFaceMaterial(i int) int { return m.Faces[i].Material }

func (m *Mesh) GetBounds() (min, max math3d.Vec3) {
	return m.BoundsMin, m.BoundsMax
}

// FitTo centers the mesh on the origin and scales it uniformly so its
// largest dimension equals size.
func (m *Mesh) FitTo(size float64) {
	m.CalculateBounds()
	extent := m.Size().MaxComponent()
	if extent <= 0 {
		return
	}
	s := size / extent
	m.Transform(math3d.Scale(math3d.V3(s, s, s)).Mul(math3d.Translate(m.Center().Negate())))
}

// BaseColor is the RGB of the first material, or white without one.
func (m *Mesh) BaseColor() [3]float64 {
	if len(m.Materials) == 0 {
		return [3]float64{1, 1, 1}
	}
	c := m.Materials[0].BaseColor
	return [3]float64{c[0], c[1], c[2]}
}
