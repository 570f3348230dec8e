package scene

import (
	"github.com/taigrr/scenery/pkg/math3d"
	"github.com/taigrr/scenery/pkg/models"
	"github.com/taigrr/scenery/pkg/render"
)

// Color is a floating point RGB color.
type Color = render.ColorF

// Side selects which faces of a material are drawn.
type Side int

const (
	FrontSide Side = iota
	BackSide
	DoubleSide
)

// Material describes how a mesh surface looks.
type Material struct {
	Color     Color
	Map       *render.Texture
	Repeat    math3d.Vec2
	Side      Side
	Roughness float64
	Wireframe bool

	// DepthWrite is on for new materials.
	DepthWrite bool

	// Equirect samples Map by view direction as a panorama.
	Equirect bool

	// Unlit materials ignore lights.
	Unlit bool
}

// NewStandardMaterial creates a lit material with full roughness.
func NewStandardMaterial(color Color) *Material {
	return &Material{Color: color, Roughness: 1, DepthWrite: true}
}

// NewBasicMaterial creates an unlit material.
func NewBasicMaterial(color Color) *Material {
	return &Material{Color: color, Roughness: 1, DepthWrite: true, Unlit: true}
}

// Surface converts the material for the rasterizer.
func (m *Material) Surface() render.Surface {
	s := render.Surface{
		Color:        m.Color,
		Texture:      m.Map,
		Repeat:       m.Repeat,
		NoDepthWrite: !m.DepthWrite,
		Unlit:        m.Unlit,
		Roughness:    m.Roughness,
	}
	switch m.Side {
	case BackSide:
		s.Cull = render.CullFront
	case DoubleSide:
		s.Cull = render.CullNone
	default:
		s.Cull = render.CullBack
	}
	if m.Equirect {
		s.Mapping = render.MapEquirect
	}
	return s
}

// Mesh is a node with geometry and a material.
type Mesh struct {
	Node
	Geometry *models.Mesh
	Material *Material
}

// NewMesh creates a mesh node. A nil material gets a white standard one.
func NewMesh(geometry *models.Mesh, material *Material) *Mesh {
	if material == nil {
		material = NewStandardMaterial(Color{R: 1, G: 1, B: 1})
	}
	m := &Mesh{Geometry: geometry, Material: material}
	m.init(geometry.Name)
	return m
}

// LocalBounds returns the geometry's bounding box.
func (m *Mesh) LocalBounds() render.AABB {
	return render.NewAABB(m.Geometry.BoundsMin, m.Geometry.BoundsMax)
}

// WorldBounds returns the world-space box around the mesh.
func (m *Mesh) WorldBounds() render.AABB {
	return m.LocalBounds().Transform(m.WorldMatrix())
}

func (m *Mesh) draw(r *render.Rasterizer, lights []render.Light) {
	world := m.WorldMatrix()
	if m.Material.Wireframe {
		r.DrawMeshWireframe(m.Geometry, world, m.Material.Color.RGBA())
		return
	}
	r.DrawMesh(m.Geometry, world, m.Material.Surface(), lights)
}
