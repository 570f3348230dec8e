// Package render is scenery's software renderer: camera, framebuffer,
// clipping rasterizer, lighting, textures and terminal output.
package render

import (
	"math"

	"github.com/taigrr/scenery/pkg/math3d"
)

// CullMode selects which triangle faces are discarded.
type CullMode int

const (
	CullBack  CullMode = iota // draw front faces only
	CullFront                 // draw back faces only
	CullNone                  // draw both sides
)

// Mapping selects how a surface texture is addressed.
type Mapping int

const (
	MapUV       Mapping = iota // mesh UVs, scaled by Repeat
	MapEquirect                // view direction into an equirectangular panorama
)

// Surface is everything the rasterizer needs to know about a material.
type Surface struct {
	Color        ColorF
	Texture      *Texture
	Mapping      Mapping
	Repeat       math3d.Vec2 // zero means no repeat
	Cull         CullMode
	NoDepthWrite bool
	Unlit        bool
	Roughness    float64
}

// Rasterizer draws triangles and lines through a camera into a
// framebuffer with a depth test.
type Rasterizer struct {
	camera  *Camera
	fb      *Framebuffer
	zbuffer []float64 // row-major, like fb.Pixels
	frustum Frustum   // taken from the camera at BeginFrame

	// Counters since the last BeginFrame.
	CullingStats CullingStats
	Triangles    int
}

// CullingStats counts meshes that went through frustum culling.
type CullingStats struct {
	MeshesTested int
	MeshesCulled int
	MeshesDrawn  int
}

func NewRasterizer(camera *Camera, fb *Framebuffer) *Rasterizer {
	r := &Rasterizer{camera: camera, fb: fb}
	r.Resize()
	if camera != nil {
		r.frustum = camera.Frustum()
	}
	return r
}

func (r *Rasterizer) Camera() *Camera           { return r.camera }
func (r *Rasterizer) Framebuffer() *Framebuffer { return r.fb }

// Resize matches the depth buffer to the framebuffer after it changed
// size.
func (r *Rasterizer) Resize() {
	if r.fb == nil {
		r.zbuffer = nil
		return
	}
	r.zbuffer = make([]float64, r.fb.Width*r.fb.Height)
	r.ClearDepth()
}

func (r *Rasterizer) Width() int {
	if r.fb == nil {
		return 0
	}
	return r.fb.Width
}

func (r *Rasterizer) Height() int {
	if r.fb == nil {
		return 0
	}
	return r.fb.Height
}

// BeginFrame clears depth, takes the frustum from the camera as it is now
// and zeroes the counters. Color is left alone so passes can layer.
func (r *Rasterizer) BeginFrame() {
	r.ClearDepth()
	r.frustum = r.camera.Frustum()
	r.CullingStats = CullingStats{}
	r.Triangles = 0
}

// ClearDepth resets every depth sample to the far limit.
func (r *Rasterizer) ClearDepth() {
	if len(r.zbuffer) == 0 {
		return
	}
	r.zbuffer[0] = math.MaxFloat64
	for filled := 1; filled < len(r.zbuffer); filled *= 2 {
		copy(r.zbuffer[filled:], r.zbuffer[:filled])
	}
}

// MeshRenderer is the geometry the rasterizer draws. It keeps render
// independent of the models package.
type MeshRenderer interface {
	VertexCount() int
	TriangleCount() int
	GetVertex(i int) (pos, normal math3d.Vec3, uv math3d.Vec2)
	GetFace(i int) [3]int
}

// BoundedMeshRenderer is a MeshRenderer that can be frustum culled.
type BoundedMeshRenderer interface {
	MeshRenderer
	GetBounds() (min, max math3d.Vec3)
}

// culled reports whether mesh has bounds and they lie outside the frustum
// once transformed.
func (r *Rasterizer) culled(mesh MeshRenderer, transform math3d.Mat4) bool {
	bounded, ok := mesh.(BoundedMeshRenderer)
	if !ok {
		return false
	}
	r.CullingStats.MeshesTested++
	lo, hi := bounded.GetBounds()
	if !r.frustum.IntersectAABB(NewAABB(lo, hi).Transform(transform)) {
		r.CullingStats.MeshesCulled++
		return true
	}
	r.CullingStats.MeshesDrawn++
	return false
}

// clipVertex is a vertex after the vertex stage: clip-space position plus
// the world-space attributes fragments interpolate.
type clipVertex struct {
	clip  math3d.Vec4
	world math3d.Vec3
	uv    math3d.Vec2
	light ColorF
}

func lerpClipVertex(a, b clipVertex, t float64) clipVertex {
	return clipVertex{
		clip:  a.clip.Lerp(b.clip, t),
		world: a.world.Lerp(b.world, t),
		uv:    a.uv.Lerp(b.uv, t),
		light: ColorF{
			R: a.light.R + (b.light.R-a.light.R)*t,
			G: a.light.G + (b.light.G-a.light.G)*t,
			B: a.light.B + (b.light.B-a.light.B)*t,
		},
	}
}

// clipNear clips a triangle against the near plane (z >= -w) and returns
// the resulting convex polygon, which has 0, 3 or 4 vertices.
func clipNear(tri [3]clipVertex) []clipVertex {
	dist := func(v clipVertex) float64 { return v.clip.Z + v.clip.W }

	out := make([]clipVertex, 0, 4)
	for i := range 3 {
		a := tri[i]
		b := tri[(i+1)%3]
		da, db := dist(a), dist(b)

		if da >= 0 {
			out = append(out, a)
		}
		if (da >= 0) != (db >= 0) {
			out = append(out, lerpClipVertex(a, b, da/(da-db)))
		}
	}
	return out
}

// screenPoint is a clipped vertex after the perspective divide.
type screenPoint struct {
	x, y, z float64
	invW    float64
}

func (r *Rasterizer) toScreen(v clipVertex) screenPoint {
	invW := 1 / v.clip.W
	return screenPoint{
		x:    (v.clip.X*invW + 1) * 0.5 * float64(r.Width()),
		y:    (1 - v.clip.Y*invW) * 0.5 * float64(r.Height()), // Y flipped
		z:    v.clip.Z * invW,
		invW: invW,
	}
}

// fragmentFunc shades one covered pixel. bc holds perspective-correct
// barycentric weights over the triangle's three clip vertices.
type fragmentFunc func(tri *[3]clipVertex, bc math3d.Vec3) Color

// drawClipped near-clips a triangle and rasterizes the pieces.
func (r *Rasterizer) drawClipped(tri [3]clipVertex, depthWrite bool, frag fragmentFunc) {
	r.Triangles++

	poly := clipNear(tri)
	for i := 1; i+1 < len(poly); i++ {
		piece := [3]clipVertex{poly[0], poly[i], poly[i+1]}
		r.rasterize(&piece, depthWrite, frag)
	}
}

// edgeEpsilon lets pixel centers that sit exactly on a shared edge land in
// both triangles instead of neither.
const edgeEpsilon = 1e-9

// rasterize fills a triangle with edge functions over its bounding box.
func (r *Rasterizer) rasterize(tri *[3]clipVertex, depthWrite bool, frag fragmentFunc) {
	s0, s1, s2 := r.toScreen(tri[0]), r.toScreen(tri[1]), r.toScreen(tri[2])

	area := (s1.x-s0.x)*(s2.y-s0.y) - (s1.y-s0.y)*(s2.x-s0.x)
	if area == 0 || math.IsNaN(area) {
		return
	}
	invArea := 1 / area

	minX := int(math.Max(0, math.Floor(min3(s0.x, s1.x, s2.x))))
	maxX := int(math.Min(float64(r.Width()-1), math.Ceil(max3(s0.x, s1.x, s2.x))))
	minY := int(math.Max(0, math.Floor(min3(s0.y, s1.y, s2.y))))
	maxY := int(math.Min(float64(r.Height()-1), math.Ceil(max3(s0.y, s1.y, s2.y))))
	if minX > maxX || minY > maxY {
		return
	}

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5

			// Normalized edge functions; all non-negative inside
			// regardless of winding.
			w0 := ((s1.x-px)*(s2.y-py) - (s1.y-py)*(s2.x-px)) * invArea
			w1 := ((s2.x-px)*(s0.y-py) - (s2.y-py)*(s0.x-px)) * invArea
			w2 := 1 - w0 - w1
			if w0 < -edgeEpsilon || w1 < -edgeEpsilon || w2 < -edgeEpsilon {
				continue
			}

			z := w0*s0.z + w1*s1.z + w2*s2.z
			idx := y*r.fb.Width + x
			if z >= r.zbuffer[idx] {
				continue
			}

			// Perspective-correct weights
			p0, p1, p2 := w0*s0.invW, w1*s1.invW, w2*s2.invW
			sum := p0 + p1 + p2
			if sum == 0 {
				continue
			}
			bc := math3d.V3(p0/sum, p1/sum, p2/sum)

			if depthWrite {
				r.zbuffer[idx] = z
			}
			r.fb.Pixels[idx] = frag(tri, bc)
		}
	}
}

// frontFacing reports whether a clockwise world-space triangle faces eye.
func frontFacing(v0, v1, v2, eye math3d.Vec3) bool {
	n := v2.Sub(v0).Cross(v1.Sub(v0))
	return n.Dot(eye.Sub(v0)) > 0
}

// DrawMesh renders a mesh with the given model transform, surface and
// lights. Lit surfaces use per-vertex (Gouraud) lighting. Meshes that
// provide bounds are frustum culled first.
func (r *Rasterizer) DrawMesh(mesh MeshRenderer, transform math3d.Mat4, surf Surface, lights []Light) {
	if r.fb == nil || r.culled(mesh, transform) {
		return
	}

	viewProj := r.camera.ViewProjectionMatrix()
	normalMat := transform.NormalMatrix()
	eye := r.camera.WorldPosition()
	shading := Shading{Roughness: surf.Roughness}
	repeat := surf.Repeat
	if repeat.X == 0 && repeat.Y == 0 {
		repeat = math3d.V2(1, 1)
	}

	n := mesh.VertexCount()
	world := make([]math3d.Vec3, n)
	normals := make([]math3d.Vec3, n)
	verts := make([]clipVertex, n)
	for i := range n {
		pos, normal, uv := mesh.GetVertex(i)
		w := transform.MulVec3(pos)
		world[i] = w
		normals[i] = normalMat.MulVec3Dir(normal).Normalize()
		verts[i] = clipVertex{
			clip:  viewProj.MulVec4(math3d.V4FromV3(w, 1)),
			world: w,
			uv:    uv.Mul(repeat),
			light: ColorF{1, 1, 1},
		}
		if !surf.Unlit {
			verts[i].light = Shade(lights, w, normals[i], eye, shading)
		}
	}

	frag := r.surfaceFragment(surf, eye)

	for i := 0; i < mesh.TriangleCount(); i++ {
		face := mesh.GetFace(i)
		front := frontFacing(world[face[0]], world[face[1]], world[face[2]], eye)

		switch {
		case surf.Cull == CullBack && !front:
			continue
		case surf.Cull == CullFront && front:
			continue
		}

		tri := [3]clipVertex{verts[face[0]], verts[face[1]], verts[face[2]]}
		if !front && !surf.Unlit {
			for k := range 3 {
				tri[k].light = Shade(lights, world[face[k]], normals[face[k]].Negate(), eye, shading)
			}
		}
		r.drawClipped(tri, !surf.NoDepthWrite, frag)
	}
}

func (r *Rasterizer) surfaceFragment(surf Surface, eye math3d.Vec3) fragmentFunc {
	tex := surf.Texture
	base := surf.Color

	return func(tri *[3]clipVertex, bc math3d.Vec3) Color {
		light := tri[0].light.Scale(bc.X).
			Add(tri[1].light.Scale(bc.Y)).
			Add(tri[2].light.Scale(bc.Z))
		c := base

		if tex != nil {
			var texel Color
			switch surf.Mapping {
			case MapEquirect:
				world := tri[0].world.Scale(bc.X).
					Add(tri[1].world.Scale(bc.Y)).
					Add(tri[2].world.Scale(bc.Z))
				texel = tex.SampleEquirect(world.Sub(eye))
			default:
				uv := tri[0].uv.Scale(bc.X).
					Add(tri[1].uv.Scale(bc.Y)).
					Add(tri[2].uv.Scale(bc.Z))
				texel = tex.Sample(uv.X, uv.Y)
			}
			c = c.Mul(ColorFFromRGBA(texel))
		}

		return c.Mul(light).RGBA()
	}
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}

// DrawMeshWireframe renders a mesh's triangle edges.
func (r *Rasterizer) DrawMeshWireframe(mesh MeshRenderer, transform math3d.Mat4, color Color) {
	if r.fb == nil || r.culled(mesh, transform) {
		return
	}

	for i := 0; i < mesh.TriangleCount(); i++ {
		face := mesh.GetFace(i)

		p0, _, _ := mesh.GetVertex(face[0])
		p1, _, _ := mesh.GetVertex(face[1])
		p2, _, _ := mesh.GetVertex(face[2])

		v0 := transform.MulVec3(p0)
		v1 := transform.MulVec3(p1)
		v2 := transform.MulVec3(p2)

		r.DrawLine3D(v0, v1, color)
		r.DrawLine3D(v1, v2, color)
		r.DrawLine3D(v2, v0, color)
	}
}

// DrawLine3D projects a world-space segment and draws it, clipping the part
// behind the near plane.
func (r *Rasterizer) DrawLine3D(a, b math3d.Vec3, color Color) {
	if r.fb == nil {
		return
	}
	viewProj := r.camera.ViewProjectionMatrix()

	clipA := viewProj.MulVec4(math3d.V4FromV3(a, 1))
	clipB := viewProj.MulVec4(math3d.V4FromV3(b, 1))

	da := clipA.Z + clipA.W
	db := clipB.Z + clipB.W
	switch {
	case da < 0 && db < 0:
		return
	case da < 0:
		clipA = clipA.Lerp(clipB, da/(da-db))
	case db < 0:
		clipB = clipB.Lerp(clipA, db/(db-da))
	}

	w, h := float64(r.Width()), float64(r.Height())
	r.fb.DrawLineClipped(
		(clipA.X/clipA.W+1)*0.5*w, (1-clipA.Y/clipA.W)*0.5*h,
		(clipB.X/clipB.W+1)*0.5*w, (1-clipB.Y/clipB.W)*0.5*h,
		color,
	)
}
