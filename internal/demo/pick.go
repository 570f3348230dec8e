package demo

import (
	"github.com/taigrr/scenery/pkg/math3d"
	"github.com/taigrr/scenery/pkg/raycast"
	"github.com/taigrr/scenery/pkg/render"
	"github.com/taigrr/scenery/pkg/scene"
)

// PickHelper casts a ray through a view position every frame and outlines
// what it hits.
type PickHelper struct {
	Raycaster *raycast.Raycaster

	// Picked is the last object hit. A miss leaves it alone.
	Picked *scene.Mesh
	// Boxes holds the object outlined by the latest helper, if any.
	Boxes []*scene.Mesh
	// Helpers are every outline added so far. They stay in the scene.
	Helpers []*scene.BoxHelper
}

// NewPickHelper creates a pick helper with nothing picked.
func NewPickHelper() *PickHelper {
	return &PickHelper{Raycaster: raycast.New()}
}

// Pick casts through ndc and adds an outline helper to s: around the
// object hit, or an empty one on a miss after an earlier pick.
func (p *PickHelper) Pick(ndc math3d.Vec2, s *scene.Scene, cam *render.Camera) *scene.Mesh {
	if p.Picked != nil {
		p.Boxes = p.Boxes[:0]
	}

	p.Raycaster.SetFromCamera(ndc, cam)
	if hits := p.Raycaster.IntersectObjects(s.Children(), true); len(hits) > 0 {
		p.Picked = hits[0].Object
		p.Boxes = append(p.Boxes, p.Picked)
	}

	var target scene.Object
	if len(p.Boxes) > 0 {
		target = p.Boxes[0]
	}
	box := scene.NewBoxHelper(target)
	s.Add(box)
	p.Helpers = append(p.Helpers, box)
	return p.Picked
}

// NDC converts a framebuffer position to normalized device coordinates.
func NDC(x, y float64, width, height int) math3d.Vec2 {
	return math3d.V2(x/float64(width)*2-1, -(y/float64(height))*2+1)
}
