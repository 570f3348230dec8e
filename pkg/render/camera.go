package render

import (
	"math"

	"github.com/taigrr/scenery/pkg/math3d"
)

// Camera is a perspective camera looking down its local -Z axis. Position
// and orientation are relative to Parent when one is set, so a camera can
// ride on a scene node.
type Camera struct {
	Position math3d.Vec3

	// Euler angles in radians, applied yaw first, then pitch, then roll.
	Pitch float64
	Yaw   float64
	Roll  float64

	FOV         float64 // vertical, radians
	AspectRatio float64
	Near        float64
	Far         float64

	Parent math3d.Transformer
}

// NewCamera returns a camera at the origin looking down -Z with a 45
// degree field of view.
func NewCamera() *Camera {
	return &Camera{
		FOV:         math3d.Deg2Rad(45),
		AspectRatio: 1,
		Near:        0.1,
		Far:         100,
	}
}

// NewPerspectiveCamera takes the field of view in degrees.
func NewPerspectiveCamera(fovDeg, aspect, near, far float64) *Camera {
	c := NewCamera()
	c.FOV = math3d.Deg2Rad(fovDeg)
	c.AspectRatio = aspect
	c.SetClipPlanes(near, far)
	return c
}

func (c *Camera) SetPosition(pos math3d.Vec3) { c.Position = pos }

func (c *Camera) SetRotation(pitch, yaw, roll float64) {
	c.Pitch, c.Yaw, c.Roll = pitch, yaw, roll
}

// SetFOV takes radians.
func (c *Camera) SetFOV(fov float64)              { c.FOV = fov }
func (c *Camera) SetAspectRatio(aspect float64)   { c.AspectRatio = aspect }
func (c *Camera) SetClipPlanes(near, far float64) { c.Near, c.Far = near, far }

// heading is the yaw and pitch part of the orientation.
func (c *Camera) heading() math3d.Mat4 {
	return math3d.RotateY(c.Yaw).Mul(math3d.RotateX(c.Pitch))
}

// Forward, Right and Up are the local axes of the camera ignoring roll.

func (c *Camera) Forward() math3d.Vec3 {
	return c.heading().MulVec3Dir(math3d.V3(0, 0, -1))
}

func (c *Camera) Right() math3d.Vec3 {
	return c.heading().MulVec3Dir(math3d.V3(1, 0, 0))
}

func (c *Camera) Up() math3d.Vec3 {
	return c.Right().Cross(c.Forward())
}

func (c *Camera) localMatrix() math3d.Mat4 {
	return math3d.Translate(c.Position).Mul(c.heading()).Mul(math3d.RotateZ(c.Roll))
}

// WorldMatrix places the camera in the world. Nodes attached to the camera
// use it as their parent transform.
func (c *Camera) WorldMatrix() math3d.Mat4 {
	if c.Parent == nil {
		return c.localMatrix()
	}
	return c.Parent.WorldMatrix().Mul(c.localMatrix())
}

func (c *Camera) WorldPosition() math3d.Vec3 {
	return c.WorldMatrix().Translation()
}

// ViewMatrix maps world space into camera space.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	return c.WorldMatrix().Inverse()
}

func (c *Camera) ProjectionMatrix() math3d.Mat4 {
	return math3d.Perspective(c.FOV, c.AspectRatio, c.Near, c.Far)
}

func (c *Camera) ViewProjectionMatrix() math3d.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// LookAt turns the camera toward target, given in the same space as
// Position, and clears roll. A target at Position changes nothing.
func (c *Camera) LookAt(target math3d.Vec3) {
	dir := target.Sub(c.Position)
	if dir.LenSq() == 0 {
		return
	}
	dir = dir.Normalize()
	c.Pitch = math.Asin(math3d.Clamp(dir.Y, -1, 1))
	c.Yaw = math.Atan2(-dir.X, -dir.Z)
	c.Roll = 0
}

// Unproject maps normalized device coordinates back to world space; z=-1
// is the near plane and z=1 the far plane.
func (c *Camera) Unproject(ndc math3d.Vec3) math3d.Vec3 {
	return c.ViewProjectionMatrix().Inverse().MulVec4(math3d.V4FromV3(ndc, 1)).PerspectiveDivide()
}

// WorldToScreen projects p to pixel coordinates with y growing downward.
// visible is false when p is behind the camera or outside the frustum.
func (c *Camera) WorldToScreen(p math3d.Vec3, width, height int) (x, y, depth float64, visible bool) {
	clip := c.ViewProjectionMatrix().MulVec4(math3d.V4FromV3(p, 1))
	if clip.W <= 0 {
		return 0, 0, 0, false
	}
	ndc := clip.PerspectiveDivide()
	if math.Abs(ndc.X) > 1 || math.Abs(ndc.Y) > 1 || math.Abs(ndc.Z) > 1 {
		return 0, 0, 0, false
	}
	return (ndc.X + 1) / 2 * float64(width), (1 - ndc.Y) / 2 * float64(height), ndc.Z, true
}
