package scene

import (
	"github.com/taigrr/scenery/pkg/math3d"
	"github.com/taigrr/scenery/pkg/render"
)

// Light is a scene object that illuminates meshes.
type Light interface {
	Object
	Resolve() render.Light
}

// AmbientLight lights every surface equally.
type AmbientLight struct {
	Node
	Color     Color
	Intensity float64
}

// NewAmbientLight creates an ambient light.
func NewAmbientLight(color Color, intensity float64) *AmbientLight {
	l := &AmbientLight{Color: color, Intensity: intensity}
	l.init("ambient light")
	return l
}

// Resolve implements Light.
func (l *AmbientLight) Resolve() render.Light {
	return render.Light{Kind: render.LightAmbient, Color: l.Color, Intensity: l.Intensity}
}

// PointLight emits from its world position in all directions. Distance
// is the cutoff range (0 for none) and Decay the falloff exponent.
type PointLight struct {
	Node
	Color     Color
	Intensity float64
	Distance  float64
	Decay     float64
}

// NewPointLight creates a point light with decay 1.
func NewPointLight(color Color, intensity, distance float64) *PointLight {
	l := &PointLight{Color: color, Intensity: intensity, Distance: distance, Decay: 1}
	l.init("point light")
	return l
}

// Resolve implements Light.
func (l *PointLight) Resolve() render.Light {
	return render.Light{
		Kind:      render.LightPoint,
		Color:     l.Color,
		Intensity: l.Intensity,
		Position:  l.WorldPosition(),
		Distance:  l.Distance,
		Decay:     l.Decay,
	}
}

// DirectionalLight shines from its position toward Target, both in world
// space.
type DirectionalLight struct {
	Node
	Color     Color
	Intensity float64
	Target    math3d.Vec3
}

// NewDirectionalLight creates a directional light aimed at the origin.
func NewDirectionalLight(color Color, intensity float64) *DirectionalLight {
	l := &DirectionalLight{Color: color, Intensity: intensity}
	l.init("directional light")
	return l
}

// Resolve implements Light.
func (l *DirectionalLight) Resolve() render.Light {
	return render.Light{
		Kind:      render.LightDirectional,
		Color:     l.Color,
		Intensity: l.Intensity,
		Direction: l.WorldPosition().Sub(l.Target),
	}
}

// HemisphereLight blends a sky color from above with a ground color from
// below.
type HemisphereLight struct {
	Node
	SkyColor    Color
	GroundColor Color
	Intensity   float64
}

// NewHemisphereLight creates a hemisphere light.
func NewHemisphereLight(sky, ground Color, intensity float64) *HemisphereLight {
	l := &HemisphereLight{SkyColor: sky, GroundColor: ground, Intensity: intensity}
	l.init("hemisphere light")
	return l
}

// Resolve implements Light.
func (l *HemisphereLight) Resolve() render.Light {
	return render.Light{
		Kind:        render.LightHemisphere,
		Color:       l.SkyColor,
		GroundColor: l.GroundColor,
		Intensity:   l.Intensity,
	}
}
