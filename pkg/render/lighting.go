package render

import (
	"math"

	"github.com/taigrr/scenery/pkg/math3d"
)

// LightKind selects how a Light contributes to shading.
type LightKind int

const (
	LightAmbient LightKind = iota
	LightPoint
	LightDirectional
	LightHemisphere
)

// Light is a light resolved to world space for one frame. Scene lights
// flatten themselves into this form before drawing.
type Light struct {
	Kind      LightKind
	Color     ColorF
	Intensity float64

	Position  math3d.Vec3 // point lights
	Direction math3d.Vec3 // directional: points from the surface toward the light
	Distance  float64     // point light cutoff, 0 = infinite
	Decay     float64     // point light falloff exponent

	GroundColor ColorF // hemisphere lights; Color is the sky
}

// Shading describes the surface parameters the lighting model reads.
type Shading struct {
	Roughness float64
}

// ambientFloor is the minimum light every shaded point receives.
const ambientFloor = 0.04

// Shade returns the light arriving at a surface point, to be multiplied
// with the surface's base color. eye is the camera world position.
func Shade(lights []Light, pos, normal, eye math3d.Vec3, s Shading) ColorF {
	total := ColorF{ambientFloor, ambientFloor, ambientFloor}
	n := normal.Normalize()
	view := eye.Sub(pos).Normalize()

	shininess := 2 + (1-math3d.Clamp(s.Roughness, 0, 1))*62
	specStrength := (1 - math3d.Clamp(s.Roughness, 0, 1)) * 0.5

	for i := range lights {
		l := &lights[i]
		radiance := l.Color.Scale(l.Intensity)

		var toLight math3d.Vec3
		switch l.Kind {
		case LightAmbient:
			total = total.Add(radiance)
			continue

		case LightHemisphere:
			t := 0.5*n.Y + 0.5
			sky := l.Color.Scale(t)
			ground := l.GroundColor.Scale(1 - t)
			total = total.Add(sky.Add(ground).Scale(l.Intensity))
			continue

		case LightDirectional:
			toLight = l.Direction.Normalize()

		case LightPoint:
			d := l.Position.Sub(pos)
			dist := d.Len()
			if dist == 0 {
				continue
			}
			toLight = d.Scale(1 / dist)
			radiance = radiance.Scale(pointAttenuation(dist, l.Distance, l.Decay))
		}

		ndotl := n.Dot(toLight)
		if ndotl <= 0 {
			continue
		}
		total = total.Add(radiance.Scale(ndotl))

		if specStrength > 0 {
			h := toLight.Add(view).Normalize()
			if ndoth := n.Dot(h); ndoth > 0 {
				total = total.Add(radiance.Scale(specStrength * math.Pow(ndoth, shininess)))
			}
		}
	}

	return total
}

func pointAttenuation(dist, cutoff, decay float64) float64 {
	if cutoff <= 0 {
		return 1
	}
	f := math3d.Clamp(1-dist/cutoff, 0, 1)
	if decay <= 0 {
		return f
	}
	return math.Pow(f, decay)
}
