package render

import (
	"math"
	"testing"

	"github.com/taigrr/scenery/pkg/math3d"
)

func TestShade(t *testing.T) {
	white := ColorF{1, 1, 1}
	up := math3d.V3(0, 1, 0)
	origin := math3d.Zero3()
	eye := math3d.V3(0, 10, 0)
	rough := Shading{Roughness: 1}

	tests := []struct {
		name   string
		lights []Light
		normal math3d.Vec3
		want   float64 // red channel
	}{
		{"no lights", nil, up, ambientFloor},
		{"ambient", []Light{{Kind: LightAmbient, Color: white, Intensity: 0.5}}, up, ambientFloor + 0.5},
		{
			"point overhead",
			[]Light{{Kind: LightPoint, Color: white, Intensity: 1, Position: math3d.V3(0, 5, 0)}},
			up, ambientFloor + 1,
		},
		{
			"point behind surface",
			[]Light{{Kind: LightPoint, Color: white, Intensity: 1, Position: math3d.V3(0, -5, 0)}},
			up, ambientFloor,
		},
		{
			"point with cutoff",
			[]Light{{Kind: LightPoint, Color: white, Intensity: 1, Position: math3d.V3(0, 5, 0), Distance: 10, Decay: 1}},
			up, ambientFloor + 0.5,
		},
		{
			"point beyond cutoff",
			[]Light{{Kind: LightPoint, Color: white, Intensity: 1, Position: math3d.V3(0, 20, 0), Distance: 10, Decay: 1}},
			up, ambientFloor,
		},
		{
			"directional at 60 degrees",
			[]Light{{Kind: LightDirectional, Color: white, Intensity: 1, Direction: math3d.V3(math.Sqrt(3), 1, 0)}},
			up, ambientFloor + 0.5,
		},
		{
			"hemisphere facing sky",
			[]Light{{Kind: LightHemisphere, Color: white, GroundColor: ColorF{}, Intensity: 1}},
			up, ambientFloor + 1,
		},
		{
			"hemisphere facing ground",
			[]Light{{Kind: LightHemisphere, Color: white, GroundColor: ColorF{}, Intensity: 1}},
			up.Negate(), ambientFloor,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Shade(tc.lights, origin, tc.normal, eye, rough)
			if math.Abs(got.R-tc.want) > 1e-9 {
				t.Errorf("Shade red = %v, want %v", got.R, tc.want)
			}
		})
	}
}

func TestShadeSpecular(t *testing.T) {
	lights := []Light{{Kind: LightPoint, Color: ColorF{1, 1, 1}, Intensity: 1, Position: math3d.V3(0, 5, 0)}}
	eye := math3d.V3(0, 10, 0)
	n := math3d.V3(0, 1, 0)

	matte := Shade(lights, math3d.Zero3(), n, eye, Shading{Roughness: 1})
	glossy := Shade(lights, math3d.Zero3(), n, eye, Shading{Roughness: 0.2})
	if glossy.R <= matte.R {
		t.Errorf("smooth surface should add a highlight: glossy=%v matte=%v", glossy.R, matte.R)
	}
}

func TestPointAttenuation(t *testing.T) {
	if got := pointAttenuation(50, 0, 2); got != 1 {
		t.Errorf("no cutoff = %v, want 1", got)
	}
	if got := pointAttenuation(5, 10, 2); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("decay 2 at half distance = %v, want 0.25", got)
	}
	if got := pointAttenuation(15, 10, 1); got != 0 {
		t.Errorf("past cutoff = %v, want 0", got)
	}
}
