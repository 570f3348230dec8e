// Package tween animates float64 fields over time with easing curves.
//
// A Tween drives one or more fields from start values to end values. A
// Timeline plays tweens one after another, and a Group advances many
// independent animations each frame, at most one per target.
package tween

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/taigrr/scenery/pkg/math3d"
)

// DefaultDuration is used when a tween is given a non-positive duration.
const DefaultDuration = 0.5

// DefaultEase is a quadratic ease-out.
var DefaultEase ease.TweenFunc = ease.OutQuad

// Animation is anything advanced once per frame.
type Animation interface {
	// Update advances by dt seconds and reports whether it has finished.
	Update(dt float64) bool
}

// Tween drives a set of fields toward end values.
type Tween struct {
	targets  []*float64
	to       []float64
	duration float64
	easing   ease.TweenFunc
	channels []*gween.Tween
	done     bool

	// OnComplete runs once, on the frame the tween finishes.
	OnComplete func()
}

// FromTo sets targets to from immediately and returns a tween toward to.
func FromTo(targets []*float64, from, to []float64, duration float64, easing ease.TweenFunc) *Tween {
	t := newTween(targets, to, duration, easing)
	t.start(from)
	return t
}

// To returns a tween from the targets' values when it first updates
// toward to.
func To(targets []*float64, to []float64, duration float64, easing ease.TweenFunc) *Tween {
	return newTween(targets, to, duration, easing)
}

func newTween(targets []*float64, to []float64, duration float64, easing ease.TweenFunc) *Tween {
	if len(to) != len(targets) {
		panic("tween: targets and values differ in length")
	}
	if duration <= 0 {
		duration = DefaultDuration
	}
	if easing == nil {
		easing = DefaultEase
	}
	return &Tween{targets: targets, to: to, duration: duration, easing: easing}
}

func (t *Tween) start(from []float64) {
	t.channels = make([]*gween.Tween, len(t.targets))
	for i, target := range t.targets {
		*target = from[i]
		t.channels[i] = gween.New(float32(from[i]), float32(t.to[i]), float32(t.duration), t.easing)
	}
}

// Duration is the tween's length in seconds.
func (t *Tween) Duration() float64 {
	return t.duration
}

// Done reports whether the tween has finished.
func (t *Tween) Done() bool {
	return t.done
}

// Update implements Animation. End values are written exactly on the
// final frame.
func (t *Tween) Update(dt float64) bool {
	if t.done {
		return true
	}
	if t.channels == nil {
		from := make([]float64, len(t.targets))
		for i, target := range t.targets {
			from[i] = *target
		}
		t.start(from)
	}

	finished := true
	for i, ch := range t.channels {
		v, end := ch.Update(float32(dt))
		*t.targets[i] = float64(v)
		finished = finished && end
	}
	if !finished {
		return false
	}

	for i, target := range t.targets {
		*target = t.to[i]
	}
	t.done = true
	if t.OnComplete != nil {
		t.OnComplete()
	}
	return true
}

// Vec3 lists a vector's fields as tween targets.
func Vec3(v *math3d.Vec3) []*float64 {
	return []*float64{&v.X, &v.Y, &v.Z}
}

// Values lists a vector's fields as tween values.
func Values(v math3d.Vec3) []float64 {
	return []float64{v.X, v.Y, v.Z}
}
