package tween

import (
	"github.com/tanema/gween/ease"
)

// Timeline plays tweens in sequence. Steps added with a non-positive
// duration use the timeline's Duration.
type Timeline struct {
	Duration float64
	Ease     ease.TweenFunc

	steps   []*Tween
	pending []func() *Tween
	current int
}

// NewTimeline creates a timeline whose steps default to one second.
func NewTimeline() *Timeline {
	return &Timeline{Duration: 1, Ease: DefaultEase}
}

// FromTo appends a step. As with the package-level FromTo, the first step
// sets its start values at once; later steps set theirs when they begin.
func (tl *Timeline) FromTo(targets []*float64, from, to []float64, duration float64) *Timeline {
	build := func() *Tween { return FromTo(targets, from, to, tl.duration(duration), tl.Ease) }
	tl.push(build)
	return tl
}

// To appends a step that starts from the fields' values when it begins.
func (tl *Timeline) To(targets []*float64, to []float64, duration float64) *Timeline {
	tl.push(func() *Tween { return To(targets, to, tl.duration(duration), tl.Ease) })
	return tl
}

func (tl *Timeline) duration(d float64) float64 {
	if d > 0 {
		return d
	}
	return tl.Duration
}

func (tl *Timeline) push(build func() *Tween) {
	if len(tl.steps) == 0 {
		tl.steps = append(tl.steps, build())
		return
	}
	tl.pending = append(tl.pending, build)
}

// Len is the number of steps.
func (tl *Timeline) Len() int {
	return len(tl.steps) + len(tl.pending)
}

// Update implements Animation. Time left over when a step finishes is not
// carried into the next.
func (tl *Timeline) Update(dt float64) bool {
	if tl.current >= len(tl.steps) {
		return true
	}
	if !tl.steps[tl.current].Update(dt) {
		return false
	}

	tl.current++
	if len(tl.pending) > 0 {
		tl.steps = append(tl.steps, tl.pending[0]())
		tl.pending = tl.pending[1:]
	}
	return tl.current >= len(tl.steps)
}
