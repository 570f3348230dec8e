package tween

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"

	"github.com/taigrr/scenery/pkg/math3d"
)

func TestScaleIn(t *testing.T) {
	scale := math3d.V3(1, 1, 1)
	tl := NewTimeline().FromTo(Vec3(&scale), Values(math3d.Zero3()), Values(math3d.V3(1, 1, 1)), 0)

	assert.Equal(t, math3d.Zero3(), scale, "fromTo applies start values at once")

	assert.False(t, tl.Update(0.5))
	assert.Greater(t, scale.X, 0.0)
	assert.Less(t, scale.X, 1.0)
	assert.Equal(t, scale.X, scale.Z)

	done := false
	for range 120 {
		done = tl.Update(1.0 / 60)
	}
	assert.True(t, done)
	assert.Equal(t, math3d.V3(1, 1, 1), scale)
}

func TestToStartsFromCurrent(t *testing.T) {
	x := 2.0
	tw := To([]*float64{&x}, []float64{4}, 1, ease.Linear)
	assert.Equal(t, 2.0, x, "To waits for its first update")

	x = 0
	tw.Update(0.5)
	assert.InDelta(t, 2, x, 1e-6)

	done := false
	tw.OnComplete = func() { done = true }
	assert.True(t, tw.Update(0.5))
	assert.True(t, done)
	assert.Equal(t, 4.0, x)
	assert.True(t, tw.Done())
}

func TestDefaults(t *testing.T) {
	x := 0.0
	tw := To([]*float64{&x}, []float64{1}, 0, nil)
	assert.Equal(t, DefaultDuration, tw.Duration())

	tw.Update(DefaultDuration / 2)
	// Ease-out is past the midpoint at half time
	assert.Greater(t, x, 0.5)
}

func TestMismatchedLengthsPanic(t *testing.T) {
	x := 0.0
	assert.Panics(t, func() {
		To([]*float64{&x}, []float64{1, 2}, 1, nil)
	})
}

func TestTimelineSequence(t *testing.T) {
	a, b := 0.0, 0.0
	tl := NewTimeline()
	tl.Duration = 1
	tl.Ease = ease.Linear
	tl.To([]*float64{&a}, []float64{1}, 0).
		FromTo([]*float64{&b}, []float64{10}, []float64{20}, 2)
	require.Equal(t, 2, tl.Len())

	assert.False(t, tl.Update(1))
	assert.Equal(t, 1.0, a)
	assert.Equal(t, 10.0, b, "the next step starts as the previous ends")

	assert.False(t, tl.Update(1))
	assert.InDelta(t, 15, b, 1e-5)

	assert.True(t, tl.Update(1))
	assert.Equal(t, 20.0, b)
	assert.True(t, tl.Update(1), "finished timelines stay finished")
}

func TestGroupReplacesByKey(t *testing.T) {
	c := math3d.V3(0, 0, 0)
	g := NewGroup()

	first := To(Vec3(&c), []float64{1, 1, 1}, 1, ease.Linear)
	g.Add(&c, first)
	g.Update(0.5)
	assert.InDelta(t, 0.5, c.X, 1e-6)

	second := To(Vec3(&c), []float64{0, 0, 0}, 1, ease.Linear)
	g.Add(&c, second)
	assert.Equal(t, 1, g.Len())
	got, ok := g.Get(&c)
	require.True(t, ok)
	assert.Same(t, second, got)

	g.Update(1)
	assert.Equal(t, math3d.Zero3(), c)
	assert.Equal(t, 0, g.Len())
	assert.False(t, first.Done(), "replaced tween never ran again")
}

func TestGroupAddDuringUpdate(t *testing.T) {
	x, y := 0.0, 0.0
	g := NewGroup()

	tx := To([]*float64{&x}, []float64{1}, 0.1, ease.Linear)
	tx.OnComplete = func() {
		g.Add(&y, To([]*float64{&y}, []float64{1}, 0.1, ease.Linear))
	}
	g.Add(&x, tx)

	g.Update(0.1)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 0.0, y)
	assert.Equal(t, 1, g.Len())

	g.Update(0.1)
	assert.Equal(t, 1.0, y)
	assert.Equal(t, 0, g.Len())
}
