package demo

import (
	"math"
	"math/rand/v2"

	"github.com/taigrr/scenery/pkg/render"
	"github.com/taigrr/scenery/pkg/scene"
	"github.com/taigrr/scenery/pkg/tween"
)

// DeriveColor maps a pointer position over a width x height view to an
// RGB color: red follows x, green follows y and blue is random.
func DeriveColor(x, y float64, width, height int, rnd *rand.Rand) (r, g, b uint8) {
	return channel(x, width), channel(y, height), channel(rnd.Float64(), 1)
}

func channel(v float64, extent int) uint8 {
	if extent <= 0 {
		return 0
	}
	return uint8(math.Max(0, math.Min(255, math.Round(v/float64(extent)*255))))
}

// Recolor tweens a color toward DeriveColor while a button is held and the
// pointer moves.
type Recolor struct {
	Target *scene.Color
	down   bool
}

// Handle tracks the button and starts a tween on moves. Each new tween
// replaces the running one.
func (r *Recolor) Handle(c *Context, ev Event) {
	switch e := ev.(type) {
	case PointerDown:
		r.down = true
	case PointerUp:
		r.down = false
	case PointerMove:
		if !r.down || r.Target == nil {
			return
		}
		to := render.ColorFromRGB8(DeriveColor(e.X, e.Y, c.Width, c.Height, c.Rand))
		c.Tweens.Add(r.Target, tween.To(colorChannels(r.Target), []float64{to.R, to.G, to.B},
			tween.DefaultDuration, tween.DefaultEase))
	}
}

// Down reports whether a button is held.
func (r *Recolor) Down() bool {
	return r.down
}

func colorChannels(c *scene.Color) []*float64 {
	return []*float64{&c.R, &c.G, &c.B}
}
