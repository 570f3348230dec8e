package main

import (
	"fmt"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/scenery/pkg/render"
)

var (
	hudBg    = render.RGB(0, 0, 0)
	hudFPS   = render.RGB(120, 255, 120)
	hudTitle = render.RGB(255, 255, 255)
	hudDim   = render.RGB(200, 200, 120)
)

const hudHint = " drag: orbit  wheel: zoom  h: panel  ?: hud  esc: quit "

// HUD draws the frame rate, demo name and key hints over the view.
type HUD struct {
	Visible bool

	name      string
	fps       float64
	fpsFrames int
	fpsStart  float64
}

// NewHUD creates a hidden HUD for the named demo.
func NewHUD(name string) *HUD {
	return &HUD{name: name}
}

// UpdateFPS counts a frame ending at elapsed seconds and refreshes the
// rate once a second.
func (h *HUD) UpdateFPS(elapsed float64) {
	h.fpsFrames++
	if span := elapsed - h.fpsStart; span >= 1 {
		h.fps = float64(h.fpsFrames) / span
		h.fpsFrames = 0
		h.fpsStart = elapsed
	}
}

// FPS returns the last measured frame rate.
func (h *HUD) FPS() float64 {
	return h.fps
}

// Draw paints the HUD into area: frame rate and name on the top row,
// triangle count and hints on the bottom row.
func (h *HUD) Draw(scr uv.Screen, area uv.Rectangle, triangles int) {
	if !h.Visible {
		return
	}
	top, bottom := area.Min.Y, area.Max.Y-1

	render.DrawText(scr, area.Min.X, top, fmt.Sprintf(" %.0f FPS ", h.fps), hudFPS, hudBg)
	title := " " + h.name + " "
	render.DrawText(scr, area.Min.X+max((area.Dx()-len(title))/2, 0), top, title, hudTitle, hudBg)

	render.DrawText(scr, area.Min.X, bottom, fmt.Sprintf(" %d tris ", triangles), hudTitle, hudBg)
	render.DrawText(scr, max(area.Max.X-len(hudHint), area.Min.X), bottom, hudHint, hudDim, hudBg)
}
