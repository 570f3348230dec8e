package gui

import (
	"fmt"
	"strings"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/scenery/pkg/math3d"
	"github.com/taigrr/scenery/pkg/render"
)

// Folder groups controllers under a heading. Folders nest.
type Folder struct {
	Name  string
	Open  bool
	items []item
}

// item is either a controller or a subfolder.
type item struct {
	ctrl   Controller
	folder *Folder
}

// Add binds a number field with a range and step. The row has no name
// until SetName is called.
func (f *Folder) Add(target *float64, min, max, step float64) *NumberController {
	c := &NumberController{target: target, Min: min, Max: max, Step: step}
	f.items = append(f.items, item{ctrl: c})
	return c
}

// AddColor binds a color through an accessor.
func (f *Folder) AddColor(access ColorAccessor) *ColorController {
	c := &ColorController{access: access}
	f.items = append(f.items, item{ctrl: c})
	return c
}

// AddFolder appends an open subfolder.
func (f *Folder) AddFolder(name string) *Folder {
	sub := &Folder{Name: name, Open: true}
	f.items = append(f.items, item{folder: sub})
	return sub
}

// Controllers lists the folder's own controllers, not those of subfolders.
func (f *Folder) Controllers() []Controller {
	var out []Controller
	for _, it := range f.items {
		if it.ctrl != nil {
			out = append(out, it.ctrl)
		}
	}
	return out
}

// Folders lists the folder's direct subfolders.
func (f *Folder) Folders() []*Folder {
	var out []*Folder
	for _, it := range f.items {
		if it.folder != nil {
			out = append(out, it.folder)
		}
	}
	return out
}

// MakeXYZ adds a folder editing v with x and z in [-10, 10] and y in
// [0, 10]. onChange runs after any of them changes.
func MakeXYZ(parent *Folder, name string, v *math3d.Vec3, onChange func()) *Folder {
	f := parent.AddFolder(name)
	notify := func(float64) {
		if onChange != nil {
			onChange()
		}
	}
	f.Add(&v.X, -10, 10, 0.1).SetName("x").OnChange(notify)
	f.Add(&v.Y, 0, 10, 0.1).SetName("y").OnChange(notify)
	f.Add(&v.Z, -10, 10, 0.1).SetName("z").OnChange(notify)
	return f
}

// ChannelStep is how far one key press moves a color channel.
const ChannelStep = 15

// MakeRGB adds a closed folder with r, g and b rows editing color one
// channel at a time.
func MakeRGB(parent *Folder, name string, color *ColorController) *Folder {
	f := parent.AddFolder(name)
	f.Open = false
	for i, ch := range []string{"r", "g", "b"} {
		c := &ChannelController{name: ch, color: color, channel: i, Step: ChannelStep}
		f.items = append(f.items, item{ctrl: c})
	}
	return f
}

// Width is the panel's width in cells.
const Width = 30

// Panel is the root folder plus selection and visibility state.
type Panel struct {
	Folder
	Visible  bool
	selected int
}

// New creates a visible, empty panel.
func New(title string) *Panel {
	return &Panel{Folder: Folder{Name: title, Open: true}, Visible: true}
}

// row is one visible line: a folder heading or a controller.
type row struct {
	depth  int
	ctrl   Controller
	folder *Folder
}

func (p *Panel) rows() []row {
	var out []row
	var walk func(f *Folder, depth int)
	walk = func(f *Folder, depth int) {
		for _, it := range f.items {
			if it.folder != nil {
				out = append(out, row{depth: depth, folder: it.folder})
				if it.folder.Open {
					walk(it.folder, depth+1)
				}
				continue
			}
			out = append(out, row{depth: depth, ctrl: it.ctrl})
		}
	}
	walk(&p.Folder, 0)
	return out
}

// Selected returns the controller under the cursor, or nil when the
// cursor is on a folder heading.
func (p *Panel) Selected() Controller {
	rows := p.rows()
	if p.selected >= len(rows) {
		return nil
	}
	return rows[p.selected].ctrl
}

// Press handles a named key and reports whether it was used. up and down
// move the cursor, left and right step the selected value, h toggles the
// panel and enter toggles the folder under the cursor, or the panel when
// the cursor is on a controller. Only h works while the panel is hidden.
func (p *Panel) Press(key string) bool {
	switch key {
	case "h":
		p.Visible = !p.Visible
		return true
	}
	if !p.Visible {
		return false
	}

	rows := p.rows()
	if len(rows) == 0 {
		return false
	}
	p.selected = min(p.selected, len(rows)-1)
	cur := rows[p.selected]

	switch key {
	case "up":
		p.selected = (p.selected - 1 + len(rows)) % len(rows)
	case "down":
		p.selected = (p.selected + 1) % len(rows)
	case "left":
		if cur.ctrl == nil {
			return false
		}
		cur.ctrl.Decrement()
	case "right":
		if cur.ctrl == nil {
			return false
		}
		cur.ctrl.Increment()
	case "enter":
		if cur.folder == nil {
			p.Visible = !p.Visible
			return true
		}
		cur.folder.Open = !cur.folder.Open
	default:
		return false
	}
	return true
}

var (
	panelBg    = render.RGB(26, 26, 26)
	panelFg    = render.RGB(235, 235, 235)
	headingFg  = render.RGB(140, 200, 255)
	selectedBg = render.RGB(60, 60, 90)
)

// Draw paints the panel into the top right corner of area.
func (p *Panel) Draw(scr uv.Screen, area uv.Rectangle) {
	if !p.Visible {
		return
	}
	x := max(area.Max.X-Width, area.Min.X)
	y := area.Min.Y

	render.DrawText(scr, x, y, pad(" "+p.Name, Width), headingFg, panelBg)
	y++

	for i, r := range p.rows() {
		if y >= area.Max.Y {
			return
		}
		bg := panelBg
		if i == p.selected {
			bg = selectedBg
		}
		indent := strings.Repeat("  ", r.depth)

		if r.folder != nil {
			mark := "▸"
			if r.folder.Open {
				mark = "▾"
			}
			render.DrawText(scr, x, y, pad(fmt.Sprintf(" %s%s %s", indent, mark, r.folder.Name), Width), headingFg, bg)
			y++
			continue
		}

		name := indent + r.ctrl.Name()
		value := r.ctrl.Display()
		gap := max(Width-2-len([]rune(name))-len([]rune(value)), 1)
		line := " " + name + strings.Repeat(" ", gap) + value + " "
		fg := panelFg
		if cc, ok := r.ctrl.(*ColorController); ok {
			if c, err := render.ParseColor(cc.Value()); err == nil {
				fg = c.RGBA()
			}
		}
		render.DrawText(scr, x, y, pad(line, Width), fg, bg)
		y++
	}
}

func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return string([]rune(s)[:width])
	}
	return s + strings.Repeat(" ", width-n)
}
