package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/Nomadcxx/plura/internal/focus"
)

// placed is an element together with the cells it occupies
type placed struct {
	element
	rect focus.Rect
}

// block is one rendered piece of a row; el is nil for decoration
type block struct {
	view string
	el   *element
}

// frame stacks rendered rows top to bottom and records where every
// focusable block lands, so layout is known without re-parsing the output.
// Blocks are also marked for the zone manager, which serves mouse hits.
type frame struct {
	zones  *zone.Manager
	rows   []string
	height int
	placed []placed
}

func newFrame(z *zone.Manager) *frame {
	return &frame{zones: z}
}

// text appends a non-interactive row
func (f *frame) text(s string) {
	f.rows = append(f.rows, s)
	f.height += lipgloss.Height(s)
}

// blank appends n empty rows
func (f *frame) blank(n int) {
	for i := 0; i < n; i++ {
		f.text("")
	}
}

// row places blocks left to right starting at column x, gap cells apart
func (f *frame) row(x, gap int, blocks ...block) {
	parts := make([]string, 0, 2*len(blocks)+1)
	if x > 0 {
		parts = append(parts, strings.Repeat(" ", x))
	}

	cx := x
	for i, b := range blocks {
		if i > 0 && gap > 0 {
			parts = append(parts, strings.Repeat(" ", gap))
			cx += gap
		}

		w, h := lipgloss.Width(b.view), lipgloss.Height(b.view)
		view := b.view
		if b.el != nil {
			f.placed = append(f.placed, placed{
				element: *b.el,
				rect:    focus.Rect{X: cx, Y: f.height, W: w, H: h},
			})
			if f.zones != nil {
				view = f.zones.Mark(b.el.id, view)
			}
		}
		parts = append(parts, view)
		cx += w
	}

	f.text(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

// nest appends a rendered container at column x whose content was laid out
// by inner. (dx, dy) is where inner's origin sits inside the container.
func (f *frame) nest(x int, container string, inner *frame, dx, dy int) {
	for _, p := range inner.placed {
		p.rect = p.rect.Translate(x+dx, f.height+dy)
		f.placed = append(f.placed, p)
	}
	f.row(x, 0, block{view: container})
}

// elements returns the placed elements in layout order
func (f *frame) elements() []element {
	out := make([]element, len(f.placed))
	for i, p := range f.placed {
		out[i] = p.element
	}
	return out
}

// geometry returns the recorded rects by id
func (f *frame) geometry() focus.StaticGeometry {
	g := make(focus.StaticGeometry, len(f.placed))
	for _, p := range f.placed {
		g[p.id] = p.rect
	}
	return g
}

// String joins the rows
func (f *frame) String() string {
	return strings.Join(f.rows, "\n")
}
