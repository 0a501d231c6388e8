package controls

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ovidel/marquee/pkg/carousel"
)

const (
	dotActiveGlyph   = "●"
	dotInactiveGlyph = "○"
	dotStride        = 2 // glyph column plus one gap column
)

// DotsControl renders one indicator per slide and keeps it in sync with
// the carousel purely through the notifier: the carousel never learns
// that indicators exist. Hovering a dot navigates to its slide and
// pauses autoplay; moving the pointer off the row resumes it.
type DotsControl struct {
	car      *carousel.Carousel
	styles   Styles
	count    int
	selected int
	bounds   rect
	hovering bool
}

// NewDots creates the dot indicator control.
func NewDots(styles Styles) *DotsControl {
	return &DotsControl{styles: styles}
}

// Mount builds one indicator per slide with the first marked selected.
func (d *DotsControl) Mount(slides []carousel.Slide) {
	d.count = len(slides)
	d.selected = 0
}

// Attach subscribes to the notifier so the marked dot follows every
// committed navigation, whoever triggered it.
func (d *DotsControl) Attach(c *carousel.Carousel) {
	d.car = c
	c.Notifier().Observe(func(n carousel.Notification) {
		d.selected = n.Index
	})
}

// SetBounds assigns the indicator row's screen rectangle.
func (d *DotsControl) SetBounds(x, y, width, height int) {
	d.bounds = rect{x: x, y: y, w: width, h: height}
}

// HandleMsg reacts to pointer motion. Entering a known indicator
// navigates to it and stops autoplay; leaving the row restarts it. Gap
// columns between dots belong to the row but are not indicators.
func (d *DotsControl) HandleMsg(msg tea.Msg) (tea.Cmd, bool) {
	m, ok := msg.(tea.MouseMsg)
	if !ok || m.Action != tea.MouseActionMotion {
		return nil, false
	}

	switch {
	case d.bounds.contains(m.X, m.Y):
		d.hovering = true
		if d.car != nil {
			if i := d.dotAt(m.X); i >= 0 {
				d.car.Stop()
				d.car.SlidesTo(i)
			}
		}
		return nil, true

	case d.hovering:
		d.hovering = false
		if d.car == nil {
			return nil, true
		}
		return d.car.Start(), true
	}

	return nil, false
}

// dotAt maps a screen column to an indicator index, or -1 when the
// column is a gap or outside the row.
func (d *DotsControl) dotAt(x int) int {
	rel := x - d.bounds.x
	if rel < 0 || rel%dotStride != 0 {
		return -1
	}
	i := rel / dotStride
	if i >= d.count {
		return -1
	}
	return i
}

// View implements carousel.Viewer: the indicator row, selected dot
// filled.
func (d *DotsControl) View() string {
	if d.count == 0 {
		return ""
	}

	parts := make([]string, 0, d.count)
	for i := 0; i < d.count; i++ {
		if i == d.selected {
			parts = append(parts, d.styles.DotActive.Render(dotActiveGlyph))
		} else {
			parts = append(parts, d.styles.DotInactive.Render(dotInactiveGlyph))
		}
	}
	return strings.Join(parts, " ")
}

// Width returns the row's rendered width in cells.
func (d *DotsControl) Width() int {
	if d.count == 0 {
		return 0
	}
	return d.count*dotStride - 1
}

// Selected returns the index of the currently marked indicator.
func (d *DotsControl) Selected() int { return d.selected }
