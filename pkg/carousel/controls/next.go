package controls

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ovidel/marquee/pkg/carousel"
)

const nextGlyph = "❯"

// NextControl navigates to the next slide on key press or mouse click,
// symmetric to PrevControl.
type NextControl struct {
	car    *carousel.Carousel
	keys   key.Binding
	styles Styles
	bounds rect
}

// NewNext creates the next-slide control.
func NewNext(styles Styles) *NextControl {
	return &NextControl{
		keys: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		styles: styles,
	}
}

// Mount implements carousel.Plugin.
func (n *NextControl) Mount([]carousel.Slide) {}

// Attach implements carousel.Plugin.
func (n *NextControl) Attach(c *carousel.Carousel) { n.car = c }

// SetBounds assigns the control's screen rectangle for click hit tests.
func (n *NextControl) SetBounds(x, y, width, height int) {
	n.bounds = rect{x: x, y: y, w: width, h: height}
}

// HandleMsg activates on a matching key or a left click inside the
// control's bounds.
func (n *NextControl) HandleMsg(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, n.keys) {
			return n.activate(), true
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
			n.bounds.contains(msg.X, msg.Y) {
			return n.activate(), true
		}
	}
	return nil, false
}

func (n *NextControl) activate() tea.Cmd {
	if n.car == nil {
		return nil
	}
	n.car.Stop()
	n.car.SlidesNext()
	return n.car.Start()
}

// View implements carousel.Viewer.
func (n *NextControl) View() string {
	return n.styles.Arrow.Render(nextGlyph)
}

// Keys returns the control's key binding for help lines.
func (n *NextControl) Keys() key.Binding { return n.keys }
