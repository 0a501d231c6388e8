package controls

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ovidel/marquee/pkg/carousel"
)

const prevGlyph = "❮"

// PrevControl navigates to the previous slide on key press or mouse
// click. Activation stops autoplay before navigating and restarts it
// after, so a timer-driven advance can never interleave with the
// user-driven one.
type PrevControl struct {
	car    *carousel.Carousel
	keys   key.Binding
	styles Styles
	bounds rect
}

// NewPrev creates the previous-slide control.
func NewPrev(styles Styles) *PrevControl {
	return &PrevControl{
		keys: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		styles: styles,
	}
}

// Mount implements carousel.Plugin. The arrow renders the same markup
// regardless of slide count, so there is nothing to build.
func (p *PrevControl) Mount([]carousel.Slide) {}

// Attach implements carousel.Plugin.
func (p *PrevControl) Attach(c *carousel.Carousel) { p.car = c }

// SetBounds assigns the control's screen rectangle for click hit tests.
func (p *PrevControl) SetBounds(x, y, width, height int) {
	p.bounds = rect{x: x, y: y, w: width, h: height}
}

// HandleMsg activates on a matching key or a left click inside the
// control's bounds. Consumed messages must not be handled further.
func (p *PrevControl) HandleMsg(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, p.keys) {
			return p.activate(), true
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
			p.bounds.contains(msg.X, msg.Y) {
			return p.activate(), true
		}
	}
	return nil, false
}

func (p *PrevControl) activate() tea.Cmd {
	if p.car == nil {
		return nil
	}
	p.car.Stop()
	p.car.SlidesPrev()
	return p.car.Start()
}

// View implements carousel.Viewer.
func (p *PrevControl) View() string {
	return p.styles.Arrow.Render(prevGlyph)
}

// Keys returns the control's key binding for help lines.
func (p *PrevControl) Keys() key.Binding { return p.keys }
