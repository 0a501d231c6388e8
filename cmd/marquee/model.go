package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/ovidel/marquee/pkg/carousel"
	"github.com/ovidel/marquee/pkg/carousel/controls"
	"github.com/ovidel/marquee/pkg/imgrender"
)

// Fixed chrome heights below the image frame. The caption region is
// padded to a constant height so the controls row never shifts and the
// mouse bounds assigned at layout time stay valid.
const (
	titleRows   = 1
	captionRows = 2
	controlRows = 1
	statusRows  = 1
	helpRows    = 1
)

type keyMap struct {
	Prev   key.Binding // handled by the prev control; listed here for help
	Next   key.Binding // handled by the next control; listed here for help
	Toggle key.Binding
	Jump   key.Binding
	Quit   key.Binding
}

func newKeyMap(prev, next key.Binding) keyMap {
	return keyMap{
		Prev: prev,
		Next: next,
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause/resume"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to slide"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Toggle, k.Jump, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next, k.Toggle}, {k.Jump, k.Quit}}
}

// appModel is the root bubbletea model. All carousel mutation funnels
// through Update: autoplay ticks, key presses and mouse events arrive
// here as messages on the single UI goroutine.
type appModel struct {
	car    *carousel.Carousel
	prevC  *controls.PrevControl
	nextC  *controls.NextControl
	dots   *controls.DotsControl
	th     theme
	status statusBarModel
	keys   keyMap
	help   help.Model
	md     *glamour.TermRenderer
	rend   imgrender.Renderer
	frames map[int]string // rendered image per slide index; reset on resize
	width  int
	height int
}

func newAppModel(car *carousel.Carousel, th theme) appModel {
	prevC := controls.NewPrev(th.controls)
	nextC := controls.NewNext(th.controls)
	dots := controls.NewDots(th.controls)
	car.RegisterPlugins(prevC, nextC, dots)

	return appModel{
		car:    car,
		prevC:  prevC,
		nextC:  nextC,
		dots:   dots,
		th:     th,
		status: newStatusBar(car, th),
		keys:   newKeyMap(prevC.Keys(), nextC.Keys()),
		help:   help.New(),
		frames: make(map[int]string),
	}
}

func (m appModel) Init() tea.Cmd {
	return m.car.Start()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case carousel.TickMsg:
		return m, m.car.Tick(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if cmd, consumed := m.forwardToPlugins(msg); consumed {
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m appModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var (
		pane    string
		title   string
		caption string
	)

	slide, err := m.car.GetSelectedItem()
	if err != nil {
		pane = m.rend.Placeholder("no images configured")
	} else {
		idx, _ := m.car.GetSelectedItemIndex()
		pane = m.frameFor(idx, slide)
		title = slide.Title
		if slide.Caption != "" {
			caption = renderMarkdown(m.md, slide.Caption)
		}
	}

	// The frame box keeps its full size regardless of the rendered
	// image's aspect ratio, so the rows below never shift.
	framed := m.th.frame.
		Width(m.rend.Width).
		Height(m.rend.Height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(pane)
	framed = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, framed)

	titleLine := lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
		m.th.title.Render(truncate(title, m.width-2)))

	return lipgloss.JoinVertical(lipgloss.Left,
		framed,
		titleLine,
		padLines(caption, captionRows),
		m.controlsLine(),
		m.status.View(),
		m.help.View(m.keys),
	)
}

// controlsLine renders "❮  ● ○ ○  ❯" at the exact columns the controls
// were given as bounds.
func (m appModel) controlsLine() string {
	startX, _ := m.controlsOrigin()
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", startX))
	sb.WriteString(m.prevC.View())
	sb.WriteString("  ")
	sb.WriteString(m.dots.View())
	sb.WriteString("  ")
	sb.WriteString(m.nextC.View())
	return sb.String()
}

// controlsOrigin returns the left column and row of the controls line.
func (m appModel) controlsOrigin() (x, y int) {
	total := 1 + 2 + m.dots.Width() + 2 + 1 // arrow, gap, dots, gap, arrow
	x = (m.width - total) / 2
	if x < 0 {
		x = 0
	}
	// Frame rows (pane + 2 border rows) + title + caption region.
	y = m.rend.Height + 2 + titleRows + captionRows
	return x, y
}

func (m *appModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	paneW := max(m.width-4, 1)
	paneH := max(m.height-(2+titleRows+captionRows+controlRows+statusRows+helpRows), 1)
	m.rend = imgrender.Renderer{Width: paneW, Height: paneH}

	m.md = newMarkdownRenderer(m.width - 4)
	m.help.Width = m.width
	m.frames = make(map[int]string)

	m.layout()
	return *m, nil
}

// layout hands every control its screen rectangle. Controls do their
// own hit testing from then on.
func (m *appModel) layout() {
	startX, y := m.controlsOrigin()
	m.prevC.SetBounds(startX, y, 1, 1)
	m.dots.SetBounds(startX+3, y, m.dots.Width(), 1)
	m.nextC.SetBounds(startX+3+m.dots.Width()+2, y, 1, 1)
}

func (m *appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return *m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		if m.car.Running() {
			m.car.Stop()
			return *m, nil
		}
		return *m, m.car.Start()

	case key.Matches(msg, m.keys.Jump):
		// Manual navigation contract: stop, navigate, restart.
		idx := int(msg.String()[0] - '1')
		m.car.Stop()
		m.car.SlidesTo(idx)
		return *m, m.car.Start()
	}

	if cmd, consumed := m.forwardToPlugins(msg); consumed {
		return *m, cmd
	}
	return *m, nil
}

// forwardToPlugins offers the message to each plugin in registration
// order; the first consumer wins and further handling is suppressed.
func (m *appModel) forwardToPlugins(msg tea.Msg) (tea.Cmd, bool) {
	for _, p := range m.car.Plugins() {
		h, ok := p.(carousel.MsgHandler)
		if !ok {
			continue
		}
		if cmd, consumed := h.HandleMsg(msg); consumed {
			return cmd, true
		}
	}
	return nil, false
}

// frameFor returns the rendered image for the slide, cached per index
// until the next resize. Unreadable sources render as a placeholder so
// navigation never fails on bad media.
func (m appModel) frameFor(idx int, slide carousel.Slide) string {
	if frame, ok := m.frames[idx]; ok {
		return frame
	}

	frame, err := m.rend.RenderFile(slide.Src)
	if err != nil {
		frame = m.rend.Placeholder(slide.Src)
	}
	m.frames[idx] = frame
	return frame
}
