package carousel

import tea "github.com/charmbracelet/bubbletea"

// Plugin is a self-contained behavior unit attached to a Carousel. The
// carousel never depends on a plugin's implementation; a plugin holds
// only the reference handed to Attach for invoking public operations.
type Plugin interface {
	// Mount builds the plugin's markup and internal state from the slide
	// list. It runs before Attach.
	Mount(slides []Slide)

	// Attach wires the plugin's behavior: store the carousel reference,
	// subscribe to its notifier, whatever the plugin needs.
	Attach(c *Carousel)
}

// MsgHandler is an optional plugin capability. Hosts forward event-loop
// messages to plugins implementing it; a true consumed result means the
// message must not be handled further (the event-loop equivalent of
// suppressing a control's default activation).
type MsgHandler interface {
	HandleMsg(msg tea.Msg) (cmd tea.Cmd, consumed bool)
}

// Viewer is an optional plugin capability for plugins that render markup.
type Viewer interface {
	View() string
}

// BoundsSetter is an optional plugin capability. Hosts assign each
// control its screen rectangle after layout; hit testing is the
// control's own business.
type BoundsSetter interface {
	SetBounds(x, y, width, height int)
}
