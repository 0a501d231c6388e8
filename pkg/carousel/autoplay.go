package carousel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is the autoplay timer message. Tag identifies the timer
// generation that scheduled it; a tick whose tag no longer matches the
// carousel's current generation has been superseded by a later Start or
// by Stop and must be dropped.
type TickMsg struct {
	Tag int
}

// Running reports whether autoplay is active.
func (c *Carousel) Running() bool { return c.running }

// Start transitions autoplay to running and returns the command that
// schedules the next tick. Calling Start while already running first
// invalidates the live timer, so there is never more than one live timer
// per carousel. Starting an empty carousel returns nil: there is nothing
// to advance to.
func (c *Carousel) Start() tea.Cmd {
	if len(c.slides) == 0 {
		return nil
	}

	c.tag++ // any pending tick is now stale
	c.running = true

	return c.tickCmd()
}

// Stop cancels autoplay. Safe to call when already stopped.
func (c *Carousel) Stop() {
	c.running = false
	c.tag++
}

// Tick handles an autoplay tick: a live tick advances to the next slide
// and reschedules; stale or stopped ticks are dropped.
func (c *Carousel) Tick(msg TickMsg) tea.Cmd {
	if !c.running || msg.Tag != c.tag {
		return nil
	}

	c.SlidesNext()

	return c.tickCmd()
}

func (c *Carousel) tickCmd() tea.Cmd {
	tag := c.tag
	return tea.Tick(c.cycle, func(time.Time) tea.Msg {
		return TickMsg{Tag: tag}
	})
}
