// Package controls provides the stock carousel plugins: previous/next
// arrow controls and the dot indicator row. Each is decoupled from the
// carousel's internals and from the other controls; they act only
// through the carousel's public operations and its notifier.
package controls

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles shared by the stock controls. The
// host builds one from its theme and hands it to each constructor, so
// controls never reach into ambient styling state.
type Styles struct {
	Arrow       lipgloss.Style
	DotActive   lipgloss.Style
	DotInactive lipgloss.Style
}

// DefaultStyles returns an unthemed style set usable in tests.
func DefaultStyles() Styles {
	return Styles{
		Arrow:       lipgloss.NewStyle().Bold(true),
		DotActive:   lipgloss.NewStyle().Bold(true),
		DotInactive: lipgloss.NewStyle().Faint(true),
	}
}

// rect is a control's screen rectangle in cell coordinates.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}
