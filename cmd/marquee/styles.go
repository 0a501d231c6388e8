package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ovidel/marquee/pkg/carousel/controls"
	"github.com/ovidel/marquee/pkg/config"
)

const defaultThemeColor = "#0969da" // accent blue

// theme is the style set derived from the configured style options. It
// is built once at startup and passed explicitly to everything that
// renders; nothing reads ambient styling state.
type theme struct {
	accent   lipgloss.Color
	frame    lipgloss.Style
	title    lipgloss.Style
	dim      lipgloss.Style
	status   lipgloss.Style
	controls controls.Styles
}

func newTheme(sc config.StyleConfig) theme {
	colorValue := sc.ThemeColor
	if colorValue == "" {
		colorValue = defaultThemeColor
	}
	accent := lipgloss.Color(colorValue)

	border := lipgloss.NormalBorder()
	if sc.Radius {
		border = lipgloss.RoundedBorder()
	}

	muted := lipgloss.Color("8")

	return theme{
		accent: accent,
		frame:  lipgloss.NewStyle().Border(border).BorderForeground(accent),
		title:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		dim:    lipgloss.NewStyle().Foreground(muted),
		status: lipgloss.NewStyle().Foreground(muted),
		controls: controls.Styles{
			Arrow:       lipgloss.NewStyle().Bold(true).Foreground(accent),
			DotActive:   lipgloss.NewStyle().Bold(true).Foreground(accent),
			DotInactive: lipgloss.NewStyle().Foreground(muted),
		},
	}
}
