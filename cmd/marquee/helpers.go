package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/joho/godotenv"
	"github.com/mattn/go-runewidth"
)

// loadDotEnv loads environment variables from path. Missing files are
// ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// truncate shortens s to at most width display cells, appending an
// ellipsis when cut. Newlines are replaced with spaces for single-line
// display.
func truncate(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// fmtCycle formats the autoplay interval for the status bar.
func fmtCycle(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// newMarkdownRenderer builds a glamour renderer for slide captions.
func newMarkdownRenderer(width int) *glamour.TermRenderer {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	return r
}

// renderMarkdown converts caption markdown to terminal output, falling
// back to the plain text when the renderer is unavailable.
func renderMarkdown(r *glamour.TermRenderer, text string) string {
	if r == nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}

// padLines returns exactly n lines from s, truncating or padding with
// blanks so variable-height content cannot shift the layout below it.
func padLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
