package controls

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovidel/marquee/pkg/carousel"
)

func newTestCarousel(n int) *carousel.Carousel {
	srcs := make([]string, n)
	for i := range srcs {
		srcs[i] = fmt.Sprintf("img-%d.png", i)
	}
	return carousel.New(carousel.Options{
		Slides: carousel.SlidesFromSources(srcs),
		Cycle:  time.Millisecond, // keep executed tick commands fast
	})
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func selectedIndex(t *testing.T, c *carousel.Carousel) int {
	t.Helper()
	idx, err := c.GetSelectedItemIndex()
	require.NoError(t, err)
	return idx
}

func TestPrevControlKey(t *testing.T) {
	c := newTestCarousel(4)
	prev := NewPrev(DefaultStyles())
	c.RegisterPlugins(prev)

	cmd, consumed := prev.HandleMsg(keyMsg("left"))
	assert.True(t, consumed)
	assert.NotNil(t, cmd, "activation restarts autoplay")
	assert.True(t, c.Running())
	assert.Equal(t, 3, selectedIndex(t, c), "wraps backward from 0")
}

func TestPrevControlIgnoresOtherKeys(t *testing.T) {
	c := newTestCarousel(4)
	prev := NewPrev(DefaultStyles())
	c.RegisterPlugins(prev)

	cmd, consumed := prev.HandleMsg(keyMsg("x"))
	assert.False(t, consumed)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, selectedIndex(t, c))
}

func TestPrevControlClick(t *testing.T) {
	c := newTestCarousel(4)
	prev := NewPrev(DefaultStyles())
	c.RegisterPlugins(prev)
	prev.SetBounds(10, 5, 1, 1)

	_, consumed := prev.HandleMsg(click(3, 3))
	assert.False(t, consumed, "click outside bounds is not ours")

	cmd, consumed := prev.HandleMsg(click(10, 5))
	assert.True(t, consumed)
	assert.NotNil(t, cmd)
	assert.Equal(t, 3, selectedIndex(t, c))
}

func TestNextControlKey(t *testing.T) {
	c := newTestCarousel(4)
	next := NewNext(DefaultStyles())
	c.RegisterPlugins(next)

	cmd, consumed := next.HandleMsg(keyMsg("l"))
	assert.True(t, consumed)
	assert.NotNil(t, cmd)
	assert.True(t, c.Running())
	assert.Equal(t, 1, selectedIndex(t, c))
}

func TestNextControlStopsBeforeNavigating(t *testing.T) {
	// The pending autoplay tick from before the key press must be
	// invalidated by the control's stop-navigate-restart sequence.
	c := newTestCarousel(4)
	next := NewNext(DefaultStyles())
	c.RegisterPlugins(next)

	start := c.Start()
	require.NotNil(t, start)
	pending := start().(carousel.TickMsg)

	_, consumed := next.HandleMsg(keyMsg("right"))
	require.True(t, consumed)
	assert.Equal(t, 1, selectedIndex(t, c))

	assert.Nil(t, c.Tick(pending), "stale tick must be dropped")
	assert.Equal(t, 1, selectedIndex(t, c), "no double advance")
}

func TestDotsMount(t *testing.T) {
	dots := NewDots(DefaultStyles())
	dots.Mount(carousel.SlidesFromSources([]string{"a.png", "b.png", "c.png"}))

	view := dots.View()
	assert.Contains(t, view, dotActiveGlyph)
	assert.Equal(t, 0, dots.Selected())
	assert.Equal(t, 5, dots.Width())
}

func TestDotsEmpty(t *testing.T) {
	dots := NewDots(DefaultStyles())
	dots.Mount(nil)

	assert.Empty(t, dots.View())
	assert.Zero(t, dots.Width())
}

func TestDotsFollowNavigation(t *testing.T) {
	c := newTestCarousel(3)
	dots := NewDots(DefaultStyles())
	c.RegisterPlugins(dots)

	c.SlidesTo(2)
	assert.Equal(t, 2, dots.Selected())

	c.SlidesPrev()
	assert.Equal(t, 1, dots.Selected())
}

func TestDotsHoverScenario(t *testing.T) {
	// 3 images: hover indicator 2 selects slide 2 and pauses autoplay;
	// leaving the row resumes it and the next tick wraps to 0.
	c := newTestCarousel(3)
	dots := NewDots(DefaultStyles())
	c.RegisterPlugins(dots)
	dots.SetBounds(10, 8, dots.Width(), 1)

	require.NotNil(t, c.Start())

	// Dot i sits at column 10 + 2*i.
	cmd, consumed := dots.HandleMsg(motion(14, 8))
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.Equal(t, 2, selectedIndex(t, c))
	assert.False(t, c.Running())

	cmd, consumed = dots.HandleMsg(motion(30, 20))
	assert.True(t, consumed, "the leave transition is ours")
	require.NotNil(t, cmd, "leaving restarts autoplay")
	assert.True(t, c.Running())

	tick := cmd().(carousel.TickMsg)
	assert.NotNil(t, c.Tick(tick))
	assert.Equal(t, 0, selectedIndex(t, c), "wraps around from 2")
}

func TestDotsGapColumnIsNotAnIndicator(t *testing.T) {
	c := newTestCarousel(3)
	dots := NewDots(DefaultStyles())
	c.RegisterPlugins(dots)
	dots.SetBounds(10, 8, dots.Width(), 1)

	require.NotNil(t, c.Start())

	_, consumed := dots.HandleMsg(motion(11, 8))
	assert.True(t, consumed, "still inside the row")
	assert.Equal(t, 0, selectedIndex(t, c), "gap hover does not navigate")
	assert.True(t, c.Running())
}

func TestDotsMotionElsewhereNotConsumed(t *testing.T) {
	dots := NewDots(DefaultStyles())
	dots.Mount(carousel.SlidesFromSources([]string{"a.png"}))
	dots.SetBounds(0, 0, dots.Width(), 1)

	_, consumed := dots.HandleMsg(motion(40, 12))
	assert.False(t, consumed)
}
