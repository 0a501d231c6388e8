package carousel

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCarousel(n int) *Carousel {
	srcs := make([]string, n)
	for i := range srcs {
		srcs[i] = fmt.Sprintf("img-%d.png", i)
	}
	return New(Options{Slides: SlidesFromSources(srcs)})
}

func TestNewDefaults(t *testing.T) {
	c := newTestCarousel(3)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, DefaultCycle, c.Cycle())
	assert.False(t, c.Running())

	idx, err := c.GetSelectedItemIndex()
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	slide, err := c.GetSelectedItem()
	require.NoError(t, err)
	assert.Equal(t, "img-0.png", slide.Src)
	assert.True(t, slide.Selected)
}

func TestNewExplicitCycle(t *testing.T) {
	c := New(Options{
		Slides: SlidesFromSources([]string{"a.png"}),
		Cycle:  5 * time.Second,
	})
	assert.Equal(t, 5*time.Second, c.Cycle())
}

func TestEmptyCarousel(t *testing.T) {
	c := New(Options{})

	_, err := c.GetSelectedItemIndex()
	assert.ErrorIs(t, err, ErrEmptyCarousel)

	_, err = c.GetSelectedItem()
	assert.ErrorIs(t, err, ErrEmptyCarousel)

	// Navigation on an empty carousel is a no-op, not a panic.
	assert.False(t, c.SlidesNext())
	assert.False(t, c.SlidesPrev())
	assert.False(t, c.SlidesTo(0))
}

func TestSlidesToMovesSelection(t *testing.T) {
	c := newTestCarousel(4)

	assert.True(t, c.SlidesTo(2))

	idx, err := c.GetSelectedItemIndex()
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	// Exactly one slide carries the selected flag.
	var selected int
	for _, s := range c.Slides() {
		if s.Selected {
			selected++
		}
	}
	assert.Equal(t, 1, selected)
}

func TestSlidesToOutOfRangeIsInert(t *testing.T) {
	c := newTestCarousel(4)
	var notified int
	c.Notifier().Observe(func(Notification) { notified++ })

	for _, idx := range []int{-1, 4, 100} {
		assert.False(t, c.SlidesTo(idx), "index %d", idx)
	}

	got, err := c.GetSelectedItemIndex()
	require.NoError(t, err)
	assert.Equal(t, 0, got)
	assert.Zero(t, notified)
}

func TestSlidesToSameIndexIsInert(t *testing.T) {
	c := newTestCarousel(4)
	var notified int
	c.Notifier().Observe(func(Notification) { notified++ })

	assert.False(t, c.SlidesTo(0))
	assert.Zero(t, notified)
}

func TestCycleClosure(t *testing.T) {
	// N calls to SlidesNext return the selection to where it started,
	// from any starting index.
	for n := 1; n <= 5; n++ {
		for start := 0; start < n; start++ {
			c := newTestCarousel(n)
			c.SlidesTo(start)

			for i := 0; i < n; i++ {
				c.SlidesNext()
			}

			got, err := c.GetSelectedItemIndex()
			require.NoError(t, err)
			assert.Equal(t, start, got, "n=%d start=%d", n, start)
		}
	}
}

func TestPrevNextInverse(t *testing.T) {
	for start := 0; start < 4; start++ {
		c := newTestCarousel(4)
		c.SlidesTo(start)

		c.SlidesPrev()
		c.SlidesNext()
		got, err := c.GetSelectedItemIndex()
		require.NoError(t, err)
		assert.Equal(t, start, got, "prev-then-next from %d", start)

		c.SlidesNext()
		c.SlidesPrev()
		got, err = c.GetSelectedItemIndex()
		require.NoError(t, err)
		assert.Equal(t, start, got, "next-then-prev from %d", start)
	}
}

func TestPrevWrapsNonNegative(t *testing.T) {
	c := newTestCarousel(3)

	assert.True(t, c.SlidesPrev())

	got, err := c.GetSelectedItemIndex()
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestNavigationScenario(t *testing.T) {
	// 4 images at index 0: SlidesTo(2) notifies {2}, then SlidesPrev
	// notifies {1}.
	c := newTestCarousel(4)
	var seen []int
	c.Notifier().Observe(func(n Notification) { seen = append(seen, n.Index) })

	c.SlidesTo(2)
	c.SlidesPrev()

	assert.Equal(t, []int{2, 1}, seen)
}

func TestSingleSlideNextIsInert(t *testing.T) {
	c := newTestCarousel(1)
	var notified int
	c.Notifier().Observe(func(Notification) { notified++ })

	assert.False(t, c.SlidesNext())
	assert.Zero(t, notified)
}

type recordingPlugin struct {
	name    string
	log     *[]string
	mounted int
	car     *Carousel
}

func (p *recordingPlugin) Mount(slides []Slide) {
	p.mounted = len(slides)
	*p.log = append(*p.log, p.name+":mount")
}

func (p *recordingPlugin) Attach(c *Carousel) {
	p.car = c
	*p.log = append(*p.log, p.name+":attach")
}

func TestRegisterPluginsOrder(t *testing.T) {
	c := newTestCarousel(3)
	var log []string
	a := &recordingPlugin{name: "a", log: &log}
	b := &recordingPlugin{name: "b", log: &log}

	c.RegisterPlugins(a, b)

	// Plugin a completes mount and attach before plugin b begins.
	assert.Equal(t, []string{"a:mount", "a:attach", "b:mount", "b:attach"}, log)
	assert.Equal(t, 3, a.mounted)
	assert.Same(t, c, a.car)
	assert.Len(t, c.Plugins(), 2)
}

func TestSlidesFromSources(t *testing.T) {
	slides := SlidesFromSources([]string{"/photos/beach sunset.jpg", "cat.png"})

	assert.Equal(t, "beach sunset", slides[0].Title)
	assert.Equal(t, "cat", slides[1].Title)
	assert.Equal(t, "/photos/beach sunset.jpg", slides[0].Src)
}
