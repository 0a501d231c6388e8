package carousel

import (
	"errors"
	"time"
)

// ErrEmptyCarousel is returned by the selected-item accessors when the
// carousel holds no slides.
var ErrEmptyCarousel = errors.New("carousel: no slides")

// DefaultCycle is the autoplay interval used when none is configured.
const DefaultCycle = 3 * time.Second

// Options configures a new Carousel.
type Options struct {
	Slides []Slide
	Cycle  time.Duration // autoplay interval; DefaultCycle when <= 0
}

// Carousel owns the slide sequence, the selection state and the autoplay
// timer. All mutation funnels through SlidesTo, which is expected to run
// on the UI goroutine (timer ticks and user input both arrive there as
// bubbletea messages), so navigation needs no locking.
type Carousel struct {
	slides   []Slide
	selected int
	cycle    time.Duration
	running  bool
	tag      int // autoplay timer generation; ticks from older generations are stale
	notifier *Notifier
	plugins  []Plugin
}

// New creates a Carousel with the first slide selected. An empty slide
// list is allowed: navigation becomes a no-op and the selected-item
// accessors fail with ErrEmptyCarousel.
func New(opts Options) *Carousel {
	cycle := opts.Cycle
	if cycle <= 0 {
		cycle = DefaultCycle
	}

	c := &Carousel{
		slides:   append([]Slide(nil), opts.Slides...),
		cycle:    cycle,
		notifier: newNotifier(),
	}
	for i := range c.slides {
		c.slides[i].Selected = i == 0
	}

	return c
}

// Len returns the number of slides.
func (c *Carousel) Len() int { return len(c.slides) }

// Cycle returns the autoplay interval.
func (c *Carousel) Cycle() time.Duration { return c.cycle }

// Slides returns a copy of the slide sequence.
func (c *Carousel) Slides() []Slide {
	return append([]Slide(nil), c.slides...)
}

// Notifier returns the carousel's notifier, the sole integration point
// for observing committed navigations.
func (c *Carousel) Notifier() *Notifier { return c.notifier }

// GetSelectedItemIndex returns the index of the selected slide, always in
// [0, Len()). It fails with ErrEmptyCarousel when the carousel is empty.
func (c *Carousel) GetSelectedItemIndex() (int, error) {
	if len(c.slides) == 0 {
		return 0, ErrEmptyCarousel
	}
	return c.selected, nil
}

// GetSelectedItem returns the selected slide.
func (c *Carousel) GetSelectedItem() (Slide, error) {
	if len(c.slides) == 0 {
		return Slide{}, ErrEmptyCarousel
	}
	return c.slides[c.selected], nil
}

// SlidesTo selects the slide at index and notifies observers with the new
// index. Out-of-range indexes and the currently selected index are
// ignored: no state change, no notification. Indexes routinely come from
// hit tests that report "not found" as -1, so the range guard is part of
// the contract, not just defense. Reports whether the navigation
// committed.
func (c *Carousel) SlidesTo(index int) bool {
	if index < 0 || index >= len(c.slides) || index == c.selected {
		return false
	}

	if c.selected >= 0 && c.selected < len(c.slides) {
		c.slides[c.selected].Selected = false
	}
	c.slides[index].Selected = true
	c.selected = index

	// Observers run after the selection has changed so re-entrant reads
	// see the new state.
	c.notifier.publish(index)

	return true
}

// SlidesNext advances to the next slide, wrapping to the first after the
// last.
func (c *Carousel) SlidesNext() bool {
	n := len(c.slides)
	if n == 0 {
		return false
	}
	return c.SlidesTo((c.selected + 1) % n)
}

// SlidesPrev moves to the previous slide, wrapping to the last before the
// first. The +n bias keeps the dividend non-negative so the result is
// always in [0, n).
func (c *Carousel) SlidesPrev() bool {
	n := len(c.slides)
	if n == 0 {
		return false
	}
	return c.SlidesTo((c.selected - 1 + n) % n)
}

// RegisterPlugins mounts and attaches each plugin in the order given.
// Plugin i has fully completed Mount and Attach before plugin i+1 begins.
func (c *Carousel) RegisterPlugins(plugins ...Plugin) {
	for _, p := range plugins {
		p.Mount(c.Slides())
		p.Attach(c)
		c.plugins = append(c.plugins, p)
	}
}

// Plugins returns the registered plugins in registration order.
func (c *Carousel) Plugins() []Plugin {
	return append([]Plugin(nil), c.plugins...)
}
