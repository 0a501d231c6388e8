package main

import (
	"fmt"

	"github.com/ovidel/marquee/pkg/carousel"
)

// statusBarModel shows the selection position and autoplay state. It
// reads the carousel directly rather than subscribing to the notifier:
// the dot indicators are the notifier's consumer, the status bar is
// plain chrome.
type statusBarModel struct {
	car *carousel.Carousel
	th  theme
}

func newStatusBar(car *carousel.Carousel, th theme) statusBarModel {
	return statusBarModel{car: car, th: th}
}

func (m statusBarModel) View() string {
	idx, err := m.car.GetSelectedItemIndex()
	if err != nil {
		return m.th.status.Render(" no images configured")
	}

	autoplay := "paused"
	if m.car.Running() {
		autoplay = "on"
	}

	return m.th.status.Render(fmt.Sprintf(" slide %d/%d · autoplay %s · cycle %s",
		idx+1, m.car.Len(), autoplay, fmtCycle(m.car.Cycle())))
}
