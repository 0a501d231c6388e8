package carousel

import (
	"path/filepath"
	"strings"
)

// Slide is one navigable item in the carousel sequence.
type Slide struct {
	Src      string // image source (file path)
	Title    string // display title, defaults to the file name
	Caption  string // optional markdown caption
	Selected bool   // exactly one slide is selected while the sequence is non-empty
}

// NewSlide builds a Slide, defaulting the title from the source when
// none is given.
func NewSlide(src, title, caption string) Slide {
	if title == "" {
		title = titleFromSource(src)
	}
	return Slide{Src: src, Title: title, Caption: caption}
}

// SlidesFromSources builds a slide sequence from a list of image sources.
// Titles default to the base file name without its extension.
func SlidesFromSources(srcs []string) []Slide {
	slides := make([]Slide, 0, len(srcs))
	for _, src := range srcs {
		slides = append(slides, Slide{Src: src, Title: titleFromSource(src)})
	}
	return slides
}

func titleFromSource(src string) string {
	base := filepath.Base(src)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
