// Package imgrender turns images into ANSI half-block art. Each
// terminal cell shows two vertically stacked pixels via the upper
// half-block glyph: the foreground color paints the top pixel, the
// background color the bottom one.
package imgrender

import (
	"fmt"
	"image"
	"os"
	"strings"

	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register decoder
)

const halfBlock = "▀"

// Renderer converts images into cell art no larger than Width x Height
// terminal cells, preserving aspect ratio.
type Renderer struct {
	Width  int // max width in cells
	Height int // max height in rows; each row carries two pixel rows
}

// RenderFile decodes the image at path and renders it. Callers should
// fall back to Placeholder when this fails: a bad file must never take
// down navigation.
func (r Renderer) RenderFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the user's own configuration
	if err != nil {
		return "", fmt.Errorf("imgrender: open: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("imgrender: decode %s: %w", path, err)
	}

	return r.Render(img), nil
}

// Render scales img to fit the renderer's cell box and emits the
// half-block rows.
func (r Renderer) Render(img image.Image) string {
	if r.Width <= 0 || r.Height <= 0 {
		return ""
	}

	w, h := fitPixels(img.Bounds().Dx(), img.Bounds().Dy(), r.Width, r.Height*2)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	var sb strings.Builder
	for y := 0; y < h; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			cell := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexAt(dst, x, y))).
				Background(lipgloss.Color(hexAt(dst, x, y+1)))
			sb.WriteString(cell.Render(halfBlock))
		}
	}

	return sb.String()
}

// Placeholder renders a dimmed centered label filling the renderer's
// box, used when a slide's source cannot be read or decoded.
func (r Renderer) Placeholder(label string) string {
	if r.Width <= 0 || r.Height <= 0 {
		return ""
	}

	return lipgloss.NewStyle().
		Width(r.Width).
		Height(r.Height).
		Align(lipgloss.Center, lipgloss.Center).
		Faint(true).
		Render(label)
}

// fitPixels scales (sw, sh) to fit (maxW, maxH) preserving aspect ratio.
// The height is rounded up to an even pixel count so every cell has a
// top and a bottom pixel.
func fitPixels(sw, sh, maxW, maxH int) (int, int) {
	if sw <= 0 || sh <= 0 {
		return 1, 2
	}

	ratio := float64(maxW) / float64(sw)
	if hr := float64(maxH) / float64(sh); hr < ratio {
		ratio = hr
	}

	w := int(float64(sw)*ratio + 0.5)
	h := int(float64(sh)*ratio + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 2 {
		h = 2
	}
	if h%2 != 0 {
		h++
	}
	if h > maxH {
		h = maxH - maxH%2
	}

	return w, h
}

func hexAt(img *image.RGBA, x, y int) string {
	c := img.RGBAAt(x, y)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
