// Package overlay composes a foreground block on top of a rendered view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Placement controls overlay alignment and sizing.
type Placement struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
	MarginX    int
	MarginY    int
	Width      int
	Height     int
}

// Rect is a cell rectangle on screen.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports if the cell (x, y) falls inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Bounds returns where foreground lands inside a width x height surface.
func Bounds(width, height int, foreground string, placement Placement) Rect {
	if foreground == "" {
		return Rect{}
	}
	fgLines := strings.Split(foreground, "\n")

	w := placement.Width
	if w <= 0 {
		for _, line := range fgLines {
			if lw := ansi.StringWidth(line); lw > w {
				w = lw
			}
		}
	}
	w = min(w, width)

	h := placement.Height
	if h <= 0 {
		h = len(fgLines)
	}
	h = min(h, height)
	if w <= 0 || h <= 0 {
		return Rect{}
	}

	x, y := offsets(width, height, w, h, placement)
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Compose overlays the foreground view atop the background while preserving
// background content outside the overlay bounds.
func Compose(background string, width, height int, foreground string, placement Placement) string {
	bgLines := normalize(background, width, height)
	r := Bounds(width, height, foreground, placement)
	if r.Width == 0 {
		return strings.Join(bgLines, "\n")
	}

	fgLines := strings.Split(foreground, "\n")
	for row := 0; row < r.Height; row++ {
		destY := r.Y + row
		if destY < 0 || destY >= len(bgLines) {
			continue
		}
		fgLine := ""
		if row < len(fgLines) {
			fgLine = fgLines[row]
		}
		fgLine = padToWidth(fgLine, r.Width)

		base := bgLines[destY]
		prefix := ansi.Truncate(base, r.X, "")
		suffix := ansi.TruncateLeft(base, r.X+r.Width, "")
		bgLines[destY] = prefix + "\x1b[0m" + fgLine + "\x1b[0m" + suffix
	}
	return strings.Join(bgLines, "\n")
}

func normalize(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padToWidth(lines[i], width)
	}
	return lines
}

func padToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(s)
	if w > width {
		return ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}

func offsets(width, height, w, h int, placement Placement) (int, int) {
	x := placement.MarginX
	switch placement.Horizontal {
	case lipgloss.Right:
		x = width - w - placement.MarginX
	case lipgloss.Center:
		x = (width - w) / 2
	}
	x = max(0, min(x, width-w))

	y := placement.MarginY
	switch placement.Vertical {
	case lipgloss.Bottom:
		y = height - h - placement.MarginY
	case lipgloss.Center:
		y = (height - h) / 2
	}
	y = max(0, min(y, height-h))
	return x, y
}
