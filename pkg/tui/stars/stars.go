// Package stars renders the decorative twinkling starfield.
package stars

import (
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Count is the number of stars generated per field.
const Count = 100

// Star is one decorative star. X and Y are fractions of the surface.
// Durations are in seconds.
type Star struct {
	X, Y     float64
	Size     float64
	Duration float64
	Delay    float64
	Opacity  float64
}

// Generate draws n stars from r.
func Generate(r *rand.Rand, n int) []Star {
	out := make([]Star, n)
	for i := range out {
		out[i] = Star{
			X:        r.Float64(),
			Y:        r.Float64(),
			Size:     r.Float64()*2 + 0.5,
			Duration: r.Float64()*10 + 10,
			Delay:    r.Float64() * 5,
			Opacity:  r.Float64()*0.5 + 0.3,
		}
	}
	return out
}

// Brightness is the star's opacity at elapsed time, in [0, Opacity].
// Stars are dark until their delay has passed.
func (s Star) Brightness(elapsed time.Duration) float64 {
	t := elapsed.Seconds() - s.Delay
	if t < 0 {
		return 0
	}
	phase := math.Mod(t, s.Duration) / s.Duration
	return s.Opacity * (0.5 - 0.5*math.Cos(2*math.Pi*phase))
}

// Glyph picks a rune by size.
func (s Star) Glyph() string {
	switch {
	case s.Size < 1.2:
		return "·"
	case s.Size < 2:
		return "•"
	default:
		return "✦"
	}
}

var (
	sky   = colorful.Color{R: 0.008, G: 0.024, B: 0.09}
	white = colorful.Color{R: 1, G: 1, B: 1}
)

// Field is a starfield generated once per mount.
type Field struct {
	stars []Star
}

// NewField generates Count stars from r.
func NewField(r *rand.Rand) *Field {
	return &Field{stars: Generate(r, Count)}
}

// Stars returns the generated stars.
func (f *Field) Stars() []Star { return f.stars }

// Render draws the field into a width x height block of cells.
func (f *Field) Render(width, height int, elapsed time.Duration) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	cells := make([][]string, height)
	for y := range cells {
		cells[y] = make([]string, width)
	}
	for _, s := range f.stars {
		x := min(int(s.X*float64(width)), width-1)
		y := min(int(s.Y*float64(height)), height-1)
		b := s.Brightness(elapsed)
		if b < 0.05 {
			continue
		}
		c := sky.BlendRgb(white, b).Clamped()
		cells[y][x] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(s.Glyph())
	}

	var sb strings.Builder
	for y, row := range cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			if cell == "" {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteString(cell)
		}
	}
	return sb.String()
}

// Close drops the generated stars.
func (f *Field) Close() {
	f.stars = nil
}
