// Package navbar renders the top navigation bar and resolves clicks on it.
package navbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/cosmic/pkg/tui/theme"
)

// Brand is the title shown at the left of the bar.
const Brand = "🌌 Cosmic Explorer"

// Link is one navigable route.
type Link struct {
	Path  string
	Label string
}

type span struct {
	path       string
	start, end int
}

// Model is the navigation bar. Height is fixed at two rows: the links and
// a rule below them.
type Model struct {
	links  []Link
	active string
	width  int
	theme  theme.NavTheme

	// laid out by layout whenever width or active change
	brand  string
	labels []string
	pad    int
	spans  []span
}

// Height is the number of rows the bar occupies.
const Height = 2

const gap = "   "

// New builds a bar over links.
func New(th theme.NavTheme, links ...Link) *Model {
	m := &Model{links: links, theme: th}
	m.layout()
	return m
}

// SetActive highlights path.
func (m *Model) SetActive(path string) {
	m.active = path
	m.layout()
}

// Active returns the highlighted path.
func (m *Model) Active() string { return m.active }

// SetWidth sets the bar width.
func (m *Model) SetWidth(width int) {
	m.width = width
	m.layout()
}

// Links returns the configured links.
func (m *Model) Links() []Link { return m.links }

// layout styles the labels and places them right aligned, recording the
// columns each link covers.
func (m *Model) layout() {
	m.brand = m.theme.Brand.Render(Brand)
	m.labels = m.labels[:0]
	linksWidth := 0
	for i, l := range m.links {
		style := m.theme.Link
		if l.Path == m.active {
			style = m.theme.Active
		}
		label := style.Render(l.Label)
		m.labels = append(m.labels, label)
		if i > 0 {
			linksWidth += len(gap)
		}
		linksWidth += lipgloss.Width(label)
	}

	brandWidth := lipgloss.Width(m.brand)
	m.pad = max(m.width-brandWidth-linksWidth-2, 1)

	m.spans = m.spans[:0]
	x := brandWidth + 1 + m.pad
	for i, l := range m.links {
		w := lipgloss.Width(m.labels[i])
		m.spans = append(m.spans, span{path: l.Path, start: x, end: x + w})
		x += w + len(gap)
	}
}

// View renders the bar.
func (m *Model) View() string {
	row := " " + m.brand + strings.Repeat(" ", m.pad) + strings.Join(m.labels, gap) + " "
	return m.theme.Bar.Width(max(m.width, 1)).Render(row)
}

// PathAt returns the route under cell (x, y), if any.
func (m *Model) PathAt(x, y int) (string, bool) {
	if y != 0 {
		return "", false
	}
	for _, s := range m.spans {
		if x >= s.start && x < s.end {
			return s.path, true
		}
	}
	return "", false
}

// Next returns the route after the active one, wrapping around. A negative
// step moves backwards.
func (m *Model) Next(step int) string {
	if len(m.links) == 0 {
		return ""
	}
	idx := 0
	for i, l := range m.links {
		if l.Path == m.active {
			idx = i
			break
		}
	}
	n := len(m.links)
	idx = ((idx+step)%n + n) % n
	return m.links[idx].Path
}
