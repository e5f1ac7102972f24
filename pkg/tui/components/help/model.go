// Package help renders the key reference overlay. The page prose is static;
// the key tables are built from the bindings the router hands over, so the
// overlay always matches the keys the active page handles.
package help

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

//go:embed help.md
var intro string

// Section is one titled key table.
type Section struct {
	Title    string
	Bindings []key.Binding
}

const (
	minWidth  = 32
	minHeight = 8
)

// Model is the help overlay.
type Model struct {
	viewport viewport.Model
	frame    lipgloss.Style
	sections []Section

	width, height int
	err           error
}

// New builds an overlay with no key tables yet.
func New(width, height int) *Model {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	m := &Model{
		viewport: vp,
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#a78bfa")),
	}
	m.SetSize(width, height)
	return m
}

// SetSections replaces the key tables and scrolls back to the top.
func (m *Model) SetSections(sections ...Section) {
	m.sections = sections
	m.render()
}

// Update scrolls the content.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

// View renders the framed overlay.
func (m *Model) View() string {
	body := m.viewport.View()
	if m.err != nil {
		body = "help unavailable: " + m.err.Error()
	}
	return m.frame.Width(m.width).Height(m.height).Render(body)
}

// Size returns the outer dimensions.
func (m *Model) Size() (int, int) { return m.width, m.height }

// SetSize clamps to a readable minimum and re-wraps the content.
func (m *Model) SetSize(width, height int) {
	width, height = max(width, minWidth), max(height, minHeight)
	if width == m.width && height == m.height {
		return
	}
	m.width, m.height = width, height
	m.viewport.SetWidth(max(width-m.frame.GetHorizontalFrameSize(), 1))
	m.viewport.SetHeight(max(height-m.frame.GetVerticalFrameSize(), 1))
	m.render()
}

// Markdown returns the document the overlay shows.
func (m *Model) Markdown() string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(intro))
	for _, s := range m.sections {
		writeSection(&b, s)
	}
	return b.String()
}

// writeSection appends s as a markdown table. Disabled bindings and those
// without help text are left out, as is a section with nothing left.
func writeSection(b *strings.Builder, s Section) {
	rows := make([]key.Help, 0, len(s.Bindings))
	for _, kb := range s.Bindings {
		if h := kb.Help(); kb.Enabled() && h.Key != "" {
			rows = append(rows, h)
		}
	}
	if len(rows) == 0 {
		return
	}
	fmt.Fprintf(b, "\n\n## %s\n\n| Key | Action |\n| --- | --- |\n", s.Title)
	for _, h := range rows {
		fmt.Fprintf(b, "| `%s` | %s |\n", strings.ReplaceAll(h.Key, "|", `\|`), h.Desc)
	}
}

func (m *Model) render() {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(m.viewport.Width(), 10)),
	)
	if err == nil {
		var out string
		if out, err = r.Render(m.Markdown()); err == nil {
			m.viewport.SetContent(ansi.Strip(out))
		}
	}
	m.err = err
	m.viewport.GotoTop()
}
