// Package landing renders the home page: starfield, rotating sphere, hero
// copy and a cursor trail.
package landing

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/cosmic/pkg/tui/pointer"
	"tableflip.dev/cosmic/pkg/tui/scene"
	"tableflip.dev/cosmic/pkg/tui/stars"
	"tableflip.dev/cosmic/pkg/tui/theme"
	"tableflip.dev/cosmic/pkg/tui/ui"
	"tableflip.dev/cosmic/pkg/tui/ui/overlay"
)

var _ ui.View = (*Model)(nil)

// TrailGlyph marks the cursor trail.
const TrailGlyph = "◯"

// EnterPath is where the call to action leads.
const EnterPath = "/apod"

const (
	wideLayout = 90
	heroWidth  = 52
)

type stat struct {
	value, label string
	color        lipgloss.Style
}

// Options configures a landing view.
type Options struct {
	Pointer *pointer.Hub
	Theme   theme.Theme
	// Rand seeds the starfield and texture; nil uses a random source.
	Rand *rand.Rand
	Now  func() time.Time
}

// Model is the / view.
type Model struct {
	hub         *pointer.Hub
	unsubscribe func()

	scene *scene.Scene
	field *stars.Field

	now     func() time.Time
	started time.Time
	elapsed time.Duration

	trail      Spring
	trailShown bool

	// set by SetSize
	hero            string
	sceneAt, heroAt overlay.Placement
	button          overlay.Rect

	enter  key.Binding
	theme  theme.Theme
	width  int
	height int
	closed bool
}

// New builds the view. The scene loop and the pointer subscription start in
// Init.
func New(opts Options) *Model {
	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	m := &Model{
		hub:   opts.Pointer,
		scene: scene.NewWithRand(r, 1, 1),
		field: stars.NewField(r),
		now:   opts.Now,
		theme: opts.Theme,
		enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "enter the universe")),
	}
	m.SetSize(80, 24)
	return m
}

// Init subscribes to the pointer and starts the frame loop.
func (m *Model) Init() tea.Cmd {
	m.started = m.now()
	if m.hub != nil && m.unsubscribe == nil {
		m.unsubscribe = m.hub.Subscribe(m.follow)
	}
	return m.scene.Init()
}

func (m *Model) follow(p pointer.Position) {
	if m.closed {
		return
	}
	if !m.trailShown {
		m.trailShown = true
		m.trail.Jump(float64(p.X), float64(p.Y))
		return
	}
	m.trail.Target(float64(p.X), float64(p.Y))
}

// Scene exposes the sphere.
func (m *Model) Scene() *scene.Scene { return m.scene }

// Trail returns the trail position and whether it is visible.
func (m *Model) Trail() (x, y int, visible bool) {
	x, y = m.trail.Cell()
	return x, y, m.trailShown
}

// Button returns the call to action rectangle for the current size.
func (m *Model) Button() overlay.Rect { return m.button }

// ShortHelp lists the view's key bindings.
func (m *Model) ShortHelp() []key.Binding { return []key.Binding{m.enter} }

// Update implements ui.View.
func (m *Model) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	if m.closed {
		return m, nil
	}
	switch msg := msg.(type) {
	case scene.FrameMsg:
		cmd := m.scene.Update(msg)
		if cmd == nil {
			return m, nil
		}
		if !m.started.IsZero() {
			m.elapsed = msg.Time.Sub(m.started)
		}
		if m.trailShown {
			m.trail.Step(1.0 / scene.FPS)
		}
		return m, cmd
	case tea.KeyPressMsg:
		if key.Matches(msg, m.enter) {
			return m, ui.Navigate(EnterPath)
		}
	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		if mouse.Button == tea.MouseLeft && m.button.Contains(mouse.X, mouse.Y) {
			return m, ui.Navigate(EnterPath)
		}
	}
	return m, nil
}

// SetSize implements ui.View.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 20)
	m.height = max(height, 8)
	w, h := m.sceneSize()
	m.scene.SetSize(w, h)
	m.layout()
}

// layout places the sphere and the hero block for the current size and
// records where the call to action lands.
func (m *Model) layout() {
	sw, sh := m.sceneSize()
	hero, buttonRow := m.renderHero()
	if m.wide() {
		m.sceneAt = overlay.Placement{MarginX: 2, MarginY: max((m.height-sh)/2, 0)}
		m.heroAt = overlay.Placement{MarginX: 2 + sw + 4, MarginY: max((m.height-lipgloss.Height(hero))/2, 0)}
	} else {
		m.sceneAt = overlay.Placement{MarginX: max((m.width-sw)/2, 0)}
		m.heroAt = overlay.Placement{MarginX: 2, MarginY: sh + 1}
	}
	m.hero = hero

	heroRect := overlay.Bounds(m.width, m.height, hero, m.heroAt)
	m.button = overlay.Rect{
		X:      heroRect.X,
		Y:      heroRect.Y + buttonRow,
		Width:  min(lipgloss.Width(m.enterButton()), lipgloss.Width(hero)),
		Height: 1,
	}
}

// Close stops the scene, drops the starfield and unsubscribes from the
// pointer.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	m.scene.Close()
	m.field.Close()
}

// Closed reports if Close was called.
func (m *Model) Closed() bool { return m.closed }

func (m *Model) wide() bool { return m.width >= wideLayout }

func (m *Model) sceneSize() (int, int) {
	if m.wide() {
		h := max(m.height-2, 4)
		return min(m.width-heroWidth-6, h*2), h
	}
	h := max(m.height/3, 4)
	return min(m.width-4, h*2), h
}

// View implements ui.View.
func (m *Model) View() string {
	if m.closed {
		return ""
	}
	view := m.field.Render(m.width, m.height, m.elapsed)
	view = overlay.Compose(view, m.width, m.height, m.scene.View(), m.sceneAt)
	view = overlay.Compose(view, m.width, m.height, m.hero, m.heroAt)

	if x, y, ok := m.Trail(); ok && x >= 0 && y >= 0 && x < m.width && y < m.height {
		glyph := m.theme.Landing.Trail.Render(TrailGlyph)
		view = overlay.Compose(view, m.width, m.height, glyph, overlay.Placement{MarginX: x, MarginY: y})
	}
	return view
}

func (m *Model) enterButton() string {
	return m.theme.Page.Button.Render("Enter the Universe →")
}

// renderHero returns the hero block and the row of its call to action.
func (m *Model) renderHero() (string, int) {
	th := m.theme
	width := heroWidth
	if !m.wide() {
		width = max(m.width-4, 16)
	}

	lines := []string{
		th.Landing.Hero.Render("Explore the"),
		th.Landing.Accent.Render("Cosmos"),
		"",
	}
	lines = append(lines, strings.Split(th.Page.Sub.Render(wordwrap.String(
		"Discover the most stunning astronomy pictures from NASA's Astronomy Picture of the Day", width)), "\n")...)
	lines = append(lines, "")
	lines = append(lines, strings.Split(th.Page.Muted.Render(wordwrap.String(
		"Journey through the wonders of the universe with daily curated images and insights. "+
			"From distant galaxies to nebulae, experience the beauty of space like never before.", width)), "\n")...)
	lines = append(lines, "")
	buttonRow := len(lines)
	lines = append(lines, m.enterButton(), "")
	lines = append(lines, m.renderStats())
	return strings.Join(lines, "\n"), buttonRow
}

func (m *Model) renderStats() string {
	tile := m.theme.Landing.Tile
	muted := m.theme.Page.Muted
	tiles := []stat{
		{value: "365+", label: "Daily Pictures", color: lipgloss.NewStyle().Foreground(theme.Purple).Bold(true)},
		{value: "HD", label: "Quality Images", color: lipgloss.NewStyle().Foreground(theme.Blue).Bold(true)},
		{value: "∞", label: "Exploration", color: lipgloss.NewStyle().Foreground(theme.Cyan).Bold(true)},
	}
	parts := make([]string, 0, len(tiles)*2)
	for i, t := range tiles {
		if i > 0 {
			parts = append(parts, " ")
		}
		fg := t.color.GetForeground()
		body := t.color.Render(t.value) + "\n" + muted.Render(t.label)
		parts = append(parts, tile.BorderForeground(fg).Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
