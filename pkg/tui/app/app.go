// Package app hosts the router that owns the navbar, the active view and
// the help overlay.
package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	keyhelp "github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/cosmic/pkg/tui/components/help"
	"tableflip.dev/cosmic/pkg/tui/components/navbar"
	"tableflip.dev/cosmic/pkg/tui/pointer"
	"tableflip.dev/cosmic/pkg/tui/theme"
	"tableflip.dev/cosmic/pkg/tui/ui"
	"tableflip.dev/cosmic/pkg/tui/ui/overlay"
	"tableflip.dev/cosmic/pkg/tui/views/detail"
	"tableflip.dev/cosmic/pkg/tui/views/gallery"
	"tableflip.dev/cosmic/pkg/tui/views/landing"
)

// Routes.
const (
	RouteHome    = "/"
	RouteAPOD    = "/apod"
	RouteGallery = "/gallery"
)

const footerRows = 1

// Service is what the views need from the API client.
type Service interface {
	detail.Fetcher
	gallery.Source
}

// Options configures the router.
type Options struct {
	Service Service
	Sampler detail.Sampler
	Logger  *slog.Logger
	Theme   theme.Theme
	// Route is the initial route; unknown routes fall back to "/".
	Route      string
	Hyperlinks bool
	Now        func() time.Time
}

type keyMap struct {
	Home    key.Binding
	APOD    key.Binding
	Gallery key.Binding
	Next    key.Binding
	Prev    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Home:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "home")),
		APOD:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "apod")),
		Gallery: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "gallery")),
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the root Bubble Tea model.
type Model struct {
	opts Options
	log  *slog.Logger

	nav    *navbar.Model
	hub    *pointer.Hub
	route  string
	view   ui.View
	help   *help.Model
	footer keyhelp.Model

	showHelp bool
	keys     keyMap
	width    int
	height   int
}

// New builds the router and mounts the initial route's view. The view is
// initialized by Init.
func New(opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	m := &Model{
		opts: opts,
		log:  opts.Logger.With("component", "router"),
		nav: navbar.New(opts.Theme.Nav,
			navbar.Link{Path: RouteHome, Label: "Home"},
			navbar.Link{Path: RouteAPOD, Label: "APOD"},
			navbar.Link{Path: RouteGallery, Label: "Gallery"},
		),
		hub:    pointer.NewHub(),
		help:   help.New(60, 16),
		footer: keyhelp.New(),
		keys:   defaultKeys(),
	}
	m.route = normalizeRoute(opts.Route)
	m.view = m.build(m.route)
	m.nav.SetActive(m.route)
	m.resize(80, 24)
	return m
}

func normalizeRoute(route string) string {
	switch route {
	case RouteAPOD, RouteGallery:
		return route
	case "apod", "gallery":
		return "/" + route
	default:
		return RouteHome
	}
}

func (m *Model) build(route string) ui.View {
	switch route {
	case RouteAPOD:
		return detail.New(detail.Options{
			Fetcher:    m.opts.Service,
			Sampler:    m.opts.Sampler,
			Logger:     m.opts.Logger,
			Theme:      m.opts.Theme,
			Now:        m.opts.Now,
			Hyperlinks: m.opts.Hyperlinks,
		})
	case RouteGallery:
		return gallery.New(gallery.Options{
			Source: m.opts.Service,
			Logger: m.opts.Logger,
			Theme:  m.opts.Theme,
			Now:    m.opts.Now,
		})
	default:
		return landing.New(landing.Options{
			Pointer: m.hub,
			Theme:   m.opts.Theme,
			Now:     m.opts.Now,
		})
	}
}

// Route returns the active route.
func (m *Model) Route() string { return m.route }

// ActiveView returns the mounted view.
func (m *Model) ActiveView() ui.View { return m.view }

// Pointer returns the hub fed by mouse motion.
func (m *Model) Pointer() *pointer.Hub { return m.hub }

// HelpVisible reports whether the help overlay is shown.
func (m *Model) HelpVisible() bool { return m.showHelp }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.view.Init()
}

// Navigate unmounts the active view and mounts the one for route.
func (m *Model) Navigate(route string) tea.Cmd {
	route = normalizeRoute(route)
	if route == m.route {
		return nil
	}
	m.log.Debug("navigate", "from", m.route, "to", route)
	m.view.Close()
	m.route = route
	m.view = m.build(route)
	m.nav.SetActive(route)
	m.view.SetSize(m.bodySize())
	return m.view.Init()
}

// Close unmounts the active view.
func (m *Model) Close() {
	if m.view != nil {
		m.view.Close()
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case ui.NavigateMsg:
		return m, m.Navigate(msg.Path)
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	case tea.MouseMotionMsg:
		mouse := msg.Mouse()
		if y := mouse.Y - navbar.Height; y >= 0 {
			m.hub.Publish(pointer.Position{X: mouse.X, Y: y})
		}
		return m, nil
	case tea.MouseClickMsg:
		return m, m.handleClick(msg.Mouse())
	case tea.MouseWheelMsg:
		if m.showHelp {
			return m, m.help.Update(msg)
		}
		mouse := msg.Mouse()
		mouse.Y -= navbar.Height
		return m, m.forward(tea.MouseWheelMsg(mouse))
	}
	return m, m.forward(msg)
}

func (m *Model) forward(msg tea.Msg) tea.Cmd {
	next, cmd := m.view.Update(msg)
	m.view = next
	return cmd
}

func (m *Model) capturing() bool {
	c, ok := m.view.(ui.Capturer)
	return ok && c.Capturing()
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}
	if m.showHelp {
		switch msg.String() {
		case "?", "esc", "q":
			m.showHelp = false
			return nil
		}
		return m.help.Update(msg)
	}
	if m.capturing() {
		return m.forward(msg)
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.SetSections(m.helpSections()...)
		m.showHelp = true
		return nil
	case key.Matches(msg, m.keys.Home):
		return m.Navigate(RouteHome)
	case key.Matches(msg, m.keys.APOD):
		return m.Navigate(RouteAPOD)
	case key.Matches(msg, m.keys.Gallery):
		return m.Navigate(RouteGallery)
	case key.Matches(msg, m.keys.Next):
		return m.Navigate(m.nav.Next(1))
	case key.Matches(msg, m.keys.Prev):
		return m.Navigate(m.nav.Next(-1))
	}
	return m.forward(msg)
}

func (m *Model) handleClick(mouse tea.Mouse) tea.Cmd {
	if m.showHelp {
		return nil
	}
	if mouse.Y < navbar.Height {
		if path, ok := m.nav.PathAt(mouse.X, mouse.Y); ok && mouse.Button == tea.MouseLeft {
			return m.Navigate(path)
		}
		return nil
	}
	mouse.Y -= navbar.Height
	return m.forward(tea.MouseClickMsg(mouse))
}

func (m *Model) quit() tea.Cmd {
	m.log.Debug("quit", "route", m.route)
	m.Close()
	return tea.Quit
}

func (m *Model) resize(width, height int) {
	m.width = max(width, 20)
	m.height = max(height, navbar.Height+footerRows+1)
	m.nav.SetWidth(m.width)
	m.help.SetSize(min(m.width-8, 80), m.height-navbar.Height-footerRows-2)
	m.view.SetSize(m.bodySize())
}

func (m *Model) bodySize() (int, int) {
	return m.width, m.height - navbar.Height - footerRows
}

// View implements tea.Model.
func (m *Model) View() string {
	nav := m.nav.View()
	bw, bh := m.bodySize()
	body := fit(m.view.View(), bw, bh)
	if m.showHelp {
		body = overlay.Compose(body, bw, bh, m.help.View(), overlay.Placement{
			Horizontal: lipgloss.Center,
			Vertical:   lipgloss.Center,
		})
	}
	return nav + "\n" + body + "\n" + m.renderFooter()
}

// helpSections describes the router keys and those of the active view.
func (m *Model) helpSections() []help.Section {
	k := m.keys
	sections := []help.Section{{
		Title:    "Navigation",
		Bindings: []key.Binding{k.Home, k.APOD, k.Gallery, k.Next, k.Prev, k.Help, k.Quit},
	}}
	if h, ok := m.view.(ui.Helper); ok {
		title := m.route
		for _, l := range m.nav.Links() {
			if l.Path == m.route {
				title = l.Label
			}
		}
		sections = append(sections, help.Section{Title: title, Bindings: h.ShortHelp()})
	}
	return sections
}

func (m *Model) renderFooter() string {
	bindings := []key.Binding{m.keys.Home, m.keys.APOD, m.keys.Gallery}
	if h, ok := m.view.(ui.Helper); ok {
		bindings = append(bindings, h.ShortHelp()...)
	}
	bindings = append(bindings, m.keys.Help, m.keys.Quit)
	return m.opts.Theme.Footer.Help.MaxWidth(m.width).Render(m.footer.ShortHelpView(bindings))
}

func fit(view string, width, height int) string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	style := lipgloss.NewStyle().MaxWidth(width)
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	return strings.Join(lines, "\n")
}

// Run starts the program on opts.Route and blocks until it exits or ctx is
// done.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	defer m.Close()
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}
