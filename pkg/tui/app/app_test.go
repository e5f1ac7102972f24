package app

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/cosmic/pkg/apod"
	"tableflip.dev/cosmic/pkg/tui/components/navbar"
	"tableflip.dev/cosmic/pkg/tui/pointer"
	"tableflip.dev/cosmic/pkg/tui/theme"
	"tableflip.dev/cosmic/pkg/tui/views/detail"
	"tableflip.dev/cosmic/pkg/tui/views/gallery"
	"tableflip.dev/cosmic/pkg/tui/views/landing"
)

type stubService struct{}

func (stubService) Fetch(context.Context, *time.Time) (*apod.Picture, error) {
	return &apod.Picture{Title: "Orion", Date: "2024-06-01", URL: "https://apod.example/o.jpg", MediaType: apod.MediaImage}, nil
}

func (stubService) Gallery(context.Context, time.Time, int) ([]apod.Picture, error) {
	return nil, nil
}

func newRouter(route string) *Model {
	m := New(Options{
		Service: stubService{},
		Theme:   theme.Default(),
		Route:   route,
		Now:     func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) },
	})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func press(m *Model, text string) tea.Cmd {
	_, cmd := m.Update(tea.KeyPressMsg{Text: text, Code: rune(text[0])})
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestInitialRoute(t *testing.T) {
	for route, want := range map[string]string{
		"":         RouteHome,
		"/":        RouteHome,
		"/apod":    RouteAPOD,
		"gallery":  RouteGallery,
		"/unknown": RouteHome,
	} {
		m := newRouter(route)
		if m.Route() != want {
			t.Fatalf("route %q: expected %q, got %q", route, want, m.Route())
		}
		m.Close()
	}
}

func TestNumberKeysNavigateAndCloseOldView(t *testing.T) {
	m := newRouter("/")
	m.Init()
	home := m.ActiveView().(*landing.Model)
	if m.Pointer().Len() != 1 {
		t.Fatalf("landing should subscribe on mount")
	}

	if cmd := press(m, "2"); cmd == nil {
		t.Fatalf("mounting the detail view should start a fetch")
	}
	if m.Route() != RouteAPOD {
		t.Fatalf("expected /apod, got %s", m.Route())
	}
	if _, ok := m.ActiveView().(*detail.Model); !ok {
		t.Fatalf("expected detail view, got %T", m.ActiveView())
	}
	if !home.Closed() || m.Pointer().Len() != 0 {
		t.Fatalf("navigation must close the previous view")
	}

	press(m, "3")
	if _, ok := m.ActiveView().(*gallery.Model); !ok {
		t.Fatalf("expected gallery view, got %T", m.ActiveView())
	}

	if cmd := press(m, "3"); cmd != nil {
		t.Fatalf("navigating to the active route is a no-op")
	}
}

func TestTabCyclesRoutes(t *testing.T) {
	m := newRouter("/gallery")
	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if m.Route() != RouteHome {
		t.Fatalf("tab should wrap to /, got %s", m.Route())
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if m.Route() != RouteGallery {
		t.Fatalf("shift+tab should go back to /gallery, got %s", m.Route())
	}
}

func TestNavbarClickNavigates(t *testing.T) {
	m := newRouter("/")
	line := strings.Split(ansi.Strip(m.View()), "\n")[0]
	col := ansi.StringWidth(line[:strings.Index(line, "APOD")])

	m.Update(tea.MouseClickMsg{X: col + 1, Y: 0, Button: tea.MouseLeft})
	if m.Route() != RouteAPOD {
		t.Fatalf("click on APOD should navigate, got %s", m.Route())
	}
}

func TestNavbarClickBeforeFirstFrame(t *testing.T) {
	line := strings.Split(ansi.Strip(newRouter("/").View()), "\n")[0]
	col := ansi.StringWidth(line[:strings.Index(line, "Gallery")])

	m := newRouter("/")
	m.Update(tea.MouseClickMsg{X: col + 1, Y: 0, Button: tea.MouseLeft})
	if m.Route() != RouteGallery {
		t.Fatalf("a click that arrives before any frame should still navigate, got %s", m.Route())
	}
}

func TestNavigateMsg(t *testing.T) {
	m := newRouter("/")
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("enter on the landing page should navigate")
	}
	m.Update(cmd())
	if m.Route() != RouteAPOD {
		t.Fatalf("expected /apod, got %s", m.Route())
	}
}

func TestHelpOverlayToggles(t *testing.T) {
	m := newRouter("/apod")
	press(m, "?")
	if !m.HelpVisible() {
		t.Fatalf("? should open help")
	}
	press(m, "3")
	if m.Route() != RouteAPOD {
		t.Fatalf("route keys are inert while help is open")
	}
	if isQuit(press(m, "q")) {
		t.Fatalf("q closes help instead of quitting")
	}
	if m.HelpVisible() {
		t.Fatalf("q should close help")
	}
}

func TestHelpOverlayListsActiveViewKeys(t *testing.T) {
	m := newRouter("/apod")
	press(m, "?")
	if view := ansi.Strip(m.View()); !strings.Contains(view, "Navigation") {
		t.Fatalf("expected the key tables in the overlay:\n%s", view)
	}
	for _, want := range []string{"## APOD", "shift+tab", "random day", "go to date"} {
		if !strings.Contains(m.help.Markdown(), want) {
			t.Fatalf("expected %q in the help overlay:\n%s", want, m.help.Markdown())
		}
	}
	press(m, "?")

	press(m, "3")
	press(m, "?")
	md := m.help.Markdown()
	if strings.Contains(md, "random day") || !strings.Contains(md, "## Gallery") || !strings.Contains(md, "move") {
		t.Fatalf("help should follow the gallery keys:\n%s", md)
	}
}

func TestQuit(t *testing.T) {
	m := newRouter("/")
	if !isQuit(press(m, "q")) {
		t.Fatalf("q should quit")
	}
	if !m.ActiveView().(*landing.Model).Closed() {
		t.Fatalf("quitting closes the active view")
	}

	m = newRouter("/apod")
	if !isQuit(func() tea.Cmd { _, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}); return cmd }()) {
		t.Fatalf("ctrl+c should quit")
	}
}

func TestQIsTypedWhileCapturing(t *testing.T) {
	m := newRouter("/apod")
	press(m, "/")
	if isQuit(press(m, "q")) {
		t.Fatalf("q must reach the date input")
	}
	if m.Route() != RouteAPOD {
		t.Fatalf("unexpected route %s", m.Route())
	}
}

func TestMouseMotionFeedsPointer(t *testing.T) {
	m := newRouter("/apod")
	var got []pointer.Position
	unsubscribe := m.Pointer().Subscribe(func(p pointer.Position) { got = append(got, p) })
	defer unsubscribe()

	m.Update(tea.MouseMotionMsg{X: 7, Y: 1})
	m.Update(tea.MouseMotionMsg{X: 9, Y: navbar.Height + 4})
	if len(got) != 1 || got[0] != (pointer.Position{X: 9, Y: 4}) {
		t.Fatalf("expected one view-relative position, got %v", got)
	}
}

func TestViewFillsTerminal(t *testing.T) {
	for _, route := range []string{RouteHome, RouteAPOD, RouteGallery} {
		m := newRouter(route)
		view := ansi.Strip(m.View())
		lines := strings.Split(view, "\n")
		if len(lines) != 40 {
			t.Fatalf("%s: expected 40 rows, got %d", route, len(lines))
		}
		if !strings.Contains(lines[0], "Cosmic Explorer") {
			t.Fatalf("%s: navbar missing: %q", route, lines[0])
		}
		if !strings.Contains(lines[len(lines)-1], "quit") {
			t.Fatalf("%s: footer missing: %q", route, lines[len(lines)-1])
		}
		m.Close()
	}
}
