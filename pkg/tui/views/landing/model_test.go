package landing

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/cosmic/pkg/tui/pointer"
	"tableflip.dev/cosmic/pkg/tui/scene"
	"tableflip.dev/cosmic/pkg/tui/theme"
	"tableflip.dev/cosmic/pkg/tui/ui"
)

var start = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func newLanding(hub *pointer.Hub, width, height int) *Model {
	m := New(Options{
		Pointer: hub,
		Theme:   theme.Default(),
		Rand:    rand.New(rand.NewPCG(1, 2)),
		Now:     func() time.Time { return start },
	})
	m.SetSize(width, height)
	return m
}

func frame(m *Model, n int) tea.Cmd {
	return func() tea.Msg {
		return scene.FrameMsg{ID: m.Scene().ID(), Time: start.Add(time.Duration(n) * time.Second / scene.FPS)}
	}
}

func step(m *Model, n int) {
	for i := 1; i <= n; i++ {
		m.Update(frame(m, i)())
	}
}

func TestViewShowsHeroAndStats(t *testing.T) {
	for _, width := range []int{120, 70} {
		m := newLanding(nil, width, 40)
		m.Init()
		view := ansi.Strip(m.View())
		for _, want := range []string{"Explore the", "Cosmos", "Enter the Universe →", "365+", "HD", "∞", "Daily Pictures"} {
			if !strings.Contains(view, want) {
				t.Fatalf("width %d: view missing %q:\n%s", width, want, view)
			}
		}
		if got := len(strings.Split(view, "\n")); got != 40 {
			t.Fatalf("width %d: expected 40 rows, got %d", width, got)
		}
	}
}

func TestFramesRotateScene(t *testing.T) {
	m := newLanding(nil, 120, 40)
	if m.Init() == nil {
		t.Fatalf("expected the frame loop to start")
	}
	step(m, 3)
	if m.Scene().Frames() != 3 {
		t.Fatalf("expected 3 frames, got %d", m.Scene().Frames())
	}
	if m.elapsed != 3*time.Second/scene.FPS {
		t.Fatalf("unexpected elapsed %s", m.elapsed)
	}
}

func TestEnterNavigates(t *testing.T) {
	m := newLanding(nil, 120, 40)
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected navigation command")
	}
	if msg, ok := cmd().(ui.NavigateMsg); !ok || msg.Path != "/apod" {
		t.Fatalf("expected navigation to /apod, got %#v", msg)
	}
}

func TestClickOnButtonNavigates(t *testing.T) {
	m := newLanding(nil, 120, 40)
	view := strings.Split(ansi.Strip(m.View()), "\n")
	b := m.Button()
	if !strings.Contains(view[b.Y], "Enter the Universe") {
		t.Fatalf("button row %d does not hold the call to action: %q", b.Y, view[b.Y])
	}
	_, cmd := m.Update(tea.MouseClickMsg{X: b.X + 1, Y: b.Y, Button: tea.MouseLeft})
	if cmd == nil {
		t.Fatalf("expected navigation command")
	}
	if msg, ok := cmd().(ui.NavigateMsg); !ok || msg.Path != EnterPath {
		t.Fatalf("unexpected message %#v", msg)
	}

	if _, cmd := m.Update(tea.MouseClickMsg{X: 0, Y: 0, Button: tea.MouseLeft}); cmd != nil {
		t.Fatalf("click elsewhere should not navigate")
	}
}

func TestButtonTracksResizeWithoutRender(t *testing.T) {
	m := newLanding(nil, 120, 40)
	wide := m.Button()
	m.SetSize(60, 40)
	narrow := m.Button()
	if narrow == wide {
		t.Fatalf("the button should move with the layout, stayed at %+v", wide)
	}
	_, cmd := m.Update(tea.MouseClickMsg{X: narrow.X, Y: narrow.Y, Button: tea.MouseLeft})
	if cmd == nil {
		t.Fatalf("a click on the resized button should navigate before any render")
	}

	view := strings.Split(ansi.Strip(m.View()), "\n")
	if !strings.Contains(view[narrow.Y], "Enter the Universe") {
		t.Fatalf("rendered call to action is not at row %d: %q", narrow.Y, view[narrow.Y])
	}
}

func TestTrailFollowsPointer(t *testing.T) {
	hub := pointer.NewHub()
	m := newLanding(hub, 120, 40)
	m.Init()

	if _, _, ok := m.Trail(); ok {
		t.Fatalf("trail hidden until the pointer moves")
	}
	hub.Publish(pointer.Position{X: 10, Y: 10})
	if x, y, ok := m.Trail(); !ok || x != 10 || y != 10 {
		t.Fatalf("first position should place the trail, got %d,%d %v", x, y, ok)
	}

	hub.Publish(pointer.Position{X: 30, Y: 20})
	step(m, 1)
	x, _, _ := m.Trail()
	if x <= 10 || x >= 30 {
		t.Fatalf("trail should be moving towards the pointer, at x=%d", x)
	}
	step(m, 60)
	if x, y, _ := m.Trail(); x != 30 || y != 20 {
		t.Fatalf("trail should settle on the pointer, at %d,%d", x, y)
	}
	if !strings.Contains(m.View(), TrailGlyph) {
		t.Fatalf("trail glyph missing from view")
	}
}

func TestCloseReleasesEverything(t *testing.T) {
	hub := pointer.NewHub()
	m := newLanding(hub, 120, 40)
	m.Init()
	if hub.Len() != 1 {
		t.Fatalf("expected a subscription, got %d", hub.Len())
	}

	m.Close()
	if hub.Len() != 0 {
		t.Fatalf("close must unsubscribe, %d left", hub.Len())
	}
	if !m.Scene().Closed() {
		t.Fatalf("close must stop the scene")
	}
	if _, cmd := m.Update(frame(m, 1)()); cmd != nil {
		t.Fatalf("no frame may be scheduled after close")
	}
	if m.View() != "" {
		t.Fatalf("closed view renders nothing")
	}
	m.Close()
}

func TestSpringSettles(t *testing.T) {
	var s Spring
	s.Jump(0, 0)
	s.Target(5, -3)
	for range 90 {
		s.Step(1.0 / 30)
	}
	if !s.Settled() {
		t.Fatalf("spring did not settle: %+v", s)
	}
}
