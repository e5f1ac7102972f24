package help

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/x/ansi"
)

func TestHelpListsSectionBindings(t *testing.T) {
	m := New(70, 40)
	m.SetSections(
		Section{Title: "Navigation", Bindings: []key.Binding{
			key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		}},
		Section{Title: "APOD", Bindings: []key.Binding{
			key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "random day")),
			key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"), key.WithDisabled()),
		}},
	)
	view := ansi.Strip(m.View())
	for _, want := range []string{"Cosmic Explorer", "Navigation", "toggle help", "APOD", "random day"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in help view:\n%s", want, view)
		}
	}
	if strings.Contains(view, "hidden") {
		t.Fatalf("disabled bindings are not listed:\n%s", view)
	}
}

func TestSetSectionsReplacesTables(t *testing.T) {
	m := New(70, 40)
	m.SetSections(Section{Title: "Gallery", Bindings: []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	}})
	m.SetSections(Section{Title: "Home", Bindings: []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "enter the universe")),
	}})
	md := m.Markdown()
	if strings.Contains(md, "## Gallery") || !strings.Contains(md, "## Home") {
		t.Fatalf("only the latest sections are shown:\n%s", md)
	}
}

func TestEmptySectionIsSkipped(t *testing.T) {
	m := New(70, 40)
	m.SetSections(Section{Title: "Nothing"})
	if strings.Contains(m.Markdown(), "Nothing") {
		t.Fatalf("a section without bindings has no table")
	}
}

func TestHelpEnforcesMinimumSize(t *testing.T) {
	m := New(5, 2)
	w, h := m.Size()
	if w != minWidth || h != minHeight {
		t.Fatalf("expected minimum size %dx%d, got %dx%d", minWidth, minHeight, w, h)
	}
}
