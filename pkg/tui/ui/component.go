// Package ui defines the contracts shared by routed views.
package ui

import (
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// View is a routed surface. The router calls Init on mount and Close on
// unmount; Close must stop any loops and release what the view acquired.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
	SetSize(width, height int)
	Close()
}

// Capturer is implemented by views that sometimes consume raw key input,
// e.g. while a text field is focused.
type Capturer interface {
	Capturing() bool
}

// Helper is implemented by views that advertise key bindings in the footer.
type Helper interface {
	ShortHelp() []key.Binding
}

// NavigateMsg asks the router to switch to Path.
type NavigateMsg struct {
	Path string
}

// Navigate returns a command that routes to path.
func Navigate(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path} }
}
