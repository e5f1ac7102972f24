package theme

import "github.com/charmbracelet/lipgloss/v2"

// Palette colours shared by every surface.
var (
	Purple     = lipgloss.Color("#a78bfa")
	DeepPurple = lipgloss.Color("#6d28d9")
	Blue       = lipgloss.Color("#60a5fa")
	Cyan       = lipgloss.Color("#22d3ee")
	Slate      = lipgloss.Color("#94a3b8")
	Light      = lipgloss.Color("#cbd5e1")
	Dim        = lipgloss.Color("#64748b")
	White      = lipgloss.Color("#f8fafc")
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Nav     NavTheme
	Page    PageTheme
	Card    CardTheme
	Modal   ModalTheme
	Footer  FooterTheme
	Landing LandingTheme
}

// NavTheme styles the top navigation bar.
type NavTheme struct {
	Bar       lipgloss.Style
	Brand     lipgloss.Style
	Link      lipgloss.Style
	Active    lipgloss.Style
	Separator lipgloss.Style
}

// PageTheme styles page headers and state messages.
type PageTheme struct {
	Heading lipgloss.Style
	Sub     lipgloss.Style
	Date    lipgloss.Style
	Title   lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Media   lipgloss.Style
	Button  lipgloss.Style
	Link    lipgloss.Style
}

// CardTheme styles gallery cards.
type CardTheme struct {
	Frame    lipgloss.Style
	Selected lipgloss.Style
	Date     lipgloss.Style
	Title    lipgloss.Style
}

// ModalTheme styles centered modal overlays.
type ModalTheme struct {
	Frame  lipgloss.Style
	Title  lipgloss.Style
	Body   lipgloss.Style
	Button lipgloss.Style
}

// FooterTheme groups styles used by the bottom help line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// LandingTheme styles the hero copy and stat tiles.
type LandingTheme struct {
	Hero   lipgloss.Style
	Accent lipgloss.Style
	Tile   lipgloss.Style
	Trail  lipgloss.Style
	Star   lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	button := lipgloss.NewStyle().
		Foreground(White).
		Background(DeepPurple).
		Bold(true).
		Padding(0, 2)

	return Theme{
		Nav: NavTheme{
			Bar: lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(Dim),
			Brand:     lipgloss.NewStyle().Foreground(Purple).Bold(true),
			Link:      lipgloss.NewStyle().Foreground(Light),
			Active:    lipgloss.NewStyle().Foreground(Purple).Bold(true).Underline(true),
			Separator: lipgloss.NewStyle().Foreground(Dim),
		},
		Page: PageTheme{
			Heading: lipgloss.NewStyle().Foreground(White).Bold(true),
			Sub:     lipgloss.NewStyle().Foreground(Light),
			Date:    lipgloss.NewStyle().Foreground(Purple),
			Title:   lipgloss.NewStyle().Foreground(White).Bold(true),
			Body:    lipgloss.NewStyle().Foreground(Light),
			Muted:   lipgloss.NewStyle().Foreground(Slate),
			Error:   lipgloss.NewStyle().Foreground(Slate),
			Media: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Purple).
				Padding(0, 1),
			Button: button,
			Link: lipgloss.NewStyle().
				Foreground(White).
				Border(lipgloss.NormalBorder()).
				BorderForeground(Dim).
				Padding(0, 1),
		},
		Card: CardTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Dim).
				Padding(0, 1),
			Selected: lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(Purple).
				Padding(0, 1),
			Date:  lipgloss.NewStyle().Foreground(Purple),
			Title: lipgloss.NewStyle().Foreground(White).Bold(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Purple).
				Padding(1, 2),
			Title:  lipgloss.NewStyle().Foreground(White).Bold(true),
			Body:   lipgloss.NewStyle().Foreground(Light),
			Button: button,
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(Dim),
			Status: lipgloss.NewStyle().Foreground(Slate),
		},
		Landing: LandingTheme{
			Hero:   lipgloss.NewStyle().Foreground(White).Bold(true),
			Accent: lipgloss.NewStyle().Foreground(Purple).Bold(true),
			Tile: lipgloss.NewStyle().
				BorderStyle(lipgloss.ThickBorder()).
				BorderLeft(true).
				Padding(0, 1),
			Trail: lipgloss.NewStyle().Foreground(Purple),
			Star:  lipgloss.NewStyle().Foreground(White),
		},
	}
}
