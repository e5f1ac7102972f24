// Package detail renders a single Astronomy Picture of the Day record.
package detail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/spinner"
	"github.com/charmbracelet/bubbles/v2/textinput"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"tableflip.dev/cosmic/pkg/apod"
	"tableflip.dev/cosmic/pkg/fetch"
	"tableflip.dev/cosmic/pkg/tui/components/calendar"
	"tableflip.dev/cosmic/pkg/tui/theme"
	"tableflip.dev/cosmic/pkg/tui/ui"
)

var (
	_ ui.View     = (*Model)(nil)
	_ ui.Capturer = (*Model)(nil)
	_ ui.Helper   = (*Model)(nil)
)

// Fetcher retrieves one record; a nil date means the latest one.
type Fetcher interface {
	Fetch(ctx context.Context, date *time.Time) (*apod.Picture, error)
}

// Sampler picks a random day.
type Sampler interface {
	Sample() time.Time
}

// Options configures a detail view.
type Options struct {
	Fetcher Fetcher
	Sampler Sampler
	Logger  *slog.Logger
	Theme   theme.Theme
	// Now defaults to time.Now and bounds the date input.
	Now func() time.Time
	// Hyperlinks wraps media locators in OSC 8 links.
	Hyperlinks bool
}

type loadedMsg struct {
	tok fetch.Token
	pic *apod.Picture
	err error
}

type keyMap struct {
	Random key.Binding
	Today  key.Binding
	Date   key.Binding
	Scroll key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Random: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "random day")),
		Today:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Date:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "go to date")),
		Scroll: key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown"), key.WithHelp("↑/↓", "scroll")),
	}
}

// Model is the /apod view.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	fetcher Fetcher
	sampler Sampler
	log     *slog.Logger
	now     func() time.Time
	links   bool

	state     *fetch.State[*apod.Picture]
	requested string

	spinner  spinner.Model
	viewport viewport.Model
	input    textinput.Model
	editing  bool
	inputErr string

	keys   keyMap
	theme  theme.Theme
	width  int
	height int
}

// New constructs the view. Nothing is fetched until Init.
func New(opts Options) *Model {
	ctx, cancel := context.WithCancel(context.Background())
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Sampler == nil {
		opts.Sampler = apod.NewSampler()
	}

	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = len(apod.DateLayout)
	ti.Prompt = "date: "

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Purple)),
	)

	m := &Model{
		ctx:      ctx,
		cancel:   cancel,
		fetcher:  opts.Fetcher,
		sampler:  opts.Sampler,
		log:      opts.Logger.With("view", "apod"),
		now:      opts.Now,
		links:    opts.Hyperlinks,
		state:    fetch.New[*apod.Picture](),
		spinner:  sp,
		viewport: viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		input:    ti,
		keys:     defaultKeys(),
		theme:    opts.Theme,
	}
	m.SetSize(80, 24)
	return m
}

// Init fetches the latest record.
func (m *Model) Init() tea.Cmd {
	return m.load(nil)
}

// Phase reports the fetch phase.
func (m *Model) Phase() fetch.Phase { return m.state.Phase() }

// Picture returns the loaded record, nil unless loaded.
func (m *Model) Picture() *apod.Picture { return m.state.Payload() }

// Capturing reports whether the date input owns the keyboard.
func (m *Model) Capturing() bool { return m.editing }

// ShortHelp lists the view's key bindings.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Random, m.keys.Today, m.keys.Date, m.keys.Scroll}
}

// Random starts a fetch for a sampled day.
func (m *Model) Random() tea.Cmd {
	day := m.sampler.Sample()
	return m.load(&day)
}

func (m *Model) load(date *time.Time) tea.Cmd {
	tok := m.state.Begin()
	m.requested = "today"
	if date != nil {
		m.requested = apod.FormatDate(*date)
	}
	m.log.Debug("fetching record", "date", m.requested)

	ctx, fetcher := m.ctx, m.fetcher
	fetchCmd := func() tea.Msg {
		if fetcher == nil {
			return loadedMsg{tok: tok, err: errors.New("no fetcher configured")}
		}
		pic, err := fetcher.Fetch(ctx, date)
		return loadedMsg{tok: tok, pic: pic, err: err}
	}
	return tea.Batch(fetchCmd, m.spinner.Tick)
}

// Update implements ui.View.
func (m *Model) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.resolve(msg)
		return m, nil
	case spinner.TickMsg:
		if m.state.Phase() != fetch.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyPressMsg:
		if m.editing {
			return m, m.handleInputKey(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Random):
			return m, m.Random()
		case key.Matches(msg, m.keys.Today):
			return m, m.load(nil)
		case key.Matches(msg, m.keys.Date):
			m.editing = true
			m.inputErr = ""
			m.input.Reset()
			return m, m.input.Focus()
		}
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) resolve(msg loadedMsg) {
	if !m.state.Resolve(msg.tok, msg.pic, msg.err) {
		m.log.Debug("dropping stale record")
		return
	}
	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			return
		}
		m.log.Error("failed to load record", "date", m.requested, "error", msg.err)
		return
	}
	m.log.Info("record loaded", "date", msg.pic.Date, "media_type", msg.pic.MediaType)
	m.refreshExplanation()
	m.viewport.GotoTop()
}

func (m *Model) handleInputKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closeInput()
		return nil
	case "enter":
		day, err := m.validate(strings.TrimSpace(m.input.Value()))
		if err != nil {
			m.inputErr = err.Error()
			return nil
		}
		m.closeInput()
		return m.load(&day)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) closeInput() {
	m.editing = false
	m.inputErr = ""
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) validate(value string) (time.Time, error) {
	day, err := apod.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected %s", apod.DateLayout)
	}
	today := m.today()
	if day.Before(apod.Epoch) || day.After(today) {
		return time.Time{}, fmt.Errorf("date must be between %s and %s",
			apod.FormatDate(apod.Epoch), apod.FormatDate(today))
	}
	return day, nil
}

func (m *Model) today() time.Time {
	now := m.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// SetSize implements ui.View.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 20)
	m.height = max(height, 10)
	m.viewport.SetWidth(m.contentWidth())
	m.viewport.SetHeight(m.explanationHeight())
	m.refreshExplanation()
}

// Close cancels any in-flight fetch.
func (m *Model) Close() {
	m.cancel()
}

func (m *Model) contentWidth() int {
	return max(min(m.width-4, 100), 16)
}

// header (2) + gap + media (3) + gap + date + title + credit + gap + buttons + input
const chromeRows = 12

func (m *Model) explanationHeight() int {
	return max(m.height-chromeRows, 3)
}

func (m *Model) refreshExplanation() {
	pic := m.state.Payload()
	if pic == nil {
		m.viewport.SetContent("")
		return
	}
	body := wordwrap.String(pic.Explanation, m.contentWidth())
	m.viewport.SetContent(m.theme.Page.Body.Render(body))
}

// View implements ui.View.
func (m *Model) View() string {
	page := m.theme.Page
	var b strings.Builder
	b.WriteString(page.Heading.Render("Astronomy Picture of the Day"))
	b.WriteString("\n")
	b.WriteString(page.Sub.Render("NASA's daily selection of the cosmos"))
	b.WriteString("\n\n")

	switch m.state.Phase() {
	case fetch.Loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(page.Muted.Render("Loading cosmic wonders..."))
	case fetch.Error:
		b.WriteString(page.Error.Render("Failed to load APOD"))
	case fetch.Loaded:
		b.WriteString(m.renderRecord(m.state.Payload()))
	}

	if m.editing {
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		if m.inputErr != "" {
			b.WriteString("  ")
			b.WriteString(page.Error.Render(m.inputErr))
		}
		if m.state.Phase() != fetch.Loaded {
			b.WriteString("\n\n")
			b.WriteString(m.renderPicker(0))
		}
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}

func (m *Model) renderRecord(p *apod.Picture) string {
	page := m.theme.Page
	media := MediaFor(p)

	var label string
	switch media.Kind {
	case Player:
		label = "▶ Video"
	case Image:
		label = "🖼 Image"
	default:
		label = "↗ Media"
	}
	block := page.Media.Width(m.contentWidth()).Render(label + "  " + m.link(media.Src, media.Src))

	lines := []string{
		block,
		"",
		page.Date.Render(p.Date),
		page.Title.Render(p.Title),
	}
	if p.Copyright != "" {
		lines = append(lines, page.Muted.Render("© "+strings.TrimSpace(p.Copyright)))
	}
	body := m.viewport.View()
	if m.editing {
		body = m.renderPicker(m.explanationHeight())
	}
	lines = append(lines, "", body, "")

	buttons := []string{page.Button.Render("🎲 Random Day")}
	if media.Download != "" {
		buttons = append(buttons, page.Link.Render(m.link(media.Download, "Download HD")))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Center, join(buttons, "  ")...))
	return strings.Join(lines, "\n")
}

// pickerMonth follows what has been typed so far, then the shown record.
func (m *Model) pickerMonth() (month, selected time.Time) {
	if month, selected, ok := calendar.ParseMonth(m.input.Value()); ok {
		return month, selected
	}
	if p := m.state.Payload(); p != nil {
		if t, err := apod.ParseDate(p.Date); err == nil {
			return t, time.Time{}
		}
	}
	return m.today(), time.Time{}
}

// renderPicker draws the month grid under the date input, cut to rows when
// rows > 0.
func (m *Model) renderPicker(rows int) string {
	month, selected := m.pickerMonth()
	page := m.theme.Page
	out := calendar.Render(month, calendar.Month(month, selected, apod.Epoch, m.today()), calendar.Options{
		TitleStyle:    page.Date,
		HeaderStyle:   page.Muted,
		DayStyle:      page.Body,
		DisabledStyle: lipgloss.NewStyle().Foreground(theme.Dim),
		TodayStyle:    lipgloss.NewStyle().Underline(true),
		SelectedStyle: lipgloss.NewStyle().Background(theme.DeepPurple).Foreground(theme.White),
	})
	if rows > 0 {
		if lines := strings.Split(out, "\n"); len(lines) > rows {
			out = strings.Join(lines[:rows], "\n")
		}
	}
	return out
}

func (m *Model) link(url, text string) string {
	if !m.links || url == "" {
		if text != url && url != "" {
			return text + " " + url
		}
		return text
	}
	return termenv.Hyperlink(url, text)
}

func join(items []string, sep string) []string {
	out := make([]string, 0, len(items)*2)
	for i, it := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, it)
	}
	return out
}
