// Package gallery renders the recent image records as a grid of cards with
// a detail modal.
package gallery

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/spinner"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/cosmic/pkg/apod"
	"tableflip.dev/cosmic/pkg/fetch"
	"tableflip.dev/cosmic/pkg/tui/theme"
	"tableflip.dev/cosmic/pkg/tui/ui"
	"tableflip.dev/cosmic/pkg/tui/ui/overlay"
)

var (
	_ ui.View     = (*Model)(nil)
	_ ui.Capturer = (*Model)(nil)
	_ ui.Helper   = (*Model)(nil)
)

// Source loads the image records of the n days ending at ref.
type Source interface {
	Gallery(ctx context.Context, ref time.Time, n int) ([]apod.Picture, error)
}

// Options configures a gallery view.
type Options struct {
	Source Source
	Logger *slog.Logger
	Theme  theme.Theme
	Now    func() time.Time
	// Days defaults to apod.GalleryDays.
	Days int
}

const (
	headerRows = 3
	cardRows   = 5
	cardGap    = 1
	leftPad    = 2
	// titleLines is the clamp applied to card titles.
	titleLines = 2
)

type loadedMsg struct {
	tok  fetch.Token
	pics []apod.Picture
	err  error
}

type keyMap struct {
	Move  key.Binding
	Open  key.Binding
	Close key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Move:  key.NewBinding(key.WithKeys("left", "right", "up", "down", "h", "j", "k", "l"), key.WithHelp("←↑↓→", "move")),
		Open:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Close: key.NewBinding(key.WithKeys("esc", "q", "enter"), key.WithHelp("esc", "close")),
	}
}

// Model is the /gallery view.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	source Source
	log    *slog.Logger
	now    func() time.Time
	days   int

	state   *fetch.State[[]apod.Picture]
	spinner spinner.Model

	cursor   int
	offset   int
	selected int

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
	if opts.Days <= 0 {
		opts.Days = apod.GalleryDays
	}
	m := &Model{
		ctx:    ctx,
		cancel: cancel,
		source: opts.Source,
		log:    opts.Logger.With("view", "gallery"),
		now:    opts.Now,
		days:   opts.Days,
		state:  fetch.New[[]apod.Picture](),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Purple)),
		),
		selected: -1,
		keys:     defaultKeys(),
		theme:    opts.Theme,
	}
	m.SetSize(80, 24)
	return m
}

// Init starts the batch fetch.
func (m *Model) Init() tea.Cmd {
	tok := m.state.Begin()
	ctx, source, ref, days := m.ctx, m.source, m.now(), m.days
	m.log.Debug("fetching gallery", "days", days)
	load := func() tea.Msg {
		if source == nil {
			return loadedMsg{tok: tok, err: errors.New("no gallery source configured")}
		}
		pics, err := source.Gallery(ctx, ref, days)
		return loadedMsg{tok: tok, pics: pics, err: err}
	}
	return tea.Batch(load, m.spinner.Tick)
}

// Phase reports the fetch phase.
func (m *Model) Phase() fetch.Phase { return m.state.Phase() }

// Pictures returns the loaded image records.
func (m *Model) Pictures() []apod.Picture { return m.state.Payload() }

// Cursor returns the index of the highlighted card.
func (m *Model) Cursor() int { return m.cursor }

// Selected returns the record shown in the modal, nil when it is closed.
func (m *Model) Selected() *apod.Picture {
	pics := m.state.Payload()
	if m.selected < 0 || m.selected >= len(pics) {
		return nil
	}
	return &pics[m.selected]
}

// Capturing reports whether the modal owns the keyboard.
func (m *Model) Capturing() bool { return m.Selected() != nil }

// ShortHelp lists the bindings for the current mode.
func (m *Model) ShortHelp() []key.Binding {
	if m.Selected() != nil {
		return []key.Binding{m.keys.Close}
	}
	return []key.Binding{m.keys.Move, m.keys.Open}
}

// Select opens the modal on the i-th record.
func (m *Model) Select(i int) {
	if i < 0 || i >= len(m.state.Payload()) {
		return
	}
	m.cursor = i
	m.selected = i
	m.ensureVisible()
}

// Dismiss closes the modal.
func (m *Model) Dismiss() { m.selected = -1 }

// Update implements ui.View.
func (m *Model) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.resolve(msg)
	case spinner.TickMsg:
		if m.state.Phase() != fetch.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyPressMsg:
		m.handleKey(msg)
	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		if mouse.Button == tea.MouseLeft {
			m.handleClick(mouse.X, mouse.Y)
		}
	case tea.MouseWheelMsg:
		if m.Selected() != nil {
			break
		}
		switch msg.Mouse().Button {
		case tea.MouseWheelUp:
			m.offset = max(m.offset-1, 0)
		case tea.MouseWheelDown:
			m.offset = min(m.offset+1, m.maxOffset())
		}
	}
	return m, nil
}

func (m *Model) resolve(msg loadedMsg) {
	if !m.state.Resolve(msg.tok, msg.pics, msg.err) {
		return
	}
	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			return
		}
		m.log.Error("failed to load gallery", "error", msg.err)
		return
	}
	m.log.Info("gallery loaded", "images", len(msg.pics))
	m.cursor, m.offset, m.selected = 0, 0, -1
}

func (m *Model) handleKey(msg tea.KeyPressMsg) {
	if m.Selected() != nil {
		if key.Matches(msg, m.keys.Close) {
			m.Dismiss()
		}
		return
	}
	n := len(m.state.Payload())
	if n == 0 {
		return
	}
	cols := m.columns()
	switch msg.String() {
	case "left", "h":
		m.cursor = max(m.cursor-1, 0)
	case "right", "l":
		m.cursor = min(m.cursor+1, n-1)
	case "up", "k":
		if m.cursor-cols >= 0 {
			m.cursor -= cols
		}
	case "down", "j":
		if m.cursor+cols < n {
			m.cursor += cols
		}
	case "enter":
		m.Select(m.cursor)
		return
	}
	m.ensureVisible()
}

func (m *Model) handleClick(x, y int) {
	if pic := m.Selected(); pic != nil {
		modal, button := m.modalBounds(pic)
		switch {
		case button.Contains(x, y):
			m.Dismiss()
		case modal.Contains(x, y):
		default:
			m.Dismiss()
		}
		return
	}
	if i, ok := m.CardAt(x, y); ok {
		m.Select(i)
	}
}

// SetSize implements ui.View.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 24)
	m.height = max(height, headerRows+cardRows)
	m.ensureVisible()
}

// Close cancels the batch fetch.
func (m *Model) Close() { m.cancel() }

// columns follows the one/two/three column breakpoints of the grid.
func (m *Model) columns() int {
	switch {
	case m.width >= 120:
		return 3
	case m.width >= 80:
		return 2
	default:
		return 1
	}
}

func (m *Model) cardWidth() int {
	cols := m.columns()
	return max((m.width-2*leftPad-(cols-1)*cardGap)/cols, 12)
}

func (m *Model) visibleRows() int {
	return max((m.height-headerRows)/cardRows, 1)
}

func (m *Model) totalRows() int {
	cols := m.columns()
	return (len(m.state.Payload()) + cols - 1) / cols
}

func (m *Model) maxOffset() int {
	return max(m.totalRows()-m.visibleRows(), 0)
}

func (m *Model) ensureVisible() {
	row := m.cursor / m.columns()
	if row < m.offset {
		m.offset = row
	}
	if vis := m.visibleRows(); row >= m.offset+vis {
		m.offset = row - vis + 1
	}
	m.offset = max(min(m.offset, m.maxOffset()), 0)
}

// CardRect returns the on-screen cell rectangle of card i.
func (m *Model) CardRect(i int) overlay.Rect {
	cols := m.columns()
	w := m.cardWidth()
	row, col := i/cols-m.offset, i%cols
	return overlay.Rect{
		X:      leftPad + col*(w+cardGap),
		Y:      headerRows + row*cardRows,
		Width:  w,
		Height: cardRows,
	}
}

// CardAt resolves a cell to a visible card index.
func (m *Model) CardAt(x, y int) (int, bool) {
	if m.state.Phase() != fetch.Loaded {
		return 0, false
	}
	cols := m.columns()
	first := m.offset * cols
	last := min((m.offset+m.visibleRows())*cols, len(m.state.Payload()))
	for i := first; i < last; i++ {
		if m.CardRect(i).Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// View implements ui.View.
func (m *Model) View() string {
	page := m.theme.Page
	lines := []string{
		page.Heading.Render("Cosmic Gallery"),
		page.Sub.Render("Browse the latest astronomy pictures"),
		"",
	}

	switch m.state.Phase() {
	case fetch.Loading:
		lines = append(lines, m.spinner.View()+" "+page.Muted.Render("Loading gallery..."))
	case fetch.Error:
		lines = append(lines, page.Error.Render("Failed to load gallery"))
	case fetch.Loaded:
		if len(m.state.Payload()) == 0 {
			lines = append(lines, page.Muted.Render("No images in the last 12 days"))
			break
		}
		lines = append(lines, m.renderGrid())
	}

	base := lipgloss.NewStyle().PaddingLeft(leftPad).Render(strings.Join(lines, "\n"))
	pic := m.Selected()
	if pic == nil {
		return base
	}
	return overlay.Compose(base, m.width, m.height, m.renderModal(pic), m.modalPlacement())
}

func (m *Model) renderGrid() string {
	pics := m.state.Payload()
	cols := m.columns()
	first := m.offset * cols
	last := min((m.offset+m.visibleRows())*cols, len(pics))

	gap := strings.Repeat(" ", cardGap)
	var rows []string
	for start := first; start < last; start += cols {
		var cards []string
		for i := start; i < min(start+cols, last); i++ {
			if i > start {
				cards = append(cards, gap)
			}
			cards = append(cards, m.renderCard(pics[i], i == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderCard(p apod.Picture, highlighted bool) string {
	card := m.theme.Card
	inner := m.cardWidth() - 4
	frame := card.Frame
	if highlighted {
		frame = card.Selected
	}
	title := clampLines(p.Title, inner, titleLines)
	body := []string{pad(card.Date.Render(p.Date), inner)}
	for _, l := range title {
		body = append(body, pad(card.Title.Render(l), inner))
	}
	return frame.Render(strings.Join(body, "\n"))
}

func (m *Model) modalPlacement() overlay.Placement {
	return overlay.Placement{Horizontal: lipgloss.Center, Vertical: lipgloss.Center}
}

func (m *Model) modalContentWidth() int {
	return max(min(m.width-10, 70), 16)
}

func (m *Model) modalLines(p *apod.Picture) []string {
	modal := m.theme.Modal
	w := m.modalContentWidth()
	// border, padding and the fixed rows around the explanation
	room := max(m.height-4-7, 1)

	expl := strings.Split(wordwrap.String(p.Explanation, w), "\n")
	if len(expl) > room {
		expl = expl[:room]
		expl[room-1] = ansi.Truncate(expl[room-1], w-1, "") + "…"
	}
	lines := []string{
		pad("🖼 "+ansi.Truncate(p.ImageURL(), w-3, "…"), w),
		"",
		pad(m.theme.Card.Date.Render(p.Date), w),
		pad(modal.Title.Render(ansi.Truncate(p.Title, w, "…")), w),
		"",
	}
	for _, l := range expl {
		lines = append(lines, pad(modal.Body.Render(ansi.Truncate(l, w, "")), w))
	}
	lines = append(lines, "", modal.Button.Render("Close"))
	return lines
}

func (m *Model) renderModal(p *apod.Picture) string {
	return m.theme.Modal.Frame.Render(strings.Join(m.modalLines(p), "\n"))
}

// modalBounds returns the modal rectangle and its Close button.
func (m *Model) modalBounds(p *apod.Picture) (overlay.Rect, overlay.Rect) {
	lines := m.modalLines(p)
	modal := overlay.Bounds(m.width, m.height, m.renderModal(p), m.modalPlacement())
	frame := m.theme.Modal.Frame
	left := frame.GetBorderLeftSize() + frame.GetPaddingLeft()
	top := frame.GetBorderTopSize() + frame.GetPaddingTop()
	button := overlay.Rect{
		X:      modal.X + left,
		Y:      modal.Y + top + len(lines) - 1,
		Width:  lipgloss.Width(lines[len(lines)-1]),
		Height: 1,
	}
	return modal, button
}

// ModalBounds exposes the modal and Close button rectangles of the open
// modal; both are empty when it is closed.
func (m *Model) ModalBounds() (overlay.Rect, overlay.Rect) {
	pic := m.Selected()
	if pic == nil {
		return overlay.Rect{}, overlay.Rect{}
	}
	return m.modalBounds(pic)
}

func clampLines(s string, width, n int) []string {
	wrapped := strings.Split(wordwrap.String(s, width), "\n")
	for i := range wrapped {
		wrapped[i] = ansi.Truncate(wrapped[i], width, "")
	}
	if len(wrapped) > n {
		wrapped = wrapped[:n]
		wrapped[n-1] = ansi.Truncate(wrapped[n-1], width-1, "") + "…"
	}
	for len(wrapped) < n {
		wrapped = append(wrapped, "")
	}
	return wrapped
}

func pad(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
