// Package calendar renders a month grid for picking a day.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
)

// Day describes a single day rendered in the calendar.
type Day struct {
	Day        int
	IsToday    bool
	IsSelected bool
	// IsDisabled marks days outside the pickable range.
	IsDisabled bool
}

// Options controls calendar styling.
type Options struct {
	TitleStyle    lipgloss.Style
	HeaderStyle   lipgloss.Style
	DayStyle      lipgloss.Style
	DisabledStyle lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
}

// Width is the rendered width of a week row.
const Width = 7*2 + 6

// Month lists every day of month, flagging selected, today (the last
// pickable day) and the days outside [first, last].
func Month(month, selected, first, last time.Time) []Day {
	y, m, _ := month.Date()
	n := DaysIn(month)
	days := make([]Day, n)
	for i := range days {
		d := time.Date(y, m, i+1, 0, 0, 0, 0, time.UTC)
		days[i] = Day{
			Day:        i + 1,
			IsToday:    sameDay(d, last),
			IsSelected: !selected.IsZero() && sameDay(d, selected),
			IsDisabled: d.Before(day(first)) || d.After(day(last)),
		}
	}
	return days
}

// Render produces a multi-line calendar string for the given month: a title,
// the weekday header and one row per week.
func Render(month time.Time, days []Day, opts Options) string {
	if month.IsZero() {
		return ""
	}

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := DaysIn(month)

	byDay := make(map[int]Day, len(days))
	for _, d := range days {
		if d.Day >= 1 && d.Day <= daysInMonth {
			byDay[d.Day] = d
		}
	}

	title := first.Format("January 2006")
	lines := []string{
		opts.TitleStyle.Render(lipgloss.PlaceHorizontal(Width, lipgloss.Center, title)),
		opts.HeaderStyle.Render("Su Mo Tu We Th Fr Sa"),
	}

	startOffset := int(first.Weekday())
	rows := (startOffset + daysInMonth + 6) / 7

	for row := range rows {
		cells := make([]string, 0, 7)
		for col := range 7 {
			day := row*7 + col - startOffset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, "  ")
				continue
			}
			info, ok := byDay[day]
			if !ok {
				info = Day{Day: day}
			}
			cells = append(cells, renderDay(info, day, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(info Day, day int, opts Options) string {
	text := fmt.Sprintf("%2d", day)

	style := opts.DayStyle
	if info.IsDisabled {
		style = opts.DisabledStyle
	}
	if info.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if info.IsSelected {
		style = opts.SelectedStyle.Inherit(style)
	}
	return style.Render(text)
}

// DaysIn returns the number of days in a month.
func DaysIn(month time.Time) int {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}

// ParseMonth reads a complete or partial YYYY-MM-DD value. It returns the
// month to show and, when the value names a whole day, that day.
func ParseMonth(value string) (month, selected time.Time, ok bool) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, t, true
	}
	if len(value) >= len("2006-01") {
		if t, err := time.Parse("2006-01", value[:len("2006-01")]); err == nil {
			return t, time.Time{}, true
		}
	}
	return time.Time{}, time.Time{}, false
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	return Options{
		TitleStyle:    lipgloss.NewStyle().Bold(true),
		HeaderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		DayStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		DisabledStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		TodayStyle:    lipgloss.NewStyle().Underline(true),
		SelectedStyle: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
	}
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return day(a).Equal(day(b))
}
