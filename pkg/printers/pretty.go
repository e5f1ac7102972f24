package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"tableflip.dev/cosmic/pkg/apod"
)

// DefaultWidth is the wrap width for explanations.
const DefaultWidth = 80

// PrettyPrint writes records for humans.
type PrettyPrint struct {
	Out   io.Writer
	Width int
	// Links renders URLs as terminal hyperlinks.
	Links bool
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return DefaultWidth
	}
	return pp.Width
}

func (pp *PrettyPrint) link(url, label string) string {
	if !pp.Links {
		return url
	}
	return termenv.Hyperlink(url, label)
}

// NewLine prints an empty line.
func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.Out, "")
}

// Title prints a bold, underlined heading.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.Out, title)
}

// Picture prints one record. Media is chosen by kind: videos get a player
// link, images their HD locator when present. The HD download line only
// appears when the record has an HD url.
func (pp *PrettyPrint) Picture(p *apod.Picture) {
	date := color.New(color.FgMagenta)
	faint := color.New(color.Faint)
	label := color.New(color.Bold)

	_, _ = date.Fprintln(pp.Out, p.Date)
	pp.Title(p.Title)
	if p.Copyright != "" {
		_, _ = faint.Fprintf(pp.Out, "© %s\n", p.Copyright)
	}
	pp.NewLine()

	switch p.MediaType {
	case apod.MediaVideo:
		_, _ = label.Fprint(pp.Out, "▶ Video: ")
		_, _ = fmt.Fprintln(pp.Out, pp.link(p.URL, p.URL))
	case apod.MediaImage:
		_, _ = label.Fprint(pp.Out, "Image: ")
		_, _ = fmt.Fprintln(pp.Out, pp.link(p.ImageURL(), p.ImageURL()))
	default:
		_, _ = label.Fprintf(pp.Out, "Media (%s): ", p.MediaType)
		_, _ = fmt.Fprintln(pp.Out, pp.link(p.URL, p.URL))
	}
	if p.HDURL != "" {
		_, _ = label.Fprint(pp.Out, "Download HD: ")
		_, _ = fmt.Fprintln(pp.Out, pp.link(p.HDURL, "Download HD"))
	}
	pp.NewLine()

	_, _ = fmt.Fprintln(pp.Out, wordwrap.String(p.Explanation, pp.width()))
}

// Gallery prints records as a table, most recent first.
func (pp *PrettyPrint) Gallery(pics []apod.Picture) {
	if len(pics) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.Out, " no images\n\n")
		return
	}

	table := uitable.New()
	table.MaxColWidth = uint(pp.width() / 2)
	table.Wrap = true
	table.AddRow("DATE", "TITLE", "IMAGE")
	for _, p := range pics {
		table.AddRow(p.Date, p.Title, p.ImageURL())
	}
	_, _ = fmt.Fprintln(pp.Out, table)
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
