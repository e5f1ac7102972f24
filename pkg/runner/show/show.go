package show

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/cosmic/pkg/apod"
	"tableflip.dev/cosmic/pkg/printers"
)

// Fetcher retrieves one record; a nil date means the latest one.
type Fetcher interface {
	Fetch(ctx context.Context, date *time.Time) (*apod.Picture, error)
}

// Show prints the record for Date.
type Show struct {
	Fetcher Fetcher
	Date    *time.Time
	JSON    bool
	Out     io.Writer
	Width   int
	Links   bool
}

func (s *Show) Do(ctx context.Context) error {
	if s.Fetcher == nil {
		return errors.New("can not show, no client")
	}
	p, err := s.Fetcher.Fetch(ctx, s.Date)
	if err != nil {
		return err
	}
	return Print(s.Out, p, s.JSON, s.Width, s.Links)
}

// Print writes p as JSON or as a pretty record.
func Print(out io.Writer, p *apod.Picture, asJSON bool, width int, links bool) error {
	if asJSON {
		return printers.JSON(out, p)
	}
	pp := printers.PrettyPrint{Out: out, Width: width, Links: links}
	pp.NewLine()
	pp.Picture(p)
	return nil
}
