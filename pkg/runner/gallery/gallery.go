package gallery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"tableflip.dev/cosmic/pkg/apod"
	"tableflip.dev/cosmic/pkg/printers"
	"tableflip.dev/cosmic/pkg/runner/show"
)

// Source loads the image records of the n days ending at ref.
type Source interface {
	Gallery(ctx context.Context, ref time.Time, n int) ([]apod.Picture, error)
}

// Gallery prints the image records of the last Days days.
type Gallery struct {
	Source Source
	Days   int
	Now    func() time.Time
	JSON   bool
	Out    io.Writer
	Width  int
	Links  bool
	// Pick, when set, chooses one picture to print instead of the listing.
	Pick func([]apod.Picture) (int, error)
}

func (g *Gallery) Do(ctx context.Context) error {
	if g.Source == nil {
		return errors.New("can not build gallery, no client")
	}
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	days := g.Days
	if days <= 0 {
		days = apod.GalleryDays
	}

	pics, err := g.Source.Gallery(ctx, now(), days)
	if err != nil {
		return err
	}
	if g.Pick != nil && len(pics) > 0 {
		i, err := g.Pick(pics)
		if err != nil {
			return err
		}
		if i < 0 || i >= len(pics) {
			return fmt.Errorf("picked picture %d of %d", i+1, len(pics))
		}
		return show.Print(g.Out, &pics[i], g.JSON, g.Width, g.Links)
	}
	if g.JSON {
		if pics == nil {
			pics = []apod.Picture{}
		}
		return printers.JSON(g.Out, pics)
	}

	pp := printers.PrettyPrint{Out: g.Out, Width: g.Width}
	pp.NewLine()
	pp.Title(fmt.Sprintf("Images from the last %d days", days))
	pp.Gallery(pics)
	return nil
}
