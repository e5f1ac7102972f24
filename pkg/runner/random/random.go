package random

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"tableflip.dev/cosmic/pkg/apod"
	"tableflip.dev/cosmic/pkg/runner/show"
)

// Sampler picks a day.
type Sampler interface {
	Sample() time.Time
}

// Random prints the record of a uniformly sampled day.
type Random struct {
	Fetcher show.Fetcher
	Sampler Sampler
	Log     *slog.Logger
	JSON    bool
	Out     io.Writer
	Width   int
	Links   bool
}

func (r *Random) Do(ctx context.Context) error {
	if r.Fetcher == nil {
		return errors.New("can not pick a random day, no client")
	}
	sampler := r.Sampler
	if sampler == nil {
		sampler = apod.NewSampler()
	}
	day := sampler.Sample()
	if r.Log != nil {
		r.Log.DebugContext(ctx, "sampled day", "date", apod.FormatDate(day))
	}
	p, err := r.Fetcher.Fetch(ctx, &day)
	if err != nil {
		return err
	}
	return show.Print(r.Out, p, r.JSON, r.Width, r.Links)
}
