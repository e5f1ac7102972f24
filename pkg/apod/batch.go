package apod

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"
)

// GalleryDays is the size of the gallery window.
const GalleryDays = 12

// MaxGalleryDays bounds a requested gallery window; every day is one request.
const MaxGalleryDays = 60

// Outcome is the result of one fetch inside a batch.
type Outcome struct {
	Date    time.Time
	Picture *Picture
	Err     error
}

// LastDays returns n calendar dates ending at ref, most recent first:
// ref, ref-1d, ..., ref-(n-1)d, in ref's location.
func LastDays(ref time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	y, m, d := ref.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, ref.Location())
	dates := make([]time.Time, n)
	for i := range dates {
		dates[i] = day.AddDate(0, 0, -i)
	}
	return dates
}

// Batch fetches every date concurrently and waits for all of them. Outcomes
// are in input order regardless of completion order; a failed fetch never
// cancels its siblings.
func (c *Client) Batch(ctx context.Context, dates []time.Time) []Outcome {
	out := make([]Outcome, len(dates))
	var g errgroup.Group
	for i, date := range dates {
		out[i].Date = date
		g.Go(func() error {
			p, err := c.Fetch(ctx, &date)
			out[i].Picture = p
			out[i].Err = err
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// Images keeps the successful image records, preserving order.
func Images(outcomes []Outcome) []Picture {
	pics := make([]Picture, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Err != nil || o.Picture == nil {
			continue
		}
		if o.Picture.IsImage() {
			pics = append(pics, *o.Picture)
		}
	}
	return pics
}

// Gallery fetches the n days ending at ref and returns the image records
// among them, most recent first. Individual failures are logged and skipped;
// the call only fails when no fetch succeeded.
func (c *Client) Gallery(ctx context.Context, ref time.Time, n int) ([]Picture, error) {
	outcomes := c.Batch(ctx, LastDays(ref, n))

	var errs []error
	for _, o := range outcomes {
		if o.Err != nil {
			c.log.WarnContext(ctx, "gallery fetch failed", "date", FormatDate(o.Date), "error", o.Err)
			errs = append(errs, o.Err)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Kind: KindTransport, Err: err}
	}
	if len(outcomes) > 0 && len(errs) == len(outcomes) {
		return nil, &FetchError{Kind: batchKind(errs), Err: errors.Join(errs...)}
	}
	return Images(outcomes), nil
}

// batchKind is KindParse when every fetch failed to parse, KindTransport
// otherwise.
func batchKind(errs []error) ErrorKind {
	for _, err := range errs {
		if !errors.Is(err, ErrParse) {
			return KindTransport
		}
	}
	return KindParse
}
