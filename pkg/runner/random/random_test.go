package random

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"tableflip.dev/cosmic/pkg/apod"
)

type fetcher struct {
	date *time.Time
}

func (f *fetcher) Fetch(_ context.Context, date *time.Time) (*apod.Picture, error) {
	f.date = date
	return &apod.Picture{Title: "Random", Date: apod.FormatDate(*date), URL: "https://apod.example/r.jpg", MediaType: apod.MediaImage}, nil
}

type sampler time.Time

func (s sampler) Sample() time.Time { return time.Time(s) }

func TestRandomFetchesSampledDay(t *testing.T) {
	day := time.Date(2007, 8, 9, 0, 0, 0, 0, time.UTC)
	f := &fetcher{}
	var buf bytes.Buffer
	r := &Random{Fetcher: f, Sampler: sampler(day), JSON: true, Out: &buf}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.date == nil || !f.date.Equal(day) {
		t.Fatalf("expected %s to be fetched, got %v", day, f.date)
	}
	var got apod.Picture
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got.Date != "2007-08-09" {
		t.Fatalf("unexpected record %+v", got)
	}
}

func TestRandomDefaultsSampler(t *testing.T) {
	f := &fetcher{}
	r := &Random{Fetcher: f, JSON: true, Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.date == nil || f.date.Before(apod.Epoch) || f.date.After(time.Now()) {
		t.Fatalf("sampled day out of range: %v", f.date)
	}
}
