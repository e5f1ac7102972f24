package show

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/cosmic/pkg/apod"
)

type fetcher struct {
	pic  *apod.Picture
	err  error
	date *time.Time
}

func (f *fetcher) Fetch(_ context.Context, date *time.Time) (*apod.Picture, error) {
	f.date = date
	return f.pic, f.err
}

func init() {
	color.NoColor = true
}

func picture() *apod.Picture {
	return &apod.Picture{
		Title:       "Pillars of Creation",
		Date:        "2022-10-20",
		Explanation: "Towers of gas and dust in the Eagle Nebula.",
		URL:         "https://apod.example/pillars.jpg",
		HDURL:       "https://apod.example/pillars_hd.jpg",
		MediaType:   apod.MediaImage,
	}
}

func TestShowPretty(t *testing.T) {
	var buf bytes.Buffer
	day := time.Date(2022, 10, 20, 0, 0, 0, 0, time.UTC)
	f := &fetcher{pic: picture()}
	s := &Show{Fetcher: f, Date: &day, Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.date == nil || !f.date.Equal(day) {
		t.Fatalf("expected the requested date to be fetched, got %v", f.date)
	}
	out := buf.String()
	for _, want := range []string{"Pillars of Creation", "2022-10-20", "pillars_hd.jpg", "Download HD", "Eagle Nebula"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestShowJSON(t *testing.T) {
	var buf bytes.Buffer
	s := &Show{Fetcher: &fetcher{pic: picture()}, JSON: true, Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got apod.Picture
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if got.Title != "Pillars of Creation" || got.HDURL == "" {
		t.Fatalf("unexpected record %+v", got)
	}
}

func TestShowError(t *testing.T) {
	boom := &apod.FetchError{Kind: apod.KindTransport, Err: errors.New("down")}
	s := &Show{Fetcher: &fetcher{err: boom}, Out: &bytes.Buffer{}}
	if err := s.Do(context.Background()); !errors.Is(err, apod.ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if err := (&Show{}).Do(context.Background()); err == nil {
		t.Fatalf("missing fetcher must fail")
	}
}
