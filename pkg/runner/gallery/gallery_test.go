package gallery

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/cosmic/pkg/apod"
)

type source struct {
	pics []apod.Picture
	ref  time.Time
	n    int
}

func (s *source) Gallery(_ context.Context, ref time.Time, n int) ([]apod.Picture, error) {
	s.ref, s.n = ref, n
	return s.pics, nil
}

func init() {
	color.NoColor = true
}

var now = time.Date(2024, 6, 12, 8, 0, 0, 0, time.UTC)

func TestGalleryTable(t *testing.T) {
	src := &source{pics: []apod.Picture{
		{Title: "Comet", Date: "2024-06-12", URL: "https://apod.example/c.jpg", MediaType: apod.MediaImage},
		{Title: "Aurora", Date: "2024-06-10", URL: "https://apod.example/a.jpg", HDURL: "https://apod.example/a_hd.jpg", MediaType: apod.MediaImage},
	}}
	var buf bytes.Buffer
	g := &Gallery{Source: src, Days: 5, Now: func() time.Time { return now }, Out: &buf}
	if err := g.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.n != 5 || !src.ref.Equal(now) {
		t.Fatalf("unexpected request ref=%s n=%d", src.ref, src.n)
	}
	out := buf.String()
	for _, want := range []string{"last 5 days", "DATE", "Comet", "Aurora", "a_hd.jpg"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Comet") > strings.Index(out, "Aurora") {
		t.Fatalf("records must keep most recent first:\n%s", out)
	}
}

func TestGalleryEmptyJSON(t *testing.T) {
	var buf bytes.Buffer
	g := &Gallery{Source: &source{}, JSON: true, Out: &buf}
	if err := g.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Fatalf("expected an empty array, got %q", got)
	}
}

func TestGalleryDefaultsDays(t *testing.T) {
	src := &source{}
	g := &Gallery{Source: src, Out: &bytes.Buffer{}}
	if err := g.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.n != apod.GalleryDays {
		t.Fatalf("expected %d days, got %d", apod.GalleryDays, src.n)
	}
}

func TestGalleryPickPrintsOnePicture(t *testing.T) {
	src := &source{pics: []apod.Picture{
		{Title: "Comet", Date: "2024-06-12", URL: "https://apod.example/c.jpg", MediaType: apod.MediaImage},
		{Title: "Aurora", Date: "2024-06-10", URL: "https://apod.example/a.jpg", MediaType: apod.MediaImage},
	}}
	var buf bytes.Buffer
	var offered int
	g := &Gallery{Source: src, Out: &buf, Pick: func(p []apod.Picture) (int, error) {
		offered = len(p)
		return 1, nil
	}}
	if err := g.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if offered != 2 || !strings.Contains(out, "Aurora") || strings.Contains(out, "Comet") {
		t.Fatalf("expected only the picked picture:\n%s", out)
	}
}
