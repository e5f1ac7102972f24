package stars

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func TestGenerateRanges(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, s := range Generate(r, 500) {
		if s.X < 0 || s.X >= 1 || s.Y < 0 || s.Y >= 1 {
			t.Fatalf("position out of range: %+v", s)
		}
		if s.Size < 0.5 || s.Size > 2.5 {
			t.Fatalf("size out of range: %+v", s)
		}
		if s.Duration < 10 || s.Duration > 20 {
			t.Fatalf("duration out of range: %+v", s)
		}
		if s.Delay < 0 || s.Delay > 5 {
			t.Fatalf("delay out of range: %+v", s)
		}
		if s.Opacity < 0.3 || s.Opacity > 0.8 {
			t.Fatalf("opacity out of range: %+v", s)
		}
	}
}

func TestBrightness(t *testing.T) {
	s := Star{Duration: 10, Delay: 2, Opacity: 0.8}
	if b := s.Brightness(time.Second); b != 0 {
		t.Fatalf("star visible before delay: %v", b)
	}
	peak := s.Brightness(7 * time.Second)
	if peak < 0.79 || peak > 0.8 {
		t.Fatalf("expected peak near opacity, got %v", peak)
	}
	for _, d := range []time.Duration{3 * time.Second, 9 * time.Second, 40 * time.Second} {
		if b := s.Brightness(d); b < 0 || b > s.Opacity {
			t.Fatalf("brightness %v out of range at %v", b, d)
		}
	}
}

func TestRenderDimensions(t *testing.T) {
	f := NewField(rand.New(rand.NewPCG(3, 4)))
	out := ansi.Strip(f.Render(40, 10, 12*time.Second))
	lines := strings.Split(out, "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(lines))
	}
	for _, l := range lines {
		if w := ansi.StringWidth(l); w != 40 {
			t.Fatalf("row width %d, want 40: %q", w, l)
		}
	}
	if f.Render(0, 5, 0) != "" {
		t.Fatalf("zero width should render nothing")
	}
}

func TestStarsAreStableAcrossFrames(t *testing.T) {
	f := NewField(rand.New(rand.NewPCG(5, 6)))
	before := append([]Star(nil), f.Stars()...)
	f.Render(20, 5, time.Second)
	f.Render(30, 8, 9*time.Second)
	for i, s := range f.Stars() {
		if s != before[i] {
			t.Fatalf("star %d changed between frames", i)
		}
	}
	f.Close()
	if len(f.Stars()) != 0 {
		t.Fatalf("close should drop stars")
	}
}
