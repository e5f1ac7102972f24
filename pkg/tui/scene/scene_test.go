package scene

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func newTestScene(w, h int) *Scene {
	return NewWithRand(rand.New(rand.NewPCG(11, 12)), w, h)
}

func TestGradientStops(t *testing.T) {
	cases := map[float64]string{
		0:   "#6d28d9",
		0.5: "#1e40af",
		1:   "#0c1929",
		1.7: "#0c1929",
	}
	for d, want := range cases {
		if got := gradientAt(d).Hex(); got != want {
			t.Errorf("gradientAt(%v) = %s, want %s", d, got, want)
		}
	}
	mid := gradientAt(0.25)
	a, b := mustHex("#6d28d9"), mustHex("#1e40af")
	if math.Abs(mid.R-(a.R+b.R)/2) > 1e-9 {
		t.Fatalf("expected linear blend between first stops, got %v", mid)
	}
}

func TestTextureCentreIsBrighterThanRim(t *testing.T) {
	tex := NewTexture(rand.New(rand.NewPCG(1, 1)), 64)
	if len(tex.Texels) != 64*64 {
		t.Fatalf("unexpected texel count %d", len(tex.Texels))
	}
	centre := tex.At(0.5, 0.5)
	corner := tex.At(0, 0)
	_, _, lc := centre.Hcl()
	_, _, lr := corner.Hcl()
	if lc <= lr {
		t.Fatalf("centre %s should be lighter than corner %s", centre.Hex(), corner.Hex())
	}
	if tex.At(1.25, 0.5) != tex.At(0.25, 0.5) {
		t.Fatalf("u should wrap")
	}
}

func TestStepRotatesByFixedDeltas(t *testing.T) {
	s := newTestScene(20, 10)
	for i := 0; i < 10; i++ {
		s.Step()
	}
	x, y := s.Rotation()
	if math.Abs(x-10*DeltaX) > 1e-12 || math.Abs(y-10*DeltaY) > 1e-12 {
		t.Fatalf("unexpected rotation %v %v", x, y)
	}
	if s.Frames() != 10 {
		t.Fatalf("expected 10 frames, got %d", s.Frames())
	}
}

func TestUpdateOnlyHandlesOwnFrames(t *testing.T) {
	a := newTestScene(10, 5)
	b := newTestScene(10, 5)

	if cmd := a.Update(FrameMsg{ID: b.ID()}); cmd != nil {
		t.Fatalf("foreign frame should not reschedule")
	}
	if a.Frames() != 0 {
		t.Fatalf("foreign frame advanced the scene")
	}
	if cmd := a.Update(FrameMsg{ID: a.ID()}); cmd == nil {
		t.Fatalf("own frame should schedule the next one")
	}
	if a.Frames() != 1 {
		t.Fatalf("own frame did not advance")
	}
	if a.Update("not a frame") != nil {
		t.Fatalf("unrelated message should be ignored")
	}
}

func TestCloseStopsLoopAndReleases(t *testing.T) {
	s := newTestScene(10, 5)
	if s.Init() == nil {
		t.Fatalf("init should start the loop")
	}
	s.Close()
	if !s.Closed() {
		t.Fatalf("expected closed")
	}
	if cmd := s.Update(FrameMsg{ID: s.ID()}); cmd != nil {
		t.Fatalf("closed scene rescheduled a frame")
	}
	if s.Frames() != 0 {
		t.Fatalf("closed scene advanced")
	}
	if s.Init() != nil {
		t.Fatalf("closed scene restarted")
	}
	if s.texture != nil || s.pixels != nil || s.hit != nil || s.View() != "" {
		t.Fatalf("resources not released")
	}
	s.SetSize(30, 10)
	s.Step()
}

func TestSetSizeRecomputesAspect(t *testing.T) {
	s := newTestScene(40, 20)
	if got := s.Camera().Aspect; got != 1 {
		t.Fatalf("expected aspect 1, got %v", got)
	}
	s.SetSize(80, 20)
	if got := s.Camera().Aspect; got != 2 {
		t.Fatalf("expected aspect 2, got %v", got)
	}
	lines := strings.Split(ansi.Strip(s.View()), "\n")
	if len(lines) != 20 {
		t.Fatalf("expected 20 rows, got %d", len(lines))
	}
	if w := ansi.StringWidth(lines[0]); w != 80 {
		t.Fatalf("expected 80 columns, got %d", w)
	}
}

func TestRenderDrawsSphereInCentre(t *testing.T) {
	s := newTestScene(40, 20)
	lines := strings.Split(ansi.Strip(s.View()), "\n")
	centre := []rune(lines[10])[20]
	if centre != '▀' {
		t.Fatalf("expected sphere at centre, got %q", centre)
	}
	if corner := []rune(lines[0])[0]; corner != ' ' {
		t.Fatalf("expected empty corner, got %q", corner)
	}
}

func TestUnrotateIdentity(t *testing.T) {
	p := vec3{0.3, -0.2, 0.9}
	if got := unrotate(p, 0, 0); got != p {
		t.Fatalf("zero rotation changed point: %v", got)
	}
	q := unrotate(vec3{1, 0, 0}, 0, math.Pi/2)
	if math.Abs(q.z-1) > 1e-9 || math.Abs(q.x) > 1e-9 {
		t.Fatalf("unexpected inverse y rotation: %v", q)
	}
}
