package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewWritesJSONAboveLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo)
	log.Debug("hidden")
	log.Info("gallery loaded", "count", 10)

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record leaked: %s", out)
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("expected a single json line, got %q: %v", out, err)
	}
	if rec["message"] != "gallery loaded" {
		t.Fatalf("unexpected message: %v", rec)
	}
	if rec["count"] != float64(10) {
		t.Fatalf("missing attribute: %v", rec)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cosmic.log")
	log, closer, err := OpenFile(path, slog.LevelDebug)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	log.Debug("frame", "n", 1)
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"frame"`) {
		t.Fatalf("log file missing record: %s", b)
	}
}

func TestOpenFileEmptyPathDiscards(t *testing.T) {
	log, closer, err := OpenFile("", slog.LevelDebug)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	log.Info("nothing")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
