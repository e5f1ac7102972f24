package options

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func fixedNow() time.Time { return time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC) }

func TestGetDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "", want: ""},
		{in: "2021-12-25", want: "2021-12-25"},
		{in: "3/1", want: "2024-03-01"},
		{in: "12/25", want: "2023-12-25"},
		{in: "1999-12-31", wantErr: true},
		{in: "2024-03-11", wantErr: true},
		{in: "yesterday", wantErr: true},
	}
	for _, tc := range tests {
		o := &DateOptions{DateString: tc.in, Now: fixedNow}
		got, err := o.GetDate()
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tc.in, err)
		}
		if tc.want == "" {
			if got != nil {
				t.Fatalf("%q: expected latest (nil), got %v", tc.in, got)
			}
			continue
		}
		if got == nil || got.Format("2006-01-02") != tc.want {
			t.Fatalf("%q: expected %s, got %v", tc.in, tc.want, got)
		}
	}
}

func TestHandleError(t *testing.T) {
	var buf bytes.Buffer
	o := &OutputOptions{JSON: true, Out: &buf}
	if err := o.HandleError(errors.New("boom")); err != nil {
		t.Fatalf("json mode swallows errors, got %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != `{"error":"boom"}` {
		t.Fatalf("unexpected output %q", got)
	}

	plain := &OutputOptions{Out: &buf}
	if err := plain.HandleError(errors.New("boom")); err == nil {
		t.Fatalf("plain mode returns errors")
	}
	if err := o.HandleError(nil); err != nil {
		t.Fatalf("nil stays nil")
	}
}

func TestValidate(t *testing.T) {
	if err := (&GalleryOptions{Window: "0"}).Validate(); err == nil {
		t.Fatalf("zero days is invalid")
	}
	for _, w := range []string{"100000000", "9w", "2635249153387078804w"} {
		if err := (&GalleryOptions{Window: w}).Validate(); err == nil {
			t.Fatalf("%s: oversized windows are invalid", w)
		}
	}
	if err := (&GalleryOptions{Window: "60"}).Validate(); err != nil {
		t.Fatalf("the largest window is valid: %v", err)
	}
	g := &GalleryOptions{Window: "2w"}
	if err := g.Validate(); err != nil || g.Days != 14 {
		t.Fatalf("expected 14 days, got %d (%v)", g.Days, err)
	}
	if err := (&RouteOptions{Route: "/gallery"}).Validate(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := (&RouteOptions{Route: "/nope"}).Validate(); err == nil {
		t.Fatalf("unknown route is invalid")
	}
}

func TestMCPValidate(t *testing.T) {
	o := &MCPOptions{Transport: " HTTP ", Host: "", Port: 0, Path: "tools"}
	if err := o.Validate(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if o.Transport != "http" || o.Path != "/tools" || o.Addr() != "127.0.0.1:0" {
		t.Fatalf("unexpected normalization %+v %s", o, o.Addr())
	}
	if err := (&MCPOptions{Transport: "smoke"}).Validate(); err == nil {
		t.Fatalf("unknown transport is invalid")
	}
	if err := (&MCPOptions{Transport: "http", Port: 70000}).Validate(); err == nil {
		t.Fatalf("out of range port is invalid")
	}
}

func TestDateCheck(t *testing.T) {
	o := &DateOptions{Now: func() time.Time { return time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC) }}
	if err := o.Check("2021-12-25"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := o.Check("2024-03-11"); err == nil {
		t.Fatalf("future days are rejected")
	}
	if o.DateString != "" {
		t.Fatalf("Check must not change the options")
	}
}
