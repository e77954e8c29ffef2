package platform

import (
	"errors"
	"fmt"
	"testing"
)

type stubPlatform struct {
	Platform
	last string
}

func (s stubPlatform) Name() string      { return "stub" }
func (s stubPlatform) LastError() string { return s.last }

func TestResourceErrorMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("init: %w", &ResourceError{Backend: "stub", Resource: ResourceWindow, Detail: "no display"})
	if !errors.Is(err, ErrPlatformResource) {
		t.Fatalf("expected %v to match ErrPlatformResource", err)
	}
	var re *ResourceError
	if !errors.As(err, &re) || re.Resource != ResourceWindow {
		t.Fatalf("unexpected resource error: %#v", re)
	}
}

func TestNewResourceErrorPrefersPlatformDetail(t *testing.T) {
	err := NewResourceError(stubPlatform{last: "no video device"}, ResourceVideo, errors.New("ignored"))
	if err.Detail != "no video device" {
		t.Fatalf("unexpected detail: %q", err.Detail)
	}
	if got, want := err.Error(), "stub: video subsystem creation failed: no video device"; got != want {
		t.Fatalf("unexpected message: got %q want %q", got, want)
	}

	err = NewResourceError(stubPlatform{}, ResourceRenderer, errors.New("driver missing"))
	if err.Detail != "driver missing" {
		t.Fatalf("expected cause fallback, got %q", err.Detail)
	}
}

func TestEventTypeString(t *testing.T) {
	cases := map[EventType]string{
		EventQuit:        "quit",
		EventKeyDown:     "key-down",
		EventMouseWheel:  "mouse-wheel",
		EventType(-1):    "unknown",
		EventType(10000): "unknown",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Fatalf("EventType(%d).String() = %q, want %q", int(typ), got, want)
		}
	}
}
