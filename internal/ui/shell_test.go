package ui

import (
	"errors"
	"image/color"
	"reflect"
	"strings"
	"testing"
)

type fakeRenderer struct {
	calls    []string
	clearErr error
}

func (f *fakeRenderer) SetDrawColor(c color.RGBA) error {
	f.calls = append(f.calls, "color")
	return nil
}

func (f *fakeRenderer) Clear() error {
	f.calls = append(f.calls, "clear")
	return f.clearErr
}

func (f *fakeRenderer) Present() error {
	f.calls = append(f.calls, "present")
	return nil
}

func (f *fakeRenderer) Destroy() {}

func TestDefaultThemeIsOpaqueBlack(t *testing.T) {
	if got := DefaultTheme().Background; got != (color.RGBA{0, 0, 0, 255}) {
		t.Fatalf("unexpected background: %v", got)
	}
}

func TestDrawFrameOrder(t *testing.T) {
	r := &fakeRenderer{}
	if err := DrawFrame(r, DefaultTheme()); err != nil {
		t.Fatal(err)
	}
	if want := []string{"color", "clear", "present"}; !reflect.DeepEqual(r.calls, want) {
		t.Fatalf("unexpected calls %v", r.calls)
	}
}

func TestDrawFrameReportsErrorButPresents(t *testing.T) {
	boom := errors.New("device lost")
	r := &fakeRenderer{clearErr: boom}
	err := DrawFrame(r, DefaultTheme())
	if !errors.Is(err, boom) || !strings.HasPrefix(err.Error(), "clear:") {
		t.Fatalf("unexpected error %v", err)
	}
	if len(r.calls) != 3 {
		t.Fatalf("present should still run, calls %v", r.calls)
	}
}
