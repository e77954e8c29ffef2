// Package sdl is the SDL2 platform backend. All calls must come from the
// goroutine locked to the main OS thread.
package sdl

import (
	"errors"
	"image/color"
	"unicode/utf8"

	"github.com/veandco/go-sdl2/sdl"

	"sdlblank/internal/platform"
)

type Backend struct{}

func New() *Backend { return &Backend{} }

func (b *Backend) Name() string { return "sdl" }

func (b *Backend) Init() error {
	return sdl.Init(sdl.INIT_VIDEO)
}

func (b *Backend) CreateWindow(cfg platform.WindowConfig) (platform.Window, error) {
	var flags uint32
	if cfg.Flags&platform.WindowResizable != 0 {
		flags |= uint32(sdl.WINDOW_RESIZABLE)
	}
	if cfg.Flags&platform.WindowHidden != 0 {
		flags |= uint32(sdl.WINDOW_HIDDEN)
	}
	w, err := sdl.CreateWindow(cfg.Title,
		int32(sdl.WINDOWPOS_UNDEFINED),
		int32(sdl.WINDOWPOS_UNDEFINED),
		int32(cfg.WidthPx), int32(cfg.HeightPx), flags)
	if err != nil {
		return nil, err
	}
	return &window{w: w}, nil
}

func (b *Backend) CreateRenderer(w platform.Window) (platform.Renderer, error) {
	win, ok := w.(*window)
	if !ok || win == nil || win.w == nil {
		return nil, errors.New("sdl: renderer needs a live sdl window")
	}
	r, err := sdl.CreateRenderer(win.w, -1, 0)
	if err != nil {
		return nil, err
	}
	return &renderer{r: r}, nil
}

func (b *Backend) LastError() string {
	if err := sdl.GetError(); err != nil {
		return err.Error()
	}
	return ""
}

func (b *Backend) PollEvents() []platform.Event {
	var out []platform.Event
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		out = append(out, translate(e))
	}
	return out
}

func (b *Backend) Quit() { sdl.Quit() }

func translate(e sdl.Event) platform.Event {
	switch ev := e.(type) {
	case *sdl.QuitEvent:
		return platform.Event{Type: platform.EventQuit}
	case *sdl.WindowEvent:
		switch ev.Event {
		case sdl.WINDOWEVENT_CLOSE:
			return platform.Event{Type: platform.EventWindowClose}
		case sdl.WINDOWEVENT_SIZE_CHANGED, sdl.WINDOWEVENT_RESIZED:
			return platform.Event{Type: platform.EventResize, Width: int(ev.Data1), Height: int(ev.Data2)}
		}
	case *sdl.KeyboardEvent:
		typ := platform.EventKeyDown
		if ev.Type == sdl.KEYUP {
			typ = platform.EventKeyUp
		}
		return platform.Event{Type: typ, Key: sdl.GetKeyName(ev.Keysym.Sym)}
	case *sdl.TextInputEvent:
		r, _ := utf8.DecodeRuneInString(ev.GetText())
		return platform.Event{Type: platform.EventTextInput, Rune: r}
	case *sdl.MouseMotionEvent:
		return platform.Event{Type: platform.EventMouseMove, X: int(ev.X), Y: int(ev.Y)}
	case *sdl.MouseButtonEvent:
		typ := platform.EventMouseDown
		if ev.Type == sdl.MOUSEBUTTONUP {
			typ = platform.EventMouseUp
		}
		return platform.Event{Type: typ, X: int(ev.X), Y: int(ev.Y)}
	case *sdl.MouseWheelEvent:
		return platform.Event{Type: platform.EventMouseWheel, DeltaX: int(ev.X), DeltaY: int(ev.Y)}
	}
	return platform.Event{Type: platform.EventUnknown}
}

type window struct {
	w *sdl.Window
}

func (w *window) Title() string { return w.w.GetTitle() }

func (w *window) SizePx() (int, int) {
	width, height := w.w.GetSize()
	return int(width), int(height)
}

func (w *window) Destroy() {
	if w.w == nil {
		return
	}
	_ = w.w.Destroy()
	w.w = nil
}

type renderer struct {
	r *sdl.Renderer
}

func (r *renderer) SetDrawColor(c color.RGBA) error {
	return r.r.SetDrawColor(c.R, c.G, c.B, c.A)
}

func (r *renderer) Clear() error { return r.r.Clear() }

func (r *renderer) Present() error {
	r.r.Present()
	return nil
}

func (r *renderer) Destroy() {
	if r.r == nil {
		return
	}
	_ = r.r.Destroy()
	r.r = nil
}
