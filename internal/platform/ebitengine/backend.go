// Package ebitengine runs the application on Ebitengine. Ebitengine owns the
// main loop, so this package provides both the platform backend and the host
// that drives the lifecycle callbacks from ebiten.RunGame.
package ebitengine

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"sdlblank/internal/platform"
	"sdlblank/internal/render"
)

type Backend struct {
	videoUp   bool
	lastErr   string
	window    *window
	renderer  *renderer
	events    []platform.Event
	presented *render.FrameBuffer
}

func New() *Backend { return &Backend{} }

func (b *Backend) Name() string { return "ebitengine" }

func (b *Backend) Init() error {
	// Close requests become quit events instead of ending RunGame directly.
	ebiten.SetWindowClosingHandled(true)
	b.videoUp = true
	b.lastErr = ""
	return nil
}

func (b *Backend) CreateWindow(cfg platform.WindowConfig) (platform.Window, error) {
	if !b.videoUp {
		return nil, b.errorf("video subsystem has not been initialized")
	}
	if b.window != nil {
		return nil, b.errorf("only one window is supported")
	}
	if cfg.WidthPx <= 0 || cfg.HeightPx <= 0 {
		return nil, b.errorf("invalid window size")
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.WidthPx, cfg.HeightPx)
	if cfg.Flags&platform.WindowResizable != 0 {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	b.window = &window{backend: b, title: cfg.Title, w: cfg.WidthPx, h: cfg.HeightPx}
	return b.window, nil
}

func (b *Backend) CreateRenderer(w platform.Window) (platform.Renderer, error) {
	win, ok := w.(*window)
	if !ok || win == nil || win != b.window {
		return nil, b.errorf("renderer needs the live window")
	}
	if b.renderer != nil {
		return nil, b.errorf("only one renderer is supported")
	}
	b.renderer = &renderer{backend: b, target: render.NewFrameBuffer(win.w, win.h)}
	return b.renderer, nil
}

func (b *Backend) LastError() string { return b.lastErr }

func (b *Backend) PollEvents() []platform.Event {
	out := b.events
	b.events = nil
	return out
}

func (b *Backend) Quit() {
	b.videoUp = false
	b.presented = nil
}

func (b *Backend) push(ev platform.Event) { b.events = append(b.events, ev) }

func (b *Backend) errorf(msg string) error {
	b.lastErr = msg
	return errors.New(msg)
}

type window struct {
	backend *Backend
	title   string
	w       int
	h       int
}

func (w *window) Title() string      { return w.title }
func (w *window) SizePx() (int, int) { return w.w, w.h }

func (w *window) Destroy() {
	if w.backend.window == w {
		w.backend.window = nil
	}
}

type renderer struct {
	backend *Backend
	target  *render.FrameBuffer
	color   color.RGBA
	gone    bool
}

var errRendererGone = errors.New("renderer destroyed")

func (r *renderer) SetDrawColor(c color.RGBA) error {
	if r.gone {
		return errRendererGone
	}
	r.color = c
	return nil
}

func (r *renderer) Clear() error {
	if r.gone {
		return errRendererGone
	}
	r.target.Clear(r.color)
	return nil
}

// Present hands the frame to the next Draw call.
func (r *renderer) Present() error {
	if r.gone {
		return errRendererGone
	}
	if r.backend.presented == nil {
		r.backend.presented = render.NewFrameBuffer(r.target.W, r.target.H)
	}
	r.backend.presented.CopyFrom(r.target)
	return nil
}

func (r *renderer) Destroy() {
	r.gone = true
	if r.backend.renderer == r {
		r.backend.renderer = nil
	}
}
