// Package headless is an in-memory platform. It renders into a software frame
// buffer and records every call made against it, which makes it the backend
// of choice for tests and display-less smoke runs.
package headless

import (
	"errors"
	"fmt"
	"image/color"

	"sdlblank/internal/platform"
	"sdlblank/internal/render"
)

var ErrDestroyed = errors.New("resource already destroyed")

// Options selects which resources the backend refuses to create.
type Options struct {
	NoVideo       bool
	WindowFails   bool
	RendererFails bool
}

type Backend struct {
	opts Options

	calls     []string
	events    []platform.Event
	lastErr   string
	videoUp   bool
	windows   int
	renderers int
	presented *render.FrameBuffer
	presents  int
}

func New(opts Options) *Backend { return &Backend{opts: opts} }

func (b *Backend) Name() string { return "headless" }

func (b *Backend) Init() error {
	b.record("init")
	if b.opts.NoVideo {
		b.lastErr = "no video device available"
		return errors.New(b.lastErr)
	}
	b.videoUp = true
	return nil
}

func (b *Backend) CreateWindow(cfg platform.WindowConfig) (platform.Window, error) {
	b.record("create_window")
	if !b.videoUp {
		b.lastErr = "video subsystem has not been initialized"
		return nil, errors.New(b.lastErr)
	}
	if b.opts.WindowFails {
		b.lastErr = "could not create window"
		return nil, errors.New(b.lastErr)
	}
	b.windows++
	return &window{
		backend: b,
		title:   cfg.Title,
		w:       cfg.WidthPx,
		h:       cfg.HeightPx,
	}, nil
}

func (b *Backend) CreateRenderer(w platform.Window) (platform.Renderer, error) {
	b.record("create_renderer")
	win, ok := w.(*window)
	if !ok || win == nil || win.destroyed {
		b.lastErr = "invalid window"
		return nil, errors.New(b.lastErr)
	}
	if b.opts.RendererFails {
		b.lastErr = "no matching render driver"
		return nil, errors.New(b.lastErr)
	}
	b.renderers++
	return &renderer{
		backend: b,
		window:  win,
		target:  render.NewFrameBuffer(win.w, win.h),
	}, nil
}

func (b *Backend) LastError() string { return b.lastErr }

// Push queues events for the next PollEvents call.
func (b *Backend) Push(events ...platform.Event) {
	b.events = append(b.events, events...)
}

func (b *Backend) PollEvents() []platform.Event {
	out := b.events
	b.events = nil
	return out
}

func (b *Backend) Quit() {
	b.record("quit")
	b.videoUp = false
}

// Calls returns the platform calls made so far, in order.
func (b *Backend) Calls() []string {
	return append([]string(nil), b.calls...)
}

func (b *Backend) ResetCalls() { b.calls = b.calls[:0] }

// Live reports how many windows and renderers are currently alive.
func (b *Backend) Live() (windows, renderers int) { return b.windows, b.renderers }

func (b *Backend) Presents() int { return b.presents }

// Presented returns the most recently presented frame, or nil before the
// first present.
func (b *Backend) Presented() *render.FrameBuffer { return b.presented }

func (b *Backend) record(call string) { b.calls = append(b.calls, call) }

type window struct {
	backend   *Backend
	title     string
	w         int
	h         int
	destroyed bool
}

func (w *window) Title() string      { return w.title }
func (w *window) SizePx() (int, int) { return w.w, w.h }

func (w *window) Destroy() {
	w.backend.record("destroy_window")
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.backend.windows--
}

type renderer struct {
	backend   *Backend
	window    *window
	target    *render.FrameBuffer
	color     color.RGBA
	destroyed bool
}

func (r *renderer) usable() error {
	if r.destroyed || r.window.destroyed {
		r.backend.lastErr = ErrDestroyed.Error()
		return ErrDestroyed
	}
	return nil
}

func (r *renderer) SetDrawColor(c color.RGBA) error {
	r.backend.record(fmt.Sprintf("set_draw_color %d %d %d %d", c.R, c.G, c.B, c.A))
	if err := r.usable(); err != nil {
		return err
	}
	r.color = c
	return nil
}

func (r *renderer) Clear() error {
	r.backend.record("clear")
	if err := r.usable(); err != nil {
		return err
	}
	r.target.Clear(r.color)
	return nil
}

func (r *renderer) Present() error {
	r.backend.record("present")
	if err := r.usable(); err != nil {
		return err
	}
	if r.backend.presented == nil {
		r.backend.presented = render.NewFrameBuffer(r.target.W, r.target.H)
	}
	r.backend.presented.CopyFrom(r.target)
	r.backend.presents++
	return nil
}

func (r *renderer) Destroy() {
	r.backend.record("destroy_renderer")
	if r.destroyed {
		return
	}
	r.destroyed = true
	r.backend.renderers--
}
