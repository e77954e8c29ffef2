// Package app is the application lifecycle shell: it opens one window with
// one renderer, clears it every frame, and closes on a quit request.
package app

import (
	"sdlblank/internal/lifecycle"
	"sdlblank/internal/platform"
	"sdlblank/internal/ui"
)

type Config struct {
	Window platform.WindowConfig
	Theme  ui.Theme
}

func DefaultConfig() Config {
	return Config{
		Window: platform.WindowConfig{
			Title:    "SDL Game",
			WidthPx:  640,
			HeightPx: 480,
		},
		Theme: ui.DefaultTheme(),
	}
}

// State owns the display surface and drawing context for one run. Either
// field may be nil when Init failed part way.
type State struct {
	Window   platform.Window
	Renderer platform.Renderer
	Frames   uint64
}

type App struct {
	platform platform.Platform
	cfg      Config
	err      error
}

var _ lifecycle.App[*State] = (*App)(nil)

func New(p platform.Platform, cfg Config) *App {
	return &App{platform: p, cfg: cfg}
}

// Err returns the resource failure that made Init fail, if any.
func (a *App) Err() error { return a.err }

func (a *App) Init(_ []string) (*State, lifecycle.Result) {
	state := &State{}

	if err := a.platform.Init(); err != nil {
		return state, a.fail(platform.ResourceVideo, err)
	}

	window, err := a.platform.CreateWindow(a.cfg.Window)
	if err != nil {
		return state, a.fail(platform.ResourceWindow, err)
	}
	state.Window = window

	renderer, err := a.platform.CreateRenderer(window)
	if err != nil {
		return state, a.fail(platform.ResourceRenderer, err)
	}
	state.Renderer = renderer

	w, h := window.SizePx()
	Logger().Info("window ready",
		"backend", a.platform.Name(),
		"title", window.Title(),
		"width", w,
		"height", h)
	return state, lifecycle.Continue
}

func (a *App) fail(res platform.Resource, cause error) lifecycle.Result {
	rerr := platform.NewResourceError(a.platform, res, cause)
	a.err = rerr
	Logger().Error(string(res)+" creation failed",
		"backend", rerr.Backend,
		"error", rerr.Detail)
	return lifecycle.Failure
}

// Iterate draws one frame. Drawing errors are logged and do not stop the app.
func (a *App) Iterate(state *State) lifecycle.Result {
	if state == nil || state.Renderer == nil {
		return lifecycle.Continue
	}
	if err := ui.DrawFrame(state.Renderer, a.cfg.Theme); err != nil {
		Logger().Warn("frame failed",
			"frame", state.Frames,
			"error", err,
			"platform_error", a.platform.LastError())
	}
	state.Frames++
	return lifecycle.Continue
}

func (a *App) Event(_ *State, ev platform.Event) lifecycle.Result {
	if ev.Type == platform.EventQuit {
		return lifecycle.Success
	}
	return lifecycle.Continue
}

// Quit releases the renderer, then the window, then the platform. It
// tolerates a nil state and any resource that was never created.
func (a *App) Quit(state *State, result lifecycle.Result) {
	if state != nil {
		if state.Renderer != nil {
			state.Renderer.Destroy()
			state.Renderer = nil
			Logger().Debug("renderer destroyed")
		}
		if state.Window != nil {
			state.Window.Destroy()
			state.Window = nil
			Logger().Debug("window destroyed")
		}
	}
	a.platform.Quit()

	attrs := []any{"backend", a.platform.Name(), "result", result.String()}
	if state != nil {
		attrs = append(attrs, "frames", state.Frames)
	}
	if a.err != nil {
		attrs = append(attrs, "error", a.err)
	}
	Logger().Info("shut down", attrs...)
}
