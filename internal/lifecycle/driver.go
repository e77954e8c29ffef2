package lifecycle

import (
	"errors"
	"fmt"

	"sdlblank/internal/platform"
)

var ErrInvalidPhase = errors.New("callback not allowed in current phase")

type Phase int

const (
	Uninitialized Phase = iota
	Running
	Terminated
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Driver sits between a host and an App and keeps the callback sequence
// legal: Init once, Iterate and Event only while Running, Quit exactly once.
// It is not safe for concurrent use; hosts drive it from a single goroutine.
type Driver[S any] struct {
	app    App[S]
	state  S
	phase  Phase
	result Result
	quit   bool
}

func NewDriver[S any](app App[S]) *Driver[S] {
	return &Driver[S]{app: app, phase: Uninitialized, result: Continue}
}

func (d *Driver[S]) Phase() Phase { return d.phase }

// Result is the result that terminated the app, or Continue while it runs.
func (d *Driver[S]) Result() Result { return d.result }

func (d *Driver[S]) State() S { return d.state }

func (d *Driver[S]) Init(args []string) (Result, error) {
	if d.phase != Uninitialized || d.quit {
		return Failure, fmt.Errorf("init while %s: %w", d.phase, ErrInvalidPhase)
	}
	state, r := d.app.Init(args)
	d.state = state
	d.settle(r)
	return r, nil
}

func (d *Driver[S]) Iterate() (Result, error) {
	if d.phase != Running {
		return d.result, fmt.Errorf("iterate while %s: %w", d.phase, ErrInvalidPhase)
	}
	r := d.app.Iterate(d.state)
	d.settle(r)
	return r, nil
}

func (d *Driver[S]) Event(ev platform.Event) (Result, error) {
	if d.phase != Running {
		return d.result, fmt.Errorf("event %s while %s: %w", ev.Type, d.phase, ErrInvalidPhase)
	}
	r := d.app.Event(d.state, ev)
	d.settle(r)
	return r, nil
}

// Quit hands the terminating result to the app. It may be called from any
// phase, including Uninitialized, but only once.
func (d *Driver[S]) Quit() error {
	if d.quit {
		return fmt.Errorf("quit called twice: %w", ErrInvalidPhase)
	}
	d.quit = true
	d.phase = Terminated
	d.app.Quit(d.state, d.result)
	return nil
}

// Abort ends the run on the host's behalf, for instance when the host's own
// loop fails. The app is not called; the next Quit receives r. Continue is
// treated as Failure, and Abort after Quit does nothing.
func (d *Driver[S]) Abort(r Result) {
	if d.quit {
		return
	}
	if r == Continue {
		r = Failure
	}
	d.phase = Terminated
	d.result = r
}

func (d *Driver[S]) settle(r Result) {
	if r == Continue {
		d.phase = Running
		return
	}
	d.phase = Terminated
	d.result = r
}
