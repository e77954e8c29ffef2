package lifecycle

import (
	"context"
	"time"

	"sdlblank/internal/platform"
)

type EventSource interface {
	PollEvents() []platform.Event
}

type Options struct {
	// FrameInterval is the minimum time between Iterate calls. Zero runs
	// frames back to back and leaves pacing to the platform, e.g. vsync.
	FrameInterval time.Duration
}

// Stepper runs one host tick at a time against a Driver. Hosts that own their
// loop call Run; hosts embedded in another loop (ebiten) call Step per tick.
type Stepper[S any] struct {
	ctx      context.Context
	driver   *Driver[S]
	quitSent bool
}

func NewStepper[S any](ctx context.Context, d *Driver[S]) *Stepper[S] {
	return &Stepper[S]{ctx: ctx, driver: d}
}

// Step delivers batch in order, then calls Iterate once. Once ctx ends, a
// single quit event is appended to the batch. Step reports whether the host
// should stop: a callback returned something other than Continue, or the
// app kept running after the interrupt.
func (s *Stepper[S]) Step(batch []platform.Event) bool {
	if !s.quitSent && s.ctx.Err() != nil {
		batch = append(batch, platform.Event{Type: platform.EventQuit})
		s.quitSent = true
	}
	for _, ev := range batch {
		if r, _ := s.driver.Event(ev); r != Continue {
			return true
		}
	}
	if r, _ := s.driver.Iterate(); r != Continue {
		return true
	}
	// The app ignored the interrupt; nothing else will stop the loop.
	return s.quitSent
}

// Run hosts app on the calling goroutine until a callback ends it, then calls
// Quit and returns the terminating result. Cancelling ctx delivers a single
// quit event to the app, so the app still decides how to finish.
func Run[S any](ctx context.Context, app App[S], args []string, events EventSource, opts Options) Result {
	d := NewDriver(app)
	defer d.Quit()

	if r, _ := d.Init(args); r != Continue {
		return r
	}

	var tick <-chan time.Time
	if opts.FrameInterval > 0 {
		ticker := time.NewTicker(opts.FrameInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	s := NewStepper(ctx, d)
	for {
		if s.Step(events.PollEvents()) {
			return d.Result()
		}
		if tick != nil {
			select {
			case <-tick:
			case <-ctx.Done():
			}
		}
	}
}
