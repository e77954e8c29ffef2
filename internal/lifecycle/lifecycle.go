// Package lifecycle defines the four-callback contract between an application
// and the host that owns the main loop, together with a driver that enforces
// the callback ordering and a portable host loop.
//
// A host calls Init once, then Iterate repeatedly, interleaved with Event
// whenever input arrives, until one of them returns something other than
// Continue. It then calls Quit exactly once with the terminating result.
package lifecycle

import "sdlblank/internal/platform"

type Result int

const (
	Continue Result = iota
	Success
	Failure
)

func (r Result) String() string {
	switch r {
	case Continue:
		return "continue"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// ExitCode maps the result that ended the app to a process exit status.
func ExitCode(r Result) int {
	if r == Failure {
		return 1
	}
	return 0
}

// App is implemented by the application and invoked by a host. S is the
// application state produced by Init and handed back on every later call.
//
// Init returns the state even on Failure so that Quit can release whatever
// was created before the failure.
type App[S any] interface {
	Init(args []string) (S, Result)
	Iterate(state S) Result
	Event(state S, ev platform.Event) Result
	Quit(state S, result Result)
}
