package platform

import "image/color"

type WindowFlags uint32

const (
	WindowResizable WindowFlags = 1 << iota
	WindowHidden
)

type WindowConfig struct {
	Title    string
	WidthPx  int
	HeightPx int
	Flags    WindowFlags
}

type EventType int

const (
	EventUnknown EventType = iota
	EventQuit
	EventWindowClose
	EventResize
	EventKeyDown
	EventKeyUp
	EventTextInput
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

var eventNames = [...]string{
	EventUnknown:     "unknown",
	EventQuit:        "quit",
	EventWindowClose: "window-close",
	EventResize:      "resize",
	EventKeyDown:     "key-down",
	EventKeyUp:       "key-up",
	EventTextInput:   "text-input",
	EventMouseMove:   "mouse-move",
	EventMouseDown:   "mouse-down",
	EventMouseUp:     "mouse-up",
	EventMouseWheel:  "mouse-wheel",
}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[t]
}

type Event struct {
	Type   EventType
	Width  int
	Height int
	Rune   rune
	DeltaX int
	DeltaY int
	X      int
	Y      int
	Key    string
}

// Platform is the collaborator library the application shell consumes. A
// backend owns at most one window and one renderer at a time.
type Platform interface {
	Name() string
	// Init brings up the video subsystem.
	Init() error
	CreateWindow(cfg WindowConfig) (Window, error)
	CreateRenderer(w Window) (Renderer, error)
	// LastError returns the most recent diagnostic reported by the backend,
	// or "" when there is none.
	LastError() string
	PollEvents() []Event
	// Quit shuts the platform down. It is safe to call when Init failed or
	// never ran.
	Quit()
}

type Window interface {
	Title() string
	SizePx() (int, int)
	Destroy()
}

type Renderer interface {
	SetDrawColor(c color.RGBA) error
	Clear() error
	Present() error
	Destroy()
}
