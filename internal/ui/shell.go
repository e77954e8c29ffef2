package ui

import (
	"fmt"

	"sdlblank/internal/platform"
)

// DrawFrame renders one frame: a full clear to the theme background followed
// by a present. The sequence always runs to completion; the first error seen
// is returned.
func DrawFrame(r platform.Renderer, theme Theme) error {
	var first error
	keep := func(step string, err error) {
		if err != nil && first == nil {
			first = fmt.Errorf("%s: %w", step, err)
		}
	}
	keep("set draw color", r.SetDrawColor(theme.Background))
	keep("clear", r.Clear())
	keep("present", r.Present())
	return first
}
