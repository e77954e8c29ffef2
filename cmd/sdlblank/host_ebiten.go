//go:build !sdl && !headless

package main

import (
	"context"

	"sdlblank/internal/app"
	"sdlblank/internal/lifecycle"
	"sdlblank/internal/platform/ebitengine"
)

const interactive = true

func run(ctx context.Context, args []string) (lifecycle.Result, error) {
	backend := ebitengine.New()
	shell := app.New(backend, app.DefaultConfig())
	result, err := ebitengine.Run[*app.State](ctx, backend, shell, args)
	if err == nil {
		err = shell.Err()
	}
	return result, err
}
