//go:build headless && !sdl

package main

import (
	"context"
	"time"

	"sdlblank/internal/app"
	"sdlblank/internal/lifecycle"
	"sdlblank/internal/platform/headless"
)

const interactive = false

func run(ctx context.Context, args []string) (lifecycle.Result, error) {
	backend := headless.New(headless.Options{})
	shell := app.New(backend, app.DefaultConfig())
	result := lifecycle.Run[*app.State](ctx, shell, args, backend, lifecycle.Options{
		FrameInterval: time.Second / 60,
	})
	return result, shell.Err()
}
