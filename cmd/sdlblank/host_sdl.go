//go:build sdl

package main

import (
	"context"
	"runtime"
	"time"

	"sdlblank/internal/app"
	"sdlblank/internal/lifecycle"
	"sdlblank/internal/platform/sdl"
)

const interactive = true

func init() {
	runtime.LockOSThread()
}

func run(ctx context.Context, args []string) (lifecycle.Result, error) {
	backend := sdl.New()
	shell := app.New(backend, app.DefaultConfig())
	result := lifecycle.Run[*app.State](ctx, shell, args, backend, lifecycle.Options{
		FrameInterval: time.Second / 60,
	})
	return result, shell.Err()
}
