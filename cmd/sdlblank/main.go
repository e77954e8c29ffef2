package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sqweek/dialog"

	"sdlblank/internal/app"
	"sdlblank/internal/lifecycle"
)

func main() {
	app.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	result, err := run(ctx, os.Args)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "sdlblank failed: %v\n", err)
		if interactive {
			dialog.Message("%v", err).Title(app.DefaultConfig().Window.Title).Error()
		}
		os.Exit(1)
	}
	os.Exit(lifecycle.ExitCode(result))
}
