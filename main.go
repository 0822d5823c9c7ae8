package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"go.uber.org/zap"

	"github.com/soar/padscope/internal/app"
	"github.com/soar/padscope/internal/cli"
	"github.com/soar/padscope/internal/config"
	"github.com/soar/padscope/internal/sdlhost"
)

// SDL windows and events belong to the main thread.
func init() {
	runtime.LockOSThread()
}

func openSDL(cfg config.Config, log *zap.Logger) (cli.Platform, error) {
	return sdlhost.Open(sdlhost.Options{
		Title:     cfg.Window.Title,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		AssetsDir: cfg.Assets.Dir,
	}, log)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.Main(ctx, openSDL, os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	stop()
	os.Exit(app.ExitCode(err))
}
