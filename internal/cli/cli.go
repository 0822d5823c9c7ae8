// Package cli is the padscope command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/soar/padscope/internal/app"
	"github.com/soar/padscope/internal/config"
	"github.com/soar/padscope/internal/gamepad"
	"github.com/soar/padscope/internal/hub"
	"github.com/soar/padscope/internal/logging"
	"github.com/soar/padscope/internal/server"
	"github.com/soar/padscope/internal/tray"
)

const frameBuffer = 8

// Platform is an app.Platform that owns native resources.
type Platform interface {
	app.Platform
	Close()
}

// OpenFunc creates the platform. It must be called on the thread that
// will run the loop.
type OpenFunc func(cfg config.Config, log *zap.Logger) (Platform, error)

func Main(ctx context.Context, open OpenFunc, args []string, out, errOut io.Writer) error {
	cmd := NewRootCmd(open)
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return cmd.ExecuteContext(ctx)
}

func NewRootCmd(open OpenFunc) *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "padscope",
		Short: "Game controller test",
		Long: `padscope draws the state of every attached game controller over a
controller diagram: buttons, sticks, triggers, touchpads and motion sensors.
Moving the sticks and triggers drives the active controller's LED and rumble.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return app.Fail(app.StageConfig, err)
			}
			file, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(v, file)
			if err != nil {
				return app.Fail(app.StageConfig, err)
			}
			log, err := logging.New(cfg.Log.Level)
			if err != nil {
				return app.Fail(app.StageConfig, err)
			}
			defer log.Sync() //nolint:errcheck

			err = Run(cmd.Context(), cfg, open, log)
			if err != nil {
				log.Error("padscope failed", zap.Error(err))
			}
			return err
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

// Run opens the platform and ticks the application on the calling
// goroutine. The broadcaster, the HTTP server and the tray run beside it
// and are stopped when the loop ends.
func Run(ctx context.Context, cfg config.Config, open OpenFunc, log *zap.Logger) error {
	platform, err := open(cfg, log.Named("sdl"))
	if err != nil {
		return err
	}
	defer platform.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	opts := app.Options{
		FrameDelay: cfg.Loop.FrameDelay,
		Haptics:    cfg.Haptics.Enabled,
	}
	if cfg.Server.Enabled {
		opts.FrameBuffer = frameBuffer
	}
	a := app.New(platform, log, opts)

	if cfg.Server.Enabled {
		h := hub.NewHub(log.Named("hub"))
		b := hub.NewBroadcaster(h, a.Frames(), log.Named("hub"))
		srv, err := server.New(h, b, a.Inbox(), cfg.Server.Addr, log.Named("server"))
		if err != nil {
			return app.Fail(app.StageServer, err)
		}
		g.Go(func() error {
			return b.Run(gctx)
		})
		g.Go(func() error {
			if err := srv.Run(gctx); err != nil {
				return app.Fail(app.StageServer, fmt.Errorf("http server: %w", err))
			}
			return nil
		})
	}

	var t *tray.Tray
	if cfg.Tray.Enabled {
		t = tray.New(viewURL(cfg), func() {
			a.Inbox().Post(gamepad.Event{Kind: gamepad.EventQuit})
		}, log.Named("tray"))
		g.Go(func() error {
			t.Run(tray.Icon())
			return nil
		})
	}

	runErr := a.Run(gctx)
	cancel()
	if t != nil {
		t.Quit()
	}
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return runErr
}

// viewURL is the remote view address opened from the tray, or "" when the
// server is off.
func viewURL(cfg config.Config) string {
	if !cfg.Server.Enabled {
		return ""
	}
	host, port, err := net.SplitHostPort(cfg.Server.Addr)
	if err != nil {
		return ""
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port) + "/"
}
