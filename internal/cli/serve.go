// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/db47h/logicboard/level"
	"github.com/db47h/logicboard/observe"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		addr string
		rate int
		dt   float64
	)
	cmd := &cobra.Command{
		Use:   "serve <level.yaml>...",
		Short: "Simulate levels and stream snapshots over a websocket",
		Long: `Simulate levels in real time, one after the other, and stream a snapshot
of the board after each update to websocket clients connected to /ws.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rate <= 0 {
				return errors.Errorf("invalid rate %d", rate)
			}
			log := rootOpts.logger(cmd.ErrOrStderr())
			g, err := rootOpts.loadGame(args, log)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return serve(ctx, addr, g, time.Second/time.Duration(rate), dt, log)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "listen address")
	cmd.Flags().IntVar(&rate, "rate", 20, "updates per second")
	cmd.Flags().Float64Var(&dt, "dt", 0.05, "simulated seconds per update")
	return cmd
}

func serve(ctx context.Context, addr string, g *level.Game, interval time.Duration, dt float64, log *slog.Logger) error {
	hub := observe.NewHub(log)
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	srv := &http.Server{Addr: addr, Handler: mux}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	var lerr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		log.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			lerr = errors.Wrap(err, "listen")
			cancel()
		}
	}()

	err := drive(ctx, g, hub, interval, dt)
	hub.Close()
	shutdown, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if serr := srv.Shutdown(shutdown); serr != nil && err == nil {
		err = serr
	}
	<-done
	if lerr != nil {
		return lerr
	}
	return err
}

// drive plays the levels of g, updating the current board at every interval
// and publishing a snapshot after each update. It returns when ctx is done or
// when the last level is over.
func drive(ctx context.Context, g *level.Game, hub *observe.Hub, interval time.Duration, dt float64) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		ok, err := g.Next()
		if err != nil || !ok {
			return err
		}
		for !g.Ended() {
			select {
			case <-ctx.Done():
				return nil
			case <-t.C:
			}
			if err = g.Update(dt); err != nil {
				return err
			}
			s, err := observe.Capture(g.Board())
			if err != nil {
				return err
			}
			if err = hub.Publish(s); err != nil {
				return err
			}
		}
	}
}
