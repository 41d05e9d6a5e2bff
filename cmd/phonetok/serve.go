package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/go-phonetok/internal/server"
	"github.com/example/go-phonetok/internal/tts"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the phonetok HTTP server",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			svc, err := tts.NewService(cfg)
			if err != nil {
				return err
			}

			srv := server.New(cfg, svc).
				WithShutdownTimeout(time.Duration(cfg.Server.ShutdownTimeout) * time.Second)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return srv.Start(ctx)
		},
	}

	return cmd
}
