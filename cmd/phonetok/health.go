package main

import (
	"fmt"
	"strings"

	"github.com/example/go-phonetok/internal/server"
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Probe a running phonetok server",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			addr := cfg.Server.ListenAddr
			if strings.HasPrefix(addr, ":") {
				addr = "localhost" + addr
			}

			if err := server.ProbeHTTP(addr); err != nil {
				return fmt.Errorf("health probe failed: %w", err)
			}

			fmt.Println("ok")
			return nil
		},
	}

	return cmd
}
