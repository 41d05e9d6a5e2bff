package main

import (
	"fmt"
	"os"

	"github.com/example/go-phonetok/internal/doctor"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that the configured frontend assets load",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			res := doctor.Run(doctor.Config{
				TokensFile:     cfg.Paths.TokensFile,
				DictionaryFile: cfg.Paths.DictionaryFile,
				OverridesFile:  cfg.Paths.OverridesFile,
			}, os.Stdout)

			if res.Failed() {
				return fmt.Errorf("%d check(s) failed", len(res.Failures()))
			}
			return nil
		},
	}

	return cmd
}
