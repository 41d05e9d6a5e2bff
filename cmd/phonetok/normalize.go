package main

import (
	"fmt"
	"os"

	textpkg "github.com/example/go-phonetok/internal/text"
	"github.com/spf13/cobra"
)

func newNormalizeCmd() *cobra.Command {
	var textFlag string

	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Print the normalized, speakable form of text",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			input, err := readInputText(textFlag, os.Stdin)
			if err != nil {
				return err
			}

			n := textpkg.NewNormalizer(textpkg.Options{
				ExpandAbbreviations: cfg.Frontend.ExpandAbbreviations,
				ExpandNumbers:       cfg.Frontend.ExpandNumbers,
			})
			_, err = fmt.Fprintln(os.Stdout, n.Normalize(input))
			return err
		},
	}

	cmd.Flags().StringVar(&textFlag, "text", "", "Text to normalize (if empty, read from stdin)")

	return cmd
}
