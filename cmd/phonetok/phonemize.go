package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/example/go-phonetok/internal/phoneme"
	textpkg "github.com/example/go-phonetok/internal/text"
	"github.com/spf13/cobra"
)

func newPhonemizeCmd() *cobra.Command {
	var textFlag string
	var raw bool

	cmd := &cobra.Command{
		Use:   "phonemize",
		Short: "Print per-word phoneme symbols",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			input, err := readInputText(textFlag, os.Stdin)
			if err != nil {
				return err
			}

			dict, err := phoneme.LoadDictionary(cfg.Paths.DictionaryFile)
			if err != nil {
				return err
			}
			ph := phoneme.NewPhonemizer(dict)

			if !raw {
				input = textpkg.NewNormalizer(textpkg.Options{
					ExpandAbbreviations: cfg.Frontend.ExpandAbbreviations,
					ExpandNumbers:       cfg.Frontend.ExpandNumbers,
				}).Normalize(input)
			}

			words := splitPhonemizeWords(input)
			for i, word := range words {
				prev := ""
				if i > 0 {
					prev = strings.ToLower(words[i-1])
				}
				next := ""
				if i < len(words)-1 {
					next = strings.ToLower(words[i+1])
				}

				symbols := ph.Phonemize(word, prev, next)
				_, err := fmt.Fprintf(os.Stdout, "%s\t%s\n", word, strings.Join(symbols, " "))
				if err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&textFlag, "text", "", "Text to phonemize (if empty, read from stdin)")
	cmd.Flags().BoolVar(&raw, "raw", false, "Skip normalization before phonemizing")

	return cmd
}

// splitPhonemizeWords extracts word tokens from text, trimming surrounding
// punctuation so each token matches what the tokenizer would phonemize.
func splitPhonemizeWords(s string) []string {
	var words []string
	for _, field := range strings.Fields(s) {
		word := strings.TrimFunc(field, func(r rune) bool {
			return !isWordRune(r)
		})
		if word != "" {
			words = append(words, word)
		}
	}
	return words
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
