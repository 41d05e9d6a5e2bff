package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/go-phonetok/internal/tokenizer"
	"github.com/example/go-phonetok/internal/tts"
	"github.com/spf13/cobra"
)

const (
	formatIDs  = "ids"
	formatJSON = "json"
)

func newTokenizeCmd() *cobra.Command {
	var textFlag string
	var format string
	var prosodyFlag bool
	var chunk bool
	var maxChunkChars int

	cmd := &cobra.Command{
		Use:   "tokenize",
		Short: "Convert text to token IDs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("prosody") {
				cfg.Frontend.ParseProsody = prosodyFlag
			}

			outputFormat, err := resolveOutputFormat(format)
			if err != nil {
				return err
			}

			input, err := readInputText(textFlag, os.Stdin)
			if err != nil {
				return err
			}

			svc, err := tts.NewService(cfg)
			if err != nil {
				return err
			}

			var outputs []tokenizer.Output
			if chunk {
				outputs, err = svc.TokenizeChunks(input, maxChunkChars)
			} else {
				var out tokenizer.Output
				out, err = svc.Tokenize(input)
				outputs = []tokenizer.Output{out}
			}
			if err != nil {
				return err
			}

			return writeTokenizeOutput(os.Stdout, outputs, outputFormat)
		},
	}

	cmd.Flags().StringVar(&textFlag, "text", "", "Text to tokenize (if empty, read from stdin)")
	cmd.Flags().StringVar(&format, "format", formatIDs, "Output format (ids|json)")
	cmd.Flags().BoolVar(&prosodyFlag, "prosody", false, "Parse inline prosody markup (overrides config)")
	cmd.Flags().BoolVar(&chunk, "chunk", false, "Split text into sentence chunks and tokenize each")
	cmd.Flags().IntVar(&maxChunkChars, "max-chunk-chars", 220, "Maximum characters per chunk when --chunk is enabled")

	return cmd
}

func resolveOutputFormat(raw string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(raw))
	if format == "" {
		format = formatIDs
	}
	switch format {
	case formatIDs, formatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("invalid format %q (expected %s|%s)", raw, formatIDs, formatJSON)
	}
}

// readInputText returns the --text flag value, or the full contents of in
// when the flag is empty.
func readInputText(textFlag string, in io.Reader) (string, error) {
	if textFlag != "" {
		return textFlag, nil
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read text from stdin: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("no input text provided (use --text or stdin)")
	}
	return string(data), nil
}

// writeTokenizeOutput renders outputs either as one space-separated ID line
// per chunk, or as a JSON document.
func writeTokenizeOutput(w io.Writer, outputs []tokenizer.Output, format string) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(outputs) == 1 {
			return enc.Encode(tokenizeDoc(outputs[0]))
		}

		docs := make([]any, 0, len(outputs))
		for _, out := range outputs {
			docs = append(docs, tokenizeDoc(out))
		}
		return enc.Encode(docs)
	}

	for _, out := range outputs {
		ids := make([]string, len(out.TokenIDs))
		for i, id := range out.TokenIDs {
			ids[i] = fmt.Sprintf("%d", id)
		}
		if _, err := fmt.Fprintln(w, strings.Join(ids, " ")); err != nil {
			return err
		}
	}
	return nil
}

func tokenizeDoc(out tokenizer.Output) map[string]any {
	doc := map[string]any{"token_ids": out.TokenIDs}
	if len(out.ProsodyHints) > 0 {
		doc["prosody_hints"] = out.ProsodyHints
	}
	return doc
}
