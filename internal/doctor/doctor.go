// Package doctor provides asset preflight checks for phonetok.
package doctor

import (
	"fmt"
	"io"

	"github.com/example/go-phonetok/internal/phoneme"
	"github.com/example/go-phonetok/internal/pronounce"
	"github.com/example/go-phonetok/internal/vocab"
)

// PassMark and FailMark are the prefix symbols printed for each check result.
const (
	PassMark = "✓"
	FailMark = "✗"
)

// Config names the assets to verify.
type Config struct {
	// TokensFile is the vocabulary file path.
	TokensFile string
	// DictionaryFile is the phoneme dictionary JSON path.
	DictionaryFile string
	// OverridesFile is the optional pronunciation overrides path; empty
	// skips the check.
	OverridesFile string
}

// Result collects the outcome of all checks.
type Result struct {
	failures []string
}

// Failed returns true if any check failed.
func (r *Result) Failed() bool { return len(r.failures) > 0 }

// Failures returns the list of failure messages.
func (r *Result) Failures() []string { return append([]string(nil), r.failures...) }

func (r *Result) fail(msg string) { r.failures = append(r.failures, msg) }

// Run executes all configured checks and writes human-readable output to w.
// Each check line is prefixed with PassMark or FailMark.
func Run(cfg Config, w io.Writer) Result {
	var res Result

	// ---- vocabulary -------------------------------------------------------
	v, err := vocab.Load(cfg.TokensFile)
	if err != nil {
		res.fail(fmt.Sprintf("tokens file %q: %v", cfg.TokensFile, err))
		fmt.Fprintf(w, "%s tokens file %s: %v\n", FailMark, cfg.TokensFile, err)
	} else {
		fmt.Fprintf(w, "%s tokens file: %s (%d symbols)\n", PassMark, cfg.TokensFile, v.Len())

		if _, ok := v.SpaceID(); !ok {
			fmt.Fprintf(w, "%s vocabulary has no space symbol; whitespace will be dropped\n", FailMark)
			res.fail("vocabulary has no space symbol")
		} else {
			fmt.Fprintf(w, "%s vocabulary space symbol present\n", PassMark)
		}
		if _, ok := v.OOVID(); !ok {
			fmt.Fprintf(w, "%s vocabulary has no %s symbol; unknown symbols will be dropped\n",
				FailMark, vocab.OOVSymbol)
			res.fail("vocabulary has no <oov> symbol")
		} else {
			fmt.Fprintf(w, "%s vocabulary %s symbol present\n", PassMark, vocab.OOVSymbol)
		}
	}

	// ---- phoneme dictionary -----------------------------------------------
	dict, err := phoneme.LoadDictionary(cfg.DictionaryFile)
	if err != nil {
		res.fail(fmt.Sprintf("dictionary file %q: %v", cfg.DictionaryFile, err))
		fmt.Fprintf(w, "%s dictionary file %s: %v\n", FailMark, cfg.DictionaryFile, err)
	} else {
		fmt.Fprintf(w, "%s dictionary file: %s (%d words)\n", PassMark, cfg.DictionaryFile, dict.Len())
	}

	// ---- pronunciation overrides ------------------------------------------
	if cfg.OverridesFile == "" {
		fmt.Fprintf(w, "%s overrides file: skipped (not configured)\n", PassMark)
	} else {
		overrides := pronounce.New()
		if err := overrides.Load(cfg.OverridesFile); err != nil {
			res.fail(fmt.Sprintf("overrides file %q: %v", cfg.OverridesFile, err))
			fmt.Fprintf(w, "%s overrides file %s: %v\n", FailMark, cfg.OverridesFile, err)
		} else {
			fmt.Fprintf(w, "%s overrides file: %s (%d entries)\n", PassMark, cfg.OverridesFile, overrides.Len())
		}
	}

	return res
}
