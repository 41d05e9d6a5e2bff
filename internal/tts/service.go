// Package tts exposes the text-frontend operations consumed by synthesis
// collaborators: configuration-driven construction plus Tokenize, Encode,
// and Normalize.
package tts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/example/go-phonetok/internal/config"
	"github.com/example/go-phonetok/internal/pronounce"
	"github.com/example/go-phonetok/internal/text"
	"github.com/example/go-phonetok/internal/tokenizer"
)

// ErrEmptyText is returned when the input text is empty or whitespace-only.
var ErrEmptyText = errors.New("text is empty")

// Service wires the frontend together from configuration. Construction is
// the only phase that performs I/O; afterwards all table state is read-only
// and concurrent calls are safe.
type Service struct {
	tok          *tokenizer.Tokenizer
	normalizer   *text.Normalizer
	overrides    *pronounce.Dict
	parseProsody bool
}

// NewService loads the vocabulary, phoneme dictionary, and optional
// pronunciation overrides named by cfg and returns a ready Service.
func NewService(cfg config.Config) (*Service, error) {
	tok, err := tokenizer.NewFromFiles(cfg.Paths.TokensFile, cfg.Paths.DictionaryFile)
	if err != nil {
		return nil, err
	}

	overrides := pronounce.New()
	if cfg.Paths.OverridesFile != "" {
		if err := overrides.Load(cfg.Paths.OverridesFile); err != nil {
			return nil, fmt.Errorf("load pronunciation overrides: %w", err)
		}
	}

	return &Service{
		tok: tok,
		normalizer: text.NewNormalizer(text.Options{
			ExpandAbbreviations: cfg.Frontend.ExpandAbbreviations,
			ExpandNumbers:       cfg.Frontend.ExpandNumbers,
		}),
		overrides:    overrides,
		parseProsody: cfg.Frontend.ParseProsody,
	}, nil
}

// Tokenize converts input into token IDs and prosody hints. Empty or
// whitespace-only input is rejected with ErrEmptyText.
func (s *Service) Tokenize(input string) (tokenizer.Output, error) {
	if strings.TrimSpace(input) == "" {
		return tokenizer.Output{}, ErrEmptyText
	}
	return s.tok.Tokenize(input, s.options()), nil
}

// TokenizeChunks tokenizes input sentence-chunked to at most maxChars
// characters per chunk.
func (s *Service) TokenizeChunks(input string, maxChars int) ([]tokenizer.Output, error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrEmptyText
	}
	return s.tok.TokenizeChunks(input, s.options(), maxChars), nil
}

// Encode returns just the token IDs for input, equal to the TokenIDs field
// of Tokenize.
func (s *Service) Encode(input string) ([]int, error) {
	out, err := s.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return out.TokenIDs, nil
}

// Normalize runs only the text normalization pipeline.
func (s *Service) Normalize(input string) string {
	return s.normalizer.Normalize(input)
}

// Overrides exposes the pronunciation override dictionary so callers can
// register entries at runtime.
func (s *Service) Overrides() *pronounce.Dict {
	return s.overrides
}

// Tokenizer returns the underlying tokenizer for callers that manage their
// own per-call options.
func (s *Service) Tokenizer() *tokenizer.Tokenizer {
	return s.tok
}

func (s *Service) options() tokenizer.Options {
	return tokenizer.Options{
		Normalizer:   s.normalizer,
		Overrides:    s.overrides,
		ParseProsody: s.parseProsody,
	}
}
