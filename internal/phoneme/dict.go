// Package phoneme converts word tokens into ARPAbet phoneme symbol
// sequences, backed by a CMUDict-style pronunciation dictionary with
// rule-based fallbacks for acronyms, roman numerals, contractions, and
// unknown words.
package phoneme

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrInvalidDictionaryFile is returned when the phoneme dictionary JSON is
// missing, malformed, or has the wrong shape.
var ErrInvalidDictionaryFile = errors.New("invalid dictionary file")

// Dictionary maps lowercase words to their pronunciation variants.
// Variant 0 is the default pronunciation; further variants are alternates
// selected by heteronym context rules. Immutable after construction.
type Dictionary struct {
	entries map[string][][]string
}

// LoadDictionary reads a phoneme dictionary from the JSON file at path.
func LoadDictionary(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %v", ErrInvalidDictionaryFile, path, err)
	}
	defer func() { _ = f.Close() }()

	d, err := LoadDictionaryReader(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read %q: %v", ErrInvalidDictionaryFile, path, err)
	}
	return d, nil
}

// LoadDictionaryReader reads a phoneme dictionary from r. The expected shape
// is a JSON object mapping words to arrays of pronunciation variants, each
// variant an array of phoneme symbol strings.
func LoadDictionaryReader(r io.Reader) (*Dictionary, error) {
	var raw map[string][][]string
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode dictionary JSON: %w", err)
	}

	entries := make(map[string][][]string, len(raw))
	for word, variants := range raw {
		if len(variants) == 0 {
			return nil, fmt.Errorf("word %q has no pronunciation variants", word)
		}
		for i, variant := range variants {
			if len(variant) == 0 {
				return nil, fmt.Errorf("word %q variant %d is empty", word, i)
			}
		}
		entries[strings.ToLower(word)] = variants
	}

	return &Dictionary{entries: entries}, nil
}

// NewDictionary builds a Dictionary from an in-memory entry map. Used by
// tests and by callers that assemble pronunciations programmatically.
func NewDictionary(entries map[string][][]string) *Dictionary {
	copied := make(map[string][][]string, len(entries))
	for word, variants := range entries {
		copied[strings.ToLower(word)] = variants
	}
	return &Dictionary{entries: copied}
}

// Variants returns all pronunciation variants for the lowercase word.
func (d *Dictionary) Variants(word string) ([][]string, bool) {
	variants, ok := d.entries[word]
	return variants, ok
}

// Len returns the number of words in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.entries)
}
