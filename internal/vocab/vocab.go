// Package vocab loads the symbol vocabulary used to encode phoneme and
// punctuation symbols into dense integer token IDs.
//
// The vocabulary file is newline-delimited UTF-8 text: the i-th non-empty
// line (0-based) is the symbol with ID i. An exact single-space line and an
// "<oov>" line are expected but optional; when absent the corresponding
// fallback behavior degrades as documented on SpaceID and OOVID.
package vocab

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrInvalidTokensFile is returned when the vocabulary file is missing,
// unreadable, or malformed.
var ErrInvalidTokensFile = errors.New("invalid tokens file")

// OOVSymbol is the designated out-of-vocabulary fallback symbol.
const OOVSymbol = "<oov>"

// SpaceSymbol is the word-separator symbol.
const SpaceSymbol = " "

// Vocabulary maps symbol strings to contiguous 0-based integer IDs.
// It is immutable after construction and safe for concurrent use.
type Vocabulary struct {
	ids     map[string]int
	spaceID int
	oovID   int
}

// Load reads a vocabulary from the file at path.
func Load(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %v", ErrInvalidTokensFile, path, err)
	}
	defer func() { _ = f.Close() }()

	v, err := LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read %q: %v", ErrInvalidTokensFile, path, err)
	}
	return v, nil
}

// LoadReader reads a vocabulary from r. Empty lines are skipped; every other
// line, including a line holding a single space, receives the next ID. A
// repeated line is an error, since it would silently shift every later ID.
func LoadReader(r io.Reader) (*Vocabulary, error) {
	v := &Vocabulary{
		ids:     make(map[string]int),
		spaceID: -1,
		oovID:   -1,
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		if prev, ok := v.ids[line]; ok {
			return nil, fmt.Errorf("duplicate symbol %q (already ID %d)", line, prev)
		}

		id := len(v.ids)
		v.ids[line] = id

		switch line {
		case SpaceSymbol:
			v.spaceID = id
		case OOVSymbol:
			v.oovID = id
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return v, nil
}

// ID returns the token ID for symbol, or false if the symbol is unknown.
func (v *Vocabulary) ID(symbol string) (int, bool) {
	id, ok := v.ids[symbol]
	return id, ok
}

// SpaceID returns the ID of the single-space symbol, or false if the
// vocabulary has none (in which case whitespace is dropped during encoding).
func (v *Vocabulary) SpaceID() (int, bool) {
	return v.spaceID, v.spaceID >= 0
}

// OOVID returns the ID of the out-of-vocabulary symbol, or false if the
// vocabulary has none (in which case unknown symbols are dropped).
func (v *Vocabulary) OOVID() (int, bool) {
	return v.oovID, v.oovID >= 0
}

// Len returns the number of symbols in the vocabulary.
func (v *Vocabulary) Len() int {
	return len(v.ids)
}
