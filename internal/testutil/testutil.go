// Package testutil provides shared fixture helpers for tests that need
// vocabulary, dictionary, or override files on disk.
//
// Typical usage:
//
//	func TestMyCommand(t *testing.T) {
//	    tokens := testutil.WriteTokensFile(t, testutil.BasicSymbols())
//	    dict := testutil.WriteDictionaryFile(t, testutil.BasicDictionary())
//	    ...
//	}
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// BasicSymbols returns a small vocabulary covering the ARPAbet symbols used
// by BasicDictionary plus the space, OOV, and common punctuation entries.
func BasicSymbols() []string {
	return []string{
		"<oov>", " ", ",", ".", "?", "!",
		"AA1", "AE1", "AH0", "AH1", "AO1", "AY1", "B", "CH", "D", "DH",
		"EH1", "ER0", "EY1", "F", "G", "HH", "IH0", "IH1", "IY1", "JH",
		"K", "L", "M", "N", "NG", "OW1", "P", "R", "S", "SH", "T", "TH",
		"UH1", "UW1", "V", "W", "Y", "Z", "ZH",
	}
}

// BasicDictionary returns a small pronunciation dictionary, including the
// heteronyms the phonemizer has context rules for.
func BasicDictionary() map[string][][]string {
	return map[string][][]string{
		"hello":  {{"HH", "AH0", "L", "OW1"}},
		"world":  {{"W", "ER0", "L", "D"}},
		"i":      {{"AY1"}},
		"will":   {{"W", "IH1", "L"}},
		"to":     {{"T", "UW1"}},
		"the":    {{"DH", "AH0"}},
		"a":      {{"AH0"}},
		"book":   {{"B", "UH1", "K"}},
		"read":   {{"R", "IY1", "D"}, {"R", "EH1", "D"}},
		"lead":   {{"L", "IY1", "D"}, {"L", "EH1", "D"}},
		"record": {{"R", "EH1", "K", "ER0", "D"}, {"R", "IH0", "K", "AO1", "R", "D"}},
	}
}

// WriteTokensFile writes a newline-delimited vocabulary file into a temp
// directory and returns its path.
func WriteTokensFile(tb testing.TB, symbols []string) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "tokens.txt")
	content := strings.Join(symbols, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		tb.Fatalf("write tokens file: %v", err)
	}
	return path
}

// WriteDictionaryFile writes a phoneme dictionary JSON file into a temp
// directory and returns its path.
func WriteDictionaryFile(tb testing.TB, entries map[string][][]string) string {
	tb.Helper()

	data, err := json.Marshal(entries)
	if err != nil {
		tb.Fatalf("marshal dictionary: %v", err)
	}

	path := filepath.Join(tb.TempDir(), "dictionary.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		tb.Fatalf("write dictionary file: %v", err)
	}
	return path
}

// WriteOverridesFile writes a tab-separated pronunciation override file into
// a temp directory and returns its path.
func WriteOverridesFile(tb testing.TB, entries map[string]string) string {
	tb.Helper()

	var b strings.Builder
	b.WriteString("# test overrides\n")
	for surface, replacement := range entries {
		b.WriteString(surface)
		b.WriteByte('\t')
		b.WriteString(replacement)
		b.WriteByte('\n')
	}

	path := filepath.Join(tb.TempDir(), "overrides.tsv")
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		tb.Fatalf("write overrides file: %v", err)
	}
	return path
}
