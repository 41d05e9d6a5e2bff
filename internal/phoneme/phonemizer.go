package phoneme

import (
	"strings"
	"unicode"

	"github.com/example/go-phonetok/internal/text"
)

// WordSeparator is the symbol emitted between words when a single token
// expands into several (acronym letters, contractions, roman numerals).
const WordSeparator = " "

// Phonemizer converts word tokens into ARPAbet phoneme symbols using a
// pronunciation dictionary plus rule-based fallbacks. Safe for concurrent
// use after construction.
type Phonemizer struct {
	dict *Dictionary
}

// NewPhonemizer returns a Phonemizer backed by dict.
func NewPhonemizer(dict *Dictionary) *Phonemizer {
	return &Phonemizer{dict: dict}
}

// Phonemize converts a single word token into phoneme symbols. prev and next
// are the lowercase words adjacent to the token in the source text; they
// drive heteronym variant selection. Stages are tried in a fixed priority
// order: roman numeral, acronym, dictionary lookup, contraction expansion,
// rule-based fallback.
func (p *Phonemizer) Phonemize(word, prev, next string) []string {
	if word == "" {
		return nil
	}

	if value, ok := parseRomanNumeral(word); ok {
		if spoken, ok := text.SpeakInt(value); ok {
			return p.phonemizeWords(strings.Fields(spoken), prev, next)
		}
	}

	if isAcronym(word) {
		return spellAcronym(word)
	}

	lower := strings.ToLower(word)
	key := strings.Trim(lower, "'")
	if variants, ok := p.dict.Variants(key); ok {
		return chooseVariant(key, variants, prev, next)
	}

	if expansion, ok := expandContraction(lower); ok {
		return p.phonemizeWords(strings.Fields(expansion), prev, next)
	}

	return fallbackG2P(word)
}

// phonemizeWords phonemizes each word of a multi-word expansion, threading
// previous/next context through the sub-words and separating them with
// WordSeparator symbols.
func (p *Phonemizer) phonemizeWords(words []string, prev, next string) []string {
	var out []string
	for i, w := range words {
		pw := prev
		if i > 0 {
			pw = strings.ToLower(words[i-1])
		}
		nw := next
		if i < len(words)-1 {
			nw = strings.ToLower(words[i+1])
		}

		sub := p.Phonemize(w, pw, nw)
		if len(sub) == 0 {
			continue
		}
		if len(out) > 0 {
			out = append(out, WordSeparator)
		}
		out = append(out, sub...)
	}
	return out
}

// parseRomanNumeral reports whether word is an all-uppercase roman numeral
// of length >= 2 and returns its value. Values <= 0 are rejected.
func parseRomanNumeral(word string) (int64, bool) {
	runes := []rune(word)
	if len(runes) < 2 {
		return 0, false
	}
	for _, r := range runes {
		if _, ok := romanValues[r]; !ok {
			return 0, false
		}
	}

	var total int64
	for i, r := range runes {
		v := romanValues[r]
		if i+1 < len(runes) && romanValues[runes[i+1]] > v {
			total -= v
		} else {
			total += v
		}
	}
	if total <= 0 {
		return 0, false
	}
	return total, true
}

// isAcronym reports whether word should be spelled out letter by letter:
// either all-caps, or mixed-case beginning with a lowercase letter ("iOS").
func isAcronym(word string) bool {
	runes := []rune(word)
	if len(runes) < 2 {
		return false
	}

	hasUpper := false
	hasLower := false
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
	}

	if hasUpper && !hasLower {
		return true
	}
	return hasUpper && hasLower && unicode.IsLower(runes[0])
}

// spellAcronym emits the letter-name phonemes for each letter, separated by
// WordSeparator symbols between letters (not between phonemes of a letter).
func spellAcronym(word string) []string {
	var out []string
	for _, r := range strings.ToLower(word) {
		name, ok := letterNames[r]
		if !ok {
			continue
		}
		if len(out) > 0 {
			out = append(out, WordSeparator)
		}
		out = append(out, name...)
	}
	return out
}

// chooseVariant picks a pronunciation variant by heteronym context. Words
// without a rule, and rule results out of range, use variant 0.
func chooseVariant(word string, variants [][]string, prev, next string) []string {
	idx := 0
	if rule, ok := heteronymRules[word]; ok {
		idx = rule(prev, next)
	}
	if idx < 0 || idx >= len(variants) {
		idx = 0
	}

	out := make([]string, len(variants[idx]))
	copy(out, variants[idx])
	return out
}

// expandContraction expands a lowercase word via the contraction table.
// Exact matches take priority over suffix matches.
func expandContraction(lower string) (string, bool) {
	if expansion, ok := contractionExact[lower]; ok {
		return expansion, true
	}
	for _, c := range contractionSuffixes {
		if strings.HasSuffix(lower, c.suffix) && len(lower) > len(c.suffix) {
			return lower[:len(lower)-len(c.suffix)] + c.expansion, true
		}
	}
	return "", false
}

// fallbackG2P applies the rule-based letter-to-sound scan: multi-letter
// clusters first, then single-letter rules. If the scan yields nothing
// (non-alphabetic residue), each raw character becomes its own
// pseudo-phoneme so the output is never empty for non-empty input.
func fallbackG2P(word string) []string {
	lower := strings.ToLower(word)

	var out []string
	i := 0
	for i < len(lower) {
		matched := false
		for _, cluster := range g2pClusters {
			if strings.HasPrefix(lower[i:], cluster.graphemes) {
				out = append(out, cluster.phonemes...)
				i += len(cluster.graphemes)
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		if phonemes, ok := g2pSingle[rune(lower[i])]; ok {
			out = append(out, phonemes...)
		}
		i++
	}

	if len(out) == 0 {
		for _, r := range word {
			out = append(out, string(r))
		}
	}
	return out
}
