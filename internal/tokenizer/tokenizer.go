// Package tokenizer orchestrates the text-to-token pipeline: normalization,
// pronunciation overrides, prosody parsing, word segmentation,
// phonemization, and symbol-to-ID encoding against the vocabulary.
package tokenizer

import (
	"strings"

	"github.com/example/go-phonetok/internal/phoneme"
	"github.com/example/go-phonetok/internal/pronounce"
	"github.com/example/go-phonetok/internal/prosody"
	"github.com/example/go-phonetok/internal/text"
	"github.com/example/go-phonetok/internal/vocab"
)

// Options configure a single Tokenize call.
type Options struct {
	// Normalizer overrides the default full normalization pipeline.
	Normalizer *text.Normalizer
	// Overrides, when non-nil, is applied to the normalized text before
	// prosody parsing and segmentation.
	Overrides *pronounce.Dict
	// ParseProsody enables inline markup parsing; when false, markup is
	// left in place and ProsodyHints stays empty.
	ParseProsody bool
}

// Output is the result of one Tokenize call, owned by the caller.
type Output struct {
	TokenIDs     []int
	ProsodyHints map[int]prosody.Hint
}

// Tokenizer converts raw text into vocabulary token IDs. All table state is
// read-only after construction, so concurrent Tokenize calls need no
// synchronization.
type Tokenizer struct {
	vocab      *vocab.Vocabulary
	phonemizer *phoneme.Phonemizer
}

// New builds a Tokenizer from an already-loaded vocabulary and phoneme
// dictionary.
func New(v *vocab.Vocabulary, dict *phoneme.Dictionary) *Tokenizer {
	return &Tokenizer{
		vocab:      v,
		phonemizer: phoneme.NewPhonemizer(dict),
	}
}

// NewFromFiles loads the vocabulary and phoneme dictionary from disk and
// builds a Tokenizer. This is the only phase that performs I/O; it is meant
// to run once at startup.
func NewFromFiles(tokensPath, dictionaryPath string) (*Tokenizer, error) {
	v, err := vocab.Load(tokensPath)
	if err != nil {
		return nil, err
	}
	dict, err := phoneme.LoadDictionary(dictionaryPath)
	if err != nil {
		return nil, err
	}
	return New(v, dict), nil
}

// Encode is a convenience wrapper equal to Tokenize(text, Options{}).TokenIDs.
func (t *Tokenizer) Encode(input string) []int {
	return t.Tokenize(input, Options{}).TokenIDs
}

// Tokenize runs the full pipeline over input and returns token IDs plus the
// per-word prosody hint table. The call is total: unknown symbols map to
// the out-of-vocabulary ID or are dropped, and no input can fail.
func (t *Tokenizer) Tokenize(input string, opts Options) Output {
	normalizer := opts.Normalizer
	if normalizer == nil {
		normalizer = text.NewNormalizer(text.DefaultOptions())
	}
	s := normalizer.Normalize(input)

	if opts.Overrides != nil {
		s = opts.Overrides.Apply(s)
	}

	hints := map[int]prosody.Hint{}
	if opts.ParseProsody {
		s, hints = prosody.Parse(s)
	}

	segments := segmentText(s)
	prevWords, nextWords := wordContexts(segments)

	ids := make([]int, 0, len(s))
	for i, seg := range segments {
		switch seg.kind {
		case kindSpace:
			ids = t.appendSpace(ids)
		case kindWord:
			symbols := t.phonemizer.Phonemize(seg.text, prevWords[i], nextWords[i])
			ids = t.appendSymbols(ids, symbols)
		case kindNumber:
			// Safety net: numbers normally never survive normalization.
			words := strings.Fields(speakNumericToken(seg.text))
			symbols := t.phonemizeWords(words, prevWords[i], nextWords[i])
			ids = t.appendSymbols(ids, symbols)
		case kindSymbol:
			ids = t.appendSymbol(ids, seg.text)
		}
	}

	return Output{
		TokenIDs:     trimTrailingSpaces(ids, t.vocab),
		ProsodyHints: hints,
	}
}

// TokenizeChunks splits input into sentence chunks of at most maxChars
// characters and tokenizes each chunk independently. Callers that stream
// long inputs to a synthesis backend use this to bound per-call output.
func (t *Tokenizer) TokenizeChunks(input string, opts Options, maxChars int) []Output {
	chunks := text.ChunkBySentence(input, maxChars)
	outputs := make([]Output, 0, len(chunks))
	for _, chunk := range chunks {
		outputs = append(outputs, t.Tokenize(chunk, opts))
	}
	return outputs
}

// phonemizeWords phonemizes a multi-word expansion with context threaded
// through the sub-words, separating words with space symbols.
func (t *Tokenizer) phonemizeWords(words []string, prev, next string) []string {
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

		sub := t.phonemizer.Phonemize(w, pw, nw)
		if len(sub) == 0 {
			continue
		}
		if len(out) > 0 {
			out = append(out, phoneme.WordSeparator)
		}
		out = append(out, sub...)
	}
	return out
}

func (t *Tokenizer) appendSymbols(ids []int, symbols []string) []int {
	for _, sym := range symbols {
		if sym == phoneme.WordSeparator {
			ids = t.appendSpace(ids)
			continue
		}
		ids = t.appendSymbol(ids, sym)
	}
	return ids
}

func (t *Tokenizer) appendSpace(ids []int) []int {
	if id, ok := t.vocab.SpaceID(); ok {
		return append(ids, id)
	}
	return ids
}

// appendSymbol encodes one symbol: direct vocabulary hit, then the OOV
// fallback, then silently dropped.
func (t *Tokenizer) appendSymbol(ids []int, sym string) []int {
	if id, ok := t.vocab.ID(sym); ok {
		return append(ids, id)
	}
	if id, ok := t.vocab.OOVID(); ok {
		return append(ids, id)
	}
	return ids
}

// trimTrailingSpaces removes trailing space-symbol IDs, leaving interior
// ones intact.
func trimTrailingSpaces(ids []int, v *vocab.Vocabulary) []int {
	spaceID, ok := v.SpaceID()
	if !ok {
		return ids
	}
	for len(ids) > 0 && ids[len(ids)-1] == spaceID {
		ids = ids[:len(ids)-1]
	}
	return ids
}

// speakNumericToken converts a surviving numeric token (possibly with
// thousands separators or an ordinal suffix) to its spoken form. Tokens
// that cannot be read as a number are spelled digit by digit.
func speakNumericToken(tok string) string {
	lower := strings.ToLower(tok)
	digits := strings.ReplaceAll(lower, ",", "")

	for _, suffix := range []string{"st", "nd", "rd", "th"} {
		if strings.HasSuffix(lower, suffix) {
			if spoken, ok := text.SpeakOrdinalString(strings.TrimSuffix(digits, suffix)); ok {
				return spoken
			}
			digits = strings.TrimSuffix(digits, suffix)
			break
		}
	}

	if spoken, ok := text.SpeakNumber(digits); ok {
		return spoken
	}

	// Overflow or malformed: spell each digit, dropping anything else.
	var b strings.Builder
	for _, r := range digits {
		if r < '0' || r > '9' {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		spoken, _ := text.SpeakDigits(string(r), false)
		b.WriteString(spoken)
	}
	return b.String()
}
