package tokenizer

import (
	"reflect"
	"testing"

	"github.com/example/go-phonetok/internal/phoneme"
	"github.com/example/go-phonetok/internal/pronounce"
	"github.com/example/go-phonetok/internal/testutil"
	"github.com/example/go-phonetok/internal/vocab"
)

func newTestTokenizer(t *testing.T) *Tokenizer {
	t.Helper()

	v, err := vocab.Load(testutil.WriteTokensFile(t, testutil.BasicSymbols()))
	if err != nil {
		t.Fatalf("load vocabulary: %v", err)
	}
	return New(v, phoneme.NewDictionary(testutil.BasicDictionary()))
}

func TestEncodeBasic(t *testing.T) {
	tok := newTestTokenizer(t)

	ids := tok.Encode("hello world")
	if len(ids) == 0 {
		t.Fatal("Encode returned no IDs")
	}

	// "hello world" phonemizes entirely from the dictionary, so no OOV IDs
	// may appear.
	v, _ := vocab.Load(testutil.WriteTokensFile(t, testutil.BasicSymbols()))
	oov, _ := v.OOVID()
	for _, id := range ids {
		if id == oov {
			t.Errorf("unexpected OOV ID in %v", ids)
		}
	}
}

func TestEncodeDeterministic(t *testing.T) {
	tok := newTestTokenizer(t)

	a := tok.Encode("hello world")
	b := tok.Encode("hello world")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Encode not deterministic: %v vs %v", a, b)
	}
}

func TestEncodeEmpty(t *testing.T) {
	tok := newTestTokenizer(t)

	if ids := tok.Encode(""); len(ids) != 0 {
		t.Errorf("Encode(\"\") = %v, want empty", ids)
	}
	if ids := tok.Encode("   \n\t "); len(ids) != 0 {
		t.Errorf("Encode(whitespace) = %v, want empty", ids)
	}
}

func TestEncodeNormalizationEquivalences(t *testing.T) {
	tok := newTestTokenizer(t)

	tests := []struct {
		name string
		a, b string
	}{
		{"ordinal suffix", "21st", "twenty first"},
		{"percent", "99%", "ninety nine percent"},
		{"currency", "$21.50", "twenty one dollars and fifty cents"},
		{"year", "1995", "nineteen ninety five"},
		{"roman numeral", "XIV", "fourteen"},
		{"list numbering", "1. hello\n2. world", "number one, hello number two, world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Encode(tt.a)
			want := tok.Encode(tt.b)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Encode(%q) = %v, want Encode(%q) = %v", tt.a, got, tt.b, want)
			}
		})
	}
}

func TestEncodeHeteronymContext(t *testing.T) {
	tok := newTestTokenizer(t)

	future := tok.Encode("I will read")
	past := tok.Encode("I read yesterday")
	if reflect.DeepEqual(future, past) {
		t.Error("heteronym context had no effect on token IDs")
	}

	// Isolate the "read" pronunciation itself.
	futureOnly := tok.Encode("will read")
	pastOnly := tok.Encode("read yesterday")
	if reflect.DeepEqual(futureOnly[len(futureOnly)-3:], pastOnly[:3]) {
		t.Error("read pronounced identically in future and past context")
	}
}

func TestEncodeNoTrailingSpaces(t *testing.T) {
	tok := newTestTokenizer(t)

	v, _ := vocab.Load(testutil.WriteTokensFile(t, testutil.BasicSymbols()))
	spaceID, _ := v.SpaceID()

	for _, in := range []string{"hello world", "hello world.", "hello ", "XIV and hello"} {
		ids := tok.Encode(in)
		if len(ids) > 0 && ids[len(ids)-1] == spaceID {
			t.Errorf("Encode(%q) ends with space ID: %v", in, ids)
		}
	}
}

func TestEncodeUnknownSymbolMapsToOOV(t *testing.T) {
	tok := newTestTokenizer(t)

	v, _ := vocab.Load(testutil.WriteTokensFile(t, testutil.BasicSymbols()))
	oov, _ := v.OOVID()

	ids := tok.Encode("hello ~")
	if len(ids) == 0 || ids[len(ids)-1] != oov {
		t.Errorf("Encode(hello ~) = %v, want trailing OOV ID %d", ids, oov)
	}
}

func TestEncodeUnknownSymbolDroppedWithoutOOV(t *testing.T) {
	symbols := []string{" ", "HH", "AH0", "L", "OW1"}
	v, err := vocab.Load(testutil.WriteTokensFile(t, symbols))
	if err != nil {
		t.Fatalf("load vocabulary: %v", err)
	}
	tok := New(v, phoneme.NewDictionary(testutil.BasicDictionary()))

	with := tok.Encode("hello")
	withTilde := tok.Encode("hello ~")
	if !reflect.DeepEqual(with, withTilde) {
		t.Errorf("unknown symbol not dropped: %v vs %v", with, withTilde)
	}
}

func TestEncodePunctuation(t *testing.T) {
	tok := newTestTokenizer(t)

	v, _ := vocab.Load(testutil.WriteTokensFile(t, testutil.BasicSymbols()))
	commaID, _ := v.ID(",")

	ids := tok.Encode("hello, world")
	found := false
	for _, id := range ids {
		if id == commaID {
			found = true
		}
	}
	if !found {
		t.Errorf("comma ID %d missing from %v", commaID, ids)
	}
}

func TestTokenizeWithOverrides(t *testing.T) {
	tok := newTestTokenizer(t)

	over := pronounce.New()
	over.Add("hullo", "hello")

	plain := tok.Tokenize("hullo world", Options{})
	applied := tok.Tokenize("hullo world", Options{Overrides: over})
	want := tok.Tokenize("hello world", Options{})

	if !reflect.DeepEqual(applied.TokenIDs, want.TokenIDs) {
		t.Errorf("override not applied: %v, want %v", applied.TokenIDs, want.TokenIDs)
	}
	if reflect.DeepEqual(plain.TokenIDs, want.TokenIDs) {
		t.Error("fixture words encode identically without the override")
	}
}

func TestTokenizeProsody(t *testing.T) {
	tok := newTestTokenizer(t)

	out := tok.Tokenize("<emphasis>hello</emphasis> world", Options{ParseProsody: true})
	want := tok.Encode("hello world")

	if !reflect.DeepEqual(out.TokenIDs, want) {
		t.Errorf("TokenIDs = %v, want %v", out.TokenIDs, want)
	}

	hint, ok := out.ProsodyHints[0]
	if !ok {
		t.Fatalf("no hint for word 0: %v", out.ProsodyHints)
	}
	if hint.PitchScale <= 1.0 || hint.DurationScale <= 1.0 {
		t.Errorf("hint = %v, want emphasized scales", hint)
	}
	if _, ok := out.ProsodyHints[1]; ok {
		t.Errorf("unexpected hint for word 1: %v", out.ProsodyHints)
	}
}

func TestTokenizeProsodyDisabled(t *testing.T) {
	tok := newTestTokenizer(t)

	out := tok.Tokenize("<emphasis>hello</emphasis> world", Options{})
	if len(out.ProsodyHints) != 0 {
		t.Errorf("ProsodyHints = %v, want empty", out.ProsodyHints)
	}
}

func TestTokenizeChunks(t *testing.T) {
	tok := newTestTokenizer(t)

	outputs := tok.TokenizeChunks("hello world. hello world.", Options{}, 14)
	if len(outputs) != 2 {
		t.Fatalf("got %d outputs, want 2", len(outputs))
	}
	if !reflect.DeepEqual(outputs[0].TokenIDs, outputs[1].TokenIDs) {
		t.Errorf("identical chunks encoded differently: %v vs %v",
			outputs[0].TokenIDs, outputs[1].TokenIDs)
	}

	whole := tok.TokenizeChunks("hello world", Options{}, 0)
	if len(whole) != 1 {
		t.Errorf("maxChars 0 should yield one output, got %d", len(whole))
	}
}

func TestSpeakNumericToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"42", "forty two"},
		{"1,234", "one thousand two hundred thirty four"},
		{"3.14", "three point one four"},
		{"21st", "twenty first"},
		{"3RD", "third"},
		{"99999999999999999999", "nine nine nine nine nine nine nine nine nine nine nine nine nine nine nine nine nine nine nine nine"},
	}

	for _, tt := range tests {
		if got := speakNumericToken(tt.in); got != tt.want {
			t.Errorf("speakNumericToken(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSegmentText(t *testing.T) {
	segments := segmentText("don't stop 21st, now")

	want := []segment{
		{kindWord, "don't"},
		{kindSpace, " "},
		{kindWord, "stop"},
		{kindSpace, " "},
		{kindNumber, "21st"},
		{kindSymbol, ","},
		{kindSpace, " "},
		{kindWord, "now"},
	}
	if !reflect.DeepEqual(segments, want) {
		t.Errorf("segmentText = %v, want %v", segments, want)
	}
}

func TestWordContexts(t *testing.T) {
	segments := segmentText("I will Read today")
	prev, next := wordContexts(segments)

	// Index 4 is the "Read" segment.
	if segments[4].text != "Read" {
		t.Fatalf("segments = %v", segments)
	}
	if prev[4] != "will" {
		t.Errorf("prev = %q, want %q", prev[4], "will")
	}
	if next[4] != "today" {
		t.Errorf("next = %q, want %q", next[4], "today")
	}
}
