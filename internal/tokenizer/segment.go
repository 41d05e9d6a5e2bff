package tokenizer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

type segmentKind int

const (
	kindSpace segmentKind = iota
	kindWord
	kindNumber
	kindSymbol
)

type segment struct {
	kind segmentKind
	text string
}

var (
	spaceRe = regexp.MustCompile(`^\s+`)
	wordRe  = regexp.MustCompile(`^[A-Za-z]+(?:'[A-Za-z]+)?`)
	numRe   = regexp.MustCompile(`^\d+(?:,\d{3})*(?:\.\d+)?(?:st|nd|rd|th|ST|ND|RD|TH)?`)
)

// segmentText splits s into whitespace runs, word tokens, numeric tokens,
// and single non-alphanumeric symbols, most specific pattern first.
func segmentText(s string) []segment {
	var segments []segment
	for len(s) > 0 {
		if m := spaceRe.FindString(s); m != "" {
			segments = append(segments, segment{kindSpace, m})
			s = s[len(m):]
			continue
		}
		if m := wordRe.FindString(s); m != "" {
			segments = append(segments, segment{kindWord, m})
			s = s[len(m):]
			continue
		}
		if m := numRe.FindString(s); m != "" {
			segments = append(segments, segment{kindNumber, m})
			s = s[len(m):]
			continue
		}

		_, size := utf8.DecodeRuneInString(s)
		segments = append(segments, segment{kindSymbol, s[:size]})
		s = s[size:]
	}
	return segments
}

// wordContexts computes, for every segment, the lowercase word token
// immediately before and after it. Contexts are derived once over the whole
// segment sequence, independent of any phonemization recursion.
func wordContexts(segments []segment) (prev, next []string) {
	prev = make([]string, len(segments))
	next = make([]string, len(segments))

	last := ""
	for i, seg := range segments {
		prev[i] = last
		if seg.kind == kindWord {
			last = strings.ToLower(seg.text)
		}
	}

	last = ""
	for i := len(segments) - 1; i >= 0; i-- {
		next[i] = last
		if segments[i].kind == kindWord {
			last = strings.ToLower(segments[i].text)
		}
	}

	return prev, next
}
