package prosody

import (
	"regexp"
	"strconv"
	"strings"
)

// Hint magnitudes contributed by each recognized tag form.
var (
	emphasisDefault = Hint{PitchScale: 1.1, DurationScale: 1.1}
	emphasisStrong  = Hint{PitchScale: 1.2, DurationScale: 1.2}
	emphasisReduced = Hint{PitchScale: 0.9, DurationScale: 0.9}
	rateSlow        = Hint{PitchScale: 1.0, DurationScale: 1.3}
	rateFast        = Hint{PitchScale: 1.0, DurationScale: 0.7}
	pitchHigh       = Hint{PitchScale: 1.0, DurationScale: 1.0, PitchOffsetSemitones: 2.0}
	pitchLow        = Hint{PitchScale: 1.0, DurationScale: 1.0, PitchOffsetSemitones: -2.0}
)

var breakTimeRe = regexp.MustCompile(`time="(\d+(?:\.\d+)?)(ms|s)"`)

// openTag is one entry of the active-tag stack.
type openTag struct {
	name string
	hint Hint
}

// Parse strips prosody markup from text and returns the cleaned text plus a
// table of hints keyed by zero-based word index over the cleaned text. Words
// are counted with the same pattern the tokenizer segments with, so the
// indices line up with the tokenizer's own word order. Only indices that
// received a non-identity contribution appear in the table.
//
// Paired tags nest and compose by Merge; an opening tag with no close
// extends to end of input. A '<' that does not start a well-formed tag is
// removed as stray punctuation.
func Parse(text string) (string, map[int]Hint) {
	p := &parser{hints: make(map[int]Hint)}
	p.run(text)
	return p.out.String(), p.hints
}

type parser struct {
	out   strings.Builder
	stack []openTag
	hints map[int]Hint

	pendingSilenceMs int
	wordIndex        int
	inWord           bool
	usedApostrophe   bool
}

func (p *parser) run(text string) {
	i := 0
	for i < len(text) {
		if text[i] == '<' {
			consumed := p.consumeTag(text[i:])
			if consumed > 0 {
				i += consumed
				continue
			}
			// Stray '<': dropped, not an error.
			i++
			continue
		}

		p.emit(text[i], i+1 < len(text), byteAt(text, i+1))
		i++
	}
}

func byteAt(s string, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return 0
}

// emit appends one cleaned-text byte and maintains word tracking. A new word
// starts at a letter that does not extend the current word; the active tag
// stack and any pending break silence are recorded against its index.
func (p *parser) emit(c byte, hasNext bool, next byte) {
	switch {
	case isLetter(c):
		if !p.inWord {
			p.startWord()
		}
	case c == '\'' && p.inWord && !p.usedApostrophe && hasNext && isLetter(next):
		// One interior apostrophe keeps a contraction in the same word.
		p.usedApostrophe = true
	default:
		p.inWord = false
		p.usedApostrophe = false
	}

	p.out.WriteByte(c)
}

func (p *parser) startWord() {
	hint := Identity()
	for _, t := range p.stack {
		hint = hint.Merge(t.hint)
	}
	hint.InsertSilenceMs += p.pendingSilenceMs
	p.pendingSilenceMs = 0

	if !hint.IsIdentity() {
		p.hints[p.wordIndex] = hint
	}
	p.wordIndex++
	p.inWord = true
	p.usedApostrophe = false
}

// consumeTag handles text starting with '<'. It returns the number of bytes
// consumed, or 0 when the input is not a well-formed tag.
func (p *parser) consumeTag(s string) int {
	end := strings.IndexByte(s, '>')
	if end < 0 {
		return 0
	}
	if nested := strings.IndexByte(s[1:end], '<'); nested >= 0 {
		return 0
	}

	content := strings.TrimSpace(s[1:end])
	if content == "" {
		return 0
	}

	closing := strings.HasPrefix(content, "/")
	content = strings.TrimPrefix(content, "/")
	content = strings.TrimSuffix(content, "/")

	fields := strings.Fields(content)
	if len(fields) == 0 {
		return 0
	}
	name := strings.ToLower(fields[0])
	attrs := strings.ToLower(strings.Join(fields[1:], " "))

	switch {
	case closing:
		p.popTag(name)
	case name == "break":
		p.pendingSilenceMs += breakSilenceMs(attrs)
	case name == "emphasis" || name == "rate" || name == "pitch":
		p.stack = append(p.stack, openTag{name: name, hint: tagHint(name, attrs)})
	default:
		// Unknown tag: stripped without effect.
	}

	return end + 1
}

// popTag removes the most recent open tag with the given name. A close with
// no matching open is ignored.
func (p *parser) popTag(name string) {
	for i := len(p.stack) - 1; i >= 0; i-- {
		if p.stack[i].name == name {
			p.stack = append(p.stack[:i], p.stack[i+1:]...)
			return
		}
	}
}

// tagHint maps a recognized paired tag and its attribute text to a hint.
// Unparameterized or unrecognized variants contribute the identity hint.
func tagHint(name, attrs string) Hint {
	switch name {
	case "emphasis":
		switch {
		case strings.Contains(attrs, "strong"):
			return emphasisStrong
		case strings.Contains(attrs, "reduced"):
			return emphasisReduced
		default:
			return emphasisDefault
		}
	case "rate":
		switch {
		case strings.Contains(attrs, "slow"):
			return rateSlow
		case strings.Contains(attrs, "fast"):
			return rateFast
		}
	case "pitch":
		switch {
		case strings.Contains(attrs, "high"):
			return pitchHigh
		case strings.Contains(attrs, "low"):
			return pitchLow
		}
	}
	return Identity()
}

// breakSilenceMs extracts the silence duration from a break tag's attribute
// text. A break without a parseable time attribute contributes nothing.
func breakSilenceMs(attrs string) int {
	m := breakTimeRe.FindStringSubmatch(attrs)
	if m == nil {
		return 0
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	if m[2] == "s" {
		value *= 1000
	}
	return int(value)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
