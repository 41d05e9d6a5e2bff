// Package text rewrites raw input into fully spelled-out, speakable text
// and provides the number-to-words readings shared by its expansion stages.
package text

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Options control which normalization stages run. The zero value disables
// everything; use DefaultOptions for the full pipeline.
type Options struct {
	ExpandAbbreviations bool
	ExpandNumbers       bool
}

// DefaultOptions enables every normalization stage.
func DefaultOptions() Options {
	return Options{
		ExpandAbbreviations: true,
		ExpandNumbers:       true,
	}
}

// Normalizer rewrites raw text into speakable text. It is stateless apart
// from its options and safe for concurrent use.
type Normalizer struct {
	opts Options
}

// NewNormalizer returns a Normalizer with the given options.
func NewNormalizer(opts Options) *Normalizer {
	return &Normalizer{opts: opts}
}

// Normalize runs the full pipeline with default options.
func Normalize(s string) string {
	return NewNormalizer(DefaultOptions()).Normalize(s)
}

// Normalize rewrites s stage by stage: punctuation folding, phone
// numbers, symbol expansion, abbreviations, dates, currency, percentages,
// list numbering, ordinals, cardinals, whitespace collapsing. Stage order
// is significant; phone numbers run before symbol expansion so a leading
// "+1" keeps its country-code meaning, and the generic cardinal pass runs
// last so it cannot clobber the more specific numeric forms.
func (n *Normalizer) Normalize(s string) string {
	s = foldPunctuation(s)
	if n.opts.ExpandNumbers {
		s = expandPhoneNumbers(s)
	}
	s = expandSymbols(s)
	if n.opts.ExpandAbbreviations {
		s = expandAbbreviations(s)
	}
	if n.opts.ExpandNumbers {
		s = expandDates(s)
		s = expandCurrency(s)
		s = expandPercentages(s)
		s = expandListNumbers(s)
		s = expandOrdinals(s)
		s = expandCardinals(s)
	}
	return collapseWhitespace(s)
}

// ---------------------------------------------------------------------------
// Stage 1: unicode punctuation folding
// ---------------------------------------------------------------------------

var punctuationFolder = strings.NewReplacer(
	"—", " , ", // em dash
	"–", " , ", // en dash
	"…", " ... ",
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
)

func foldPunctuation(s string) string {
	return punctuationFolder.Replace(s)
}

// ---------------------------------------------------------------------------
// Stage 2: phone number expansion (NANP forms)
// ---------------------------------------------------------------------------

var phoneRe = regexp.MustCompile(`(?:\+?1[-. ])?\(?\d{3}\)?[-. ]\d{3}[-. ]\d{4}\b`)

func expandPhoneNumbers(s string) string {
	return phoneRe.ReplaceAllStringFunc(s, func(match string) string {
		var digits strings.Builder
		for _, r := range match {
			if r >= '0' && r <= '9' {
				digits.WriteRune(r)
			}
		}
		// Each digit is spelled individually, with "oh" for zero.
		spoken, ok := SpeakDigits(digits.String(), true)
		if !ok {
			return match
		}
		return spoken
	})
}

// ---------------------------------------------------------------------------
// Stage 3: symbol expansion, longest pattern first
// ---------------------------------------------------------------------------

var symbolExpansions = []struct {
	symbol    string
	expansion string
}{
	{"°C", " degrees Celsius "},
	{"°", " degrees "},
	{"&", " and "},
	{"@", " at "},
	{"#", " number "},
	{"+", " plus "},
}

func expandSymbols(s string) string {
	for _, e := range symbolExpansions {
		s = strings.ReplaceAll(s, e.symbol, e.expansion)
	}
	return s
}

// ---------------------------------------------------------------------------
// Stage 4: abbreviation expansion
// ---------------------------------------------------------------------------

var abbreviations = map[string]string{
	"mr.":     "mister",
	"mrs.":    "missus",
	"ms.":     "miss",
	"dr.":     "doctor",
	"prof.":   "professor",
	"capt.":   "captain",
	"gen.":    "general",
	"lt.":     "lieutenant",
	"sgt.":    "sergeant",
	"col.":    "colonel",
	"jr.":     "junior",
	"sr.":     "senior",
	"st.":     "saint",
	"ave.":    "avenue",
	"blvd.":   "boulevard",
	"dept.":   "department",
	"etc.":    "et cetera",
	"vs.":     "versus",
	"approx.": "approximately",
}

type abbreviationPattern struct {
	re        *regexp.Regexp
	expansion string
}

var abbreviationPatterns = buildAbbreviationPatterns()

func buildAbbreviationPatterns() []abbreviationPattern {
	keys := make([]string, 0, len(abbreviations))
	for k := range abbreviations {
		keys = append(keys, k)
	}
	// Longest key first so a longer abbreviation is never shadowed by a
	// shorter one matching its prefix.
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	patterns := make([]abbreviationPattern, 0, len(keys))
	for _, k := range keys {
		patterns = append(patterns, abbreviationPattern{
			re:        regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(k)),
			expansion: abbreviations[k],
		})
	}
	return patterns
}

var periodRunRe = regexp.MustCompile(`\.{2,}`)

func expandAbbreviations(s string) string {
	for _, p := range abbreviationPatterns {
		s = p.re.ReplaceAllLiteralString(s, p.expansion)
	}
	// An abbreviation at sentence end leaves exactly two periods behind.
	// Runs of three or more are ellipses and must survive.
	return periodRunRe.ReplaceAllStringFunc(s, func(m string) string {
		if len(m) == 2 {
			return "."
		}
		return m
	})
}

// ---------------------------------------------------------------------------
// Stage 5: date expansion
// ---------------------------------------------------------------------------

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var (
	slashDateRe   = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4}|\d{2})\b`)
	writtenDateRe = regexp.MustCompile(
		`\b(\d{1,2})\s+` +
			`((?i:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|` +
			`Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:tember)?|Oct(?:ober)?|` +
			`Nov(?:ember)?|Dec(?:ember)?))\.?,?\s+(\d{4})\b`,
	)
)

func expandDates(s string) string {
	s = slashDateRe.ReplaceAllStringFunc(s, func(match string) string {
		m := slashDateRe.FindStringSubmatch(match)
		month, day, year, ok := parseDateParts(m[1], m[2], m[3])
		if !ok {
			return match
		}
		return monthNames[month-1] + " " + day + ", " + year
	})

	s = writtenDateRe.ReplaceAllStringFunc(s, func(match string) string {
		m := writtenDateRe.FindStringSubmatch(match)
		month, ok := monthFromName(m[2])
		if !ok {
			return match
		}
		day, ok := speakDayOrdinal(m[1])
		if !ok {
			return match
		}
		year, ok := speakYearString(m[3])
		if !ok {
			return match
		}
		return "the " + day + " of " + monthNames[month-1] + ", " + year
	})

	return s
}

func parseDateParts(monthStr, dayStr, yearStr string) (int, string, string, bool) {
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return 0, "", "", false
	}
	day, ok := speakDayOrdinal(dayStr)
	if !ok {
		return 0, "", "", false
	}
	year, ok := speakYearString(yearStr)
	if !ok {
		return 0, "", "", false
	}
	return month, day, year, true
}

func speakDayOrdinal(dayStr string) (string, bool) {
	day, err := strconv.ParseInt(dayStr, 10, 64)
	if err != nil || day < 1 || day > 31 {
		return "", false
	}
	return SpeakOrdinal(day)
}

func speakYearString(yearStr string) (string, bool) {
	year, err := strconv.ParseInt(yearStr, 10, 64)
	if err != nil {
		return "", false
	}
	return SpeakYear(year)
}

func monthFromName(name string) (int, bool) {
	prefix := strings.ToLower(name)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	for i, full := range monthNames {
		if strings.HasPrefix(strings.ToLower(full), prefix) {
			return i + 1, true
		}
	}
	return 0, false
}

// ---------------------------------------------------------------------------
// Stage 6: currency expansion
// ---------------------------------------------------------------------------

type currencyPattern struct {
	re          *regexp.Regexp
	unit, units string
	cent, cents string
}

var currencyPatterns = []currencyPattern{
	{regexp.MustCompile(`\$(\d+(?:,\d{3})*)(?:\.(\d{1,2}))?`), "dollar", "dollars", "cent", "cents"},
	{regexp.MustCompile(`£(\d+(?:,\d{3})*)(?:\.(\d{1,2}))?`), "pound", "pounds", "penny", "pence"},
	{regexp.MustCompile(`€(\d+(?:,\d{3})*)(?:\.(\d{1,2}))?`), "euro", "euros", "cent", "cents"},
}

func expandCurrency(s string) string {
	for _, c := range currencyPatterns {
		s = c.re.ReplaceAllStringFunc(s, func(match string) string {
			m := c.re.FindStringSubmatch(match)
			spoken, ok := speakCurrencyAmount(m[1], m[2], c)
			if !ok {
				return match
			}
			return spoken
		})
	}
	return s
}

func speakCurrencyAmount(amountStr, centStr string, c currencyPattern) (string, bool) {
	amount, err := strconv.ParseInt(strings.ReplaceAll(amountStr, ",", ""), 10, 64)
	if err != nil {
		return "", false
	}
	spoken, ok := SpeakInt(amount)
	if !ok {
		return "", false
	}

	unit := c.units
	if amount == 1 {
		unit = c.unit
	}
	out := spoken + " " + unit

	if centStr == "" {
		return out, true
	}
	if len(centStr) == 1 {
		centStr += "0" // ".5" means fifty, not five
	}
	cents, err := strconv.ParseInt(centStr, 10, 64)
	if err != nil {
		return "", false
	}
	if cents == 0 {
		return out, true
	}

	centSpoken, ok := SpeakInt(cents)
	if !ok {
		return "", false
	}
	centUnit := c.cents
	if cents == 1 {
		centUnit = c.cent
	}
	return out + " and " + centSpoken + " " + centUnit, true
}

// ---------------------------------------------------------------------------
// Stage 7: percentage expansion
// ---------------------------------------------------------------------------

var percentRe = regexp.MustCompile(`(\d+(?:\.\d+)?)%`)

func expandPercentages(s string) string {
	return percentRe.ReplaceAllStringFunc(s, func(match string) string {
		m := percentRe.FindStringSubmatch(match)
		spoken, ok := SpeakNumber(m[1])
		if !ok {
			return match
		}
		return spoken + " percent"
	})
}

// ---------------------------------------------------------------------------
// Stage 8: list numbering
// ---------------------------------------------------------------------------

var listNumberRe = regexp.MustCompile(`(?m)^([ \t]*)(\d+)\.(?:[ \t]+|[ \t]*$)`)

func expandListNumbers(s string) string {
	return listNumberRe.ReplaceAllString(s, "${1}number ${2}, ")
}

// ---------------------------------------------------------------------------
// Stage 9: ordinal expansion
// ---------------------------------------------------------------------------

var ordinalRe = regexp.MustCompile(`(?i)\b(\d+)(?:st|nd|rd|th)\b`)

func expandOrdinals(s string) string {
	return ordinalRe.ReplaceAllStringFunc(s, func(match string) string {
		m := ordinalRe.FindStringSubmatch(match)
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return match
		}
		spoken, ok := SpeakOrdinal(n)
		if !ok {
			return match
		}
		return spoken
	})
}

// ---------------------------------------------------------------------------
// Stage 10: cardinal expansion (last numeric stage)
// ---------------------------------------------------------------------------

var cardinalRe = regexp.MustCompile(`\b\d+(?:,\d{3})*(?:\.\d+)?\b`)

func expandCardinals(s string) string {
	return cardinalRe.ReplaceAllStringFunc(s, func(match string) string {
		if year, err := strconv.ParseInt(match, 10, 64); err == nil && len(match) == 4 {
			// Bare 4-digit values get the year-aware reading.
			spoken, ok := SpeakYear(year)
			if !ok {
				return match
			}
			return spoken
		}

		spoken, ok := SpeakNumber(strings.ReplaceAll(match, ",", ""))
		if !ok {
			return match
		}
		return spoken
	})
}

// ---------------------------------------------------------------------------
// Stage 11: whitespace normalization
// ---------------------------------------------------------------------------

var whitespaceRe = regexp.MustCompile(`\s+`)

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllLiteralString(s, " "))
}
