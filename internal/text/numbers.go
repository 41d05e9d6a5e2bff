package text

import (
	"strconv"
	"strings"
)

var onesWords = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var tensWords = map[int64]string{
	20: "twenty",
	30: "thirty",
	40: "forty",
	50: "fifty",
	60: "sixty",
	70: "seventy",
	80: "eighty",
	90: "ninety",
}

var irregularOrdinals = map[int64]string{
	1:    "first",
	2:    "second",
	3:    "third",
	4:    "fourth",
	5:    "fifth",
	6:    "sixth",
	7:    "seventh",
	8:    "eighth",
	9:    "ninth",
	10:   "tenth",
	11:   "eleventh",
	12:   "twelfth",
	13:   "thirteenth",
	14:   "fourteenth",
	15:   "fifteenth",
	16:   "sixteenth",
	17:   "seventeenth",
	18:   "eighteenth",
	19:   "nineteenth",
	20:   "twentieth",
	30:   "thirtieth",
	40:   "fortieth",
	50:   "fiftieth",
	60:   "sixtieth",
	70:   "seventieth",
	80:   "eightieth",
	90:   "ninetieth",
	100:  "hundredth",
	1000: "thousandth",
}

// ordinalSuffixes rewrites the final word of a cardinal reading into its
// ordinal form for values >= 100 without an irregular entry.
var ordinalSuffixes = map[string]string{
	"one":    "first",
	"two":    "second",
	"three":  "third",
	"five":   "fifth",
	"eight":  "eighth",
	"nine":   "ninth",
	"twelve": "twelfth",
}

// SpeakInt renders a non-negative integer as its spoken cardinal form.
// Values >= 10^12 are unsupported and return false.
func SpeakInt(n int64) (string, bool) {
	if n < 0 || n >= 1_000_000_000_000 {
		return "", false
	}
	return speakInt(n), true
}

func speakInt(n int64) string {
	switch {
	case n < 20:
		return onesWords[n]
	case n < 100:
		tens := n / 10 * 10
		if n%10 == 0 {
			return tensWords[tens]
		}
		return tensWords[tens] + " " + onesWords[n%10]
	case n < 1_000:
		return speakUnit(n, 100, "hundred")
	case n < 1_000_000:
		return speakUnit(n, 1_000, "thousand")
	case n < 1_000_000_000:
		return speakUnit(n, 1_000_000, "million")
	default:
		return speakUnit(n, 1_000_000_000, "billion")
	}
}

func speakUnit(n, unit int64, name string) string {
	s := speakInt(n/unit) + " " + name
	if rem := n % unit; rem != 0 {
		s += " " + speakInt(rem)
	}
	return s
}

// SpeakYear renders a number the way years are read aloud. Four-digit values
// in [1000, 2099] get the century-pair reading (1995 -> "nineteen ninety
// five", 1800 -> "eighteen hundred"), except 2000-2009 which read as
// "two thousand [N]". Anything else falls back to the cardinal reading.
func SpeakYear(n int64) (string, bool) {
	if n < 1000 || n > 2099 {
		return SpeakInt(n)
	}

	if n >= 2000 && n <= 2009 {
		if n == 2000 {
			return "two thousand", true
		}
		return "two thousand " + speakInt(n%100), true
	}

	century := n / 100
	rem := n % 100
	if rem == 0 {
		return speakInt(century) + " hundred", true
	}
	return speakInt(century) + " " + speakInt(rem), true
}

// SpeakOrdinal renders a positive integer as its spoken ordinal form
// ("21" -> "twenty first"). The same 10^12 bound as SpeakInt applies.
func SpeakOrdinal(n int64) (string, bool) {
	if n <= 0 || n >= 1_000_000_000_000 {
		return "", false
	}

	if word, ok := irregularOrdinals[n]; ok {
		return word, true
	}

	if n < 100 {
		tens := n / 10 * 10
		ones := n % 10
		return tensWords[tens] + " " + irregularOrdinals[ones], true
	}

	// Compose from the cardinal reading, rewriting only the final word.
	cardinal := speakInt(n)
	words := strings.Split(cardinal, " ")
	last := words[len(words)-1]

	switch {
	case strings.HasSuffix(last, "ty"):
		last = strings.TrimSuffix(last, "ty") + "tieth"
	default:
		if repl, ok := ordinalSuffixes[last]; ok {
			last = repl
		} else {
			last += "th"
		}
	}

	words[len(words)-1] = last
	return strings.Join(words, " "), true
}

// SpeakOrdinalString parses a digit string and renders it as a spoken
// ordinal. Returns false when the input is not a parseable positive integer.
func SpeakOrdinalString(s string) (string, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return "", false
	}
	return SpeakOrdinal(n)
}

// SpeakNumber renders a decimal digit string (optionally containing a single
// '.') as words: the integer part as a cardinal, the fraction digit by
// digit. Returns false when the input cannot be parsed.
func SpeakNumber(s string) (string, bool) {
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return "", false
	}
	spoken, ok := SpeakInt(n)
	if !ok {
		return "", false
	}

	if !hasFrac || fracPart == "" {
		return spoken, true
	}

	digits, ok := SpeakDigits(fracPart, false)
	if !ok {
		return "", false
	}
	return spoken + " point " + digits, true
}

// SpeakDigits spells a digit string one digit at a time. When zeroAsOh is
// set, '0' reads "oh" (phone number convention). Returns false if s contains
// a non-digit.
func SpeakDigits(s string, zeroAsOh bool) (string, bool) {
	words := make([]string, 0, len(s))
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", false
		}
		if r == '0' && zeroAsOh {
			words = append(words, "oh")
			continue
		}
		words = append(words, onesWords[r-'0'])
	}
	return strings.Join(words, " "), true
}
