package phoneme

// letterNames spells each letter as its ARPAbet name, used when a token is
// treated as an acronym.
var letterNames = map[rune][]string{
	'a': {"EY1"},
	'b': {"B", "IY1"},
	'c': {"S", "IY1"},
	'd': {"D", "IY1"},
	'e': {"IY1"},
	'f': {"EH1", "F"},
	'g': {"JH", "IY1"},
	'h': {"EY1", "CH"},
	'i': {"AY1"},
	'j': {"JH", "EY1"},
	'k': {"K", "EY1"},
	'l': {"EH1", "L"},
	'm': {"EH1", "M"},
	'n': {"EH1", "N"},
	'o': {"OW1"},
	'p': {"P", "IY1"},
	'q': {"K", "Y", "UW1"},
	'r': {"AA1", "R"},
	's': {"EH1", "S"},
	't': {"T", "IY1"},
	'u': {"Y", "UW1"},
	'v': {"V", "IY1"},
	'w': {"D", "AH1", "B", "AH0", "L", "Y", "UW1"},
	'x': {"EH1", "K", "S"},
	'y': {"W", "AY1"},
	'z': {"Z", "IY1"},
}

// contractionExpansions maps exact contraction forms and contraction
// suffixes to their spelled-out expansions. Exact forms take priority over
// suffix forms during lookup.
var contractionExact = map[string]string{
	"can't": "cannot",
}

// contractionSuffixes is checked longest-suffix-first.
var contractionSuffixes = []struct {
	suffix    string
	expansion string
}{
	{"n't", " not"},
	{"'re", " are"},
	{"'ve", " have"},
	{"'ll", " will"},
	{"'d", " would"},
	{"'m", " am"},
}

// g2pCluster is a multi-letter grapheme cluster with its phoneme reading.
// Clusters are tried in order before single-letter rules.
type g2pCluster struct {
	graphemes string
	phonemes  []string
}

var g2pClusters = []g2pCluster{
	{"tion", []string{"SH", "AH0", "N"}},
	{"sion", []string{"ZH", "AH0", "N"}},
	{"ch", []string{"CH"}},
	{"sh", []string{"SH"}},
	{"th", []string{"TH"}},
	{"ph", []string{"F"}},
	{"ng", []string{"NG"}},
	{"qu", []string{"K", "W"}},
	{"ck", []string{"K"}},
}

// g2pSingle maps single letters to phonemes for the rule-based fallback.
// Vowels use their default stressed reading.
var g2pSingle = map[rune][]string{
	'a': {"AE1"},
	'b': {"B"},
	'c': {"K"},
	'd': {"D"},
	'e': {"EH1"},
	'f': {"F"},
	'g': {"G"},
	'h': {"HH"},
	'i': {"IH1"},
	'j': {"JH"},
	'k': {"K"},
	'l': {"L"},
	'm': {"M"},
	'n': {"N"},
	'o': {"AA1"},
	'p': {"P"},
	'q': {"K"},
	'r': {"R"},
	's': {"S"},
	't': {"T"},
	'u': {"AH1"},
	'v': {"V"},
	'w': {"W"},
	'x': {"K", "S"},
	'y': {"IY1"},
	'z': {"Z"},
}

// heteronymRule selects a pronunciation variant index from the surrounding
// lowercase word context.
type heteronymRule func(prev, next string) int

// heteronymRules keys word-specific variant selection by the dictionary
// word. Words without a rule always use variant 0.
var heteronymRules = map[string]heteronymRule{
	"read": func(prev, next string) int {
		switch prev {
		case "yesterday", "ago", "last", "was", "were", "had":
			return 1 // past tense
		case "to", "will", "can", "should", "might", "must":
			return 0
		}
		switch next {
		case "yesterday", "ago":
			return 1
		case "book", "chapter":
			return 0
		}
		return 0
	},
	"lead": func(prev, next string) int {
		switch next {
		case "pipe", "paint", "poisoning":
			return 1 // the metal
		}
		if prev == "to" {
			return 0 // verb
		}
		return 0
	},
	"record": func(prev, _ string) int {
		switch prev {
		case "to", "will", "can":
			return 1 // verb
		}
		return 0 // noun
	},
}

// romanValues gives the subtractive-notation digit values for roman
// numeral parsing.
var romanValues = map[rune]int64{
	'I': 1,
	'V': 5,
	'X': 10,
	'L': 50,
	'C': 100,
	'D': 500,
	'M': 1000,
}
