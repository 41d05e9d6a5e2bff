package text

import "strings"

// ChunkBySentence splits text into chunks at sentence boundaries (., !, ?),
// grouping consecutive sentences together while staying within maxChars per
// chunk. If maxChars is 0, no splitting is performed. Sentences that
// individually exceed maxChars are kept intact as a single chunk.
func ChunkBySentence(text string, maxChars int) []string {
	if maxChars <= 0 {
		return []string{text}
	}

	sentences := splitSentences(text)
	if len(sentences) <= 1 {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder

	for _, s := range sentences {
		if current.Len() == 0 {
			current.WriteString(s)
			continue
		}
		// Would appending this sentence (with a space separator) exceed the limit?
		if current.Len()+1+len(s) > maxChars {
			chunks = append(chunks, current.String())
			current.Reset()
			current.WriteString(s)
		} else {
			current.WriteByte(' ')
			current.WriteString(s)
		}
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}

// splitSentences splits text on sentence-ending punctuation (., !, ?),
// keeping the terminators attached to their sentence. A '.' between two
// digits is a decimal point, not a boundary, and a run of terminators
// ("?!", "...") counts as a single boundary. Empty segments are dropped.
func splitSentences(text string) []string {
	var sentences []string
	start := 0

	i := 0
	for i < len(text) {
		c := text[i]
		if !isTerminator(c) {
			i++
			continue
		}
		if c == '.' && i > 0 && i+1 < len(text) && isDigit(text[i-1]) && isDigit(text[i+1]) {
			i++
			continue
		}

		// Consume the whole terminator run.
		end := i + 1
		for end < len(text) && isTerminator(text[end]) {
			end++
		}

		s := strings.TrimSpace(text[start:end])
		if s != "" {
			sentences = append(sentences, s)
		}
		start = end
		i = end
	}

	if start < len(text) {
		s := strings.TrimSpace(text[start:])
		if s != "" {
			sentences = append(sentences, s)
		}
	}

	return sentences
}

func isTerminator(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
