package chunker

import "strings"

const (
	DefaultMaxLen  = 1000
	DefaultOverlap = 200
)

// Split cuts text into chunks of at most maxLen runes. Consecutive chunks
// share exactly overlap runes: each chunk starts overlap runes before the
// previous cut point, so nothing near a cut is lost to retrieval. Cuts prefer
// a paragraph, sentence or word boundary inside a bounded tail window and
// fall back to a hard cut when the window has none.
//
// Pure function. Blank text yields nil; text that fits in one chunk is
// returned as-is.
func Split(text string, maxLen, overlap int) []string {
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}
	if overlap < 0 || overlap >= maxLen {
		overlap = 0
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}
	runes := []rune(text)
	if len(runes) <= maxLen {
		return []string{text}
	}

	// keep the window short enough that every cut still advances past the
	// overlap region
	window := maxLen / 5
	if window > maxLen-overlap-1 {
		window = maxLen - overlap - 1
	}

	var chunks []string
	start := 0
	for {
		end := start + maxLen
		if end >= len(runes) {
			chunks = append(chunks, string(runes[start:]))
			break
		}
		cut := boundaryCut(runes, end, window)
		chunks = append(chunks, string(runes[start:cut]))
		start = cut - overlap
	}
	return chunks
}

// boundaryCut walks back from end looking for the best boundary within
// window runes: paragraph break, then sentence end, then whitespace. Returns
// the index just past the boundary, or end when no boundary is found.
func boundaryCut(runes []rune, end, window int) int {
	low := end - window
	sentence, word := -1, -1
	for i := end - 1; i >= low; i-- {
		switch runes[i] {
		case '\n':
			if i > 0 && runes[i-1] == '\n' {
				return i + 1 // paragraph break
			}
			if word < 0 {
				word = i + 1
			}
		case '.', '!', '?':
			if sentence < 0 && i+1 < len(runes) && isSpace(runes[i+1]) {
				sentence = i + 1
			}
		case ' ', '\t':
			if word < 0 {
				word = i + 1
			}
		}
	}
	if sentence >= 0 {
		return sentence
	}
	if word >= 0 {
		return word
	}
	return end
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t' || r == '\r'
}
