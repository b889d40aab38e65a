package serviceImp

import (
	"strings"
	"unicode"
)

// splitText slides a window of at most size runes over the content, stepping
// back overlap runes between chunks. Window ends snap to the nearest natural
// boundary inside the window (paragraph break, else sentence end, else
// whitespace) and only hard-split when none exists.
func splitText(content string, size, overlap int) []string {
	if size <= 0 {
		size = 1000
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= size {
		overlap = size / 4
	}
	if strings.TrimSpace(content) == "" {
		return nil
	}

	runes := []rune(content)
	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + size
		if end >= len(runes) {
			chunks = append(chunks, string(runes[start:]))
			break
		}
		end = breakPoint(runes, start, end)
		chunks = append(chunks, string(runes[start:end]))
		next := end - overlap
		if next <= start {
			// overlap would not advance the window; skip it
			next = end
		}
		start = next
	}
	return chunks
}

func breakPoint(runes []rune, start, end int) int {
	// paragraph break
	for i := end - 1; i > start; i-- {
		if runes[i] == '\n' && runes[i-1] == '\n' {
			return i + 1
		}
	}
	// sentence end
	for i := end - 1; i > start; i-- {
		if isSentenceEnd(runes[i]) && (i+1 >= end || unicode.IsSpace(runes[i+1])) {
			return i + 1
		}
	}
	// word boundary
	for i := end - 1; i > start; i-- {
		if unicode.IsSpace(runes[i]) {
			return i + 1
		}
	}
	return end
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
