package search

import (
	"strings"
	"unicode"
)

// HighlightGenre wraps every occurrence of the searched genre inside the
// book's genre text with <mark> tags, matching case-insensitively while
// keeping the original casing of the text. Either input being empty
// returns the text unchanged. Matching runs rune by rune, byte offsets
// into a lowercased copy would drift on case pairs of unequal length.
func HighlightGenre(text, searched string) string {
	if text == "" || searched == "" {
		return text
	}

	textRunes := []rune(text)
	searchedRunes := []rune(searched)
	n := len(searchedRunes)

	var b strings.Builder
	start := 0
	for i := 0; i+n <= len(textRunes); {
		if !foldEqual(textRunes[i:i+n], searchedRunes) {
			i++
			continue
		}
		b.WriteString(string(textRunes[start:i]))
		b.WriteString("<mark>")
		b.WriteString(string(textRunes[i : i+n]))
		b.WriteString("</mark>")
		i += n
		start = i
	}
	if start == 0 {
		return text
	}
	b.WriteString(string(textRunes[start:]))
	return b.String()
}

func foldEqual(a, b []rune) bool {
	for i := range a {
		if unicode.ToLower(a[i]) != unicode.ToLower(b[i]) {
			return false
		}
	}
	return true
}
