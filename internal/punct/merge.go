package punct

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Merge resolves spacing markers and returns the final text.
//
// Runs of two or more markers vanish. A single marker becomes one space only
// when the previously emitted character is not whitespace and the next token
// exists and does not start with whitespace. The start of the stream counts
// as whitespace, so leading markers never produce a space.
func Merge(tokens []Token) string {
	var b strings.Builder
	b.Grow(len(tokens))

	prevSpace := true
	for i := 0; i < len(tokens); {
		if tokens[i].Kind == Literal {
			text := tokens[i].Text
			b.WriteString(text)
			if text != "" {
				last, _ := utf8.DecodeLastRuneInString(text)
				prevSpace = unicode.IsSpace(last)
			}
			i++
			continue
		}

		run := 0
		for i < len(tokens) && tokens[i].Kind == Marker {
			run++
			i++
		}
		if run != 1 || prevSpace || i == len(tokens) {
			continue
		}
		if next, _ := utf8.DecodeRuneInString(tokens[i].Text); unicode.IsSpace(next) {
			continue
		}
		b.WriteByte(' ')
		prevSpace = true
	}
	return b.String()
}
