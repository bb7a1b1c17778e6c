package punct

import "strings"

// Convert rewrites full-width punctuation in s.
// Returns false when s is empty or contains no convertible rune; the caller
// must then keep the original content untouched.
func Convert(s string) (string, bool) {
	if !Contains(s) {
		return "", false
	}

	outcomes := make([]Outcome, 0, len(s))
	for _, r := range s {
		outcomes = append(outcomes, Map(r))
	}

	folded, ok := Reduce(outcomes)
	if !ok || !folded.Converted {
		return "", false
	}
	return Merge(folded.Tokens), true
}

// Contains reports whether s has at least one convertible rune.
func Contains(s string) bool {
	return strings.IndexFunc(s, IsConvertible) >= 0
}
