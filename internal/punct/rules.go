package punct

import "sort"

// TokenKind distinguishes literal text from spacing markers.
type TokenKind uint8

const (
	Literal TokenKind = iota // text emitted verbatim
	Marker                   // optional word-boundary space
)

// Token is one element of a conversion stream.
type Token struct {
	Kind TokenKind
	Text string // empty for markers
}

// marker is the shared spacing marker token.
var marker = Token{Kind: Marker}

// Rule maps one full-width code point to its replacement tokens.
type Rule struct {
	Source rune
	Tokens []Token
}

// Replacement returns the literal text of the rule without markers.
func (r Rule) Replacement() string {
	var s string
	for _, t := range r.Tokens {
		if t.Kind == Literal {
			s += t.Text
		}
	}
	return s
}

// Outcome is the result of mapping one rune, or of reducing many.
type Outcome struct {
	Converted bool
	Tokens    []Token
}

// rule builds a token list with before markers, the literal, then after markers.
func rule(before int, literal string, after int) []Token {
	tokens := make([]Token, 0, before+1+after)
	for i := 0; i < before; i++ {
		tokens = append(tokens, marker)
	}
	tokens = append(tokens, Token{Kind: Literal, Text: literal})
	for i := 0; i < after; i++ {
		tokens = append(tokens, marker)
	}
	return tokens
}

// table is read-only after init.
var table = map[rune][]Token{
	'》': rule(1, ">", 1),
	'《': rule(1, "<", 2),
	'：': rule(2, ":", 1),
	'；': rule(2, ";", 1),
	'“': rule(1, "\"", 2),
	'”': rule(2, "\"", 1),
	'！': rule(2, "!", 1),
	'…': rule(2, "...", 2),
	'（': rule(1, "(", 2),
	'）': rule(2, ")", 1),
	'【': rule(1, "[", 2),
	'】': rule(2, "]", 1),
	'、': rule(2, ",", 1),
	'。': rule(2, ".", 1),
	'，': rule(2, ",", 1),
	'？': rule(2, "?", 1),
}

// Map returns the conversion outcome for a single rune.
// Runes without a rule pass through as Raw.
func Map(r rune) Outcome {
	if tokens, ok := table[r]; ok {
		return Outcome{Converted: true, Tokens: tokens}
	}
	return Outcome{Tokens: []Token{{Kind: Literal, Text: string(r)}}}
}

// IsConvertible reports whether r has a conversion rule.
func IsConvertible(r rune) bool {
	_, ok := table[r]
	return ok
}

// Rules returns a copy of the rule table ordered by source code point.
func Rules() []Rule {
	rules := make([]Rule, 0, len(table))
	for src, tokens := range table {
		cp := make([]Token, len(tokens))
		copy(cp, tokens)
		rules = append(rules, Rule{Source: src, Tokens: cp})
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].Source < rules[j].Source })
	return rules
}
