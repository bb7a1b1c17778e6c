package punct

// Reduce folds outcomes left to right into a single outcome.
// Any Converted operand makes the result Converted; only Raw with Raw stays Raw.
// Returns false for an empty sequence.
func Reduce(outcomes []Outcome) (Outcome, bool) {
	if len(outcomes) == 0 {
		return Outcome{}, false
	}

	n := 0
	for _, o := range outcomes {
		n += len(o.Tokens)
	}

	acc := Outcome{Tokens: make([]Token, 0, n)}
	for _, o := range outcomes {
		acc = concat(acc, o)
	}
	return acc, true
}

// concat appends b to a. The variant is closed under concatenation.
func concat(a, b Outcome) Outcome {
	return Outcome{
		Converted: a.Converted || b.Converted,
		Tokens:    append(a.Tokens, b.Tokens...),
	}
}
