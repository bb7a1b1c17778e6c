package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alnah/go-clippunct/internal/punct"
)

// ruleRow is one printable line of the punctuation table.
type ruleRow struct {
	Source      string `json:"source"`
	CodePoint   string `json:"codePoint"`
	Replacement string `json:"replacement"`
	SpaceBefore bool   `json:"spaceBefore"`
	SpaceAfter  bool   `json:"spaceAfter"`
}

// runRules prints the punctuation table.
func runRules(args []string, env *Environment) error {
	flags, err := parseRulesFlags(args)
	if err != nil {
		return err
	}

	rows := ruleRows(punct.Rules())

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	return printRules(env.Stdout, rows)
}

// ruleRows flattens rules into rows. A lone marker on either side of the
// literal may become a space; a pair never does.
func ruleRows(rules []punct.Rule) []ruleRow {
	rows := make([]ruleRow, 0, len(rules))
	for _, r := range rules {
		before, after := 0, 0
		seenLiteral := false
		for _, t := range r.Tokens {
			switch {
			case t.Kind == punct.Literal:
				seenLiteral = true
			case seenLiteral:
				after++
			default:
				before++
			}
		}
		rows = append(rows, ruleRow{
			Source:      string(r.Source),
			CodePoint:   fmt.Sprintf("U+%04X", r.Source),
			Replacement: r.Replacement(),
			SpaceBefore: before == 1,
			SpaceAfter:  after == 1,
		})
	}
	return rows
}

// printRules writes rows as an aligned table.
func printRules(w io.Writer, rows []ruleRow) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SOURCE\tCODE\tREPLACEMENT\tSPACING")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%q\t%s\n", r.Source, r.CodePoint, r.Replacement, spacingLabel(r))
	}
	return tw.Flush()
}

// spacingLabel describes where a replacement may gain a space.
func spacingLabel(r ruleRow) string {
	switch {
	case r.SpaceBefore && r.SpaceAfter:
		return "both"
	case r.SpaceBefore:
		return "before"
	case r.SpaceAfter:
		return "after"
	}
	return "-"
}
