// Package punct converts CJK full-width punctuation to half-width ASCII.
//
// Conversion runs in three stages:
//
//  1. Map turns every rune into an Outcome. Recognized punctuation becomes a
//     Converted token list (literals flanked by spacing markers), anything
//     else stays Raw.
//  2. Reduce folds the per-rune outcomes into one. The fold is Converted as
//     soon as a single rune was converted.
//  3. Merge resolves the spacing markers: a lone marker between two
//     non-space characters becomes one space, runs of two or more markers
//     and markers next to whitespace or a boundary disappear.
//
// Convert chains the three stages and reports false when nothing changed,
// so callers can skip any write-back.
package punct
