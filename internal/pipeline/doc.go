// Package pipeline applies punctuation conversion to structured documents.
//
// This package handles the markup-aware stages:
//   - HTML: parse with golang.org/x/net/html, index the tree into an arena,
//     convert every text node in document order, render only on change
//   - Markdown: parse with goldmark, convert prose text segments and splice
//     them back into the original source
//
// Character-level conversion lives in internal/punct. Text in separate nodes
// is converted independently: spacing is never merged across element
// boundaries.
package pipeline
