// Package clippunct converts CJK full-width punctuation to half-width ASCII.
//
// # Quick Start
//
// Create a converter and convert plain text:
//
//	conv := clippunct.NewConverter()
//	out, changed := conv.Text("你好，世界！")
//	// out == "你好, 世界!", changed == true
//
// Unchanged input reports changed == false and callers keep their original
// content, so documents without full-width punctuation are never rewritten.
//
// # Conversion Pipeline
//
// Every string goes through the same stages:
//
//  1. Map: each rune becomes either itself or a converted token sequence
//  2. Reduce: outcomes fold left into one token stream
//  3. Merge: spacing markers collapse into at most one ASCII space
//
// Markup formats apply the pipeline to each text run independently:
//
//   - HTML: every text node of the parsed tree (tags, attributes and comments
//     are preserved)
//   - Markdown: every prose segment (code spans, code blocks, raw HTML and
//     autolinks are left as written)
//
// # Clipboard Snapshots
//
// Convert handles the text and HTML flavours of one clipboard snapshot together:
//
//	res, err := conv.Convert(ctx, clippunct.Input{
//	    Text: "你好，世界",
//	    HTML: []byte("<p>你好，世界</p>"),
//	})
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv := clippunct.NewConverter(
//	    clippunct.WithSkipTags("code", "pre"),
//	    clippunct.WithMaxInputSize(4 << 20),
//	    clippunct.WithLogger(logger),
//	)
//
// A Converter holds no mutable state and is safe for concurrent use.
package clippunct
