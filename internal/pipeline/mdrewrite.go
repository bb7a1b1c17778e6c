package pipeline

import (
	"context"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/alnah/go-clippunct/internal/punct"
)

// markdownParser is safe for concurrent use once built.
var markdownParser = goldmark.New(
	goldmark.WithExtensions(extension.GFM), // Tables, strikethrough, autolinks, task lists
).Parser()

// RewriteMarkdown converts punctuation in the prose of a Markdown document.
// Code spans, code blocks, raw HTML and autolinks are left as written. The
// source is edited in place by byte offset, so formatting is preserved.
//
// Supports context cancellation via goroutine + select pattern since
// goldmark doesn't natively support context.
func RewriteMarkdown(ctx context.Context, source string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	type result struct {
		out     string
		changed bool
	}

	done := make(chan result, 1)
	go func() {
		out, changed := rewriteMarkdown([]byte(source))
		done <- result{out: out, changed: changed}
	}()

	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case r := <-done:
		return r.out, r.changed, nil
	}
}

// textRun is a span of sibling text nodes whose segments touch. goldmark
// splits prose at characters like '[', '<' or '*' that end up literal, and a
// run rejoins those pieces so they convert as the one string they were typed as.
type textRun struct {
	start, stop int
	tail        ast.Node
}

// extends reports whether t continues the run directly after its tail.
func (r textRun) extends(t *ast.Text) bool {
	return r.tail != nil && t.PreviousSibling() == r.tail && t.Segment.Start == r.stop
}

// rewriteMarkdown splices converted text runs into src.
func rewriteMarkdown(src []byte) (string, bool) {
	doc := markdownParser.Parse(text.NewReader(src))

	var b strings.Builder
	last := 0
	changed := false
	var run textRun

	flush := func() {
		start, stop := run.start, run.stop
		pending := run.tail != nil
		run = textRun{}
		if !pending || start < last || stop > len(src) || start >= stop {
			return
		}

		converted, ok := punct.Convert(string(src[start:stop]))
		if !ok {
			return
		}
		b.Write(src[last:start])
		b.WriteString(converted)
		last = stop
		changed = true
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.Kind() {
		case ast.KindCodeSpan, ast.KindCodeBlock, ast.KindFencedCodeBlock,
			ast.KindHTMLBlock, ast.KindRawHTML, ast.KindAutoLink:
			return ast.WalkSkipChildren, nil
		}

		t, ok := n.(*ast.Text)
		if !ok {
			return ast.WalkContinue, nil
		}

		if run.extends(t) {
			run.stop, run.tail = t.Segment.Stop, t
			return ast.WalkContinue, nil
		}
		flush()
		run = textRun{start: t.Segment.Start, stop: t.Segment.Stop, tail: t}
		return ast.WalkContinue, nil
	})
	flush()

	if !changed {
		return "", false
	}
	b.Write(src[last:])
	return b.String(), true
}
