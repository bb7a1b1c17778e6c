package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-clippunct/internal/punct"
)

// ErrParse indicates the markup could not be parsed.
var ErrParse = errors.New("failed to parse HTML")

// HTMLOptions configures RewriteHTML.
type HTMLOptions struct {
	// SkipTags lists element names whose descendant text is left untouched.
	SkipTags []string
}

// RewriteHTML converts the punctuation of every text node in markup.
// Tags, attributes, comments and the doctype are preserved.
//
// Returns changed=false when no text node was converted; the caller keeps the
// original markup so untouched documents are never re-serialized.
func RewriteHTML(markup []byte, opts HTMLOptions) (out string, changed bool, err error) {
	if !utf8.Valid(markup) {
		return "", false, fmt.Errorf("%w: invalid UTF-8", ErrParse)
	}

	// A leading BOM would parse as body text; it is set aside and restored on
	// output.
	body, bom := bytes.CutPrefix(markup, utf8BOM)

	doc, isFragment, err := parseHTML(body)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrParse, err)
	}

	skip := make(map[string]bool, len(opts.SkipTags))
	for _, tag := range opts.SkipTags {
		skip[strings.ToLower(tag)] = true
	}

	tree := newArena(doc)
	tree.walk(rootID, func(id int, n *html.Node) bool {
		switch n.Type {
		case html.ElementNode:
			return !skip[n.Data]
		case html.TextNode:
			if converted, ok := punct.Convert(n.Data); ok {
				tree.setText(id, converted)
				changed = true
			}
		}
		return true
	})

	if !changed {
		return "", false, nil
	}

	// A render failure drops the whole edit; no partial document is emitted.
	rendered, err := renderHTML(doc, isFragment)
	if err != nil {
		return "", false, nil
	}
	if bom {
		rendered = string(utf8BOM) + rendered
	}
	return rendered, true, nil
}

var utf8BOM = []byte("\ufeff")

// parseHTML parses markup, handling both full documents and fragments.
// Returns the parsed node and whether it was a fragment.
func parseHTML(markup []byte) (*html.Node, bool, error) {
	if isFullDocument(markup) {
		doc, err := html.Parse(bytes.NewReader(markup))
		return doc, false, err
	}

	// Fragment: parse with body context to avoid wrapping
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(bytes.NewReader(markup), context)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, true, nil
}

// isFullDocument reports whether markup opens with a doctype or an <html> tag
// once leading whitespace and comments are skipped.
func isFullDocument(markup []byte) bool {
	rest := markup
	for {
		rest = bytes.TrimLeft(rest, " \t\r\n\f")
		if !bytes.HasPrefix(rest, commentOpen) {
			break
		}
		end := bytes.Index(rest[len(commentOpen):], commentClose)
		if end < 0 {
			return false
		}
		rest = rest[len(commentOpen)+end+len(commentClose):]
	}

	head := strings.ToLower(string(rest[:min(len(rest), len("<!doctype"))]))
	if strings.HasPrefix(head, "<!doctype") {
		return true
	}
	if !strings.HasPrefix(head, "<html") {
		return false
	}
	if len(rest) == len("<html") {
		return true
	}
	switch rest[len("<html")] {
	case '>', '/', ' ', '\t', '\r', '\n', '\f':
		return true
	}
	return false
}

var (
	commentOpen  = []byte("<!--")
	commentClose = []byte("-->")
)

// renderHTML renders the document back to a string.
// Fragments render their children only, without an <html><body> wrapper.
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
