package clippunct

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// Format identifies how content is structured.
type Format int

// Supported formats.
const (
	FormatText Format = iota
	FormatHTML
	FormatMarkdown
)

// String returns the canonical format name.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatHTML:
		return "html"
	case FormatMarkdown:
		return "markdown"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat resolves a format name (case-insensitive).
// Accepts the canonical names plus common short forms: txt, htm, md.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "txt", "plain":
		return FormatText, nil
	case "html", "htm":
		return FormatHTML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return FormatText, fmt.Errorf("%w: %q (must be text, html or markdown)", ErrUnknownFormat, name)
}

// DetectFormat guesses the format from a file name, then from the content.
// Content whose first non-space byte is '<' is treated as HTML.
func DetectFormat(name, content string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return FormatHTML
	case ".md", ".markdown":
		return FormatMarkdown
	case ".txt", ".text":
		return FormatText
	}
	if strings.HasPrefix(strings.TrimSpace(content), "<") {
		return FormatHTML
	}
	return FormatText
}

// Input is one clipboard snapshot. Either flavour may be empty.
type Input struct {
	Text string // plain-text flavour
	HTML []byte // HTML flavour, fragment or full document
}

// Result holds the outcome of Convert.
// Text and HTML hold the converted content, or the input unchanged when the
// matching flag is false.
type Result struct {
	Text        string
	HTML        string
	TextChanged bool
	HTMLChanged bool
}

// Changed reports whether any flavour was converted.
func (r *Result) Changed() bool {
	return r != nil && (r.TextChanged || r.HTMLChanged)
}

// DefaultMaxInputSize bounds HTML and Markdown inputs (10 MiB).
const DefaultMaxInputSize = 10 << 20

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	skipTags     []string
	maxInputSize int
	logger       *slog.Logger
}

// WithSkipTags leaves the text inside the named HTML elements untouched.
// Names are matched case-insensitively. Repeated calls accumulate.
func WithSkipTags(tags ...string) Option {
	return func(c *Converter) {
		for _, tag := range tags {
			if tag = strings.ToLower(strings.TrimSpace(tag)); tag != "" {
				c.cfg.skipTags = append(c.cfg.skipTags, tag)
			}
		}
	}
}

// WithMaxInputSize sets the largest HTML or Markdown input accepted, in bytes.
// Panics if n is not positive.
func WithMaxInputSize(n int) Option {
	if n <= 0 {
		panic("clippunct: WithMaxInputSize size must be positive")
	}
	return func(c *Converter) {
		c.cfg.maxInputSize = n
	}
}

// WithLogger sets the logger used for debug and warning records.
// A nil logger keeps the default, which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.cfg.logger = logger
		}
	}
}
