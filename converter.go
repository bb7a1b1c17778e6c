package clippunct

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alnah/go-clippunct/internal/pipeline"
	"github.com/alnah/go-clippunct/internal/punct"
)

// Converter applies punctuation conversion to text, HTML and Markdown.
// Create with NewConverter. A Converter is safe for concurrent use.
type Converter struct {
	cfg converterConfig
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithSkipTags, WithLogger).
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{
			maxInputSize: DefaultMaxInputSize,
			logger:       slog.New(slog.DiscardHandler),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Text converts plain text. Returns changed=false when s holds no
// convertible punctuation.
func (c *Converter) Text(s string) (string, bool) {
	return punct.Convert(s)
}

// HTML converts the text nodes of an HTML fragment or document.
// Returns changed=false when no text node was converted; the caller keeps the
// original markup.
func (c *Converter) HTML(markup []byte) (string, bool, error) {
	if err := c.checkSize(len(markup)); err != nil {
		return "", false, err
	}
	return pipeline.RewriteHTML(markup, pipeline.HTMLOptions{SkipTags: c.cfg.skipTags})
}

// Markdown converts the prose of a Markdown document, leaving code and raw
// HTML as written.
func (c *Converter) Markdown(ctx context.Context, source string) (string, bool, error) {
	if err := c.checkSize(len(source)); err != nil {
		return "", false, err
	}
	return pipeline.RewriteMarkdown(ctx, source)
}

// Format converts content according to format.
func (c *Converter) Format(ctx context.Context, format Format, content string) (string, bool, error) {
	switch format {
	case FormatText:
		if err := c.checkSize(len(content)); err != nil {
			return "", false, err
		}
		out, changed := c.Text(content)
		return out, changed, nil
	case FormatHTML:
		return c.HTML([]byte(content))
	case FormatMarkdown:
		return c.Markdown(ctx, content)
	}
	return "", false, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
}

// Convert converts both flavours of a clipboard snapshot.
// An HTML failure leaves HTMLChanged false; it is returned only when the text
// flavour did not change either.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Text == "" && len(input.HTML) == 0 {
		return nil, ErrEmptyInput
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := c.checkSize(len(input.Text)); err != nil {
		return nil, err
	}

	res := &Result{Text: input.Text, HTML: string(input.HTML)}

	if out, changed := c.Text(input.Text); changed {
		res.Text = out
		res.TextChanged = true
	}

	if len(input.HTML) > 0 {
		out, changed, htmlErr := c.HTML(input.HTML)
		switch {
		case htmlErr != nil && !res.TextChanged:
			return nil, fmt.Errorf("converting HTML: %w", htmlErr)
		case htmlErr != nil:
			c.cfg.logger.Warn("html flavour skipped", "error", htmlErr)
		case changed:
			res.HTML = out
			res.HTMLChanged = true
		}
	}

	c.cfg.logger.Debug("snapshot converted",
		"text_changed", res.TextChanged,
		"html_changed", res.HTMLChanged,
		"text_bytes", len(input.Text),
		"html_bytes", len(input.HTML),
	)
	return res, nil
}

// checkSize enforces the configured maximum input size.
func (c *Converter) checkSize(n int) error {
	if n > c.cfg.maxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, n, c.cfg.maxInputSize)
	}
	return nil
}
