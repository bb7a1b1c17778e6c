package clipboard

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"time"

	clippunct "github.com/alnah/go-clippunct"
	"github.com/alnah/go-clippunct/internal/notify"
)

// DefaultInterval is used when Watcher.Interval is zero.
const DefaultInterval = 500 * time.Millisecond

// Converter converts one clipboard snapshot.
type Converter interface {
	Convert(ctx context.Context, input clippunct.Input) (*clippunct.Result, error)
}

// Messages are the notification texts shown after a conversion.
type Messages struct {
	Title string
	Text  string // plain text converted
	HTML  string // HTML flavour converted, formatting kept
}

// Watcher polls a clipboard and writes back converted content.
// A Watcher is not safe for concurrent use; run one Run loop at a time.
type Watcher struct {
	Clipboard Clipboard
	Converter Converter
	Notifier  notify.Notifier // nil disables notifications
	Logger    *slog.Logger    // nil discards
	Messages  Messages
	Interval  time.Duration
	Oneshot   bool

	lastText string
	lastHTML []byte
	seen     bool
}

// Run polls until ctx is done. The first two polls run back to back so
// content copied just before start is picked up immediately.
// With Oneshot set, Run converts the current clipboard once and returns.
// Cancellation is a normal stop and returns nil.
func (w *Watcher) Run(ctx context.Context) error {
	if w.Oneshot {
		_, err := w.Cycle(ctx)
		if ctx.Err() != nil {
			return nil
		}
		return err
	}

	interval := w.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	w.logger().Info("watching clipboard", "interval", interval)

	for range 2 {
		if w.poll(ctx) {
			return nil
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger().Info("watcher stopped")
			return nil
		case <-ticker.C:
			if w.poll(ctx) {
				return nil
			}
		}
	}
}

// poll runs one cycle and reports whether the loop must stop.
func (w *Watcher) poll(ctx context.Context) (stop bool) {
	if _, err := w.Cycle(ctx); err != nil {
		if ctx.Err() != nil {
			return true
		}
		w.logger().Debug("clipboard read failed", "error", err)
	}
	return false
}

// Cycle inspects the clipboard once and converts it if it changed since the
// last cycle. Returns true when converted content was written back.
// Errors are returned only for cancellation and clipboard read failures;
// conversion, write and notification failures are logged and skip the cycle.
// A failed HTML read falls back to the text flavour.
func (w *Watcher) Cycle(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if hc, ok := w.Clipboard.(HTMLClipboard); ok {
		html, err := hc.ReadHTML()
		switch {
		case err != nil:
			w.logger().Debug("clipboard html read failed", "error", err)
		case len(html) > 0:
			return w.cycleHTML(ctx, hc, html)
		}
	}
	return w.cycleText(ctx)
}

func (w *Watcher) cycleText(ctx context.Context) (bool, error) {
	text, err := w.Clipboard.ReadText()
	if err != nil {
		return false, err
	}
	if w.seen && text == w.lastText {
		return false, nil
	}
	w.lastText, w.lastHTML, w.seen = text, nil, true

	if text == "" {
		return false, nil
	}
	w.logger().Info("clipboard changed", "bytes", len(text))

	res, err := w.Converter.Convert(ctx, clippunct.Input{Text: text})
	if err != nil {
		return w.convertFailed(ctx, err)
	}
	if !res.TextChanged {
		w.logger().Info("no full-width punctuation")
		return false, nil
	}

	if err := w.Clipboard.WriteText(res.Text); err != nil {
		w.logger().Warn("failed to set clipboard text", "error", err)
		return false, nil
	}
	w.lastText = res.Text
	w.logger().Info("clipboard text converted")

	w.notify(ctx, w.Messages.Text)
	return true, nil
}

func (w *Watcher) cycleHTML(ctx context.Context, hc HTMLClipboard, html []byte) (bool, error) {
	if w.seen && bytes.Equal(html, w.lastHTML) {
		return false, nil
	}

	// The text flavour is optional next to HTML.
	text, _ := hc.ReadText()
	w.lastText, w.lastHTML, w.seen = text, html, true
	w.logger().Info("clipboard changed", "bytes", len(html), "flavour", "html")

	res, err := w.Converter.Convert(ctx, clippunct.Input{Text: text, HTML: html})
	if err != nil {
		return w.convertFailed(ctx, err)
	}
	if !res.Changed() {
		w.logger().Info("no full-width punctuation")
		return false, nil
	}

	if err := hc.WriteHTML([]byte(res.HTML), res.Text); err != nil {
		w.logger().Warn("failed to set clipboard html", "error", err)
		return false, nil
	}
	w.lastText, w.lastHTML = res.Text, []byte(res.HTML)
	w.logger().Info("clipboard html converted",
		"text_changed", res.TextChanged,
		"html_changed", res.HTMLChanged,
	)

	body := w.Messages.HTML
	if !res.HTMLChanged {
		body = w.Messages.Text
	}
	w.notify(ctx, body)
	return true, nil
}

// convertFailed logs a conversion failure; only cancellation propagates.
func (w *Watcher) convertFailed(ctx context.Context, err error) (bool, error) {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false, err
	}
	w.logger().Warn("conversion failed", "error", err)
	return false, nil
}

func (w *Watcher) notify(ctx context.Context, body string) {
	if w.Notifier == nil {
		return
	}
	msg := notify.Message{Title: w.Messages.Title, Body: body}
	if err := w.Notifier.Notify(ctx, msg); err != nil {
		w.logger().Warn("notification failed", "error", err)
	}
}

func (w *Watcher) logger() *slog.Logger {
	if w.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return w.Logger
}
