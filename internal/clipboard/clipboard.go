// Package clipboard reads and rewrites the system clipboard and runs the
// polling loop that converts punctuation in whatever is copied.
package clipboard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when the system clipboard cannot be accessed.
var ErrUnavailable = errors.New("clipboard unavailable")

// Clipboard holds plain text.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// HTMLClipboard also carries an HTML flavour alongside the text.
type HTMLClipboard interface {
	Clipboard
	// ReadHTML returns nil when no HTML flavour is present.
	ReadHTML() ([]byte, error)
	// WriteHTML replaces both flavours at once.
	WriteHTML(html []byte, text string) error
}

// System is the operating system clipboard (text flavour only).
type System struct{}

// ReadText implements Clipboard.
func (System) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", fmt.Errorf("%w: no clipboard utility found", ErrUnavailable)
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return text, nil
}

// WriteText implements Clipboard.
func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: no clipboard utility found", ErrUnavailable)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Available reports whether a system clipboard backend was found.
func Available() bool {
	return !clipboard.Unsupported
}

// Memory is an in-process clipboard holding both flavours.
// Safe for concurrent use.
type Memory struct {
	mu     sync.Mutex
	text   string
	html   []byte
	writes int

	// WriteErr, when set, fails every write.
	WriteErr error
}

// NewMemory returns a Memory clipboard holding text.
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

// ReadText implements Clipboard.
func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// WriteText implements Clipboard. Writing text drops any HTML flavour.
func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.text, m.html = text, nil
	m.writes++
	return nil
}

// ReadHTML implements HTMLClipboard.
func (m *Memory) ReadHTML() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.html == nil {
		return nil, nil
	}
	return append([]byte(nil), m.html...), nil
}

// WriteHTML implements HTMLClipboard.
func (m *Memory) WriteHTML(html []byte, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.html = append([]byte(nil), html...)
	m.text = text
	m.writes++
	return nil
}

// Copy simulates a user copying content: it sets both flavours without
// counting as a write. Pass nil html for text-only content.
func (m *Memory) Copy(text string, html []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	if html == nil {
		m.html = nil
	} else {
		m.html = append([]byte(nil), html...)
	}
}

// Writes returns how many times content was written back.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
