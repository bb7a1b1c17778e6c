package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alnah/go-clippunct/internal/clipboard"
	"github.com/alnah/go-clippunct/internal/config"
	"github.com/alnah/go-clippunct/internal/notify"
)

// ---------------------------------------------------------------------------
// Test doubles
// ---------------------------------------------------------------------------

type recordingNotifier struct {
	mu   sync.Mutex
	msgs []notify.Message
}

func (r *recordingNotifier) Notify(_ context.Context, msg notify.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
	return nil
}

func (r *recordingNotifier) messages() []notify.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notify.Message(nil), r.msgs...)
}

// brokenClipboard simulates a host without a clipboard backend.
type brokenClipboard struct{}

func (brokenClipboard) ReadText() (string, error) { return "", clipboard.ErrUnavailable }
func (brokenClipboard) WriteText(string) error    { return clipboard.ErrUnavailable }

// ---------------------------------------------------------------------------
// Test environment
// ---------------------------------------------------------------------------

type testEnv struct {
	*Environment
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	clip     *clipboard.Memory
	notifier *recordingNotifier
}

// newTestEnv returns an environment with in-memory I/O, clipboard and notifier.
func newTestEnv(stdin string) *testEnv {
	te := &testEnv{
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
		clip:     clipboard.NewMemory(""),
		notifier: &recordingNotifier{},
	}
	te.Environment = &Environment{
		Now:       func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) },
		Stdin:     strings.NewReader(stdin),
		Stdout:    te.stdout,
		Stderr:    te.stderr,
		Config:    config.DefaultConfig(),
		Clipboard: te.clip,
		Notifier:  te.notifier,
	}
	return te
}

// writeFile creates path under dir with content and returns the full path.
func writeFile(t *testing.T, dir, path, content string) string {
	t.Helper()
	full := filepath.Join(dir, path)
	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return full
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) // #nosec G304 -- test path
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", path, err)
	}
	return string(data)
}
