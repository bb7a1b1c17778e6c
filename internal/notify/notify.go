// Package notify shows desktop notifications through the platform's own helper
// program: osascript on macOS, notify-send on Linux and the BSDs, PowerShell on
// Windows.
package notify

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/alnah/go-clippunct/internal/process"
)

// ErrNotifierUnavailable is returned when the platform helper is not installed.
var ErrNotifierUnavailable = errors.New("desktop notifier unavailable")

// Message is one notification.
type Message struct {
	Title string
	Body  string
}

// Notifier delivers notifications.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// Nop discards every notification.
type Nop struct{}

// Notify implements Notifier.
func (Nop) Notify(context.Context, Message) error { return nil }

// Desktop runs the platform notification helper.
type Desktop struct {
	lookPath func(file string) (string, error)
	run      func(ctx context.Context, name string, args ...string) error
}

// NewDesktop returns a Desktop notifier for the current platform.
func NewDesktop() *Desktop {
	return &Desktop{lookPath: exec.LookPath, run: runCommand}
}

// Notify implements Notifier.
func (d *Desktop) Notify(ctx context.Context, msg Message) error {
	name, args := command(msg)
	path, err := d.lookPath(name)
	if err != nil {
		return fmt.Errorf("%w: %s not found", ErrNotifierUnavailable, name)
	}
	if err := d.run(ctx, path, args...); err != nil {
		return fmt.Errorf("running %s: %w", name, err)
	}
	return nil
}

// Helper returns the name of the platform helper program.
func Helper() string {
	name, _ := command(Message{})
	return name
}

// Available reports whether the platform helper is on PATH.
func Available() bool {
	_, err := exec.LookPath(Helper())
	return err == nil
}

// helperWaitDelay bounds how long a killed helper may hold its output pipes.
const helperWaitDelay = 2 * time.Second

// runCommand executes name, folding its stderr into the error.
// Cancellation kills the helper's whole process group.
func runCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- fixed helper, escaped arguments
	process.Bind(cmd)
	cmd.WaitDelay = helperWaitDelay
	out, err := cmd.CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}
