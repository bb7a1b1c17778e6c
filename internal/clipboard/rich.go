package clipboard

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/alnah/go-clippunct/internal/process"
)

// helperTimeout bounds one helper invocation; the clipboard methods take no
// context of their own.
const helperTimeout = 5 * time.Second

// helperWaitDelay bounds how long a killed helper may hold its output pipes.
const helperWaitDelay = 2 * time.Second

// richHelper describes how a platform program moves both flavours.
type richHelper struct {
	name     string
	readArgs []string
	// decode turns the helper's output into markup; empty output means no
	// HTML flavour.
	decode func(out []byte) ([]byte, error)
	// write returns the arguments and stdin that replace both flavours.
	write func(html []byte, text string) (args []string, stdin []byte)
}

// Rich is the operating system clipboard with its HTML flavour. Text goes
// through System; HTML goes through the platform helper program.
type Rich struct {
	System
	helper   *richHelper
	lookPath func(file string) (string, error)
	run      func(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, error)
}

// NewRich returns a Rich clipboard for the current platform.
func NewRich() *Rich {
	return &Rich{helper: platformHelper, lookPath: exec.LookPath, run: runHelper}
}

// Detect returns a Rich clipboard when the platform has an HTML helper on
// PATH, and the text-only System otherwise.
func Detect() Clipboard {
	if HTMLAvailable() {
		return NewRich()
	}
	return System{}
}

// HTMLHelper returns the name of the HTML helper program, or "" when the
// platform has none.
func HTMLHelper() string {
	if platformHelper == nil {
		return ""
	}
	return platformHelper.name
}

// HTMLAvailable reports whether the HTML helper is on PATH.
func HTMLAvailable() bool {
	if platformHelper == nil {
		return false
	}
	_, err := exec.LookPath(platformHelper.name)
	return err == nil
}

// ReadHTML implements HTMLClipboard.
func (r *Rich) ReadHTML() ([]byte, error) {
	if r.helper == nil {
		return nil, nil
	}
	path, err := r.lookPath(r.helper.name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s not found", ErrUnavailable, r.helper.name)
	}

	ctx, cancel := context.WithTimeout(context.Background(), helperTimeout)
	defer cancel()
	out, err := r.run(ctx, nil, path, r.helper.readArgs...)
	if err != nil {
		return nil, fmt.Errorf("reading html with %s: %w", r.helper.name, err)
	}
	markup, err := r.helper.decode(out)
	if err != nil {
		return nil, fmt.Errorf("reading html with %s: %w", r.helper.name, err)
	}
	if len(bytes.TrimSpace(markup)) == 0 {
		return nil, nil
	}
	return markup, nil
}

// WriteHTML implements HTMLClipboard.
func (r *Rich) WriteHTML(html []byte, text string) error {
	if r.helper == nil {
		return fmt.Errorf("%w: no html helper on this platform", ErrUnavailable)
	}
	path, err := r.lookPath(r.helper.name)
	if err != nil {
		return fmt.Errorf("%w: %s not found", ErrUnavailable, r.helper.name)
	}

	ctx, cancel := context.WithTimeout(context.Background(), helperTimeout)
	defer cancel()
	args, stdin := r.helper.write(html, text)
	if _, err := r.run(ctx, stdin, path, args...); err != nil {
		return fmt.Errorf("writing html with %s: %w", r.helper.name, err)
	}
	return nil
}

// runHelper executes name with stdin and returns its stdout, folding stderr
// into the error. Cancellation kills the helper's whole process group.
func runHelper(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- fixed helper, data passed on stdin
	process.Bind(cmd)
	cmd.WaitDelay = helperWaitDelay
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return out, nil
}
