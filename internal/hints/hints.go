// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/alnah/go-clippunct/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// goos is swapped by tests.
var goos = runtime.GOOS

// ForClipboard returns hints for clipboard access errors.
func ForClipboard() string {
	var hints []string

	if IsInContainer() {
		hints = append(hints, "no clipboard inside containers; pipe text to 'clippunct convert' instead")
	}

	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		if os.Getenv("WAYLAND_DISPLAY") != "" {
			hints = append(hints, "install wl-clipboard (wl-copy, wl-paste)")
		} else {
			hints = append(hints, "install xclip or xsel")
		}
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			hints = append(hints, "no display found (DISPLAY and WAYLAND_DISPLAY are unset)")
		}
	}

	return formatHints(hints)
}

// ForNotifier returns hints for desktop notification errors.
func ForNotifier() string {
	switch goos {
	case "darwin":
		return format("osascript is required; use --no-notify to disable notifications")
	case "windows":
		return format("PowerShell is required; use --no-notify to disable notifications")
	}
	return format("install libnotify (notify-send) or use --no-notify")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml or run 'clippunct config init'"

	sep := string(filepath.Separator)
	for _, p := range searchedPaths {
		if strings.Contains(p, sep+"clippunct"+sep) {
			hint += "; user config: " + p
			break
		}
	}

	return format(hint)
}

// ForParse returns hints for markup parse errors.
func ForParse() string {
	return format("input must be UTF-8; use --format text to convert it as plain text")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
