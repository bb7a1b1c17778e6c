package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/alnah/go-clippunct/internal/clipboard"
	"github.com/alnah/go-clippunct/internal/config"
	"github.com/alnah/go-clippunct/internal/fileutil"
	"github.com/alnah/go-clippunct/internal/notify"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status    string        `json:"status"` // "ready", "warnings", "errors"
	Clipboard clipboardInfo `json:"clipboard"`
	Notifier  notifierInfo  `json:"notifier"`
	Env       envInfo       `json:"environment"`
	Config    configInfo    `json:"config"`
	System    systemInfo    `json:"system"`
	Warnings  []string      `json:"warnings,omitempty"`
	Errors    []string      `json:"errors,omitempty"`
}

// clipboardInfo holds clipboard backend detection results.
type clipboardInfo struct {
	Available  bool   `json:"available"`
	HTML       bool   `json:"html"`
	HTMLHelper string `json:"html_helper,omitempty"`
}

// notifierInfo holds notification helper detection results.
type notifierInfo struct {
	Available bool   `json:"available"`
	Helper    string `json:"helper"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
	Display       string `json:"display,omitempty"`
}

// configInfo holds config lookup results.
type configInfo struct {
	Found       string   `json:"found,omitempty"`
	SearchPaths []string `json:"search_paths"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// Availability checks are package variables so tests can simulate a headless host.
var (
	clipboardAvailable = clipboard.Available
	clipboardHTML      = clipboard.HTMLAvailable
	notifierAvailable  = notify.Available
)

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor()

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor() *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
	}

	checkEnvironment(result)
	checkClipboard(result)
	checkNotifier(result)
	checkConfig(result)
	checkSystem(result)

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkClipboard verifies a clipboard backend is usable.
func checkClipboard(result *doctorResult) {
	result.Clipboard.Available = clipboardAvailable()
	result.Clipboard.HTMLHelper = clipboard.HTMLHelper()
	if result.Clipboard.HTMLHelper != "" {
		result.Clipboard.HTML = clipboardHTML()
		if !result.Clipboard.HTML {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"%s not found; only the text flavour of the clipboard is converted", result.Clipboard.HTMLHelper))
		}
	}
	if result.Clipboard.Available {
		return
	}

	msg := "No clipboard backend found. 'watch' is unavailable; 'convert' still works"
	if result.Env.OS == "linux" {
		msg = "No clipboard backend found. Install xclip, xsel or wl-clipboard"
	}
	result.Errors = append(result.Errors, msg)
}

// checkNotifier detects the desktop notification helper.
func checkNotifier(result *doctorResult) {
	result.Notifier.Helper = notify.Helper()
	result.Notifier.Available = notifierAvailable()
	if !result.Notifier.Available {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%s not found; notifications are skipped (or use --no-notify)", result.Notifier.Helper))
	}
}

// checkEnvironment detects container, CI and display environments.
func checkEnvironment(result *doctorResult) {
	// Detect container (multi-signal approach)
	result.Env.Container, result.Env.ContainerHint = isContainer()

	// Detect CI environments
	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}

	if result.Env.OS != "linux" && result.Env.OS != "freebsd" {
		return
	}

	switch {
	case os.Getenv("WAYLAND_DISPLAY") != "":
		result.Env.Display = "wayland"
	case os.Getenv("DISPLAY") != "":
		result.Env.Display = "x11"
	default:
		result.Warnings = append(result.Warnings,
			"No display found (DISPLAY and WAYLAND_DISPLAY unset); the clipboard needs a graphical session")
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer() (bool, string) {
	// Explicit override (highest priority)
	if os.Getenv("CLIPPUNCT_CONTAINER") == "1" {
		return true, "CLIPPUNCT_CONTAINER=1"
	}
	// Docker
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true, "/.dockerenv"
	}
	// Podman / systemd-nspawn / general container indicator
	if v := os.Getenv("container"); v != "" {
		return true, "container=" + v
	}
	// Kubernetes
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkConfig reports which default-named config file would be used.
func checkConfig(result *doctorResult) {
	result.Config.SearchPaths = config.SearchPaths(config.AppDirName)
	for _, p := range result.Config.SearchPaths {
		if fileutil.FileExists(p) {
			result.Config.Found = p
			break
		}
	}
}

// checkSystem verifies system requirements.
func checkSystem(result *doctorResult) {
	// Check temp directory is writable
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "clippunct-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
	} else {
		_ = os.Remove(testFile)
		result.System.TempWritable = true
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "clippunct doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Clipboard")
	if r.Clipboard.Available {
		fmt.Fprintln(w, "  [OK] Backend: available")
	} else {
		fmt.Fprintln(w, "  [ERROR] Backend: not found")
	}
	switch {
	case r.Clipboard.HTML:
		fmt.Fprintf(w, "  [OK] Flavours: text, html (%s)\n", r.Clipboard.HTMLHelper)
	case r.Clipboard.HTMLHelper != "":
		fmt.Fprintf(w, "  [WARN] Flavours: text only, %s not found\n", r.Clipboard.HTMLHelper)
	default:
		fmt.Fprintln(w, "  [OK] Flavours: text")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Notifications")
	if r.Notifier.Available {
		fmt.Fprintf(w, "  [OK] Helper: %s\n", r.Notifier.Helper)
	} else {
		fmt.Fprintf(w, "  [WARN] Helper: %s not found\n", r.Notifier.Helper)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Display != "" {
		fmt.Fprintf(w, "  [OK] Display: %s\n", r.Env.Display)
	}
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Config")
	if r.Config.Found != "" {
		fmt.Fprintf(w, "  [OK] Found: %s\n", r.Config.Found)
	} else {
		fmt.Fprintln(w, "  [OK] None found, using defaults")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	// Final status
	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to watch")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
