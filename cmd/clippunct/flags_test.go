package main

// Notes:
// - Flag parsing is tested through the public parse functions; pflag itself
//   is trusted for syntax (shorthand grouping, = forms).

import (
	"errors"
	"testing"

	flag "github.com/spf13/pflag"
)

// ---------------------------------------------------------------------------
// TestParseWatchFlags
// ---------------------------------------------------------------------------

func TestParseWatchFlags(t *testing.T) {
	t.Parallel()

	f, rest, err := parseWatchFlags([]string{
		"--interval", "2s", "--oneshot", "--no-notify", "--dry-run",
		"-c", "work", "-q", "--log-level", "debug", "--log-format", "json",
	})
	if err != nil {
		t.Fatalf("parseWatchFlags() error = %v", err)
	}
	if len(rest) != 0 {
		t.Errorf("positional args = %v, want none", rest)
	}

	if f.interval != "2s" || !f.oneshot || !f.noNotify || !f.dryRun {
		t.Errorf("watch flags = %+v", f)
	}
	if f.common.config != "work" || !f.common.quiet || f.common.logLevel != "debug" || f.common.logFormat != "json" {
		t.Errorf("common flags = %+v", f.common)
	}
}

func TestParseWatchFlags_Unknown(t *testing.T) {
	t.Parallel()

	if _, _, err := parseWatchFlags([]string{"--workers", "2"}); err == nil {
		t.Error("parseWatchFlags() accepted a convert-only flag")
	}
}

// ---------------------------------------------------------------------------
// TestParseConvertFlags
// ---------------------------------------------------------------------------

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	f, rest, err := parseConvertFlags([]string{"a.md", "-o", "out", "-w", "3", "--format", "html", "b.txt", "-v"})
	if err != nil {
		t.Fatalf("parseConvertFlags() error = %v", err)
	}

	if len(rest) != 2 || rest[0] != "a.md" || rest[1] != "b.txt" {
		t.Errorf("positional args = %v, want [a.md b.txt]", rest)
	}
	if f.output != "out" || f.workers != 3 || f.format != "html" || !f.common.verbose {
		t.Errorf("convert flags = %+v", f)
	}
	if f.inPlace {
		t.Error("inPlace = true, want false")
	}
}

func TestParseConvertFlags_Defaults(t *testing.T) {
	t.Parallel()

	f, _, err := parseConvertFlags(nil)
	if err != nil {
		t.Fatal(err)
	}
	if f.format != "auto" {
		t.Errorf("format default = %q, want auto", f.format)
	}
	if f.workers != 0 {
		t.Errorf("workers default = %d, want 0", f.workers)
	}
}

func TestParseConvertFlags_InPlaceShorthand(t *testing.T) {
	t.Parallel()

	f, _, err := parseConvertFlags([]string{"-i", "notes.md"})
	if err != nil {
		t.Fatal(err)
	}
	if !f.inPlace {
		t.Error("-i did not set inPlace")
	}
}

func TestParseRulesFlags(t *testing.T) {
	t.Parallel()

	f, err := parseRulesFlags([]string{"--json"})
	if err != nil {
		t.Fatal(err)
	}
	if !f.json {
		t.Error("--json not set")
	}

	if _, err := parseRulesFlags([]string{"--nope"}); err == nil {
		t.Error("parseRulesFlags() accepted an unknown flag")
	}
}

func TestParseFlags_Help(t *testing.T) {
	t.Parallel()

	if _, _, err := parseConvertFlags([]string{"--help"}); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("parseConvertFlags(--help) error = %v, want ErrHelp", err)
	}
}

// ---------------------------------------------------------------------------
// TestIsVerbose
// ---------------------------------------------------------------------------

func TestIsVerbose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want bool
	}{
		{nil, false},
		{[]string{"convert", "-v"}, true},
		{[]string{"watch", "--verbose"}, true},
		{[]string{"convert", "--", "-v"}, false},
	}

	for _, tt := range tests {
		if got := isVerbose(tt.args); got != tt.want {
			t.Errorf("isVerbose(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}
