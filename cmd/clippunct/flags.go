package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	quiet     bool
	verbose   bool
	logLevel  string
	logFormat string
}

// watchFlags holds all flags for the watch command.
type watchFlags struct {
	common   commonFlags
	interval string
	oneshot  bool
	noNotify bool
	dryRun   bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	format  string
	output  string
	inPlace bool
	workers int
}

// rulesFlags holds all flags for the rules command.
type rulesFlags struct {
	json bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed output")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: text, json")
}

// newWatchFlagSet registers the watch flags into f.
// Shared by parseWatchFlags and shell completion.
func newWatchFlagSet(f *watchFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)

	fs.StringVar(&f.interval, "interval", "", "poll interval (e.g., 500ms, 2s)")
	fs.BoolVar(&f.oneshot, "oneshot", false, "convert the clipboard once and exit")
	fs.BoolVar(&f.noNotify, "no-notify", false, "disable desktop notifications")
	fs.BoolVar(&f.dryRun, "dry-run", false, "print the conversion instead of writing the clipboard")
	addCommonFlags(fs, &f.common)

	return fs
}

// newConvertFlagSet registers the convert flags into f.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)

	fs.StringVar(&f.format, "format", "auto", "input format: auto, text, html, markdown")
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.BoolVarP(&f.inPlace, "in-place", "i", false, "rewrite input files")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addCommonFlags(fs, &f.common)

	return fs
}

// newRulesFlagSet registers the rules flags into f.
func newRulesFlagSet(f *rulesFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("rules", flag.ContinueOnError)
	fs.BoolVar(&f.json, "json", false, "print the table as JSON")
	return fs
}

// parseWatchFlags parses watch command flags and returns positional args.
func parseWatchFlags(args []string) (*watchFlags, []string, error) {
	f := &watchFlags{}
	fs := newWatchFlagSet(f)
	fs.Usage = func() { printWatchUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)
	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseRulesFlags parses rules command flags.
func parseRulesFlags(args []string) (*rulesFlags, error) {
	f := &rulesFlags{}
	fs := newRulesFlagSet(f)
	fs.Usage = func() { printRulesUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// isVerbose reports whether args request verbose output.
// Used before any command parses its flags.
func isVerbose(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "-v" || arg == "--verbose" {
			return true
		}
	}
	return false
}
