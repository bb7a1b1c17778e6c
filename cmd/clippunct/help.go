package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: clippunct <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert full-width Chinese punctuation to ASCII.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  watch       Convert the clipboard whenever it changes")
	fmt.Fprintln(w, "  convert     Convert files or standard input")
	fmt.Fprintln(w, "  rules       Show the punctuation table")
	fmt.Fprintln(w, "  config      Create or show the configuration")
	fmt.Fprintln(w, "  doctor      Check clipboard and notification support")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'clippunct help <command>' for details on a specific command.")
}

// printCommonUsage prints the flags shared by watch, convert and config show.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed output")
	fmt.Fprintln(w, "      --log-level <s>       Log level: debug, info, warn, error")
	fmt.Fprintln(w, "      --log-format <s>      Log format: text, json")
}

// printWatchUsage prints usage for the watch command.
func printWatchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: clippunct watch [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Poll the clipboard and replace full-width punctuation in copied text.")
	fmt.Fprintln(w, "When the clipboard carries HTML, markup is kept and only text is converted.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Watch:")
	fmt.Fprintln(w, "      --interval <d>        Poll interval (50ms-1m, default 500ms)")
	fmt.Fprintln(w, "      --oneshot             Convert the clipboard once and exit")
	fmt.Fprintln(w, "      --no-notify           Disable desktop notifications")
	fmt.Fprintln(w, "      --dry-run             Print the conversion, leave the clipboard alone")
	fmt.Fprintln(w)
	printCommonUsage(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  CLIPPUNCT_CONFIG, CLIPPUNCT_INTERVAL, CLIPPUNCT_NO_NOTIFY,")
	fmt.Fprintln(w, "  CLIPPUNCT_LOG_LEVEL, CLIPPUNCT_LOG_FORMAT")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: clippunct convert [input...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert files, directories or standard input.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Files or directories; none or \"-\" reads standard input")
	fmt.Fprintln(w, "           Directories are scanned for .txt .text .html .htm .md .markdown")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "      --format <s>          Input format: auto, text, html, markdown")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -i, --in-place            Rewrite input files (only when changed)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	printCommonUsage(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "A single file without --output is printed to standard output.")
}

// printRulesUsage prints usage for the rules command.
func printRulesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: clippunct rules [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show each full-width mark, its ASCII replacement and where a space may be added.")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: clippunct config <subcommand>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Subcommands:")
	fmt.Fprintln(w, "  init [path] [--force]   Write the default config (default: clippunct.yaml)")
	fmt.Fprintln(w, "  show [flags]            Print the effective configuration")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: clippunct doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check the clipboard backend, notification helper and environment.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "watch":
		printWatchUsage(env.Stdout)
	case "convert":
		printConvertUsage(env.Stdout)
	case "rules":
		printRulesUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: clippunct version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: clippunct help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
