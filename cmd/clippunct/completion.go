package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// supportedShells lists shells in the order they are documented.
var supportedShells = []string{string(ShellBash), string(ShellZsh), string(ShellFish), string(ShellPowerShell)}

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// takesValue reports whether the flag consumes the next word.
func (f flagDef) takesValue() bool {
	return f.Type != flagBool
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	Args        []string // fixed values for the first argument
	TakesFiles  bool     // accepts file arguments
	FilePattern string   // glob for file arguments (e.g., "*.md")
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"format":     {Values: []string{"auto", "text", "html", "markdown"}},
	"log-level":  {Values: []string{"debug", "info", "warn", "error"}},
	"log-format": {Values: []string{"text", "json"}},
	"config":     {FileGlob: "*.yaml,*.yml"},
	"output":     {IsDir: true},
}

// extractFlagsFromFlagSet lists the flags of fs for the completion scripts.
// Names, shorthands and usage come from fs; value hints from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef
	fs.VisitAll(func(f *flag.Flag) {
		flags = append(flags, describeFlag(f))
	})
	return flags
}

// describeFlag maps one pflag flag to its completion definition.
func describeFlag(f *flag.Flag) flagDef {
	fd := flagDef{Long: f.Name, Short: f.Shorthand, Desc: f.Usage, Type: flagString}

	switch f.Value.Type() {
	case "bool":
		fd.Type = flagBool
	case "int", "int64", "uint", "uint64":
		fd.Type = flagInt
	}

	meta, ok := flagCompletionMeta[f.Name]
	switch {
	case !ok:
	case len(meta.Values) > 0:
		fd.Type, fd.Values = flagEnum, meta.Values
	case meta.FileGlob != "":
		fd.Type, fd.FileGlob = flagFile, meta.FileGlob
	case meta.IsDir:
		fd.Type = flagDir
	}
	return fd
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSets - single source of truth.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:  "watch",
			Desc:  "Convert the clipboard whenever it changes",
			Flags: extractFlagsFromFlagSet(newWatchFlagSet(&watchFlags{})),
		},
		{
			Name:        "convert",
			Desc:        "Convert files or standard input",
			Flags:       extractFlagsFromFlagSet(newConvertFlagSet(&convertFlags{})),
			TakesFiles:  true,
			FilePattern: "*.txt,*.text,*.html,*.htm,*.md,*.markdown",
		},
		{
			Name:  "rules",
			Desc:  "Show the punctuation table",
			Flags: extractFlagsFromFlagSet(newRulesFlagSet(&rulesFlags{})),
		},
		{
			Name: "config",
			Desc: "Create or show the configuration",
			Args: []string{"init", "show"},
		},
		{
			Name:  "doctor",
			Desc:  "Check clipboard and notification support",
			Flags: []flagDef{{Long: "json", Type: flagBool, Desc: "print results as JSON"}},
		},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
			Args: supportedShells,
		},
		{
			Name: "version",
			Desc: "Show version information",
		},
		{
			Name: "help",
			Desc: "Show help for a command",
			Args: commandNames(),
		},
	}
}

// commandNames lists the commands that have a help page.
func commandNames() []string {
	return []string{"watch", "convert", "rules", "config", "doctor", "completion", "version"}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var script string
	switch shell {
	case ShellBash:
		script = generateBash(getCommands())
	case ShellZsh:
		script = generateZsh(getCommands())
	case ShellFish:
		script = generateFish(getCommands())
	case ShellPowerShell:
		script = generatePowerShell(getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}

	_, err := io.WriteString(w, script)
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}

	shell := Shell(args[0])
	return GenerateCompletion(env.Stdout, shell)
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: clippunct completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(clippunct completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(clippunct completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    clippunct completion fish > ~/.config/fish/completions/clippunct.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    clippunct completion powershell | Out-String | Invoke-Expression")
}
