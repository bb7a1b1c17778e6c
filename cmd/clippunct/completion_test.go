package main

// Notes:
// - GenerateCompletion: scripts are checked for content markers only; they
//   are not executed in the target shells.
// - getCommands: flags come from the real FlagSets, so a renamed flag shows
//   up here.

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestGenerateCompletion_SupportedShells
// ---------------------------------------------------------------------------

func TestGenerateCompletion_SupportedShells(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shell        Shell
		wantContains []string
	}{
		{
			shell: ShellBash,
			wantContains: []string{
				"_clippunct_completions",
				"complete -o filenames -F _clippunct_completions clippunct",
				"compgen",
				"--in-place",
				"auto text html markdown",
			},
		},
		{
			shell: ShellZsh,
			wantContains: []string{
				"#compdef clippunct",
				"_clippunct",
				"_arguments",
				"_describe",
				"--dry-run",
			},
		},
		{
			shell: ShellFish,
			wantContains: []string{
				"complete -c clippunct",
				"__fish_clippunct_needs_command",
				"__fish_clippunct_using_command",
				"-l output",
			},
		},
		{
			shell: ShellPowerShell,
			wantContains: []string{
				"Register-ArgumentCompleter",
				"-CommandName clippunct",
				"CompletionResult",
				"--workers",
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.shell), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%s) error = %v", tt.shell, err)
			}

			script := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(script, want) {
					t.Errorf("%s script missing %q", tt.shell, want)
				}
			}
			for _, cmd := range commandNames() {
				if !strings.Contains(script, cmd) {
					t.Errorf("%s script missing command %q", tt.shell, cmd)
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := GenerateCompletion(&buf, Shell("tcsh"))
	if !errors.Is(err, ErrUnsupportedShell) {
		t.Errorf("error = %v, want ErrUnsupportedShell", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes for an unsupported shell", buf.Len())
	}
}

func TestRunCompletion_NoArgsPrintsUsage(t *testing.T) {
	t.Parallel()

	env := newTestEnv("")
	if err := runCompletion(nil, env.Environment); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(env.stdout.String(), "Usage: clippunct completion <shell>") {
		t.Errorf("stdout = %q", env.stdout.String())
	}
}

// ---------------------------------------------------------------------------
// TestGetCommands
// ---------------------------------------------------------------------------

func TestGetCommands(t *testing.T) {
	t.Parallel()

	cmds := make(map[string]commandDef)
	for _, c := range getCommands() {
		if c.Desc == "" {
			t.Errorf("command %q has no description", c.Name)
		}
		cmds[c.Name] = c
	}

	for _, name := range append(commandNames(), "help") {
		if _, ok := cmds[name]; !ok {
			t.Errorf("command %q missing", name)
		}
	}

	convert := cmds["convert"]
	if !convert.TakesFiles {
		t.Error("convert does not take files")
	}
	flags := make(map[string]flagDef)
	for _, f := range convert.Flags {
		flags[f.Long] = f
	}
	if f := flags["format"]; f.Type != flagEnum || len(f.Values) != 4 {
		t.Errorf("format flag = %+v, want enum of 4", f)
	}
	if f := flags["output"]; f.Type != flagDir || f.Short != "o" {
		t.Errorf("output flag = %+v, want dir with -o", f)
	}
	if f := flags["workers"]; f.Type != flagInt || !f.takesValue() {
		t.Errorf("workers flag = %+v, want int", f)
	}
	if f := flags["in-place"]; f.Type != flagBool || f.takesValue() {
		t.Errorf("in-place flag = %+v, want bool", f)
	}
	if f := flags["config"]; f.Type != flagFile || f.FileGlob != "*.yaml,*.yml" {
		t.Errorf("config flag = %+v, want yaml file", f)
	}

	if got := cmds["completion"].Args; len(got) != len(supportedShells) {
		t.Errorf("completion args = %v, want %v", got, supportedShells)
	}
}
