package main

import (
	"fmt"
	"strings"
)

// flagWords returns every spelling of the command's flags ("-o", "--output").
func flagWords(cmd commandDef) []string {
	var words []string
	for _, f := range cmd.Flags {
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
		words = append(words, "--"+f.Long)
	}
	return words
}

// flagPattern returns the bash case pattern matching a flag ("-o|--output").
func flagPattern(f flagDef) string {
	if f.Short != "" {
		return "-" + f.Short + "|--" + f.Long
	}
	return "--" + f.Long
}

// globList splits a comma-separated glob list.
func globList(globs string) []string {
	var out []string
	for _, g := range strings.Split(globs, ",") {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}

func commandNamesOf(cmds []commandDef) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func generateBash(cmds []commandDef) string {
	var b strings.Builder

	b.WriteString("# bash completion for clippunct\n\n")
	b.WriteString("_clippunct_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(commandNamesOf(cmds), " "))
	b.WriteString("        return 0\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${cmd}\" in\n")

	for _, cmd := range cmds {
		if len(cmd.Flags) == 0 && len(cmd.Args) == 0 && !cmd.TakesFiles {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", cmd.Name)
		writeBashFlagValues(&b, cmd)

		if len(cmd.Flags) > 0 {
			b.WriteString("            if [[ \"${cur}\" == -* ]]; then\n")
			fmt.Fprintf(&b, "                COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(flagWords(cmd), " "))
			b.WriteString("                return 0\n")
			b.WriteString("            fi\n")
		}

		switch {
		case cmd.TakesFiles:
			b.WriteString("            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n")
		case len(cmd.Args) > 0:
			b.WriteString("            if [[ ${COMP_CWORD} -eq 2 ]]; then\n")
			fmt.Fprintf(&b, "                COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(cmd.Args, " "))
			b.WriteString("            fi\n")
		}
		b.WriteString("            ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("    return 0\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -o filenames -F _clippunct_completions clippunct\n")

	return b.String()
}

// writeBashFlagValues completes the value of the previous word's flag.
func writeBashFlagValues(b *strings.Builder, cmd commandDef) {
	var valued []flagDef
	for _, f := range cmd.Flags {
		if f.takesValue() {
			valued = append(valued, f)
		}
	}
	if len(valued) == 0 {
		return
	}

	b.WriteString("            case \"${prev}\" in\n")
	for _, f := range valued {
		fmt.Fprintf(b, "                %s)\n", flagPattern(f))
		switch f.Type {
		case flagEnum:
			fmt.Fprintf(b, "                    COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(f.Values, " "))
		case flagFile:
			b.WriteString("                    COMPREPLY=( $(compgen -f -- \"${cur}\") )\n")
		case flagDir:
			b.WriteString("                    COMPREPLY=( $(compgen -d -- \"${cur}\") )\n")
		}
		b.WriteString("                    return 0\n")
		b.WriteString("                    ;;\n")
	}
	b.WriteString("            esac\n")
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

// zshEscape escapes text for a single-quoted _arguments spec.
func zshEscape(s string) string {
	r := strings.NewReplacer(
		"'", `'\''`,
		"[", `\[`,
		"]", `\]`,
		":", `\:`,
	)
	return r.Replace(s)
}

func generateZsh(cmds []commandDef) string {
	var b strings.Builder

	b.WriteString("#compdef clippunct\n\n")
	b.WriteString("_clippunct() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, cmd := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", cmd.Name, zshEscape(cmd.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${words[2]}\" in\n")

	for _, cmd := range cmds {
		specs := zshSpecs(cmd)
		if len(specs) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", cmd.Name)
		b.WriteString("            shift words\n")
		b.WriteString("            (( CURRENT-- ))\n")
		b.WriteString("            _arguments -s \\\n")
		for i, spec := range specs {
			b.WriteString("                " + spec)
			if i < len(specs)-1 {
				b.WriteString(" \\")
			}
			b.WriteString("\n")
		}
		b.WriteString("            ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("if [[ \"${funcstack[1]}\" == \"_clippunct\" ]]; then\n")
	b.WriteString("    _clippunct \"$@\"\n")
	b.WriteString("else\n")
	b.WriteString("    compdef _clippunct clippunct\n")
	b.WriteString("fi\n")

	return b.String()
}

// zshSpecs returns the _arguments specs for a command.
func zshSpecs(cmd commandDef) []string {
	var specs []string

	for _, f := range cmd.Flags {
		desc := "[" + zshEscape(f.Desc) + "]"
		action := zshAction(f)

		if f.Short != "" {
			specs = append(specs, fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'%s%s'", f.Short, f.Long, f.Short, f.Long, desc, action))
		} else {
			specs = append(specs, fmt.Sprintf("'--%s%s%s'", f.Long, desc, action))
		}
	}

	switch {
	case cmd.TakesFiles:
		globs := globList(cmd.FilePattern)
		specs = append(specs, fmt.Sprintf(`'*:file:_files -g "(%s)"'`, strings.Join(globs, "|")))
	case len(cmd.Args) > 0:
		specs = append(specs, fmt.Sprintf("'1:argument:(%s)'", strings.Join(cmd.Args, " ")))
	}

	return specs
}

// zshAction returns the value part of a flag spec.
func zshAction(f flagDef) string {
	switch f.Type {
	case flagBool:
		return ""
	case flagEnum:
		return fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
	case flagFile:
		return fmt.Sprintf(`:file:_files -g "(%s)"`, strings.Join(globList(f.FileGlob), "|"))
	case flagDir:
		return ":directory:_files -/"
	}
	return ":" + f.Long + ":"
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

// fishEscape escapes text for a single-quoted fish string.
func fishEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(s)
}

func generateFish(cmds []commandDef) string {
	var b strings.Builder

	b.WriteString("# fish completion for clippunct\n\n")
	b.WriteString("function __fish_clippunct_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_clippunct_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c clippunct -f\n\n")

	for _, cmd := range cmds {
		fmt.Fprintf(&b, "complete -c clippunct -n __fish_clippunct_needs_command -a %s -d '%s'\n", cmd.Name, fishEscape(cmd.Desc))
	}

	for _, cmd := range cmds {
		if len(cmd.Flags) == 0 && len(cmd.Args) == 0 && !cmd.TakesFiles {
			continue
		}
		b.WriteString("\n")
		cond := fmt.Sprintf("'__fish_clippunct_using_command %s'", cmd.Name)

		for _, f := range cmd.Flags {
			line := "complete -c clippunct -n " + cond
			if f.Short != "" {
				line += " -s " + f.Short
			}
			line += " -l " + f.Long

			switch f.Type {
			case flagEnum:
				line += fmt.Sprintf(" -x -a '%s'", strings.Join(f.Values, " "))
			case flagFile:
				line += " -r -F"
			case flagDir:
				line += " -x -a '(__fish_complete_directories)'"
			case flagString, flagInt:
				line += " -x"
			}

			line += fmt.Sprintf(" -d '%s'", fishEscape(f.Desc))
			b.WriteString(line + "\n")
		}

		switch {
		case cmd.TakesFiles:
			fmt.Fprintf(&b, "complete -c clippunct -n %s -F\n", cond)
		case len(cmd.Args) > 0:
			fmt.Fprintf(&b, "complete -c clippunct -n %s -x -a '%s'\n", cond, strings.Join(cmd.Args, " "))
		}
	}

	return b.String()
}

// ---------------------------------------------------------------------------
// PowerShell
// ---------------------------------------------------------------------------

// psEscape escapes text for a single-quoted PowerShell string.
func psEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// psArray renders words as a PowerShell array literal.
func psArray(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = "'" + psEscape(w) + "'"
	}
	return "@(" + strings.Join(quoted, ", ") + ")"
}

func generatePowerShell(cmds []commandDef) string {
	var b strings.Builder

	b.WriteString("# PowerShell completion for clippunct\n\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName clippunct -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")

	b.WriteString("    $commands = [ordered]@{\n")
	for _, cmd := range cmds {
		fmt.Fprintf(&b, "        '%s' = '%s'\n", cmd.Name, psEscape(cmd.Desc))
	}
	b.WriteString("    }\n\n")

	b.WriteString("    $flags = @{\n")
	for _, cmd := range cmds {
		if len(cmd.Flags) > 0 {
			fmt.Fprintf(&b, "        '%s' = %s\n", cmd.Name, psArray(flagWords(cmd)))
		}
	}
	b.WriteString("    }\n\n")

	b.WriteString("    $arguments = @{\n")
	for _, cmd := range cmds {
		if len(cmd.Args) > 0 {
			fmt.Fprintf(&b, "        '%s' = %s\n", cmd.Name, psArray(cmd.Args))
		}
	}
	b.WriteString("    }\n\n")

	b.WriteString("    $flagValues = @{\n")
	seen := make(map[string]bool)
	for _, cmd := range cmds {
		for _, f := range cmd.Flags {
			if f.Type != flagEnum || seen[f.Long] {
				continue
			}
			seen[f.Long] = true
			fmt.Fprintf(&b, "        '--%s' = %s\n", f.Long, psArray(f.Values))
		}
	}
	b.WriteString("    }\n\n")

	b.WriteString(`    $elements = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })
    if ($wordToComplete -ne '') {
        $elements = @($elements | Select-Object -SkipLast 1)
    }

    if ($elements.Count -le 1) {
        $commands.GetEnumerator() | Where-Object { $_.Key -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_.Key, $_.Key, 'ParameterValue', $_.Value)
        }
        return
    }

    $command = $elements[1]
    $prev = $elements[-1]

    if ($flagValues.ContainsKey($prev)) {
        $flagValues[$prev] | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
        }
        return
    }

    if ($wordToComplete -like '-*' -and $flags.ContainsKey($command)) {
        $flags[$command] | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterName', $_)
        }
        return
    }

    if ($elements.Count -eq 2 -and $arguments.ContainsKey($command)) {
        $arguments[$command] | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
        }
    }
}
`)

	return b.String()
}
