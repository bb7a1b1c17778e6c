//go:build darwin

package notify

import "strings"

// command builds an AppleScript "display notification" call.
func command(msg Message) (string, []string) {
	script := `display notification "` + appleScriptQuote(msg.Body) +
		`" with title "` + appleScriptQuote(msg.Title) + `"`
	return "osascript", []string{"-e", script}
}

// appleScriptQuote escapes a value for an AppleScript double-quoted string.
func appleScriptQuote(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
