//go:build !darwin && !windows

package notify

// command builds a notify-send call. Arguments are passed directly, no quoting needed.
func command(msg Message) (string, []string) {
	return "notify-send", []string{"--app-name=clippunct", "--", msg.Title, msg.Body}
}
