// Package process runs helper programs in their own process group so a
// canceled helper takes its children down with it.
package process

import (
	"errors"
	"os/exec"
)

// ErrInvalidPID is returned for a pid that cannot lead a process group.
// Zero would target the caller's own group.
var ErrInvalidPID = errors.New("invalid pid")

// Bind isolates cmd and makes context cancellation kill its whole group.
// Call before cmd.Start; cmd must come from exec.CommandContext.
func Bind(cmd *exec.Cmd) {
	Isolate(cmd)
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		return KillGroup(cmd.Process.Pid)
	}
}
