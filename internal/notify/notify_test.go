package notify

// Notes:
// - Desktop is tested with stubbed lookPath and run; no real notification is shown.
// - Available() depends on the host PATH and is only checked for not panicking.

import (
	"context"
	"errors"
	"testing"
)

type recordedRun struct {
	name string
	args []string
}

func stubDesktop(lookErr, runErr error) (*Desktop, *[]recordedRun) {
	var runs []recordedRun
	d := &Desktop{
		lookPath: func(file string) (string, error) {
			if lookErr != nil {
				return "", lookErr
			}
			return "/usr/bin/" + file, nil
		},
		run: func(_ context.Context, name string, args ...string) error {
			runs = append(runs, recordedRun{name: name, args: args})
			return runErr
		},
	}
	return d, &runs
}

func TestNop(t *testing.T) {
	t.Parallel()

	var n Notifier = Nop{}
	if err := n.Notify(context.Background(), Message{Title: "t", Body: "b"}); err != nil {
		t.Errorf("Nop.Notify() error = %v", err)
	}
}

func TestDesktop_Notify(t *testing.T) {
	t.Parallel()

	d, runs := stubDesktop(nil, nil)
	msg := Message{Title: "成功转换标点符号", Body: "中文符号已转换成英文符号"}
	if err := d.Notify(context.Background(), msg); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}

	if len(*runs) != 1 {
		t.Fatalf("helper ran %d times, want 1", len(*runs))
	}
	got := (*runs)[0]
	if got.name != "/usr/bin/"+Helper() {
		t.Errorf("ran %q, want resolved %q", got.name, Helper())
	}
	if len(got.args) == 0 {
		t.Error("helper run without arguments")
	}
}

func TestDesktop_Notify_Unavailable(t *testing.T) {
	t.Parallel()

	d, runs := stubDesktop(errors.New("not found"), nil)
	err := d.Notify(context.Background(), Message{Title: "t"})
	if !errors.Is(err, ErrNotifierUnavailable) {
		t.Errorf("Notify() error = %v, want ErrNotifierUnavailable", err)
	}
	if len(*runs) != 0 {
		t.Error("helper ran although lookup failed")
	}
}

func TestDesktop_Notify_RunError(t *testing.T) {
	t.Parallel()

	runErr := errors.New("exit status 1")
	d, _ := stubDesktop(nil, runErr)
	err := d.Notify(context.Background(), Message{Title: "t"})
	if !errors.Is(err, runErr) {
		t.Errorf("Notify() error = %v, want wrapped run error", err)
	}
	if errors.Is(err, ErrNotifierUnavailable) {
		t.Error("run failure reported as unavailable")
	}
}

func TestHelper(t *testing.T) {
	t.Parallel()

	switch Helper() {
	case "osascript", "notify-send", "powershell":
	default:
		t.Errorf("Helper() = %q, want a known helper", Helper())
	}
	_ = Available()
}

func TestNewDesktop(t *testing.T) {
	t.Parallel()

	d := NewDesktop()
	if d.lookPath == nil || d.run == nil {
		t.Error("NewDesktop() left hooks unset")
	}
}
