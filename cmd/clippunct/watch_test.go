package main

// Notes:
// - runWatch is exercised in --oneshot mode against an in-memory clipboard;
//   the polling loop itself is covered in internal/clipboard.
// - The recording notifier stands in for the desktop helper.

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-clippunct/internal/clipboard"
	"github.com/alnah/go-clippunct/internal/config"
)

// ---------------------------------------------------------------------------
// TestRunWatch_Oneshot
// ---------------------------------------------------------------------------

func TestRunWatch_OneshotConvertsAndNotifies(t *testing.T) {
	t.Parallel()

	env := newTestEnv("")
	env.clip.Copy("你好，世界", nil)

	if err := runWatch(context.Background(), []string{"--oneshot"}, env.Environment); err != nil {
		t.Fatalf("runWatch() error = %v", err)
	}

	got, _ := env.clip.ReadText()
	if got != "你好, 世界" {
		t.Errorf("clipboard = %q, want %q", got, "你好, 世界")
	}

	msgs := env.notifier.messages()
	if len(msgs) != 1 {
		t.Fatalf("notifications = %d, want 1", len(msgs))
	}
	if msgs[0].Title != config.DefaultNotifyTitle || msgs[0].Body != config.DefaultNotifyMessage {
		t.Errorf("notification = %+v", msgs[0])
	}
	if strings.Contains(env.stderr.String(), "Watching clipboard") {
		t.Error("oneshot printed the watch banner")
	}
}

func TestRunWatch_OneshotHTMLFlavour(t *testing.T) {
	t.Parallel()

	env := newTestEnv("")
	env.clip.Copy("好，的", []byte("<b>好，的</b>"))

	if err := runWatch(context.Background(), []string{"--oneshot"}, env.Environment); err != nil {
		t.Fatalf("runWatch() error = %v", err)
	}

	html, _ := env.clip.ReadHTML()
	if !strings.Contains(string(html), "好, 的") {
		t.Errorf("clipboard html = %q", html)
	}
	msgs := env.notifier.messages()
	if len(msgs) != 1 || msgs[0].Body != config.DefaultNotifyHTMLMessage {
		t.Errorf("notifications = %+v, want the HTML message", msgs)
	}
}

func TestRunWatch_NoNotify(t *testing.T) {
	t.Parallel()

	env := newTestEnv("")
	env.clip.Copy("好！", nil)

	if err := runWatch(context.Background(), []string{"--oneshot", "--no-notify"}, env.Environment); err != nil {
		t.Fatal(err)
	}
	if got, _ := env.clip.ReadText(); got != "好!" {
		t.Errorf("clipboard = %q, want %q", got, "好!")
	}
	if n := len(env.notifier.messages()); n != 0 {
		t.Errorf("notifications = %d, want 0", n)
	}
}

func TestRunWatch_UnchangedClipboardNotWritten(t *testing.T) {
	t.Parallel()

	env := newTestEnv("")
	env.clip.Copy("plain ascii, nothing to do.", nil)

	if err := runWatch(context.Background(), []string{"--oneshot"}, env.Environment); err != nil {
		t.Fatal(err)
	}
	if n := env.clip.Writes(); n != 0 {
		t.Errorf("clipboard writes = %d, want 0", n)
	}
	if n := len(env.notifier.messages()); n != 0 {
		t.Errorf("notifications = %d, want 0", n)
	}
}

// ---------------------------------------------------------------------------
// TestRunWatch_DryRun
// ---------------------------------------------------------------------------

func TestRunWatch_DryRun(t *testing.T) {
	t.Parallel()

	t.Run("prints without writing", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv("")
		env.clip.Copy("【注意】", nil)

		if err := runWatch(context.Background(), []string{"--dry-run"}, env.Environment); err != nil {
			t.Fatal(err)
		}
		if got := env.stdout.String(); got != "[注意]\n" {
			t.Errorf("stdout = %q, want %q", got, "[注意]\n")
		}
		if n := env.clip.Writes(); n != 0 {
			t.Errorf("clipboard writes = %d, want 0", n)
		}
		if n := len(env.notifier.messages()); n != 0 {
			t.Errorf("notifications = %d, want 0", n)
		}
	})

	t.Run("nothing to convert", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv("")
		env.clip.Copy("fine", nil)

		if err := runWatch(context.Background(), []string{"--dry-run"}, env.Environment); err != nil {
			t.Fatal(err)
		}
		if env.stdout.Len() != 0 {
			t.Errorf("stdout = %q, want empty", env.stdout.String())
		}
		if !strings.Contains(env.stderr.String(), "No full-width punctuation") {
			t.Errorf("stderr = %q", env.stderr.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunWatch_Errors
// ---------------------------------------------------------------------------

func TestRunWatch_Errors(t *testing.T) {
	t.Parallel()

	t.Run("invalid interval", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv("")
		err := runWatch(context.Background(), []string{"--oneshot", "--interval", "soon"}, env.Environment)
		if !errors.Is(err, config.ErrInvalidInterval) {
			t.Errorf("runWatch() error = %v, want ErrInvalidInterval", err)
		}
	})

	t.Run("clipboard unavailable", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv("")
		env.Clipboard = brokenClipboard{}
		err := runWatch(context.Background(), []string{"--oneshot"}, env.Environment)
		if !errors.Is(err, clipboard.ErrUnavailable) {
			t.Errorf("runWatch() error = %v, want ErrUnavailable", err)
		}
	})
}

func TestRunWatch_StopsOnCancel(t *testing.T) {
	t.Parallel()

	env := newTestEnv("")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := runWatch(ctx, []string{"--interval", "100ms"}, env.Environment); err != nil {
		t.Errorf("runWatch() error = %v, want nil on cancellation", err)
	}
	if !strings.Contains(env.stderr.String(), "Watching clipboard every 100ms") {
		t.Errorf("stderr = %q, want the watch banner", env.stderr.String())
	}
}

func TestMergeWatchFlags(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	mergeWatchFlags(&watchFlags{interval: "2s", oneshot: true, noNotify: true}, cfg)

	if cfg.Watch.Interval != "2s" || !cfg.Watch.Oneshot || cfg.Notify.IsEnabled() {
		t.Errorf("merged config = %+v", cfg)
	}

	cfg = config.DefaultConfig()
	mergeWatchFlags(&watchFlags{}, cfg)
	if cfg.Watch.Interval != config.DefaultInterval.String() || !cfg.Notify.IsEnabled() {
		t.Errorf("empty flags changed config: %+v", cfg)
	}
}
