package main

// Notes:
// - Signal delivery itself is not exercised; only the context contract the
//   watch loop relies on: live until stop() or parent cancellation.

import (
	"context"
	"testing"
)

func TestNotifyContext(t *testing.T) {
	t.Parallel()

	done := func(ctx context.Context) bool {
		select {
		case <-ctx.Done():
			return true
		default:
			return false
		}
	}

	t.Run("live until stopped", func(t *testing.T) {
		t.Parallel()

		ctx, stop := notifyContext(context.Background())
		if done(ctx) {
			t.Fatal("context canceled before stop()")
		}
		stop()
		if !done(ctx) {
			t.Fatal("context still live after stop()")
		}
	})

	t.Run("follows parent", func(t *testing.T) {
		t.Parallel()

		parent, cancel := context.WithCancel(context.Background())
		ctx, stop := notifyContext(parent)
		defer stop()

		cancel()
		if !done(ctx) {
			t.Fatal("context still live after parent cancellation")
		}
	})
}
