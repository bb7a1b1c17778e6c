package main

import (
	"context"
	"errors"
	"fmt"

	clippunct "github.com/alnah/go-clippunct"
	"github.com/alnah/go-clippunct/internal/clipboard"
	"github.com/alnah/go-clippunct/internal/config"
	"github.com/alnah/go-clippunct/internal/logging"
	"github.com/alnah/go-clippunct/internal/notify"
)

// runWatch converts the clipboard as it changes until ctx is canceled.
func runWatch(ctx context.Context, args []string, env *Environment) error {
	flags, _, err := parseWatchFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common, env)
	if err != nil {
		return err
	}
	mergeWatchFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	interval, err := cfg.IntervalDuration()
	if err != nil {
		return err
	}

	// Fail fast instead of logging a read error every interval.
	current, err := env.Clipboard.ReadText()
	if err != nil && errors.Is(err, clipboard.ErrUnavailable) {
		return err
	}

	logger := logging.New(env.Stderr, cfg.Log.Level, cfg.Log.Format)
	conv := clippunct.NewConverter(
		clippunct.WithSkipTags(cfg.HTML.SkipTags...),
		clippunct.WithLogger(logger),
	)

	if flags.dryRun {
		return dryRun(ctx, conv, current, flags.common, env)
	}

	var notifier notify.Notifier = notify.Nop{}
	if cfg.Notify.IsEnabled() && env.Notifier != nil {
		notifier = env.Notifier
	}

	w := &clipboard.Watcher{
		Clipboard: env.Clipboard,
		Converter: conv,
		Notifier:  notifier,
		Logger:    logger,
		Messages: clipboard.Messages{
			Title: cfg.Notify.Title,
			Text:  cfg.Notify.Message,
			HTML:  cfg.Notify.HTMLMessage,
		},
		Interval: interval,
		Oneshot:  cfg.Watch.Oneshot,
	}

	if !cfg.Watch.Oneshot && !flags.common.quiet {
		fmt.Fprintf(env.Stderr, "Watching clipboard every %v (Ctrl+C to stop)\n", interval)
	}

	return w.Run(ctx)
}

// mergeWatchFlags merges CLI flags into config. CLI values override config values.
func mergeWatchFlags(flags *watchFlags, cfg *config.Config) {
	if flags.interval != "" {
		cfg.Watch.Interval = flags.interval
	}
	if flags.oneshot {
		cfg.Watch.Oneshot = true
	}
	if flags.noNotify {
		disabled := false
		cfg.Notify.Enabled = &disabled
	}
}

// dryRun converts a copy of the clipboard text in memory and prints it.
// The system clipboard is never written.
func dryRun(ctx context.Context, conv clipboard.Converter, text string, common commonFlags, env *Environment) error {
	mem := clipboard.NewMemory(text)
	w := &clipboard.Watcher{
		Clipboard: mem,
		Converter: conv,
		Oneshot:   true,
	}

	if err := w.Run(ctx); err != nil {
		return err
	}

	if mem.Writes() == 0 {
		if !common.quiet {
			fmt.Fprintln(env.Stderr, "No full-width punctuation on the clipboard")
		}
		return nil
	}

	converted, err := mem.ReadText()
	if err != nil {
		return err
	}
	fmt.Fprintln(env.Stdout, converted)
	return nil
}
