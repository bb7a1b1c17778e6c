package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-clippunct/internal/clipboard"
	"github.com/alnah/go-clippunct/internal/config"
	"github.com/alnah/go-clippunct/internal/notify"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, configuration, and the desktop backends.
type Environment struct {
	Now       func() time.Time
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Config    *config.Config // Base config when no --config is given
	Clipboard clipboard.Clipboard
	Notifier  notify.Notifier
}

// DefaultEnv returns the production environment backed by the system clipboard,
// with its HTML flavour where the platform helper is installed.
func DefaultEnv() *Environment {
	return &Environment{
		Now:       time.Now,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Config:    config.DefaultConfig(),
		Clipboard: clipboard.Detect(),
		Notifier:  notify.NewDesktop(),
	}
}

// baseConfig returns a private copy of the environment's base config.
func (e *Environment) baseConfig() *config.Config {
	if e.Config == nil {
		return config.DefaultConfig()
	}
	cfg := *e.Config
	cfg.HTML.SkipTags = append([]string(nil), e.Config.HTML.SkipTags...)
	if e.Config.Notify.Enabled != nil {
		enabled := *e.Config.Notify.Enabled
		cfg.Notify.Enabled = &enabled
	}
	return &cfg
}
