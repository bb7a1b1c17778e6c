package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-clippunct/internal/config"
)

// envPrefix marks the variables read by clippunct.
const envPrefix = "CLIPPUNCT_"

// envConfig holds configuration from environment variables.
// Provides script-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // CLIPPUNCT_CONFIG: config file name or path
	Interval   string // CLIPPUNCT_INTERVAL: watch poll interval
	NoNotify   bool   // CLIPPUNCT_NO_NOTIFY: disable notifications
	LogLevel   string // CLIPPUNCT_LOG_LEVEL: debug, info, warn, error
	LogFormat  string // CLIPPUNCT_LOG_FORMAT: text, json
	Workers    int    // CLIPPUNCT_WORKERS: parallel file workers
}

// knownEnvVars lists valid CLIPPUNCT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"CLIPPUNCT_CONFIG":     true,
	"CLIPPUNCT_INTERVAL":   true,
	"CLIPPUNCT_NO_NOTIFY":  true,
	"CLIPPUNCT_LOG_LEVEL":  true,
	"CLIPPUNCT_LOG_FORMAT": true,
	"CLIPPUNCT_WORKERS":    true,
	"CLIPPUNCT_CONTAINER":  true, // read by doctor
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numeric and boolean values are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("CLIPPUNCT_CONFIG"),
		Interval:   os.Getenv("CLIPPUNCT_INTERVAL"),
		LogLevel:   os.Getenv("CLIPPUNCT_LOG_LEVEL"),
		LogFormat:  os.Getenv("CLIPPUNCT_LOG_FORMAT"),
	}

	if v := os.Getenv("CLIPPUNCT_NO_NOTIFY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.NoNotify = b
		}
	}

	if workers := os.Getenv("CLIPPUNCT_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars writes a warning for each unrecognized CLIPPUNCT_* variable.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overlays set environment values onto cfg.
// Flags are applied afterwards, giving: flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Interval != "" {
		cfg.Watch.Interval = env.Interval
	}
	if env.NoNotify {
		disabled := false
		cfg.Notify.Enabled = &disabled
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.LogFormat != "" {
		cfg.Log.Format = env.LogFormat
	}
	if env.Workers > 0 {
		cfg.Convert.Workers = env.Workers
	}
}

// loadConfig resolves the effective configuration for a command:
// base config, then the config file (flag or CLIPPUNCT_CONFIG), then env overrides.
// Command flags are merged by the caller.
func loadConfig(common commonFlags, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	path := common.config
	if path == "" {
		path = envCfg.ConfigPath
	}

	cfg := env.baseConfig()
	if path != "" {
		var err error
		cfg, err = config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	applyCommonFlags(common, cfg)
	return cfg, nil
}

// applyCommonFlags merges the logging flags shared by all commands.
func applyCommonFlags(common commonFlags, cfg *config.Config) {
	switch {
	case common.logLevel != "":
		cfg.Log.Level = common.logLevel
	case common.verbose:
		cfg.Log.Level = "debug"
	case common.quiet:
		cfg.Log.Level = "error"
	}
	if common.logFormat != "" {
		cfg.Log.Format = common.logFormat
	}
}
