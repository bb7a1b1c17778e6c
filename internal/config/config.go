package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-clippunct/internal/fileutil"
	"github.com/alnah/go-clippunct/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound   = errors.New("config file not found")
	ErrEmptyConfigName  = errors.New("config name cannot be empty")
	ErrConfigParse      = errors.New("failed to parse config")
	ErrInvalidInterval  = errors.New("invalid watch interval")
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
	ErrInvalidWorkers   = errors.New("invalid worker count")
	ErrFieldTooLong     = errors.New("field exceeds maximum length")
)

// AppDirName is the directory searched under os.UserConfigDir.
const AppDirName = "clippunct"

// Watch interval bounds.
const (
	DefaultInterval = 500 * time.Millisecond
	MinInterval     = 50 * time.Millisecond
	MaxInterval     = time.Minute
)

// Field limits.
const (
	MaxMessageLength = 200 // Notification title and body
	MaxTagLength     = 32  // HTML element name
	MaxSkipTags      = 64
	MaxWorkers       = 64
)

// Notification defaults.
const (
	DefaultNotifyTitle       = "成功转换标点符号"
	DefaultNotifyMessage     = "中文符号已转换成英文符号"
	DefaultNotifyHTMLMessage = "中文符号已转换成英文符号，已保留格式"
)

//go:embed default.yaml
var defaultYAML []byte

// DefaultYAML returns the commented default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}

// Config holds all configuration for clippunct.
type Config struct {
	Watch   WatchConfig   `yaml:"watch"`
	Notify  NotifyConfig  `yaml:"notify"`
	HTML    HTMLConfig    `yaml:"html"`
	Log     LogConfig     `yaml:"log"`
	Convert ConvertConfig `yaml:"convert"`
}

// WatchConfig defines clipboard polling options.
type WatchConfig struct {
	Interval string `yaml:"interval"` // Go duration, e.g. "500ms"
	Oneshot  bool   `yaml:"oneshot"`
}

// NotifyConfig defines desktop notification options.
type NotifyConfig struct {
	Enabled     *bool  `yaml:"enabled"` // nil = enabled
	Title       string `yaml:"title"`
	Message     string `yaml:"message"`     // shown after a text conversion
	HTMLMessage string `yaml:"htmlMessage"` // shown when formatting was preserved
}

// IsEnabled reports whether notifications are on. Unset means on.
func (n NotifyConfig) IsEnabled() bool {
	return n.Enabled == nil || *n.Enabled
}

// HTMLConfig defines markup conversion options.
type HTMLConfig struct {
	SkipTags []string `yaml:"skipTags"`
}

// LogConfig defines diagnostic logging options.
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "text", "json"
}

// ConvertConfig defines file conversion options.
type ConvertConfig struct {
	Workers int  `yaml:"workers"` // 0 = auto
	InPlace bool `yaml:"inPlace"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	enabled := true
	return &Config{
		Watch: WatchConfig{Interval: DefaultInterval.String()},
		Notify: NotifyConfig{
			Enabled:     &enabled,
			Title:       DefaultNotifyTitle,
			Message:     DefaultNotifyMessage,
			HTMLMessage: DefaultNotifyHTMLMessage,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// IntervalDuration returns the parsed watch interval, or DefaultInterval when unset.
func (c *Config) IntervalDuration() (time.Duration, error) {
	return ParseInterval(c.Watch.Interval)
}

// ParseInterval parses and bounds-checks a watch interval. Empty means default.
func ParseInterval(s string) (time.Duration, error) {
	if s == "" {
		return DefaultInterval, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInterval, s)
	}
	if d < MinInterval || d > MaxInterval {
		return 0, fmt.Errorf("%w: %s (must be between %s and %s)", ErrInvalidInterval, d, MinInterval, MaxInterval)
	}
	return d, nil
}

// Validate checks value ranges and field lengths.
// Called automatically by LoadConfig, but available for callers that build
// a Config manually or apply overrides after loading.
func (c *Config) Validate() error {
	if _, err := c.IntervalDuration(); err != nil {
		return fmt.Errorf("watch.interval: %w", err)
	}

	if err := validateFieldLength("notify.title", c.Notify.Title, MaxMessageLength); err != nil {
		return err
	}
	if err := validateFieldLength("notify.message", c.Notify.Message, MaxMessageLength); err != nil {
		return err
	}
	if err := validateFieldLength("notify.htmlMessage", c.Notify.HTMLMessage, MaxMessageLength); err != nil {
		return err
	}

	if len(c.HTML.SkipTags) > MaxSkipTags {
		return fmt.Errorf("html.skipTags: %d entries (max %d)", len(c.HTML.SkipTags), MaxSkipTags)
	}
	for i, tag := range c.HTML.SkipTags {
		if err := validateFieldLength(fmt.Sprintf("html.skipTags[%d]", i), tag, MaxTagLength); err != nil {
			return err
		}
	}

	if err := ValidateLogLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if err := ValidateLogFormat(c.Log.Format); err != nil {
		return fmt.Errorf("log.format: %w", err)
	}

	if c.Convert.Workers < 0 || c.Convert.Workers > MaxWorkers {
		return fmt.Errorf("convert.workers: %w: %d (must be between 0 and %d)", ErrInvalidWorkers, c.Convert.Workers, MaxWorkers)
	}

	return nil
}

// ValidateLogLevel accepts debug, info, warn, error (case-insensitive) or empty.
func ValidateLogLevel(level string) error {
	switch strings.ToLower(level) {
	case "", "debug", "info", "warn", "warning", "error":
		return nil
	}
	return fmt.Errorf("%w: %q (must be debug, info, warn, or error)", ErrInvalidLogLevel, level)
}

// ValidateLogFormat accepts text, json (case-insensitive) or empty.
func ValidateLogFormat(format string) error {
	switch strings.ToLower(format) {
	case "", "text", "json":
		return nil
	}
	return fmt.Errorf("%w: %q (must be text or json)", ErrInvalidLogFormat, format)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var file Config
	if err := yamlutil.Decode(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	cfg := DefaultConfig()
	cfg.merge(&file)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge overlays the non-zero fields of src onto c.
func (c *Config) merge(src *Config) {
	if src.Watch.Interval != "" {
		c.Watch.Interval = src.Watch.Interval
	}
	c.Watch.Oneshot = src.Watch.Oneshot

	if src.Notify.Enabled != nil {
		c.Notify.Enabled = src.Notify.Enabled
	}
	if src.Notify.Title != "" {
		c.Notify.Title = src.Notify.Title
	}
	if src.Notify.Message != "" {
		c.Notify.Message = src.Notify.Message
	}
	if src.Notify.HTMLMessage != "" {
		c.Notify.HTMLMessage = src.Notify.HTMLMessage
	}

	if len(src.HTML.SkipTags) > 0 {
		c.HTML.SkipTags = append([]string(nil), src.HTML.SkipTags...)
	}

	if src.Log.Level != "" {
		c.Log.Level = src.Log.Level
	}
	if src.Log.Format != "" {
		c.Log.Format = src.Log.Format
	}

	c.Convert = src.Convert
}

// SearchPaths lists the files tried for a config name, in lookup order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries the current directory, then the user config directory.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
