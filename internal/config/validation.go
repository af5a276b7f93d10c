package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	// Walk
	if c.Walk.Workers < 1 {
		errs = append(errs, "walk.workers must be >= 1")
	}
	if c.Walk.ChannelBuffer < 0 {
		errs = append(errs, "walk.channel_buffer must be >= 0")
	}
	for _, name := range c.Walk.IgnoreFiles {
		if name == "" || strings.ContainsAny(name, `/\`) {
			errs = append(errs, fmt.Sprintf("walk.ignore_files entry %q must be a bare file name", name))
		}
	}

	// Apply
	if c.Apply.Workers < 1 {
		errs = append(errs, "apply.workers must be >= 1")
	}

	// Editor
	if len(c.Editor.Command) > 0 && strings.TrimSpace(c.Editor.Command[0]) == "" {
		errs = append(errs, "editor.command must start with a program name")
	}
	if c.Editor.Attach && len(c.Editor.Command) == 0 {
		errs = append(errs, "editor.attach requires editor.command")
	}

	// Log
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err.Error())
	}

	// UI
	if c.UI.WordWrap < 20 {
		errs = append(errs, "ui.word_wrap must be >= 20")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// SlogLevel maps the configured level name to a slog.Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", l.Level)
	}
}
