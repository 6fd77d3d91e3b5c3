// Package config provides configuration for chesstree.
package config

import (
	"fmt"

	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/chesstree/internal/errors"
)

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn or error.
	Level string `mapstructure:"level"`

	// Format is "console" or "json".
	Format string `mapstructure:"format"`
}

// ZapLevel parses Level.
func (l LogConfig) ZapLevel() (zapcore.Level, error) {
	var level zapcore.Level
	err := level.UnmarshalText([]byte(l.Level))
	return level, err
}

// Config holds all program configuration.
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`

	// Workers is the number of games parsed in parallel; 0 means one per CPU.
	Workers int `mapstructure:"workers"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Output: *NewOutputConfig(),
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	if c.Output.MaxLineLength < 0 {
		return invalid("output.max_line_length must not be negative, got %d", c.Output.MaxLineLength)
	}
	switch c.Output.TagFormat {
	case AllTags, SevenTagRoster, NoTags:
	default:
		return invalid("output.tags must be all, roster or none, got %q", c.Output.TagFormat)
	}
	switch c.Output.TagLineEnding {
	case "\n", "\r\n":
	default:
		return invalid("output.tag_line_ending must be \\n or \\r\\n, got %q", c.Output.TagLineEnding)
	}
	if _, err := c.Log.ZapLevel(); err != nil {
		return invalid("log.level: %v", err)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return invalid("log.format must be console or json, got %q", c.Log.Format)
	}
	if c.Workers < 0 {
		return invalid("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), errors.ErrInvalidConfig)
}
