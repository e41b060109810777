// Package config provides the translator configuration: defaults, an
// optional YAML file and validation.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/hackvm/codegen"
)

// ErrInvalid matches every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// LogConfig selects the default slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Config holds every setting of a translation run.
type Config struct {
	// EntryPoint is the function the bootstrap calls.
	EntryPoint string `yaml:"entry_point"`
	// StackBase is loaded into SP by the bootstrap.
	StackBase int `yaml:"stack_base"`
	// Bootstrap turns the bootstrap code on or off.
	Bootstrap bool `yaml:"bootstrap"`
	// Output overrides the derived output path.
	Output string `yaml:"output"`
	// Lint checks the generated assembly for duplicate labels and
	// undefined jump targets.
	Lint bool `yaml:"lint"`

	Log LogConfig `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		EntryPoint: codegen.DefaultEntryPoint,
		StackBase:  codegen.DefaultStackBase,
		Bootstrap:  true,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the values a run depends on.
func (c Config) Validate() error {
	if strings.TrimSpace(c.EntryPoint) == "" {
		return fmt.Errorf("%w: empty entry point", ErrInvalid)
	}

	if c.StackBase <= 0 || c.StackBase > 32767 {
		return fmt.Errorf("%w: stack base %d outside 1..32767", ErrInvalid, c.StackBase)
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}

	return nil
}

// SlogLevel maps the configured level name, including "trace", to a
// slog.Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "trace":
		return codegen.LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalid, l.Level)
	}
}
