// Package config holds the settings of a dis session.
package config

import (
	"dis/stdlib"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"

	OutputStdout = "stdout"
	OutputStderr = "stderr"
)

type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	// Output receives log statements: stdout, stderr or a file path.
	Output string `yaml:"output"`
	// Natives lists the stdlib modules registered next to the core natives.
	Natives []string `yaml:"natives"`
}

func Default() *Config {
	return &Config{
		LogLevel:  "warn",
		LogFormat: FormatText,
		Output:    OutputStdout,
	}
}

// Load reads the YAML file at path on top of the defaults. Unknown keys are
// rejected.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("log_format must be %q or %q, got %q", FormatText, FormatJSON, c.LogFormat)
	}
	if strings.TrimSpace(c.Output) == "" {
		return errors.New("output must not be empty")
	}
	for _, name := range c.Natives {
		if _, ok := stdlib.BuiltinModules[name]; !ok {
			return fmt.Errorf("unknown natives module %q (known: %s)", name, strings.Join(stdlib.ModuleNames(), ", "))
		}
	}
	return nil
}

func parseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return l, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// Logger builds the session logger, writing to w.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// OpenOutput returns the writer for log statements and a function that
// releases it.
func (c *Config) OpenOutput() (io.Writer, func() error, error) {
	switch c.Output {
	case OutputStdout:
		return os.Stdout, func() error { return nil }, nil
	case OutputStderr:
		return os.Stderr, func() error { return nil }, nil
	}
	f, err := os.OpenFile(c.Output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("config: output: %w", err)
	}
	return f, f.Close, nil
}
