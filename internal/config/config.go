// Package config loads the occ.toml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the project file looked up from the working directory upwards.
const FileName = "occ.toml"

type Config struct {
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Trace       TraceConfig       `toml:"trace"`
	Check       CheckConfig       `toml:"check"`
}

type DiagnosticsConfig struct {
	Max   int    `toml:"max"`
	Color string `toml:"color"` // auto|on|off
}

type TraceConfig struct {
	Level  string `toml:"level"`  // off|error|phase|detail|debug
	Output string `toml:"output"` // "-" для stderr
	Format string `toml:"format"` // auto|text|ndjson
}

type CheckConfig struct {
	Extensions []string `toml:"extensions"`
	Jobs       int      `toml:"jobs"`
	Cache      bool     `toml:"cache"`
}

// Default returns the configuration used when no occ.toml exists.
func Default() Config {
	return Config{
		Diagnostics: DiagnosticsConfig{Max: 100, Color: "auto"},
		Trace:       TraceConfig{Level: "off", Output: "-", Format: "auto"},
		Check:       CheckConfig{Extensions: []string{".c"}, Cache: true},
	}
}

// Loaded is a configuration together with where it came from.
type Loaded struct {
	Config
	Path string // "" если файл не найден
	Root string
}

// Find walks up from startDir looking for occ.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Discover finds and loads occ.toml above startDir, or returns defaults.
func Discover(startDir string) (*Loaded, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &Loaded{Config: Default()}, nil
	}
	return Load(path)
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Loaded, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Loaded{Config: cfg, Path: path, Root: filepath.Dir(path)}, nil
}

// Validate checks enumerated values and ranges.
func (c *Config) Validate() error {
	switch c.Diagnostics.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("[diagnostics].color must be auto|on|off, got %q", c.Diagnostics.Color)
	}
	if c.Diagnostics.Max < 0 {
		return fmt.Errorf("[diagnostics].max must not be negative")
	}
	switch c.Trace.Level {
	case "off", "error", "phase", "detail", "debug":
	default:
		return fmt.Errorf("[trace].level must be off|error|phase|detail|debug, got %q", c.Trace.Level)
	}
	switch c.Trace.Format {
	case "auto", "text", "ndjson":
	default:
		return fmt.Errorf("[trace].format must be auto|text|ndjson, got %q", c.Trace.Format)
	}
	if c.Check.Jobs < 0 {
		return fmt.Errorf("[check].jobs must not be negative")
	}
	for _, ext := range c.Check.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("[check].extensions: %q must start with '.'", ext)
		}
	}
	return nil
}
