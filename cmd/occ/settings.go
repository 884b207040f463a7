package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"occ/internal/config"
	"occ/internal/diagfmt"
	"occ/internal/observ"
)

// settings is the occ.toml configuration with command-line overrides applied.
type settings struct {
	config.Config
	configPath string
	quiet      bool
	timings    bool
}

type settingsKey struct{}

func withSettings(ctx context.Context, s *settings) context.Context {
	return context.WithValue(ctx, settingsKey{}, s)
}

func settingsFrom(ctx context.Context) *settings {
	if s, ok := ctx.Value(settingsKey{}).(*settings); ok {
		return s
	}
	return &settings{Config: config.Default()}
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Root().PersistentFlags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	var loaded *config.Loaded
	if configPath != "" {
		loaded, err = config.Load(configPath)
	} else {
		loaded, err = config.Discover(".")
	}
	if err != nil {
		return nil, err
	}
	s := &settings{Config: loaded.Config, configPath: loaded.Path}

	// Флаги командной строки перекрывают occ.toml, только если заданы явно
	if flags.Changed("color") {
		if s.Diagnostics.Color, err = flags.GetString("color"); err != nil {
			return nil, fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	if flags.Changed("max-diagnostics") {
		if s.Diagnostics.Max, err = flags.GetInt("max-diagnostics"); err != nil {
			return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	if flags.Changed("trace") {
		if s.Trace.Output, err = flags.GetString("trace"); err != nil {
			return nil, fmt.Errorf("failed to get trace flag: %w", err)
		}
		// --trace без уровня включает phase
		if !flags.Changed("trace-level") && s.Trace.Level == "off" {
			s.Trace.Level = "phase"
		}
	}
	if flags.Changed("trace-level") {
		if s.Trace.Level, err = flags.GetString("trace-level"); err != nil {
			return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
		}
	}
	if flags.Changed("trace-format") {
		if s.Trace.Format, err = flags.GetString("trace-format"); err != nil {
			return nil, fmt.Errorf("failed to get trace-format flag: %w", err)
		}
	}
	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	color.NoColor = !s.useColor(os.Stdout)
	return s, nil
}

func (s *settings) useColor(f *os.File) bool {
	switch s.Diagnostics.Color {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}

func (s *settings) prettyOpts() diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:     s.useColor(os.Stderr),
		Context:   2,
		ShowNotes: true,
	}
}

// newTimer returns nil unless --timings is set; observ.Timer is nil-safe.
func (s *settings) newTimer() *observ.Timer {
	if !s.timings {
		return nil
	}
	return observ.NewTimer()
}

func (s *settings) printTimings(cmd *cobra.Command, timer *observ.Timer) {
	if timer == nil {
		return
	}
	fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
}
