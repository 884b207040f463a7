package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"occ/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.c|dir>",
	Short: "Parse source files and report errors without printing trees",
	Long: `Check parses every file and prints one line per file with the first
error or the statement and variable counts. Results are cached by content
hash between runs.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Int("jobs", 0, "max parallel files (0 = from occ.toml or GOMAXPROCS)")
	checkCmd.Flags().Bool("no-cache", false, "do not read or write the check cache")
	checkCmd.Flags().Bool("clear-cache", false, "drop the check cache before running")
	checkCmd.Flags().String("ui", "auto", "progress UI for directories (auto|on|off)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	s := settingsFrom(cmd.Context())
	ctx := cmd.Context()
	target := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if !cmd.Flags().Changed("jobs") {
		jobs = s.Check.Jobs
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	clearCache, err := cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	useUI, err := progressUI(uiValue, format == "pretty" && !s.quiet, isTerminal(os.Stdout))
	if err != nil {
		return err
	}

	opts := driver.CheckOptions{DirOptions: driver.DirOptions{
		Extensions:     s.Check.Extensions,
		Jobs:           jobs,
		MaxDiagnostics: s.Diagnostics.Max,
	}}
	if s.Check.Cache && !noCache {
		cache, err := driver.OpenDiskCache("occ")
		if err != nil {
			// без кэша проверка всё равно работает
			if !s.quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: check cache disabled: %v\n", err)
			}
		} else {
			if clearCache {
				if err := cache.DropAll(); err != nil {
					return fmt.Errorf("failed to clear cache: %w", err)
				}
			}
			opts.Cache = cache
		}
	}

	var report *driver.CheckReport
	if isDir(target) {
		if useUI {
			files, err := driver.ListSources(target, s.Check.Extensions)
			if err != nil {
				return fmt.Errorf("check %s: %w", target, err)
			}
			report, err = runCheckWithUI(ctx, "checking "+target, target, files, opts)
			if err != nil {
				return fmt.Errorf("check %s: %w", target, err)
			}
		} else {
			report, err = driver.CheckDir(ctx, target, opts)
			if err != nil {
				return fmt.Errorf("check %s: %w", target, err)
			}
		}
		relativize(report, target)
	} else {
		sum, err := driver.CheckFile(ctx, target, opts)
		if err != nil && sum.LoadError == "" {
			return err
		}
		report = &driver.CheckReport{Files: []driver.CheckSummary{sum}}
		if !sum.OK() {
			report.Failed = 1
		}
		if sum.Cached {
			report.Cached = 1
		}
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		printCheckPretty(out, report, s.quiet)
	}

	if report.Failed > 0 {
		return errCompileFailed
	}
	return nil
}

// progressUI decides whether a directory check runs under the bubbletea
// progress view. The view only replaces pretty output, so json and --quiet
// runs never get it, even with --ui=on.
func progressUI(value string, pretty, tty bool) (bool, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return pretty && tty, nil
	case "on":
		return pretty, nil
	case "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

func relativize(report *driver.CheckReport, dir string) {
	for i := range report.Files {
		if rel, err := filepath.Rel(dir, report.Files[i].Path); err == nil {
			report.Files[i].Path = filepath.ToSlash(rel)
		}
	}
}

func printCheckPretty(w io.Writer, report *driver.CheckReport, quiet bool) {
	okLabel := color.New(color.FgGreen).Sprint("ok  ")
	failLabel := color.New(color.FgRed, color.Bold).Sprint("FAIL")
	for _, sum := range report.Files {
		switch {
		case sum.LoadError != "":
			fmt.Fprintf(w, "%s %s: %s\n", failLabel, sum.Path, sum.LoadError)
		case sum.Error != nil:
			e := sum.Error
			fmt.Fprintf(w, "%s %s:%d:%d: %s: %s\n", failLabel, sum.Path, e.Line, e.Col, e.Code, e.Message)
		case !quiet:
			note := ""
			if sum.Cached {
				note = " (cached)"
			}
			fmt.Fprintf(w, "%s %s: %s, %s%s\n", okLabel, sum.Path,
				plural(sum.Statements, "statement"), plural(len(sum.Symbols), "variable"), note)
		}
	}
	if !quiet {
		fmt.Fprintf(w, "%s, %d failed, %d cached\n", plural(len(report.Files), "file"), report.Failed, report.Cached)
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
