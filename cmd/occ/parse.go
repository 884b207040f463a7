package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"occ/internal/diag"
	"occ/internal/diagfmt"
	"occ/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.c|dir|->",
	Short: "Parse source files and print the syntax tree",
	Long: `Parse builds the syntax tree and the table of local variables.
A directory parses every source file in it independently; "-" reads stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|tree|sexpr)")
	parseCmd.Flags().Bool("symbols", false, "print the table of local variables")
	parseCmd.Flags().Int("jobs", 0, "max parallel files for directories (0 = from occ.toml or GOMAXPROCS)")
}

// parseOutput is the JSON document produced for one file.
type parseOutput struct {
	File        string                    `json:"file"`
	AST         *diagfmt.ASTNodeOutput    `json:"ast,omitempty"`
	Symbols     []diagfmt.SymbolOutput    `json:"symbols,omitempty"`
	Diagnostics diagfmt.DiagnosticsOutput `json:"diagnostics"`
}

func runParse(cmd *cobra.Command, args []string) error {
	s := settingsFrom(cmd.Context())
	target := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "tree", "sexpr":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	withSymbols, err := cmd.Flags().GetBool("symbols")
	if err != nil {
		return fmt.Errorf("failed to get symbols flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if !cmd.Flags().Changed("jobs") {
		jobs = s.Check.Jobs
	}

	ctx := cmd.Context()
	timer := s.newTimer()
	opts := driver.ParseOptions{MaxDiagnostics: s.Diagnostics.Max, Timer: timer}

	var results []parsed
	switch {
	case target == "-":
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		res, err := driver.ParseSource(ctx, "<stdin>", src, opts)
		if err != nil {
			return err
		}
		results = append(results, parsed{path: "<stdin>", ParseResult: res})
	case isDir(target):
		_, dirResults, err := driver.ParseDir(ctx, target, driver.DirOptions{
			Extensions:     s.Check.Extensions,
			Jobs:           jobs,
			MaxDiagnostics: s.Diagnostics.Max,
		})
		if err != nil {
			return fmt.Errorf("parse %s: %w", target, err)
		}
		for _, r := range dirResults {
			results = append(results, parsed{path: relPath(target, r.Path), ParseResult: r.ParseResult})
		}
	default:
		res, err := driver.Parse(ctx, target, opts)
		if err != nil {
			return err
		}
		results = append(results, parsed{path: target, ParseResult: res})
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		err = writeParseJSON(out, results)
	} else {
		err = writeParseText(out, results, format, withSymbols, s)
	}
	if err != nil {
		return err
	}
	s.printTimings(cmd, timer)

	for _, r := range results {
		if r.Failed() {
			return errCompileFailed
		}
	}
	return nil
}

// parsed pairs a result with the path shown to the user.
type parsed struct {
	path string
	*driver.ParseResult
}

func writeParseText(w io.Writer, results []parsed, format string, withSymbols bool, s *settings) error {
	multi := len(results) > 1
	for i, r := range results {
		if r.File == nil {
			// файл не прочитан: спанов нет, печатаем без контекста
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.path, r.Err)
			continue
		}
		if r.Bag.HasErrors() || r.Bag.HasWarnings() {
			diagfmt.Pretty(os.Stderr, r.Bag, r.FileSet, s.prettyOpts())
		}
		if r.Program == nil {
			continue
		}
		if multi {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "== %s ==\n", r.path)
		}
		ctx := diagfmt.ASTContext{FileSet: r.FileSet, Strings: r.Strings, Symbols: r.Symbols}
		var err error
		switch format {
		case "tree":
			err = diagfmt.FormatASTTree(w, r.Program, ctx)
		case "sexpr":
			err = diagfmt.FormatASTSexpr(w, r.Program, ctx)
		default:
			err = diagfmt.FormatASTPretty(w, r.Program, ctx)
		}
		if err != nil {
			return err
		}
		if withSymbols {
			fmt.Fprintln(w)
			if err := diagfmt.FormatSymbolsPretty(w, r.Symbols, r.FileSet); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeParseJSON(w io.Writer, results []parsed) error {
	docs := make([]parseOutput, 0, len(results))
	for _, r := range results {
		if r.File == nil {
			docs = append(docs, parseOutput{File: r.path, Diagnostics: loadErrorOutput(r.Err)})
			continue
		}
		ctx := diagfmt.ASTContext{FileSet: r.FileSet, Strings: r.Strings, Symbols: r.Symbols}
		docs = append(docs, parseOutput{
			File:        r.path,
			AST:         diagfmt.BuildASTOutput(r.Program, ctx),
			Symbols:     diagfmt.BuildSymbolsOutput(r.Symbols, r.FileSet),
			Diagnostics: diagfmt.BuildDiagnosticsOutput(r.Bag, r.FileSet, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true}),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(docs) == 1 {
		return enc.Encode(docs[0])
	}
	return enc.Encode(docs)
}

func loadErrorOutput(err error) diagfmt.DiagnosticsOutput {
	return diagfmt.DiagnosticsOutput{
		Diagnostics: []diagfmt.DiagnosticJSON{{
			Severity: diag.SevError.String(),
			Code:     diag.IOLoadFileError.ID(),
			Message:  "failed to load file: " + err.Error(),
		}},
		Count: 1,
	}
}

func relPath(base, path string) string {
	if rel, err := filepath.Rel(base, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return path
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
