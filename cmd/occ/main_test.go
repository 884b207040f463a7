package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"occ/internal/driver"
)

func newTestRoot(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "occ"}
	registerGlobalFlags(cmd.PersistentFlags())
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatal(err)
	}
	return cmd
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadSettingsFlagsOverrideConfig(t *testing.T) {
	prev := color.NoColor
	t.Cleanup(func() { color.NoColor = prev })

	cfg := writeFile(t, t.TempDir(), "occ.toml", "[diagnostics]\nmax = 7\ncolor = \"off\"\n[check]\njobs = 4\n")

	s, err := loadSettings(newTestRoot(t, "--config", cfg))
	if err != nil {
		t.Fatal(err)
	}
	if s.Diagnostics.Max != 7 || s.Diagnostics.Color != "off" || s.Check.Jobs != 4 || s.configPath != cfg {
		t.Fatalf("config not applied: %+v", s)
	}
	if !color.NoColor {
		t.Fatal("color=off must disable colors")
	}

	s, err = loadSettings(newTestRoot(t, "--config", cfg, "--max-diagnostics", "3", "--color", "on"))
	if err != nil {
		t.Fatal(err)
	}
	if s.Diagnostics.Max != 3 || s.Diagnostics.Color != "on" {
		t.Fatalf("flags must override config: %+v", s.Config)
	}
}

func TestLoadSettingsTraceDefaultsToPhase(t *testing.T) {
	cfg := writeFile(t, t.TempDir(), "occ.toml", "")
	s, err := loadSettings(newTestRoot(t, "--config", cfg, "--trace", "-"))
	if err != nil {
		t.Fatal(err)
	}
	if s.Trace.Level != "phase" || s.Trace.Output != "-" {
		t.Fatalf("unexpected trace settings: %+v", s.Trace)
	}
}

func TestLoadSettingsRejectsBadValues(t *testing.T) {
	cfg := writeFile(t, t.TempDir(), "occ.toml", "")
	if _, err := loadSettings(newTestRoot(t, "--config", cfg, "--color", "sometimes")); err == nil {
		t.Fatal("expected error for bad color")
	}
	if _, err := loadSettings(newTestRoot(t, "--config", cfg, "--trace-level", "loud")); err == nil {
		t.Fatal("expected error for bad trace level")
	}
	if _, err := loadSettings(newTestRoot(t, "--config", filepath.Join(t.TempDir(), "missing.toml"))); err == nil {
		t.Fatal("expected error for missing config")
	}
}

func TestSettingsFromEmptyContext(t *testing.T) {
	s := settingsFrom(context.Background())
	if s.Diagnostics.Max != 100 {
		t.Fatalf("expected defaults, got %+v", s.Config)
	}
}

func TestExitCode(t *testing.T) {
	if exitCode(nil) != 0 {
		t.Fatal("nil error must exit 0")
	}
	if exitCode(errCompileFailed) != 1 {
		t.Fatal("compile failure must exit 1")
	}
	if exitCode(errors.New("boom")) != 2 {
		t.Fatal("other errors must exit 2")
	}
}

func TestProgressUI(t *testing.T) {
	tests := []struct {
		value  string
		pretty bool
		tty    bool
		want   bool
	}{
		{"", true, true, true},
		{"AUTO", true, false, false},
		{" on ", true, false, true},
		{"on", false, true, false}, // json и --quiet без прогресса
		{"off", true, true, false},
	}
	for _, tt := range tests {
		got, err := progressUI(tt.value, tt.pretty, tt.tty)
		if err != nil || got != tt.want {
			t.Errorf("progressUI(%q, %v, %v) = %v, %v; want %v", tt.value, tt.pretty, tt.tty, got, err, tt.want)
		}
	}
	if _, err := progressUI("maybe", true, true); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestWriteParseJSON(t *testing.T) {
	ctx := context.Background()
	good, err := driver.ParseSource(ctx, "good.c", []byte("a = 1; return a"), driver.ParseOptions{})
	if err != nil {
		t.Fatal(err)
	}
	bad, err := driver.ParseSource(ctx, "bad.c", []byte("(1"), driver.ParseOptions{})
	if err != nil {
		t.Fatal(err)
	}
	results := []parsed{
		{path: "good.c", ParseResult: good},
		{path: "bad.c", ParseResult: bad},
		{path: "gone.c", ParseResult: &driver.ParseResult{Err: errors.New("no such file")}},
	}

	var buf bytes.Buffer
	if err := writeParseJSON(&buf, results); err != nil {
		t.Fatal(err)
	}
	var docs []parseOutput
	if err := json.Unmarshal(buf.Bytes(), &docs); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(docs) != 3 {
		t.Fatalf("got %d documents", len(docs))
	}
	if docs[0].AST == nil || len(docs[0].Symbols) != 1 || docs[0].Diagnostics.Count != 0 {
		t.Fatalf("unexpected good.c output: %+v", docs[0])
	}
	if docs[1].AST != nil || docs[1].Diagnostics.Count != 1 || docs[1].Diagnostics.Diagnostics[0].Code != "SYN2006" {
		t.Fatalf("unexpected bad.c output: %+v", docs[1])
	}
	if docs[2].Diagnostics.Diagnostics[0].Code != "IO4001" {
		t.Fatalf("unexpected gone.c output: %+v", docs[2])
	}
}

func TestWriteParseTextSexpr(t *testing.T) {
	res, err := driver.ParseSource(context.Background(), "f.c", []byte("x = 2; while x x = x - 1"), driver.ParseOptions{})
	if err != nil {
		t.Fatal(err)
	}
	s := &settings{}
	s.Diagnostics.Color = "off"
	var buf bytes.Buffer
	if err := writeParseText(&buf, []parsed{{path: "f.c", ParseResult: res}}, "sexpr", true, s); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "(program (expr (= x 2)) (while x (expr (= x (- x 1)))))\n") {
		t.Fatalf("unexpected sexpr output:\n%s", out)
	}
	if !strings.Contains(out, "SLOT") || strings.Contains(out, "== f.c ==") {
		t.Fatalf("unexpected listing:\n%s", out)
	}
}

func TestPrintCheckPretty(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	report := &driver.CheckReport{
		Files: []driver.CheckSummary{
			{Path: "a.c", Statements: 2, Symbols: []string{"x"}, Cached: true},
			{Path: "b.c", Error: &driver.ErrorSummary{Code: "SYN2006", Message: "expected ')'", Line: 1, Col: 3}},
			{Path: "c.c", LoadError: "permission denied"},
		},
		Failed: 2,
		Cached: 1,
	}
	var buf bytes.Buffer
	printCheckPretty(&buf, report, false)
	want := "ok   a.c: 2 statements, 1 variable (cached)\n" +
		"FAIL b.c:1:3: SYN2006: expected ')'\n" +
		"FAIL c.c: permission denied\n" +
		"3 files, 2 failed, 1 cached\n"
	if buf.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), want)
	}

	buf.Reset()
	printCheckPretty(&buf, report, true)
	if strings.Contains(buf.String(), "a.c") || strings.Contains(buf.String(), "files") {
		t.Fatalf("quiet output must list failures only:\n%s", buf.String())
	}
}

func TestRelativize(t *testing.T) {
	dir := filepath.Join("root", "src")
	report := &driver.CheckReport{Files: []driver.CheckSummary{{Path: filepath.Join(dir, "sub", "a.c")}}}
	relativize(report, dir)
	if report.Files[0].Path != "sub/a.c" {
		t.Fatalf("got %q", report.Files[0].Path)
	}
}
