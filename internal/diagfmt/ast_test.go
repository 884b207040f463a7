package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"occ/internal/parser"
)

func parseForFormat(t *testing.T, src string) (*parser.Result, ASTContext) {
	t.Helper()
	res, err := parser.ParseString("f.c", src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return res, ASTContext{FileSet: res.FileSet, Strings: res.Strings, Symbols: res.Symbols}
}

func TestFormatASTPretty(t *testing.T) {
	res, ctx := parseForFormat(t, "a = 1;\nif a > 0 return a")
	var buf bytes.Buffer
	if err := FormatASTPretty(&buf, res.Program, ctx); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"Program (span: 1:1-2:18)",
		"├─ Stmt[0]: ExprStmt (span: 1:1-1:7)",
		"│  └─ X: Assign",
		"│     ├─ Target: VarRef a #0",
		"└─ Stmt[1]: If",
		"   ├─ Cond: Binary <",
		"   │  ├─ Left: IntLit 0",
		"   └─ Then: Return",
	}
	out := buf.String()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("missing %q in:\n%s", w, out)
		}
	}
}

func TestFormatASTPrettyForPlaceholders(t *testing.T) {
	res, ctx := parseForFormat(t, "for (;;) x")
	var buf bytes.Buffer
	if err := FormatASTPretty(&buf, res.Program, ctx); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), ": _\n"); n != 3 {
		t.Fatalf("expected three empty header slots, got %d:\n%s", n, buf.String())
	}
}

func TestFormatASTJSON(t *testing.T) {
	res, ctx := parseForFormat(t, "x = -2")
	var buf bytes.Buffer
	if err := FormatASTJSON(&buf, res.Program, ctx); err != nil {
		t.Fatal(err)
	}
	var root ASTNodeOutput
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if root.Type != "Program" || len(root.Children) != 1 {
		t.Fatalf("unexpected root: %+v", root)
	}
	assign := root.Children[0].Children[0]
	if assign.Type != "Assign" || assign.Children[0].Fields["name"] != "x" {
		t.Fatalf("unexpected assign node: %+v", assign)
	}
	neg := assign.Children[1]
	if neg.Type != "Binary" || neg.Fields["op"] != "Sub" {
		t.Fatalf("negation must be Sub: %+v", neg)
	}
}

func TestFormatASTSexpr(t *testing.T) {
	res, ctx := parseForFormat(t, "while i < 3 i = i + 1")
	var buf bytes.Buffer
	if err := FormatASTSexpr(&buf, res.Program, ctx); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "(program (while (< i 3) (expr (= i (+ i 1)))))\n" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatASTTree(t *testing.T) {
	res, ctx := parseForFormat(t, "a + 1")
	ctx.Symbols = nil
	var buf bytes.Buffer
	if err := FormatASTTree(&buf, res.Program, ctx); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"expr",
		"  |",
		"  +",
		" /  \\",
		" a  1",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q\n%s", i, lines[i], want[i], buf.String())
		}
	}
}

func TestFormatNilProgram(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatASTPretty(&buf, nil, ASTContext{}); err == nil {
		t.Fatal("expected error for nil program")
	}
}

func TestFormatSymbols(t *testing.T) {
	res, _ := parseForFormat(t, "b = a; a = a + b")
	var buf bytes.Buffer
	if err := FormatSymbolsPretty(&buf, res.Symbols, res.FileSet); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[1], "0") || !strings.Contains(lines[1], "b") {
		t.Fatalf("unexpected listing:\n%s", buf.String())
	}

	buf.Reset()
	if err := FormatSymbolsJSON(&buf, res.Symbols, res.FileSet); err != nil {
		t.Fatal(err)
	}
	var syms []SymbolOutput
	if err := json.Unmarshal(buf.Bytes(), &syms); err != nil {
		t.Fatal(err)
	}
	if syms[1].Name != "a" || syms[1].Uses != 3 {
		t.Fatalf("unexpected symbol: %+v", syms[1])
	}
}

func TestBuildOutputsForFailedParse(t *testing.T) {
	if BuildASTOutput(nil, ASTContext{}) != nil {
		t.Fatal("nil program must give nil output")
	}
	if BuildSymbolsOutput(nil, nil) != nil {
		t.Fatal("nil table must give nil output")
	}
	res, _ := parseForFormat(t, "x = 1")
	out := BuildASTOutput(res.Program, ASTContext{FileSet: res.FileSet, Strings: res.Strings, Symbols: res.Symbols})
	if out == nil || out.Type != "Program" || len(out.Children) != 1 {
		t.Fatalf("unexpected output: %+v", out)
	}
}
