package parser

import (
	"testing"

	"occ/internal/ast"
	"occ/internal/testkit"
)

// mustParse parses src and fails the test on any error.
func mustParse(t *testing.T, src string) *Result {
	t.Helper()
	res, err := ParseString("test.c", src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	if err := testkit.CheckInvariants(res.Program, res.Symbols, res.File); err != nil {
		t.Fatalf("invariants for %q: %v", src, err)
	}
	return res
}

// sexpr parses src and renders the program.
func sexpr(t *testing.T, src string) string {
	t.Helper()
	res := mustParse(t, src)
	return ast.Sexpr(res.Program, res.Strings)
}

// exprSexpr renders the expression of a single expression statement.
func exprSexpr(t *testing.T, src string) string {
	t.Helper()
	res := mustParse(t, src)
	if len(res.Program.Stmts) != 1 {
		t.Fatalf("%q: expected one statement, got %d", src, len(res.Program.Stmts))
	}
	es, ok := res.Program.Stmts[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("%q: expected expression statement, got %T", src, res.Program.Stmts[0])
	}
	return ast.Sexpr(es.X, res.Strings)
}
