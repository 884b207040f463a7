package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"occ/internal/ast"
	"occ/internal/source"
	"occ/internal/symbols"
)

// CheckInvariants runs the structural checks every parsed program must pass:
// 1) program span lies within the file content
// 2) every node span is inside its parent span and in the same file
// 3) every VarRef resolves to a table symbol with the same name
// 4) only the defined binary operators appear
// 5) the table itself is consistent
func CheckInvariants(prog *ast.Program, table *symbols.Table, sf *source.File) error {
	if prog == nil || table == nil || sf == nil {
		return fmt.Errorf("nil program, table or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if prog.Span.File != sf.ID {
		return fmt.Errorf("program span points to different file id: got=%d want=%d", prog.Span.File, sf.ID)
	}
	if prog.Span.End > lenContent {
		return fmt.Errorf("program span end beyond content: %d > %d", prog.Span.End, lenContent)
	}

	var stack []source.Span
	var firstErr error
	check := func(n ast.Node) error {
		sp := n.NodeSpan()
		if sp.File != sf.ID {
			return fmt.Errorf("node span file mismatch: got=%d want=%d", sp.File, sf.ID)
		}
		if sp.Start > sp.End {
			return fmt.Errorf("inverted span %v", sp)
		}
		if len(stack) > 0 && !stack[len(stack)-1].Contains(sp) {
			return fmt.Errorf("span %v is outside parent span %v", sp, stack[len(stack)-1])
		}
		switch n := n.(type) {
		case *ast.VarRef:
			sym := table.Get(n.Symbol)
			if sym == nil {
				return fmt.Errorf("variable at %v has no symbol", sp)
			}
			if sym.Name != n.Name {
				return fmt.Errorf("variable at %v names %d but symbol %d names %d", sp, n.Name, n.Symbol, sym.Name)
			}
		case *ast.BinaryExpr:
			if !n.Op.Valid() {
				return fmt.Errorf("invalid operator %d at %v", n.Op, sp)
			}
		}
		return nil
	}
	ast.Walk(visitor(func(n ast.Node) bool {
		if firstErr != nil {
			return false
		}
		if n == nil {
			stack = stack[:len(stack)-1]
			return false
		}
		if err := check(n); err != nil {
			firstErr = err
			return false
		}
		stack = append(stack, n.NodeSpan())
		return true
	}), prog)
	if firstErr != nil {
		return firstErr
	}
	return table.Validate()
}

type visitor func(ast.Node) bool

func (f visitor) Visit(n ast.Node) ast.Visitor {
	if f(n) {
		return f
	}
	return nil
}
