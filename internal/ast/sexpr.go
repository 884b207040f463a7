package ast

import (
	"strconv"
	"strings"

	"occ/internal/source"
)

// Sexpr renders node as a span-free s-expression:
//
//	(program (expr (= a (+ b 1))) (return (< 4 3)))
//
// Missing optional parts print as `_`. Two trees are structurally equal
// exactly when their Sexpr output is equal.
func Sexpr(node Node, strs *source.Interner) string {
	var sb strings.Builder
	writeSexpr(&sb, node, strs)
	return sb.String()
}

func writeSexpr(sb *strings.Builder, node Node, strs *source.Interner) {
	if node == nil || isNilNode(node) {
		sb.WriteByte('_')
		return
	}
	switch n := node.(type) {
	case *Program:
		sb.WriteString("(program")
		for _, s := range n.Stmts {
			sb.WriteByte(' ')
			writeSexpr(sb, s, strs)
		}
		sb.WriteByte(')')
	case *ReturnStmt:
		writeList(sb, strs, "return", n.Result)
	case *IfStmt:
		writeList(sb, strs, "if", n.Cond, n.Then, optStmt(n.Else))
	case *ForStmt:
		writeList(sb, strs, "for", optExpr(n.Init), optExpr(n.Cond), optExpr(n.Post), n.Body)
	case *WhileStmt:
		writeList(sb, strs, "while", n.Cond, n.Body)
	case *ExprStmt:
		writeList(sb, strs, "expr", n.X)
	case *BinaryExpr:
		writeList(sb, strs, n.Op.String(), n.Left, n.Right)
	case *AssignExpr:
		writeList(sb, strs, "=", n.Target, n.Value)
	case *IntLit:
		sb.WriteString(strconv.FormatUint(n.Value, 10))
	case *VarRef:
		if name, ok := lookupName(strs, n.Name); ok {
			sb.WriteString(name)
		} else {
			sb.WriteString("$" + strconv.FormatUint(uint64(n.Name), 10))
		}
	}
}

func writeList(sb *strings.Builder, strs *source.Interner, head string, args ...Node) {
	sb.WriteByte('(')
	sb.WriteString(head)
	for _, a := range args {
		sb.WriteByte(' ')
		writeSexpr(sb, a, strs)
	}
	sb.WriteByte(')')
}

// optExpr/optStmt turn a nil interface into an untyped nil Node.
func optExpr(e Expr) Node {
	if e == nil {
		return nil
	}
	return e
}

func optStmt(s Stmt) Node {
	if s == nil {
		return nil
	}
	return s
}

func lookupName(strs *source.Interner, id source.StringID) (string, bool) {
	if strs == nil {
		return "", false
	}
	return strs.Lookup(id)
}
