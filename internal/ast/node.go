package ast

import "occ/internal/source"

// Node is any syntax tree node.
type Node interface {
	NodeSpan() source.Span
	node()
}

// Stmt is a statement node.
type Stmt interface {
	Node
	Kind() StmtKind
	stmtNode()
}

// Expr is an expression node.
type Expr interface {
	Node
	Kind() ExprKind
	exprNode()
}

// Program is the root of a parsed file: statements in source order.
type Program struct {
	Stmts []Stmt
	Span  source.Span
}

func (p *Program) NodeSpan() source.Span { return p.Span }
func (*Program) node()                   {}
