package ast

import "occ/internal/source"

type StmtKind uint8

const (
	StmtReturn StmtKind = iota
	StmtIf
	StmtFor
	StmtWhile
	StmtExpr
)

var stmtKindNames = [...]string{
	StmtReturn: "Return",
	StmtIf:     "If",
	StmtFor:    "For",
	StmtWhile:  "While",
	StmtExpr:   "Expr",
}

func (k StmtKind) String() string {
	if int(k) < len(stmtKindNames) {
		return stmtKindNames[k]
	}
	return "Stmt?"
}

// ReturnStmt is `return expr`.
type ReturnStmt struct {
	Result Expr
	Span   source.Span
}

// IfStmt is `if cond then (else else)?`. Else is nil when absent.
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
	Span source.Span
}

// ForStmt is `for (init; cond; post) body`. Each header expression may be nil.
type ForStmt struct {
	Init Expr
	Cond Expr
	Post Expr
	Body Stmt
	Span source.Span
}

// WhileStmt is `while cond body`.
type WhileStmt struct {
	Cond Expr
	Body Stmt
	Span source.Span
}

// ExprStmt is an expression evaluated for its effect.
type ExprStmt struct {
	X    Expr
	Span source.Span
}

func (s *ReturnStmt) NodeSpan() source.Span { return s.Span }
func (s *IfStmt) NodeSpan() source.Span     { return s.Span }
func (s *ForStmt) NodeSpan() source.Span    { return s.Span }
func (s *WhileStmt) NodeSpan() source.Span  { return s.Span }
func (s *ExprStmt) NodeSpan() source.Span   { return s.Span }

func (*ReturnStmt) Kind() StmtKind { return StmtReturn }
func (*IfStmt) Kind() StmtKind     { return StmtIf }
func (*ForStmt) Kind() StmtKind    { return StmtFor }
func (*WhileStmt) Kind() StmtKind  { return StmtWhile }
func (*ExprStmt) Kind() StmtKind   { return StmtExpr }

func (*ReturnStmt) node() {}
func (*IfStmt) node()     {}
func (*ForStmt) node()    {}
func (*WhileStmt) node()  {}
func (*ExprStmt) node()   {}

func (*ReturnStmt) stmtNode() {}
func (*IfStmt) stmtNode()     {}
func (*ForStmt) stmtNode()    {}
func (*WhileStmt) stmtNode()  {}
func (*ExprStmt) stmtNode()   {}
