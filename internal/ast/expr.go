package ast

import (
	"occ/internal/source"
	"occ/internal/symbols"
)

type ExprKind uint8

const (
	ExprBinary ExprKind = iota
	ExprAssign
	ExprIntLit
	ExprVarRef
)

var exprKindNames = [...]string{
	ExprBinary: "Binary",
	ExprAssign: "Assign",
	ExprIntLit: "IntLit",
	ExprVarRef: "VarRef",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "Expr?"
}

// BinaryExpr is `Left Op Right`.
type BinaryExpr struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
	Span  source.Span
}

// AssignExpr is `Target = Value`. Target is whatever equality-level
// expression stood left of `=`; the grammar does not restrict it.
type AssignExpr struct {
	Target Expr
	Value  Expr
	Span   source.Span
}

// IntLit is an unsigned decimal literal.
type IntLit struct {
	Value uint64
	Span  source.Span
}

// VarRef is a reference to a local variable.
type VarRef struct {
	Name   source.StringID
	Symbol symbols.SymbolID
	Span   source.Span
}

func (e *BinaryExpr) NodeSpan() source.Span { return e.Span }
func (e *AssignExpr) NodeSpan() source.Span { return e.Span }
func (e *IntLit) NodeSpan() source.Span     { return e.Span }
func (e *VarRef) NodeSpan() source.Span     { return e.Span }

func (*BinaryExpr) Kind() ExprKind { return ExprBinary }
func (*AssignExpr) Kind() ExprKind { return ExprAssign }
func (*IntLit) Kind() ExprKind     { return ExprIntLit }
func (*VarRef) Kind() ExprKind     { return ExprVarRef }

func (*BinaryExpr) node() {}
func (*AssignExpr) node() {}
func (*IntLit) node()     {}
func (*VarRef) node()     {}

func (*BinaryExpr) exprNode() {}
func (*AssignExpr) exprNode() {}
func (*IntLit) exprNode()     {}
func (*VarRef) exprNode()     {}
