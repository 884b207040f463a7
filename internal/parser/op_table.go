package parser

import (
	"occ/internal/ast"
	"occ/internal/token"
)

// binaryRule maps an operator token of one precedence level to an AST node.
type binaryRule struct {
	tok  token.Kind
	op   ast.BinaryOp
	flip bool // a > b строится как b < a, a => b как b <= a
}

var equalityOps = []binaryRule{
	{tok: token.EqEq, op: ast.OpEq},
	{tok: token.BangEq, op: ast.OpNe},
}

var relationalOps = []binaryRule{
	{tok: token.Lt, op: ast.OpLt},
	{tok: token.LtEq, op: ast.OpLe},
	{tok: token.Gt, op: ast.OpLt, flip: true},
	{tok: token.FatArrow, op: ast.OpLe, flip: true},
}

var additiveOps = []binaryRule{
	{tok: token.Plus, op: ast.OpAdd},
	{tok: token.Minus, op: ast.OpSub},
}

var multiplicativeOps = []binaryRule{
	{tok: token.Star, op: ast.OpMul},
	{tok: token.Slash, op: ast.OpDiv},
}

func lookupRule(rules []binaryRule, k token.Kind) (binaryRule, bool) {
	for _, r := range rules {
		if r.tok == k {
			return r, true
		}
	}
	return binaryRule{}, false
}

func (r binaryRule) build(left, right ast.Expr) *ast.BinaryExpr {
	span := left.NodeSpan().Cover(right.NodeSpan())
	if r.flip {
		left, right = right, left
	}
	return &ast.BinaryExpr{Op: r.op, Left: left, Right: right, Span: span}
}
