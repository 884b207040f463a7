package parser

import (
	"golang.org/x/text/unicode/norm"

	"occ/internal/ast"
	"occ/internal/diag"
	"occ/internal/token"
	"occ/internal/trace"
)

// parseExpr := assign
func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseAssign()
}

// assign := equality ("=" assign)?
// Правоассоциативно: a = b = c разбирается как a = (b = c).
func (p *Parser) parseAssign() (ast.Expr, error) {
	defer p.enter("assign")()

	target, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	if _, ok, err := p.accept(token.Assign); err != nil {
		return nil, err
	} else if !ok {
		return target, nil
	}
	value, err := p.parseAssign()
	if err != nil {
		return nil, err
	}
	return &ast.AssignExpr{
		Target: target,
		Value:  value,
		Span:   target.NodeSpan().Cover(value.NodeSpan()),
	}, nil
}

// equality := relational (("==" | "!=") relational)*
func (p *Parser) parseEquality() (ast.Expr, error) {
	defer p.enter("equality")()
	return p.parseBinaryLevel(equalityOps, p.parseRelational)
}

// relational := additive (("<" | "<=" | ">" | "=>") additive)*
func (p *Parser) parseRelational() (ast.Expr, error) {
	defer p.enter("relational")()
	return p.parseBinaryLevel(relationalOps, p.parseAdditive)
}

// additive := multiplicative (("+" | "-") multiplicative)*
func (p *Parser) parseAdditive() (ast.Expr, error) {
	defer p.enter("additive")()
	return p.parseBinaryLevel(additiveOps, p.parseMultiplicative)
}

// multiplicative := unary (("*" | "/") unary)*
func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	defer p.enter("multiplicative")()
	return p.parseBinaryLevel(multiplicativeOps, p.parseUnary)
}

// parseBinaryLevel folds a left-associative chain of operators from ops.
func (p *Parser) parseBinaryLevel(ops []binaryRule, next func() (ast.Expr, error)) (ast.Expr, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		rule, ok := lookupRule(ops, tok.Kind)
		if !ok {
			return left, nil
		}
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = rule.build(left, right)
	}
}

// unary := "+" primary | "-" primary | primary
func (p *Parser) parseUnary() (ast.Expr, error) {
	defer p.enter("unary")()

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case token.Plus:
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		return p.parsePrimary()
	case token.Minus:
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		// -x => 0 - x; литерал 0 занимает позицию знака минус
		zero := &ast.IntLit{Value: 0, Span: tok.Span}
		return &ast.BinaryExpr{
			Op:    ast.OpSub,
			Left:  zero,
			Right: operand,
			Span:  tok.Span.Cover(operand.NodeSpan()),
		}, nil
	default:
		return p.parsePrimary()
	}
}

// primary := number | identifier | "(" expr ")"
func (p *Parser) parsePrimary() (ast.Expr, error) {
	defer p.enter("primary")()

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case token.Number:
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.IntLit{Value: tok.Value, Span: tok.Span}, nil
	case token.Ident:
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		return p.varRef(tok), nil
	case token.LParen:
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen, diag.SynUnclosedParen, "to close parenthesized expression"); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, p.errorf(diag.SynExpectExpression, tok, "expected expression, got %s", tok.Describe())
	}
}

// varRef interns the identifier and declares it on first sight.
func (p *Parser) varRef(tok token.Token) *ast.VarRef {
	name := tok.Text
	if !norm.NFC.IsNormalString(name) {
		name = norm.NFC.String(name)
	}
	sid := p.strings.Intern(name)
	sym, fresh := p.table.Declare(sid, tok.Span)
	if fresh {
		trace.Point(p.tracer, trace.ScopeNode, "declare", name, p.traceCtx)
	}
	return &ast.VarRef{Name: sid, Symbol: sym, Span: tok.Span}
}
