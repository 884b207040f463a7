package parser

import (
	"occ/internal/ast"
	"occ/internal/diag"
	"occ/internal/token"
)

// parseStatement выбирает распознаватель по первому токену.
func (p *Parser) parseStatement() (ast.Stmt, error) {
	defer p.enter("statement")()

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwIf:
		return p.parseIfStmt()
	case token.KwFor:
		return p.parseForStmt()
	case token.KwWhile:
		return p.parseWhileStmt()
	case token.KwElse:
		return nil, p.errorf(diag.SynExpectStatement, tok, "unexpected 'else' without a matching 'if'")
	default:
		return p.parseExprStmt()
	}
}

// parseStmtEnd consumes an optional trailing ';' and returns its end offset.
func (p *Parser) parseStmtEnd(end uint32) (uint32, error) {
	semi, ok, err := p.accept(token.Semicolon)
	if err != nil {
		return end, err
	}
	if ok {
		return semi.Span.End, nil
	}
	return end, nil
}

// return := "return" expr ";"?
func (p *Parser) parseReturnStmt() (ast.Stmt, error) {
	kw, err := p.advance()
	if err != nil {
		return nil, err
	}
	result, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	span := kw.Span.Cover(result.NodeSpan())
	if span.End, err = p.parseStmtEnd(span.End); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Result: result, Span: span}, nil
}

// if := "if" expr statement ("else" statement)?
func (p *Parser) parseIfStmt() (ast.Stmt, error) {
	kw, err := p.advance()
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStmt{Cond: cond, Then: then, Span: kw.Span.Cover(then.NodeSpan())}

	if _, ok, err := p.accept(token.KwElse); err != nil {
		return nil, err
	} else if ok {
		els, err := p.parseBody()
		if err != nil {
			return nil, err
		}
		stmt.Else = els
		stmt.Span = stmt.Span.Cover(els.NodeSpan())
	}
	return stmt, nil
}

// for := "for" "(" expr? ";" expr? ";" expr? ")" statement
func (p *Parser) parseForStmt() (ast.Stmt, error) {
	kw, err := p.advance()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen, diag.SynForBadHeader, "after 'for'"); err != nil {
		return nil, err
	}
	stmt := &ast.ForStmt{}

	if stmt.Init, err = p.parseOptionalExpr(token.Semicolon); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon, diag.SynForBadHeader, "after for-loop initializer"); err != nil {
		return nil, err
	}
	if stmt.Cond, err = p.parseOptionalExpr(token.Semicolon); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon, diag.SynForBadHeader, "after for-loop condition"); err != nil {
		return nil, err
	}
	if stmt.Post, err = p.parseOptionalExpr(token.RParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen, diag.SynForBadHeader, "to close for-loop header"); err != nil {
		return nil, err
	}

	if stmt.Body, err = p.parseBody(); err != nil {
		return nil, err
	}
	stmt.Span = kw.Span.Cover(stmt.Body.NodeSpan())
	return stmt, nil
}

// while := "while" expr statement
func (p *Parser) parseWhileStmt() (ast.Stmt, error) {
	kw, err := p.advance()
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Cond: cond, Body: body, Span: kw.Span.Cover(body.NodeSpan())}, nil
}

// parseExprStmt := expr ";"?
func (p *Parser) parseExprStmt() (ast.Stmt, error) {
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	span := x.NodeSpan()
	if span.End, err = p.parseStmtEnd(span.End); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{X: x, Span: span}, nil
}

// parseBody parses the single statement controlled by if/else/for/while.
func (p *Parser) parseBody() (ast.Stmt, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.EOF {
		return nil, p.errorf(diag.SynExpectExpression, tok, "expected statement body, got end of input")
	}
	return p.parseStatement()
}

// parseOptionalExpr parses an expression unless the next token is stop or EOF.
// At EOF the caller's expect reports the missing header token.
func (p *Parser) parseOptionalExpr(stop token.Kind) (ast.Expr, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == stop || tok.Kind == token.EOF {
		return nil, nil
	}
	return p.parseExpr()
}
