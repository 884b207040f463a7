package parser

import (
	"occ/internal/diag"
	"occ/internal/source"
	"occ/internal/token"
	"occ/internal/trace"
)

func (p *Parser) peek() (token.Token, error) {
	return p.lx.Peek()
}

// advance: съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() (token.Token, error) {
	tok, err := p.lx.Next()
	if err != nil {
		return tok, err
	}
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok, nil
}

// accept consumes the next token if it has kind k.
func (p *Parser) accept(k token.Kind) (token.Token, bool, error) {
	tok, err := p.peek()
	if err != nil || tok.Kind != k {
		return tok, false, err
	}
	tok, err = p.advance()
	return tok, err == nil, err
}

// expect consumes a token of kind k or fails with code.
// what names the production, e.g. "to close parenthesized expression".
func (p *Parser) expect(k token.Kind, code diag.Code, what string) (token.Token, error) {
	tok, ok, err := p.accept(k)
	if err != nil {
		return tok, err
	}
	if ok {
		return tok, nil
	}
	return tok, p.errorf(code, tok, "expected '%s' %s, got %s", k.Lexeme(), what, tok.Describe())
}

// diagnosticSpan выбирает span для диагностики; на EOF указываем сразу
// после последнего съеденного токена.
func (p *Parser) diagnosticSpan(tok token.Token) source.Span {
	if tok.Kind == token.EOF && p.lastSpan.End > 0 {
		return p.lastSpan.ZeroideToEnd()
	}
	return tok.Span
}

func (p *Parser) errorf(code diag.Code, at token.Token, format string, args ...any) *diag.Error {
	err := diag.Syntax(code, p.diagnosticSpan(at), sprintf(format, args...))
	diag.Emit(p.opts.Reporter, err)
	trace.Point(p.tracer, trace.ScopeFile, "syntax_error", err.Error(), p.traceCtx)
	return err
}

var noLeave = func() {}

// enter opens a trace span for a production; the result closes it.
//
//	defer p.enter("relational")()
func (p *Parser) enter(name string) func() {
	if !p.tracer.Enabled() || !p.tracer.Level().ShouldEmit(trace.ScopeNode) {
		return noLeave
	}
	sp := trace.Begin(p.tracer, trace.ScopeNode, name, p.traceCtx)
	prev := p.traceCtx
	p.traceCtx = sp.Context()
	return func() {
		sp.End("")
		p.traceCtx = prev
	}
}
