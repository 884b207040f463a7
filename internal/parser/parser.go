package parser

import (
	"context"
	"fmt"

	"fortio.org/safecast"

	"occ/internal/ast"
	"occ/internal/diag"
	"occ/internal/lexer"
	"occ/internal/source"
	"occ/internal/symbols"
	"occ/internal/token"
	"occ/internal/trace"
)

type Options struct {
	Reporter diag.Reporter // получает синтаксические ошибки; может быть nil
	Tracer   trace.Tracer  // nil: берётся из ctx
}

// Parser: состояние парсера на один файл
type Parser struct {
	ctx      context.Context
	lx       *lexer.Lexer
	fs       *source.FileSet
	strings  *source.Interner
	table    *symbols.Table
	opts     Options
	tracer   trace.Tracer
	traceCtx trace.SpanContext // текущий span трассировки
	lastSpan source.Span       // span последнего съеденного токена для лучшей диагностики
}

// ParseFile parses the whole file behind lx. Identifiers are interned into
// strs and declared in table. On failure the program is nil and the error
// is a *diag.Error.
func ParseFile(
	ctx context.Context,
	fs *source.FileSet,
	lx *lexer.Lexer,
	strs *source.Interner,
	table *symbols.Table,
	opts Options,
) (*ast.Program, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.FromContext(ctx)
	}
	p := Parser{
		ctx:      ctx,
		lx:       lx,
		fs:       fs,
		strings:  strs,
		table:    table,
		opts:     opts,
		tracer:   tracer,
		traceCtx: trace.CurrentSpan(ctx),
		lastSpan: lx.EmptySpan(),
	}

	span := trace.Begin(tracer, trace.ScopeFile, "parse_file", p.traceCtx)
	span.WithExtra("file", lx.File().Path)
	p.traceCtx = span.Context()

	prog, err := p.parseProgram()
	if err != nil {
		span.End("error")
		return nil, err
	}
	span.Count("stmts", len(prog.Stmts))
	span.End("")
	return prog, nil
}

func (p *Parser) parseProgram() (*ast.Program, error) {
	f := p.lx.File()
	end, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		return nil, fmt.Errorf("file too large: %w", err)
	}
	prog := &ast.Program{Span: source.Span{File: f.ID, Start: 0, End: end}}

	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.EOF {
			return prog, nil
		}
		if err := p.ctx.Err(); err != nil {
			return nil, err
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Stmts = append(prog.Stmts, stmt)
	}
}
