package lexer

import (
	"occ/internal/diag"
	"occ/internal/trace"
)

type Options struct {
	Reporter diag.Reporter     // может быть nil
	Tracer   trace.Tracer      // nil means trace.Nop
	Parent   trace.SpanContext // родитель для событий token
}

func (lx *Lexer) report(err *diag.Error) {
	if lx.opts.Reporter != nil {
		diag.Emit(lx.opts.Reporter, err)
	}
}
