package lexer

import (
	"occ/internal/token"
)

// scanOperator tries the operator table in priority order; longer lexemes
// come before their prefixes, so the first match is the maximal munch.
func (lx *Lexer) scanOperator() (token.Token, bool) {
	start := lx.cursor.Mark()
	for _, op := range operatorTable {
		if lx.cursor.HasPrefix(op.Text) {
			lx.cursor.Advance(len(op.Text))
			return token.Token{Kind: op.Kind, Span: lx.cursor.SpanFrom(start), Text: op.Text}, true
		}
	}
	return token.Token{}, false
}

var operatorTable = token.Operators()
