package lexer

import (
	"occ/internal/token"
)

// scanIdentOrKeyword consumes a letter followed by letters or underscores.
// Digits end the run: "a1" is Ident("a") then Number(1).
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	_, sz := lx.peekRune()
	lx.cursor.Advance(sz)
	for {
		r, sz := lx.peekRune()
		if sz == 0 || !isIdentContinueRune(r) {
			break
		}
		lx.cursor.Advance(sz)
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
