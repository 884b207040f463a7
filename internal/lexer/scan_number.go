package lexer

import (
	"errors"
	"strconv"

	"occ/internal/diag"
	"occ/internal/token"
)

// scanNumber consumes a run of decimal digits as an unsigned 64-bit value.
func (lx *Lexer) scanNumber() (token.Token, bool) {
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	v, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		msg := "invalid integer literal " + text
		if errors.Is(err, strconv.ErrRange) {
			msg = "integer literal " + text + " overflows 64 bits"
		}
		lx.cursor.Reset(start)
		rest := lx.cursor.Rest()
		lx.fail(diag.Lexical(diag.LexBadNumber, sp, rest, msg))
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}, false
	}
	return token.Token{Kind: token.Number, Span: sp, Text: text, Value: v}, true
}
