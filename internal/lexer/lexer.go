package lexer

import (
	"occ/internal/diag"
	"occ/internal/source"
	"occ/internal/token"
	"occ/internal/trace"
)

// Lexer pulls one token at a time from the unconsumed remainder of a file.
// A lexical error is sticky: once hit, every later call returns it again.
type Lexer struct {
	file     *source.File
	cursor   Cursor
	opts     Options
	look     *token.Token // 1 элементный буфер для токена
	lookMark Mark         // cursor position before look was scanned
	err      *diag.Error
}

func New(file *source.File, opts Options) *Lexer {
	if opts.Tracer == nil {
		opts.Tracer = trace.Nop
	}
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// File returns the file being scanned.
func (lx *Lexer) File() *source.File { return lx.file }

// Next returns the next token and advances past it.
// At end of input it returns an EOF token, repeatedly.
func (lx *Lexer) Next() (token.Token, error) {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok, nil
	}
	if lx.err != nil {
		return token.Token{Kind: token.Invalid, Span: lx.err.Span}, lx.err
	}

	lx.skipSpace()
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.EmptySpan()}, nil
	}

	tok, ok := lx.scanOperator()
	if !ok {
		r, _ := lx.peekRune()
		switch {
		case isIdentStartRune(r):
			tok = lx.scanIdentOrKeyword()
		case isDec(lx.cursor.Peek()):
			tok, ok = lx.scanNumber()
			if !ok {
				return tok, lx.err
			}
		default:
			lx.unknownChar()
			return token.Token{Kind: token.Invalid, Span: lx.err.Span}, lx.err
		}
	}

	if lx.opts.Tracer.Enabled() {
		trace.Point(lx.opts.Tracer, trace.ScopeNode, "token", tok.Kind.String()+" "+tok.Text, lx.opts.Parent)
	}
	return tok, nil
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() (token.Token, error) {
	if lx.look != nil {
		return *lx.look, nil
	}
	mark := lx.cursor.Mark()
	tok, err := lx.Next()
	if err != nil {
		return tok, err
	}
	lx.look = &tok
	lx.lookMark = mark
	return tok, nil
}

// Rest returns the input that has not been consumed by Next yet.
// A peeked token is still part of the rest.
func (lx *Lexer) Rest() string {
	if lx.look != nil {
		saved := lx.cursor.Mark()
		lx.cursor.Reset(lx.lookMark)
		rest := lx.cursor.Rest()
		lx.cursor.Reset(saved)
		return rest
	}
	return lx.cursor.Rest()
}

// Mark returns the position of the next unconsumed byte.
func (lx *Lexer) Mark() Mark {
	if lx.look != nil {
		return lx.lookMark
	}
	return lx.cursor.Mark()
}

// Reset restarts scanning from m and drops any lookahead and sticky error.
func (lx *Lexer) Reset(m Mark) {
	lx.look = nil
	lx.err = nil
	lx.cursor.Reset(m)
}

// EmptySpan is a zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) skipSpace() {
	for !lx.cursor.EOF() {
		r, sz := lx.peekRune()
		if sz == 0 || !isSpaceRune(r) {
			return
		}
		lx.cursor.Advance(sz)
	}
}

func (lx *Lexer) fail(err *diag.Error) {
	lx.err = err
	lx.report(err)
}

func (lx *Lexer) unknownChar() {
	start := lx.cursor.Mark()
	rest := lx.cursor.Rest()
	_, sz := lx.peekRune()
	if sz == 0 {
		sz = 1
	}
	lx.cursor.Advance(sz)
	sp := lx.cursor.SpanFrom(start)
	lx.cursor.Reset(start)
	ch := string(lx.file.Content[sp.Start:sp.End])
	lx.fail(diag.Lexical(diag.LexUnknownChar, sp, rest, "unknown character '"+ch+"'"))
}
