package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"occ/internal/diag"
	"occ/internal/lexer"
	"occ/internal/source"
	"occ/internal/token"
	"occ/internal/trace"
)

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.c", []byte(input)))
	bag := diag.NewBag(16)
	return lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}}), bag
}

// collectAllTokens собирает все токены до EOF (EOF не включается)
func collectAllTokens(t *testing.T, lx *lexer.Lexer) []token.Token {
	t.Helper()
	var tokens []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("unexpected lexical error: %v", err)
		}
		if tok.Kind == token.EOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tokens := collectAllTokens(t, lx)
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %s",
			len(expected), len(tokens), input, tokensToString(tokens))
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func expectSingleToken(t *testing.T, input string, kind token.Kind, text string) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tokens := collectAllTokens(t, lx)
	if len(tokens) != 1 {
		t.Fatalf("input %q: expected one token, got %s", input, tokensToString(tokens))
	}
	if tokens[0].Kind != kind || tokens[0].Text != text {
		t.Fatalf("input %q: got %v(%q), want %v(%q)", input, tokens[0].Kind, tokens[0].Text, kind, text)
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func TestWhitespaceOnlyIsEOF(t *testing.T) {
	for _, input := range []string{"", " ", "\t\n  \r\n", "  "} {
		lx, bag := makeTestLexer(input)
		tok, err := lx.Next()
		if err != nil || tok.Kind != token.EOF {
			t.Fatalf("input %q: got %v, %v; want EOF", input, tok.Kind, err)
		}
		// EOF повторяется
		if tok, _ = lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("input %q: second call got %v", input, tok.Kind)
		}
		if bag.Len() != 0 {
			t.Fatalf("input %q: unexpected diagnostics", input)
		}
	}
}

func TestMaximalMunch(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"<=", token.LtEq},
		{"=>", token.FatArrow},
		{"==", token.EqEq},
		{"!=", token.BangEq},
		{"<", token.Lt},
		{">", token.Gt},
		{"=", token.Assign},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestOperatorSequences(t *testing.T) {
	// "===" = "==" затем "="; ">=" это ">" и "=" (в языке нет ">=")
	expectTokens(t, "===", []token.Kind{token.EqEq, token.Assign})
	expectTokens(t, ">=", []token.Kind{token.Gt, token.Assign})
	expectTokens(t, "<==", []token.Kind{token.LtEq, token.Assign})
	expectTokens(t, "(a+b)*c/d-e;", []token.Kind{
		token.LParen, token.Ident, token.Plus, token.Ident, token.RParen,
		token.Star, token.Ident, token.Slash, token.Ident, token.Minus, token.Ident, token.Semicolon,
	})
}

func TestKeywordVsIdentifier(t *testing.T) {
	expectSingleToken(t, "return", token.KwReturn, "return")
	expectSingleToken(t, "returns", token.Ident, "returns")
	expectSingleToken(t, "Return", token.Ident, "Return")
	expectSingleToken(t, "if", token.KwIf, "if")
	expectSingleToken(t, "else", token.KwElse, "else")
	expectSingleToken(t, "for", token.KwFor, "for")
	expectSingleToken(t, "while", token.KwWhile, "while")
	expectSingleToken(t, "while_", token.Ident, "while_")
}

func TestIdentifiers(t *testing.T) {
	expectSingleToken(t, "foo_bar", token.Ident, "foo_bar")
	expectSingleToken(t, "über", token.Ident, "über")
	// цифры не входят в идентификатор
	expectTokens(t, "a1", []token.Kind{token.Ident, token.Number})
}

func TestNumbers(t *testing.T) {
	lx, _ := makeTestLexer("0 42 18446744073709551615")
	tokens := collectAllTokens(t, lx)
	want := []uint64{0, 42, 18446744073709551615}
	if len(tokens) != len(want) {
		t.Fatalf("got %s", tokensToString(tokens))
	}
	for i, tok := range tokens {
		if tok.Kind != token.Number || tok.Value != want[i] {
			t.Errorf("token %d = %v %d, want Number %d", i, tok.Kind, tok.Value, want[i])
		}
	}
}

func TestNumberOverflow(t *testing.T) {
	lx, bag := makeTestLexer("18446744073709551616")
	_, err := lx.Next()
	if !diag.IsLexical(err) {
		t.Fatalf("expected lexical error, got %v", err)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexBadNumber {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
}

func TestUnknownCharacterIsFatal(t *testing.T) {
	lx, bag := makeTestLexer("1 + @ 2")
	for i := 0; i < 2; i++ {
		if _, err := lx.Next(); err != nil {
			t.Fatalf("token %d: %v", i, err)
		}
	}
	_, err := lx.Next()
	de, ok := diag.AsError(err)
	if !ok || de.Code != diag.LexUnknownChar {
		t.Fatalf("expected LexUnknownChar, got %v", err)
	}
	if de.Rest != "@ 2" || de.Span.Start != 4 || de.Span.End != 5 {
		t.Fatalf("unexpected error position: %+v", de)
	}
	// ошибка липкая: лексер не пропускает символ
	if _, err2 := lx.Next(); err2 != err {
		t.Fatalf("expected the same error again, got %v", err2)
	}
	if bag.Len() != 1 {
		t.Fatalf("error must be reported once, got %d", bag.Len())
	}
}

func TestSpansMatchText(t *testing.T) {
	input := "  for (i = 0; i <= 10; i = i + 1) x = x => i;"
	lx, _ := makeTestLexer(input)
	for _, tok := range collectAllTokens(t, lx) {
		if got := input[tok.Span.Start:tok.Span.End]; got != tok.Text {
			t.Fatalf("span %v covers %q, token text %q", tok.Span, got, tok.Text)
		}
	}
}

func TestRestAndPeek(t *testing.T) {
	lx, _ := makeTestLexer("return returns")
	if _, err := lx.Next(); err != nil {
		t.Fatal(err)
	}
	if lx.Rest() != " returns" {
		t.Fatalf("Rest = %q", lx.Rest())
	}
	tok, err := lx.Peek()
	if err != nil || tok.Kind != token.Ident {
		t.Fatalf("Peek = %v, %v", tok.Kind, err)
	}
	// Peek не потребляет вход
	if lx.Rest() != " returns" {
		t.Fatalf("Rest after Peek = %q", lx.Rest())
	}
	if tok2, _ := lx.Next(); tok2 != tok {
		t.Fatalf("Next after Peek = %+v, want %+v", tok2, tok)
	}
	if lx.Rest() != "" {
		t.Fatalf("Rest at end = %q", lx.Rest())
	}
}

func TestMarkResetIsDeterministic(t *testing.T) {
	lx, _ := makeTestLexer("a <= b")
	if _, err := lx.Next(); err != nil {
		t.Fatal(err)
	}
	m := lx.Mark()
	first, _ := lx.Next()
	lx.Reset(m)
	second, _ := lx.Next()
	if first != second {
		t.Fatalf("same position gave %+v then %+v", first, second)
	}
}

func TestTokenTracing(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.c", []byte("a = 1")))
	ring := trace.NewRingTracer(16, trace.LevelDebug)
	lx := lexer.New(file, lexer.Options{Tracer: ring})
	for {
		tok, err := lx.Next()
		if err != nil {
			t.Fatal(err)
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	if n := len(ring.Snapshot()); n != 3 {
		t.Fatalf("expected 3 token events, got %d", n)
	}
}
