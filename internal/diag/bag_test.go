package diag

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"occ/internal/source"
)

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	for i := 0; i < 3; i++ {
		bag.Add(Diagnostic{Severity: SevError, Code: SynUnexpectedToken})
	}
	if bag.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bag.Len())
	}
	if !bag.HasErrors() || !bag.HasWarnings() {
		t.Fatal("error bag must report errors and warnings")
	}
}

func TestBagSortAndDedup(t *testing.T) {
	bag := NewBag(0)
	sp := func(start uint32) source.Span { return source.Span{Start: start, End: start + 1} }
	bag.Add(Diagnostic{Severity: SevWarning, Code: SynInfo, Primary: sp(5)})
	bag.Add(Diagnostic{Severity: SevError, Code: LexUnknownChar, Primary: sp(1)})
	bag.Add(Diagnostic{Severity: SevError, Code: LexUnknownChar, Primary: sp(1)})

	bag.Sort()
	bag.Dedup()

	items := bag.Items()
	if len(items) != 2 {
		t.Fatalf("after dedup len = %d", len(items))
	}
	if items[0].Primary.Start != 1 || items[1].Primary.Start != 5 {
		t.Fatalf("unexpected order: %+v", items)
	}
}

func TestBagReporter(t *testing.T) {
	bag := NewBag(10)
	var r Reporter = &BagReporter{Bag: bag}
	Emit(r, Syntax(SynUnclosedParen, source.Span{Start: 3, End: 3}, "expected ')'"))
	if bag.Len() != 1 || bag.Items()[0].Code != SynUnclosedParen {
		t.Fatalf("unexpected bag: %+v", bag.Items())
	}
}

func TestCodeIDs(t *testing.T) {
	cases := map[Code]string{
		LexUnknownChar:   "LEX1001",
		SynUnclosedParen: "SYN2006",
		IOLoadFileError:  "IO4001",
		UnknownCode:      "E0000",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
	if SynExpectExpression.Title() != "Expected expression" {
		t.Fatalf("Title = %q", SynExpectExpression.Title())
	}
}

func TestErrorClassification(t *testing.T) {
	lex := Lexical(LexUnknownChar, source.Span{Start: 4, End: 5}, "@", "unknown character '@'")
	syn := Syntax(SynUnclosedParen, source.Span{}, "expected ')'")

	wrapped := fmt.Errorf("parse main.c: %w", lex)
	if !IsLexical(wrapped) || IsSyntax(wrapped) {
		t.Fatalf("wrapped lexical error misclassified")
	}
	if !IsSyntax(syn) || IsLexical(syn) {
		t.Fatalf("syntax error misclassified")
	}
	if IsSyntax(errors.New("plain")) {
		t.Fatal("plain error is not a syntax error")
	}
	got, ok := AsError(wrapped)
	if !ok || got.Rest != "@" {
		t.Fatalf("AsError = %+v, %v", got, ok)
	}
}

func TestCodeSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{LexInfo, SevInfo},
		{SynInfo, SevInfo},
		{LexUnknownChar, SevError},
		{SynForBadHeader, SevError},
		{IOLoadFileError, SevError},
	}
	for _, tt := range tests {
		if got := tt.code.Severity(); got != tt.want {
			t.Errorf("%s.Severity() = %v, want %v", tt.code.ID(), got, tt.want)
		}
	}
	if Severity(9).String() != "UNKNOWN" || SevWarning.String() != "WARNING" {
		t.Fatal("unexpected severity names")
	}
}

func TestEmitRestNote(t *testing.T) {
	span := source.Span{File: 1, Start: 4, End: 5}
	long := "$" + strings.Repeat("x", 40)
	tests := []struct {
		name string
		err  *Error
		note string // "" - заметки нет
	}{
		{"lexical", Lexical(LexUnknownChar, span, "$ 2;\nb = 1", "unknown character '$'"), `remaining input: "$ 2;"...`},
		{"lexical_short", Lexical(LexUnknownChar, span, "$", "unknown character '$'"), `remaining input: "$"`},
		{"lexical_long", Lexical(LexUnknownChar, span, long, "unknown character '$'"), `remaining input: "` + long[:maxRestRunes] + `"...`},
		{"syntax", Syntax(SynUnclosedParen, span, "expected ')'"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bag := NewBag(0)
			Emit(&BagReporter{Bag: bag}, tt.err)
			notes := bag.Items()[0].Notes
			if tt.note == "" {
				if len(notes) != 0 {
					t.Fatalf("unexpected notes: %+v", notes)
				}
				return
			}
			if len(notes) != 1 || notes[0].Msg != tt.note {
				t.Fatalf("notes = %+v, want %q", notes, tt.note)
			}
			if notes[0].Span.Start != span.Start || notes[0].Span.File != span.File {
				t.Fatalf("note span = %v", notes[0].Span)
			}
			if len(tt.err.Notes) != 0 {
				t.Fatal("Emit must not modify the error")
			}
		})
	}
}
