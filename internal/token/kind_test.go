package token

import (
	"strings"
	"testing"
)

func TestOperatorTableIsMaximalMunch(t *testing.T) {
	ops := Operators()
	for i, short := range ops {
		for _, long := range ops[i+1:] {
			if len(long.Text) > len(short.Text) && strings.HasPrefix(long.Text, short.Text) {
				t.Fatalf("%q is tested before longer %q", short.Text, long.Text)
			}
		}
	}
}

func TestClasses(t *testing.T) {
	for _, op := range Operators() {
		if op.Kind.Class() != ClassOperand {
			t.Errorf("%q: class %v, want operand", op.Text, op.Kind.Class())
		}
		if op.Kind.Lexeme() != op.Text {
			t.Errorf("%v.Lexeme() = %q, want %q", op.Kind, op.Kind.Lexeme(), op.Text)
		}
	}
	if Ident.Class() != ClassIdentifier || Number.Class() != ClassNumber {
		t.Fatal("ident/number classes are wrong")
	}
	if EOF.Class() != ClassOther || Invalid.Class() != ClassOther {
		t.Fatal("EOF/Invalid must be ClassOther")
	}
}

func TestKindString(t *testing.T) {
	if FatArrow.String() != "FatArrow" {
		t.Fatalf("FatArrow.String() = %q", FatArrow.String())
	}
	if Kind(200).String() != "Kind(?)" {
		t.Fatalf("unexpected name for unknown kind")
	}
}

func TestDescribe(t *testing.T) {
	if got := (Token{Kind: EOF}).Describe(); got != "end of input" {
		t.Fatalf("EOF describe = %q", got)
	}
	if got := (Token{Kind: RParen, Text: ")"}).Describe(); got != "')'" {
		t.Fatalf("RParen describe = %q", got)
	}
}
