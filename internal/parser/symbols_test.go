package parser

import (
	"testing"

	"occ/internal/ast"
)

func TestRepeatedNameIsOneSymbol(t *testing.T) {
	res := mustParse(t, "a = 1; a = a + 1;")
	if res.Symbols.Len() != 1 {
		t.Fatalf("expected one symbol, got %d", res.Symbols.Len())
	}
	id, ok := res.Symbols.LookupString("a")
	if !ok {
		t.Fatal("symbol a missing")
	}
	sym := res.Symbols.Get(id)
	if sym.Uses != 3 || sym.Slot != 0 || sym.First.Start != 0 {
		t.Fatalf("unexpected symbol: %+v", sym)
	}
}

func TestSlotsFollowFirstAppearance(t *testing.T) {
	res := mustParse(t, "c = b + a; a = c; d = 0")
	want := map[string]uint32{"c": 0, "b": 1, "a": 2, "d": 3}
	for name, slot := range want {
		id, ok := res.Symbols.LookupString(name)
		if !ok {
			t.Fatalf("missing %s", name)
		}
		if got := res.Symbols.Get(id).Slot; got != slot {
			t.Errorf("%s: slot %d, want %d", name, got, slot)
		}
	}
}

func TestEveryVarRefIsDeclared(t *testing.T) {
	res := mustParse(t, "for (i = 0; i < n; i = i + 1) if i == k return i; else total = total + i")
	ast.Inspect(res.Program, func(n ast.Node) bool {
		if ref, ok := n.(*ast.VarRef); ok {
			if got, ok := res.Symbols.Lookup(ref.Name); !ok || got != ref.Symbol {
				t.Errorf("VarRef %s not in table", res.Strings.MustLookup(ref.Name))
			}
		}
		return true
	})
	if res.Symbols.Len() != 4 {
		t.Fatalf("expected 4 symbols, got %d", res.Symbols.Len())
	}
}

func TestIdentifiersAreNFCNormalized(t *testing.T) {
	composed := "caf\u00e9"
	decomposed := "cafe\u0301"
	res := mustParse(t, composed+" = 1; "+decomposed+" = 2")
	if res.Symbols.Len() != 1 {
		t.Fatalf("expected one symbol for both spellings, got %d", res.Symbols.Len())
	}
	if _, ok := res.Symbols.LookupString(composed); !ok {
		t.Fatal("symbol must be stored in NFC form")
	}
}

func TestKeywordsAreNotSymbols(t *testing.T) {
	res := mustParse(t, "if x return y else while z z = 0")
	if res.Symbols.Len() != 3 {
		t.Fatalf("expected x, y, z; got %d symbols", res.Symbols.Len())
	}
}
