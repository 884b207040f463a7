package symbols

import (
	"testing"

	"occ/internal/source"
)

func TestDeclareIsIdempotent(t *testing.T) {
	strs := source.NewInterner()
	table := NewTable(strs)
	a := strs.Intern("a")
	b := strs.Intern("b")

	id1, fresh := table.Declare(a, source.Span{Start: 0, End: 1})
	if !fresh || !id1.IsValid() {
		t.Fatalf("first declare: id=%d fresh=%v", id1, fresh)
	}
	id2, fresh := table.Declare(a, source.Span{Start: 10, End: 11})
	if fresh || id2 != id1 {
		t.Fatalf("second declare: id=%d fresh=%v, want %d false", id2, fresh, id1)
	}
	idB, _ := table.Declare(b, source.Span{Start: 4, End: 5})

	if table.Len() != 2 {
		t.Fatalf("Len = %d, want 2", table.Len())
	}
	symA := table.Get(id1)
	if symA.Slot != 0 || symA.Uses != 2 || symA.First.Start != 0 {
		t.Fatalf("unexpected symbol a: %+v", symA)
	}
	if table.Get(idB).Slot != 1 {
		t.Fatalf("b slot = %d, want 1", table.Get(idB).Slot)
	}
	if err := table.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestSymbolsInFirstSeenOrder(t *testing.T) {
	table := NewTable(nil)
	for _, name := range []string{"z", "a", "z", "m", "a"} {
		table.Declare(table.Strings.Intern(name), source.Span{})
	}
	var got []string
	for _, id := range table.Symbols() {
		got = append(got, table.Name(id))
	}
	want := []string{"z", "a", "m"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestLookup(t *testing.T) {
	table := NewTable(nil)
	id, _ := table.Declare(table.Strings.Intern("count"), source.Span{})
	if got, ok := table.LookupString("count"); !ok || got != id {
		t.Fatalf("LookupString(count) = %d, %v", got, ok)
	}
	if _, ok := table.LookupString("missing"); ok {
		t.Fatal("unexpected hit for missing name")
	}
	// интернированное, но не объявленное имя
	if _, ok := table.Lookup(table.Strings.Intern("other")); ok {
		t.Fatal("interned but undeclared name must not resolve")
	}
	if table.Get(NoSymbolID) != nil || table.Get(SymbolID(42)) != nil {
		t.Fatal("Get must return nil for unknown ids")
	}
}

func TestValidateDetectsCorruption(t *testing.T) {
	table := NewTable(nil)
	table.Declare(table.Strings.Intern("x"), source.Span{})
	table.data[1].Slot = 7
	if err := table.Validate(); err == nil {
		t.Fatal("expected a validation error")
	}
}
