package symbols

import "fmt"

// Validate checks that slots are dense, names are unique and every name is interned.
func (t *Table) Validate() error {
	if len(t.byName) != t.Len() {
		return fmt.Errorf("symbols: %d names indexed, %d symbols stored", len(t.byName), t.Len())
	}
	for i := 1; i < len(t.data); i++ {
		sym := t.data[i]
		if int(sym.Slot) != i-1 {
			return fmt.Errorf("symbols: symbol %d has slot %d", i, sym.Slot)
		}
		if !t.Strings.Has(sym.Name) {
			return fmt.Errorf("symbols: symbol %d has name %d missing from interner", i, sym.Name)
		}
		if id := t.byName[sym.Name]; int(id) != i {
			return fmt.Errorf("symbols: name %q maps to %d, want %d", t.Strings.MustLookup(sym.Name), id, i)
		}
		if sym.Uses == 0 {
			return fmt.Errorf("symbols: symbol %d has no uses", i)
		}
	}
	return nil
}
