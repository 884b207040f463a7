package symbols

import (
	"fmt"

	"fortio.org/safecast"

	"occ/internal/source"
)

// Table maps variable names to symbols. It only grows, and lives for one parse.
type Table struct {
	Strings *source.Interner
	data    []Symbol // index 0 reserved for NoSymbolID
	byName  map[source.StringID]SymbolID
}

// NewTable creates an empty table. A nil interner gets a fresh one.
func NewTable(strings *source.Interner) *Table {
	if strings == nil {
		strings = source.NewInterner()
	}
	return &Table{
		Strings: strings,
		data:    make([]Symbol, 1, 16),
		byName:  make(map[source.StringID]SymbolID, 16),
	}
}

// Declare registers name on first sight and returns its symbol.
// fresh is false when the name was already known; the use count grows either way.
func (t *Table) Declare(name source.StringID, sp source.Span) (id SymbolID, fresh bool) {
	if id, ok := t.byName[name]; ok {
		t.data[id].Uses++
		return id, false
	}
	slot, err := safecast.Conv[uint32](len(t.data) - 1)
	if err != nil {
		panic(fmt.Errorf("symbol table overflow: %w", err))
	}
	t.data = append(t.data, Symbol{Name: name, Slot: slot, First: sp, Uses: 1})
	id = SymbolID(slot + 1)
	t.byName[name] = id
	return id, true
}

// Lookup finds a symbol by interned name.
func (t *Table) Lookup(name source.StringID) (SymbolID, bool) {
	id, ok := t.byName[name]
	return id, ok
}

// LookupString finds a symbol by its spelling.
func (t *Table) LookupString(name string) (SymbolID, bool) {
	sid, ok := t.Strings.Find(name)
	if !ok {
		return NoSymbolID, false
	}
	return t.Lookup(sid)
}

// Get returns the symbol for id, or nil for an unknown id.
func (t *Table) Get(id SymbolID) *Symbol {
	if !id.IsValid() || int(id) >= len(t.data) {
		return nil
	}
	return &t.data[id]
}

// Name returns the spelling of the symbol's name.
func (t *Table) Name(id SymbolID) string {
	sym := t.Get(id)
	if sym == nil {
		return ""
	}
	return t.Strings.MustLookup(sym.Name)
}

// Len returns the number of declared symbols.
func (t *Table) Len() int {
	return len(t.data) - 1
}

// Symbols returns the symbol IDs in first-seen order.
func (t *Table) Symbols() []SymbolID {
	out := make([]SymbolID, 0, t.Len())
	for i := 1; i < len(t.data); i++ {
		out = append(out, SymbolID(i))
	}
	return out
}
