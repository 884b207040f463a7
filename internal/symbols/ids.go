package symbols

// SymbolID identifies a local variable inside one Table.
type SymbolID uint32

// NoSymbolID marks an unresolved reference.
const NoSymbolID SymbolID = 0

// IsValid reports whether id refers to a declared symbol.
func (id SymbolID) IsValid() bool { return id != NoSymbolID }
