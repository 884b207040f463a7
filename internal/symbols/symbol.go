package symbols

import "occ/internal/source"

// Symbol is one local variable.
type Symbol struct {
	Name source.StringID
	// Slot: плотный индекс в порядке первого появления, начиная с 0.
	Slot uint32
	// First is the span of the first reference that declared the variable.
	First source.Span
	// Uses counts every reference, including the first one.
	Uses uint32
}
