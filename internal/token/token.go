package token

import (
	"occ/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind  Kind
	Span  source.Span
	Text  string
	Value uint64 // only for Number
}

// Describe renders the token for diagnostics: the quoted text, or "end of input".
func (t Token) Describe() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case Invalid:
		if t.Text == "" {
			return "invalid token"
		}
	}
	return "'" + t.Text + "'"
}
