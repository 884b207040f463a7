package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Number represents an unsigned decimal integer literal.
	Number

	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwWhile represents the 'while' keyword.
	KwWhile // while

	Plus      // +
	Minus     // -
	Star      // *
	Slash     // /
	LParen    // (
	RParen    // )
	LtEq      // <=
	FatArrow  // => (greater-or-equal)
	Gt        // >
	Lt        // <
	EqEq      // ==
	BangEq    // !=
	Assign    // =
	Semicolon // ;
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	Number:    "Number",
	KwReturn:  "KwReturn",
	KwIf:      "KwIf",
	KwElse:    "KwElse",
	KwFor:     "KwFor",
	KwWhile:   "KwWhile",
	Plus:      "Plus",
	Minus:     "Minus",
	Star:      "Star",
	Slash:     "Slash",
	LParen:    "LParen",
	RParen:    "RParen",
	LtEq:      "LtEq",
	FatArrow:  "FatArrow",
	Gt:        "Gt",
	Lt:        "Lt",
	EqEq:      "EqEq",
	BangEq:    "BangEq",
	Assign:    "Assign",
	Semicolon: "Semicolon",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Lexeme returns the fixed spelling of operator and keyword kinds,
// or "" for kinds whose text varies (identifiers, numbers, EOF).
func (k Kind) Lexeme() string {
	if k >= KwReturn && k <= KwWhile {
		for word, kw := range keywords {
			if kw == k {
				return word
			}
		}
	}
	for _, op := range operators {
		if op.Kind == k {
			return op.Text
		}
	}
	return ""
}

// Class groups kinds the way diagnostics and token dumps talk about them.
type Class uint8

const (
	ClassOther Class = iota
	ClassOperand
	ClassReserved
	ClassIdentifier
	ClassNumber
)

func (c Class) String() string {
	switch c {
	case ClassOperand:
		return "operand"
	case ClassReserved:
		return "reserved"
	case ClassIdentifier:
		return "identifier"
	case ClassNumber:
		return "number"
	default:
		return "other"
	}
}

// Class returns the token class of k.
func (k Kind) Class() Class {
	switch {
	case k == Ident:
		return ClassIdentifier
	case k == Number:
		return ClassNumber
	case k >= KwReturn && k <= KwWhile:
		return ClassReserved
	case k >= Plus && k <= Semicolon:
		return ClassOperand
	default:
		return ClassOther
	}
}
