package token

var keywords = map[string]Kind{
	"return": KwReturn,
	"if":     KwIf,
	"else":   KwElse,
	"for":    KwFor,
	"while":  KwWhile,
}

// LookupKeyword reports whether ident is a reserved word and returns its kind.
// Only an exact, case-sensitive match counts: "returns" and "Return" are identifiers.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
