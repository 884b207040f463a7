package token

// Operator pairs an operator spelling with its kind.
type Operator struct {
	Text string
	Kind Kind
}

// operators is the maximal-munch table: every lexeme that is a prefix of a
// longer one comes after it. The lexer tries entries in order.
var operators = [...]Operator{
	{"<=", LtEq},
	{"=>", FatArrow},
	{"==", EqEq},
	{"!=", BangEq},
	{"+", Plus},
	{"-", Minus},
	{"*", Star},
	{"/", Slash},
	{"(", LParen},
	{")", RParen},
	{">", Gt},
	{"<", Lt},
	{"=", Assign},
	{";", Semicolon},
}

// Operators returns the operator table in match priority order.
func Operators() []Operator {
	out := make([]Operator, len(operators))
	copy(out, operators[:])
	return out
}
