package ast

// BinaryOp is the operator of a BinaryExpr.
// `>` and `=>` never appear: the parser flips them into OpLt and OpLe.
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota // +
	OpSub                 // -
	OpMul                 // *
	OpDiv                 // /
	OpLt                  // <
	OpLe                  // <=
	OpEq                  // ==
	OpNe                  // !=
)

var binaryOpLexemes = [...]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpLt:  "<",
	OpLe:  "<=",
	OpEq:  "==",
	OpNe:  "!=",
}

var binaryOpNames = [...]string{
	OpAdd: "Add",
	OpSub: "Sub",
	OpMul: "Mul",
	OpDiv: "Div",
	OpLt:  "Lt",
	OpLe:  "Le",
	OpEq:  "Eq",
	OpNe:  "Ne",
}

// String returns the operator lexeme.
func (op BinaryOp) String() string {
	if int(op) < len(binaryOpLexemes) {
		return binaryOpLexemes[op]
	}
	return "?"
}

// Name returns the operator name used in JSON output.
func (op BinaryOp) Name() string {
	if int(op) < len(binaryOpNames) {
		return binaryOpNames[op]
	}
	return "Invalid"
}

// Valid reports whether op is one of the defined operators.
func (op BinaryOp) Valid() bool {
	return int(op) < len(binaryOpLexemes)
}
