package strcalc

// Operator is a binary arithmetic operator.
type Operator uint8

const (
	OpNone Operator = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

type operator struct {
	sym   byte
	prec  int
	apply func(a, b float64) float64
}

var optab = [...]operator{
	OpNone: {sym: '?'},
	OpAdd:  {sym: '+', prec: 1, apply: func(a, b float64) float64 { return a + b }},
	OpSub:  {sym: '-', prec: 1, apply: func(a, b float64) float64 { return a - b }},
	OpMul:  {sym: '*', prec: 2, apply: func(a, b float64) float64 { return a * b }},
	// Division by zero is checked before apply.
	OpDiv: {sym: '/', prec: 2, apply: func(a, b float64) float64 { return a / b }},
}

// opfor returns the operator for a rune, or OpNone if r is not an operator.
func opfor(r rune) Operator {
	switch r {
	case '+':
		return OpAdd
	case '-':
		return OpSub
	case '*':
		return OpMul
	case '/':
		return OpDiv
	default:
		return OpNone
	}
}

// Prec returns the binding precedence of the operator. Higher binds tighter.
func (op Operator) Prec() int {
	if int(op) >= len(optab) {
		return 0
	}
	return optab[op].prec
}

func (op Operator) String() string {
	if int(op) >= len(optab) {
		return "?"
	}
	return string(optab[op].sym)
}
