package strcalc

import (
	"errors"
	"strconv"
)

// ErrorKind classifies a failed evaluation. ErrorKind implements error, so
// callers can test any error returned from this package with errors.Is, e.g.
// errors.Is(err, strcalc.DivisionByZero). Because it is an error, the fmt
// verbs %v and %s format its error message; call String for its name.
type ErrorKind uint8

const (
	// NoError is the kind of a successful outcome.
	NoError ErrorKind = iota
	// EmptyInput indicates input that is empty or only white space.
	EmptyInput
	// EmptyExpression indicates input that produced no tokens.
	EmptyExpression
	// IncompleteNumber indicates a sign with no digits following it.
	IncompleteNumber
	// InvalidDecimal indicates a number with more than one decimal point.
	InvalidDecimal
	// UnparsableNumber indicates a number that does not fit in a finite
	// float64.
	UnparsableNumber
	// MissingOperand indicates an operator or close parenthesis in a place
	// where a number was required.
	MissingOperand
	// UnsupportedCharacter indicates a character outside the grammar.
	UnsupportedCharacter
	// TrailingOperator indicates an expression ending with an operator or an
	// open parenthesis.
	TrailingOperator
	// UnbalancedParentheses indicates parentheses that do not pair up.
	UnbalancedParentheses
	// InsufficientOperands indicates an operator applied to fewer than two
	// values.
	InsufficientOperands
	// DivisionByZero indicates a division with a zero divisor.
	DivisionByZero
	// NonFiniteResult indicates an operation producing an infinity or NaN.
	NonFiniteResult
	// MalformedExpression indicates an expression that does not reduce to
	// exactly one value.
	MalformedExpression

	kindCount
)

var kindnames = [kindCount]string{
	NoError:               "NoError",
	EmptyInput:            "EmptyInput",
	EmptyExpression:       "EmptyExpression",
	IncompleteNumber:      "IncompleteNumber",
	InvalidDecimal:        "InvalidDecimal",
	UnparsableNumber:      "UnparsableNumber",
	MissingOperand:        "MissingOperand",
	UnsupportedCharacter:  "UnsupportedCharacter",
	TrailingOperator:      "TrailingOperator",
	UnbalancedParentheses: "UnbalancedParentheses",
	InsufficientOperands:  "InsufficientOperands",
	DivisionByZero:        "DivisionByZero",
	NonFiniteResult:       "NonFiniteResult",
	MalformedExpression:   "MalformedExpression",
}

var kinddescs = [kindCount]string{
	NoError:               "no error",
	EmptyInput:            "empty input",
	EmptyExpression:       "no expression",
	IncompleteNumber:      "incomplete number",
	InvalidDecimal:        "invalid decimal",
	UnparsableNumber:      "unparsable number",
	MissingOperand:        "missing operand",
	UnsupportedCharacter:  "unsupported character",
	TrailingOperator:      "expression ends with an operator",
	UnbalancedParentheses: "unbalanced parentheses",
	InsufficientOperands:  "insufficient operands",
	DivisionByZero:        "division by zero",
	NonFiniteResult:       "non-finite result",
	MalformedExpression:   "malformed expression",
}

// String returns the name of the kind, e.g. "DivisionByZero".
func (k ErrorKind) String() string {
	if k >= kindCount {
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindnames[k]
}

func (k ErrorKind) Error() string {
	if k >= kindCount {
		return "strcalc: unknown error kind " + strconv.Itoa(int(k))
	}
	return "strcalc: " + kinddescs[k]
}

// ParseKind returns the kind with the given name. The second result is false
// if there is no such kind.
func ParseKind(name string) (ErrorKind, bool) {
	for k, s := range kindnames {
		if s == name {
			return ErrorKind(k), true
		}
	}
	return NoError, false
}

// Error is an error resulting from invalid input. It implements InputError.
type Error struct {
	// Kind is the classification of the error.
	Kind ErrorKind
	// Col is the position in the normalized expression of the token that
	// caused the error, counted in runes from 1. It is 0 when the error does
	// not belong to a single token.
	Col int
	// Text is the text of the token that caused the error, if any.
	Text string
}

func (err *Error) Error() string {
	msg := err.Kind.Error()
	if err.Text != "" {
		msg += " " + strconv.Quote(err.Text)
	}
	if err.Col <= 0 {
		return msg
	}
	return errpos(err.Col, msg)
}

// Unwrap returns the error's kind.
func (err *Error) Unwrap() error {
	return err.Kind
}

func (err *Error) Pos() int {
	return err.Col
}

// KindOf returns the kind of the first ErrorKind in err's chain. If err is
// nil, the result is NoError. If err has no ErrorKind in its chain, the
// result is MalformedExpression.
func KindOf(err error) ErrorKind {
	if err == nil {
		return NoError
	}
	var k ErrorKind
	if errors.As(err, &k) {
		return k
	}
	return MalformedExpression
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// fail creates an *Error.
func fail(kind ErrorKind, col int, text string) error {
	return &Error{Kind: kind, Col: col, Text: text}
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var _ InputError = (*Error)(nil)
