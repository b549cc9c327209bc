package strcalc

import (
	"math"
	"strings"
)

// EvalPostfix reduces a postfix token stream to a single value.
func EvalPostfix(toks TokenStream) (float64, error) {
	stack := make([]float64, 0, len(toks)/2+1)
	for _, tok := range toks {
		switch tok.Kind {
		case TokenNumber:
			stack = append(stack, tok.Value)
		case TokenOperator:
			if len(stack) < 2 {
				return 0, fail(InsufficientOperands, tok.Pos, tok.Text())
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			if tok.Op == OpDiv && b == 0 {
				return 0, fail(DivisionByZero, tok.Pos, tok.Text())
			}
			r := optab[tok.Op].apply(a, b)
			if math.IsInf(r, 0) || math.IsNaN(r) {
				return 0, fail(NonFiniteResult, tok.Pos, tok.Text())
			}
			stack = append(stack, r)
		default:
			// Parentheses never survive Postfix.
			return 0, fail(MalformedExpression, tok.Pos, tok.Text())
		}
	}
	if len(stack) != 1 {
		return 0, fail(MalformedExpression, 0, "")
	}
	return stack[0], nil
}

// Outcome is the result of evaluating an expression: either a value or the
// kind of error that prevented evaluation, never both.
type Outcome struct {
	value float64
	err   *Error
}

// OK reports whether evaluation succeeded.
func (o Outcome) OK() bool {
	return o.err == nil
}

// Value returns the result of a successful evaluation, or 0 if evaluation
// failed.
func (o Outcome) Value() float64 {
	return o.value
}

// Kind returns the kind of error that caused evaluation to fail, or NoError
// if it succeeded.
func (o Outcome) Kind() ErrorKind {
	if o.err == nil {
		return NoError
	}
	return o.err.Kind
}

// Err returns the error that caused evaluation to fail. The result is nil if
// and only if evaluation succeeded; otherwise it is an *Error.
func (o Outcome) Err() error {
	if o.err == nil {
		return nil
	}
	return o.err
}

func (o Outcome) String() string {
	if o.err != nil {
		return "Failure(" + o.err.Kind.String() + ")"
	}
	return "Success(" + Token{Kind: TokenNumber, Value: o.value}.Text() + ")"
}

// Evaluate evaluates an arithmetic expression. Runs of commas, colons, and
// newlines separate terms to be added, so "1,2:3" is 6. Expressions may
// contain decimal numbers, negative numbers, + - * / with the usual
// precedence, and parentheses. White space is ignored. Evaluate is safe to
// call concurrently and keeps no state between calls.
func Evaluate(text string) Outcome {
	v, err := evaluate(text)
	if err != nil {
		return Outcome{err: err}
	}
	return Outcome{value: v}
}

// Eval is like Evaluate, but it returns the result as a value and an error.
// A non-nil error is always an *Error.
func Eval(text string) (float64, error) {
	v, err := evaluate(text)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func evaluate(text string) (float64, *Error) {
	text = strings.TrimFunc(text, isSpace)
	if text == "" {
		return 0, &Error{Kind: EmptyInput}
	}
	return evalnorm(Normalize(text))
}

// evalnorm evaluates a normalized expression.
func evalnorm(s string) (float64, *Error) {
	toks, err := Tokenize(s)
	if err != nil {
		return 0, err.(*Error)
	}
	if len(toks) == 0 {
		return 0, &Error{Kind: EmptyExpression}
	}
	rpn, err := Postfix(toks)
	if err != nil {
		return 0, err.(*Error)
	}
	v, err := EvalPostfix(rpn)
	if err != nil {
		return 0, err.(*Error)
	}
	return v, nil
}
