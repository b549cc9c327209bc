package strcalc

import (
	"errors"
	"math"
	"testing"
)

func TestPostfix(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "1", "1"},
		{"add", "1+2", "1 2 +"},
		{"add3", "1+2+3", "1 2 + 3 +"},
		{"sub3", "1-2-3", "1 2 - 3 -"},
		{"div3", "8/4/2", "8 4 / 2 /"},
		{"mixed-equal", "1-2+3", "1 2 - 3 +"},
		{"prec", "1+2*3", "1 2 3 * +"},
		{"prec-desc", "1*2+3", "1 2 * 3 +"},
		{"paren", "(1+2)*3", "1 2 + 3 *"},
		{"nested", "((1+2)*(3-4))/5", "1 2 + 3 4 - * 5 /"},
		{"neg", "-1*-2", "-1 -2 *"},
		{"long", "1+2*3-4/5", "1 2 3 * + 4 5 / -"},
		// Postfix doesn't check operand counts.
		{"juxtaposed", "2(3)", "2 3"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			if err != nil {
				t.Fatalf("couldn't scan %q: %v", c.src, err)
			}
			rpn, err := Postfix(toks)
			if err != nil {
				t.Fatalf("%q failed to convert: %v", c.src, err)
			}
			if got := rpn.String(); got != c.want {
				t.Errorf("%q gave wrong postfix: want %q, got %q", c.src, c.want, got)
			}
		})
	}
}

func TestPostfixUnbalanced(t *testing.T) {
	cases := []struct {
		name string
		src  string
		col  int
	}{
		{"open", "(1+2", 1},
		{"open-inner", "((1)+2", 1},
		{"open-last", "(1)+(2", 5},
		{"close", "1+2)", 4},
		{"close-first", "1)+(2", 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			if err != nil {
				t.Fatalf("couldn't scan %q: %v", c.src, err)
			}
			rpn, err := Postfix(toks)
			if err == nil {
				t.Fatalf("%q converted to %v without error", c.src, rpn)
			}
			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("%#v is not *Error", err)
			}
			if e.Kind != UnbalancedParentheses {
				t.Errorf("%q gave kind %s", c.src, e.Kind.String())
			}
			if e.Col != c.col {
				t.Errorf("%q: want column %d, got %d", c.src, c.col, e.Col)
			}
		})
	}
}

func TestPostfixUnknownToken(t *testing.T) {
	toks := TokenStream{{Kind: TokenNumber, Value: 1, Pos: 1}, {Pos: 2}}
	rpn, err := Postfix(toks)
	if err == nil {
		t.Fatalf("converted to %v without error", rpn)
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("%#v is not *Error", err)
	}
	if e.Kind != MalformedExpression || e.Col != 2 {
		t.Errorf("want MalformedExpression at 2, got %s at %d", e.Kind.String(), e.Col)
	}
}

func TestEvalPostfixErrors(t *testing.T) {
	cases := []struct {
		name string
		toks TokenStream
		kind ErrorKind
	}{
		{"empty", nil, MalformedExpression},
		{"extra", TokenStream{num(1, 1), num(2, 2)}, MalformedExpression},
		{"lonely-op", TokenStream{op(OpAdd, 1)}, InsufficientOperands},
		{"one-operand", TokenStream{num(1, 1), op(OpMul, 2)}, InsufficientOperands},
		{"paren", TokenStream{num(1, 1), lp(2)}, MalformedExpression},
		{"div-zero", TokenStream{num(1, 1), num(0, 3), op(OpDiv, 2)}, DivisionByZero},
		{"div-neg-zero", TokenStream{num(1, 1), num(math.Copysign(0, -1), 3), op(OpDiv, 2)}, DivisionByZero},
		{"overflow", TokenStream{num(1e308, 1), num(10, 2), op(OpMul, 3)}, NonFiniteResult},
		{"overflow-sum", TokenStream{num(1.7e308, 1), num(1.7e308, 2), op(OpAdd, 3)}, NonFiniteResult},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, err := EvalPostfix(c.toks)
			if err == nil {
				t.Fatalf("%v evaluated to %g without error", c.toks, v)
			}
			if !errors.Is(err, c.kind) {
				t.Errorf("%v: want %v, got %v", c.toks, c.kind, err)
			}
		})
	}
}

func TestOperatorPrecedence(t *testing.T) {
	for _, r := range Operators {
		if opfor(r) == OpNone {
			t.Errorf("no operator for %c", r)
		}
	}
	if OpAdd.Prec() != OpSub.Prec() || OpMul.Prec() != OpDiv.Prec() {
		t.Error("operators in the same class have different precedence")
	}
	if OpMul.Prec() <= OpAdd.Prec() {
		t.Errorf("* has prec %d but + has prec %d", OpMul.Prec(), OpAdd.Prec())
	}
}
