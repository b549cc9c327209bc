package strcalc

import (
	"math"
	"strconv"
	"strings"
)

// Token is a single lexical element of a normalized expression.
type Token struct {
	// Kind is the type of the token.
	Kind TokenKind
	// Op is the operator of an operator token.
	Op Operator
	// Value is the value of a number token. It is always finite.
	Value float64
	// Pos is the column of the start of the token in the normalized
	// expression, counted in runes from 1.
	Pos int
}

// Text returns the token's text in canonical form.
func (t Token) Text() string {
	switch t.Kind {
	case TokenNumber:
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	case TokenOperator:
		return t.Op.String()
	case TokenParenLeft:
		return "("
	case TokenParenRight:
		return ")"
	default:
		return ""
	}
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text() + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the type of a token.
type TokenKind uint8

const (
	// TokenNone is the zero TokenKind. No token has this kind; Tokenize uses
	// it to mean that no token has been completed yet.
	TokenNone TokenKind = iota
	// TokenNumber is a literal number, possibly negative.
	TokenNumber
	// TokenOperator is a binary operator.
	TokenOperator
	// TokenParenLeft is an open parenthesis.
	TokenParenLeft
	// TokenParenRight is a close parenthesis.
	TokenParenRight
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNumber:
		return "Number"
	case TokenOperator:
		return "Operator"
	case TokenParenLeft:
		return "ParenLeft"
	case TokenParenRight:
		return "ParenRight"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// wantsOperand reports whether a token following one of kind k must begin an
// operand.
func (k TokenKind) wantsOperand() bool {
	return k == TokenNone || k == TokenOperator || k == TokenParenLeft
}

// TokenStream is a sequence of tokens in either infix or postfix order.
type TokenStream []Token

// String formats the stream as token texts separated by spaces.
func (s TokenStream) String() string {
	var b strings.Builder
	for i, t := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text())
	}
	return b.String()
}

// Tokenize scans a normalized expression into tokens. The input should
// already be the output of Normalize; in particular, white space is an
// unsupported character. A leading - on a number is part of the number when
// it appears at the start of the expression, after an operator, or after an
// open parenthesis. An empty input produces an empty stream with no error.
func Tokenize(s string) (TokenStream, error) {
	var (
		toks TokenStream
		prev TokenKind
		num  strings.Builder
		// ncol is the column where the pending number started.
		ncol int
		col  int
		err  error
	)
	for _, r := range s {
		col++
		switch {
		case '0' <= r && r <= '9':
			if num.Len() == 0 {
				ncol = col
			}
			num.WriteRune(r)
		case r == '.':
			if strings.IndexByte(num.String(), '.') >= 0 {
				return nil, fail(InvalidDecimal, col, num.String()+".")
			}
			switch num.String() {
			case "":
				ncol = col
				num.WriteByte('0')
			case "-":
				num.WriteByte('0')
			}
			num.WriteByte('.')
		case r == '-' && num.Len() == 0 && prev.wantsOperand():
			ncol = col
			num.WriteByte('-')
		case opfor(r) != OpNone:
			toks, prev, err = flushnum(toks, prev, &num, ncol)
			if err != nil {
				return nil, err
			}
			if prev.wantsOperand() {
				return nil, fail(MissingOperand, col, string(r))
			}
			toks = append(toks, Token{Kind: TokenOperator, Op: opfor(r), Pos: col})
			prev = TokenOperator
		case r == '(':
			toks, prev, err = flushnum(toks, prev, &num, ncol)
			if err != nil {
				return nil, err
			}
			toks = append(toks, Token{Kind: TokenParenLeft, Pos: col})
			prev = TokenParenLeft
		case r == ')':
			toks, prev, err = flushnum(toks, prev, &num, ncol)
			if err != nil {
				return nil, err
			}
			if prev.wantsOperand() {
				return nil, fail(MissingOperand, col, ")")
			}
			toks = append(toks, Token{Kind: TokenParenRight, Pos: col})
			prev = TokenParenRight
		default:
			return nil, fail(UnsupportedCharacter, col, string(r))
		}
	}
	toks, _, err = flushnum(toks, prev, &num, ncol)
	if err != nil {
		return nil, err
	}
	if len(toks) > 0 {
		switch last := toks[len(toks)-1]; last.Kind {
		case TokenOperator, TokenParenLeft:
			return nil, fail(TrailingOperator, last.Pos, last.Text())
		}
	}
	return toks, nil
}

// flushnum appends the pending number in num, if there is one, and resets
// num. The returned kind is the kind of the last completed token.
func flushnum(toks TokenStream, prev TokenKind, num *strings.Builder, col int) (TokenStream, TokenKind, error) {
	if num.Len() == 0 {
		return toks, prev, nil
	}
	text := num.String()
	num.Reset()
	if text == "-" || text == "+" {
		return nil, prev, fail(IncompleteNumber, col, text)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(v, 0) {
		return nil, prev, fail(UnparsableNumber, col, text)
	}
	toks = append(toks, Token{Kind: TokenNumber, Value: v, Pos: col})
	return toks, TokenNumber, nil
}
