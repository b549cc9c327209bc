// Package display turns evaluation outcomes into text for people.
package display

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/zephyrtronium/strcalc"
)

// FormatValue formats a result. Integers print without a fraction. Other
// values print with at most decimals fraction digits and no trailing zeros.
func FormatValue(v float64, decimals int) string {
	if v == 0 {
		// Also covers negative zero.
		return "0"
	}
	if v == math.Trunc(v) {
		if math.Abs(v) < 1e21 {
			return strconv.FormatFloat(v, 'f', 0, 64)
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	switch s {
	case "", "-0":
		return "0"
	}
	return s
}

var messages = map[strcalc.ErrorKind]string{
	strcalc.EmptyInput:            "Enter a value to calculate.",
	strcalc.EmptyExpression:       "No numbers found.",
	strcalc.IncompleteNumber:      "Finish the number.",
	strcalc.InvalidDecimal:        "That is not a valid decimal number.",
	strcalc.UnparsableNumber:      "That number can't be read.",
	strcalc.MissingOperand:        "A number is needed here.",
	strcalc.UnsupportedCharacter:  "Unsupported character.",
	strcalc.TrailingOperator:      "An expression can't end with an operator.",
	strcalc.UnbalancedParentheses: "Parentheses don't match.",
	strcalc.InsufficientOperands:  "Not enough numbers for the operation.",
	strcalc.DivisionByZero:        "Can't divide by zero.",
	strcalc.NonFiniteResult:       "The result is out of range.",
	strcalc.MalformedExpression:   "The expression can't be understood.",
}

// Message returns a sentence describing an error kind.
func Message(kind strcalc.ErrorKind) string {
	if m, ok := messages[kind]; ok {
		return m
	}
	return "Something went wrong."
}

// Describe returns a sentence describing an evaluation error. It mentions the
// offending character for UnsupportedCharacter.
func Describe(err error) string {
	var e *strcalc.Error
	if errors.As(err, &e) && e.Kind == strcalc.UnsupportedCharacter && e.Text != "" {
		return fmt.Sprintf("Unsupported character %q.", e.Text)
	}
	return Message(strcalc.KindOf(err))
}

// Caret returns a line with a ^ under column col of expr, where col counts
// runes from 1. Wide runes count as two cells. The result is empty if col is
// not a position in expr.
func Caret(expr string, col int) string {
	if col <= 0 {
		return ""
	}
	w := 0
	n := 0
	for _, r := range expr {
		n++
		if n == col {
			return strings.Repeat(" ", w) + "^"
		}
		w += runewidth.RuneWidth(r)
	}
	return ""
}

// ColorEnabled decides whether to color output to f given a mode of auto, on,
// or off.
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return f != nil && term.IsTerminal(int(f.Fd())) && os.Getenv("NO_COLOR") == ""
	}
}

// Printer writes outcomes.
type Printer struct {
	out      io.Writer
	decimals int
	caret    bool

	value *color.Color
	fail  *color.Color
	dim   *color.Color
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer, decimals int, caret, colored bool) *Printer {
	p := &Printer{
		out:      w,
		decimals: decimals,
		caret:    caret,
		value:    color.New(color.FgGreen, color.Bold),
		fail:     color.New(color.FgRed, color.Bold),
		dim:      color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{p.value, p.fail, p.dim} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Value writes a successful result.
func (p *Printer) Value(v float64) error {
	_, err := fmt.Fprintln(p.out, p.value.Sprint(FormatValue(v, p.decimals)))
	return err
}

// Failure writes a failed evaluation of src. When the printer shows carets
// and the error has a position, the normalized expression is printed with a
// caret under the position.
func (p *Printer) Failure(src string, err error) error {
	if _, werr := fmt.Fprintf(p.out, "%s %s\n", p.fail.Sprint("error:"), Describe(err)); werr != nil {
		return werr
	}
	var ie strcalc.InputError
	if !p.caret || !errors.As(err, &ie) || ie.Pos() <= 0 {
		return nil
	}
	norm := strcalc.Normalize(strings.TrimSpace(src))
	c := Caret(norm, ie.Pos())
	if c == "" {
		return nil
	}
	_, werr := fmt.Fprintf(p.out, "  %s\n  %s\n", norm, p.dim.Sprint(c))
	return werr
}

// Outcome writes either the value or the failure of o.
func (p *Printer) Outcome(src string, o strcalc.Outcome) error {
	if o.OK() {
		return p.Value(o.Value())
	}
	return p.Failure(src, o.Err())
}

// Echo writes an annotation line, such as the postfix form of an expression.
func (p *Printer) Echo(label, text string) error {
	_, err := fmt.Fprintf(p.out, "%s %s\n", p.dim.Sprint(label+":"), text)
	return err
}
