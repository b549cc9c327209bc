// Package strcalc implements a calculator for strings of numbers.
//
// The input is meant to be whatever someone types into a single form field.
// "1,2,3" and "1:2\n3" are both sums of three terms; commas, colons, and
// newlines are all shorthand for +. Beyond that, expressions are ordinary
// arithmetic: "1 + 2.5 - 3", "(2+3)*4", "-.5*2". There are no variables, no
// functions, and no exponents.
//
// Evaluation happens in stages that are exported separately for tools that
// want to show their work: Normalize rewrites separators and removes white
// space, Tokenize scans the result, Postfix reorders the tokens with the
// shunting-yard algorithm, and EvalPostfix computes the value. Evaluate runs
// them all and reports an Outcome. Every failure has an ErrorKind, and every
// error caused by input implements InputError with a column in the
// normalized text.
//
// Arithmetic is float64. A result that would be infinite or NaN is an error,
// as is division by zero.
package strcalc
