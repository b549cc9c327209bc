package strcalc

// Postfix reorders an infix token stream into postfix order with the
// shunting-yard algorithm. Operators of equal precedence associate left.
// Parentheses do not appear in the result.
func Postfix(toks TokenStream) (TokenStream, error) {
	out := make(TokenStream, 0, len(toks))
	// stack holds operators and open parentheses.
	var stack []Token
	for _, tok := range toks {
		switch tok.Kind {
		case TokenNumber:
			out = append(out, tok)
		case TokenOperator:
			prec := tok.Op.Prec()
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != TokenOperator || top.Op.Prec() < prec {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case TokenParenLeft:
			stack = append(stack, tok)
		case TokenParenRight:
			for len(stack) > 0 && stack[len(stack)-1].Kind != TokenParenLeft {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, fail(UnbalancedParentheses, tok.Pos, ")")
			}
			stack = stack[:len(stack)-1]
		default:
			return nil, fail(MalformedExpression, tok.Pos, "")
		}
	}
	for len(stack) > 0 {
		tok := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if tok.Kind != TokenOperator {
			return nil, fail(UnbalancedParentheses, tok.Pos, tok.Text())
		}
		out = append(out, tok)
	}
	return out, nil
}
