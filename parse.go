package roman

import (
	"math/big"
	"strings"
)

// Expr = num | numeral | Add | Sub | Mul | Div | '(' Expr ')' | '[' Expr ']'
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr
//
// Numerals are substituted with their decimal values before lexing, so a
// numeral directly beside digits joins them: "X0" is 100.

// Expr is a parsed expression that can be evaluated.
type Expr struct {
	// n is the root node of the expression.
	n node
	// decimal is the input after numeral substitution.
	decimal string
}

// precedence returns the binding strength of a binary operator. Higher binds
// more tightly.
func precedence(op string) int {
	switch op {
	case "+", "-":
		return 1
	case "*", "/":
		return 2
	}
	panic("roman: unknown operator " + op)
}

// Parse parses an expression so it can be evaluated. Every error is an
// InputError.
func Parse(src string) (*Expr, error) {
	w, err := substitute(src)
	if err != nil {
		return nil, err
	}
	post, err := postfix(lex(w))
	if err != nil {
		return nil, err
	}
	n, err := build(post, w.end)
	if err != nil {
		return nil, err
	}
	return &Expr{n: n, decimal: w.String()}, nil
}

// postfix reorders the tokens from scan into postfix order using the
// shunting-yard algorithm. Brackets are consumed; the result contains only
// numbers and operators. Operators of equal precedence associate to the left.
func postfix(scan *lexer) ([]lexToken, error) {
	var out, ops []lexToken
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenNum:
			out = append(out, tok)
		case tokenOp:
			p := precedence(tok.text)
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind != tokenOp || precedence(top.text) < p {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		case tokenOpen:
			ops = append(ops, tok)
		case tokenClose:
			for {
				if len(ops) == 0 {
					return nil, &BracketError{Col: tok.pos, Right: tok.text}
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.kind == tokenOpen {
					break
				}
				out = append(out, top)
			}
		case tokenEOF:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.kind == tokenOpen {
					return nil, &BracketError{Col: top.pos, Left: top.text}
				}
				out = append(out, top)
			}
			return out, nil
		default:
			panic("roman: unknown token: " + tok.String())
		}
	}
}

// build constructs the expression tree from tokens in postfix order. end is
// the position reported if there are no tokens.
func build(post []lexToken, end int) (node, error) {
	var stack []node
	for _, tok := range post {
		switch tok.kind {
		case tokenNum:
			v, ok := new(big.Int).SetString(tok.text, 10)
			if !ok {
				panic("roman: invalid number: " + tok.text)
			}
			stack = append(stack, &literal{val: v, pos: tok.pos})
		case tokenOp:
			if len(stack) < 2 {
				return nil, &OperandError{Col: tok.pos, Operator: tok.text}
			}
			// The most recent operand is the right-hand side.
			r := stack[len(stack)-1]
			l := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, &binary{op: tok.text[0], pos: tok.pos, left: l, right: r})
		default:
			panic("roman: unexpected token in postfix: " + tok.String())
		}
	}
	switch len(stack) {
	case 0:
		return nil, &EmptyExpressionError{Col: end}
	case 1:
		return stack[0], nil
	default:
		return nil, &OperatorMissingError{Col: stack[1].start()}
	}
}

// String formats the expression tree, alternating parentheses and square
// brackets by depth.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b, false)
	return b.String()
}

// Decimal returns the expression as it was lexed, with numerals replaced by
// their decimal values, whitespace removed, and square brackets normalized.
func (e *Expr) Decimal() string {
	return e.decimal
}
