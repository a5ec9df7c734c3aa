package roman

import "math/big"

// Eval evaluates the expression. Intermediate results may be zero or
// negative; only division by zero is an error, a *DivisionByZeroError.
func (e *Expr) Eval() (*big.Int, error) {
	return e.n.eval()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string) (*big.Int, error) {
	e, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return e.Eval()
}

func (n *literal) eval() (*big.Int, error) {
	return new(big.Int).Set(n.val), nil
}

func (n *binary) eval() (*big.Int, error) {
	l, err := n.left.eval()
	if err != nil {
		return nil, err
	}
	r, err := n.right.eval()
	if err != nil {
		return nil, err
	}
	switch n.op {
	case '+':
		return l.Add(l, r), nil
	case '-':
		return l.Sub(l, r), nil
	case '*':
		return l.Mul(l, r), nil
	case '/':
		if r.Sign() == 0 {
			return nil, &DivisionByZeroError{Col: n.pos, Dividend: l}
		}
		return floorQuo(l, r), nil
	default:
		panic("roman: invalid operator " + string(n.op))
	}
}

// floorQuo returns x/y rounded toward negative infinity.
func floorQuo(x, y *big.Int) *big.Int {
	var q, m big.Int
	q.QuoRem(x, y, &m)
	if m.Sign() != 0 && m.Sign() != y.Sign() {
		q.Sub(&q, big.NewInt(1))
	}
	return &q
}
