package roman

import (
	"errors"
	"math/big"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Messages returned in place of a numeral.
const (
	NeedExpression = "The calculator requires an expression to calculate."
	Unreadable     = "I don't know how to read this."
	Negative       = "Negative numbers can't be represented in Roman numerals."
	Zero           = "0 does not exist in Roman numerals."
	TooLarge       = "You're going to need a bigger calculator."
	Fractional     = "There is no concept of a fractional number in Roman numerals."
	Fraction       = "Roman numerals can't represent fractions."
)

// Calculator evaluates expressions to numerals. A Calculator is safe to use
// concurrently.
type Calculator struct {
	log     *zap.Logger
	workers int
}

// Option is an option used when creating a calculator.
type Option interface {
	calcOption()
}

type (
	logopt    struct{ l *zap.Logger }
	workeropt int
)

func (logopt) calcOption()    {}
func (workeropt) calcOption() {}

// Logger sets the logger a calculator uses to trace evaluation. The default
// discards everything.
func Logger(l *zap.Logger) Option {
	return logopt{l}
}

// Workers sets the number of expressions EvaluateAll evaluates at once. The
// default is 4.
func Workers(n int) Option {
	return workeropt(n)
}

// NewCalculator creates a calculator with the given options, applied in order.
func NewCalculator(opts ...Option) *Calculator {
	c := Calculator{log: zap.NewNop(), workers: 4}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case logopt:
			if opt.l != nil {
				c.log = opt.l
			}
		case workeropt:
			if opt > 0 {
				c.workers = int(opt)
			}
		default:
			panic("roman: unknown option type")
		}
	}
	return &c
}

var defaultCalc = NewCalculator()

// Evaluate is a shortcut to evaluate an expression with a calculator that has
// default options.
func Evaluate(expression string) string {
	return defaultCalc.Evaluate(expression)
}

// Evaluate evaluates an expression and renders the result. It never fails: a
// result which is not a numeral is one of the messages in this package. An
// expression that is only a numeral, like "XIV", is echoed as its decimal
// value.
func (c *Calculator) Evaluate(expression string) string {
	if Bare(expression) {
		n, err := ParseNumeral(strings.TrimSpace(foldString(expression)))
		if err != nil {
			c.log.Debug("unreadable numeral", zap.String("expression", expression), zap.Error(err))
			return Unreadable
		}
		c.log.Debug("bare numeral", zap.String("expression", expression), zap.Int("value", n))
		return strconv.Itoa(n)
	}
	e, err := Parse(expression)
	if err != nil {
		c.log.Debug("parse failed", zap.String("expression", expression), zap.Error(err))
		return Message(err)
	}
	c.log.Debug("parsed",
		zap.String("expression", expression),
		zap.String("decimal", e.Decimal()),
		zap.Stringer("tree", e),
	)
	r, err := e.Eval()
	if err != nil {
		c.log.Debug("evaluation failed", zap.String("expression", expression), zap.Error(err))
		return Message(err)
	}
	c.log.Debug("evaluated", zap.String("expression", expression), zap.Stringer("result", r))
	return Format(r)
}

// Bare reports whether an expression is only a numeral, possibly surrounded by
// whitespace. Evaluate echoes bare numerals as decimal values instead of
// evaluating them.
func Bare(expression string) bool {
	s := strings.TrimSpace(foldString(expression))
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isNumeral(r) {
			return false
		}
	}
	return true
}

// Format renders an evaluation result. Results in [1, MaxNumeral] are
// numerals. Anything else is the message describing why it can't be one.
func Format(n *big.Int) string {
	switch {
	case n.Sign() < 0:
		return Negative
	case n.Sign() == 0:
		return Zero
	case !n.IsInt64() || n.Int64() > MaxNumeral:
		return TooLarge
	}
	s, err := FormatNumeral(int(n.Int64()))
	if err != nil {
		panic("roman: numeral in range failed to format: " + err.Error())
	}
	return s
}

// Message returns the message describing an error from Parse or Eval.
func Message(err error) string {
	var (
		zero *DivisionByZeroError
		frac *FractionError
	)
	switch {
	case errors.As(err, &zero):
		return Fractional
	case errors.As(err, &frac):
		return Fraction
	default:
		return Unreadable
	}
}
