package roman

import (
	"math/big"
	"strconv"
)

// NumeralError indicates a run of numeral letters that is not a well-formed
// Roman numeral. It implements InputError.
type NumeralError struct {
	// Col is the position of the first letter of the numeral.
	Col int
	// Numeral is the run of letters that was rejected.
	Numeral string
}

func (err *NumeralError) Error() string {
	if err.Numeral == "" {
		return errpos(err.Col, "empty numeral")
	}
	return errpos(err.Col, "invalid numeral "+strconv.Quote(err.Numeral))
}

func (err *NumeralError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched brackets in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the bracket.
	Col int
	// Left is the opening bracket, or the empty string if there was none.
	Left string
	// Right is the closing bracket, or the empty string if there was none.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// OperandError is an error indicating an operator without both of its
// operands. It implements InputError.
type OperandError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator missing an operand.
	Operator string
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "missing operand for "+strconv.Quote(err.Operator))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// OperatorMissingError is an error indicating two terms with no operator
// between them, as in "(I)(II)". It implements InputError.
type OperatorMissingError struct {
	// Col is the position of the second term.
	Col int
}

func (err *OperatorMissingError) Error() string {
	return errpos(err.Col, "missing operator before term")
}

func (err *OperatorMissingError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an input with nothing to
// evaluate. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position just past the end of the input.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// FractionError is an error indicating a decimal fraction in the input. It
// implements InputError.
type FractionError struct {
	// Col is the position of the number.
	Col int
	// Text is the number, including its fractional part.
	Text string
}

func (err *FractionError) Error() string {
	return errpos(err.Col, "fractional number "+err.Text)
}

func (err *FractionError) Pos() int {
	return err.Col
}

// DivisionByZeroError is an error from evaluating a division whose divisor is
// zero. It implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the division operator.
	Col int
	// Dividend is the value that was to be divided.
	Dividend *big.Int
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division of "+err.Dividend.String()+" by zero")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// RangeError is an error indicating an integer with no Roman spelling.
type RangeError struct {
	// N is the integer outside [1, MaxNumeral].
	N int
}

func (err *RangeError) Error() string {
	return strconv.Itoa(err.N) + " outside numeral range [1, " + strconv.Itoa(MaxNumeral) + "]"
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*NumeralError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*OperatorMissingError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*FractionError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
	_ InputError = (*LexError)(nil)
)
