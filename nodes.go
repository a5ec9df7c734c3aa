package roman

import (
	"math/big"
	"strings"
)

// node is a node in the expression tree. There are exactly two kinds of
// nodes, literal and binary.
type node interface {
	// eval computes the value of the subtree rooted at the node.
	eval() (*big.Int, error)
	// fmt writes the subtree to b, wrapped in square brackets if square is
	// set and parentheses otherwise.
	fmt(b *strings.Builder, square bool)
	// start is the position of the leftmost operand in the subtree.
	start() int
}

// literal is an integer operand.
type literal struct {
	val *big.Int
	pos int
}

// binary applies op to the values of left and right, in that order.
type binary struct {
	op    byte
	pos   int
	left  node
	right node
}

func brackets(square bool) (byte, byte) {
	if square {
		return '[', ']'
	}
	return '(', ')'
}

func (n *literal) start() int { return n.pos }

func (n *binary) start() int { return n.left.start() }

func (n *literal) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	b.WriteString(n.val.String())
	b.WriteByte(r)
}

func (n *binary) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	n.left.fmt(b, !square)
	b.WriteByte(' ')
	b.WriteByte(n.op)
	b.WriteByte(' ')
	n.right.fmt(b, !square)
	b.WriteByte(r)
}
