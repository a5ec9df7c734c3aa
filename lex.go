package roman

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal integer, either written as one or substituted
	// for a numeral.
	tokenNum
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open bracket. Square brackets are lexed as (.
	tokenOpen
	// tokenClose is a close bracket. Square brackets are lexed as ).
	tokenClose
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

// OpenBrackets and CloseBrackets contain the runes which group expressions.
// Every bracket is rewritten to the first in its list before lexing, so
// "[I)" is a valid grouping.
const (
	OpenBrackets  = "(["
	CloseBrackets = ")]"
)

// rewrite is the expression after numeral substitution. cols[i] is the
// position in the original input of the rune that produced text[i].
type rewrite struct {
	text []rune
	cols []int
	end  int
}

// fold returns the ASCII spelling of a Roman numeral code point such as Ⅻ or
// of a full-width letter, operator, or bracket. Any other rune, including
// compatibility digits like ² and ①, is returned unchanged so that the lexer
// rejects it.
func fold(r rune) string {
	s := string(r)
	if r < utf8.RuneSelf {
		return s
	}
	if !(0x2160 <= r && r <= 0x2188) && !(0xff01 <= r && r <= 0xff5e) {
		return s
	}
	n := norm.NFKC.String(s)
	for _, c := range n {
		if !isNumeral(c) && !strings.ContainsRune(Operators+OpenBrackets+CloseBrackets, c) {
			return s
		}
	}
	return n
}

// foldString applies fold to each rune of s.
func foldString(s string) string {
	var b strings.Builder
	for _, r := range s {
		b.WriteString(fold(r))
	}
	return b.String()
}

// substitute prepares an expression for lexing. It folds Unicode numerals and
// full-width symbols to ASCII, removes whitespace, replaces each maximal run
// of numeral letters with its decimal value, and normalizes brackets. A run
// which is not a valid numeral aborts the whole substitution.
func substitute(src string) (*rewrite, error) {
	var flat rewrite
	col := 0
	for _, r := range src {
		col++
		for _, n := range fold(r) {
			if unicode.IsSpace(n) {
				continue
			}
			flat.text = append(flat.text, n)
			flat.cols = append(flat.cols, col)
		}
	}
	out := rewrite{
		text: make([]rune, 0, len(flat.text)),
		cols: make([]int, 0, len(flat.cols)),
		end:  utf8.RuneCountInString(src) + 1,
	}
	for i := 0; i < len(flat.text); {
		r := flat.text[i]
		switch {
		case isNumeral(r):
			j := i
			for j < len(flat.text) && isNumeral(flat.text[j]) {
				j++
			}
			run := string(flat.text[i:j])
			v, err := ParseNumeral(run)
			if err != nil {
				return nil, &NumeralError{Col: flat.cols[i], Numeral: run}
			}
			for _, d := range strconv.Itoa(v) {
				out.text = append(out.text, d)
				out.cols = append(out.cols, flat.cols[i])
			}
			i = j
			continue
		case strings.ContainsRune(OpenBrackets, r):
			r = '('
		case strings.ContainsRune(CloseBrackets, r):
			r = ')'
		}
		out.text = append(out.text, r)
		out.cols = append(out.cols, flat.cols[i])
		i++
	}
	if err := out.fractions(); err != nil {
		return nil, err
	}
	return &out, nil
}

// fractions rejects decimal fractions like "2.5" anywhere in the rewritten
// text.
func (w *rewrite) fractions() error {
	for i := 0; i < len(w.text); i++ {
		if !isDigit(w.text[i]) {
			continue
		}
		j := i
		for j < len(w.text) && isDigit(w.text[j]) {
			j++
		}
		if j+1 < len(w.text) && w.text[j] == '.' && isDigit(w.text[j+1]) {
			k := j + 1
			for k < len(w.text) && isDigit(w.text[k]) {
				k++
			}
			return &FractionError{Col: w.cols[i], Text: string(w.text[i:k])}
		}
		i = j
	}
	return nil
}

// String returns the rewritten text.
func (w *rewrite) String() string {
	return string(w.text)
}

type lexer struct {
	src *rewrite
	i   int
}

func lex(src *rewrite) *lexer {
	return &lexer{src: src}
}

// next scans the next token from the input. At the end of the input, the
// result is an EOF token positioned just past the last rune of the original
// input. Any rune that cannot begin a token is an error.
func (l *lexer) next() (lexToken, error) {
	if l.i >= len(l.src.text) {
		return lexToken{kind: tokenEOF, pos: l.src.end}, nil
	}
	r := l.src.text[l.i]
	tok := lexToken{pos: l.src.cols[l.i]}
	switch {
	case isDigit(r):
		j := l.i
		for j < len(l.src.text) && isDigit(l.src.text[j]) {
			j++
		}
		tok.text = string(l.src.text[l.i:j])
		tok.kind = tokenNum
		l.i = j
		return tok, nil
	case strings.ContainsRune(Operators, r):
		tok.kind = tokenOp
	case r == '(':
		tok.kind = tokenOpen
	case r == ')':
		tok.kind = tokenClose
	default:
		l.i++
		return lexToken{pos: tok.pos}, &LexError{Text: string(r), Col: tok.pos}
	}
	tok.text = string(r)
	l.i++
	return tok, nil
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// LexError indicates a rune that cannot appear in an expression. It implements
// InputError.
type LexError struct {
	// Text is the rune that was not understood.
	Text string
	// Col is the position of the rune in the input.
	Col int
}

func (err *LexError) Error() string {
	return "invalid token at column " + strconv.Itoa(err.Col) + ": " + strconv.Quote(err.Text)
}

func (err *LexError) Pos() int {
	return err.Col
}
