package roman

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// lexAll substitutes and lexes src up to EOF or the first error.
func lexAll(src string) ([]lexToken, error) {
	w, err := substitute(src)
	if err != nil {
		return nil, err
	}
	scan := lex(w)
	var toks []lexToken
	for {
		tok, err := scan.next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.kind == tokenEOF {
			return toks, nil
		}
	}
}

func TestLex(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		tokens []lexToken
		err    error
	}{
		// spaces
		{"empty", "", []lexToken{{kind: tokenEOF, pos: 1}}, nil},
		{"spaces", " \t \r\n ", []lexToken{{kind: tokenEOF, pos: 7}}, nil},
		// numbers and numerals
		{"digits", "0", []lexToken{{text: "0", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 2}}, nil},
		{"numeral", "XIV", []lexToken{{text: "14", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 4}}, nil},
		{"joined", "X V", []lexToken{{text: "15", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 4}}, nil},
		{"numeral-digits", "X0", []lexToken{{text: "100", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 3}}, nil},
		{"unicode", "Ⅻ", []lexToken{{text: "12", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 2}}, nil},
		{"fullwidth", "Ｘ＋Ｖ", []lexToken{
			{text: "10", kind: tokenNum, pos: 1},
			{text: "+", kind: tokenOp, pos: 2},
			{text: "5", kind: tokenNum, pos: 3},
			{kind: tokenEOF, pos: 4},
		}, nil},
		// operators
		{"add", "X + V", []lexToken{
			{text: "10", kind: tokenNum, pos: 1},
			{text: "+", kind: tokenOp, pos: 3},
			{text: "5", kind: tokenNum, pos: 5},
			{kind: tokenEOF, pos: 6},
		}, nil},
		{"ops", "+-*/", []lexToken{
			{text: "+", kind: tokenOp, pos: 1},
			{text: "-", kind: tokenOp, pos: 2},
			{text: "*", kind: tokenOp, pos: 3},
			{text: "/", kind: tokenOp, pos: 4},
			{kind: tokenEOF, pos: 5},
		}, nil},
		// brackets
		{"parens", "(I)", []lexToken{
			{text: "(", kind: tokenOpen, pos: 1},
			{text: "1", kind: tokenNum, pos: 2},
			{text: ")", kind: tokenClose, pos: 3},
			{kind: tokenEOF, pos: 4},
		}, nil},
		{"square", "[I]", []lexToken{
			{text: "(", kind: tokenOpen, pos: 1},
			{text: "1", kind: tokenNum, pos: 2},
			{text: ")", kind: tokenClose, pos: 3},
			{kind: tokenEOF, pos: 4},
		}, nil},
		// erroneous symbols
		{"amp", "X + & V", []lexToken{
			{text: "10", kind: tokenNum, pos: 1},
			{text: "+", kind: tokenOp, pos: 3},
		}, &LexError{Text: "&", Col: 5}},
		{"lower", "x", nil, &LexError{Text: "x", Col: 1}},
		{"curly", "{I}", nil, &LexError{Text: "{", Col: 1}},
		{"superscript", "X²", []lexToken{{text: "10", kind: tokenNum, pos: 1}}, &LexError{Text: "²", Col: 2}},
		{"circled", "X + ①", []lexToken{
			{text: "10", kind: tokenNum, pos: 1},
			{text: "+", kind: tokenOp, pos: 3},
		}, &LexError{Text: "①", Col: 5}},
		{"fullwidth-digit", "１", nil, &LexError{Text: "１", Col: 1}},
		{"modifier-letter", "ᴵ", nil, &LexError{Text: "ᴵ", Col: 1}},
		{"small-numeral", "ⅹ", nil, &LexError{Text: "ⅹ", Col: 1}},
		{"dot", "I.", []lexToken{{text: "1", kind: tokenNum, pos: 1}}, &LexError{Text: ".", Col: 2}},
		// numerals that aren't
		{"iiii", "IIII", nil, &NumeralError{Col: 1, Numeral: "IIII"}},
		{"vx-later", "I + VX", nil, &NumeralError{Col: 5, Numeral: "VX"}},
		{"split", "I + X X X X", nil, &NumeralError{Col: 5, Numeral: "XXXX"}},
		// fractions
		{"fraction", "2.5", nil, &FractionError{Col: 1, Text: "2.5"}},
		{"numeral-fraction", "I + X.V", nil, &FractionError{Col: 5, Text: "10.5"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := lexAll(c.src)
			if diff := cmp.Diff(c.tokens, toks, cmp.AllowUnexported(lexToken{})); diff != "" {
				t.Errorf("wrong tokens for %q (-want +got):\n%s", c.src, diff)
			}
			if diff := cmp.Diff(c.err, err); diff != "" {
				t.Errorf("wrong error for %q (-want +got):\n%s", c.src, diff)
			}
		})
	}
}

func TestSubstituteDecimal(t *testing.T) {
	cases := []struct {
		src, want string
	}{
		{"", ""},
		{"X + V", "10+5"},
		{"[X + V] * II", "(10+5)*2"},
		{"(M * IV) + (D * III)", "(1000*4)+(500*3)"},
		{"X / 0", "10/0"},
		{"MMMCMXCIX", "3999"},
		{"Ⅻ + Ⅲ", "12+3"},
		{"［Ｘ＋Ｖ］＊Ⅱ", "(10+5)*2"},
		{"X\u00a0+\u3000V", "10+5"},
	}
	for _, c := range cases {
		w, err := substitute(c.src)
		if err != nil {
			t.Errorf("substituting %q: %v", c.src, err)
			continue
		}
		if got := w.String(); got != c.want {
			t.Errorf("substituting %q: want %q, got %q", c.src, c.want, got)
		}
	}
}
