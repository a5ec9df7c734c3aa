package roman_test

import (
	"strconv"
	"testing"

	"github.com/zephyrtronium/roman"
)

func FuzzParse(f *testing.F) {
	f.Add("X + V")
	f.Add("[X + V] * II")
	f.Add("X / 0")
	f.Add("Ⅻ")
	f.Fuzz(func(t *testing.T, s string) {
		e, err := roman.Parse(s)
		if err != nil {
			if _, ok := err.(roman.InputError); !ok {
				t.Errorf("%q: error %v is not an InputError", s, err)
			}
			return
		}
		// The printed tree is itself a valid expression with the same value.
		p, err := roman.Parse(e.String())
		if err != nil {
			t.Fatalf("%q printed as %q, which doesn't parse: %v", s, e, err)
		}
		if p.String() != e.String() {
			t.Errorf("%q printed as %q, which reprints as %q", s, e, p)
		}
	})
}

func FuzzEvaluate(f *testing.F) {
	f.Add("X + V * II")
	f.Add("X - X")
	f.Add("(M * IV) + (D * III)")
	f.Add("X + & V")
	f.Add("IIII")
	f.Fuzz(func(t *testing.T, s string) {
		r := roman.Evaluate(s)
		switch r {
		case roman.Unreadable, roman.Negative, roman.Zero, roman.TooLarge, roman.Fractional, roman.Fraction:
			return
		}
		if _, err := strconv.Atoi(r); err == nil {
			return
		}
		if _, err := roman.ParseNumeral(r); err != nil {
			t.Errorf("%q evaluated to %q, which is neither a message nor a numeral", s, r)
		}
	})
}

func FuzzNumeral(f *testing.F) {
	f.Add(1)
	f.Add(1994)
	f.Add(3999)
	f.Fuzz(func(t *testing.T, n int) {
		s, err := roman.FormatNumeral(n)
		if err != nil {
			if n >= 1 && n <= roman.MaxNumeral {
				t.Fatalf("%d in range but failed to format: %v", n, err)
			}
			return
		}
		m, err := roman.ParseNumeral(s)
		if err != nil || m != n {
			t.Errorf("%d formatted as %q parsed as %d, %v", n, s, m, err)
		}
	})
}
