package roman

import (
	"regexp"
	"strings"
)

// MaxNumeral is the largest integer that has a standard Roman spelling.
const MaxNumeral = 3999

// Numerals contains the runes which make up Roman numerals.
const Numerals = "IVXLCDM"

// symbols maps every canonical one- or two-letter spelling to its value.
var symbols = map[string]int{
	"I": 1, "IV": 4, "V": 5, "IX": 9,
	"X": 10, "XL": 40, "L": 50, "XC": 90,
	"C": 100, "CD": 400, "D": 500, "CM": 900,
	"M": 1000,
}

// descending lists the same spellings ordered by value for greedy synthesis.
var descending = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"},
	{1, "I"},
}

// wellformed checks each decimal place in order. It also matches the empty
// string, which ParseNumeral rejects separately.
var wellformed = regexp.MustCompile(`^M{0,3}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`)

// ParseNumeral converts a Roman numeral to an integer. The numeral must be in
// standard subtractive form, e.g. "IV" and not "IIII". If it is not, the error
// is a *NumeralError with Col 1.
func ParseNumeral(s string) (int, error) {
	if s == "" || !wellformed.MatchString(s) {
		return 0, &NumeralError{Col: 1, Numeral: s}
	}
	r := 0
	for i := 0; i < len(s); i++ {
		v := symbols[s[i:i+1]]
		if i > 0 {
			// A subtractive pair. The smaller symbol was already added, so
			// take it back out along with its subtraction.
			if p := symbols[s[i-1:i]]; v > p {
				r += v - 2*p
				continue
			}
		}
		r += v
	}
	return r, nil
}

// FormatNumeral converts n to its Roman numeral spelling. If n is not in the
// range [1, MaxNumeral], the error is a *RangeError.
func FormatNumeral(n int) (string, error) {
	if n <= 0 || n > MaxNumeral {
		return "", &RangeError{N: n}
	}
	var b strings.Builder
	for _, d := range descending {
		for n >= d.value {
			b.WriteString(d.symbol)
			n -= d.value
		}
	}
	return b.String(), nil
}

// isNumeral reports whether r is a letter of the numeral alphabet.
func isNumeral(r rune) bool {
	return strings.ContainsRune(Numerals, r)
}
