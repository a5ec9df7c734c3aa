// Package roman implements a calculator for arithmetic on Roman numerals.
//
// Expressions are written the way you'd write them on paper: "X + V * II" is
// twenty, and "[X + V] * II" is thirty. Numerals are converted to integers
// before parsing, so digits may appear where a Roman numeral cannot, e.g. the
// zero in "X / 0". Operators are + - * / with the usual precedence, and both
// parentheses and square brackets group.
//
// Results are rendered back into numerals. Zero, negative results, and
// anything past MMMCMXCIX get a message instead.
//
package roman
