// Package triad implements a calculator for flat arithmetic expressions.
//
// An expression is tokenized into numbers, the operators + - * / %, and
// parenthesized groups. Any other character is dropped, so "2 + 3" and "2+3"
// are the same expression. The tokens are then folded strictly from left to
// right, one operand-operator-operand triad at a time, with no operator
// precedence: "2+3*4" is 20 and "2+(3*4)" is 14.
//
// Numbers are exact 64-bit integers until a decimal is involved. "3/2" is 1,
// while "3/2.0" is 1.5. Integer division by zero is an error rather than a
// value.
//
package triad
