package triad

import (
	"errors"
	"strconv"
	"strings"
)

// Each scanner matches a token at the very start of its input. The result is
// the number of bytes consumed, zero if there is no match, and the token
// without position information. A token starting later in the input is not a
// match.

// scanOp scans a single operator character. ^ is an operator only if pow is
// set.
func scanOp(s string, pow bool) (int, Token) {
	if s == "" {
		return 0, Token{}
	}
	c := s[0]
	if strings.IndexByte(Operators, c) < 0 && !(pow && c == byte(OpPow)) {
		return 0, Token{}
	}
	return 1, OpToken(Operator(c))
}

// scanNum scans a number with an optional minus sign, one or more digits, and
// optionally a decimal point followed by one or more digits. Numbers which fit
// in an int64 are integers; all others are decimals.
func scanNum(s string) (int, Token) {
	k := 0
	if k < len(s) && s[k] == '-' {
		k++
	}
	d := digits(s[k:])
	if d == 0 {
		return 0, Token{}
	}
	k += d
	if k < len(s) && s[k] == '.' {
		// A point with no digits after it is not part of the number.
		if d := digits(s[k+1:]); d > 0 {
			k += 1 + d
		}
	}
	text := s[:k]
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return k, NumToken(Int(i))
	}
	f, err := strconv.ParseFloat(text, 64)
	switch {
	case err == nil: // do nothing
	case errors.Is(err, strconv.ErrRange):
		// Too many digits for a float64. f is already infinity.
	default:
		return 0, Token{}
	}
	return k, NumToken(Dec(f))
}

// digits returns the length of the run of ASCII digits at the start of s.
func digits(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || '9' < s[i] {
			return i
		}
	}
	return len(s)
}

// scanGroup scans a parenthesized group, including the parentheses, and
// tokenizes its contents. col is the position of s[0] and depth is the
// nesting depth of s. An open parenthesis with no matching close is not a
// match.
func (p *parsectx) scanGroup(s string, col, depth int) (int, Token) {
	if s == "" || s[0] != '(' {
		return 0, Token{}
	}
	n := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			n++
		case ')':
			n--
			if n > 0 {
				continue
			}
			tok := Token{kind: TokenGroup, col: col}
			if depth >= p.depth() {
				tok.deep = true
			} else {
				tok.group = p.tokenize(s[1:i], col+1, depth+1)
			}
			return i + 1, tok
		}
	}
	return 0, Token{}
}
