package triad

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Number is the result of an arithmetic operation: either an exact 64-bit
// integer or a 64-bit floating-point decimal. The zero value is the integer 0.
type Number struct {
	i   int64
	f   float64
	dec bool
}

// Int returns an integer Number.
func Int(i int64) Number {
	return Number{i: i}
}

// Dec returns a decimal Number.
func Dec(f float64) Number {
	return Number{f: f, dec: true}
}

// IsDecimal returns whether n holds a floating-point value.
func (n Number) IsDecimal() bool {
	return n.dec
}

// Int64 returns the integer value of n. ok is false if n is a decimal.
func (n Number) Int64() (i int64, ok bool) {
	return n.i, !n.dec
}

// Float64 returns n as a floating-point value, converting integers.
func (n Number) Float64() float64 {
	if n.dec {
		return n.f
	}
	return float64(n.i)
}

// String formats n. Integers have no decimal point. Decimals use the
// shortest representation that parses back to the same value and never use
// exponent notation.
func (n Number) String() string {
	if !n.dec {
		return strconv.FormatInt(n.i, 10)
	}
	switch {
	case math.IsInf(n.f, 1):
		return "inf"
	case math.IsInf(n.f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(n.f, 'f', -1, 64)
}

// Format implements fmt.Formatter. %v and %s use String, %d formats the value
// truncated to an integer, and the floating-point verbs format Float64.
func (n Number) Format(s fmt.State, verb rune) {
	switch verb {
	case 'd':
		i := n.i
		if n.dec {
			i = int64(n.f)
		}
		fmt.Fprintf(s, fmtverb(s, verb), i)
	case 'e', 'E', 'f', 'F', 'g', 'G':
		fmt.Fprintf(s, fmtverb(s, verb), n.Float64())
	case 'q':
		fmt.Fprintf(s, fmtverb(s, verb), n.String())
	default:
		// %v, %s, and anything unknown.
		fmt.Fprintf(s, fmtverb(s, 's'), n.String())
	}
}

// fmtverb rebuilds the formatting directive described by s.
func fmtverb(s fmt.State, verb rune) string {
	b := []byte{'%'}
	for _, c := range "+-# 0" {
		if s.Flag(int(c)) {
			b = append(b, byte(c))
		}
	}
	if w, ok := s.Width(); ok {
		b = strconv.AppendInt(b, int64(w), 10)
	}
	if p, ok := s.Precision(); ok {
		b = append(b, '.')
		b = strconv.AppendInt(b, int64(p), 10)
	}
	return string(append(b, string(verb)...))
}

// Add returns x+y.
func Add(x, y Number) Number {
	if x.dec || y.dec {
		return Dec(x.Float64() + y.Float64())
	}
	return Int(x.i + y.i)
}

// Sub returns x-y.
func Sub(x, y Number) Number {
	if x.dec || y.dec {
		return Dec(x.Float64() - y.Float64())
	}
	return Int(x.i - y.i)
}

// Mul returns x*y.
func Mul(x, y Number) Number {
	if x.dec || y.dec {
		return Dec(x.Float64() * y.Float64())
	}
	return Int(x.i * y.i)
}

// Div returns x/y. Integer division truncates toward zero, and integer
// division by zero is an error. Decimal division by zero is not.
func Div(x, y Number) (Number, error) {
	if x.dec || y.dec {
		return Dec(x.Float64() / y.Float64()), nil
	}
	if y.i == 0 {
		return Number{}, &DivisionByZeroError{Op: OpDiv, X: x}
	}
	return Int(x.i / y.i), nil
}

// Mod returns the remainder of x/y, with the sign of x.
func Mod(x, y Number) (Number, error) {
	if x.dec || y.dec {
		return Dec(math.Mod(x.Float64(), y.Float64())), nil
	}
	if y.i == 0 {
		return Number{}, &DivisionByZeroError{Op: OpMod, X: x}
	}
	return Int(x.i % y.i), nil
}

// powprec is the precision in bits of decimal exponentiation.
const powprec = 64

// powrange is the magnitude of the binary exponent beyond which a power is
// not finite and nonzero as a float64.
const powrange = 1 << 11

// Pow returns x^y. An integer raised to an integer power stays an integer; a
// negative power truncates like integer division.
func Pow(x, y Number) (Number, error) {
	if !x.dec && !y.dec {
		return ipow(x, y)
	}
	a, b := x.Float64(), y.Float64()
	switch {
	case b == 0:
		return Dec(1), nil
	case a == 0, math.IsInf(a, 0), math.IsInf(b, 0), math.IsNaN(a), math.IsNaN(b):
		// IEEE special cases.
		return Dec(math.Pow(a, b)), nil
	}
	neg := false
	if a < 0 {
		if b != math.Trunc(b) {
			return Number{}, &DomainError{Op: OpPow, X: x, Y: y}
		}
		// Odd integral powers of negative bases are negative.
		neg = math.Mod(b, 2) != 0
		a = -a
	}
	var f float64
	switch {
	case a == 1:
		f = 1
	case math.Abs(b*math.Log2(a)) > powrange:
		// Certain to overflow or underflow a float64 anyway.
		f = math.Pow(a, b)
	default:
		var r, bx, by big.Float
		bx.SetPrec(powprec).SetFloat64(a)
		by.SetPrec(powprec).SetFloat64(b)
		r.SetPrec(powprec)
		bigfloat.Pow(&r, &bx, &by)
		f, _ = r.Float64()
	}
	if neg {
		f = -f
	}
	return Dec(f), nil
}

func ipow(x, y Number) (Number, error) {
	if y.i < 0 {
		switch x.i {
		case 0:
			return Number{}, &DivisionByZeroError{Op: OpPow, X: x}
		case 1:
			return Int(1), nil
		case -1:
			if y.i%2 == 0 {
				return Int(1), nil
			}
			return Int(-1), nil
		}
		return Int(0), nil
	}
	r, b, e := int64(1), x.i, y.i
	for e > 0 {
		if e&1 != 0 {
			r *= b
		}
		b *= b
		e >>= 1
	}
	return Int(r), nil
}
