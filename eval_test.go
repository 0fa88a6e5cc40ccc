package triad_test

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/triad"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    triad.Number
	}{
		{"add", "3+4", triad.Int(7)},
		{"sub", "3-4", triad.Int(-1)},
		{"mul", "3*4", triad.Int(12)},
		{"div", "3/2", triad.Int(1)},
		{"mod", "7%3", triad.Int(1)},
		{"decimal", "3+4.5", triad.Dec(7.5)},
		{"decimal-whole", "1.5*2", triad.Dec(3)},
		{"decimal-div", "3/2.0", triad.Dec(1.5)},
		{"decimal-mod", "5.5%2", triad.Dec(1.5)},
		{"decimal-div-zero", "1.0/0", triad.Dec(math.Inf(1))},
		{"no-precedence", "2+3*4", triad.Int(20)},
		{"left-to-right", "10-3-2", triad.Int(5)},
		{"left-to-right-div", "100/10/5", triad.Int(2)},
		{"group-first", "(2+3)*4", triad.Int(20)},
		{"group-last", "2*(3+4)", triad.Int(14)},
		{"group-both", "(1+1)*(2+2)", triad.Int(8)},
		{"group-whole", "(1+2)", triad.Int(3)},
		{"nested", "((1+2))", triad.Int(3)},
		{"nested-deep", "((((2*(3+4)))))", triad.Int(14)},
		{"group-decimal", "(1/2.0)*4", triad.Dec(2)},
		{"spaces", "2 + 3", triad.Int(5)},
		{"tabs", "\t2\t+\t3\t", triad.Int(5)},
		{"letters", "x2+y3", triad.Int(5)},
		{"unmatched", "(1+2", triad.Int(3)},
		{"stray-close", "1+2)", triad.Int(3)},
		{"negative", "0-7/2", triad.Int(-3)},
		{"negative-mod", "0-7%3", triad.Int(-1)},
		{"wrap", "9223372036854775807+1", triad.Int(math.MinInt64)},
		{"huge-literal", "99999999999999999999+1", triad.Dec(1e20)},
		{"long-chain", "1+1+1+1+1+1+1+1+1+1", triad.Int(10)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := triad.EvalString(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.r, r)

			// Solve and Expr.Eval agree with EvalString.
			r, err = triad.Solve(triad.Tokenize(c.src))
			require.NoError(t, err)
			assert.Equal(t, c.r, r)
		})
	}
}

func TestEvalPow(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    triad.Number
	}{
		{"int", "2^10", triad.Int(1024)},
		{"zero", "2^0", triad.Int(1)},
		{"negative", "2^(0-1)", triad.Int(0)},
		{"left-to-right", "2^3^2", triad.Int(64)},
		{"no-precedence", "1+2^2", triad.Int(9)},
		{"decimal", "2.5^2", triad.Dec(6.25)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := triad.EvalString(c.src, triad.Power())
			require.NoError(t, err)
			assert.Equal(t, c.r, r)
		})
	}

	_, err := triad.EvalString("2^3")
	var se *triad.StructureError
	require.True(t, errors.As(err, &se), "without Power, ^ is dropped: %v", err)
	assert.Equal(t, triad.StructUnknown, se.Kind)
}

func TestEvalStructureErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind triad.StructureKind
		col  int
	}{
		{"empty", "", triad.StructEmpty, 1},
		{"only-dropped", "abc", triad.StructEmpty, 1},
		{"empty-group", "()", triad.StructEmpty, 2},
		{"empty-group-operand", "1+()", triad.StructEmpty, 4},
		{"number", "5", triad.StructUnknown, 1},
		{"group-number", "(5)", triad.StructUnknown, 2},
		{"dangling", "1+", triad.StructUnknown, 2},
		{"dangling-chain", "1+2+", triad.StructUnknown, 4},
		{"adjacent", "1 2", triad.StructUnknown, 3},
		{"adjacent-chain", "1+2 3", triad.StructUnknown, 5},
		{"adjacent-group", "1(2+3)", triad.StructUnknown, 2},
		{"leading-op", "+1+2", triad.StructUnknown, 2},
		{"lone-op", "+", triad.StructUnknown, 1},
		{"first-op", "++1", triad.StructOperand, 1},
		{"last-op", "1++2", triad.StructOperand, 3},
		{"last-op-chain", "1+2*-3", triad.StructOperand, 5},
		{"in-group", "2*(1+)", triad.StructUnknown, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := triad.EvalString(c.src)
			require.Error(t, err)
			assert.Equal(t, triad.Number{}, r)
			var se *triad.StructureError
			require.True(t, errors.As(err, &se), "%#v is not *triad.StructureError", err)
			assert.Equal(t, c.kind, se.Kind, "%v", err)
			assert.Equal(t, c.col, se.Pos(), "%v", err)
			assert.True(t, strings.HasPrefix(err.Error(), fmt.Sprint(c.col)+": "), "%q lacks position", err.Error())
		})
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	cases := []struct {
		name string
		src  string
		opts []triad.ParseOption
		col  int
		op   triad.Operator
		x    triad.Number
	}{
		{"div", "1/0", nil, 2, triad.OpDiv, triad.Int(1)},
		{"mod", "1%0", nil, 2, triad.OpMod, triad.Int(1)},
		{"group", "6/(3-3)", nil, 2, triad.OpDiv, triad.Int(6)},
		{"chain", "1+1/0", nil, 4, triad.OpDiv, triad.Int(2)},
		{"inside", "2*(5%0)", nil, 5, triad.OpMod, triad.Int(5)},
		{"pow", "0^(0-1)", []triad.ParseOption{triad.Power()}, 2, triad.OpPow, triad.Int(0)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := triad.EvalString(c.src, c.opts...)
			var dz *triad.DivisionByZeroError
			require.True(t, errors.As(err, &dz), "%#v is not *triad.DivisionByZeroError", err)
			assert.Equal(t, c.col, dz.Pos())
			assert.Equal(t, c.op, dz.Op)
			assert.Equal(t, c.x, dz.X)
			assert.Contains(t, err.Error(), "division by zero")
		})
	}
}

func TestEvalDomainError(t *testing.T) {
	_, err := triad.EvalString("(0-8)^0.5", triad.Power())
	var de *triad.DomainError
	require.True(t, errors.As(err, &de), "%#v is not *triad.DomainError", err)
	assert.Equal(t, 6, de.Pos())
	assert.Equal(t, "6: domain error: -8 ^ 0.5 is not real", err.Error())
}

func TestEvalDepth(t *testing.T) {
	nest := func(n int, s string) string {
		return strings.Repeat("(", n) + s + strings.Repeat(")", n)
	}

	_, err := triad.EvalString(nest(triad.DefaultMaxDepth+1, "1+1"))
	var de *triad.DepthError
	require.True(t, errors.As(err, &de), "%#v is not *triad.DepthError", err)
	assert.Equal(t, triad.DefaultMaxDepth, de.Max)
	assert.Equal(t, triad.DefaultMaxDepth+1, de.Pos())

	r, err := triad.EvalString(nest(triad.DefaultMaxDepth, "1+1"))
	require.NoError(t, err)
	assert.Equal(t, triad.Int(2), r)

	r, err = triad.EvalString(nest(1000, "1+1"), triad.MaxDepth(1000))
	require.NoError(t, err)
	assert.Equal(t, triad.Int(2), r)

	_, err = triad.EvalString(nest(3, "1+1")+"*2", triad.MaxDepth(2))
	require.True(t, errors.As(err, &de), "%#v is not *triad.DepthError", err)
	assert.Equal(t, 2, de.Max)
	assert.Equal(t, 3, de.Pos())

	// Hand-built tokens are bounded by the solver too.
	tok := triad.GroupToken(triad.NumToken(triad.Int(1)), triad.OpToken(triad.OpAdd), triad.NumToken(triad.Int(1)))
	for i := 0; i < triad.DefaultMaxDepth; i++ {
		tok = triad.GroupToken(tok)
	}
	_, err = triad.Solve([]triad.Token{tok})
	require.True(t, errors.As(err, &de), "%#v is not *triad.DepthError", err)
}

func TestSolveTokens(t *testing.T) {
	num := func(i int64) triad.Token { return triad.NumToken(triad.Int(i)) }
	cases := []struct {
		name   string
		tokens []triad.Token
		r      triad.Number
	}{
		{"triad", []triad.Token{num(3), triad.OpToken(triad.OpAdd), num(4)}, triad.Int(7)},
		{"group", []triad.Token{triad.GroupToken(num(3), triad.OpToken(triad.OpMul), num(4))}, triad.Int(12)},
		{"fold", []triad.Token{num(2), triad.OpToken(triad.OpAdd), num(3), triad.OpToken(triad.OpMul), num(4)}, triad.Int(20)},
		{"pow", []triad.Token{num(3), triad.OpToken(triad.OpPow), num(2)}, triad.Int(9)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := triad.Solve(c.tokens)
			require.NoError(t, err)
			assert.Equal(t, c.r, r)
		})
	}

	_, err := triad.Solve(nil)
	var se *triad.StructureError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, triad.StructEmpty, se.Kind)
	assert.Equal(t, "1: no expression", err.Error())
}

func TestInputErrors(t *testing.T) {
	srcs := []string{"", "5", "1+", "++1", "1/0", "(0-1)^0.5", strings.Repeat("(", 300) + "1+1" + strings.Repeat(")", 300)}
	for _, src := range srcs {
		_, err := triad.EvalString(src, triad.Power())
		require.Error(t, err, "%q", src)
		var ie triad.InputError
		assert.True(t, errors.As(err, &ie), "%#v is not an InputError", err)
	}
}

func TestExprConcurrentEval(t *testing.T) {
	e := triad.Parse("(1+2)*(3+4)-5")
	done := make(chan triad.Number)
	for i := 0; i < 8; i++ {
		go func() {
			r, _ := e.Eval()
			done <- r
		}()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, triad.Int(16), <-done)
	}
}

func BenchmarkEval(b *testing.B) {
	b.Run("flat", func(b *testing.B) {
		b.ReportAllocs()
		e := triad.Parse("2+3+4+5+6+7+8+9")
		for i := 0; i < b.N; i++ {
			e.Eval()
		}
	})
	b.Run("groups", func(b *testing.B) {
		b.ReportAllocs()
		e := triad.Parse("((2+3)*(4+5))/((6-7)%(8*9))")
		for i := 0; i < b.N; i++ {
			e.Eval()
		}
	})
	b.Run("parse", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			triad.EvalString("((2+3)*(4+5))/((6-7)%(8*9))")
		}
	})
}
