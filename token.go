package triad

import (
	"strconv"
	"strings"
)

// Operator is a binary arithmetic operator.
type Operator byte

const (
	OpNone Operator = 0
	OpAdd  Operator = '+'
	OpSub  Operator = '-'
	OpMul  Operator = '*'
	OpDiv  Operator = '/'
	OpMod  Operator = '%'
	// OpPow is only recognized by the tokenizer with the Power option.
	OpPow Operator = '^'
)

// Operators contains the characters which are always scanned as operators.
const Operators = "+-*/%"

func (op Operator) String() string {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpMod, OpPow:
		return string(rune(op))
	}
	return "Operator(" + strconv.Itoa(int(op)) + ")"
}

// Apply computes x op y.
func (op Operator) Apply(x, y Number) (Number, error) {
	switch op {
	case OpAdd:
		return Add(x, y), nil
	case OpSub:
		return Sub(x, y), nil
	case OpMul:
		return Mul(x, y), nil
	case OpDiv:
		return Div(x, y)
	case OpMod:
		return Mod(x, y)
	case OpPow:
		return Pow(x, y)
	}
	panic("triad: invalid operator " + op.String())
}

// Token is a scanned unit of an expression: a number, an operator, or a
// parenthesized group of tokens.
type Token struct {
	kind TokenKind
	// col is the rune position of the start of the token, starting from 1.
	col int

	num   Number
	op    Operator
	group []Token
	// deep marks a group that was nested too deeply to tokenize.
	deep bool
}

// TokenKind identifies the variant held by a Token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	TokenNum
	TokenOp
	TokenGroup
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNum:
		return "Num"
	case TokenOp:
		return "Op"
	case TokenGroup:
		return "Group"
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

// NumToken creates a number token.
func NumToken(n Number) Token {
	return Token{kind: TokenNum, num: n}
}

// OpToken creates an operator token.
func OpToken(op Operator) Token {
	return Token{kind: TokenOp, op: op}
}

// GroupToken creates a group token containing tokens. The group takes
// ownership of the slice.
func GroupToken(tokens ...Token) Token {
	return Token{kind: TokenGroup, group: tokens}
}

// Kind returns the kind of the token.
func (t Token) Kind() TokenKind {
	return t.kind
}

// Pos returns the rune column at which the token starts in the scanned input,
// or 0 for tokens created with NumToken, OpToken, or GroupToken.
func (t Token) Pos() int {
	return t.col
}

// Number returns the value of a number token.
func (t Token) Number() (Number, bool) {
	return t.num, t.kind == TokenNum
}

// Operator returns the operator of an operator token.
func (t Token) Operator() (Operator, bool) {
	return t.op, t.kind == TokenOp
}

// Group returns the tokens inside a group token. The result must not be
// modified.
func (t Token) Group() ([]Token, bool) {
	return t.group, t.kind == TokenGroup
}

func (t Token) String() string {
	var b strings.Builder
	t.fmt(&b)
	return b.String()
}

func (t Token) fmt(b *strings.Builder) {
	switch t.kind {
	case TokenNum:
		b.WriteString(t.num.String())
	case TokenOp:
		b.WriteString(t.op.String())
	case TokenGroup:
		b.WriteByte('(')
		if t.deep {
			b.WriteString("...")
		}
		fmttokens(b, t.group)
		b.WriteByte(')')
	default:
		// Invalid tokens use invalid characters.
		b.WriteString("$#$")
	}
}

func fmttokens(b *strings.Builder, tokens []Token) {
	for _, t := range tokens {
		t.fmt(b)
	}
}
