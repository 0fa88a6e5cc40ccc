package triad

import (
	"strings"
	"unicode/utf8"
)

// Expr = Operand { Operator Operand } | Group
// Operand = Number | Group
// Group = '(' Expr ')'
// Number = [ '-' ] digit { digit } [ '.' digit { digit } ]
// Operator = '+' | '-' | '*' | '/' | '%' | '^'
//
// Characters which do not begin a token are dropped. An Operator is always
// scanned before a Number, so the minus sign of a Number never appears in
// tokenized input.

// Expr is a tokenized expression. An Expr is immutable and safe to evaluate
// concurrently.
type Expr struct {
	// tokens is the top-level token sequence.
	tokens []Token
	// maxdepth is the group nesting limit for evaluation.
	maxdepth int
}

// Parse tokenizes an expression so it can be evaluated. The given options are
// applied in order. Parsing never fails; problems with the structure of the
// expression are reported when it is evaluated.
func Parse(src string, opts ...ParseOption) *Expr {
	var p parsectx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.parseOption(p)
	}
	return &Expr{
		tokens:   p.tokenize(src, 1, 0),
		maxdepth: p.depth(),
	}
}

// Tokenize scans src into a token sequence.
func Tokenize(src string, opts ...ParseOption) []Token {
	return Parse(src, opts...).tokens
}

// Tokens returns the expression's top-level tokens. The result must not be
// modified.
func (e *Expr) Tokens() []Token {
	return e.tokens
}

// String renders the tokens of the expression back to text. Numbers and
// operators round-trip; dropped characters do not appear.
func (e *Expr) String() string {
	var b strings.Builder
	fmttokens(&b, e.tokens)
	return b.String()
}

// tokenize scans every token in s. col is the position of s[0] in the whole
// input, and depth is the group nesting depth of s.
func (p *parsectx) tokenize(s string, col, depth int) []Token {
	var tokens []Token
	for s != "" {
		n, tok := scanOp(s, p.pow)
		if n == 0 {
			n, tok = scanNum(s)
		}
		if n == 0 {
			n, tok = p.scanGroup(s, col, depth)
		}
		if n == 0 {
			r, sz := utf8.DecodeRuneInString(s)
			if p.skip != nil {
				p.skip(col, r)
			}
			s = s[sz:]
			col++
			continue
		}
		tok.col = col
		tokens = append(tokens, tok)
		col += utf8.RuneCountInString(s[:n])
		s = s[n:]
	}
	return tokens
}
