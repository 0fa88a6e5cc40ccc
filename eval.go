package triad

import "errors"

// Eval solves the expression.
func (e *Expr) Eval() (Number, error) {
	return solve(e.tokens, 1, 0, e.maxdepth)
}

// Solve reduces a token sequence to a single number. The sequence must be
// either one group or operands separated by operators. Triads of operand,
// operator, operand are folded strictly from left to right, so "2+3*4" is 20;
// only groups change the order of evaluation.
func Solve(tokens []Token) (Number, error) {
	return solve(tokens, 1, 0, DefaultMaxDepth)
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ParseOption) (Number, error) {
	return Parse(src, opts...).Eval()
}

// solve reduces tokens. col is the position of the start of the sequence,
// used to report empty sequences, and depth is its group nesting depth.
func solve(tokens []Token, col, depth, max int) (Number, error) {
	switch len(tokens) {
	case 0:
		return Number{}, &StructureError{Col: col, Kind: StructEmpty}
	case 1:
		if tokens[0].kind == TokenGroup {
			return operand(tokens[0], depth, max)
		}
		return Number{}, unknown(tokens[0])
	}
	var acc Number
	for k := 1; k < len(tokens); k += 2 {
		optok := tokens[k]
		if optok.kind != TokenOp {
			return Number{}, unknown(optok)
		}
		if k+1 == len(tokens) {
			// Dangling operator.
			return Number{}, &StructureError{Col: optok.col, Kind: StructUnknown}
		}
		if k == 1 {
			x, err := operand(tokens[0], depth, max)
			if err != nil {
				return Number{}, err
			}
			acc = x
		}
		y, err := operand(tokens[k+1], depth, max)
		if err != nil {
			return Number{}, err
		}
		acc, err = optok.op.Apply(acc, y)
		if err != nil {
			return Number{}, atop(err, optok.col)
		}
	}
	return acc, nil
}

// operand resolves a token in operand position to a number.
func operand(tok Token, depth, max int) (Number, error) {
	switch tok.kind {
	case TokenNum:
		return tok.num, nil
	case TokenGroup:
		if tok.deep || depth >= max {
			return Number{}, &DepthError{Col: tok.col, Max: max}
		}
		// The group's contents start after its open parenthesis.
		return solve(tok.group, tok.col+1, depth+1, max)
	case TokenOp:
		return Number{}, &StructureError{Col: tok.col, Kind: StructOperand, Token: tok.String()}
	}
	panic("triad: invalid token kind " + tok.kind.String())
}

func unknown(tok Token) error {
	return &StructureError{Col: tok.col, Kind: StructUnknown, Token: tok.String()}
}

// atop sets the position of an arithmetic error to that of its operator.
func atop(err error, col int) error {
	var dz *DivisionByZeroError
	if errors.As(err, &dz) {
		dz.Col = col
		return dz
	}
	var de *DomainError
	if errors.As(err, &de) {
		de.Col = col
		return de
	}
	return err
}
