package triad

import "strconv"

// StructureKind describes why a token sequence could not be solved.
type StructureKind int8

const (
	// StructEmpty is an empty expression or group.
	StructEmpty StructureKind = iota + 1
	// StructOperand is an operator in a position which requires an operand.
	StructOperand
	// StructUnknown is a token sequence which is not a single group or a
	// sequence of operand, operator, operand triads.
	StructUnknown
)

func (k StructureKind) String() string {
	switch k {
	case StructEmpty:
		return "empty"
	case StructOperand:
		return "operand"
	case StructUnknown:
		return "unknown"
	}
	return "StructureKind(" + strconv.Itoa(int(k)) + ")"
}

// StructureError is an error indicating a token sequence with a shape the
// solver does not understand. It implements InputError.
type StructureError struct {
	// Col is the position of the token that broke the structure, or of the
	// group that is empty.
	Col int
	// Kind is the kind of structural problem.
	Kind StructureKind
	// Token is the rendering of the offending token, if any.
	Token string
}

func (err *StructureError) Error() string {
	switch err.Kind {
	case StructEmpty:
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "empty group")
	case StructOperand:
		return errpos(err.Col, "operator "+strconv.Quote(err.Token)+" cannot be an operand")
	}
	if err.Token == "" {
		return errpos(err.Col, "unknown case: incomplete expression")
	}
	return errpos(err.Col, "unknown case at "+strconv.Quote(err.Token))
}

func (err *StructureError) Pos() int {
	return err.Col
}

// DivisionByZeroError is an error indicating an integer division, modulo, or
// negative power with a zero divisor. It implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator.
	Op Operator
	// X is the left operand.
	X Number
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero in "+err.X.String()+" "+err.Op.String()+" 0")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// DomainError is an error indicating an operation with operands outside its
// domain. It implements InputError.
type DomainError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator.
	Op Operator
	// X and Y are the operands.
	X, Y Number
}

func (err *DomainError) Error() string {
	return errpos(err.Col, "domain error: "+err.X.String()+" "+err.Op.String()+" "+err.Y.String()+" is not real")
}

func (err *DomainError) Pos() int {
	return err.Col
}

// DepthError is an error indicating groups nested more deeply than allowed.
// It implements InputError.
type DepthError struct {
	// Col is the position of the group that exceeded the limit.
	Col int
	// Max is the maximum group depth.
	Max int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "groups nested deeper than "+strconv.Itoa(err.Max))
}

func (err *DepthError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// solving an expression implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*StructureError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
	_ InputError = (*DomainError)(nil)
	_ InputError = (*DepthError)(nil)
)
