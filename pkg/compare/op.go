package compare

import (
	"fmt"
)

// Op is a relational operator.  Together with a single three-way
// comparison primitive it yields all six relations for any type that can
// produce a comparison key, so individual types never re-derive the
// operators.
type Op int

const (
	Less Op = iota
	LessOrEqual
	Equal
	GreaterOrEqual
	Greater
	NotEqual
)

// ParseOp parses a relational operator in symbolic ("<=") or mnemonic
// ("le") spelling.
func ParseOp(s string) (Op, error) {
	switch s {
	case "<", "lt":
		return Less, nil
	case "<=", "le":
		return LessOrEqual, nil
	case "==", "=", "eq":
		return Equal, nil
	case ">=", "ge":
		return GreaterOrEqual, nil
	case ">", "gt":
		return Greater, nil
	case "!=", "ne":
		return NotEqual, nil
	}
	return 0, fmt.Errorf("invalid comparison operator: %q", s)
}

// String implements fmt.Stringer.
func (op Op) String() string {
	switch op {
	case Less:
		return "<"
	case LessOrEqual:
		return "<="
	case Equal:
		return "=="
	case GreaterOrEqual:
		return ">="
	case Greater:
		return ">"
	case NotEqual:
		return "!="
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Holds reports whether the operator holds for a three-way comparison
// result d (negative, zero, or positive).
func (op Op) Holds(d int) bool {
	switch op {
	case Less:
		return d < 0
	case LessOrEqual:
		return d <= 0
	case Equal:
		return d == 0
	case GreaterOrEqual:
		return d >= 0
	case Greater:
		return d > 0
	case NotEqual:
		return d != 0
	}
	return false
}
