package pmml

import "fmt"

// Operator is a SimplePredicate comparison, spelled as in PMML.
type Operator string

const (
	OperatorEqual       Operator = "equal"
	OperatorNotEqual    Operator = "notEqual"
	OperatorLessOrEqual Operator = "lessOrEqual"
	OperatorGreaterThan Operator = "greaterThan"
)

// Symbol returns the infix form used in diagnostics.
func (o Operator) Symbol() string {
	switch o {
	case OperatorEqual:
		return "=="
	case OperatorNotEqual:
		return "!="
	case OperatorLessOrEqual:
		return "<="
	case OperatorGreaterThan:
		return ">"
	default:
		return string(o)
	}
}

// Predicate is a boolean test attached to a tree edge. It is either True or
// a SimplePredicate.
type Predicate interface {
	fmt.Stringer
	isPredicate()
}

// True always evaluates to true. It guards the root node.
type True struct{}

func (True) isPredicate() {}

func (True) String() string { return "true" }

// SimplePredicate compares one field against a constant.
type SimplePredicate struct {
	Field    string
	Operator Operator
	Value    string
}

func (SimplePredicate) isPredicate() {}

func (p SimplePredicate) String() string {
	return fmt.Sprintf("%s %s %s", p.Field, p.Operator.Symbol(), p.Value)
}

// NewSimplePredicate is a convenience constructor.
func NewSimplePredicate(field string, op Operator, value string) SimplePredicate {
	return SimplePredicate{Field: field, Operator: op, Value: value}
}
