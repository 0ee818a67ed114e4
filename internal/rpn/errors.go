package rpn

import "fmt"

// List of failures an evaluation can end with
const (
	// InvalidOperator is returned for a token that is neither an operator
	// nor a number. The name is kept for callers matching on it even though
	// it mostly fires on bad numbers.
	InvalidOperator CalcError = iota
	// InvalidRightSide is returned when an operator finds the stack empty.
	InvalidRightSide
	// InvalidLeftSide is returned when an operator finds only one value.
	InvalidLeftSide
	// EvaluationError is returned when the expression does not reduce to a
	// single finite value.
	EvaluationError
)

var errSide = []string{
	"operator",
	"right side",
	"left side",
	"evaluation error",
}

// CalcError describes why an expression could not be evaluated. It carries
// no payload, the kind alone determines the message.
type CalcError int

func (e CalcError) Error() string {
	if e < 0 || int(e) >= len(errSide) {
		return fmt.Sprintf("unknown calc error %d", int(e))
	}
	return fmt.Sprintf("Failed to parse %s value", errSide[e])
}

// String returns the name of the error kind
func (e CalcError) String() string {
	switch e {
	case InvalidOperator:
		return "InvalidOperator"
	case InvalidRightSide:
		return "InvalidRightSide"
	case InvalidLeftSide:
		return "InvalidLeftSide"
	case EvaluationError:
		return "EvaluationError"
	}
	return fmt.Sprintf("CalcError(%d)", int(e))
}
