package rpn

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Number is the set of value types an evaluator can be instantiated with
type Number interface {
	~int64 | ~float64
}

// Numeric is the capability an evaluator needs from its value type.
type Numeric[T Number] interface {
	// Parse converts an operand lexeme into a value.
	Parse(lexeme string) (T, error)
	// Apply computes `lhs op rhs`.
	Apply(op Op, lhs, rhs T) (T, error)
	// Check validates the final result of an expression.
	Check(result T) error
}

// FloatNumeric evaluates expressions over 64-bit floats. Division by zero is
// not an error by itself; the infinity or NaN it yields is rejected once the
// expression is fully reduced.
type FloatNumeric struct{}

// Parse accepts decimal literals only. Literals out of float64 range become
// ±Inf (or 0 on underflow) instead of failing, so they surface as an
// EvaluationError when the result is checked.
func (FloatNumeric) Parse(lexeme string) (float64, error) {
	if !isDecimal(lexeme) {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: lexeme, Err: strconv.ErrSyntax}
	}
	f, err := strconv.ParseFloat(lexeme, 64)
	if errors.Is(err, strconv.ErrRange) {
		return f, nil
	}
	return f, err
}

// isDecimal rejects the Go-only float syntaxes strconv.ParseFloat
// understands: hex mantissas and underscore digit separators.
func isDecimal(lexeme string) bool {
	if strings.ContainsRune(lexeme, '_') {
		return false
	}
	digits := strings.TrimPrefix(strings.TrimPrefix(lexeme, "+"), "-")
	if len(lexeme)-len(digits) > 1 {
		return false
	}
	return !strings.HasPrefix(digits, "0x") && !strings.HasPrefix(digits, "0X")
}

func (FloatNumeric) Apply(op Op, lhs, rhs float64) (float64, error) {
	return apply(op, lhs, rhs), nil
}

func (FloatNumeric) Check(result float64) error {
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return EvaluationError
	}
	return nil
}

// IntNumeric evaluates expressions over 64-bit signed integers. Overflow
// wraps. Division by zero fails with EvaluationError instead of panicking.
type IntNumeric struct{}

func (IntNumeric) Parse(lexeme string) (int64, error) {
	return strconv.ParseInt(lexeme, 10, 64)
}

func (IntNumeric) Apply(op Op, lhs, rhs int64) (int64, error) {
	if op == Slash && rhs == 0 {
		return 0, EvaluationError
	}
	return apply(op, lhs, rhs), nil
}

func (IntNumeric) Check(result int64) error {
	return nil
}

func apply[T Number](op Op, lhs, rhs T) T {
	switch op {
	case Plus:
		return lhs + rhs
	case Minus:
		return lhs - rhs
	case Star:
		return lhs * rhs
	case Slash:
		return lhs / rhs
	}
	panic(op.String() + " not a valid operator")
}

// Format renders a result the way the command line prints it. Floats use the
// shortest representation that round-trips, so 7.0 prints as "7".
func Format[T Number](v T) string {
	switch v := any(v).(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	}
	// named types such as `type celsius float64`
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Float64 {
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	}
	return strconv.FormatInt(rv.Int(), 10)
}
