package rpn

import (
	"fmt"
	"log/slog"
)

// Evaluator runs postfix expressions over one numeric type. It holds no
// per-run state, so a single Evaluator can be shared between goroutines.
type Evaluator[T Number] struct {
	numeric Numeric[T]
	logger  *slog.Logger
}

// New creates an evaluator that uses numeric for parsing and arithmetic
func New[T Number](numeric Numeric[T], opts ...Option) (*Evaluator[T], error) {
	if numeric == nil {
		return nil, fmt.Errorf("no numeric type specified")
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return &Evaluator[T]{numeric: numeric, logger: cfg.logger("rpn")}, nil
}

// NewFloat creates an evaluator over float64
func NewFloat(opts ...Option) (*Evaluator[float64], error) {
	return New[float64](FloatNumeric{}, opts...)
}

// NewInt creates an evaluator over int64
func NewInt(opts ...Option) (*Evaluator[int64], error) {
	return New[int64](IntNumeric{}, opts...)
}

// Run evaluates expression and returns its value. On failure the returned
// error is always a CalcError and the value is the zero value.
func (ev *Evaluator[T]) Run(expression string) (T, error) {
	var zero T
	tokens := NewScanner(expression).Scan()
	values := make(stack[T], 0, len(tokens))

	for i, tok := range tokens {
		ev.logger.Debug("token", "index", i, "kind", tok.Kind.String(), "lexeme", tok.Lexeme)

		if tok.Kind == Operator {
			rhs, ok := values.pop()
			if !ok {
				return zero, ev.fail(InvalidRightSide, i, tok)
			}
			lhs, ok := values.pop()
			if !ok {
				return zero, ev.fail(InvalidLeftSide, i, tok)
			}
			result, err := ev.numeric.Apply(tok.Op, lhs, rhs)
			if err != nil {
				return zero, ev.fail(EvaluationError, i, tok)
			}
			values.push(result)
			continue
		}

		n, err := ev.numeric.Parse(tok.Lexeme)
		if err != nil {
			return zero, ev.fail(InvalidOperator, i, tok)
		}
		values.push(n)
	}

	if values.depth() != 1 {
		ev.logger.Debug("expression did not reduce to one value", "depth", values.depth())
		return zero, EvaluationError
	}

	result, _ := values.pop()
	if err := ev.numeric.Check(result); err != nil {
		ev.logger.Debug("result rejected", "result", result)
		return zero, EvaluationError
	}
	return result, nil
}

func (ev *Evaluator[T]) fail(kind CalcError, index int, tok *Token) error {
	ev.logger.Debug("evaluation failed", "error", kind.String(), "index", index, "lexeme", tok.Lexeme)
	return kind
}

var (
	floatEvaluator = must[float64](NewFloat())
	intEvaluator   = must[int64](NewInt())
)

func must[T Number](ev *Evaluator[T], err error) *Evaluator[T] {
	if err != nil {
		panic(err)
	}
	return ev
}

// RunFloat evaluates expression with the default float64 evaluator
func RunFloat(expression string) (float64, error) {
	return floatEvaluator.Run(expression)
}

// RunInt evaluates expression with the default int64 evaluator
func RunInt(expression string) (int64, error) {
	return intEvaluator.Run(expression)
}
