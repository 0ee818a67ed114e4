package rpn

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloatNumericApply(t *testing.T) {
	testCases := []struct {
		op       Op
		lhs, rhs float64
		want     float64
	}{
		{Plus, 3, 4, 7},
		{Minus, 3, 4, -1},
		{Star, 3, 4, 12},
		{Slash, 3, 4, 0.75},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		got, err := FloatNumeric{}.Apply(tc.op, tc.lhs, tc.rhs)
		assert.NoError(err)
		assert.Equal(tc.want, got, tc.op.String())
	}

	got, err := FloatNumeric{}.Apply(Slash, 1, 0)
	assert.NoError(err)
	assert.True(math.IsInf(got, 1))
}

func TestFloatNumericCheck(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(FloatNumeric{}.Check(0))
	assert.NoError(FloatNumeric{}.Check(-1.5))
	assert.NoError(FloatNumeric{}.Check(math.MaxFloat64))
	assert.Equal(EvaluationError, FloatNumeric{}.Check(math.Inf(1)))
	assert.Equal(EvaluationError, FloatNumeric{}.Check(math.Inf(-1)))
	assert.Equal(EvaluationError, FloatNumeric{}.Check(math.NaN()))
}

func TestIntNumericApply(t *testing.T) {
	testCases := []struct {
		op       Op
		lhs, rhs int64
		want     int64
	}{
		{Plus, 3, 4, 7},
		{Minus, 3, 4, -1},
		{Star, 3, 4, 12},
		{Slash, 3, 4, 0},
		{Slash, 9, 4, 2},
		{Slash, -9, 4, -2},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		got, err := IntNumeric{}.Apply(tc.op, tc.lhs, tc.rhs)
		assert.NoError(err)
		assert.Equal(tc.want, got, tc.op.String())
	}

	_, err := IntNumeric{}.Apply(Slash, 1, 0)
	assert.Equal(EvaluationError, err)
	assert.NoError(IntNumeric{}.Check(math.MaxInt64))
}

func TestNumericParse(t *testing.T) {
	assert := assert.New(t)

	f, err := FloatNumeric{}.Parse("-3.25")
	assert.NoError(err)
	assert.Equal(-3.25, f)
	_, err = FloatNumeric{}.Parse("3,")
	assert.Error(err)

	f, err = FloatNumeric{}.Parse("1e400")
	assert.NoError(err)
	assert.True(math.IsInf(f, 1))
	f, err = FloatNumeric{}.Parse("-1e400")
	assert.NoError(err)
	assert.True(math.IsInf(f, -1))
	f, err = FloatNumeric{}.Parse("1e-400")
	assert.NoError(err)
	assert.Zero(f)
	f, err = FloatNumeric{}.Parse("-Infinity")
	assert.NoError(err)
	assert.True(math.IsInf(f, -1))
	for _, lexeme := range []string{"0x1p4", "+0x1p4", "-0X10", "1_0", "_1", "+-1"} {
		_, err = FloatNumeric{}.Parse(lexeme)
		assert.ErrorIs(err, strconv.ErrSyntax, lexeme)
	}

	i, err := IntNumeric{}.Parse("-42")
	assert.NoError(err)
	assert.Equal(int64(-42), i)
	_, err = IntNumeric{}.Parse("4.2")
	assert.Error(err)
}

func TestApplyPanicsOnUnknownOp(t *testing.T) {
	assert.Panics(t, func() { apply[int64](Op(9), 1, 2) })
}

func TestFormat(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("7", Format(7.0))
	assert.Equal("4.8", Format(4.8))
	assert.Equal("-0.5", Format(-0.5))
	assert.Equal("4294967296", Format(4294967296.0))
	assert.Equal("0.1", Format(0.1))
	assert.Equal("7", Format(int64(7)))
	assert.Equal("-9223372036854775808", Format(int64(math.MinInt64)))

	type celsius float64
	assert.Equal("21.5", Format(celsius(21.5)))
}
