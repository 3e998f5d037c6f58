package value_test

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaresPSCR/ROScript/pkg/core/value"
)

func TestValueCreation(t *testing.T) {
	vInt := value.Int(42)
	if vInt.Type != value.TypeInt {
		t.Errorf("expected TypeInt, got %v", vInt.Type)
	}
	if vInt.Int() != 42 {
		t.Errorf("expected 42, got %v", vInt.Int())
	}

	vBool := value.Bool(true)
	if vBool.Type != value.TypeBool || !vBool.Bool() {
		t.Errorf("expected true bool, got %v", vBool)
	}

	var zero value.Value
	assert.Equal(t, value.TypeInt, zero.Type)
	assert.Equal(t, int64(0), zero.Int())
}

func TestFormat(t *testing.T) {
	tests := []struct {
		v    value.Value
		want string
	}{
		{value.Int(-7), "-7"},
		{value.Float(3.5), "3.5"},
		{value.Float(3), "3.0"},
		{value.Float(0.1), "0.1"},
		{value.Float(1e21), "1e+21"},
		{value.Float(math.Inf(1)), "+Inf"},
		{value.Float(math.NaN()), "NaN"},
		{value.Bool(true), "true"},
		{value.Bool(false), "false"},
		{value.Text("ab\tc"), "ab\tc"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.v.Format())
	}
}

func TestBinary(t *testing.T) {
	tests := []struct {
		name string
		op   string
		l, r value.Value
		want value.Value
	}{
		{"int add", "+", value.Int(2), value.Int(3), value.Int(5)},
		{"int div truncates", "/", value.Int(7), value.Int(2), value.Int(3)},
		{"int mod", "%", value.Int(7), value.Int(3), value.Int(1)},
		{"int compare", "<", value.Int(1), value.Int(2), value.Bool(true)},
		{"int ge", ">=", value.Int(2), value.Int(2), value.Bool(true)},
		{"float mul", "*", value.Float(1.5), value.Float(2), value.Float(3)},
		{"mixed promotes", "+", value.Int(1), value.Float(2.5), value.Float(3.5)},
		{"mixed compare", "==", value.Float(2), value.Int(2), value.Bool(true)},
		{"concat", "+", value.Text("ab"), value.Text("cd"), value.Text("abcd")},
		{"text ne", "!=", value.Text("a"), value.Text("b"), value.Bool(true)},
		{"bool eq", "==", value.Bool(true), value.Bool(true), value.Bool(true)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := value.Binary(tt.op, tt.l, tt.r)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestBinaryErrors(t *testing.T) {
	tests := []struct {
		name string
		op   string
		l, r value.Value
		want error
	}{
		{"text times int", "*", value.Text("ab"), value.Int(2), value.ErrTypeMismatch},
		{"text minus", "-", value.Text("a"), value.Text("b"), value.ErrTypeMismatch},
		{"float mod", "%", value.Float(1), value.Float(2), value.ErrTypeMismatch},
		{"bool add", "+", value.Bool(true), value.Bool(false), value.ErrTypeMismatch},
		{"text eq int", "==", value.Text("1"), value.Int(1), value.ErrTypeMismatch},
		{"int div zero", "/", value.Int(5), value.Int(0), value.ErrDivisionByZero},
		{"int mod zero", "%", value.Int(5), value.Int(0), value.ErrDivisionByZero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := value.Binary(tt.op, tt.l, tt.r)
			require.Error(t, err)
			assert.Equal(t, tt.want, errors.Cause(err))
		})
	}
}

func TestFloatDivisionByZeroIsIEEE(t *testing.T) {
	got, err := value.Binary("/", value.Float(5), value.Float(0))
	require.NoError(t, err)
	assert.True(t, math.IsInf(got.Float(), 1))
}

func TestTypeMismatchNamesOperands(t *testing.T) {
	_, err := value.Binary("*", value.Text("ab"), value.Int(2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"*"`)
	assert.Contains(t, err.Error(), "string and int")
}

func TestTruthy(t *testing.T) {
	for _, v := range []value.Value{value.Bool(true), value.Int(-1), value.Float(0.5)} {
		ok, err := value.Truthy(v)
		require.NoError(t, err)
		assert.True(t, ok, "%v", v)
	}
	for _, v := range []value.Value{value.Bool(false), value.Int(0), value.Float(0)} {
		ok, err := value.Truthy(v)
		require.NoError(t, err)
		assert.False(t, ok, "%v", v)
	}
	_, err := value.Truthy(value.Text("x"))
	assert.True(t, errors.Is(err, value.ErrTypeMismatch))
}
