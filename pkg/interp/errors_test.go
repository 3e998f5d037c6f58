package interp_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaresPSCR/ROScript/pkg/core/value"
	"github.com/RaresPSCR/ROScript/pkg/interp"
	"github.com/RaresPSCR/ROScript/pkg/stdlib"
)

func TestRuntimeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
		line int
	}{
		{"undefined variable", "var a = 1;\nvar b = c + 1", interp.ErrUndefinedVariable, 2},
		{"bare declaration has no value", "var a;\nafiseaza a", interp.ErrUndefinedVariable, 2},
		{"undefined function", "nope(1)", interp.ErrUndefinedFunction, 1},
		{"text times int", `var s = "ab" * 2`, value.ErrTypeMismatch, 1},
		{"int plus text", `var s = 1 + "a"`, value.ErrTypeMismatch, 1},
		{"float modulo", "var f = 5.0 % 2", value.ErrTypeMismatch, 1},
		{"bool arithmetic", "var b = adevarat + 1", value.ErrTypeMismatch, 1},
		{"integer division by zero", "var d = 5 / 0", value.ErrDivisionByZero, 1},
		{"integer modulo by zero", "var d = 5 % 0", value.ErrDivisionByZero, 1},
		{"text condition", "daca \"da\" { }", value.ErrTypeMismatch, 1},
		{"arity", "var n = len()", stdlib.ErrArityMismatch, 1},
		{"inside loop", "var i = 0;\ncat timp i < 3 {\n i++;\n afiseaza i / (i - 2);\n}", value.ErrDivisionByZero, 4},
		{"in else-if condition", "daca fals { }\naltfel daca \"x\" { }", value.ErrTypeMismatch, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.src, "")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Equal(t, tt.want, errors.Cause(err))

			var re *interp.RuntimeError
			require.True(t, errors.As(err, &re))
			assert.Equal(t, tt.line, re.Line)
		})
	}
}

func TestFloatDivisionByZeroIsNotAnError(t *testing.T) {
	_, it, err := run(t, "var f = 5.0 / 0.0; var g = 1 / 0.0", "")
	require.NoError(t, err)
	assert.Equal(t, "+Inf", variable(t, it, "f").Format())
	assert.Equal(t, "+Inf", variable(t, it, "g").Format())
}

func TestRuntimeErrorStopsExecution(t *testing.T) {
	out, it, err := run(t, "afiseaza 1;\nafiseaza x;\nafiseaza 2;", "")
	require.Error(t, err)
	assert.Equal(t, "1", out)
	assert.Equal(t, 2, it.Steps())
}

func TestRuntimeErrorMessage(t *testing.T) {
	_, _, err := run(t, "var a = 1;\nvar b = a + lipsa", "")
	require.Error(t, err)
	assert.Equal(t, "Runtime Error: 'lipsa': undefined variable\nOn line: 2", err.Error())
}
