package mathml

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	env := Env{"S2": 4, "x": -1, "a": 1, "b": 0}
	for _, tc := range []struct {
		in   string
		want float64
	}{
		{in: "S2 / 2", want: 2},
		{in: "2^3^2", want: 512},
		{in: "-2^2", want: -4},
		{in: "sqrt(16)", want: 4},
		{in: "root(3, 27)", want: 3},
		{in: "log10(1000)", want: 3},
		{in: "log(2, 8)", want: 3},
		{in: "ln(exponentiale)", want: 1},
		{in: "max(1, 5, 3) - min(2, S2)", want: 3},
		{in: "7 % 4", want: 3},
		{in: "quotient(7, 2)", want: 3},
		{in: "factorial(4)", want: 24},
		{in: "abs(x) + floor(2.7) + ceiling(2.1)", want: 6},
		{in: "a && !b", want: 1},
		{in: "a || b", want: 1},
		{in: "xor(a, a)", want: 0},
		{in: "x < 0", want: 1},
		{in: "piecewise(1, x > 0, 0)", want: 0},
		{in: "piecewise(1, x < 0, 0)", want: 1},
		{in: "cos(pi)", want: -1},
	} {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Eval(MustParseFormula(tc.in), env)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	_, err := Eval(MustParseFormula("k * 2"), Env{})
	var ue UndefinedError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "k", ue.Name)

	_, err = Eval(MustParseFormula("f(1)"), nil)
	assert.Error(t, err)

	_, err = Eval(nil, nil)
	assert.Error(t, err)
}

func TestEvalSpecialValues(t *testing.T) {
	v, err := Eval(MustParseFormula("INF"), nil)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	v, err = Eval(MustParseFormula("piecewise(1, false)"), nil)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))

	v, err = Eval(&Node{Kind: KindCSymbol, Name: "t", URL: URLTime}, Env{URLTime: 2.5})
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)
}
