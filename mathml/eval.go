package mathml

import (
	"math"

	"github.com/pkg/errors"
)

// Env supplies identifier values to Eval. csymbols are looked up by
// their text first and then by their definition URL.
type Env map[string]float64

// UndefinedError is returned by Eval for an identifier missing from the Env
type UndefinedError struct {
	Name string
}

func (e UndefinedError) Error() string { return "mathml: undefined symbol " + e.Name }

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Eval evaluates n numerically. Boolean results are 1 (true) or 0.
func Eval(n *Node, env Env) (float64, error) {
	if n == nil {
		return 0, errors.New("mathml: cannot evaluate nil expression")
	}
	switch n.Kind {
	case KindNumber:
		return n.Value, nil
	case KindIdentifier:
		if v, ok := env[n.Name]; ok {
			return v, nil
		}
		return 0, UndefinedError{Name: n.Name}
	case KindCSymbol:
		if v, ok := env[n.Name]; ok {
			return v, nil
		}
		if v, ok := env[n.URL]; ok {
			return v, nil
		}
		return 0, UndefinedError{Name: n.Name}
	case KindConstant:
		switch n.Name {
		case "pi":
			return math.Pi, nil
		case "exponentiale":
			return math.E, nil
		case "true":
			return 1, nil
		case "false":
			return 0, nil
		case "infinity":
			return math.Inf(1), nil
		case "notanumber":
			return math.NaN(), nil
		}
		return 0, errors.Errorf("mathml: unknown constant %s", n.Name)
	case KindCall:
		return 0, errors.Errorf("mathml: cannot evaluate call of user function %s", n.Name)
	}

	if n.Name == "piecewise" {
		return evalPiecewise(n, env)
	}
	args := make([]float64, len(n.Children))
	for i, c := range n.Children {
		v, err := Eval(c, env)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	if len(args) == 0 && !emptyIdentity[n.Name] {
		return 0, errors.Errorf("mathml: %s has no arguments", n.Name)
	}
	if f, ok := unaryEval[n.Name]; ok {
		return f(args[0]), nil
	}

	switch n.Name {
	case "plus":
		sum := 0.0
		for _, a := range args {
			sum += a
		}
		return sum, nil
	case "times":
		product := 1.0
		for _, a := range args {
			product *= a
		}
		return product, nil
	case "minus":
		if len(args) == 1 {
			return -args[0], nil
		}
		return args[0] - args[1], nil
	case "min", "max":
		r := args[0]
		for _, a := range args[1:] {
			if n.Name == "min" {
				r = math.Min(r, a)
			} else {
				r = math.Max(r, a)
			}
		}
		return r, nil
	case "and":
		for _, a := range args {
			if a == 0 {
				return 0, nil
			}
		}
		return 1, nil
	case "or":
		for _, a := range args {
			if a != 0 {
				return 1, nil
			}
		}
		return 0, nil
	case "xor":
		odd := false
		for _, a := range args {
			if a != 0 {
				odd = !odd
			}
		}
		return boolValue(odd), nil
	case "eq", "neq", "lt", "leq", "gt", "geq":
		if len(args) < 2 {
			return 0, errors.Errorf("mathml: %s needs two arguments", n.Name)
		}
		cmp := relationalEval[n.Name]
		for i := 1; i < len(args); i++ {
			if !cmp(args[i-1], args[i]) {
				return 0, nil
			}
		}
		return 1, nil
	}

	if len(args) != 2 {
		return 0, errors.Errorf("mathml: %s needs two arguments, got %d", n.Name, len(args))
	}
	a, b := args[0], args[1]
	switch n.Name {
	case "divide":
		return a / b, nil
	case "power":
		return math.Pow(a, b), nil
	case "rem":
		return math.Mod(a, b), nil
	case "quotient":
		return math.Trunc(a / b), nil
	case "implies":
		return boolValue(a == 0 || b != 0), nil
	case "log":
		return math.Log(b) / math.Log(a), nil
	case "root":
		return math.Pow(b, 1/a), nil
	}
	return 0, errors.Errorf("mathml: cannot evaluate %s", n.Name)
}

func evalPiecewise(n *Node, env Env) (float64, error) {
	cs := n.Children
	for ; len(cs) >= 2; cs = cs[2:] {
		cond, err := Eval(cs[1], env)
		if err != nil {
			return 0, err
		}
		if cond != 0 {
			return Eval(cs[0], env)
		}
	}
	if len(cs) == 1 {
		return Eval(cs[0], env)
	}
	return math.NaN(), nil
}

var relationalEval = map[string]func(a, b float64) bool{
	"eq":  func(a, b float64) bool { return a == b },
	"neq": func(a, b float64) bool { return a != b },
	"lt":  func(a, b float64) bool { return a < b },
	"leq": func(a, b float64) bool { return a <= b },
	"gt":  func(a, b float64) bool { return a > b },
	"geq": func(a, b float64) bool { return a >= b },
}

var unaryEval = map[string]func(float64) float64{
	"sin":       math.Sin,
	"cos":       math.Cos,
	"tan":       math.Tan,
	"sec":       func(x float64) float64 { return 1 / math.Cos(x) },
	"csc":       func(x float64) float64 { return 1 / math.Sin(x) },
	"cot":       func(x float64) float64 { return 1 / math.Tan(x) },
	"sinh":      math.Sinh,
	"cosh":      math.Cosh,
	"tanh":      math.Tanh,
	"sech":      func(x float64) float64 { return 1 / math.Cosh(x) },
	"csch":      func(x float64) float64 { return 1 / math.Sinh(x) },
	"coth":      func(x float64) float64 { return 1 / math.Tanh(x) },
	"arcsin":    math.Asin,
	"arccos":    math.Acos,
	"arctan":    math.Atan,
	"arcsec":    func(x float64) float64 { return math.Acos(1 / x) },
	"arccsc":    func(x float64) float64 { return math.Asin(1 / x) },
	"arccot":    func(x float64) float64 { return math.Atan(1 / x) },
	"arcsinh":   math.Asinh,
	"arccosh":   math.Acosh,
	"arctanh":   math.Atanh,
	"arcsech":   func(x float64) float64 { return math.Acosh(1 / x) },
	"arccsch":   func(x float64) float64 { return math.Asinh(1 / x) },
	"arccoth":   func(x float64) float64 { return math.Atanh(1 / x) },
	"exp":       math.Exp,
	"ln":        math.Log,
	"abs":       math.Abs,
	"floor":     math.Floor,
	"ceiling":   math.Ceil,
	"factorial": func(x float64) float64 { return math.Gamma(x + 1) },
	"not":       func(x float64) float64 { return boolValue(x == 0) },
}
