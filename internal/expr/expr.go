// internal/expr/expr.go
package expr

// Compile turns a user-supplied formula like "exp(-x*x) * sin(x)" into
// an integrand the engine can evaluate. The only free variable is x;
// pi and e are bound constants, and the usual scientific functions are
// available. Exponentiation is spelled ** (or pow); '^' is rejected
// up front because govaluate treats it as bitwise XOR, which silently
// gives wrong integrals.

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Knetic/govaluate"

	"quadcalc-core/integrate"
)

// Expr is a compiled, reusable integrand expression.
type Expr struct {
	src  string
	eval *govaluate.EvaluableExpression
}

func unary(name string, f func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%s: want 1 argument, got %d", name, len(args))
		}
		v, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("%s: non-numeric argument %v", name, args[0])
		}
		return f(v), nil
	}
}

func binary(name string, f func(float64, float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("%s: want 2 arguments, got %d", name, len(args))
		}
		a, aok := args[0].(float64)
		b, bok := args[1].(float64)
		if !aok || !bok {
			return nil, fmt.Errorf("%s: non-numeric arguments %v, %v", name, args[0], args[1])
		}
		return f(a, b), nil
	}
}

var functions = map[string]govaluate.ExpressionFunction{
	"sin":   unary("sin", math.Sin),
	"cos":   unary("cos", math.Cos),
	"tan":   unary("tan", math.Tan),
	"asin":  unary("asin", math.Asin),
	"acos":  unary("acos", math.Acos),
	"atan":  unary("atan", math.Atan),
	"sinh":  unary("sinh", math.Sinh),
	"cosh":  unary("cosh", math.Cosh),
	"tanh":  unary("tanh", math.Tanh),
	"exp":   unary("exp", math.Exp),
	"log":   unary("log", math.Log),
	"log2":  unary("log2", math.Log2),
	"log10": unary("log10", math.Log10),
	"sqrt":  unary("sqrt", math.Sqrt),
	"abs":   unary("abs", math.Abs),
	"floor": unary("floor", math.Floor),
	"ceil":  unary("ceil", math.Ceil),
	"erf":   unary("erf", math.Erf),
	"erfc":  unary("erfc", math.Erfc),
	"gamma": unary("gamma", math.Gamma),
	"pow":   binary("pow", math.Pow),
	"atan2": binary("atan2", math.Atan2),
	"min":   binary("min", math.Min),
	"max":   binary("max", math.Max),
}

// Compile parses src and checks that x is the only free variable.
func Compile(src string) (*Expr, error) {
	s := strings.TrimSpace(src)
	if s == "" {
		return nil, errors.New("Compile: empty expression")
	}
	if strings.Contains(s, "^") {
		return nil, fmt.Errorf("Compile: '^' is bitwise XOR, not exponentiation; write x**2 or pow(x, 2)")
	}
	ee, err := govaluate.NewEvaluableExpressionWithFunctions(s, functions)
	if err != nil {
		return nil, fmt.Errorf("Compile %q: %w", s, err)
	}
	for _, v := range ee.Vars() {
		if v != "x" && v != "pi" && v != "e" {
			return nil, fmt.Errorf("Compile %q: unknown variable %q (the integrand may use x, pi, e)", s, v)
		}
	}
	return &Expr{src: s, eval: ee}, nil
}

// Source returns the trimmed expression text.
func (e *Expr) Source() string { return e.src }

// Func adapts the expression to the engine's integrand interface. The
// parameter map is built fresh per call, so one Expr may be evaluated
// from several goroutines at once.
func (e *Expr) Func() integrate.Func {
	return integrate.EvalFunc(func(x float64) (float64, error) {
		out, err := e.eval.Evaluate(map[string]interface{}{
			"x":  x,
			"pi": math.Pi,
			"e":  math.E,
		})
		if err != nil {
			return 0, fmt.Errorf("eval %q at x=%g: %w", e.src, x, err)
		}
		v, ok := out.(float64)
		if !ok {
			return 0, fmt.Errorf("eval %q at x=%g: non-numeric result %v", e.src, x, out)
		}
		return v, nil
	})
}
