// core/integrate/function.go
// Integrand abstraction shared by the quadrature drivers.
//
// This package has no app/output deps; callers adapt their own function
// types to Func and keep presentation elsewhere.

package integrate

// Func is a real-valued function of one real variable. Evaluation may be
// expensive and may fail; the drivers treat both as the caller's domain
// and never retry. Implementations must be safe for repeated calls with
// the same x (the drivers assume a pure mapping).
type Func interface {
	Eval(x float64) (float64, error)
}

// EvalFunc adapts an ordinary fallible function to Func.
type EvalFunc func(x float64) (float64, error)

func (f EvalFunc) Eval(x float64) (float64, error) { return f(x) }

// FuncOf wraps an infallible function as a Func.
func FuncOf(f func(x float64) float64) Func {
	return EvalFunc(func(x float64) (float64, error) { return f(x), nil })
}
