// core/integrate/quadgh.go
// Fixed-rule Gauss–Hermite driver: one pass, no subdivision, no tolerance.

package integrate

import (
	"errors"
	"fmt"
)

// QuadGH approximates ∫ e^(-x²) f(x) dx over (-∞, ∞) with the 64-point
// Gauss–Hermite rule: exactly 64 evaluations of f, deterministic output.
// The Gaussian weight is supplied by the rule; f is the remaining factor
// only. Accuracy rests entirely on how well f is approximated by a
// polynomial of degree ≤ 127; there is no error estimate and no
// refinement. Callers use this when the weight is known analytically
// and adaptivity would be wasted effort.
func QuadGH(f Func) (float64, error) {
	if f == nil {
		return 0, errors.New("QuadGH: nil integrand")
	}
	sum := 0.0
	for i := 0; i < hermiteN; i++ {
		v, err := f.Eval(xgh[i])
		if err != nil {
			return 0, fmt.Errorf("integrand at x=%g: %w", xgh[i], err)
		}
		sum += wgh[i] * v
	}
	return sum, nil
}
