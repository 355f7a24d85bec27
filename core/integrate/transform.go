// core/integrate/transform.go
// Substitutions that fold infinite integration bounds onto a finite
// canonical interval. The transformed integrand carries the Jacobian, so
// the adaptive driver only ever sees finite subintervals.
//
// After a substitution the 15-point rule applies: the transformed
// integrand flattens toward the substituted endpoint, where the 21-point
// rule's extra boundary nodes buy nothing.

package integrate

import "math"

// normalize rewrites ∫ₐᵇ f as an equivalent finite-domain integral.
// It returns the (possibly transformed) integrand, the finite bounds to
// integrate over, and the rule to evaluate with. Finite inputs pass
// through untouched and select the 21-point rule.
//
// Rule nodes are strictly interior to [-1, 1], so the transformed
// integrand is never evaluated at the singular endpoint of a
// substitution.
func normalize(f Func, a, b float64) (Func, float64, float64, *gkRule) {
	aInf := math.IsInf(a, -1)
	bInf := math.IsInf(b, 1)
	switch {
	case aInf && bInf:
		// x = t/(1-t²), dx = (1+t²)/(1-t²)² dt, t ∈ (-1, 1)
		g := EvalFunc(func(t float64) (float64, error) {
			u := 1 - t*t
			v, err := f.Eval(t / u)
			if err != nil {
				return 0, err
			}
			return v * (1 + t*t) / (u * u), nil
		})
		return g, -1, 1, &gk15
	case bInf:
		// x = a + t²/(1-t), dx = t(2-t)/(1-t)² dt, t ∈ [0, 1)
		g := EvalFunc(func(t float64) (float64, error) {
			u := 1 - t
			v, err := f.Eval(a + t*t/u)
			if err != nil {
				return 0, err
			}
			return v * t * (2 - t) / (u * u), nil
		})
		return g, 0, 1, &gk15
	case aInf:
		// x = b - t²/(1+t), dx = -t(2+t)/(1+t)² dt, t ∈ (-1, 0]
		g := EvalFunc(func(t float64) (float64, error) {
			u := 1 + t
			v, err := f.Eval(b - t*t/u)
			if err != nil {
				return 0, err
			}
			return v * -t * (2 + t) / (u * u), nil
		})
		return g, -1, 0, &gk15
	default:
		return f, a, b, &gk21
	}
}
