// core/integrate/hermite.go
// 64-point Gauss–Hermite abscissas and weights for ∫ e^(-x²) f(x) dx over
// the whole real line. Exact for polynomial f up to degree 127.
//
// Sixty-four nodes cannot sensibly be carried as source literals at full
// double precision, so the table is built once at package init: Newton
// iteration on the orthonormal Hermite recurrence, positive roots found
// from asymptotic first guesses and mirrored. The build is deterministic,
// so the table is as constant as the Gauss–Kronrod ones.

package integrate

import "math"

const hermiteN = 64

var (
	xgh [hermiteN]float64 // nodes, descending then mirrored negative
	wgh [hermiteN]float64
)

func init() {
	buildHermite(xgh[:], wgh[:])
}

// buildHermite fills x and w with the len(x)-point Gauss–Hermite rule.
// Orthonormal recurrence: p₁ = π^(-1/4) at degree 0, then
// p_{j} = z·sqrt(2/j)·p_{j-1} − sqrt((j-1)/j)·p_{j-2}; the derivative at a
// root is sqrt(2n)·p_{n-1}, giving the Newton step and the weight 2/p'².
func buildHermite(x, w []float64) {
	const (
		pim4    = 0.7511255444649425 // π^(-1/4)
		eps     = 3e-14
		maxStep = 12
	)
	n := len(x)
	m := (n + 1) / 2

	z := 0.0
	pp := 0.0
	for i := 0; i < m; i++ {
		// First guesses march inward from the largest root.
		switch i {
		case 0:
			z = math.Sqrt(float64(2*n+1)) - 1.85575*math.Pow(float64(2*n+1), -1.0/6.0)
		case 1:
			z -= 1.14 * math.Pow(float64(n), 0.426) / z
		case 2:
			z = 1.86*z - 0.86*x[0]
		case 3:
			z = 1.91*z - 0.91*x[1]
		default:
			z = 2*z - x[i-2]
		}

		converged := false
		for step := 0; step < maxStep; step++ {
			p1 := pim4
			p2 := 0.0
			for j := 1; j <= n; j++ {
				p3 := p2
				p2 = p1
				p1 = z*math.Sqrt(2/float64(j))*p2 - math.Sqrt(float64(j-1)/float64(j))*p3
			}
			pp = math.Sqrt(2*float64(n)) * p2
			z1 := z
			z = z1 - p1/pp
			if math.Abs(z-z1) <= eps {
				converged = true
				break
			}
		}
		if !converged {
			panic("integrate: Gauss–Hermite root refinement did not converge")
		}

		x[i] = z
		x[n-1-i] = -z
		w[i] = 2 / (pp * pp)
		w[n-1-i] = w[i]
	}
}
