package integrate

import (
	"math"
	"testing"
)

// --- local helpers (test-only) ---------------------------------------------

// weightedSum applies one weight vector of r to f over the canonical
// interval, bypassing the evaluator so the tables themselves are on trial.
func weightedSum(r *gkRule, w []float64, f func(float64) float64) float64 {
	s := 0.0
	for i, x := range r.xgk {
		s += w[i] * f(x)
	}
	return s
}

func monomial(k int) func(float64) float64 {
	return func(x float64) float64 { return math.Pow(x, float64(k)) }
}

// --- tests ------------------------------------------------------------------

func TestGKTables_Shape(t *testing.T) {
	for _, tc := range []struct {
		name string
		r    *gkRule
		n    int
	}{
		{"gk15", &gk15, 15},
		{"gk21", &gk21, 21},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if len(tc.r.xgk) != tc.n || len(tc.r.wgk) != tc.n || len(tc.r.wg) != tc.n {
				t.Fatalf("want %d nodes/weights, got %d/%d/%d",
					tc.n, len(tc.r.xgk), len(tc.r.wgk), len(tc.r.wg))
			}
			n := tc.n
			for i := 0; i < n; i++ {
				if i > 0 && tc.r.xgk[i] <= tc.r.xgk[i-1] {
					t.Fatalf("nodes not ascending at %d: %g after %g", i, tc.r.xgk[i], tc.r.xgk[i-1])
				}
				// Symmetric rule: mirrored nodes, mirrored weights.
				if tc.r.xgk[i] != -tc.r.xgk[n-1-i] {
					t.Fatalf("node %d not mirrored: %g vs %g", i, tc.r.xgk[i], tc.r.xgk[n-1-i])
				}
				if tc.r.wgk[i] != tc.r.wgk[n-1-i] || tc.r.wg[i] != tc.r.wg[n-1-i] {
					t.Fatalf("weights %d not mirrored", i)
				}
				if tc.r.wgk[i] <= 0 {
					t.Fatalf("Kronrod weight %d not positive: %g", i, tc.r.wgk[i])
				}
				// Gauss nodes are the odd-indexed Kronrod nodes; the rest
				// carry zero Gauss weight.
				if i%2 == 0 && tc.r.wg[i] != 0 {
					t.Fatalf("Gauss weight at Kronrod-only node %d: %g", i, tc.r.wg[i])
				}
				if i%2 == 1 && tc.r.wg[i] <= 0 {
					t.Fatalf("Gauss weight %d not positive: %g", i, tc.r.wg[i])
				}
			}
		})
	}
}

// Both weight vectors integrate the constant 1 over [-1, 1].
func TestGKTables_WeightSums(t *testing.T) {
	for _, tc := range []struct {
		name string
		r    *gkRule
	}{
		{"gk15", &gk15},
		{"gk21", &gk21},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if s := weightedSum(tc.r, tc.r.wgk, func(float64) float64 { return 1 }); math.Abs(s-2) > 1e-14 {
				t.Fatalf("Kronrod weights sum to %.16g, want 2", s)
			}
			if s := weightedSum(tc.r, tc.r.wg, func(float64) float64 { return 1 }); math.Abs(s-2) > 1e-14 {
				t.Fatalf("Gauss weights sum to %.16g, want 2", s)
			}
		})
	}
}

// Exactness degrees pin the table values far more sharply than spot
// digits would: one wrong digit anywhere shifts these sums.
func TestGKTables_MonomialExactness(t *testing.T) {
	cases := []struct {
		name string
		r    *gkRule
		w    []float64
		k    int // monomial degree, within the rule's exactness bound
	}{
		{"gk15 Kronrod x^22", &gk15, gk15.wgk, 22},
		{"gk15 Gauss x^12", &gk15, gk15.wg, 12},
		{"gk21 Kronrod x^30", &gk21, gk21.wgk, 30},
		{"gk21 Gauss x^18", &gk21, gk21.wg, 18},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want := 2.0 / float64(tc.k+1) // ∫₋₁¹ x^k dx, k even
			got := weightedSum(tc.r, tc.w, monomial(tc.k))
			if math.Abs(got-want) > 1e-13 {
				t.Fatalf("∫x^%d = %.16g, want %.16g", tc.k, got, want)
			}
		})
	}
}

// Just past its exactness bound the embedded Gauss rule must visibly
// miss; if it does not, the two weight vectors are not a nested pair.
func TestGKTables_GaussBoundIsSharp(t *testing.T) {
	want := 2.0 / 15.0
	got := weightedSum(&gk15, gk15.wg, monomial(14))
	if math.Abs(got-want) < 1e-9 {
		t.Fatalf("7-point Gauss should not integrate x^14 exactly (got %.16g, want offset from %.16g)", got, want)
	}
}
