// core/integrate/quadgk.go
// Adaptive Gauss–Kronrod quadrature over finite or infinite bounds.
//
// Shape of the computation:
//  1) Fold infinite bounds onto a finite interval (transform.go) and pick
//     the rule: 21-point for finite bounds, 15-point after substitution.
//  2) Seed a worklist with Subdivisions equal-width subintervals.
//  3) Pop the subinterval with the largest local error, bisect it,
//     evaluate both halves, push them back; repeat until the summed error
//     meets max(AbsTol, RelTol·|estimate|) or MaxIter rounds pass.
//
// All per-call state is local; concurrent calls need no locking as long
// as the supplied Func tolerates concurrent evaluation.

package integrate

import (
	"container/heap"
	"errors"
	"fmt"
	"math"
)

// ErrNotConverged reports that the error bound was still above tolerance
// when the refinement budget ran out. The estimate returned alongside it
// is the best one available, not garbage; callers decide whether that is
// acceptable via errors.Is.
var ErrNotConverged = errors.New("integral did not converge")

// Options tunes the adaptive driver. Zero-valued fields take the
// DefaultOptions value, so callers only set what they mean to change.
type Options struct {
	AbsTol       float64 // absolute error tolerance [1e-10]
	RelTol       float64 // relative error tolerance [1e-5]
	MaxIter      int     // refinement-round budget [1000]
	Subdivisions int     // initial equal-width subintervals [10]
}

// DefaultOptions are the tolerances QuadGK applies.
var DefaultOptions = Options{
	AbsTol:       1e-10,
	RelTol:       1e-5,
	MaxIter:      1000,
	Subdivisions: 10,
}

// QuadGK approximates ∫ₐᵇ f(x) dx with the default Options. Either bound
// may be ±Inf; a must be strictly less than b.
func QuadGK(f Func, a, b float64) (float64, error) {
	return QuadGKOpt(f, a, b, DefaultOptions)
}

// QuadGKOpt is QuadGK with explicit Options.
func QuadGKOpt(f Func, a, b float64, o Options) (float64, error) {
	if f == nil {
		return 0, errors.New("QuadGK: nil integrand")
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return 0, errors.New("QuadGK: bound is NaN")
	}
	if a >= b {
		return 0, fmt.Errorf("QuadGK: lower bound (%g) must be < upper bound (%g)", a, b)
	}

	if o.AbsTol == 0 {
		o.AbsTol = DefaultOptions.AbsTol
	}
	if o.RelTol == 0 {
		o.RelTol = DefaultOptions.RelTol
	}
	if o.MaxIter == 0 {
		o.MaxIter = DefaultOptions.MaxIter
	}
	if o.Subdivisions == 0 {
		o.Subdivisions = DefaultOptions.Subdivisions
	}
	switch {
	case !finitePositive(o.AbsTol):
		return 0, errors.New("QuadGK: AbsTol must be finite and > 0")
	case !finitePositive(o.RelTol):
		return 0, errors.New("QuadGK: RelTol must be finite and > 0")
	case o.MaxIter < 1:
		return 0, errors.New("QuadGK: MaxIter must be ≥ 1")
	case o.Subdivisions < 1:
		return 0, errors.New("QuadGK: Subdivisions must be ≥ 1")
	}

	g, lo, hi, r := normalize(f, a, b)
	return quadGK(g, lo, hi, r, o, nil)
}

// quadGK runs the refinement loop over finite [lo, hi]. trace, when
// non-nil, observes the active worklist at the top of every round;
// white-box tests use it to check partition invariants.
func quadGK(g Func, lo, hi float64, r *gkRule, o Options, trace func(worklist)) (float64, error) {
	w := make(worklist, 0, o.Subdivisions)
	totalQ := 0.0
	totalErr := 0.0

	// Each subinterval's hi is the next one's lo, the same computed value,
	// so the partition tiles [lo, hi] with no ulp-level gap or overlap.
	width := (hi - lo) / float64(o.Subdivisions)
	seq := 0
	slo := lo
	for i := 0; i < o.Subdivisions; i++ {
		shi := hi
		if i < o.Subdivisions-1 {
			shi = lo + float64(i+1)*width
		}
		q, e, err := r.eval(g, slo, shi)
		if err != nil {
			return 0, err
		}
		w = append(w, &interval{lo: slo, hi: shi, q: q, err: e, seq: seq})
		seq++
		totalQ += q
		totalErr += e
		slo = shi
	}
	heap.Init(&w)

	for rounds := 0; ; rounds++ {
		if trace != nil {
			trace(w)
		}
		if totalErr <= math.Max(o.AbsTol, o.RelTol*math.Abs(totalQ)) {
			return totalQ, nil
		}
		if rounds >= o.MaxIter {
			return totalQ, fmt.Errorf("QuadGK: %w after %d refinement rounds (error bound %g)",
				ErrNotConverged, rounds, totalErr)
		}
		if w.Len() == 0 {
			return totalQ, fmt.Errorf("QuadGK: %w: every subinterval is at floating-point resolution (error bound %g)",
				ErrNotConverged, totalErr)
		}

		it := heap.Pop(&w).(*interval)
		mid := 0.5 * (it.lo + it.hi)
		if !(it.lo < mid && mid < it.hi) {
			// Too narrow to bisect: its estimate stays in the totals,
			// but it leaves the worklist for good.
			continue
		}
		lq, le, err := r.eval(g, it.lo, mid)
		if err != nil {
			return 0, err
		}
		rq, re, err := r.eval(g, mid, it.hi)
		if err != nil {
			return 0, err
		}
		totalQ += lq + rq - it.q
		totalErr += le + re - it.err
		heap.Push(&w, &interval{lo: it.lo, hi: mid, q: lq, err: le, seq: seq})
		seq++
		heap.Push(&w, &interval{lo: mid, hi: it.hi, q: rq, err: re, seq: seq})
		seq++
	}
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// ---------- worklist ----------

// interval is one piece of the current partition with its rule estimate.
// Splits replace an interval by its two halves; nothing mutates in place.
type interval struct {
	lo, hi float64
	q      float64 // rule estimate over [lo, hi]
	err    float64 // local error estimate
	seq    int     // insertion order; keeps equal-error pops FIFO
}

// worklist is a max-heap on the local error estimate.
type worklist []*interval

func (w worklist) Len() int { return len(w) }

func (w worklist) Less(i, j int) bool {
	if w[i].err != w[j].err {
		return w[i].err > w[j].err
	}
	return w[i].seq < w[j].seq
}

func (w worklist) Swap(i, j int) { w[i], w[j] = w[j], w[i] }

func (w *worklist) Push(x any) { *w = append(*w, x.(*interval)) }

func (w *worklist) Pop() any {
	old := *w
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*w = old[:n-1]
	return it
}
