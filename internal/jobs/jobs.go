// internal/jobs/jobs.go
// Package jobs defines the batch data model shared by the CLI tools:
// what to integrate, and what came out.
package jobs

// Job is one integration request. Zero tolerances mean "use the
// engine defaults or the flag-level values"; per-job tolerances from a
// jobs file always win over flags. The Hermite driver ignores bounds.
type Job struct {
	ID     string
	Expr   string
	Lower  float64 // may be ±Inf
	Upper  float64 // may be ±Inf
	AbsTol float64 // 0 = inherit
	RelTol float64 // 0 = inherit
}

// Result is the outcome of one Job.
//
// Err non-empty means the job produced no usable value (bad expression,
// invalid bounds, integrand fault, non-finite result) and Value is 0.
// A job that ran out of refinement rounds still reports its best
// estimate: Converged false, Err empty.
type Result struct {
	JobID     string
	Expr      string
	Lower     float64
	Upper     float64
	Method    string // MethodQuadGK or MethodQuadGH
	Value     float64
	Converged bool
	Evals     int // integrand evaluations
	Index     int // position of the Job in the input
	Err       string
}

// Method names as they appear in output rows and JSON documents.
const (
	MethodQuadGK = "quadgk"
	MethodQuadGH = "quadgh"
)
