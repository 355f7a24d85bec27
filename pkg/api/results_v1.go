// pkg/api/results_v1.go
// Package api defines the stable, versioned JSON shapes emitted by the
// CLI tools. Downstream pipelines parse these documents; keep fields,
// names, and types stable, and add new fields only with ",omitempty".
package api

// ResultV1 is one integration result.
//
// Bounds are spelled the way job files spell them ("-inf", "+inf", or a
// decimal literal) because JSON numbers cannot carry infinities. Error
// holds a human-readable message and is set only when the job produced
// no usable value; a non-converged job still reports its best estimate
// with Converged false.
type ResultV1 struct {
	JobID     string  `json:"job_id"`
	Expr      string  `json:"expr"`
	Lower     string  `json:"lower"`
	Upper     string  `json:"upper"`
	Method    string  `json:"method"`
	Value     float64 `json:"value"`
	Converged bool    `json:"converged"`
	Evals     int     `json:"evals"`
	Error     string  `json:"error,omitempty"`
}

// ResultDocV1 is the envelope written by --output json.
type ResultDocV1 struct {
	Version string     `json:"version"`
	Results []ResultV1 `json:"results"`
}
