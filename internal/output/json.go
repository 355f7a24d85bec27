// internal/output/json.go
package output

import (
	"io"

	"quadcalc/internal/jobs"
	"quadcalc/internal/jsonutil"
	"quadcalc/internal/version"
	"quadcalc/pkg/api"
)

// ToAPIResult converts a Result to the stable wire schema (v1). Bounds
// become tokens because JSON numbers cannot represent infinities.
func ToAPIResult(r jobs.Result) api.ResultV1 {
	return api.ResultV1{
		JobID:     r.JobID,
		Expr:      r.Expr,
		Lower:     jobs.FormatBound(r.Lower),
		Upper:     jobs.FormatBound(r.Upper),
		Method:    r.Method,
		Value:     r.Value,
		Converged: r.Converged,
		Evals:     r.Evals,
		Error:     r.Err,
	}
}

func toAPIResults(list []jobs.Result) []api.ResultV1 {
	out := make([]api.ResultV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIResult(r))
	}
	return out
}

// WriteJSON writes the versioned v1 document (pretty-indented).
func WriteJSON(w io.Writer, list []jobs.Result) error {
	doc := api.ResultDocV1{
		Version: version.Version,
		Results: toAPIResults(list),
	}
	return jsonutil.EncodePretty(w, doc)
}
