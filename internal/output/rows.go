// internal/output/rows.go
package output

import (
	"fmt"
	"strconv"

	"quadcalc/internal/jobs"
)

// FormatValue renders a value with shortest round-trip precision, so
// text output can be parsed back without loss.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatResultTSV returns the 9 columns of one result (no trailing
// newline). Bounds use the job-file spelling so rows survive a round
// trip through a jobs file.
func FormatResultTSV(r jobs.Result) string {
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%s\t%t\t%d\t%s",
		r.JobID, r.Expr,
		jobs.FormatBound(r.Lower), jobs.FormatBound(r.Upper),
		r.Method, FormatValue(r.Value), r.Converged, r.Evals, r.Err,
	)
}
