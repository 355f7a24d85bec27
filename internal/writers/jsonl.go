// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"quadcalc/internal/jobs"
	"quadcalc/internal/jsonlutil"
	"quadcalc/internal/output"
)

func init() {
	Register(output.FormatJSONL, func(out io.Writer, opt StartOptions) (chan<- jobs.Result, <-chan error) {
		return StartResultJSONLWriter(out, opt.BufSize)
	})
}

// StartResultJSONLWriter streams each result as one JSON line (v1).
// Lines flush in arrival order; downstream sorting is the consumer's
// business (that is the point of JSONL).
func StartResultJSONLWriter(out io.Writer, bufSize int) (chan<- jobs.Result, <-chan error) {
	return jsonlutil.Start[jobs.Result](out, bufSize,
		func(enc *json.Encoder, r jobs.Result) error {
			return enc.Encode(output.ToAPIResult(r))
		},
		IsBrokenPipe,
	)
}
