// internal/cmdutil/run.go
package cmdutil

import (
	"context"

	"quadcalc/internal/jobs"
	"quadcalc/internal/pipeline"
)

// RunStream runs the shared batch pipeline, applies a visitor, and
// streams kept outputs via send. It returns the number of kept outputs
// and the first error encountered.
func RunStream[T any](
	ctx context.Context,
	cfg pipeline.Config,
	list []jobs.Job,
	visit func(jobs.Result) (bool, T, error),
	send func(T) error,
) (int, error) {
	total := 0
	err := pipeline.ForEachResult(ctx, cfg, list, func(r jobs.Result) error {
		keep, out, vErr := visit(r)
		if vErr != nil {
			return vErr
		}
		if !keep {
			return nil
		}
		if err := send(out); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}
