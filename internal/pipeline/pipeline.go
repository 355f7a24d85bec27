// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"quadcalc-core/integrate"

	"quadcalc/internal/expr"
	"quadcalc/internal/jobs"
)

// Config controls one batch run.
type Config struct {
	Threads int    // number of worker goroutines (>=1)
	Method  string // jobs.MethodQuadGK or jobs.MethodQuadGH

	// Flag-level engine settings. Per-job tolerances from a jobs file
	// override AbsTol/RelTol; zero fields mean the engine defaults.
	AbsTol       float64
	RelTol       float64
	MaxIter      int
	Subdivisions int
}

// countingFunc counts integrand evaluations. Each job gets its own
// instance, owned by a single worker, so the counter needs no locking.
type countingFunc struct {
	f integrate.Func
	n int
}

func (c *countingFunc) Eval(x float64) (float64, error) {
	c.n++
	return c.f.Eval(x)
}

// ForEachResult evaluates every job on a pool of workers and calls
// visit once per result, in completion order. Job-level failures (bad
// expression, integrand fault, non-finite value) land in Result.Err and
// never abort the batch. Context cancellation stops the run early; a
// visit error stops further visits and is returned once the batch
// drains.
func ForEachResult(
	ctx context.Context,
	cfg Config,
	list []jobs.Job,
	visit func(jobs.Result) error,
) error {
	switch cfg.Method {
	case jobs.MethodQuadGK, jobs.MethodQuadGH:
	default:
		return fmt.Errorf("ForEachResult: unknown method %q", cfg.Method)
	}
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	type task struct {
		idx int
		job jobs.Job
	}
	tasks := make(chan task, cfg.Threads*2)
	results := make(chan jobs.Result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-tasks:
					if !ok {
						return
					}
					select {
					case results <- evalJob(cfg, t.idx, t.job):
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for r := range results {
			if cerr != nil {
				continue
			}
			if err := visit(r); err != nil && cerr == nil {
				cerr = err
			}
		}
	}()

	// Feed work
feed:
	for i, j := range list {
		select {
		case <-ctx.Done():
			break feed
		case tasks <- task{idx: i, job: j}:
		}
	}

	close(tasks)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return cerr
}

// evalJob runs one job to completion. It never returns an error: every
// failure mode is folded into the Result so the batch keeps moving.
func evalJob(cfg Config, idx int, j jobs.Job) jobs.Result {
	r := jobs.Result{
		JobID:  j.ID,
		Expr:   j.Expr,
		Lower:  j.Lower,
		Upper:  j.Upper,
		Method: cfg.Method,
		Index:  idx,
	}
	if cfg.Method == jobs.MethodQuadGH {
		// The weight fixes the domain; bounds in the row are display only.
		r.Lower = math.Inf(-1)
		r.Upper = math.Inf(1)
	}

	compiled, err := expr.Compile(j.Expr)
	if err != nil {
		r.Err = err.Error()
		return r
	}
	f := &countingFunc{f: compiled.Func()}

	var v float64
	switch cfg.Method {
	case jobs.MethodQuadGH:
		v, err = integrate.QuadGH(f)
	default:
		o := integrate.Options{
			AbsTol:       cfg.AbsTol,
			RelTol:       cfg.RelTol,
			MaxIter:      cfg.MaxIter,
			Subdivisions: cfg.Subdivisions,
		}
		if j.AbsTol > 0 {
			o.AbsTol = j.AbsTol
		}
		if j.RelTol > 0 {
			o.RelTol = j.RelTol
		}
		v, err = integrate.QuadGKOpt(f, j.Lower, j.Upper, o)
	}
	r.Evals = f.n

	switch {
	case err == nil:
		r.Converged = true
	case errors.Is(err, integrate.ErrNotConverged):
		// The best estimate is still worth reporting.
	default:
		r.Err = err.Error()
		return r
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		r.Err = fmt.Sprintf("non-finite result %g", v)
		r.Converged = false
		return r
	}
	r.Value = v
	return r
}
