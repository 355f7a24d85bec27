// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"quadcalc/internal/cmdutil"
	"quadcalc/internal/jobs"
	"quadcalc/internal/pipeline"
	"quadcalc/internal/runutil"
	"quadcalc/internal/writers"
)

// Options carries the run knobs both tools share.
type Options struct {
	Threads      int
	Quiet        bool
	FailExitCode int
}

// WriterFactory abstracts the output sink so Run never touches formats.
type WriterFactory interface {
	Start(out io.Writer, bufSize int) (chan<- jobs.Result, <-chan error)
}

// Run evaluates all jobs and streams results to the writer. It owns the
// exit-code policy:
//
//	0    success (including broken pipe, e.g. `quadcalc ... | head`)
//	3    writer or pipeline failure
//	130  interrupted
//	FailExitCode  at least one job failed hard (compile error, bad
//	              method, non-finite value); 0 disables this
//
// Jobs that merely fail to converge keep their best estimate and do not
// trip FailExitCode; the converged column carries that signal.
func Run(
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	cfg pipeline.Config,
	list []jobs.Job,
	wf WriterFactory,
) int {
	outw := bufio.NewWriter(stdout)

	thr, warns := runutil.ValidateWorkers(o.Threads, len(list))
	if !o.Quiet {
		for _, w := range warns {
			fmt.Fprintln(stderr, w)
		}
	}
	cfg.Threads = thr

	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	failed := 0
	_, perr := cmdutil.RunStream[jobs.Result](
		ctx,
		cfg,
		list,
		func(r jobs.Result) (bool, jobs.Result, error) {
			if r.Err != "" {
				failed++
			}
			return true, r, nil
		},
		func(r jobs.Result) error {
			select {
			case inCh <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, perr)
		return 3
	}
	// failed is written by the visitor, which runs on the collector
	// goroutine; RunStream has returned, so the read is safe.
	if failed > 0 && o.FailExitCode != 0 {
		return o.FailExitCode
	}
	return 0
}
