// internal/hermiteapp/app.go
package hermiteapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"quadcalc/internal/appcore"
	"quadcalc/internal/clibase"
	"quadcalc/internal/cmdutil"
	"quadcalc/internal/config"
	"quadcalc/internal/hermitecli"
	"quadcalc/internal/jobs"
	"quadcalc/internal/output"
	"quadcalc/internal/pipeline"
	"quadcalc/internal/version"
	"quadcalc/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	env, err := config.FromEnv()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	fs := hermitecli.NewFlagSet("quadcalc-hermite")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = hermitecli.ParseArgs(fs, []string{"-h"}, env)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	opts, err := hermitecli.ParseArgs(fs, argv, env)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			hermitecli.PrintExamples(outw)
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "quadcalc-hermite version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	var list []jobs.Job
	if len(opts.JobFiles) > 0 {
		for _, path := range opts.JobFiles {
			batch, err := jobs.LoadExprTSV(path)
			if err != nil {
				_, _ = fmt.Fprintln(stderr, err)
				return 2
			}
			list = append(list, batch...)
		}
	} else {
		list = []jobs.Job{{ID: "manual", Expr: opts.Expr}}
	}
	if len(list) == 0 {
		_, _ = fmt.Fprintln(stderr, "error: no jobs to run")
		return 2
	}

	if opts.Pretty && opts.Output != output.FormatText {
		cmdutil.Warnf(stderr, opts.Quiet, "--pretty applies only to --output text; ignoring")
	}

	coreOpts := appcore.Options{
		Threads:      opts.Threads,
		Quiet:        opts.Quiet,
		FailExitCode: opts.FailExitCode,
	}
	cfg := pipeline.Config{Method: jobs.MethodQuadGH}
	writer := appcore.NewResultWriterFactory(opts.Output, opts.Sort, opts.Header, opts.Pretty)
	return appcore.Run(parent, stdout, stderr, coreOpts, cfg, list, writer)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
