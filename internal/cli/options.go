// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"

	"quadcalc/internal/clibase"
	"quadcalc/internal/cliutil"
	"quadcalc/internal/config"
)

// Options holds all CLI flags and arguments for quadcalc.
type Options struct {
	clibase.Common

	// Single-expression bounds (string so "-inf"/"+inf" parse cleanly)
	Lower string
	Upper string

	// Engine knobs
	AbsTol       float64
	RelTol       float64
	MaxIter      int
	Subdivisions int
}

// NewFlagSet returns a configured FlagSet with the shared usage layout
// plus quadcalc's engine section.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [options] --expr 'x**2' --lower 0 --upper 1\n", name)
		fmt.Fprintf(out, "  %s [options] --jobs batch.tsv\n", name)
		fmt.Fprintf(out, "  %s [options] jobs1.tsv jobs2.tsv\n", name)

		fmt.Fprintln(out, "\nIntegration:")
		fmt.Fprintln(out, "  -l, --lower string          Lower bound (number or -inf) [*]")
		fmt.Fprintln(out, "  -u, --upper string          Upper bound (number or +inf) [*]")
		fmt.Fprintf(out, "      --abs-tol float         Absolute tolerance [%s]\n", def("abs-tol"))
		fmt.Fprintf(out, "      --rel-tol float         Relative tolerance [%s]\n", def("rel-tol"))
		fmt.Fprintf(out, "      --max-iter int          Max refinement rounds [%s]\n", def("max-iter"))
		fmt.Fprintf(out, "      --subdivisions int      Initial interval subdivisions [%s]\n", def("subdivisions"))
	})
	return fs
}

// PrintExamples prints a small quickstart for quadcalc.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "quadcalc", func(w io.Writer) {
		fmt.Fprintln(w, "Integrate one expression:")
		fmt.Fprintln(w, "  quadcalc --expr 'x**2' --lower 0 --upper 1")
		fmt.Fprintln(w, "  quadcalc -e 'exp(-x*x)' -l -inf -u +inf")
		fmt.Fprintln(w, "\nRun a batch from a jobs TSV (id, expr, lower, upper,")
		fmt.Fprintln(w, "then optional abs_tol and rel_tol):")
		fmt.Fprintln(w, "  quadcalc --jobs batch.tsv --output json")
		fmt.Fprintln(w, "  quadcalc batch.tsv --sort --threads 8")
		fmt.Fprintln(w, "  cat batch.tsv | quadcalc -j - --output jsonl")
	})
}

// ParseArgs registers and parses all flags. Positionals are jobs files.
func ParseArgs(fs *flag.FlagSet, argv []string, d config.Env) (Options, error) {
	var o Options
	var help bool

	noHeader := clibase.Register(fs, &o.Common, d)

	fs.StringVar(&o.Lower, "lower", "", "lower bound (number or -inf)")
	fs.StringVar(&o.Lower, "l", "", "alias of --lower")
	fs.StringVar(&o.Upper, "upper", "", "upper bound (number or +inf)")
	fs.StringVar(&o.Upper, "u", "", "alias of --upper")

	fs.Float64Var(&o.AbsTol, "abs-tol", 1e-10, "absolute tolerance [1e-10]")
	fs.Float64Var(&o.RelTol, "rel-tol", 1e-5, "relative tolerance [1e-05]")
	fs.IntVar(&o.MaxIter, "max-iter", 1000, "max refinement rounds [1000]")
	fs.IntVar(&o.Subdivisions, "subdivisions", 10, "initial interval subdivisions [10]")

	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&help, "help", false, "show this help [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}
	if o.Examples {
		return o, clibase.ErrPrintedAndExitOK
	}

	if err := clibase.AfterParse(fs, &o.Common, noHeader, posArgs); err != nil {
		return o, err
	}

	// --expr mode needs both bounds; jobs files carry their own.
	usingExpr := o.Expr != ""
	if usingExpr && (o.Lower == "" || o.Upper == "") {
		return o, errors.New("--expr requires --lower and --upper")
	}
	if !usingExpr && (o.Lower != "" || o.Upper != "") {
		return o, errors.New("--lower/--upper apply only with --expr")
	}
	if err := validateEngine(&o); err != nil {
		return o, err
	}
	return o, nil
}

func validateEngine(o *Options) error {
	if !(o.AbsTol > 0) || math.IsInf(o.AbsTol, 0) {
		return errors.New("--abs-tol must be a positive finite number")
	}
	if !(o.RelTol > 0) || math.IsInf(o.RelTol, 0) {
		return errors.New("--rel-tol must be a positive finite number")
	}
	if o.MaxIter < 1 {
		return errors.New("--max-iter must be ≥ 1")
	}
	if o.Subdivisions < 1 {
		return errors.New("--subdivisions must be ≥ 1")
	}
	return nil
}
