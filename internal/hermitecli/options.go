// internal/hermitecli/options.go
package hermitecli

import (
	"flag"
	"fmt"
	"io"

	"quadcalc/internal/clibase"
	"quadcalc/internal/cliutil"
	"quadcalc/internal/config"
)

// Options for quadcalc-hermite. The rule is fixed (64-point Gauss–Hermite
// over the whole real line with weight e^(-x²)), so there are no bound or
// tolerance knobs; everything else is shared with quadcalc.
type Options struct {
	clibase.Common
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, _ func(string) string) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [options] --expr 'x*x'\n", name)
		fmt.Fprintf(out, "  %s [options] --jobs exprs.tsv\n", name)

		fmt.Fprintln(out, "\nComputes ∫ e^(-x²)·f(x) dx over (-inf, +inf) with a fixed")
		fmt.Fprintln(out, "64-point Gauss–Hermite rule. Jobs files carry two columns")
		fmt.Fprintln(out, "(id, expr); bounds and tolerances do not apply.")
	})
	return fs
}

// PrintExamples prints a small quickstart for quadcalc-hermite.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "quadcalc-hermite", func(w io.Writer) {
		fmt.Fprintln(w, "Gauss–Hermite integrals, ∫ e^(-x²)·f(x) dx over the real line:")
		fmt.Fprintln(w, "  quadcalc-hermite --expr '1'        # sqrt(pi)")
		fmt.Fprintln(w, "  quadcalc-hermite --expr 'x*x'      # sqrt(pi)/2")
		fmt.Fprintln(w, "\nBatch from a two-column TSV (id, expr):")
		fmt.Fprintln(w, "  quadcalc-hermite --jobs exprs.tsv --output json")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string, d config.Env) (Options, error) {
	var o Options
	var help bool

	noHeader := clibase.Register(fs, &o.Common, d)
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
	return o, nil
}
