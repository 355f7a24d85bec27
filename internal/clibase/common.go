// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"quadcalc/internal/cliutil"
	"quadcalc/internal/common"
	"quadcalc/internal/config"
	"quadcalc/internal/output"
)

// Common holds CLI fields shared by quadcalc and quadcalc-hermite.
type Common struct {
	// Input
	Expr     string
	JobFiles []string

	// Performance
	Threads int

	// Output
	Output       string // text|json|jsonl
	Pretty       bool
	Sort         bool
	Header       bool
	FailExitCode int

	// Misc
	Quiet    bool
	Version  bool
	Examples bool
}

// sliceValue appends each value to a *[]string (for --jobs/-j)
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}
func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// Register wires shared flags onto fs, seeding defaults from the
// QUADCALC_* environment (flags win). It returns a pointer to the
// "no-header" bool the caller folds into Common.Header after parsing.
func Register(fs *flag.FlagSet, c *Common, d config.Env) *bool {
	// Input
	fs.StringVar(&c.Expr, "expr", "", "integrand expression in x, e.g. 'exp(-x*x)'")
	fs.StringVar(&c.Expr, "e", "", "alias of --expr")
	jobsVal := &sliceValue{dst: &c.JobFiles}
	fs.Var(jobsVal, "jobs", "jobs TSV file(s) (repeatable) or '-'")
	fs.Var(jobsVal, "j", "alias of --jobs")

	// Performance
	fs.IntVar(&c.Threads, "threads", d.Threads, "worker threads (0=all CPUs) [0]")
	fs.IntVar(&c.Threads, "t", d.Threads, "alias of --threads")

	// Output
	fs.StringVar(&c.Output, "output", d.Output, "output: text | json | jsonl [text]")
	fs.StringVar(&c.Output, "o", d.Output, "alias of --output")
	fs.BoolVar(&c.Pretty, "pretty", false, "pretty comment block above each row (text) [false]")
	fs.BoolVar(&c.Sort, "sort", false, "sort outputs by job id [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")
	fs.IntVar(&c.FailExitCode, "fail-exit-code", d.FailExitCode, "exit code when a job fails (0=never fail the run) [1]")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", d.Quiet, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", d.Quiet, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Examples, "examples", false, "print usage examples and exit [false]")

	return &noHeader
}

// AfterParse finalizes header and expands positionals, then runs shared
// validation.
func AfterParse(fs *flag.FlagSet, c *Common, noHeader *bool, posArgs []string) error {
	c.Header = !*noHeader

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return err
		}
		c.JobFiles = append(c.JobFiles, exp...)
	}
	c.JobFiles = common.Unique(c.JobFiles)
	return Validate(c)
}

// Validate applies shared CLI invariants used by both tools.
func Validate(c *Common) error {
	usingExpr := c.Expr != ""
	usingFiles := len(c.JobFiles) > 0
	switch {
	case usingExpr && usingFiles:
		return errors.New("--expr conflicts with jobs files")
	case !usingExpr && !usingFiles:
		return errors.New("provide --expr or a jobs file")
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	switch c.Output {
	case output.FormatText, output.FormatJSON, output.FormatJSONL:
	default:
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	if c.FailExitCode < 0 || c.FailExitCode > 255 {
		return errors.New("--fail-exit-code must be between 0 and 255")
	}
	return nil
}
