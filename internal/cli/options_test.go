// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"io"
	"strings"
	"testing"

	"quadcalc/internal/clibase"
	"quadcalc/internal/config"
)

func newFS() *flag.FlagSet {
	fs := NewFlagSet("test")
	fs.SetOutput(io.Discard)
	return fs
}

func defaults() config.Env {
	return config.Env{Threads: 0, Output: "text", Quiet: false, FailExitCode: 1}
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	o, err := ParseArgs(newFS(), args, defaults())
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return o
}

func TestExprWithBoundsOK(t *testing.T) {
	o := mustParse(t,
		"--expr", "x**2",
		"--lower", "0",
		"--upper", "1",
	)
	if o.Expr != "x**2" || o.Lower != "0" || o.Upper != "1" {
		t.Errorf("bad expr parse %+v", o)
	}
	if o.AbsTol != 1e-10 || o.RelTol != 1e-5 || o.MaxIter != 1000 || o.Subdivisions != 10 {
		t.Errorf("engine defaults wrong: %+v", o)
	}
}

func TestJobsFilesRepeatable(t *testing.T) {
	o := mustParse(t, "--jobs", "a.tsv", "-j", "b.tsv")
	if len(o.JobFiles) != 2 || o.JobFiles[0] != "a.tsv" || o.JobFiles[1] != "b.tsv" {
		t.Errorf("bad jobs parse %+v", o.JobFiles)
	}
}

func TestInfiniteBoundsPassThrough(t *testing.T) {
	o := mustParse(t, "-e", "exp(-x*x)", "-l", "-inf", "-u", "+inf")
	if o.Lower != "-inf" || o.Upper != "+inf" {
		t.Errorf("bounds mangled: %q %q", o.Lower, o.Upper)
	}
}

func TestEnvDefaultsFlowIn(t *testing.T) {
	d := config.Env{Threads: 4, Output: "json", Quiet: true, FailExitCode: 9}
	o, err := ParseArgs(newFS(), []string{"--jobs", "a.tsv"}, d)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if o.Threads != 4 || o.Output != "json" || !o.Quiet || o.FailExitCode != 9 {
		t.Errorf("env defaults lost: %+v", o.Common)
	}
}

func TestFlagsBeatEnvDefaults(t *testing.T) {
	d := config.Env{Threads: 4, Output: "json", FailExitCode: 9}
	o, err := ParseArgs(newFS(), []string{
		"--jobs", "a.tsv", "--threads", "2", "--output", "text",
	}, d)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if o.Threads != 2 || o.Output != "text" {
		t.Errorf("flag should override env default: %+v", o.Common)
	}
}

func TestPositionalsAreJobsFiles(t *testing.T) {
	o := mustParse(t, "batch.tsv", "--sort")
	if len(o.JobFiles) != 1 || o.JobFiles[0] != "batch.tsv" {
		t.Errorf("positional not captured: %+v", o.JobFiles)
	}
	if !o.Sort {
		t.Errorf("flag after positional not parsed")
	}
}

func TestHelpReturnsErrHelp(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-h"}, defaults())
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want flag.ErrHelp, got %v", err)
	}
}

func TestExamplesFlag(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--examples"}, defaults())
	if !errors.Is(err, clibase.ErrPrintedAndExitOK) {
		t.Fatalf("want ErrPrintedAndExitOK, got %v", err)
	}
}

func TestVersionSkipsValidation(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"-v"}, defaults())
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if !o.Version {
		t.Errorf("version flag not set")
	}
}

func TestValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"no input", []string{}, "provide --expr or a jobs file"},
		{"expr and jobs", []string{"-e", "x", "-l", "0", "-u", "1", "-j", "a.tsv"}, "conflicts"},
		{"expr missing bounds", []string{"-e", "x"}, "--expr requires --lower and --upper"},
		{"bounds without expr", []string{"-j", "a.tsv", "-l", "0"}, "apply only with --expr"},
		{"bad output", []string{"-e", "x", "-l", "0", "-u", "1", "-o", "yaml"}, "invalid --output"},
		{"negative threads", []string{"-e", "x", "-l", "0", "-u", "1", "-t", "-1"}, "--threads"},
		{"zero abs tol", []string{"-e", "x", "-l", "0", "-u", "1", "--abs-tol", "0"}, "--abs-tol"},
		{"negative rel tol", []string{"-e", "x", "-l", "0", "-u", "1", "--rel-tol", "-1e-5"}, "--rel-tol"},
		{"inf rel tol", []string{"-e", "x", "-l", "0", "-u", "1", "--rel-tol", "inf"}, "--rel-tol"},
		{"zero max iter", []string{"-e", "x", "-l", "0", "-u", "1", "--max-iter", "0"}, "--max-iter"},
		{"zero subdivisions", []string{"-e", "x", "-l", "0", "-u", "1", "--subdivisions", "0"}, "--subdivisions"},
		{"bad exit code", []string{"-e", "x", "-l", "0", "-u", "1", "--fail-exit-code", "300"}, "--fail-exit-code"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseArgs(newFS(), tc.args, defaults())
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}
