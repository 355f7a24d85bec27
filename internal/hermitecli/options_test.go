// internal/hermitecli/options_test.go
package hermitecli

import (
	"errors"
	"flag"
	"io"
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
	return config.Env{Output: "text", FailExitCode: 1}
}

func TestExprOK(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--expr", "x*x"}, defaults())
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if o.Expr != "x*x" {
		t.Errorf("bad expr parse %+v", o)
	}
}

func TestNoBoundFlags(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--expr", "x", "--lower", "0"}, defaults())
	if err == nil {
		t.Fatalf("expected unknown-flag error for --lower")
	}
}

func TestNoInputError(t *testing.T) {
	_, err := ParseArgs(newFS(), nil, defaults())
	if err == nil {
		t.Fatalf("expected error with no input")
	}
}

func TestHelp(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-h"}, defaults())
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want flag.ErrHelp, got %v", err)
	}
}

func TestExamples(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--examples"}, defaults())
	if !errors.Is(err, clibase.ErrPrintedAndExitOK) {
		t.Fatalf("want ErrPrintedAndExitOK, got %v", err)
	}
}
