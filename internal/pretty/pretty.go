// internal/pretty/pretty.go
package pretty

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"quadcalc/internal/jobs"
)

// Options control the text block rendering.
type Options struct {
	// Width cap for the expression inside the integral line. If <=0,
	// use default (60).
	MaxExpr int

	// Append the evaluation count to the status line.
	ShowEvals bool

	// Separator between label and value. Default ":".
	SepGlyph string
}

// DefaultOptions keeps the current look & feel.
var DefaultOptions = Options{
	MaxExpr:   60,
	ShowEvals: true,
	SepGlyph:  ":",
}

// Every block line starts with this, so blocks interleave with TSV rows
// as comments and the stream stays machine-readable.
const linePrefix = "# "

func (o Options) SepGlyphOrDefault() string {
	if o.SepGlyph != "" {
		return o.SepGlyph
	}
	return DefaultOptions.SepGlyph
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func truncateExpr(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max-1]) + "…"
}

func integralLine(r jobs.Result, maxExpr int) string {
	expr := truncateExpr(r.Expr, maxExpr)
	if r.Method == jobs.MethodQuadGH {
		return fmt.Sprintf("∫ e^(-x²) · (%s) dx  over  (-inf, +inf)", expr)
	}
	return fmt.Sprintf("∫ %s dx  over  [%s, %s]",
		expr, jobs.FormatBound(r.Lower), jobs.FormatBound(r.Upper))
}

func methodLine(r jobs.Result) string {
	switch r.Method {
	case jobs.MethodQuadGH:
		return "quadgh (fixed 64-point Gauss–Hermite)"
	case jobs.MethodQuadGK:
		if math.IsInf(r.Lower, 0) || math.IsInf(r.Upper, 0) {
			return "quadgk (adaptive 15-point Gauss–Kronrod, transformed domain)"
		}
		return "quadgk (adaptive 21-point Gauss–Kronrod)"
	}
	return r.Method
}

// RenderResultWithOptions prints a comment block describing one result.
func RenderResultWithOptions(r jobs.Result, opt Options) string {
	sep := opt.SepGlyphOrDefault()
	maxExpr := opt.MaxExpr
	if maxExpr <= 0 {
		maxExpr = DefaultOptions.MaxExpr
	}

	var b strings.Builder
	line := func(label, val string) {
		fmt.Fprintf(&b, "%s%-8s %s %s\n", linePrefix, label, sep, val)
	}

	line("job", r.JobID)
	line("integral", integralLine(r, maxExpr))
	line("method", methodLine(r))

	switch {
	case r.Err != "":
		line("value", "-")
		line("status", "FAILED: "+r.Err)
	case !r.Converged:
		line("value", formatValue(r.Value))
		if opt.ShowEvals {
			line("status", fmt.Sprintf("did not converge after %d evaluations; value is the best estimate", r.Evals))
		} else {
			line("status", "did not converge; value is the best estimate")
		}
	default:
		line("value", formatValue(r.Value))
		if opt.ShowEvals {
			line("status", fmt.Sprintf("converged after %d evaluations", r.Evals))
		} else {
			line("status", "converged")
		}
	}
	b.WriteString("#\n")
	return b.String()
}

// RenderResult uses DefaultOptions.
func RenderResult(r jobs.Result) string {
	return RenderResultWithOptions(r, DefaultOptions)
}
