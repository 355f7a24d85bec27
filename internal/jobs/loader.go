// internal/jobs/loader.go
package jobs

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Job files are tab-separated so expressions may contain spaces.
// Blank lines and lines starting with '#' are skipped.
//
//	id <TAB> expr <TAB> lower <TAB> upper [<TAB> abs_tol [<TAB> rel_tol]]
//
// The Hermite variant carries no bounds (the weight fixes the domain):
//
//	id <TAB> expr

// displayName keeps error positions readable when reading stdin.
func displayName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}

func forEachRow(path string, visit func(ln int, fields []string) error) error {
	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	sc := bufio.NewScanner(in)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r\n")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		for len(fields) > 0 && fields[len(fields)-1] == "" {
			fields = fields[:len(fields)-1]
		}
		if err := visit(ln, fields); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%s: %w", displayName(path), err)
	}
	return nil
}

func rowError(path string, ln int, format string, args ...interface{}) error {
	return fmt.Errorf("%s:%d: %s", path, ln, fmt.Sprintf(format, args...))
}

func parseTol(path string, ln int, name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !(v > 0) || math.IsInf(v, 0) {
		return 0, rowError(path, ln, "bad %s %q (want a positive finite number)", name, s)
	}
	return v, nil
}

// LoadTSV reads integration jobs for the adaptive driver. Bounds are
// validated here so a bad file fails fast with a file:line position;
// anything that can only fail at evaluation time is left to the run.
func LoadTSV(path string) ([]Job, error) {
	var out []Job
	name := displayName(path)
	seen := make(map[string]int)
	err := forEachRow(path, func(ln int, fields []string) error {
		if len(fields) < 4 || len(fields) > 6 {
			return rowError(name, ln, "bad field count %d (want id, expr, lower, upper, optional abs_tol, rel_tol)", len(fields))
		}
		for i, f := range fields {
			if f == "" {
				return rowError(name, ln, "empty field %d", i+1)
			}
		}
		j := Job{ID: fields[0], Expr: fields[1]}
		if prev, dup := seen[j.ID]; dup {
			return rowError(name, ln, "duplicate job id %q (first at line %d)", j.ID, prev)
		}
		seen[j.ID] = ln

		var err error
		if j.Lower, err = ParseBound(fields[2]); err != nil {
			return rowError(name, ln, "lower: %v", err)
		}
		if j.Upper, err = ParseBound(fields[3]); err != nil {
			return rowError(name, ln, "upper: %v", err)
		}
		if !(j.Lower < j.Upper) {
			return rowError(name, ln, "bounds [%s, %s] are not an increasing interval",
				FormatBound(j.Lower), FormatBound(j.Upper))
		}
		if len(fields) >= 5 {
			if j.AbsTol, err = parseTol(name, ln, "abs_tol", fields[4]); err != nil {
				return err
			}
		}
		if len(fields) == 6 {
			if j.RelTol, err = parseTol(name, ln, "rel_tol", fields[5]); err != nil {
				return err
			}
		}
		out = append(out, j)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LoadExprTSV reads jobs for the Hermite driver: id and expression
// only. Rows carrying bound columns are rejected so a quadgk jobs file
// is not silently misread as a weighted-integral batch.
func LoadExprTSV(path string) ([]Job, error) {
	var out []Job
	name := displayName(path)
	seen := make(map[string]int)
	err := forEachRow(path, func(ln int, fields []string) error {
		if len(fields) != 2 {
			return rowError(name, ln, "bad field count %d (want id, expr)", len(fields))
		}
		if fields[0] == "" || fields[1] == "" {
			return rowError(name, ln, "empty field")
		}
		if prev, dup := seen[fields[0]]; dup {
			return rowError(name, ln, "duplicate job id %q (first at line %d)", fields[0], prev)
		}
		seen[fields[0]] = ln
		out = append(out, Job{ID: fields[0], Expr: fields[1]})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
