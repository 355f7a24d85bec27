// internal/hermiteintegration/integration_test.go
package hermiteintegration

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"strconv"
	"strings"
	"testing"

	"quadcalc/internal/hermiteapp"
	"quadcalc/pkg/api"
)

func write(t *testing.T, fn, data string) string {
	t.Helper()
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func firstRow(t *testing.T, out string) []string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if line == "" || strings.HasPrefix(line, "job_id\t") || strings.HasPrefix(line, "#") {
			continue
		}
		return strings.Split(line, "\t")
	}
	t.Fatalf("no data row in output:\n%s", out)
	return nil
}

func TestWeightIntegral(t *testing.T) {
	var out, errB bytes.Buffer
	code := hermiteapp.Run([]string{"--expr", "1"}, &out, &errB)
	if code != 0 {
		t.Fatalf("exit %d err=%s", code, errB.String())
	}
	f := firstRow(t, out.String())
	v, err := strconv.ParseFloat(f[5], 64)
	if err != nil {
		t.Fatalf("bad value %q", f[5])
	}
	if math.Abs(v-math.Sqrt(math.Pi)) > 1e-12 {
		t.Fatalf("weight integral = %g, want sqrt(pi)", v)
	}
	if f[2] != "-inf" || f[3] != "+inf" {
		t.Fatalf("bounds columns = %q %q, want -inf +inf", f[2], f[3])
	}
	if f[4] != "quadgh" {
		t.Fatalf("method column = %q", f[4])
	}
	if f[7] != "64" {
		t.Fatalf("evals column = %q, want 64", f[7])
	}
}

func TestSecondMoment(t *testing.T) {
	var out, errB bytes.Buffer
	code := hermiteapp.Run([]string{"--expr", "x*x"}, &out, &errB)
	if code != 0 {
		t.Fatalf("exit %d err=%s", code, errB.String())
	}
	f := firstRow(t, out.String())
	v, _ := strconv.ParseFloat(f[5], 64)
	if want := math.Sqrt(math.Pi) / 2; math.Abs(v-want) > 1e-12 {
		t.Fatalf("second moment = %g, want %g", v, want)
	}
}

func TestBatchTSV(t *testing.T) {
	tsv := write(t, "htest.tsv", "one\t1\nmoment\tx*x\n")
	defer os.Remove(tsv)

	var out, errB bytes.Buffer
	code := hermiteapp.Run([]string{"--jobs", tsv, "--sort", "--output", "json"}, &out, &errB)
	if code != 0 {
		t.Fatalf("exit %d err=%s", code, errB.String())
	}
	var doc api.ResultDocV1
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(doc.Results) != 2 {
		t.Fatalf("want 2 results, got %+v", doc)
	}
	for _, r := range doc.Results {
		if r.Method != "quadgh" || r.Lower != "-inf" || r.Upper != "+inf" {
			t.Fatalf("bad result %+v", r)
		}
	}
}

func TestRejectsBoundColumns(t *testing.T) {
	tsv := write(t, "hbad.tsv", "a\tx\t0\t1\n")
	defer os.Remove(tsv)

	var out, errB bytes.Buffer
	code := hermiteapp.Run([]string{"--jobs", tsv}, &out, &errB)
	if code != 2 {
		t.Fatalf("exit %d, want 2 for 4-column file", code)
	}
}

func TestVersionFlag(t *testing.T) {
	var out, errB bytes.Buffer
	code := hermiteapp.Run([]string{"-v"}, &out, &errB)
	if code != 0 {
		t.Fatalf("exit %d, want 0", code)
	}
	if !strings.HasPrefix(out.String(), "quadcalc-hermite version ") {
		t.Fatalf("bad version line %q", out.String())
	}
}
