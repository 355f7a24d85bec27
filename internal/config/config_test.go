// internal/config/config_test.go
package config

import (
	"os"
	"strings"
	"testing"
)

// unsetenv clears a variable for one test while keeping t.Setenv's
// automatic restore of the original value.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestFromEnv_Defaults(t *testing.T) {
	unsetenv(t, "QUADCALC_THREADS")
	unsetenv(t, "QUADCALC_OUTPUT")
	unsetenv(t, "QUADCALC_QUIET")
	unsetenv(t, "QUADCALC_FAIL_EXIT_CODE")

	e, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if e.Threads != 0 || e.Output != "text" || e.Quiet || e.FailExitCode != 1 {
		t.Fatalf("defaults: got %+v", e)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("QUADCALC_THREADS", "8")
	t.Setenv("QUADCALC_OUTPUT", "jsonl")
	t.Setenv("QUADCALC_QUIET", "true")
	t.Setenv("QUADCALC_FAIL_EXIT_CODE", "7")

	e, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if e.Threads != 8 || e.Output != "jsonl" || !e.Quiet || e.FailExitCode != 7 {
		t.Fatalf("overrides: got %+v", e)
	}
}

func TestFromEnv_Malformed(t *testing.T) {
	t.Setenv("QUADCALC_THREADS", "many")

	_, err := FromEnv()
	if err == nil || !strings.Contains(err.Error(), "parse env") {
		t.Fatalf("malformed QUADCALC_THREADS: got %v, want parse env error", err)
	}
}
