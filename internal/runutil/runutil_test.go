// internal/runutil/runutil_test.go
package runutil

import (
	"runtime"
	"strings"
	"testing"
)

func TestValidateWorkers(t *testing.T) {
	if thr, warns := ValidateWorkers(4, 100); thr != 4 || len(warns) != 0 {
		t.Fatalf("plain case: got %d, %v", thr, warns)
	}

	thr, warns := ValidateWorkers(8, 3)
	if thr != 3 {
		t.Fatalf("explicit overshoot should cap: got %d", thr)
	}
	if len(warns) != 1 || !strings.Contains(warns[0], "--threads 8 exceeds job count 3") {
		t.Fatalf("want a warning, got %v", warns)
	}

	if thr, warns := ValidateWorkers(0, 1000); thr != runtime.NumCPU() || len(warns) != 0 {
		t.Fatalf("auto case: got %d, %v", thr, warns)
	}

	// Auto count capping at a tiny batch stays silent.
	thr, warns = ValidateWorkers(0, 1)
	if thr != 1 {
		t.Fatalf("auto cap: got %d", thr)
	}
	if len(warns) != 0 {
		t.Fatalf("auto cap should not warn: %v", warns)
	}

	if thr, _ := ValidateWorkers(0, 0); thr != runtime.NumCPU() {
		t.Fatalf("zero jobs leaves the auto count alone: got %d", thr)
	}
}
