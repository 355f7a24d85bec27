package integration

import (
	"context"
	"fmt"
	"io"
	"os"
	"testing"
	"time"

	"quadcalc/internal/app"
)

func TestCtrlC_MidBatch_Exit130(t *testing.T) {
	// A batch heavy enough that cancellation lands mid-run: every job
	// chases an impossible tolerance to its iteration cap.
	fn := "cancel_big.tsv"
	defer os.Remove(fn)
	rows := ""
	for i := 0; i < 64; i++ {
		rows += fmt.Sprintf("j%03d\t1/(x*x + 1e-9)\t-1\t1\n", i)
	}
	if err := os.WriteFile(fn, []byte(rows), 0o644); err != nil {
		t.Fatalf("write jobs: %v", err)
	}

	argv := []string{
		fn, // positional jobs arg is supported
		"--abs-tol", "1e-300",
		"--rel-tol", "1e-300",
		"--threads", "2",
	}

	ctx, cancel := context.WithCancel(context.Background())
	// Cancel shortly after start.
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	code := app.RunContext(ctx, argv, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
