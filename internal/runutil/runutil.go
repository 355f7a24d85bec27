// internal/runutil/runutil.go
package runutil

import (
	"fmt"
	"runtime"
)

// ValidateWorkers resolves the effective worker count, returns it with
// any warnings to print. Rules:
//   - threads <= 0 → one worker per CPU
//   - more workers than jobs is wasted spawn; cap silently when the
//     count was automatic, with a warning when the user asked for it
func ValidateWorkers(threads, jobCount int) (int, []string) {
	var warns []string
	thr := threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}
	if jobCount > 0 && thr > jobCount {
		if threads > 0 {
			warns = append(warns, fmt.Sprintf(
				"warning: --threads %d exceeds job count %d; using %d", threads, jobCount, jobCount))
		}
		thr = jobCount
	}
	return thr, warns
}
