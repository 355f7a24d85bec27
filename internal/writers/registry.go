// internal/writers/registry.go
package writers

import (
	"io"

	"quadcalc/internal/jobs"
	"quadcalc/internal/pretty"
)

// StartOptions carries the presentation knobs a writer may honor.
// JSON and JSONL ignore Header and Pretty; Sort applies wherever the
// format buffers the whole batch.
type StartOptions struct {
	Sort       bool
	Header     bool
	Pretty     bool
	PrettyOpts pretty.Options
	BufSize    int
}

// StartFunc spins up one writer goroutine. The returned channel
// accepts results until closed; the error channel reports the first
// write error once the stream is done.
type StartFunc func(out io.Writer, opt StartOptions) (chan<- jobs.Result, <-chan error)

// Writer registry (format → starter). Formats self-register from
// init() in their own files; last registration wins.
var resultWriters = map[string]StartFunc{}

// Register installs a starter for an output format name.
func Register(format string, fn StartFunc) { resultWriters[format] = fn }

// Lookup returns the starter for a format.
func Lookup(format string) (StartFunc, bool) {
	fn, ok := resultWriters[format]
	return fn, ok
}
