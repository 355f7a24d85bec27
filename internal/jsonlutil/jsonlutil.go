// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
)

// Start spins up a JSONL encoder goroutine for values of type T.
//   - encode: fn to encode one value (convert to wire type & enc.Encode)
//   - isBroken: recognizer for closed-pipe errors, which are reported
//     as success so `quadcalc ... | head` exits cleanly
//
// The goroutine drains its channel even after a write error; the
// producer can always finish the batch. The first real error arrives
// on the returned error channel once the input channel closes.
func Start[T any](out io.Writer, bufSize int, encode func(*json.Encoder, T) error, isBroken func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bufio.NewWriterSize(out, 64<<10)
		enc := json.NewEncoder(bw)
		enc.SetEscapeHTML(false)

		var firstErr error
		for v := range in {
			if firstErr != nil {
				continue
			}
			if err := encode(enc, v); err != nil {
				firstErr = err
			}
		}
		if firstErr == nil {
			firstErr = bw.Flush()
		}
		if firstErr != nil && isBroken(firstErr) {
			firstErr = nil
		}
		done <- firstErr
	}()

	return in, done
}
