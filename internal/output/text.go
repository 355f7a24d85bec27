// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"quadcalc/internal/jobs"
)

// WriteTextWithRenderer prints one row per result. When render is
// non-nil its block is written above the row; renderers emit
// '#'-prefixed lines, so the stream stays a valid TSV either way.
func WriteTextWithRenderer(w io.Writer, list []jobs.Result, header bool, render func(jobs.Result) string) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if render != nil {
			if _, err := io.WriteString(w, render(r)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, FormatResultTSV(r)); err != nil {
			return err
		}
	}
	return nil
}

// WriteText prints plain rows with an optional header.
func WriteText(w io.Writer, list []jobs.Result, header bool) error {
	return WriteTextWithRenderer(w, list, header, nil)
}

// StreamTextWithRenderer consumes results from a channel as they
// arrive, for output that should not wait on the whole batch. After a
// write error it keeps draining so the producer never blocks, and
// returns the first error once the channel closes.
func StreamTextWithRenderer(w io.Writer, in <-chan jobs.Result, header bool, render func(jobs.Result) string) error {
	var firstErr error
	if header {
		_, firstErr = fmt.Fprintln(w, TSVHeader)
	}
	for r := range in {
		if firstErr != nil {
			continue
		}
		if render != nil {
			if _, err := io.WriteString(w, render(r)); err != nil {
				firstErr = err
				continue
			}
		}
		if _, err := fmt.Fprintln(w, FormatResultTSV(r)); err != nil {
			firstErr = err
		}
	}
	return firstErr
}
