// internal/writers/result.go
package writers

import (
	"fmt"
	"io"

	"quadcalc/internal/jobs"
	"quadcalc/internal/output"
	"quadcalc/internal/pretty"
)

func init() {
	Register(output.FormatText, startText)
	Register(output.FormatJSON, startJSON)
}

// StartResultWriter spins up a writer goroutine for the given format.
// (Backward-compatible wrapper using pretty.DefaultOptions.)
func StartResultWriter(out io.Writer, format string, sort, header, prettyMode bool, bufSize int) (chan<- jobs.Result, <-chan error) {
	return StartResultWriterWithPrettyOptions(out, format, sort, header, prettyMode, pretty.DefaultOptions, bufSize)
}

// StartResultWriterWithPrettyOptions allows customizing the pretty
// renderer. An unregistered format still returns live channels; the
// goroutine drains them and reports the error so producers never block.
func StartResultWriterWithPrettyOptions(out io.Writer, format string, sort, header, prettyMode bool, popt pretty.Options, bufSize int) (chan<- jobs.Result, <-chan error) {
	opt := StartOptions{
		Sort:       sort,
		Header:     header,
		Pretty:     prettyMode,
		PrettyOpts: popt,
		BufSize:    bufSize,
	}
	fn, ok := Lookup(format)
	if !ok {
		in := make(chan jobs.Result, 1)
		errCh := make(chan error, 1)
		errCh <- fmt.Errorf("unsupported output %q", format)
		go func() {
			for range in {
			}
		}()
		return in, errCh
	}
	return fn(out, opt)
}

func renderer(opt StartOptions) func(jobs.Result) string {
	if !opt.Pretty {
		return nil
	}
	return func(r jobs.Result) string {
		return pretty.RenderResultWithOptions(r, opt.PrettyOpts)
	}
}

func startText(out io.Writer, opt StartOptions) (chan<- jobs.Result, <-chan error) {
	if opt.BufSize <= 0 {
		opt.BufSize = 64
	}
	in := make(chan jobs.Result, opt.BufSize)
	errCh := make(chan error, 1)

	go func() {
		if opt.Sort {
			var buf []jobs.Result
			for r := range in {
				buf = append(buf, r)
			}
			jobs.SortResults(buf)
			errCh <- output.WriteTextWithRenderer(out, buf, opt.Header, renderer(opt))
			return
		}
		errCh <- output.StreamTextWithRenderer(out, in, opt.Header, renderer(opt))
	}()

	return in, errCh
}

func startJSON(out io.Writer, opt StartOptions) (chan<- jobs.Result, <-chan error) {
	if opt.BufSize <= 0 {
		opt.BufSize = 64
	}
	in := make(chan jobs.Result, opt.BufSize)
	errCh := make(chan error, 1)

	go func() {
		var buf []jobs.Result
		for r := range in {
			buf = append(buf, r)
		}
		if opt.Sort {
			jobs.SortResults(buf)
		}
		errCh <- output.WriteJSON(out, buf)
	}()

	return in, errCh
}
