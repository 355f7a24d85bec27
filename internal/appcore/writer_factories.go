// internal/appcore/writer_factories.go
package appcore

import (
	"io"

	"quadcalc/internal/jobs"
	"quadcalc/internal/pretty"
	"quadcalc/internal/writers"
)

// ResultWriterFactory adapts the writers package to the WriterFactory
// seam both tools feed.
type ResultWriterFactory struct {
	Format     string
	Sort       bool
	Header     bool
	Pretty     bool
	PrettyOpts pretty.Options
}

func NewResultWriterFactory(format string, sort, header, prettyMode bool) ResultWriterFactory {
	return ResultWriterFactory{
		Format:     format,
		Sort:       sort,
		Header:     header,
		Pretty:     prettyMode,
		PrettyOpts: pretty.DefaultOptions,
	}
}

func (w ResultWriterFactory) Start(out io.Writer, bufSize int) (chan<- jobs.Result, <-chan error) {
	return writers.StartResultWriterWithPrettyOptions(out, w.Format, w.Sort, w.Header, w.Pretty, w.PrettyOpts, bufSize)
}
