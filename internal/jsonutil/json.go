// internal/jsonutil/json.go
// Package jsonutil is the one place that decides how JSON documents
// look on disk: two-space indent, trailing newline, no HTML escaping
// (expressions like "x < 1" should read back as written).
package jsonutil

import (
	"encoding/json"
	"io"
)

// EncodePretty writes v as an indented document to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
