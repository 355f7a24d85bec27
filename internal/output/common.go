// internal/output/common.go
// Package output renders integration results: TSV rows for the text
// format, and the stable api shapes for JSON and JSONL.
package output

// Output format names accepted by --output.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Formats lists the accepted names for usage text and validation.
var Formats = []string{FormatText, FormatJSON, FormatJSONL}

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "job_id\texpr\tlower\tupper\tmethod\tvalue\tconverged\tevals\terror"
