// Package writers turns integration results into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (pretty blocks, JSON/JSONL).
//   • The engine stays numeric-only; the pipeline stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
//   • Formats self-register, so adding one touches no dispatch code.
package writers
