// Package pipeline fans a batch of integration jobs out over a worker
// pool and hands results to a visit callback as they complete.
//
// Failures are per-job: a row that cannot be compiled or evaluated
// produces a Result carrying the error text, and the rest of the batch
// keeps running.
package pipeline
