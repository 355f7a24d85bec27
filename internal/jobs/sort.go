// internal/jobs/sort.go
package jobs

import "sort"

// LessResult orders results for deterministic output: job ID first,
// then input position (distinct IDs make the second key moot, but it
// keeps the order total when IDs repeat across files).
func LessResult(a, b Result) bool {
	if a.JobID != b.JobID {
		return a.JobID < b.JobID
	}
	if a.Index != b.Index {
		return a.Index < b.Index
	}
	return a.Method < b.Method
}

// SortResults sorts in place using LessResult.
func SortResults(rs []Result) {
	sort.Slice(rs, func(i, j int) bool { return LessResult(rs[i], rs[j]) })
}
