// internal/common/strings.go
package common

import "strings"

// Unique trims and de-duplicates strings, preserving first-seen order.
// Paths are case-sensitive, so no folding happens here.
func Unique(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		t := strings.TrimSpace(s)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
