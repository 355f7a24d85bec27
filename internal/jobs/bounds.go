// internal/jobs/bounds.go
package jobs

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseBound parses an integration bound: a decimal literal or an
// infinity token ("inf", "+inf", "-inf", case-insensitive, with
// "infinity" accepted too). NaN is never a valid bound.
func ParseBound(s string) (float64, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	switch t {
	case "inf", "+inf", "infinity", "+infinity":
		return math.Inf(1), nil
	case "-inf", "-infinity":
		return math.Inf(-1), nil
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsNaN(v) {
		return 0, fmt.Errorf("ParseBound: bad bound %q", s)
	}
	return v, nil
}

// FormatBound renders a bound the way job files spell it, so output
// rows can be fed back in as input.
func FormatBound(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
