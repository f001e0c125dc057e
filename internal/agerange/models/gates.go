package models

import (
	"strconv"
	"strings"
)

// AgeGates describes the content-access tiers a caller cares about, for
// example 13/15/18. The thresholds are hints for the provider: no ordering or
// bounds are enforced here.
type AgeGates struct {
	Threshold1 int
	Threshold2 *int
	Threshold3 *int
}

// Gate returns a pointer to v, for filling the optional thresholds.
func Gate(v int) *int {
	return &v
}

// Values returns the supplied thresholds in declaration order.
func (g AgeGates) Values() []int {
	values := []int{g.Threshold1}
	if g.Threshold2 != nil {
		values = append(values, *g.Threshold2)
	}
	if g.Threshold3 != nil {
		values = append(values, *g.Threshold3)
	}
	return values
}

func (g AgeGates) String() string {
	values := g.Values()
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
