package ratio

import "fmt"

// Reduce removes excess from values in proportion to ratios and returns the
// reduced values. values itself is not modified.
//
// A ratio of zero excludes a slot. No slot loses more than maximums[i], and
// no slot drops below zero. When excess is larger than the slots can give
// up, as much as possible is removed.
func Reduce(excess int, ratios, maximums, values []int) []int {
	if len(ratios) != len(values) || len(maximums) != len(values) {
		panic(fmt.Sprintf("ratio: mismatched lengths: %d ratios, %d maximums, %d values",
			len(ratios), len(maximums), len(values)))
	}

	caps := make([]int, len(values))
	weights := make([]int, len(values))
	for i, v := range values {
		caps[i] = max(min(maximums[i], v), 0)
		if caps[i] > 0 {
			weights[i] = ratios[i]
		}
	}

	delta := Distribute(excess, weights, caps)
	result := make([]int, len(values))
	for i, v := range values {
		result[i] = v - delta[i]
	}
	return result
}
