// Package ratio splits integer amounts across weighted slots.
//
// All arithmetic is integer: each slot first receives the floor of its
// proportional share, and the units left over go one at a time to the slots
// with the largest remainders. Ties go to the lower index, so results are
// deterministic for a given input.
package ratio

import (
	"fmt"
	"sort"
)

// share records the fractional part of a slot's ideal allocation, scaled by
// the total weight of the round.
type share struct {
	index     int
	remainder int
}

// Distribute splits surplus across slots in proportion to weights and
// returns the increment for each slot.
//
// caps limits how much each slot may receive; a nil caps slice means no
// limit. Slots with a non-positive weight receive nothing. Units a capped
// slot cannot take are offered to the others, and when every slot is full
// the rest of the surplus is left unassigned, so the increments may sum to
// less than surplus. With no caps and a positive total weight they sum to
// exactly surplus.
func Distribute(surplus int, weights []int, caps []int) []int {
	if caps != nil && len(caps) != len(weights) {
		panic(fmt.Sprintf("ratio: %d caps for %d weights", len(caps), len(weights)))
	}

	weights, _ = Fit(weights)
	delta := make([]int, len(weights))
	room := func(i int) int {
		if caps == nil {
			return surplus
		}
		return caps[i] - delta[i]
	}

	remaining := surplus
	for remaining > 0 {
		var active []int
		total := 0
		for i, w := range weights {
			if w > 0 && room(i) > 0 {
				active = append(active, i)
				total += w
			}
		}
		if len(active) == 0 {
			break
		}

		var shares []share
		assigned := 0
		for _, i := range active {
			whole, rem := MulDiv(remaining, weights[i], total)
			if limit := room(i); whole >= limit {
				whole, rem = limit, 0
			}
			delta[i] += whole
			assigned += whole
			if rem > 0 {
				shares = append(shares, share{index: i, remainder: rem})
			}
		}
		remaining -= assigned

		sort.SliceStable(shares, func(a, b int) bool {
			return shares[a].remainder > shares[b].remainder
		})
		for _, s := range shares {
			if remaining == 0 {
				break
			}
			delta[s.index]++
			remaining--
		}
	}

	return delta
}
