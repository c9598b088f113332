package ratio

import (
	"math"
	"math/bits"
)

// MulDiv returns a*b/c and the remainder for a, b >= 0 and c > 0. The
// product is computed in 128 bits, so only the quotient has to fit in an
// int.
func MulDiv(a, b, c int) (q, r int) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	uq, ur := bits.Div64(hi, lo, uint64(c))
	return int(uq), int(ur)
}

// Fit halves every positive weight, never below 1, until the weights sum
// to no more than math.MaxInt. It returns the weights and their sum.
// Non-positive weights come back as 0 once any halving happened.
func Fit(weights []int) ([]int, int) {
	for {
		total, fits := 0, true
		for _, w := range weights {
			if w <= 0 {
				continue
			}
			if total > math.MaxInt-w {
				fits = false
				break
			}
			total += w
		}
		if fits {
			return weights, total
		}

		halved := make([]int, len(weights))
		for i, w := range weights {
			if w > 0 {
				halved[i] = max(w>>1, 1)
			}
		}
		weights = halved
	}
}
