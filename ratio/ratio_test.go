package ratio

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

func TestDistribute(t *testing.T) {
	tests := []struct {
		name    string
		surplus int
		weights []int
		caps    []int
		want    []int
	}{
		{name: "even split with remainder", surplus: 10, weights: []int{1, 1, 1}, want: []int{4, 3, 3}},
		{name: "exact proportions", surplus: 7, weights: []int{1, 2, 4}, want: []int{1, 2, 4}},
		{name: "largest remainder wins", surplus: 5, weights: []int{1, 2}, want: []int{2, 3}},
		{name: "zero weight excluded", surplus: 6, weights: []int{0, 3, 3}, want: []int{0, 3, 3}},
		{name: "negative weight excluded", surplus: 4, weights: []int{-2, 1}, want: []int{0, 4}},
		{name: "all weights zero", surplus: 5, weights: []int{0, 0}, want: []int{0, 0}},
		{name: "zero surplus", surplus: 0, weights: []int{1, 2}, want: []int{0, 0}},
		{name: "negative surplus", surplus: -3, weights: []int{1, 2}, want: []int{0, 0}},
		{name: "capped slot overflows to the rest", surplus: 10, weights: []int{1, 1}, caps: []int{2, 100}, want: []int{2, 8}},
		{name: "caps exhausted", surplus: 10, weights: []int{1, 1}, caps: []int{2, 3}, want: []int{2, 3}},
		{name: "zero cap", surplus: 3, weights: []int{5, 1}, caps: []int{0, 9}, want: []int{0, 3}},
		{name: "empty", surplus: 3, weights: []int{}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distribute(tt.surplus, tt.weights, tt.caps)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDistributeTiesGoToLowerIndex(t *testing.T) {
	assert.Equal(t, []int{1, 1, 0, 0}, Distribute(2, []int{1, 1, 1, 1}, nil))
	assert.Equal(t, []int{1, 0, 0}, Distribute(1, []int{3, 3, 3}, nil))
}

func TestDistributeMismatchedCapsPanics(t *testing.T) {
	assert.Panics(t, func() { Distribute(1, []int{1, 1}, []int{1}) })
}

func TestDistributeProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		n := 1 + rng.Intn(8)
		weights := make([]int, n)
		caps := make([]int, n)
		for j := range weights {
			weights[j] = rng.Intn(10)
			caps[j] = rng.Intn(40)
		}
		weights[rng.Intn(n)]++
		surplus := rng.Intn(200)

		uncapped := Distribute(surplus, weights, nil)
		require.Equal(t, surplus, sum(uncapped), "weights %v surplus %d", weights, surplus)
		for j, d := range uncapped {
			require.GreaterOrEqual(t, d, 0)
			if weights[j] == 0 {
				require.Zero(t, d)
			}
		}

		capped := Distribute(surplus, weights, caps)
		roomLeft := 0
		for j, d := range capped {
			require.GreaterOrEqual(t, d, 0)
			require.LessOrEqual(t, d, caps[j], "slot %d of %v caps %v", j, capped, caps)
			if weights[j] > 0 {
				roomLeft += caps[j] - d
			}
		}
		assigned := sum(capped)
		require.LessOrEqual(t, assigned, surplus)
		if assigned < surplus {
			require.Zero(t, roomLeft, "surplus left while slots have room: %v caps %v", capped, caps)
		}

		assert.Equal(t, uncapped, Distribute(surplus, weights, nil), "deterministic")
	}
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name     string
		excess   int
		ratios   []int
		maximums []int
		values   []int
		want     []int
	}{
		{name: "uniform", excess: 3, ratios: []int{1, 1, 1}, maximums: []int{10, 10, 10}, values: []int{10, 10, 10}, want: []int{9, 9, 9}},
		{name: "excluded slot untouched", excess: 4, ratios: []int{1, 0, 1}, maximums: []int{10, 10, 10}, values: []int{5, 8, 5}, want: []int{3, 8, 3}},
		{name: "limited by maximums", excess: 10, ratios: []int{1, 1}, maximums: []int{2, 2}, values: []int{5, 5}, want: []int{3, 3}},
		{name: "never below zero", excess: 5, ratios: []int{1, 1}, maximums: []int{10, 10}, values: []int{1, 10}, want: []int{0, 6}},
		{name: "zero excess", excess: 0, ratios: []int{1, 1}, maximums: []int{4, 4}, values: []int{4, 4}, want: []int{4, 4}},
		{name: "no eligible slots", excess: 3, ratios: []int{0, 0}, maximums: []int{4, 4}, values: []int{4, 4}, want: []int{4, 4}},
		{name: "remainder to lower index", excess: 1, ratios: []int{1, 1}, maximums: []int{5, 5}, values: []int{5, 5}, want: []int{4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := append([]int(nil), tt.values...)
			got := Reduce(tt.excess, tt.ratios, tt.maximums, tt.values)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, values, tt.values, "input must not be modified")
		})
	}
}

func TestReduceMismatchedLengthsPanics(t *testing.T) {
	assert.Panics(t, func() { Reduce(1, []int{1}, []int{1, 1}, []int{1, 1}) })
}

func TestReduceProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		n := 1 + rng.Intn(8)
		ratios := make([]int, n)
		maximums := make([]int, n)
		values := make([]int, n)
		reducible := 0
		for j := range values {
			values[j] = rng.Intn(50)
			ratios[j] = 1 + rng.Intn(3)
			maximums[j] = rng.Intn(values[j] + 1)
			reducible += maximums[j]
		}
		excess := 0
		if reducible > 0 {
			excess = rng.Intn(reducible + 1)
		}

		got := Reduce(excess, ratios, maximums, values)
		require.Equal(t, sum(values)-excess, sum(got), "values %v maximums %v excess %d", values, maximums, excess)
		for j, v := range got {
			require.GreaterOrEqual(t, v, 0)
			require.GreaterOrEqual(t, v, values[j]-maximums[j])
			require.LessOrEqual(t, v, values[j])
		}
	}
}

func TestMulDiv(t *testing.T) {
	q, r := MulDiv(7, 3, 4)
	assert.Equal(t, 5, q)
	assert.Equal(t, 1, r)

	// 80 * MaxInt does not fit in an int, the quotient does.
	q, r = MulDiv(80, math.MaxInt, math.MaxInt)
	assert.Equal(t, 80, q)
	assert.Equal(t, 0, r)

	q, r = MulDiv(math.MaxInt, math.MaxInt/2, math.MaxInt)
	assert.Equal(t, math.MaxInt/2, q)
	assert.Equal(t, 0, r)
}

func TestFit(t *testing.T) {
	weights, total := Fit([]int{1, 2, -3})
	assert.Equal(t, []int{1, 2, -3}, weights, "weights that fit are returned as is")
	assert.Equal(t, 3, total)

	weights, total = Fit([]int{math.MaxInt, math.MaxInt, 1, 0})
	assert.Equal(t, []int{math.MaxInt >> 1, math.MaxInt >> 1, 1, 0}, weights)
	assert.Equal(t, math.MaxInt, total)

	huge := make([]int, 8)
	for i := range huge {
		huge[i] = math.MaxInt
	}
	weights, total = Fit(huge)
	assert.Positive(t, total)
	assert.Equal(t, weights[0], weights[7], "halving keeps the proportions")
}

func TestDistributeHugeValues(t *testing.T) {
	assert.Equal(t, []int{5, 5}, Distribute(10, []int{math.MaxInt, math.MaxInt}, nil))
	assert.Equal(t, []int{80, 0}, Distribute(80, []int{math.MaxInt / 4, 1}, nil))

	got := Distribute(math.MaxInt, []int{1, 1, 1}, []int{math.MaxInt, 2, math.MaxInt})
	assert.Equal(t, 2, got[1])
	assert.Equal(t, math.MaxInt, got[0]+got[1]+got[2], "every unit is placed")

	reduced := Reduce(math.MaxInt-1, []int{1, 1}, []int{math.MaxInt, math.MaxInt}, []int{math.MaxInt / 2, math.MaxInt / 2})
	for _, v := range reduced {
		assert.GreaterOrEqual(t, v, 0)
	}
}
