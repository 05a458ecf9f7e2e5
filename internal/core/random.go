package core

import "math/rand"

// Shuffle returns 1..n in a uniformly random order (Fisher-Yates).
func Shuffle(rng *rand.Rand, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// PickDistinct returns k distinct values from [0, n) in random order.
// k is clamped to [0, n].
func PickDistinct(rng *rand.Rand, n, k int) []int {
	k = Clamp(k, 0, n)
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	// partial Fisher-Yates: only the first k slots are needed
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// IntRange returns a uniform value in [lo, hi). When hi <= lo it returns lo.
func IntRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo)
}
