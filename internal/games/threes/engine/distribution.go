package engine

import "math"

// Distribution samples a geometric distribution with success probability p.
type Distribution struct {
	p float64
}

// NewDistribution creates a geometric distribution. p must be in (0, 1].
func NewDistribution(p float64) Distribution {
	return Distribution{p: p}
}

// Sample returns the number of trials up to and including the first
// success, always >= 1. The tail is unbounded; callers clamp.
func (d Distribution) Sample(r Rand) int {
	if d.p >= 1 {
		return 1
	}

	// Float64 is [0, 1); flip it to (0, 1] so the log is finite.
	x := 1 - r.Float64()
	k := int(math.Ceil(math.Log(x) / math.Log(1-d.p)))
	if k < 1 {
		return 1
	}
	return k
}
