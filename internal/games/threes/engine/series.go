package engine

import "math"

// Series is the progression of tile values. The first two terms are the
// seed values; every later term is (u0+u1) * ratio^(n-2).
type Series struct {
	u0    int
	u1    int
	ratio int
}

// seedTerms is the number of terms given explicitly rather than derived.
const seedTerms = 2

// NewSeries creates a series from its two seed terms and its ratio.
func NewSeries(u0, u1, ratio int) Series {
	return Series{u0: u0, u1: u1, ratio: ratio}
}

// DefaultSeries is the Threes progression 1, 2, 3, 6, 12, 24...
func DefaultSeries() Series {
	return NewSeries(1, 2, 2)
}

// Un returns the value at the given rank.
func (s Series) Un(rank int) int {
	switch rank {
	case 0:
		return s.u0
	case 1:
		return s.u1
	}
	return (s.u0 + s.u1) * ipow(s.ratio, rank-seedTerms)
}

// N returns the rank of value. Only values produced by Un are guaranteed
// a correct answer; anything below u0+u1 that is not a seed maps to 0.
func (s Series) N(value int) int {
	switch value {
	case s.u0:
		return 0
	case s.u1:
		return 1
	}

	base := s.u0 + s.u1
	if value < base || s.ratio < 2 {
		return 0
	}

	k := int(math.Floor(math.Log(float64(value)/float64(base)) / math.Log(float64(s.ratio))))
	if k < 0 {
		k = 0
	}
	// The float estimate can land one off at exact powers of the ratio.
	for k > 0 && base*ipow(s.ratio, k) > value {
		k--
	}
	for base*ipow(s.ratio, k+1) <= value {
		k++
	}
	return k + seedTerms
}

// ipow returns base^exp for exp >= 0.
func ipow(base, exp int) int {
	result := 1
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}
