package engine

import "math/rand"

// scriptedRand replays fixed answers; Intn wraps its answer into range.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (s *scriptedRand) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func transpose(g Grid) Grid {
	var result Grid
	for y := range Size {
		for x := range Size {
			result[y][x] = g[x][y]
		}
	}
	return result
}
