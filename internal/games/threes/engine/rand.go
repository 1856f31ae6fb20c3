// Package engine implements the Threes grid: line shifting and merging,
// weighted board generation, biased next-tile selection, scoring and
// single-step undo.
//
// The engine holds no random state of its own. Every operation that needs
// randomness takes a Rand from the caller, so a fixed seed replays a game
// exactly.
package engine

// Rand is the subset of *math/rand.Rand the engine draws from.
type Rand interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
	// Float64 returns a uniform float64 in [0.0, 1.0).
	Float64() float64
}
