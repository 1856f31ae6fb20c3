package engine

// DefaultBias is the geometric p used for next-tile ranks.
const DefaultBias = 0.5

// Tile is the value waiting to enter the board on the next productive move.
type Tile struct {
	value        int
	series       Series
	distribution Distribution
}

// NewTile creates a tile holding one of the two seed values.
func NewTile(r Rand) Tile {
	return NewBiasedTile(r, DefaultBias)
}

// NewBiasedTile creates a tile whose later values are drawn with the given
// geometric bias. Higher bias favours low values.
func NewBiasedTile(r Rand, bias float64) Tile {
	series := DefaultSeries()
	return Tile{
		value:        series.Un(r.Intn(seedTerms)),
		series:       series,
		distribution: NewDistribution(bias),
	}
}

// Current returns the pending value.
func (t Tile) Current() int {
	return t.value
}

// Next replaces the pending value with a new one no higher than gridMax's
// rank and returns it.
func (t *Tile) Next(r Rand, gridMax int) int {
	t.value = t.series.Un(t.rank(r, gridMax))
	return t.value
}

func (t Tile) rank(r Rand, gridMax int) int {
	maxRank := t.series.N(gridMax)
	if maxRank < seedTerms {
		return r.Intn(seedTerms)
	}
	// Distribution samples start at 1, ranks at 0.
	return min(t.distribution.Sample(r)-1, maxRank)
}
