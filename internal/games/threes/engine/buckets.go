package engine

// Buckets holds how many items of each category remain to be drawn.
type Buckets struct {
	counts []int
	total  int
}

// NewBuckets pads base up to total by incrementing uniformly chosen
// categories. The sum of base must not exceed total. base is copied.
func NewBuckets(r Rand, base []int, total int) *Buckets {
	counts := make([]int, len(base))
	copy(counts, base)

	missing := total
	for _, c := range counts {
		missing -= c
	}
	for range max(missing, 0) {
		counts[r.Intn(len(counts))]++
	}

	return &Buckets{counts: counts, total: total}
}

// Counts returns a copy of the per-category counts.
func (b *Buckets) Counts() []int {
	counts := make([]int, len(b.counts))
	copy(counts, b.counts)
	return counts
}

// Total returns the number of items Draw produces.
func (b *Buckets) Total() int {
	return b.total
}

// Draw samples total category indices without replacement. It works on a
// copy of the counts, so the Buckets can be drawn from again.
func (b *Buckets) Draw(r Rand) []int {
	remaining := b.Counts()
	drawn := make([]int, 0, b.Total())

	for len(drawn) < b.Total() {
		idx := r.Intn(len(remaining))
		if remaining[idx] == 0 {
			continue
		}
		remaining[idx]--
		drawn = append(drawn, idx)
	}
	return drawn
}
