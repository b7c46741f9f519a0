package dataprocessing

import "math"

// scoreBand is one linear segment of the rank→score schedule:
// score = base - (rank - pivot) * slope, optionally floored at minimum.
type scoreBand struct {
	upper   int // inclusive upper rank
	base    float64
	pivot   int
	slope   float64
	floored bool
	minimum float64
}

// scoreBands approximates the typical score spread of a global university
// ranking. Order matters: the first band whose upper bound covers the rank wins.
var scoreBands = []scoreBand{
	{upper: 10, base: 95, pivot: 10, slope: 0.5},
	{upper: 50, base: 90, pivot: 10, slope: 0.3},
	{upper: 100, base: 75, pivot: 50, slope: 0.4},
	{upper: 200, base: 55, pivot: 100, slope: 0.3},
	{upper: 500, base: 25, pivot: 200, slope: 0.1},
	{upper: 1000, base: 10, pivot: 500, slope: 0.02},
	{upper: math.MaxInt, base: 5, pivot: 1000, slope: 0.005, floored: true, minimum: 1},
}

// EstimateScore maps a numeric rank to a plausible score.
// The result is not clamped to [0, 100]; only ranks above 1000 are floored at 1.
func EstimateScore(rank int) float64 {
	for _, band := range scoreBands {
		if rank <= band.upper {
			return band.estimate(rank)
		}
	}
	// unreachable: the last band covers every int
	return scoreBands[len(scoreBands)-1].estimate(rank)
}

func (b scoreBand) estimate(rank int) float64 {
	score := b.base - float64(rank-b.pivot)*b.slope
	if b.floored {
		score = math.Max(b.minimum, score)
	}
	return score
}

// EstimateFromRanking parses a ranking cell and estimates its score.
// ok is false when the cell has no numeric rank.
func EstimateFromRanking(cell string) (score float64, ok bool) {
	rank, ok := ParseRanking(cell)
	if !ok {
		return 0, false
	}
	return EstimateScore(rank), true
}
