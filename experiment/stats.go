package experiment

import (
	"errors"
	"math"
	"sort"
)

// ErrEmptyInput is reported when summary statistics are requested on an empty
// reaction-time sequence.
var ErrEmptyInput = errors.New("cannot summarize empty reaction-time sequence")

// A Summary holds the summary statistics of one reaction-time distribution.
type Summary struct {
	Mean   float64
	Median float64
	StdDev float64
}

// Summarize computes the mean, median, and unbiased sample standard deviation
// of a reaction-time sequence. A single observation has a standard deviation
// of 0.
func Summarize(rts []int64) (Summary, error) {
	if len(rts) == 0 {
		return Summary{}, ErrEmptyInput
	}

	n := float64(len(rts))

	sum := 0.0
	for _, rt := range rts {
		sum += float64(rt)
	}
	mean := sum / n

	sqDiffSum := 0.0
	for _, rt := range rts {
		diff := float64(rt) - mean
		sqDiffSum += diff * diff
	}

	stdDev := 0.0
	if len(rts) > 1 {
		stdDev = math.Sqrt(sqDiffSum / (n - 1))
	}

	return Summary{
		Mean:   mean,
		Median: median(rts),
		StdDev: stdDev,
	}, nil
}

func median(rts []int64) float64 {
	sorted := make([]int64, len(rts))
	copy(sorted, rts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}

	return float64(sorted[mid-1]+sorted[mid]) / 2
}
