package analysis

import (
	"math"
	"sort"
	"time"

	"runpulse/internal/enrich"
)

// Mean returns the arithmetic mean of xs. ok is false for an empty slice.
func Mean(xs []float64) (mean float64, ok bool) {
	if len(xs) == 0 {
		return 0, false
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs)), true
}

// StdDev returns the sample standard deviation of xs. At least two
// values are required.
func StdDev(xs []float64) (sd float64, ok bool) {
	if len(xs) < 2 {
		return 0, false
	}
	mean, _ := Mean(xs)
	var sumSq float64
	for _, x := range xs {
		d := x - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(xs)-1)), true
}

// Percentile returns the p-th percentile of xs (0..100) with linear
// interpolation between ranks.
func Percentile(xs []float64, p float64) (value float64, ok bool) {
	if len(xs) == 0 {
		return 0, false
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0], true
	}
	if p >= 100 {
		return sorted[len(sorted)-1], true
	}

	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo], true
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac, true
}

// MeanGapDays returns the mean gap in days between consecutive dates,
// after sorting. At least two dates are required.
func MeanGapDays(dates []time.Time) (gap float64, ok bool) {
	if len(dates) < 2 {
		return 0, false
	}
	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	var totalDays float64
	for i := 1; i < len(sorted); i++ {
		totalDays += sorted[i].Sub(sorted[i-1]).Hours() / 24
	}
	return totalDays / float64(len(sorted)-1), true
}

// MovingPaces collects the available moving-time paces of a window.
// Records with an unavailable pace are excluded, never zero-filled.
func MovingPaces(window enrich.Dataset) []float64 {
	var paces []float64
	for _, a := range window {
		if a.PaceMoving != nil {
			paces = append(paces, *a.PaceMoving)
		}
	}
	return paces
}
