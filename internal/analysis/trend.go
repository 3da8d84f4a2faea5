package analysis

import "runpulse/internal/enrich"

// Direction describes how pace is moving across a window. Lower pace is
// faster, so a negative delta means improvement.
type Direction string

const (
	Improving Direction = "improving"
	Slowing   Direction = "slowing"
)

// Trend holds second-half-minus-first-half mean deltas for a window.
type Trend struct {
	PaceDelta      *float64 // min/km, nil when either half has no available pace
	PaceDirection  Direction
	DistanceDelta  float64 // km per run
	ElevationDelta float64 // m per run

	FirstHalfCount  int
	SecondHalfCount int
}

// AnalyzeTrend splits a chronologically ordered window at index
// len/2 and compares the halves. On an odd count the first half gets
// the smaller share. Returns nil for fewer than two records: that is
// "insufficient data", not an error.
func AnalyzeTrend(window enrich.Dataset) *Trend {
	if len(window) < 2 {
		return nil
	}

	mid := len(window) / 2
	first := window[:mid]
	second := window[mid:]

	t := &Trend{
		FirstHalfCount:  len(first),
		SecondHalfCount: len(second),
	}

	firstDist, _ := Mean(distances(first))
	secondDist, _ := Mean(distances(second))
	t.DistanceDelta = secondDist - firstDist

	firstElev, _ := Mean(elevations(first))
	secondElev, _ := Mean(elevations(second))
	t.ElevationDelta = secondElev - firstElev

	firstPace, ok1 := Mean(MovingPaces(first))
	secondPace, ok2 := Mean(MovingPaces(second))
	if ok1 && ok2 {
		delta := secondPace - firstPace
		t.PaceDelta = &delta
		if delta < 0 {
			t.PaceDirection = Improving
		} else {
			t.PaceDirection = Slowing
		}
	}

	return t
}

func distances(ds enrich.Dataset) []float64 {
	out := make([]float64, len(ds))
	for i, a := range ds {
		out[i] = a.DistanceKm
	}
	return out
}

func elevations(ds enrich.Dataset) []float64 {
	out := make([]float64, len(ds))
	for i, a := range ds {
		out[i] = a.ElevationGainM()
	}
	return out
}
