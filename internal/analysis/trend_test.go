package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runpulse/internal/enrich"
)

func seqWindow(paces []float64) enrich.Dataset {
	window := make(enrich.Dataset, len(paces))
	for i, p := range paces {
		start := date(2025, 6, 1).AddDate(0, 0, i)
		// 10 km at pace p min/km.
		window[i] = runOn(start, 10, p*10, 0)
	}
	return window
}

func TestAnalyzeTrendInsufficientData(t *testing.T) {
	assert.Nil(t, AnalyzeTrend(nil))
	assert.Nil(t, AnalyzeTrend(seqWindow([]float64{5.0})))
}

func TestAnalyzeTrendOddSplit(t *testing.T) {
	// Seven records split 3/4 with the first half smaller.
	tr := AnalyzeTrend(seqWindow([]float64{6, 6, 6, 5, 5, 5, 5}))
	require.NotNil(t, tr)
	assert.Equal(t, 3, tr.FirstHalfCount)
	assert.Equal(t, 4, tr.SecondHalfCount)
}

func TestAnalyzeTrendImproving(t *testing.T) {
	tr := AnalyzeTrend(seqWindow([]float64{6.0, 6.0, 5.0, 5.0}))
	require.NotNil(t, tr)
	require.NotNil(t, tr.PaceDelta)
	assert.InDelta(t, -1.0, *tr.PaceDelta, 1e-9)
	assert.Equal(t, Improving, tr.PaceDirection)
}

func TestAnalyzeTrendSlowing(t *testing.T) {
	tr := AnalyzeTrend(seqWindow([]float64{5.0, 5.0, 6.0, 6.0}))
	require.NotNil(t, tr)
	require.NotNil(t, tr.PaceDelta)
	assert.InDelta(t, 1.0, *tr.PaceDelta, 1e-9)
	assert.Equal(t, Slowing, tr.PaceDirection)
}

func TestAnalyzeTrendZeroDeltaIsSlowing(t *testing.T) {
	// A flat window is not an improvement.
	tr := AnalyzeTrend(seqWindow([]float64{5.0, 5.0}))
	require.NotNil(t, tr)
	require.NotNil(t, tr.PaceDelta)
	assert.InDelta(t, 0, *tr.PaceDelta, 1e-9)
	assert.Equal(t, Slowing, tr.PaceDirection)
}

func TestAnalyzeTrendDistanceAndElevationDeltas(t *testing.T) {
	window := enrich.Dataset{
		runOn(date(2025, 6, 1), 5, 25, 100),
		runOn(date(2025, 6, 2), 5, 25, 100),
		runOn(date(2025, 6, 3), 8, 40, 300),
		runOn(date(2025, 6, 4), 8, 40, 300),
	}
	tr := AnalyzeTrend(window)
	require.NotNil(t, tr)
	assert.InDelta(t, 3, tr.DistanceDelta, 1e-9)
	assert.InDelta(t, 200, tr.ElevationDelta, 1e-9)
}

func TestAnalyzeTrendUnavailablePaceHalf(t *testing.T) {
	// Second half carries no measurable pace at all.
	window := enrich.Dataset{
		runOn(date(2025, 6, 1), 5, 25, 0),
		runOn(date(2025, 6, 2), 5, 25, 0),
		runOn(date(2025, 6, 3), 0, 30, 0),
		runOn(date(2025, 6, 4), 0, 30, 0),
	}
	tr := AnalyzeTrend(window)
	require.NotNil(t, tr)
	assert.Nil(t, tr.PaceDelta)
	assert.InDelta(t, -5, tr.DistanceDelta, 1e-9)
}

func TestAnalyzeTrendPartialPaceInHalf(t *testing.T) {
	// One missing pace inside a half shrinks that half's mean sample
	// rather than nil-ing the delta.
	window := enrich.Dataset{
		runOn(date(2025, 6, 1), 5, 30, 0), // 6.0
		runOn(date(2025, 6, 2), 0, 30, 0), // unavailable
		runOn(date(2025, 6, 3), 5, 25, 0), // 5.0
		runOn(date(2025, 6, 4), 5, 25, 0), // 5.0
	}
	tr := AnalyzeTrend(window)
	require.NotNil(t, tr)
	require.NotNil(t, tr.PaceDelta)
	assert.InDelta(t, -1.0, *tr.PaceDelta, 1e-9)
	assert.Equal(t, Improving, tr.PaceDirection)
}

func TestAnalyzeTrendUsesGivenOrder(t *testing.T) {
	// The split is positional, so callers must sort first.
	early := runOn(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC), 10, 60, 0) // 6.0
	late := runOn(time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC), 10, 50, 0)  // 5.0

	tr := AnalyzeTrend(enrich.Dataset{late, early})
	require.NotNil(t, tr)
	require.NotNil(t, tr.PaceDelta)
	assert.Equal(t, Slowing, tr.PaceDirection)
}
