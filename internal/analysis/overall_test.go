package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runpulse/internal/enrich"
)

func TestOverall(t *testing.T) {
	hr := runOn(date(2025, 6, 1), 10, 50, 100)
	hr.HasHRData = true
	hr.KudosCount = 3
	eff1 := 0.9
	hr.EfficiencyRatio = &eff1
	hr.ElapsedTimeMin = 55

	ride := runOn(date(2025, 6, 2), 30, 80, 400)
	ride.Type = "Ride"
	ride.KudosCount = 5
	eff2 := 0.7
	ride.EfficiencyRatio = &eff2
	ride.ElapsedTimeMin = 100

	s := Overall(enrich.Dataset{hr, ride})

	assert.Equal(t, 2, s.TotalActivities)
	assert.InDelta(t, 40, s.TotalDistanceKm, 1e-9)
	assert.InDelta(t, 155.0/60, s.TotalElapsedHrs, 1e-9)
	assert.InDelta(t, 130.0/60, s.TotalMovingHrs, 1e-9)
	assert.InDelta(t, 500, s.TotalElevationM, 1e-9)
	assert.Equal(t, 1, s.ActivitiesWithHR)
	assert.Equal(t, 8, s.TotalKudos)
	assert.Equal(t, map[string]int{"Run": 1, "Ride": 1}, s.TypeCounts)
	require.NotNil(t, s.AvgEfficiency)
	assert.InDelta(t, 0.8, *s.AvgEfficiency, 1e-9)
}

func TestOverallNoEfficiency(t *testing.T) {
	s := Overall(enrich.Dataset{runOn(date(2025, 6, 1), 5, 25, 0)})
	assert.Nil(t, s.AvgEfficiency)
}

func TestBest(t *testing.T) {
	window := enrich.Dataset{
		runOn(date(2025, 6, 1), 5, 24, 50),   // pace 4.8, fastest
		runOn(date(2025, 6, 2), 21, 120, 80), // longest
		runOn(date(2025, 6, 3), 8, 45, 600),  // most elevation
	}

	best := Best(window)
	require.NotNil(t, best.FastestPace)
	assert.InDelta(t, 4.8, *best.FastestPace.PaceMoving, 1e-9)
	require.NotNil(t, best.LongestRun)
	assert.InDelta(t, 21, best.LongestRun.DistanceKm, 1e-9)
	require.NotNil(t, best.MostElevation)
	assert.InDelta(t, 600, best.MostElevation.ElevationGainM(), 1e-9)
}

func TestBestEmptyWindow(t *testing.T) {
	best := Best(nil)
	assert.Nil(t, best.FastestPace)
	assert.Nil(t, best.LongestRun)
	assert.Nil(t, best.MostElevation)
}

func TestBestSkipsUnavailablePace(t *testing.T) {
	window := enrich.Dataset{
		runOn(date(2025, 6, 1), 0, 30, 0), // no pace
		runOn(date(2025, 6, 2), 5, 30, 0), // pace 6.0
	}
	best := Best(window)
	require.NotNil(t, best.FastestPace)
	assert.InDelta(t, 6.0, *best.FastestPace.PaceMoving, 1e-9)
}

func TestSpreadOfPaces(t *testing.T) {
	window := enrich.Dataset{
		runOn(date(2025, 6, 1), 5, 20, 0), // 4.0
		runOn(date(2025, 6, 2), 5, 25, 0), // 5.0
		runOn(date(2025, 6, 3), 5, 30, 0), // 6.0
	}

	spread := SpreadOfPaces(window)
	require.NotNil(t, spread)
	assert.InDelta(t, 4.0, spread.Fastest, 1e-9)
	assert.InDelta(t, 5.0, spread.Median, 1e-9)
	assert.InDelta(t, 6.0, spread.Slowest, 1e-9)
	assert.Equal(t, 3, spread.Count)
}

func TestSpreadOfPacesNoneAvailable(t *testing.T) {
	window := enrich.Dataset{runOn(date(2025, 6, 1), 0, 30, 0)}
	assert.Nil(t, SpreadOfPaces(window))
}
