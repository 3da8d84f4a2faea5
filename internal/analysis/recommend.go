package analysis

import (
	"fmt"
	"time"

	"runpulse/internal/enrich"
)

// WindowStats summarizes a training window for the recommendation
// rules. Weekly averages divide by the requested window length, not by
// the number of weeks that happened to contain runs.
type WindowStats struct {
	AvgWeeklyDistanceKm float64
	AvgRunsPerWeek      float64
	AvgWeeklyElevationM float64
	RunsPerDay          float64

	PaceStdDev         *float64 // min/km, nil with fewer than two available paces
	AvgDaysBetweenRuns *float64 // nil with fewer than two runs
}

// NewWindowStats computes WindowStats for a window over the given
// number of weeks.
func NewWindowStats(window enrich.Dataset, weeks int) WindowStats {
	if weeks < 1 {
		weeks = 1
	}

	s := WindowStats{
		AvgRunsPerWeek: float64(len(window)) / float64(weeks),
		RunsPerDay:     float64(len(window)) / float64(weeks*7),
	}
	for _, a := range window {
		s.AvgWeeklyDistanceKm += a.DistanceKm
		s.AvgWeeklyElevationM += a.ElevationGainM()
	}
	s.AvgWeeklyDistanceKm /= float64(weeks)
	s.AvgWeeklyElevationM /= float64(weeks)

	if sd, ok := StdDev(MovingPaces(window)); ok {
		s.PaceStdDev = &sd
	}
	if gap, ok := MeanGapDays(startDates(window)); ok {
		s.AvgDaysBetweenRuns = &gap
	}

	return s
}

// Recommendations evaluates the threshold rules over a window summary
// and returns guidance lines in a fixed category order. Each category
// contributes at most one line; the first matching band wins, and
// boundary values fall to the lower band exactly as the comparisons
// read. An empty list is valid output.
func Recommendations(s WindowStats) []string {
	var recs []string

	switch {
	case s.AvgWeeklyDistanceKm < 20:
		recs = append(recs, fmt.Sprintf("Maintain or gradually increase to %.0f km/week", s.AvgWeeklyDistanceKm+5))
	case s.AvgWeeklyDistanceKm < 40:
		recs = append(recs, "Good volume! Consider adding speed work")
	default:
		recs = append(recs, "High volume! Ensure proper recovery")
	}

	switch {
	case s.AvgRunsPerWeek < 3:
		recs = append(recs, "Aim for 3-4 runs per week")
	case s.AvgRunsPerWeek < 5:
		recs = append(recs, "Good frequency! Maintain consistency")
	default:
		recs = append(recs, "Consider adding cross-training or rest days")
	}

	// Weekly elevation in [500,1500] m deliberately emits nothing.
	switch {
	case s.AvgWeeklyElevationM < 500:
		recs = append(recs, fmt.Sprintf("Consider adding some hill work (%.0fm/week)", s.AvgWeeklyElevationM))
	case s.AvgWeeklyElevationM > 1500:
		recs = append(recs, fmt.Sprintf("Good hill training! (%.0fm/week)", s.AvgWeeklyElevationM))
	}

	if s.PaceStdDev != nil {
		if *s.PaceStdDev < 0.5 {
			recs = append(recs, "Add pace variety: try intervals or tempo runs")
		} else {
			recs = append(recs, "Good pace variety!")
		}
	}

	if s.AvgDaysBetweenRuns != nil {
		switch gap := *s.AvgDaysBetweenRuns; {
		case gap <= 2:
			recs = append(recs, "Excellent consistency!")
		case gap <= 4:
			recs = append(recs, "Good consistency, could be more regular")
		default:
			recs = append(recs, "Consider running more frequently")
		}
	}

	return recs
}

func startDates(window enrich.Dataset) []time.Time {
	dates := make([]time.Time, len(window))
	for i, a := range window {
		dates[i] = a.StartDate
	}
	return dates
}
