package analysis

import "runpulse/internal/enrich"

// OverallStats summarizes a full dataset across all activity types.
type OverallStats struct {
	TotalActivities  int
	TotalDistanceKm  float64
	TotalElapsedHrs  float64
	TotalMovingHrs   float64
	AvgEfficiency    *float64 // nil when no record had a computable ratio
	TotalElevationM  float64
	ActivitiesWithHR int
	TotalKudos       int
	TypeCounts       map[string]int
}

// Overall computes summary statistics over the whole dataset.
func Overall(ds enrich.Dataset) OverallStats {
	s := OverallStats{
		TotalActivities: len(ds),
		TypeCounts:      make(map[string]int),
	}

	var effSum float64
	var effCount int
	for _, a := range ds {
		s.TotalDistanceKm += a.DistanceKm
		s.TotalElapsedHrs += a.ElapsedTimeMin / 60
		s.TotalMovingHrs += a.MovingTimeMin / 60
		s.TotalElevationM += a.ElevationGainM()
		s.TotalKudos += a.KudosCount
		s.TypeCounts[a.Type]++
		if a.HasHRData {
			s.ActivitiesWithHR++
		}
		if a.EfficiencyRatio != nil {
			effSum += *a.EfficiencyRatio
			effCount++
		}
	}

	if effCount > 0 {
		avg := effSum / float64(effCount)
		s.AvgEfficiency = &avg
	}

	return s
}

// BestEfforts points at the standout records of a window. Fields are
// nil when the window has no qualifying record.
type BestEfforts struct {
	FastestPace   *enrich.Activity
	LongestRun    *enrich.Activity
	MostElevation *enrich.Activity
}

// Best scans a window for its fastest, longest, and hilliest runs.
func Best(window enrich.Dataset) BestEfforts {
	var best BestEfforts
	for i := range window {
		a := &window[i]
		if a.PaceMoving != nil &&
			(best.FastestPace == nil || *a.PaceMoving < *best.FastestPace.PaceMoving) {
			best.FastestPace = a
		}
		if best.LongestRun == nil || a.DistanceKm > best.LongestRun.DistanceKm {
			best.LongestRun = a
		}
		if best.MostElevation == nil || a.ElevationGainM() > best.MostElevation.ElevationGainM() {
			best.MostElevation = a
		}
	}
	return best
}

// PaceSpread describes the distribution of available moving paces in a
// window: fastest (min), interpolated median, and slowest (max).
type PaceSpread struct {
	Fastest float64
	Median  float64
	Slowest float64
	Count   int
}

// SpreadOfPaces computes the pace distribution of a window, skipping
// records with an unavailable pace. Returns nil when no pace is
// available.
func SpreadOfPaces(window enrich.Dataset) *PaceSpread {
	paces := MovingPaces(window)
	if len(paces) == 0 {
		return nil
	}

	fastest, _ := Percentile(paces, 0)
	median, _ := Percentile(paces, 50)
	slowest, _ := Percentile(paces, 100)

	return &PaceSpread{
		Fastest: fastest,
		Median:  median,
		Slowest: slowest,
		Count:   len(paces),
	}
}
