package report

import "runpulse/internal/analysis"

// ChartSeries is one plottable metric series: week labels on x, a
// per-week aggregate on y.
type ChartSeries struct {
	Labels []string
	Values []float64
}

// WeeklyDistanceSeries builds the weekly total-distance series.
func WeeklyDistanceSeries(weekly []analysis.WeeklySummary) ChartSeries {
	s := ChartSeries{
		Labels: make([]string, len(weekly)),
		Values: make([]float64, len(weekly)),
	}
	for i, w := range weekly {
		s.Labels[i] = w.Label()
		s.Values[i] = w.TotalDistanceKm
	}
	return s
}

// WeeklyPaceSeries builds the weekly mean-pace series. Weeks with no
// available pace are dropped rather than plotted as zero.
func WeeklyPaceSeries(weekly []analysis.WeeklySummary) ChartSeries {
	var s ChartSeries
	for _, w := range weekly {
		if w.AvgPace == nil {
			continue
		}
		s.Labels = append(s.Labels, w.Label())
		s.Values = append(s.Values, *w.AvgPace)
	}
	return s
}

// WeeklyElevationSeries builds the weekly total-elevation series in meters.
func WeeklyElevationSeries(weekly []analysis.WeeklySummary) ChartSeries {
	s := ChartSeries{
		Labels: make([]string, len(weekly)),
		Values: make([]float64, len(weekly)),
	}
	for i, w := range weekly {
		s.Labels[i] = w.Label()
		s.Values[i] = w.TotalElevationM
	}
	return s
}
