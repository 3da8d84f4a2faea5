package report

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"runpulse/internal/analysis"
)

const rule = "============================================================"

// Render produces the full text report for one analysis window: header,
// weekly table, trends, fitness snapshot, best performances, pace
// distribution, consistency, and recommendations.
func Render(d *Data) string {
	var b strings.Builder

	if d.Empty() {
		fmt.Fprintf(&b, "No %s activities found in the last %d weeks!\n", d.SportType, d.Weeks)
		// Other activity types may still be cached; show the totals.
		if d.Overall.TotalActivities > 0 {
			b.WriteString("\nOVERALL STATISTICS (ALL ACTIVITIES):\n")
			b.WriteString(OverallSummary(d.Overall))
		}
		return b.String()
	}

	first, last, _ := d.Window.DateSpan()

	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "LAST %d WEEKS %s ANALYSIS\n", d.Weeks, strings.ToUpper(d.SportType))
	fmt.Fprintf(&b, "Activities: %d\n", len(d.Window))
	fmt.Fprintf(&b, "Date Range: %s to %s\n", first.Format("2006-01-02"), last.Format("2006-01-02"))
	b.WriteString(rule + "\n")

	b.WriteString("\nWEEKLY SUMMARY:\n")
	b.WriteString(WeeklyTable(d.Weekly))

	b.WriteString("\nRECENT TRENDS:\n")
	b.WriteString(TrendSummary(d))

	b.WriteString("\nCURRENT FITNESS SNAPSHOT:\n")
	b.WriteString(fitnessSnapshot(d))

	b.WriteString("\nBEST RECENT PERFORMANCES:\n")
	b.WriteString(bestPerformances(d))

	if d.Paces != nil {
		b.WriteString("\nPACE DISTRIBUTION:\n")
		fmt.Fprintf(&b, "Fastest: %s min/km\n", FormatPaceValue(d.Paces.Fastest))
		fmt.Fprintf(&b, "Slowest: %s min/km\n", FormatPaceValue(d.Paces.Slowest))
		fmt.Fprintf(&b, "Median: %s min/km\n", FormatPaceValue(d.Paces.Median))
	}

	b.WriteString("\nRECENT CONSISTENCY:\n")
	if d.Stats.AvgDaysBetweenRuns != nil {
		fmt.Fprintf(&b, "Average days between runs: %.1f\n", *d.Stats.AvgDaysBetweenRuns)
	} else {
		b.WriteString("Average days between runs: no data\n")
	}
	fmt.Fprintf(&b, "Running frequency: %.2f runs per day\n", d.Stats.RunsPerDay)

	b.WriteString("\nRECOMMENDATIONS FOR NEXT WEEK:\n")
	for _, rec := range d.Recommendations {
		b.WriteString(rec + "\n")
	}

	b.WriteString("\nOVERALL STATISTICS (ALL ACTIVITIES):\n")
	b.WriteString(OverallSummary(d.Overall))

	return b.String()
}

// OverallSummary renders the all-time totals across every cached
// activity, not just the analysis window.
func OverallSummary(s analysis.OverallStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total activities: %d\n", s.TotalActivities)
	fmt.Fprintf(&b, "Total distance: %.1f km\n", s.TotalDistanceKm)
	fmt.Fprintf(&b, "Total moving time: %.1f hours\n", s.TotalMovingHrs)
	fmt.Fprintf(&b, "Total elapsed time: %.1f hours\n", s.TotalElapsedHrs)
	fmt.Fprintf(&b, "Total elevation gain: %.0f m\n", s.TotalElevationM)
	if s.AvgEfficiency != nil {
		fmt.Fprintf(&b, "Average efficiency ratio: %.2f\n", *s.AvgEfficiency)
	}
	fmt.Fprintf(&b, "Activities with heart rate: %d\n", s.ActivitiesWithHR)
	fmt.Fprintf(&b, "Total kudos: %d\n", s.TotalKudos)

	if len(s.TypeCounts) > 0 {
		types := make([]string, 0, len(s.TypeCounts))
		for t := range s.TypeCounts {
			types = append(types, t)
		}
		sort.Strings(types)

		b.WriteString("Activity types:\n")
		for _, t := range types {
			fmt.Fprintf(&b, "  %s: %d\n", t, s.TypeCounts[t])
		}
	}
	return b.String()
}

// WeeklyTable renders the per-week summary table with a fixed column
// layout. Week order follows the input, which the aggregator already
// sorts ascending.
func WeeklyTable(weekly []analysis.WeeklySummary) string {
	if len(weekly) == 0 {
		return "No weekly data available.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-10s %-6s %-9s %-8s %-10s %-10s\n", "Week", "Runs", "Total km", "Avg km", "Avg Pace", "Elevation")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	for _, w := range weekly {
		avgKm := w.TotalDistanceKm / float64(w.RunCount)
		fmt.Fprintf(&b, "%-10s %-6d %-9.1f %-8.1f %-10s %-10.0f\n",
			w.Label(), w.RunCount, w.TotalDistanceKm, avgKm, FormatPace(w.AvgPace), w.TotalElevationM)
	}
	return b.String()
}

// TrendSummary renders the half-over-half deltas, or the insufficient
// data notice when the window is too small.
func TrendSummary(d *Data) string {
	if d.Trend == nil {
		return "Insufficient data for trend analysis (need at least 2 runs).\n"
	}

	var b strings.Builder
	if d.Trend.PaceDelta != nil {
		fmt.Fprintf(&b, "Pace trend: %s min/km (%s)\n",
			FormatPaceValue(math.Abs(*d.Trend.PaceDelta)), d.Trend.PaceDirection)
	} else {
		b.WriteString("Pace trend: N/A\n")
	}
	fmt.Fprintf(&b, "Distance trend: %+.2f km per run\n", d.Trend.DistanceDelta)
	fmt.Fprintf(&b, "Elevation trend: %+.0f m per run\n", d.Trend.ElevationDelta)
	return b.String()
}

func fitnessSnapshot(d *Data) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Average weekly distance: %.1f km\n", d.Stats.AvgWeeklyDistanceKm)
	fmt.Fprintf(&b, "Average runs per week: %.1f\n", d.Stats.AvgRunsPerWeek)

	if d.Paces != nil {
		var sum float64
		for _, a := range d.Window {
			if a.PaceMoving != nil {
				sum += *a.PaceMoving
			}
		}
		avg := sum / float64(d.Paces.Count)
		fmt.Fprintf(&b, "Current average pace: %s min/km\n", FormatPaceValue(avg))
	} else {
		b.WriteString("Current average pace: N/A\n")
	}

	if d.Best.LongestRun != nil {
		fmt.Fprintf(&b, "Longest recent run: %.1f km\n", d.Best.LongestRun.DistanceKm)
	}
	fmt.Fprintf(&b, "Total elevation gain: %.0f m\n", d.Stats.AvgWeeklyElevationM*float64(d.Weeks))
	if n := len(d.Window); n > 0 {
		fmt.Fprintf(&b, "Average elevation per run: %.0f m\n", d.Stats.AvgWeeklyElevationM*float64(d.Weeks)/float64(n))
	}
	return b.String()
}

func bestPerformances(d *Data) string {
	var b strings.Builder
	if d.Best.FastestPace != nil {
		fmt.Fprintf(&b, "Fastest run: %s min/km (%.1f km)\n",
			FormatPace(d.Best.FastestPace.PaceMoving), d.Best.FastestPace.DistanceKm)
	}
	if d.Best.LongestRun != nil {
		fmt.Fprintf(&b, "Longest run: %.1f km on %s\n",
			d.Best.LongestRun.DistanceKm, d.Best.LongestRun.StartDate.Format("01/02"))
	}
	if d.Best.MostElevation != nil {
		fmt.Fprintf(&b, "Most elevation: %.0f m on %s (%.1f km)\n",
			d.Best.MostElevation.ElevationGainM(), d.Best.MostElevation.StartDate.Format("01/02"),
			d.Best.MostElevation.DistanceKm)
	}
	return b.String()
}

// RunDetails renders one row per activity, oldest first.
func RunDetails(d *Data) string {
	if d.Empty() {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %-10s %-10s %-10s %-8s\n", "Date", "Distance", "Pace", "Elevation", "Time")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	for _, a := range d.Window {
		fmt.Fprintf(&b, "%-12s %-10.1f %-10s %-10.0f %-8s\n",
			a.StartDate.Format("01/02"), a.DistanceKm, FormatPace(a.PaceMoving),
			a.ElevationGainM(), FormatDuration(a.MovingTimeMin))
	}
	return b.String()
}
