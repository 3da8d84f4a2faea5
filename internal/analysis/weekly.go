// Package analysis computes weekly aggregates, directional trends, and
// training recommendations over enriched activity windows. Everything
// here is a pure function of its inputs.
package analysis

import (
	"fmt"
	"sort"
	"time"

	"runpulse/internal/enrich"
)

// WeeklySummary aggregates one calendar week of a window.
//
// Weeks are keyed by the ISO (year, week) pair. Grouping on the bare
// week number would merge week 1 of one year with week 1 of the next in
// a multi-year window.
type WeeklySummary struct {
	Year int
	Week int

	RunCount        int
	TotalDistanceKm float64
	AvgPace         *float64 // mean moving pace over records with one, min/km
	TotalElevationM float64

	FirstDate time.Time
	LastDate  time.Time
}

// Label returns a stable display key such as "2025-W07".
func (w WeeklySummary) Label() string {
	return fmt.Sprintf("%d-W%02d", w.Year, w.Week)
}

// WeeklySummaries groups a window by ISO week and computes per-week
// totals. Output is ordered ascending by (year, week) so reports are
// deterministic. An empty window yields an empty slice.
func WeeklySummaries(window enrich.Dataset) []WeeklySummary {
	type key struct {
		year, week int
	}

	groups := make(map[key]*WeeklySummary)
	paceSums := make(map[key]float64)
	paceCounts := make(map[key]int)

	for _, a := range window {
		k := key{a.WeekYear, a.WeekNumber}
		w, exists := groups[k]
		if !exists {
			w = &WeeklySummary{
				Year:      a.WeekYear,
				Week:      a.WeekNumber,
				FirstDate: a.StartDate,
				LastDate:  a.StartDate,
			}
			groups[k] = w
		}

		w.RunCount++
		w.TotalDistanceKm += a.DistanceKm
		w.TotalElevationM += a.ElevationGainM()
		if a.StartDate.Before(w.FirstDate) {
			w.FirstDate = a.StartDate
		}
		if a.StartDate.After(w.LastDate) {
			w.LastDate = a.StartDate
		}

		// Unavailable paces stay out of the mean entirely.
		if a.PaceMoving != nil {
			paceSums[k] += *a.PaceMoving
			paceCounts[k]++
		}
	}

	summaries := make([]WeeklySummary, 0, len(groups))
	for k, w := range groups {
		if n := paceCounts[k]; n > 0 {
			avg := paceSums[k] / float64(n)
			w.AvgPace = &avg
		}
		summaries = append(summaries, *w)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Year != summaries[j].Year {
			return summaries[i].Year < summaries[j].Year
		}
		return summaries[i].Week < summaries[j].Week
	})

	return summaries
}
