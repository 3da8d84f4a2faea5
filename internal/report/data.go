package report

import (
	"time"

	"runpulse/internal/analysis"
	"runpulse/internal/enrich"
)

// Data is the assembled analysis for one category window, ready for a
// renderer (text report, TUI, or charts). The service layer fills it;
// this package only reads it.
type Data struct {
	SportType string
	Weeks     int

	Window      enrich.Dataset
	WindowStart time.Time
	WindowEnd   time.Time

	Weekly          []analysis.WeeklySummary
	Trend           *analysis.Trend
	Stats           analysis.WindowStats
	Recommendations []string
	Best            analysis.BestEfforts
	Paces           *analysis.PaceSpread

	Overall analysis.OverallStats
}

// Empty reports whether the window produced no records.
func (d *Data) Empty() bool {
	return len(d.Window) == 0
}
