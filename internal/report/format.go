// Package report renders analysis results: pace formatting, the weekly
// table and trend text, CSV export, and chart series for the TUI. It
// formats, it never computes.
package report

import "fmt"

// FormatPace renders a decimal min/km pace as "M:SS", truncating
// fractional seconds. A nil pace renders as "N/A".
func FormatPace(pace *float64) string {
	if pace == nil {
		return "N/A"
	}
	minutes := int(*pace)
	seconds := int((*pace - float64(minutes)) * 60)
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FormatPaceValue is FormatPace for a pace known to be available.
func FormatPaceValue(pace float64) string {
	return FormatPace(&pace)
}

// FormatDuration renders minutes as "H:MM" past the hour mark, "Nmin"
// below it.
func FormatDuration(minutes float64) string {
	h := int(minutes) / 60
	m := int(minutes) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d", h, m)
	}
	return fmt.Sprintf("%dmin", m)
}
