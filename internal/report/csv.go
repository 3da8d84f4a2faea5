package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"runpulse/internal/enrich"
)

// csvColumns is the export schema. Order is fixed so two exports of the
// same dataset are byte-identical.
var csvColumns = []string{
	"id",
	"name",
	"type",
	"sport_type",
	"start_date",
	"year",
	"month",
	"day_of_week",
	"hour",
	"week_number",
	"distance_km",
	"elapsed_time_min",
	"moving_time_min",
	"efficiency_ratio",
	"pace_min_per_km_elapsed",
	"pace_min_per_km_moving",
	"average_speed_kmh",
	"max_speed_kmh",
	"elevation_gain_km",
	"has_hr_data",
	"average_heartrate",
	"max_heartrate",
	"cadence_rpm",
	"temperature_c",
	"kudos_count",
	"comment_count",
	"athlete_count",
	"photo_count",
	"achievement_count",
	"pr_count",
	"suffer_score",
	"workout_type_name",
	"is_manual",
	"device_name",
	"location_city",
	"location_state",
	"location_country",
}

// CSVColumns returns the export column names in output order.
func CSVColumns() []string {
	out := make([]string, len(csvColumns))
	copy(out, csvColumns)
	return out
}

// WriteCSV writes the dataset to w with the fixed column schema.
// Unavailable ratio metrics are written as empty cells.
func WriteCSV(w io.Writer, ds enrich.Dataset) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvColumns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, a := range ds {
		if err := cw.Write(csvRow(a)); err != nil {
			return fmt.Errorf("writing activity %d: %w", a.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the dataset to a dated file in dir, creating the
// directory if needed, and returns the file path.
func ExportCSV(dir string, ds enrich.Dataset, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("Strava_Activities_%s.csv", now.Format("2006-01-02")))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, ds); err != nil {
		return "", err
	}
	return path, nil
}

func csvRow(a enrich.Activity) []string {
	return []string{
		strconv.FormatInt(a.ID, 10),
		a.Name,
		a.Type,
		a.SportType,
		a.StartDate.Format(time.RFC3339),
		strconv.Itoa(a.Year),
		strconv.Itoa(a.Month),
		a.DayOfWeek,
		strconv.Itoa(a.Hour),
		strconv.Itoa(a.WeekNumber),
		formatFloat(a.DistanceKm),
		formatFloat(a.ElapsedTimeMin),
		formatFloat(a.MovingTimeMin),
		formatOptional(a.EfficiencyRatio),
		formatOptional(a.PaceElapsed),
		formatOptional(a.PaceMoving),
		formatFloat(a.AverageSpeedKmh),
		formatFloat(a.MaxSpeedKmh),
		formatFloat(a.ElevationGainKm),
		strconv.FormatBool(a.HasHRData),
		formatOptional(a.AverageHeartrate),
		formatOptional(a.MaxHeartrate),
		formatOptional(a.CadenceRPM),
		formatOptional(a.TemperatureC),
		strconv.Itoa(a.KudosCount),
		strconv.Itoa(a.CommentCount),
		strconv.Itoa(a.AthleteCount),
		strconv.Itoa(a.PhotoCount),
		strconv.Itoa(a.AchievementCount),
		strconv.Itoa(a.PRCount),
		strconv.Itoa(a.SufferScore),
		a.WorkoutTypeName,
		strconv.FormatBool(a.IsManual),
		a.DeviceName,
		a.LocationCity,
		a.LocationState,
		a.LocationCountry,
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatOptional renders an unavailable metric as an empty cell rather
// than a NaN literal.
func formatOptional(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}
