package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runpulse/internal/enrich"
)

func sampleActivity() enrich.Activity {
	pace := 5.0
	paceElapsed := 6.0
	eff := 1500.0 / 1800.0
	return enrich.Activity{
		ID:              101,
		Name:            "Morning Run",
		Type:            "Run",
		SportType:       "Run",
		StartDate:       time.Date(2025, 6, 3, 7, 30, 0, 0, time.UTC),
		Year:            2025,
		Month:           6,
		DayOfWeek:       "Tuesday",
		Hour:            7,
		WeekYear:        2025,
		WeekNumber:      23,
		DistanceKm:      5,
		ElapsedTimeMin:  30,
		MovingTimeMin:   25,
		EfficiencyRatio: &eff,
		PaceElapsed:     &paceElapsed,
		PaceMoving:      &pace,
		ElevationGainKm: 0.12,
		KudosCount:      4,
		WorkoutTypeName: "Default",
		DeviceName:      "Unknown",
		LocationCity:    "Unknown",
		LocationState:   "Unknown",
		LocationCountry: "Unknown",
	}
}

func TestWriteCSVHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	r := csv.NewReader(&buf)
	header, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, CSVColumns(), header)
	assert.Equal(t, 37, len(header))
}

func TestWriteCSVRow(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, enrich.Dataset{sampleActivity()}))

	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	row := rows[1]
	byCol := make(map[string]string, len(row))
	for i, col := range CSVColumns() {
		byCol[col] = row[i]
	}

	assert.Equal(t, "101", byCol["id"])
	assert.Equal(t, "Morning Run", byCol["name"])
	assert.Equal(t, "2025-06-03T07:30:00Z", byCol["start_date"])
	assert.Equal(t, "Tuesday", byCol["day_of_week"])
	assert.Equal(t, "5", byCol["distance_km"])
	assert.Equal(t, "0.12", byCol["elevation_gain_km"])
	assert.Equal(t, "5", byCol["pace_min_per_km_moving"])
	assert.Equal(t, "6", byCol["pace_min_per_km_elapsed"])
	assert.Equal(t, "false", byCol["has_hr_data"])
	assert.Equal(t, "4", byCol["kudos_count"])
	assert.Equal(t, "Default", byCol["workout_type_name"])
	assert.Equal(t, "Unknown", byCol["location_city"])
}

func TestWriteCSVUnavailableMetricsEmpty(t *testing.T) {
	a := sampleActivity()
	a.PaceMoving = nil
	a.PaceElapsed = nil
	a.EfficiencyRatio = nil
	a.AverageHeartrate = nil

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, enrich.Dataset{a}))

	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	require.NoError(t, err)

	row := rows[1]
	for i, col := range CSVColumns() {
		switch col {
		case "pace_min_per_km_moving", "pace_min_per_km_elapsed",
			"efficiency_ratio", "average_heartrate":
			assert.Empty(t, row[i], col)
		}
	}
}

func TestWriteCSVDeterministic(t *testing.T) {
	ds := enrich.Dataset{sampleActivity(), sampleActivity()}

	var a, b bytes.Buffer
	require.NoError(t, WriteCSV(&a, ds))
	require.NoError(t, WriteCSV(&b, ds))
	assert.Equal(t, a.String(), b.String())
}

func TestExportCSV(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	path, err := ExportCSV(dir, enrich.Dataset{sampleActivity()}, now)
	require.NoError(t, err)
	assert.Equal(t, "Strava_Activities_2025-06-15.csv", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "id,name,type"))
}

func TestExportCSVCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports", "nested")
	_, err := ExportCSV(dir, nil, time.Now())
	require.NoError(t, err)
	_, err = os.Stat(dir)
	assert.NoError(t, err)
}
