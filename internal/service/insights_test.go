package service

import (
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runpulse/internal/enrich"
	"runpulse/internal/store"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func rawRunJSON(id int64, start string, distanceM, movingS float64) []byte {
	return []byte(fmt.Sprintf(
		`{"id":%d,"name":"Run %d","type":"Run","sport_type":"Run","start_date":%q,"distance":%g,"moving_time":%g,"elapsed_time":%g}`,
		id, id, start, distanceM, movingS, movingS*1.1))
}

func seedRun(t *testing.T, st *store.Store, id int64, start string, distanceM, movingS float64) {
	t.Helper()
	require.NoError(t, st.UpsertRawActivity(id, start, rawRunJSON(id, start, distanceM, movingS)))
}

func TestDatasetEmptyCache(t *testing.T) {
	svc := NewInsightsService(newTestStore(t), quietLogger())

	ds, err := svc.Dataset()
	require.NoError(t, err)
	assert.Empty(t, ds)
}

func TestDatasetDerivesAndSorts(t *testing.T) {
	st := newTestStore(t)
	seedRun(t, st, 2, "2025-06-05T08:00:00Z", 6000, 1980)
	seedRun(t, st, 1, "2025-06-03T08:00:00Z", 5000, 1500)

	svc := NewInsightsService(st, quietLogger())
	ds, err := svc.Dataset()
	require.NoError(t, err)
	require.Len(t, ds, 2)

	assert.Equal(t, int64(1), ds[0].ID)
	assert.Equal(t, int64(2), ds[1].ID)
	assert.InDelta(t, 5.0, ds[0].DistanceKm, 1e-9)
	require.NotNil(t, ds[0].PaceMoving)
	assert.InDelta(t, 5.0, *ds[0].PaceMoving, 1e-9)
}

func TestDatasetSkipsBadRecords(t *testing.T) {
	st := newTestStore(t)
	seedRun(t, st, 1, "2025-06-03T08:00:00Z", 5000, 1500)
	// Undecodable payload.
	require.NoError(t, st.UpsertRawActivity(2, "2025-06-04T08:00:00Z", []byte(`{"id":`)))
	// Decodable but missing its start date.
	require.NoError(t, st.UpsertRawActivity(3, "2025-06-05T08:00:00Z", []byte(`{"id":3,"type":"Run"}`)))

	svc := NewInsightsService(st, quietLogger())
	ds, err := svc.Dataset()
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, int64(1), ds[0].ID)
}

func TestInsightsFromStore(t *testing.T) {
	st := newTestStore(t)
	seedRun(t, st, 1, "2025-06-03T07:30:00Z", 5000, 1800)
	seedRun(t, st, 2, "2025-06-04T07:30:00Z", 6000, 1980)
	seedRun(t, st, 3, "2025-06-05T07:30:00Z", 7000, 2100)

	svc := NewInsightsService(st, quietLogger())
	d, err := svc.Insights("Run", 3)
	require.NoError(t, err)

	assert.False(t, d.Empty())
	assert.Len(t, d.Window, 3)
	require.Len(t, d.Weekly, 1)
	assert.Equal(t, 3, d.Weekly[0].RunCount)
	assert.InDelta(t, 18.0, d.Weekly[0].TotalDistanceKm, 1e-9)
	require.NotNil(t, d.Weekly[0].AvgPace)
	assert.InDelta(t, 5.5, *d.Weekly[0].AvgPace, 1e-9)
	assert.NotEmpty(t, d.Recommendations)
}

func buildWindow(categories []string, anchor time.Time) enrich.Dataset {
	ds := make(enrich.Dataset, len(categories))
	for i, c := range categories {
		start := anchor.AddDate(0, 0, i)
		y, w := start.ISOWeek()
		pace := 5.0
		ds[i] = enrich.Activity{
			ID:            int64(i + 1),
			Type:          c,
			SportType:     c,
			StartDate:     start,
			WeekYear:      y,
			WeekNumber:    w,
			DistanceKm:    10,
			MovingTimeMin: 50,
			PaceMoving:    &pace,
		}
	}
	return ds
}

func TestBuildInsightsFiltersCategory(t *testing.T) {
	anchor := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	ds := buildWindow([]string{"Run", "Ride", "Run"}, anchor)

	d := BuildInsights(ds, "Run", 3)
	assert.Len(t, d.Window, 2)
	assert.Equal(t, 3, d.Overall.TotalActivities) // whole dataset, not the window
}

func TestBuildInsightsEmptyWindow(t *testing.T) {
	anchor := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	ds := buildWindow([]string{"Ride", "Ride"}, anchor)

	d := BuildInsights(ds, "Run", 3)
	assert.True(t, d.Empty())
	assert.Nil(t, d.Trend)
	assert.Empty(t, d.Recommendations)
	assert.Equal(t, 2, d.Overall.TotalActivities)
}

func TestBuildInsightsClampsWeeks(t *testing.T) {
	anchor := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	ds := buildWindow([]string{"Run", "Run"}, anchor)

	d := BuildInsights(ds, "Run", 0)
	assert.Equal(t, 1, d.Weeks)
	assert.Len(t, d.Window, 2)
}
