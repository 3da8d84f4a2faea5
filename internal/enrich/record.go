// Package enrich turns raw Strava activity payloads into normalized
// records with derived metrics, and provides category/time-window views
// over the resulting dataset.
package enrich

import "time"

// Activity is an enriched activity record, the canonical unit of the
// analysis engine. Records are value types and never mutated after
// Derive returns them.
//
// Ratio metrics that cannot be computed (zero denominator) are nil.
// Aggregations must skip nil entries rather than fold them into means.
type Activity struct {
	ID        int64
	Name      string
	Type      string
	SportType string

	StartDate  time.Time
	Year       int
	Month      int
	DayOfWeek  string
	Hour       int
	WeekYear   int // ISO week-numbering year, pairs with WeekNumber
	WeekNumber int // ISO calendar week

	DistanceKm     float64
	ElapsedTimeMin float64
	MovingTimeMin  float64

	EfficiencyRatio *float64 // moving/elapsed, nil when elapsed is zero
	PaceElapsed     *float64 // min/km on elapsed time, nil when distance is zero
	PaceMoving      *float64 // min/km on moving time, nil when distance is zero

	AverageSpeedKmh float64
	MaxSpeedKmh     float64

	// Elevation is carried in kilometers; every reporting and
	// recommendation path reads it back in meters via ElevationGainM.
	ElevationGainKm float64

	HasHRData        bool
	AverageHeartrate *float64
	MaxHeartrate     *float64
	CadenceRPM       *float64
	TemperatureC     *float64

	KudosCount       int
	CommentCount     int
	AthleteCount     int
	PhotoCount       int
	AchievementCount int
	PRCount          int
	SufferScore      int

	WorkoutTypeName string
	IsManual        bool
	DeviceName      string
	LocationCity    string
	LocationState   string
	LocationCountry string
}

// ElevationGainM returns the elevation gain in meters. The record stores
// kilometers; the invariant ElevationGainM == ElevationGainKm*1000 holds
// exactly since this is the only conversion path.
func (a Activity) ElevationGainM() float64 {
	return a.ElevationGainKm * 1000
}

// Category reports whether the record matches the given activity
// category, by exact match against either Type or SportType.
func (a Activity) Category(category string) bool {
	return a.Type == category || a.SportType == category
}
