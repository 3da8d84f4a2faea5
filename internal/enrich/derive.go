package enrich

import (
	"errors"
	"fmt"
	"time"

	"runpulse/internal/strava"
)

// ErrMalformedRecord is returned when a raw activity lacks a usable
// identity or timestamp. Such records are skipped; the batch continues.
var ErrMalformedRecord = errors.New("malformed activity record")

// workoutTypeNames maps Strava's workout_type codes to display names.
// Unknown and absent codes fall back to "Default".
var workoutTypeNames = map[int]string{
	0: "Default",
	1: "Race",
	2: "Long Run",
	3: "Workout",
}

const unknownLabel = "Unknown"

// Derive converts one raw activity into an enriched record. It fails
// only when the id or start_date is missing or unparsable; every other
// absent field degrades to its documented default. Derive is a pure
// function: the same input always yields the same record.
func Derive(raw strava.RawActivity) (Activity, error) {
	if raw.ID == nil {
		return Activity{}, fmt.Errorf("%w: missing id", ErrMalformedRecord)
	}
	if raw.StartDate == "" {
		return Activity{}, fmt.Errorf("%w: activity %d has no start_date", ErrMalformedRecord, *raw.ID)
	}
	start, err := time.Parse(time.RFC3339, raw.StartDate)
	if err != nil {
		return Activity{}, fmt.Errorf("%w: activity %d start_date %q: %v", ErrMalformedRecord, *raw.ID, raw.StartDate, err)
	}

	weekYear, weekNumber := start.ISOWeek()

	a := Activity{
		ID:        *raw.ID,
		Name:      raw.Name,
		Type:      raw.Type,
		SportType: raw.SportType,

		StartDate:  start,
		Year:       start.Year(),
		Month:      int(start.Month()),
		DayOfWeek:  start.Weekday().String(),
		Hour:       start.Hour(),
		WeekYear:   weekYear,
		WeekNumber: weekNumber,

		DistanceKm:     raw.Distance / 1000,
		ElapsedTimeMin: raw.ElapsedTime / 60,
		MovingTimeMin:  raw.MovingTime / 60,

		AverageSpeedKmh: raw.AverageSpeed * 3.6,
		MaxSpeedKmh:     raw.MaxSpeed * 3.6,

		HasHRData:        raw.AverageHeartrate != nil,
		AverageHeartrate: raw.AverageHeartrate,
		MaxHeartrate:     raw.MaxHeartrate,
		CadenceRPM:       raw.AverageCadence,
		TemperatureC:     raw.AverageTemp,

		KudosCount:       countOrZero(raw.KudosCount),
		CommentCount:     countOrZero(raw.CommentCount),
		AthleteCount:     countOrZero(raw.AthleteCount),
		PhotoCount:       countOrZero(raw.PhotoCount),
		AchievementCount: countOrZero(raw.AchievementCount),
		PRCount:          countOrZero(raw.PRCount),

		WorkoutTypeName: workoutTypeName(raw.WorkoutType),
		IsManual:        raw.Manual != nil && *raw.Manual,
		DeviceName:      stringOr(raw.DeviceName, unknownLabel),
		LocationCity:    stringOr(raw.LocationCity, unknownLabel),
		LocationState:   stringOr(raw.LocationState, unknownLabel),
		LocationCountry: stringOr(raw.LocationCountry, unknownLabel),
	}

	if raw.TotalElevationGain != nil {
		a.ElevationGainKm = *raw.TotalElevationGain / 1000
	}
	if raw.SufferScore != nil && *raw.SufferScore > 0 {
		a.SufferScore = int(*raw.SufferScore)
	}

	// Ratio metrics stay nil on a zero denominator instead of going to
	// Inf/NaN and poisoning downstream means.
	if raw.ElapsedTime > 0 {
		eff := raw.MovingTime / raw.ElapsedTime
		a.EfficiencyRatio = &eff
	}
	if a.DistanceKm > 0 {
		paceElapsed := a.ElapsedTimeMin / a.DistanceKm
		paceMoving := a.MovingTimeMin / a.DistanceKm
		a.PaceElapsed = &paceElapsed
		a.PaceMoving = &paceMoving
	}

	return a, nil
}

func workoutTypeName(code *int) string {
	if code == nil {
		return "Default"
	}
	if name, ok := workoutTypeNames[*code]; ok {
		return name
	}
	return "Default"
}

// countOrZero resolves an optional count to a non-negative integer.
func countOrZero(n *int) int {
	if n == nil || *n < 0 {
		return 0
	}
	return *n
}

func stringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
