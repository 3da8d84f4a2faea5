package strava

// RawActivity is one activity payload as returned by the Strava API.
// The API does not guarantee every field: anything that can be absent is
// a pointer, and start_date is kept as the raw ISO-8601 string so that a
// single unparsable record can be rejected without failing the page it
// arrived on. Interpretation of these fields belongs to internal/enrich.
type RawActivity struct {
	ID                 *int64   `json:"id"`
	Name               string   `json:"name"`
	Type               string   `json:"type"`
	SportType          string   `json:"sport_type"`
	StartDate          string   `json:"start_date"`
	Distance           float64  `json:"distance"`     // meters
	MovingTime         float64  `json:"moving_time"`  // seconds
	ElapsedTime        float64  `json:"elapsed_time"` // seconds
	TotalElevationGain *float64 `json:"total_elevation_gain"` // meters
	AverageSpeed       float64  `json:"average_speed"` // m/s
	MaxSpeed           float64  `json:"max_speed"`     // m/s
	AverageHeartrate   *float64 `json:"average_heartrate"` // bpm
	MaxHeartrate       *float64 `json:"max_heartrate"`     // bpm
	AverageCadence     *float64 `json:"average_cadence"`   // rpm
	AverageTemp        *float64 `json:"average_temp"`      // celsius
	SufferScore        *float64 `json:"suffer_score"`
	KudosCount         *int     `json:"kudos_count"`
	CommentCount       *int     `json:"comment_count"`
	AthleteCount       *int     `json:"athlete_count"`
	PhotoCount         *int     `json:"photo_count"`
	AchievementCount   *int     `json:"achievement_count"`
	PRCount            *int     `json:"pr_count"`
	WorkoutType        *int     `json:"workout_type"`
	Manual             *bool    `json:"manual"`
	DeviceName         *string  `json:"device_name"`
	LocationCity       *string  `json:"location_city"`
	LocationState      *string  `json:"location_state"`
	LocationCountry    *string  `json:"location_country"`
}

// Athlete is the authenticated athlete, used for the connection test.
type Athlete struct {
	ID        int64  `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}
