// Package store persists raw activity payloads, OAuth tokens, and sync
// state in a local SQLite database. Payloads are stored as fetched;
// interpretation happens in internal/enrich.
package store

import (
	"database/sql"
	"errors"
	"time"
)

// Store is the application's data access layer.
type Store struct {
	db *sql.DB
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Auth holds the persisted OAuth tokens.
type Auth struct {
	AthleteID    int64
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// GetAuth retrieves the stored authentication tokens.
func (s *Store) GetAuth() (*Auth, error) {
	row := s.db.QueryRow(`SELECT athlete_id, access_token, refresh_token, expires_at FROM auth LIMIT 1`)

	var a Auth
	var expiresAt int64
	err := row.Scan(&a.AthleteID, &a.AccessToken, &a.RefreshToken, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoAuth
	}
	if err != nil {
		return nil, err
	}
	a.ExpiresAt = time.Unix(expiresAt, 0)
	return &a, nil
}

// SaveAuth stores or replaces the authentication tokens.
func (s *Store) SaveAuth(a *Auth) error {
	_, err := s.db.Exec(`
		INSERT INTO auth (athlete_id, access_token, refresh_token, expires_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(athlete_id) DO UPDATE SET
			access_token = excluded.access_token,
			refresh_token = excluded.refresh_token,
			expires_at = excluded.expires_at`,
		a.AthleteID, a.AccessToken, a.RefreshToken, a.ExpiresAt.Unix())
	return err
}

// UpdateTokens updates just the access and refresh tokens.
func (s *Store) UpdateTokens(accessToken, refreshToken string, expiresAt time.Time) error {
	result, err := s.db.Exec(`UPDATE auth SET access_token = ?, refresh_token = ?, expires_at = ?`,
		accessToken, refreshToken, expiresAt.Unix())
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNoAuth
	}
	return nil
}

// GetSyncState retrieves a sync state value by key.
// Returns the empty string when the key does not exist.
func (s *Store) GetSyncState(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM sync_state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return value, err
}

// SetSyncState sets a sync state value.
func (s *Store) SetSyncState(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO sync_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	return err
}

// UpsertRawActivity inserts or replaces one raw activity payload.
// startDate is kept as the raw ISO string for ordering; it is not
// validated here.
func (s *Store) UpsertRawActivity(id int64, startDate string, payload []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO raw_activities (id, start_date, payload, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			start_date = excluded.start_date,
			payload = excluded.payload,
			fetched_at = excluded.fetched_at`,
		id, startDate, string(payload), time.Now().UTC().Format(time.RFC3339))
	return err
}

// ListRawActivities returns all stored payloads ordered by start date
// ascending.
func (s *Store) ListRawActivities() ([][]byte, error) {
	rows, err := s.db.Query(`SELECT payload FROM raw_activities ORDER BY start_date ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payloads [][]byte
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		payloads = append(payloads, []byte(payload))
	}
	return payloads, rows.Err()
}

// CountRawActivities returns the number of cached activities.
func (s *Store) CountRawActivities() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM raw_activities`).Scan(&n)
	return n, err
}
