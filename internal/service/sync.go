// Package service orchestrates the pipeline: syncing raw activities
// from the Strava API into the local store, and building the analysis
// report model from what is cached.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"runpulse/internal/store"
	"runpulse/internal/strava"
)

// SyncService fetches raw activity payloads from Strava and caches them.
type SyncService struct {
	client *strava.Client
	store  *store.Store
	log    *logrus.Logger
}

// NewSyncService creates a sync service.
func NewSyncService(client *strava.Client, st *store.Store, log *logrus.Logger) *SyncService {
	if log == nil {
		log = logrus.New()
	}
	return &SyncService{client: client, store: st, log: log}
}

// SyncProgress reports progress to the TUI during a sync.
type SyncProgress struct {
	Fetched int
	Stored  int
}

// SyncResult summarizes a completed sync.
type SyncResult struct {
	Athlete  string
	Fetched  int
	Stored   int
	Skipped  int
	Errors   []error
	Duration time.Duration
}

// idProbe pulls just enough out of a payload to store it. Records
// missing an id are not storable and are skipped here; records with a
// bad start_date are kept and rejected later by the deriver.
type idProbe struct {
	ID        *int64 `json:"id"`
	StartDate string `json:"start_date"`
}

// SyncAll fetches every activity page and upserts the raw payloads.
// Malformed entries are skipped and logged; they never abort the batch.
func (s *SyncService) SyncAll(ctx context.Context, progress chan<- SyncProgress) (*SyncResult, error) {
	if progress != nil {
		defer close(progress)
	}

	started := time.Now()
	result := &SyncResult{}

	athlete, err := s.client.GetAthlete(ctx)
	if err != nil {
		return result, fmt.Errorf("testing connection: %w", err)
	}
	result.Athlete = fmt.Sprintf("%s %s", athlete.Firstname, athlete.Lastname)
	s.log.WithField("athlete", result.Athlete).Info("connected to Strava")

	payloads, err := s.client.GetAllActivities(ctx, func(fetched int) {
		if progress != nil {
			progress <- SyncProgress{Fetched: fetched, Stored: result.Stored}
		}
	})
	result.Fetched = len(payloads)
	if err != nil {
		// Keep whatever pages arrived before the failure.
		result.Errors = append(result.Errors, err)
	}

	for _, payload := range payloads {
		var probe idProbe
		if err := json.Unmarshal(payload, &probe); err != nil {
			result.Skipped++
			s.log.WithError(err).Warn("skipping undecodable activity payload")
			continue
		}
		if probe.ID == nil {
			result.Skipped++
			s.log.Warn("skipping activity payload without id")
			continue
		}

		if err := s.store.UpsertRawActivity(*probe.ID, probe.StartDate, payload); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("storing activity %d: %w", *probe.ID, err))
			continue
		}
		result.Stored++
	}

	if err := s.store.SetSyncState("last_sync", time.Now().UTC().Format(time.RFC3339)); err != nil {
		result.Errors = append(result.Errors, fmt.Errorf("saving sync state: %w", err))
	}

	result.Duration = time.Since(started)
	s.log.WithFields(logrus.Fields{
		"fetched": result.Fetched,
		"stored":  result.Stored,
		"skipped": result.Skipped,
	}).Info("sync complete")

	return result, nil
}

// LastSync returns the timestamp of the last completed sync, zero when
// no sync has run.
func (s *SyncService) LastSync() time.Time {
	value, err := s.store.GetSyncState("last_sync")
	if err != nil || value == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
