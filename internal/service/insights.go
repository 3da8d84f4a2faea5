package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"runpulse/internal/analysis"
	"runpulse/internal/enrich"
	"runpulse/internal/report"
	"runpulse/internal/store"
	"runpulse/internal/strava"
)

// InsightsService builds the enriched dataset and the report model from
// cached raw activities.
type InsightsService struct {
	store *store.Store
	log   *logrus.Logger
}

// NewInsightsService creates an insights service.
func NewInsightsService(st *store.Store, log *logrus.Logger) *InsightsService {
	if log == nil {
		log = logrus.New()
	}
	return &InsightsService{store: st, log: log}
}

// Dataset loads every cached payload and derives the enriched dataset.
// Undecodable and malformed records are logged and skipped; the batch
// always continues. An empty cache yields an empty dataset, not an error.
func (s *InsightsService) Dataset() (enrich.Dataset, error) {
	payloads, err := s.store.ListRawActivities()
	if err != nil {
		return nil, fmt.Errorf("loading cached activities: %w", err)
	}

	var ds enrich.Dataset
	for _, payload := range payloads {
		var raw strava.RawActivity
		if err := json.Unmarshal(payload, &raw); err != nil {
			s.log.WithError(err).Warn("skipping undecodable activity payload")
			continue
		}

		a, err := enrich.Derive(raw)
		if errors.Is(err, enrich.ErrMalformedRecord) {
			s.log.WithError(err).Warn("skipping malformed activity record")
			continue
		}
		if err != nil {
			return nil, err
		}
		ds = append(ds, a)
	}

	ds.SortChronological()
	return ds, nil
}

// Insights derives the dataset, selects the trailing window for the
// category, and computes every aggregate the report needs. An empty
// window is a valid result; renderers report "no data".
func (s *InsightsService) Insights(sportType string, weeks int) (*report.Data, error) {
	ds, err := s.Dataset()
	if err != nil {
		return nil, err
	}
	return BuildInsights(ds, sportType, weeks), nil
}

// BuildInsights assembles the report model from an already-enriched
// dataset. Split out from Insights so it can run without a store.
func BuildInsights(ds enrich.Dataset, sportType string, weeks int) *report.Data {
	if weeks < 1 {
		weeks = 1
	}

	window := ds.RecentWindow(sportType, weeks)

	d := &report.Data{
		SportType: sportType,
		Weeks:     weeks,
		Window:    window,
		Overall:   analysis.Overall(ds),
	}

	if len(window) == 0 {
		return d
	}

	d.WindowStart, d.WindowEnd, _ = window.DateSpan()
	d.Weekly = analysis.WeeklySummaries(window)
	d.Trend = analysis.AnalyzeTrend(window)
	d.Stats = analysis.NewWindowStats(window, weeks)
	d.Recommendations = analysis.Recommendations(d.Stats)
	d.Best = analysis.Best(window)
	d.Paces = analysis.SpreadOfPaces(window)

	return d
}
