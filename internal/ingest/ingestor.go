package ingest

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/pfleegoree/planit/internal/domain"
	"github.com/pfleegoree/planit/internal/metrics"
	"github.com/pfleegoree/planit/internal/provider/ticketmaster"
	"github.com/pfleegoree/planit/internal/repository"
)

// Provider supplies raw event listings for one ingestion cycle.
type Provider interface {
	SearchEvents(ctx context.Context) (*ticketmaster.SearchResponse, error)
}

// Stats summarizes one ingestion cycle.
type Stats struct {
	Inserted int
	Updated  int
	Skipped  int
}

// Ingestor fetches listings from the provider, normalizes them and
// upserts them into the event store. No provider failure is fatal: a
// bad cycle writes nothing and is retried on the next trigger.
type Ingestor struct {
	provider Provider
	repo     repository.EventRepository
	log      *zap.Logger
}

// NewIngestor creates a new ingestor
func NewIngestor(provider Provider, repo repository.EventRepository, log *zap.Logger) *Ingestor {
	return &Ingestor{
		provider: provider,
		repo:     repo,
		log:      log,
	}
}

// Run executes one ingestion cycle. Elements are processed in provider
// order and persisted independently; a failure on one element never
// aborts the rest of the batch.
func (i *Ingestor) Run(ctx context.Context) Stats {
	var stats Stats

	result, err := i.provider.SearchEvents(ctx)
	if err != nil {
		var statusErr *ticketmaster.StatusError
		if errors.Is(err, ticketmaster.ErrMalformed) {
			i.log.Error("Malformed Ticketmaster response, aborting cycle", zap.Error(err))
			metrics.IngestCycles.WithLabelValues("malformed").Inc()
		} else if errors.As(err, &statusErr) || errors.Is(err, ticketmaster.ErrEmptyResponse) {
			i.log.Warn("Ticketmaster unavailable, skipping cycle", zap.Error(err))
			metrics.IngestCycles.WithLabelValues("unavailable").Inc()
		} else {
			i.log.Warn("Ticketmaster call failed, skipping cycle", zap.Error(err))
			metrics.IngestCycles.WithLabelValues("unavailable").Inc()
		}
		return stats
	}

	for _, raw := range result.Embedded.Events {
		action, err := i.ingestOne(ctx, raw)
		if err != nil {
			i.log.Warn("Failed to persist event",
				zap.String("external_id", raw.ID),
				zap.Error(err))
			continue
		}

		switch action {
		case actionInserted:
			stats.Inserted++
			metrics.EventsUpserted.WithLabelValues("inserted").Inc()
		case actionUpdated:
			stats.Updated++
			metrics.EventsUpserted.WithLabelValues("updated").Inc()
		case actionSkipped:
			stats.Skipped++
			metrics.EventsSkipped.Inc()
		}
	}

	metrics.IngestCycles.WithLabelValues("ok").Inc()
	i.log.Info("Ingestion cycle complete",
		zap.Int("inserted", stats.Inserted),
		zap.Int("updated", stats.Updated),
		zap.Int("skipped", stats.Skipped))

	return stats
}

type action int

const (
	actionSkipped action = iota
	actionInserted
	actionUpdated
)

// ingestOne normalizes a single raw listing and upserts it, keyed by the
// provider's event id. Listings without an id are skipped entirely.
func (i *Ingestor) ingestOne(ctx context.Context, raw ticketmaster.Event) (action, error) {
	externalID := strings.TrimSpace(raw.ID)
	if externalID == "" {
		return actionSkipped, nil
	}

	existing, err := i.repo.FindByExternalID(ctx, externalID)
	if err != nil {
		return actionSkipped, err
	}

	event := existing
	if event == nil {
		event = &domain.Event{}
	}

	normalizeInto(event, externalID, raw)

	if err := i.repo.Save(ctx, event); err != nil {
		return actionSkipped, err
	}

	if existing == nil {
		return actionInserted, nil
	}
	return actionUpdated, nil
}

// normalizeInto overwrites the provider-derived fields of event from the
// raw listing. Classification and venue attributes are only written when
// the corresponding list is present; start and end times are always
// rewritten, and cleared when no usable start could be resolved, so a
// failed re-fetch never leaves stale instants behind.
func normalizeInto(event *domain.Event, externalID string, raw ticketmaster.Event) {
	event.ExternalID = &externalID
	event.Title = optional(raw.Name)
	event.URL = optional(raw.URL)

	if c, ok := raw.FirstClassification(); ok {
		event.Category = optional(c.Segment.Name)
		event.Genre = optional(c.Genre.Name)
	}

	if v, ok := raw.FirstVenue(); ok {
		event.VenueName = optional(v.Name)
		if v.Location != nil {
			event.Latitude = optional(v.Location.Latitude)
			event.Longitude = optional(v.Location.Longitude)
		}
	}

	start, ok := resolveStart(raw.Dates)
	if !ok {
		event.StartTime = nil
		event.EndTime = nil
		return
	}

	startStr := formatInstant(start)
	endStr := formatInstant(resolveEnd(raw.Dates, start))
	event.StartTime = &startStr
	event.EndTime = &endStr
}

// optional maps an empty provider string to an absent value.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
