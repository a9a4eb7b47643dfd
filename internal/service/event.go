package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pfleegoree/planit/internal/domain"
	"github.com/pfleegoree/planit/internal/dto"
	"github.com/pfleegoree/planit/internal/repository"
)

// The UI sends this placeholder when no category is selected.
const allCategoriesSentinel = "all"

// EventService represents event service
type EventService struct {
	repository repository.EventRepository
	ingestor   IngestRunner
	log        *zap.Logger
}

// NewEventService creates a new event service
func NewEventService(repo repository.EventRepository, ingestor IngestRunner, log *zap.Logger) *EventService {
	return &EventService{
		repository: repo,
		ingestor:   ingestor,
		log:        log,
	}
}

// ListEvents returns stored events matching the request's category and
// genre filters. Values are trimmed, empty values are dropped, and the
// "All" category placeholder is treated as no category filter at all.
func (s *EventService) ListEvents(req *dto.ListEventsRequest) ([]domain.Event, error) {
	ctx := context.Background()

	filter := repository.EventFilter{
		Categories: normalizeFilterValues(req.Categories, true),
		Genres:     normalizeFilterValues(req.Genres, false),
	}

	s.log.Info("Querying events",
		zap.Strings("categories", filter.Categories),
		zap.Strings("genres", filter.Genres))

	events, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list events from repository: %w", err)
	}

	return events, nil
}

// TriggerFetch runs one ingestion cycle synchronously. Failed cycles are
// logged inside the ingestor; callers always get the same acknowledgement.
func (s *EventService) TriggerFetch() {
	ctx := context.Background()

	stats := s.ingestor.Run(ctx)

	s.log.Info("Ingestion triggered",
		zap.Int("inserted", stats.Inserted),
		zap.Int("updated", stats.Updated),
		zap.Int("skipped", stats.Skipped))
}

// normalizeFilterValues trims the values and drops empties. When
// dropAll is set, the case-insensitive "all" placeholder is dropped too.
// An exhausted list comes back nil, meaning no filter.
func normalizeFilterValues(values []string, dropAll bool) []string {
	var out []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if dropAll && strings.EqualFold(v, allCategoriesSentinel) {
			continue
		}
		out = append(out, v)
	}
	return out
}
