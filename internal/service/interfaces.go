package service

import (
	"context"

	"github.com/pfleegoree/planit/internal/domain"
	"github.com/pfleegoree/planit/internal/dto"
	"github.com/pfleegoree/planit/internal/ingest"
)

// EventServicer defines the interface for event service operations
type EventServicer interface {
	ListEvents(req *dto.ListEventsRequest) ([]domain.Event, error)
	TriggerFetch()
}

// IngestRunner triggers one ingestion cycle.
type IngestRunner interface {
	Run(ctx context.Context) ingest.Stats
}
