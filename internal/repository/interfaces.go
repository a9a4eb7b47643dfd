package repository

import (
	"context"

	"github.com/pfleegoree/planit/internal/domain"
)

// EventFilter narrows List results. A nil or empty slice means no filter
// on that attribute.
type EventFilter struct {
	Categories []string
	Genres     []string
}

// EventRepository defines the interface for event storage operations
type EventRepository interface {
	// FindByExternalID returns the event with the given provider id, or
	// nil when no such event is stored.
	FindByExternalID(ctx context.Context, externalID string) (*domain.Event, error)

	// Save upserts an event: inserts when ID is zero (assigning it),
	// updates in place otherwise.
	Save(ctx context.Context, event *domain.Event) error

	// List returns all events matching the filter.
	List(ctx context.Context, filter EventFilter) ([]domain.Event, error)

	// Count returns the total number of stored events.
	Count(ctx context.Context) (int64, error)

	// InitSchema initializes the database schema (creates tables if they don't exist)
	InitSchema(ctx context.Context) error

	// Ping checks if the database connection is alive
	Ping(ctx context.Context) error

	// Close closes the repository and releases resources
	Close() error
}
