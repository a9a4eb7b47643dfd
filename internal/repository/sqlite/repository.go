package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/pfleegoree/planit/internal/domain"
	"github.com/pfleegoree/planit/internal/repository"
)

const eventColumns = "id, external_id, title, category, genre, venue_name, latitude, longitude, start_time, end_time, url"

// Repository implements EventRepository for SQLite
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new SQLite repository
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

// InitSchema creates the events table. The UNIQUE constraint on
// external_id backs the upsert invariant at the constraint level, so two
// racing ingestion cycles cannot duplicate a listing.
func (r *Repository) InitSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		external_id TEXT UNIQUE,
		title TEXT,
		category TEXT,
		genre TEXT,
		venue_name TEXT,
		latitude TEXT,
		longitude TEXT,
		start_time TEXT,
		end_time TEXT,
		url TEXT
	)`

	if _, err := r.client.DB().ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create events table: %w", err)
	}

	r.log.Info("SQLite schema initialized successfully")
	return nil
}

// FindByExternalID returns the event with the given provider id, or nil
// when no such event exists.
func (r *Repository) FindByExternalID(ctx context.Context, externalID string) (*domain.Event, error) {
	var event domain.Event
	query := fmt.Sprintf("SELECT %s FROM events WHERE external_id = ?", eventColumns)

	err := r.client.DB().GetContext(ctx, &event, query, externalID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query event by external id: %w", err)
	}

	return &event, nil
}

// Save upserts an event: insert when ID is zero, update otherwise.
func (r *Repository) Save(ctx context.Context, event *domain.Event) error {
	if event.ID == 0 {
		return r.insert(ctx, event)
	}
	return r.update(ctx, event)
}

func (r *Repository) insert(ctx context.Context, event *domain.Event) error {
	query := `
	INSERT INTO events (external_id, title, category, genre, venue_name, latitude, longitude, start_time, end_time, url)
	VALUES (:external_id, :title, :category, :genre, :venue_name, :latitude, :longitude, :start_time, :end_time, :url)`

	result, err := r.client.DB().NamedExecContext(ctx, query, event)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted event id: %w", err)
	}
	event.ID = id

	return nil
}

func (r *Repository) update(ctx context.Context, event *domain.Event) error {
	query := `
	UPDATE events SET
		external_id = :external_id,
		title = :title,
		category = :category,
		genre = :genre,
		venue_name = :venue_name,
		latitude = :latitude,
		longitude = :longitude,
		start_time = :start_time,
		end_time = :end_time,
		url = :url
	WHERE id = :id`

	if _, err := r.client.DB().NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	return nil
}

// List returns all events matching the filter, in insertion order.
func (r *Repository) List(ctx context.Context, filter repository.EventFilter) ([]domain.Event, error) {
	query := fmt.Sprintf("SELECT %s FROM events", eventColumns)

	var conditions []string
	var args []interface{}

	if len(filter.Categories) > 0 {
		conditions = append(conditions, "category IN (?)")
		args = append(args, filter.Categories)
	}
	if len(filter.Genres) > 0 {
		conditions = append(conditions, "genre IN (?)")
		args = append(args, filter.Genres)
	}

	if len(conditions) > 0 {
		expanded, expandedArgs, err := sqlx.In(query+" WHERE "+strings.Join(conditions, " AND "), args...)
		if err != nil {
			return nil, fmt.Errorf("failed to build list query: %w", err)
		}
		query = expanded
		args = expandedArgs
	} else {
		args = nil
	}

	query += " ORDER BY id"

	events := []domain.Event{}
	if err := r.client.DB().SelectContext(ctx, &events, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return events, nil
}

// Count returns the total number of stored events.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.client.DB().GetContext(ctx, &count, "SELECT COUNT(*) FROM events"); err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}

// Ping checks if the database connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.DB().PingContext(ctx)
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.client.Close()
}
