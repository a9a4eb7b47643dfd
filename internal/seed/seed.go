package seed

import (
	"context"

	"go.uber.org/zap"

	"github.com/pfleegoree/planit/internal/domain"
	"github.com/pfleegoree/planit/internal/repository"
)

// Run inserts a sample event for local development when the store is
// empty. The seeded record has no external id, so re-ingestion never
// touches it.
func Run(ctx context.Context, repo repository.EventRepository, log *zap.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Debug("Events table not empty, skipping seed", zap.Int64("count", count))
		return nil
	}

	title := "Rock the Night"
	genre := "Rock"
	category := "Music"
	venue := "Stubbs BBQ"
	start := "2025-08-01T19:00:00Z"
	end := "2025-08-01T22:00:00Z"
	url := "https://ticketmaster.com/event/rock-the-night"

	event := &domain.Event{
		Title:     &title,
		Category:  &category,
		Genre:     &genre,
		VenueName: &venue,
		StartTime: &start,
		EndTime:   &end,
		URL:       &url,
	}

	if err := repo.Save(ctx, event); err != nil {
		return err
	}

	log.Info("Seeded development event", zap.Int64("id", event.ID))
	return nil
}
