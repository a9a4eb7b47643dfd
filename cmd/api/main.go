package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/pfleegoree/planit/internal/config"
	"github.com/pfleegoree/planit/internal/handler"
	"github.com/pfleegoree/planit/internal/ingest"
	"github.com/pfleegoree/planit/internal/logger"
	"github.com/pfleegoree/planit/internal/provider/ticketmaster"
	"github.com/pfleegoree/planit/internal/repository/sqlite"
	"github.com/pfleegoree/planit/internal/seed"
	"github.com/pfleegoree/planit/internal/service"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	log, err := logger.New(cfg.ServiceEnvironment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting API service",
		zap.String("environment", cfg.ServiceEnvironment),
		zap.String("port", cfg.ServiceAPIPort))

	ctx := context.Background()

	// Initialize SQLite client
	sqliteClient, err := sqlite.NewClient(ctx, cfg.DatabasePath, log)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer func(sqliteClient *sqlite.Client) {
		if err := sqliteClient.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}(sqliteClient)

	// Initialize repository
	repo := sqlite.NewRepository(sqliteClient, log)
	if err := repo.InitSchema(ctx); err != nil {
		log.Fatal("Failed to initialize schema", zap.Error(err))
	}

	if cfg.SeedDatabase {
		if err := seed.Run(ctx, repo, log); err != nil {
			log.Error("Failed to seed database", zap.Error(err))
		}
	}

	// Initialize Ticketmaster client
	tmClient := ticketmaster.NewClient(ticketmaster.Config{
		BaseURL:     cfg.TicketmasterBaseURL,
		APIKey:      cfg.TicketmasterAPIKey,
		City:        cfg.TicketmasterCity,
		CountryCode: cfg.TicketmasterCountryCode,
		PageSize:    cfg.TicketmasterPageSize,
	}, ticketmaster.NewHTTPClient(time.Duration(cfg.ProviderTimeoutSec)*time.Second), log)

	// Initialize ingestor
	ingestor := ingest.NewIngestor(tmClient, repo, log)

	if cfg.FetchOnStartup {
		log.Info("Running startup ingestion cycle")
		ingestor.Run(ctx)
	}

	// Initialize event service
	eventService := service.NewEventService(repo, ingestor, log)

	// Initialize handler; CORS is open for the browser UI.
	h := handler.NewHandler(eventService, log)
	withCORS := cors.Default().Handler(h)

	addr := fmt.Sprintf(":%s", cfg.ServiceAPIPort)
	log.Info("API server starting", zap.String("address", addr))

	if err := http.ListenAndServe(addr, withCORS); err != nil {
		log.Fatal("Failed to start API server", zap.Error(err))
	}
}
