package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// Client wraps the SQLite connection
type Client struct {
	db   *sqlx.DB
	path string
	log  *zap.Logger
}

// NewClient opens the SQLite database at the given path (":memory:" for
// an in-memory database) and verifies the connection.
func NewClient(ctx context.Context, path string, log *zap.Logger) (*Client, error) {
	log.Info("Opening SQLite database", zap.String("path", path))

	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		log.Error("Failed to open SQLite database", zap.Error(err))
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// SQLite allows a single writer; one pooled connection avoids
	// SQLITE_BUSY under concurrent triggers and keeps :memory: databases
	// from splitting across connections.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		log.Error("Failed to ping SQLite database", zap.Error(err))
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	log.Info("SQLite connection established successfully")

	return &Client{db: db, path: path, log: log}, nil
}

// DB returns the underlying database handle
func (c *Client) DB() *sqlx.DB {
	return c.db
}

// Close closes the database connection
func (c *Client) Close() error {
	c.log.Info("Closing SQLite database")
	if err := c.db.Close(); err != nil {
		c.log.Error("Error closing SQLite database", zap.Error(err))
		return err
	}
	return nil
}
