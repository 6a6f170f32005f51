// ABOUTME: PostgreSQL connection management for the document store
// ABOUTME: Owns the pgx pool configuration and the documents schema

package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"biotrackr/config"
)

// Connection pool configuration constants
const (
	maxConns        = int32(25)
	minConns        = int32(5)
	maxConnLifetime = time.Hour
	maxConnIdleTime = 30 * time.Minute
)

const documentsSchema = `
CREATE TABLE IF NOT EXISTS documents (
    id            TEXT        NOT NULL,
    document_type TEXT        NOT NULL,
    date          TEXT        NOT NULL,
    payload       JSONB       NOT NULL,
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    PRIMARY KEY (document_type, id)
);
CREATE INDEX IF NOT EXISTS idx_documents_type_date ON documents (document_type, date);
`

// DatabaseIface defines the database operations used by the document
// repository, satisfied by *pgxpool.Pool and by pgxmock in tests.
type DatabaseIface interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Ping(ctx context.Context) error
}

// NewPostgresPool creates a PostgreSQL connection pool for the document
// store and verifies connectivity.
func NewPostgresPool(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = maxConns
	poolConfig.MinConns = minConns
	poolConfig.MaxConnLifetime = maxConnLifetime
	poolConfig.MaxConnIdleTime = maxConnIdleTime

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established",
		"host", cfg.Host,
		"database", cfg.Name,
		"max_conns", poolConfig.MaxConns)

	return pool, nil
}

// EnsureSchema creates the documents table if it does not exist.
func EnsureSchema(ctx context.Context, db DatabaseIface) error {
	if _, err := db.Exec(ctx, documentsSchema); err != nil {
		return fmt.Errorf("failed to ensure documents schema: %w", err)
	}
	return nil
}
