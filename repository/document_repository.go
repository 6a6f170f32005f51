// ABOUTME: PostgreSQL implementation of the DocumentRepository interface
// ABOUTME: Stores whole document envelopes as JSONB partitioned by documentType

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"biotrackr/models"
)

// PostgresDocumentRepository implements DocumentRepository for one document
// partition. The full envelope is serialized into the payload column, so a
// row round-trips to exactly the JSON the API serves.
type PostgresDocumentRepository[D models.Document] struct {
	db      DatabaseIface
	docType string
	logger  *slog.Logger
}

// NewPostgresDocumentRepository creates a repository scoped to one
// documentType partition.
func NewPostgresDocumentRepository[D models.Document](db DatabaseIface, docType string, logger *slog.Logger) *PostgresDocumentRepository[D] {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresDocumentRepository[D]{
		db:      db,
		docType: docType,
		logger:  logger.With("component", "document_repository", "document_type", docType),
	}
}

// Upsert inserts the document or replaces it when the (documentType, id)
// pair already exists.
func (r *PostgresDocumentRepository[D]) Upsert(ctx context.Context, doc D) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document %s: %w", doc.DocumentID(), err)
	}

	query := `
		INSERT INTO documents (id, document_type, date, payload, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (document_type, id)
		DO UPDATE SET date = EXCLUDED.date, payload = EXCLUDED.payload, updated_at = now()`

	if _, err := r.db.Exec(ctx, query, doc.DocumentID(), r.docType, doc.DocumentDate(), payload); err != nil {
		r.logger.Error("Failed to upsert document", "id", doc.DocumentID(), "error", err)
		return fmt.Errorf("failed to upsert document %s: %w", doc.DocumentID(), err)
	}

	r.logger.Debug("Upserted document", "id", doc.DocumentID(), "date", doc.DocumentDate())
	return nil
}

// GetByDate returns the first document with an exact date match in the
// store's natural order, or ErrDocumentNotFound.
func (r *PostgresDocumentRepository[D]) GetByDate(ctx context.Context, date string) (D, error) {
	var doc D

	query := `SELECT payload FROM documents WHERE document_type = $1 AND date = $2 LIMIT 1`

	var payload []byte
	err := r.db.QueryRow(ctx, query, r.docType, date).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return doc, fmt.Errorf("date %s: %w", date, ErrDocumentNotFound)
		}
		r.logger.Error("Failed to query document by date", "date", date, "error", err)
		return doc, fmt.Errorf("failed to query document by date: %w", err)
	}

	if err := json.Unmarshal(payload, &doc); err != nil {
		return doc, fmt.Errorf("failed to decode stored document: %w", err)
	}
	return doc, nil
}

// List returns one page of the partition ordered by date descending.
func (r *PostgresDocumentRepository[D]) List(ctx context.Context, page models.PaginationRequest) ([]D, error) {
	query := `
		SELECT payload FROM documents
		WHERE document_type = $1
		ORDER BY date DESC
		OFFSET $2 LIMIT $3`

	rows, err := r.db.Query(ctx, query, r.docType, page.Offset(), page.PageSize)
	if err != nil {
		r.logger.Error("Failed to list documents", "error", err)
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	return scanDocuments[D](rows)
}

// ListByDateRange returns one page of documents with startDate <= date <=
// endDate, ordered by date ascending.
func (r *PostgresDocumentRepository[D]) ListByDateRange(ctx context.Context, startDate, endDate string, page models.PaginationRequest) ([]D, error) {
	query := `
		SELECT payload FROM documents
		WHERE document_type = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
		OFFSET $4 LIMIT $5`

	rows, err := r.db.Query(ctx, query, r.docType, startDate, endDate, page.Offset(), page.PageSize)
	if err != nil {
		r.logger.Error("Failed to list documents by date range",
			"start_date", startDate,
			"end_date", endDate,
			"error", err)
		return nil, fmt.Errorf("failed to list documents by date range: %w", err)
	}
	defer rows.Close()

	return scanDocuments[D](rows)
}

// Count returns the total number of documents in the partition.
func (r *PostgresDocumentRepository[D]) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM documents WHERE document_type = $1`

	var count int
	if err := r.db.QueryRow(ctx, query, r.docType).Scan(&count); err != nil {
		r.logger.Error("Failed to count documents", "error", err)
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return count, nil
}

// CountByDateRange returns the number of documents inside the inclusive
// date range.
func (r *PostgresDocumentRepository[D]) CountByDateRange(ctx context.Context, startDate, endDate string) (int, error) {
	query := `SELECT COUNT(*) FROM documents WHERE document_type = $1 AND date >= $2 AND date <= $3`

	var count int
	if err := r.db.QueryRow(ctx, query, r.docType, startDate, endDate).Scan(&count); err != nil {
		r.logger.Error("Failed to count documents by date range", "error", err)
		return 0, fmt.Errorf("failed to count documents by date range: %w", err)
	}
	return count, nil
}

func scanDocuments[D models.Document](rows pgx.Rows) ([]D, error) {
	docs := []D{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}

		var doc D
		if err := json.Unmarshal(payload, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode stored document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("document row iteration failed: %w", err)
	}
	return docs, nil
}
