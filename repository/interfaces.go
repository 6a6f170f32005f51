// ABOUTME: Repository layer common interfaces and sentinel errors
// ABOUTME: Defines contracts for secret storage and document persistence

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

package repository

import (
	"context"
	"errors"

	"biotrackr/models"
)

var (
	// ErrSecretNotFound is returned when a named secret does not exist.
	ErrSecretNotFound = errors.New("secret not found")

	// ErrDocumentNotFound is returned when no document matches a query.
	ErrDocumentNotFound = errors.New("document not found")
)

// SecretStore reads and writes named secrets in an external vault.
type SecretStore interface {
	GetSecret(ctx context.Context, name string) (string, error)
	SetSecret(ctx context.Context, name, value string) error
}

// DocumentRepository persists and queries document envelopes of one
// partition (documentType). Listing and counting are independent calls, so a
// count is not guaranteed transactionally consistent with a page fetch.
type DocumentRepository[D models.Document] interface {
	Upsert(ctx context.Context, doc D) error
	GetByDate(ctx context.Context, date string) (D, error)
	List(ctx context.Context, page models.PaginationRequest) ([]D, error)
	ListByDateRange(ctx context.Context, startDate, endDate string, page models.PaginationRequest) ([]D, error)
	Count(ctx context.Context) (int, error)
	CountByDateRange(ctx context.Context, startDate, endDate string) (int, error)
}
