// ABOUTME: This file defines the offset-based pagination request/response contract
// ABOUTME: Shared by every query API over persisted documents

package models

// Pagination defaults applied when the caller omits the parameters.
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 20
)

// PaginationParams carries the raw pagination query parameters. Pointer
// fields distinguish an omitted parameter from an explicit zero, so an
// explicit out-of-range value fails validation instead of silently
// falling back to the defaults.
type PaginationParams struct {
	PageNumber *int `query:"pageNumber" validate:"omitempty,min=1"`
	PageSize   *int `query:"pageSize" validate:"omitempty,min=1"`
}

// Resolve applies the defaults for omitted parameters.
func (p PaginationParams) Resolve() PaginationRequest {
	page := PaginationRequest{
		PageNumber: DefaultPageNumber,
		PageSize:   DefaultPageSize,
	}
	if p.PageNumber != nil {
		page.PageNumber = *p.PageNumber
	}
	if p.PageSize != nil {
		page.PageSize = *p.PageSize
	}
	return page
}

// PaginationRequest is the resolved page of a document listing.
type PaginationRequest struct {
	PageNumber int
	PageSize   int
}

// Offset returns the number of documents to skip for this page.
func (p PaginationRequest) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

// PaginationResponse is one page of documents plus the unpaged total.
// TotalCount comes from an independent count query, so it may not be
// transactionally consistent with Items under concurrent writes.
type PaginationResponse[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
}

// NewPaginationResponse assembles a page, never leaving Items nil so the
// JSON body always carries an array.
func NewPaginationResponse[T any](items []T, totalCount int, page PaginationRequest) PaginationResponse[T] {
	if items == nil {
		items = []T{}
	}
	return PaginationResponse[T]{
		Items:      items,
		TotalCount: totalCount,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}
}
