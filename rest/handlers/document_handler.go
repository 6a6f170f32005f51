package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"biotrackr/models"
	"biotrackr/repository"
)

// ErrorResponse is the JSON body returned for every non-2xx outcome.
// Store and upstream details never leak into it.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// DocumentHandler serves read-only queries over one document type.
type DocumentHandler[D models.Document] struct {
	repo     repository.DocumentRepository[D]
	validate *validator.Validate
	logger   *slog.Logger
}

// NewDocumentHandler creates a document query handler.
func NewDocumentHandler[D models.Document](repo repository.DocumentRepository[D], logger *slog.Logger) *DocumentHandler[D] {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentHandler[D]{
		repo:     repo,
		validate: validator.New(),
		logger:   logger,
	}
}

// GetAll returns one page of documents ordered by date descending.
// @Summary List documents
// @Router / [get]
func (h *DocumentHandler[D]) GetAll(c echo.Context) error {
	page, err := h.bindPagination(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid pagination parameters",
			Code:  "INVALID_PAGINATION",
		})
	}

	ctx := c.Request().Context()

	total, err := h.repo.Count(ctx)
	if err != nil {
		return h.storeError(c, err)
	}

	docs, err := h.repo.List(ctx, page)
	if err != nil {
		return h.storeError(c, err)
	}

	return c.JSON(http.StatusOK, models.NewPaginationResponse(docs, total, page))
}

// GetByDate returns the single document for one calendar date.
// @Summary Get document by date
// @Router /{date} [get]
func (h *DocumentHandler[D]) GetByDate(c echo.Context) error {
	date := c.Param("date")
	if err := models.ValidateDate(date); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("Invalid date: %s", date),
			Code:  "INVALID_DATE",
		})
	}

	doc, err := h.repo.GetByDate(c.Request().Context(), date)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Error: fmt.Sprintf("No record found for %s", date),
				Code:  "NOT_FOUND",
			})
		}
		return h.storeError(c, err)
	}

	return c.JSON(http.StatusOK, doc)
}

// GetByDateRange returns one page of documents inside an inclusive date
// range, ordered by date ascending.
// @Summary List documents in a date range
// @Router /range/{startDate}/{endDate} [get]
func (h *DocumentHandler[D]) GetByDateRange(c echo.Context) error {
	startDate := c.Param("startDate")
	endDate := c.Param("endDate")

	if err := models.ValidateDate(startDate); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("Invalid date: %s", startDate),
			Code:  "INVALID_DATE",
		})
	}
	if err := models.ValidateDate(endDate); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("Invalid date: %s", endDate),
			Code:  "INVALID_DATE",
		})
	}
	if startDate > endDate {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "startDate must not be after endDate",
			Code:  "INVALID_RANGE",
		})
	}

	page, err := h.bindPagination(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid pagination parameters",
			Code:  "INVALID_PAGINATION",
		})
	}

	ctx := c.Request().Context()

	total, err := h.repo.CountByDateRange(ctx, startDate, endDate)
	if err != nil {
		return h.storeError(c, err)
	}

	docs, err := h.repo.ListByDateRange(ctx, startDate, endDate, page)
	if err != nil {
		return h.storeError(c, err)
	}

	return c.JSON(http.StatusOK, models.NewPaginationResponse(docs, total, page))
}

func (h *DocumentHandler[D]) bindPagination(c echo.Context) (models.PaginationRequest, error) {
	var params models.PaginationParams
	if err := c.Bind(&params); err != nil {
		return models.PaginationRequest{}, err
	}
	if err := h.validate.Struct(&params); err != nil {
		return models.PaginationRequest{}, err
	}
	return params.Resolve(), nil
}

func (h *DocumentHandler[D]) storeError(c echo.Context, err error) error {
	h.logger.Error("Document store query failed",
		"path", c.Request().URL.Path,
		"error", err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: "Internal server error",
		Code:  "INTERNAL_ERROR",
	})
}
