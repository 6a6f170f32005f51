package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"biotrackr/models"
	"biotrackr/repository"
	"biotrackr/rest/handlers"
)

// RouterConfig holds router configuration
type RouterConfig[D models.Document] struct {
	ServiceName string
	Repo        repository.DocumentRepository[D]
	DB          handlers.Pinger
	Logger      *slog.Logger
}

// NewRouter creates and configures the Echo router for one query service.
func NewRouter[D models.Document](config RouterConfig[D]) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	documentHandler := handlers.NewDocumentHandler(config.Repo, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.ServiceName, config.DB, config.Logger)

	// Global middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.GET("/", documentHandler.GetAll)
	e.GET("/healthz/liveness", healthHandler.LivenessCheck)
	e.GET("/range/:startDate/:endDate", documentHandler.GetByDateRange)
	e.GET("/:date", documentHandler.GetByDate)

	return e
}
