package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"leaguedash/internal/api/handler"
	apimiddleware "leaguedash/internal/api/middleware"
	"leaguedash/internal/api/response"
	"leaguedash/internal/middleware"
	"leaguedash/internal/services/catalog"
	"leaguedash/internal/services/ownership"
	"leaguedash/internal/services/standings"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	StandingsService *standings.Service
	CatalogService   *catalog.Service
	OwnershipService *ownership.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	standingsHandler := handler.NewStandingsHandler(cfg.StandingsService)
	catalogHandler := handler.NewCatalogHandler(cfg.CatalogService)
	ownershipHandler := handler.NewOwnershipHandler(cfg.OwnershipService)

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	api.HandleFunc("/leagues/{league_id}/standings", standingsHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/refresh", catalogHandler.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/ownership/refresh", ownershipHandler.Refresh).Methods(http.MethodPost)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
