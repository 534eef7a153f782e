package handler

import (
	"net/http"

	"leaguedash/internal/api/apierr"
	"leaguedash/internal/api/response"
	"leaguedash/internal/services/catalog"
)

// CatalogHandler exposes the player cache refresh action
type CatalogHandler struct {
	catalog *catalog.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: catalogService}
}

// Refresh handles POST /api/v1/players/refresh. It forces a full
// catalog ingestion regardless of cache age.
func (h *CatalogHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	players, err := h.catalog.FetchAndStorePlayers(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RefreshResult{Players: len(players)})
}
