package handler

import (
	"net/http"

	"leaguedash/internal/api/apierr"
	"leaguedash/internal/api/response"
	"leaguedash/internal/services/ownership"
)

// OwnershipHandler exposes the ownership statistics refresh action
type OwnershipHandler struct {
	ownership *ownership.Service
}

// NewOwnershipHandler creates a new ownership handler
func NewOwnershipHandler(ownershipService *ownership.Service) *OwnershipHandler {
	return &OwnershipHandler{ownership: ownershipService}
}

// Refresh handles POST /api/v1/ownership/refresh?season=YYYY
func (h *OwnershipHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	season := r.URL.Query().Get("season")
	if season == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("season query parameter is required"))
		return
	}

	count, err := h.ownership.Refresh(r.Context(), season)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RefreshResult{Players: count})
}
