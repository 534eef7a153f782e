package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"leaguedash/internal/api/apierr"
	"leaguedash/internal/api/response"
	"leaguedash/internal/services/standings"
)

// StandingsHandler serves the aggregated league standings view
type StandingsHandler struct {
	standings *standings.Service
}

// NewStandingsHandler creates a new standings handler
func NewStandingsHandler(standingsService *standings.Service) *StandingsHandler {
	return &StandingsHandler{standings: standingsService}
}

// Get handles GET /api/v1/leagues/{league_id}/standings
func (h *StandingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	leagueID := mux.Vars(r)["league_id"]
	if leagueID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("league_id is required"))
		return
	}

	teams, err := h.standings.Load(r.Context(), leagueID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StandingsFromModel(leagueID, teams))
}
