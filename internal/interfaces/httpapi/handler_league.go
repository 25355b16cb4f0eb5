package httpapi

import (
	"net/http"

	"github.com/futemax/futemax-api/internal/domain/league"
)

type leagueResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Country    string `json:"country"`
	Enabled    bool   `json:"enabled"`
	Priority   int    `json:"priority"`
	ProviderID int64  `json:"providerId,omitempty"`
}

type leagueListResponse struct {
	Leagues []leagueResponse `json:"leagues"`
	Total   int              `json:"total"`
}

type setEnabledLeaguesRequest struct {
	LeagueIDs []string `json:"leagueIds"`
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toLeagueListResponse(leagues))
}

func (h *Handler) SetEnabledLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetEnabledLeagues")
	defer span.End()

	var req setEnabledLeaguesRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	leagues, err := h.leagueService.SetEnabledLeagues(ctx, req.LeagueIDs)
	if err != nil {
		h.logger.WarnContext(ctx, "set enabled leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toLeagueListResponse(leagues))
}

func toLeagueListResponse(leagues []league.Config) leagueListResponse {
	out := leagueListResponse{
		Leagues: make([]leagueResponse, 0, len(leagues)),
		Total:   len(leagues),
	}
	for _, item := range leagues {
		out.Leagues = append(out.Leagues, leagueResponse{
			ID:         item.ID,
			Name:       item.Name,
			Country:    item.Country,
			Enabled:    item.Enabled,
			Priority:   item.Priority,
			ProviderID: item.ProviderID,
		})
	}
	return out
}
