package httpapi

import (
	"net/http"

	"github.com/futemax/futemax-api/internal/domain/game"
)

type lifecycleSummaryResponse struct {
	Total    int `json:"total"`
	Live     int `json:"live"`
	Upcoming int `json:"upcoming"`
	Finished int `json:"finished"`
}

// RunAutoUpdateJob recomputes lifecycle state for every stored game.
// Invoked on a schedule through the internal job endpoint.
func (h *Handler) RunAutoUpdateJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunAutoUpdateJob")
	defer span.End()

	summary, err := h.gameService.EvaluateNow(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "auto-update job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toLifecycleSummaryResponse(summary))
}

// RunSyncFixturesJob pulls provider fixtures and merges them into the
// stored schedule.
func (h *Handler) RunSyncFixturesJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSyncFixturesJob")
	defer span.End()

	result, err := h.syncService.SyncFixtures(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "sync-fixtures job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func toLifecycleSummaryResponse(summary game.EvaluateSummary) lifecycleSummaryResponse {
	return lifecycleSummaryResponse{
		Total:    summary.Total,
		Live:     summary.Live,
		Upcoming: summary.Upcoming,
		Finished: summary.Finished,
	}
}
