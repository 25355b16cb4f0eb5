package httpapi

import (
	"net/http"
	"strconv"

	"github.com/futemax/futemax-api/internal/domain/embed"
	"github.com/futemax/futemax-api/internal/domain/game"
	"github.com/futemax/futemax-api/internal/usecase"
)

type gameRequest struct {
	HomeTeam       string   `json:"homeTeam" validate:"required"`
	AwayTeam       string   `json:"awayTeam" validate:"required"`
	League         string   `json:"league" validate:"required"`
	Date           string   `json:"date" validate:"required"`
	Time           string   `json:"time" validate:"required"`
	Status         string   `json:"status" validate:"omitempty,oneof=upcoming live finished"`
	EmbedCodes     []string `json:"embedCodes"`
	Viewers        int      `json:"viewers"`
	SEOTitle       string   `json:"seoTitle"`
	SEODescription string   `json:"seoDescription"`
	SEOKeywords    string   `json:"seoKeywords"`
}

// gameUpdateRequest is the partial-update body: absent fields keep the
// stored values.
type gameUpdateRequest struct {
	HomeTeam       string   `json:"homeTeam"`
	AwayTeam       string   `json:"awayTeam"`
	League         string   `json:"league"`
	Date           string   `json:"date"`
	Time           string   `json:"time"`
	Status         string   `json:"status" validate:"omitempty,oneof=upcoming live finished"`
	EmbedCodes     []string `json:"embedCodes"`
	Viewers        int      `json:"viewers"`
	SEOTitle       string   `json:"seoTitle"`
	SEODescription string   `json:"seoDescription"`
	SEOKeywords    string   `json:"seoKeywords"`
}

type gameResponse struct {
	ID             string   `json:"id"`
	HomeTeam       string   `json:"homeTeam"`
	AwayTeam       string   `json:"awayTeam"`
	League         string   `json:"league"`
	Date           string   `json:"date"`
	Time           string   `json:"time"`
	Status         string   `json:"status"`
	EmbedCodes     []string `json:"embedCodes"`
	PlayerCount    int      `json:"playerCount"`
	Viewers        int      `json:"viewers"`
	SEOTitle       string   `json:"seoTitle,omitempty"`
	SEODescription string   `json:"seoDescription,omitempty"`
	SEOKeywords    string   `json:"seoKeywords,omitempty"`
	FromAPI        bool     `json:"fromApi"`
}

type gameListResponse struct {
	Games []gameResponse `json:"games"`
	Total int            `json:"total"`
}

type embedResponse struct {
	GameID   string `json:"gameId"`
	Slot     int    `json:"slot"`
	Players  int    `json:"players"`
	NextSlot int    `json:"nextSlot"`
	PrevSlot int    `json:"prevSlot"`
	HTML     string `json:"html"`
}

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGames")
	defer span.End()

	input := usecase.ListGamesInput{
		Refresh: r.URL.Query().Get("refresh") == "true",
		Date:    r.URL.Query().Get("date"),
	}

	games, err := h.gameService.ListGames(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "list games failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toGameListResponse(games))
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGame")
	defer span.End()

	g, err := h.gameService.GetGame(ctx, r.PathValue("gameID"))
	if err != nil {
		h.logger.WarnContext(ctx, "get game failed", "game_id", r.PathValue("gameID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toGameResponse(g))
}

func (h *Handler) GetGameEmbed(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGameEmbed")
	defer span.End()

	slot := 0
	if raw := r.URL.Query().Get("slot"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, usecase.ErrInvalidInput)
			return
		}
		slot = parsed
	}

	resolution, err := h.gameService.ResolveEmbed(ctx, r.PathValue("gameID"), slot)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve embed failed", "game_id", r.PathValue("gameID"), "slot", slot, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, embedResponse{
		GameID:   resolution.GameID,
		Slot:     resolution.Slot,
		Players:  resolution.Players,
		NextSlot: resolution.NextSlot,
		PrevSlot: resolution.PrevSlot,
		HTML:     string(resolution.Markup),
	})
}

func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGame")
	defer span.End()

	var req gameRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.gameService.CreateGame(ctx, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "create game failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, toGameResponse(created))
}

func (h *Handler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateGame")
	defer span.End()

	var req gameUpdateRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.gameService.UpdateGame(ctx, r.PathValue("gameID"), req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "update game failed", "game_id", r.PathValue("gameID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toGameResponse(updated))
}

func (h *Handler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteGame")
	defer span.End()

	if err := h.gameService.DeleteGame(ctx, r.PathValue("gameID")); err != nil {
		h.logger.WarnContext(ctx, "delete game failed", "game_id", r.PathValue("gameID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"deleted": r.PathValue("gameID")})
}

func (r gameUpdateRequest) toInput() usecase.GameInput {
	return usecase.GameInput{
		HomeTeam:       r.HomeTeam,
		AwayTeam:       r.AwayTeam,
		League:         r.League,
		Date:           r.Date,
		Time:           r.Time,
		Status:         r.Status,
		EmbedCodes:     r.EmbedCodes,
		Viewers:        r.Viewers,
		SEOTitle:       r.SEOTitle,
		SEODescription: r.SEODescription,
		SEOKeywords:    r.SEOKeywords,
	}
}

func (r gameRequest) toInput() usecase.GameInput {
	return usecase.GameInput{
		HomeTeam:       r.HomeTeam,
		AwayTeam:       r.AwayTeam,
		League:         r.League,
		Date:           r.Date,
		Time:           r.Time,
		Status:         r.Status,
		EmbedCodes:     r.EmbedCodes,
		Viewers:        r.Viewers,
		SEOTitle:       r.SEOTitle,
		SEODescription: r.SEODescription,
		SEOKeywords:    r.SEOKeywords,
	}
}

func toGameResponse(g game.Game) gameResponse {
	return gameResponse{
		ID:             g.ID,
		HomeTeam:       g.HomeTeam,
		AwayTeam:       g.AwayTeam,
		League:         g.League,
		Date:           g.Date,
		Time:           g.Time,
		Status:         g.Status,
		EmbedCodes:     g.EmbedCodes,
		PlayerCount:    embed.Count(g.EmbedCodes),
		Viewers:        g.Viewers,
		SEOTitle:       g.SEOTitle,
		SEODescription: g.SEODescription,
		SEOKeywords:    g.SEOKeywords,
		FromAPI:        g.FromAPI,
	}
}

func toGameListResponse(games []game.Game) gameListResponse {
	out := gameListResponse{
		Games: make([]gameResponse, 0, len(games)),
		Total: len(games),
	}
	for _, g := range games {
		out.Games = append(out.Games, toGameResponse(g))
	}
	return out
}
