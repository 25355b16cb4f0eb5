// Package httpapi exposes the public schedule, the admin CRUD surface
// and the internal job endpoints over plain net/http.
package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	validator "github.com/go-playground/validator/v10"

	"github.com/futemax/futemax-api/internal/platform/logging"
	"github.com/futemax/futemax-api/internal/usecase"
)

type Handler struct {
	gameService     *usecase.GameService
	syncService     *usecase.SyncService
	authService     *usecase.AuthService
	settingsService *usecase.SettingsService
	leagueService   *usecase.LeagueService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	gameService *usecase.GameService,
	syncService *usecase.SyncService,
	authService *usecase.AuthService,
	settingsService *usecase.SettingsService,
	leagueService *usecase.LeagueService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		gameService:     gameService,
		syncService:     syncService,
		authService:     authService,
		settingsService: settingsService,
		leagueService:   leagueService,
		logger:          logger,
		validator:       validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(body io.Reader, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) validateRequest(ctx context.Context, req any) error {
	if err := h.validator.StructCtx(ctx, req); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
