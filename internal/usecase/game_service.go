package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/futemax/futemax-api/internal/domain/embed"
	"github.com/futemax/futemax-api/internal/domain/game"
	"github.com/futemax/futemax-api/internal/platform/id"
	"github.com/futemax/futemax-api/internal/platform/logging"
)

// FixtureRefresher is the slice of SyncService the game listing needs:
// an on-demand provider pull plus cache invalidation after admin writes.
type FixtureRefresher interface {
	SyncFixtures(ctx context.Context) (SyncResult, error)
	InvalidateFixtureCache(ctx context.Context)
}

type GameService struct {
	games     game.Repository
	refresher FixtureRefresher
	ids       id.Generator
	lifecycle game.LifecycleConfig
	logger    *logging.Logger
	now       func() time.Time
}

func NewGameService(
	games game.Repository,
	refresher FixtureRefresher,
	ids id.Generator,
	lifecycle game.LifecycleConfig,
	logger *logging.Logger,
) *GameService {
	if logger == nil {
		logger = logging.Default()
	}
	if ids == nil {
		ids = id.NewRandomGenerator()
	}

	return &GameService{
		games:     games,
		refresher: refresher,
		ids:       ids,
		lifecycle: lifecycle,
		logger:    logger,
		now:       time.Now,
	}
}

type ListGamesInput struct {
	// Refresh triggers a provider sync before listing. A failed refresh
	// degrades to the stored collection instead of failing the request.
	Refresh bool
	// Date filters the listing to one calendar day (YYYY-MM-DD).
	Date string
}

type GameInput struct {
	HomeTeam       string
	AwayTeam       string
	League         string
	Date           string
	Time           string
	Status         string
	EmbedCodes     []string
	Viewers        int
	SEOTitle       string
	SEODescription string
	SEOKeywords    string
}

// ListGames returns the evaluated, ordered public schedule. Evaluation
// results are written back so repeated reads converge without waiting
// for the background job.
func (s *GameService) ListGames(ctx context.Context, input ListGamesInput) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.ListGames")
	defer span.End()

	date := strings.TrimSpace(input.Date)
	if date != "" {
		if _, err := time.ParseInLocation(game.DateLayout, date, time.UTC); err != nil {
			return nil, fmt.Errorf("%w: date must be formatted as %s", ErrInvalidInput, game.DateLayout)
		}
	}

	if input.Refresh && s.refresher != nil {
		if _, err := s.refresher.SyncFixtures(ctx); err != nil {
			s.logger.WarnContext(ctx, "on-demand fixture refresh failed, serving stored games", "error", err)
		}
	}

	stored, err := s.games.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	evaluated := game.Evaluate(stored, s.now(), s.lifecycle)
	if err := s.games.ReplaceAll(ctx, evaluated); err != nil {
		return nil, fmt.Errorf("persist evaluated games: %w", err)
	}

	out := evaluated
	if date != "" {
		out = make([]game.Game, 0, len(evaluated))
		for _, g := range evaluated {
			if g.Date == date {
				out = append(out, g)
			}
		}
	}

	game.SortSchedule(out, s.lifecycle.Location)
	return out, nil
}

func (s *GameService) GetGame(ctx context.Context, gameID string) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.GetGame")
	defer span.End()

	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return game.Game{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}

	stored, found, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		return game.Game{}, fmt.Errorf("get game id=%s: %w", gameID, err)
	}
	if !found {
		return game.Game{}, fmt.Errorf("%w: game id=%s", ErrNotFound, gameID)
	}

	evaluated := game.Evaluate([]game.Game{stored}, s.now(), s.lifecycle)
	if len(evaluated) == 0 {
		// Retention pruned it between writes.
		return game.Game{}, fmt.Errorf("%w: game id=%s", ErrNotFound, gameID)
	}
	return evaluated[0], nil
}

// PlayerResolution is one resolved transmission slot plus the cycling
// indexes the player UI needs to move between sources.
type PlayerResolution struct {
	GameID   string
	Slot     int
	Players  int
	NextSlot int
	PrevSlot int
	Markup   embed.TrustedMarkup
}

// ResolveEmbed returns the player markup for one of the game's
// transmission slots. Out-of-range slots wrap modulo the available
// count so stale client indexes keep playing.
func (s *GameService) ResolveEmbed(ctx context.Context, gameID string, slot int) (PlayerResolution, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.ResolveEmbed")
	defer span.End()

	g, err := s.GetGame(ctx, gameID)
	if err != nil {
		return PlayerResolution{}, err
	}

	markup, err := embed.Resolve(g.EmbedCodes, slot)
	if err != nil {
		return PlayerResolution{}, fmt.Errorf("%w: game id=%s has %s", ErrNotFound, gameID, err)
	}

	count := embed.Count(g.EmbedCodes)
	if slot < 0 {
		slot = 0
	}
	slot = slot % count

	return PlayerResolution{
		GameID:   g.ID,
		Slot:     slot,
		Players:  count,
		NextSlot: embed.NextIndex(slot, count),
		PrevSlot: embed.PrevIndex(slot, count),
		Markup:   markup,
	}, nil
}

func (s *GameService) CreateGame(ctx context.Context, input GameInput) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.CreateGame")
	defer span.End()

	normalized, err := s.normalizeGameInput(input)
	if err != nil {
		return game.Game{}, err
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return game.Game{}, fmt.Errorf("generate game id: %w", err)
	}
	normalized.ID = newID

	if err := s.games.Create(ctx, normalized); err != nil {
		return game.Game{}, fmt.Errorf("create game: %w", err)
	}

	s.invalidateFixtureCache(ctx)
	s.logger.InfoContext(ctx, "game created", "game_id", normalized.ID, "home", normalized.HomeTeam, "away", normalized.AwayTeam)
	return normalized, nil
}

// UpdateGame applies a shallow merge over the stored record: blank
// fields keep the stored value, a non-nil embed list replaces it
// wholesale. Identity and provider origin never change.
func (s *GameService) UpdateGame(ctx context.Context, gameID string, patch GameInput) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.UpdateGame")
	defer span.End()

	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return game.Game{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}

	stored, found, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		return game.Game{}, fmt.Errorf("get game id=%s: %w", gameID, err)
	}
	if !found {
		return game.Game{}, fmt.Errorf("%w: game id=%s", ErrNotFound, gameID)
	}

	merged, err := mergeGamePatch(stored, patch)
	if err != nil {
		return game.Game{}, err
	}

	updated, err := s.games.Update(ctx, merged)
	if err != nil {
		return game.Game{}, fmt.Errorf("update game id=%s: %w", gameID, err)
	}
	if !updated {
		return game.Game{}, fmt.Errorf("%w: game id=%s", ErrNotFound, gameID)
	}

	s.invalidateFixtureCache(ctx)
	s.logger.InfoContext(ctx, "game updated", "game_id", gameID)
	return merged, nil
}

func mergeGamePatch(stored game.Game, patch GameInput) (game.Game, error) {
	merged := stored

	applyString := func(dst *string, value string) {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			*dst = trimmed
		}
	}
	applyString(&merged.HomeTeam, patch.HomeTeam)
	applyString(&merged.AwayTeam, patch.AwayTeam)
	applyString(&merged.League, patch.League)
	applyString(&merged.SEOTitle, patch.SEOTitle)
	applyString(&merged.SEODescription, patch.SEODescription)
	applyString(&merged.SEOKeywords, patch.SEOKeywords)

	if date := strings.TrimSpace(patch.Date); date != "" {
		if _, err := time.ParseInLocation(game.DateLayout, date, time.UTC); err != nil {
			return game.Game{}, fmt.Errorf("%w: date must be formatted as %s", ErrInvalidInput, game.DateLayout)
		}
		merged.Date = date
	}
	if kickoffTime := strings.TrimSpace(patch.Time); kickoffTime != "" {
		if _, err := time.ParseInLocation(game.TimeLayout, kickoffTime, time.UTC); err != nil {
			return game.Game{}, fmt.Errorf("%w: time must be formatted as %s", ErrInvalidInput, game.TimeLayout)
		}
		merged.Time = kickoffTime
	}

	if trimmed := strings.TrimSpace(patch.Status); trimmed != "" {
		if !game.IsValidStatus(strings.ToLower(trimmed)) {
			return game.Game{}, fmt.Errorf("%w: status must be one of upcoming, live, finished", ErrInvalidInput)
		}
		merged.Status = game.NormalizeStatus(trimmed)
	}

	if patch.EmbedCodes != nil {
		if len(patch.EmbedCodes) > game.MaxPlayerSlots {
			return game.Game{}, fmt.Errorf("%w: at most %d embed slots are supported", ErrInvalidInput, game.MaxPlayerSlots)
		}
		embeds := make([]string, 0, len(patch.EmbedCodes))
		for _, entry := range patch.EmbedCodes {
			embeds = append(embeds, embed.ConvertEntry(entry))
		}
		merged.EmbedCodes = embeds
	}

	if patch.Viewers > 0 {
		merged.Viewers = patch.Viewers
	}

	return merged, nil
}

func (s *GameService) DeleteGame(ctx context.Context, gameID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.DeleteGame")
	defer span.End()

	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}

	deleted, err := s.games.Delete(ctx, gameID)
	if err != nil {
		return fmt.Errorf("delete game id=%s: %w", gameID, err)
	}
	if !deleted {
		return fmt.Errorf("%w: game id=%s", ErrNotFound, gameID)
	}

	s.invalidateFixtureCache(ctx)
	s.logger.InfoContext(ctx, "game deleted", "game_id", gameID)
	return nil
}

// EvaluateNow runs one lifecycle pass over the stored collection and
// persists the result. The scheduled auto-update job calls this.
func (s *GameService) EvaluateNow(ctx context.Context) (game.EvaluateSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.EvaluateNow")
	defer span.End()

	stored, err := s.games.List(ctx)
	if err != nil {
		return game.EvaluateSummary{}, fmt.Errorf("list games: %w", err)
	}

	evaluated := game.Evaluate(stored, s.now(), s.lifecycle)
	if err := s.games.ReplaceAll(ctx, evaluated); err != nil {
		return game.EvaluateSummary{}, fmt.Errorf("persist evaluated games: %w", err)
	}

	summary := game.Summarize(evaluated)
	s.logger.InfoContext(ctx, "lifecycle evaluation completed",
		"total", summary.Total,
		"live", summary.Live,
		"upcoming", summary.Upcoming,
		"finished", summary.Finished,
	)
	return summary, nil
}

func (s *GameService) invalidateFixtureCache(ctx context.Context) {
	if s.refresher != nil {
		s.refresher.InvalidateFixtureCache(ctx)
	}
}

func (s *GameService) normalizeGameInput(input GameInput) (game.Game, error) {
	home := strings.TrimSpace(input.HomeTeam)
	away := strings.TrimSpace(input.AwayTeam)
	leagueName := strings.TrimSpace(input.League)
	date := strings.TrimSpace(input.Date)
	kickoffTime := strings.TrimSpace(input.Time)

	switch {
	case home == "":
		return game.Game{}, fmt.Errorf("%w: homeTeam is required", ErrInvalidInput)
	case away == "":
		return game.Game{}, fmt.Errorf("%w: awayTeam is required", ErrInvalidInput)
	case leagueName == "":
		return game.Game{}, fmt.Errorf("%w: league is required", ErrInvalidInput)
	case date == "":
		return game.Game{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	case kickoffTime == "":
		return game.Game{}, fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if _, err := time.ParseInLocation(game.DateLayout, date, time.UTC); err != nil {
		return game.Game{}, fmt.Errorf("%w: date must be formatted as %s", ErrInvalidInput, game.DateLayout)
	}
	if _, err := time.ParseInLocation(game.TimeLayout, kickoffTime, time.UTC); err != nil {
		return game.Game{}, fmt.Errorf("%w: time must be formatted as %s", ErrInvalidInput, game.TimeLayout)
	}

	status := game.StatusUpcoming
	if trimmed := strings.TrimSpace(input.Status); trimmed != "" {
		status = game.NormalizeStatus(trimmed)
		if !game.IsValidStatus(strings.ToLower(trimmed)) {
			return game.Game{}, fmt.Errorf("%w: status must be one of upcoming, live, finished", ErrInvalidInput)
		}
	}

	if len(input.EmbedCodes) > game.MaxPlayerSlots {
		return game.Game{}, fmt.Errorf("%w: at most %d embed slots are supported", ErrInvalidInput, game.MaxPlayerSlots)
	}
	embeds := make([]string, 0, len(input.EmbedCodes))
	for _, entry := range input.EmbedCodes {
		embeds = append(embeds, embed.ConvertEntry(entry))
	}

	viewers := input.Viewers
	if viewers < 0 {
		viewers = 0
	}

	return game.Game{
		HomeTeam:       home,
		AwayTeam:       away,
		League:         leagueName,
		Date:           date,
		Time:           kickoffTime,
		Status:         status,
		EmbedCodes:     embeds,
		Viewers:        viewers,
		SEOTitle:       strings.TrimSpace(input.SEOTitle),
		SEODescription: strings.TrimSpace(input.SEODescription),
		SEOKeywords:    strings.TrimSpace(input.SEOKeywords),
	}, nil
}
