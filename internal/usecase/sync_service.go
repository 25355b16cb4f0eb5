package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/futemax/futemax-api/internal/domain/game"
	"github.com/futemax/futemax-api/internal/domain/league"
	"github.com/futemax/futemax-api/internal/platform/cache"
	"github.com/futemax/futemax-api/internal/platform/logging"
)

// ExternalFixture is the provider-shape fixture after transport decoding,
// before normalization into a game record.
type ExternalFixture struct {
	ExternalID    int64
	KickoffAt     time.Time
	StatusCode    string
	LeagueID      int64
	LeagueName    string
	LeagueCountry string
	HomeTeam      string
	AwayTeam      string
}

// FixtureProvider fetches the provider fixtures scheduled on a calendar
// date (YYYY-MM-DD, provider timezone handling is the caller's concern).
type FixtureProvider interface {
	FetchFixturesByDate(ctx context.Context, date string) ([]ExternalFixture, error)
}

type SyncConfig struct {
	Enabled bool
	// DaysAhead is how many days beyond today to fetch. Defaults to 1,
	// so a sync covers today and tomorrow.
	DaysAhead  int
	MaxWorkers int
}

type SyncService struct {
	provider  FixtureProvider
	games     game.Repository
	leagues   league.Repository
	cache     *cache.Store
	cfg       SyncConfig
	lifecycle game.LifecycleConfig
	logger    *logging.Logger
	now       func() time.Time
}

func NewSyncService(
	provider FixtureProvider,
	games game.Repository,
	leagues league.Repository,
	fixtureCache *cache.Store,
	cfg SyncConfig,
	lifecycle game.LifecycleConfig,
	logger *logging.Logger,
) *SyncService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.DaysAhead < 0 {
		cfg.DaysAhead = 1
	}

	return &SyncService{
		provider:  provider,
		games:     games,
		leagues:   leagues,
		cache:     fixtureCache,
		cfg:       cfg,
		lifecycle: lifecycle,
		logger:    logger,
		now:       time.Now,
	}
}

type SyncResult struct {
	Dates       []string             `json:"dates"`
	Fetched     int                  `json:"fetched"`
	FilteredOut int                  `json:"filtered_out"`
	Skipped     int                  `json:"skipped"`
	Merged      int                  `json:"merged"`
	FailedDates []string             `json:"failed_dates,omitempty"`
	Summary     game.EvaluateSummary `json:"summary"`
}

// SyncFixtures pulls provider fixtures for today and the configured days
// ahead, normalizes them, merges them into the stored collection and
// re-evaluates lifecycle state. Manual records always survive the merge.
func (s *SyncService) SyncFixtures(ctx context.Context) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncFixtures")
	defer span.End()

	if !s.cfg.Enabled {
		return SyncResult{}, fmt.Errorf("%w: fixture sync is disabled (APIFOOTBALL_ENABLED=false)", ErrDependencyUnavailable)
	}
	if s.provider == nil || s.games == nil || s.leagues == nil {
		return SyncResult{}, fmt.Errorf("%w: fixture sync is not fully configured", ErrDependencyUnavailable)
	}

	enabledIDs, err := s.leagues.EnabledProviderIDs(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("load enabled leagues: %w", err)
	}
	enabled := make(map[int64]struct{}, len(enabledIDs))
	for _, id := range enabledIDs {
		enabled[id] = struct{}{}
	}

	now := s.now()
	dates := s.syncDates(now)
	result := SyncResult{Dates: dates}

	workerCount := normalizeSyncWorkerCount(s.cfg.MaxWorkers, len(dates))
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return SyncResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu          sync.Mutex
		fetched     []ExternalFixture
		failedDates []string
	)
	var workers sync.WaitGroup
	for _, date := range dates {
		date := date
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			items, fetchErr := s.fetchDate(ctx, date)
			mu.Lock()
			defer mu.Unlock()
			if fetchErr != nil {
				failedDates = append(failedDates, date)
				s.logger.WarnContext(ctx, "fixture fetch failed", "date", date, "error", fetchErr)
				return
			}
			fetched = append(fetched, items...)
		}); err != nil {
			workers.Done()
			return SyncResult{}, fmt.Errorf("submit fetch to worker pool: %w", err)
		}
	}
	workers.Wait()

	if len(failedDates) == len(dates) {
		return SyncResult{}, fmt.Errorf("%w: all fixture fetches failed for dates=%v", ErrDependencyUnavailable, dates)
	}
	result.FailedDates = failedDates
	result.Fetched = len(fetched)

	batch := make([]game.Game, 0, len(fetched))
	for _, fixture := range fetched {
		if len(enabled) > 0 {
			if _, ok := enabled[fixture.LeagueID]; !ok {
				result.FilteredOut++
				continue
			}
		}
		normalized, ok := s.normalizeFixture(fixture)
		if !ok {
			result.Skipped++
			continue
		}
		batch = append(batch, normalized)
	}

	existing, err := s.games.List(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("list stored games: %w", err)
	}

	merged := game.Merge(existing, batch)
	evaluated := game.Evaluate(merged, now, s.lifecycle)
	if err := s.games.ReplaceAll(ctx, evaluated); err != nil {
		return SyncResult{}, fmt.Errorf("replace game collection: %w", err)
	}

	result.Merged = len(evaluated)
	result.Summary = game.Summarize(evaluated)

	s.logger.InfoContext(ctx, "fixture sync completed",
		"dates", strings.Join(dates, ","),
		"fetched", result.Fetched,
		"filtered_out", result.FilteredOut,
		"skipped", result.Skipped,
		"merged", result.Merged,
	)
	return result, nil
}

// InvalidateFixtureCache drops cached provider batches so the next sync
// refetches. Admin mutations call this to avoid resurrecting stale rows.
func (s *SyncService) InvalidateFixtureCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	s.cache.DeletePrefix(ctx, fixtureCacheKeyPrefix)
}

const fixtureCacheKeyPrefix = "fixtures:"

func (s *SyncService) fetchDate(ctx context.Context, date string) ([]ExternalFixture, error) {
	if s.cache == nil {
		return s.provider.FetchFixturesByDate(ctx, date)
	}

	value, err := s.cache.GetOrLoad(ctx, fixtureCacheKeyPrefix+date, func(ctx context.Context) (any, error) {
		return s.provider.FetchFixturesByDate(ctx, date)
	})
	if err != nil {
		return nil, err
	}
	items, ok := value.([]ExternalFixture)
	if !ok {
		return nil, fmt.Errorf("unexpected cache payload for date=%s", date)
	}
	return items, nil
}

func (s *SyncService) syncDates(now time.Time) []string {
	loc := s.lifecycle.Location
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)

	daysAhead := s.cfg.DaysAhead
	if daysAhead < 0 {
		daysAhead = 0
	}
	dates := make([]string, 0, daysAhead+1)
	for i := 0; i <= daysAhead; i++ {
		dates = append(dates, local.AddDate(0, 0, i).Format(game.DateLayout))
	}
	return dates
}

func (s *SyncService) normalizeFixture(fixture ExternalFixture) (game.Game, bool) {
	home := strings.TrimSpace(fixture.HomeTeam)
	away := strings.TrimSpace(fixture.AwayTeam)
	if fixture.ExternalID <= 0 || home == "" || away == "" || fixture.KickoffAt.IsZero() {
		return game.Game{}, false
	}

	loc := s.lifecycle.Location
	if loc == nil {
		loc = time.UTC
	}
	kickoff := fixture.KickoffAt.In(loc)
	leagueLabel := formatLeagueLabel(fixture.LeagueName, fixture.LeagueCountry)

	return game.Game{
		ID:             game.APIGameID(fixture.ExternalID),
		HomeTeam:       home,
		AwayTeam:       away,
		League:         leagueLabel,
		Date:           kickoff.Format(game.DateLayout),
		Time:           kickoff.Format(game.TimeLayout),
		Status:         game.StatusFromProviderCode(fixture.StatusCode),
		SEOTitle:       fmt.Sprintf("%s x %s - Ao Vivo | FUTEMAX HD", home, away),
		SEODescription: fmt.Sprintf("Assista %s x %s ao vivo grátis. %s.", home, away, leagueLabel),
		SEOKeywords:    fmt.Sprintf("%s, %s, ao vivo, futebol", strings.ToLower(home), strings.ToLower(away)),
		FromAPI:        true,
	}, true
}

func formatLeagueLabel(name, country string) string {
	name = strings.TrimSpace(name)
	country = strings.TrimSpace(country)
	switch {
	case name == "" && country == "":
		return "Futebol"
	case country == "":
		return name
	case name == "":
		return country
	default:
		return name + " (" + country + ")"
	}
}

func normalizeSyncWorkerCount(value int, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 2
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
