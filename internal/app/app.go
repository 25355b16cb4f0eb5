// Package app wires configuration, repositories, services and the HTTP
// router into a runnable server.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/futemax/futemax-api/external/apifootball"
	"github.com/futemax/futemax-api/internal/config"
	"github.com/futemax/futemax-api/internal/domain/game"
	"github.com/futemax/futemax-api/internal/infrastructure/jobqueue"
	"github.com/futemax/futemax-api/internal/infrastructure/repository/memory"
	"github.com/futemax/futemax-api/internal/interfaces/httpapi"
	"github.com/futemax/futemax-api/internal/platform/cache"
	idgen "github.com/futemax/futemax-api/internal/platform/id"
	"github.com/futemax/futemax-api/internal/platform/logging"
	"github.com/futemax/futemax-api/internal/platform/resilience"
	"github.com/futemax/futemax-api/internal/platform/token"
	"github.com/futemax/futemax-api/internal/usecase"
)

// App owns the wired service graph and the HTTP server built on top of
// it. Background jobs run until the context given to RunBackgroundJobs
// is cancelled.
type App struct {
	cfg    config.Config
	logger *logging.Logger
	server *http.Server
	games  *usecase.GameService
	sync   *usecase.SyncService
	jobs   *jobqueue.QStashPublisher
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	lifecycle := game.LifecycleConfig{
		LiveWindow:    cfg.GameLiveWindow,
		RetentionDays: cfg.GameRetentionDays,
		Location:      cfg.Location,
	}

	var seedGames []game.Game
	if cfg.AppEnv == config.EnvDev {
		seedGames = memory.SeedGames()
	}
	gameRepo := memory.NewGameRepository(seedGames)
	leagueRepo := memory.NewLeagueRepository(memory.SeedLeagues())
	settingsRepo := memory.NewSettingsRepository(memory.SeedSettings())
	credentialRepo := memory.NewCredentialRepository(memory.SeedCredentials(cfg.AdminUsername, cfg.AdminPassword))

	var fixtureCache *cache.Store
	if cfg.CacheEnabled {
		fixtureCache = cache.NewStore(cfg.CacheTTL)
	}

	provider := apifootball.NewClient(apifootball.ClientConfig{
		BaseURL:    cfg.APIFootballBaseURL,
		APIKey:     cfg.APIFootballKey,
		Timeout:    cfg.APIFootballTimeout,
		MaxRetries: cfg.APIFootballMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.APIFootballCircuitEnabled,
			FailureThreshold: cfg.APIFootballCircuitFailureCount,
			OpenTimeout:      cfg.APIFootballCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.APIFootballCircuitHalfOpenMaxReq,
		},
	})

	syncService := usecase.NewSyncService(
		provider,
		gameRepo,
		leagueRepo,
		fixtureCache,
		usecase.SyncConfig{
			Enabled:    cfg.APIFootballEnabled,
			DaysAhead:  cfg.APIFootballDaysAhead,
			MaxWorkers: cfg.APIFootballSyncWorkers,
		},
		lifecycle,
		logger,
	)

	gameService := usecase.NewGameService(gameRepo, syncService, idgen.NewRandomGenerator(), lifecycle, logger)

	tokenManager, err := token.NewManager(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return nil, fmt.Errorf("build token manager: %w", err)
	}
	authService := usecase.NewAuthService(credentialRepo, tokenManager, logger)
	settingsService := usecase.NewSettingsService(settingsRepo, logger)
	leagueService := usecase.NewLeagueService(leagueRepo, logger)

	handler := httpapi.NewHandler(gameService, syncService, authService, settingsService, leagueService, logger)
	router := httpapi.NewRouter(handler, authService, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	a := &App{
		cfg:    cfg,
		logger: logger,
		server: server,
		games:  gameService,
		sync:   syncService,
	}
	if cfg.QStashEnabled {
		a.jobs = jobqueue.NewQStashPublisher(jobqueue.QStashPublisherConfig{
			BaseURL:          cfg.QStashBaseURL,
			Token:            cfg.QStashToken,
			TargetBaseURL:    cfg.QStashTargetBaseURL,
			Retries:          cfg.QStashRetries,
			InternalJobToken: cfg.InternalJobToken,
		}, logger)
	}

	return a, nil
}

func (a *App) Server() *http.Server {
	return a.server
}

// RunBackgroundJobs drives the periodic lifecycle evaluation and, when
// the provider is enabled, the fixture sync. With QStash configured the
// jobs are published as delayed callbacks into the internal job routes
// instead of running in-process, so restarts don't drop the schedule.
func (a *App) RunBackgroundJobs(ctx context.Context) {
	autoUpdate := time.NewTicker(a.cfg.AutoUpdateInterval)
	defer autoUpdate.Stop()
	fixtureSync := time.NewTicker(a.cfg.FixtureSyncInterval)
	defer fixtureSync.Stop()

	a.logger.InfoContext(ctx, "background jobs started",
		"auto_update_interval", a.cfg.AutoUpdateInterval.String(),
		"fixture_sync_interval", a.cfg.FixtureSyncInterval.String(),
		"qstash_enabled", a.jobs != nil,
	)

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("background jobs stopped")
			return
		case tick := <-autoUpdate.C:
			a.runAutoUpdate(ctx, tick)
		case tick := <-fixtureSync.C:
			a.runFixtureSync(ctx, tick)
		}
	}
}

func (a *App) runAutoUpdate(ctx context.Context, tick time.Time) {
	if a.jobs != nil {
		dedupID := fmt.Sprintf("auto-update-%d", tick.Truncate(a.cfg.AutoUpdateInterval).Unix())
		if err := a.jobs.Enqueue(ctx, "/v1/internal/jobs/auto-update", nil, 0, dedupID); err != nil {
			a.logger.WarnContext(ctx, "enqueue auto-update job failed", "error", err)
		}
		return
	}

	if _, err := a.games.EvaluateNow(ctx); err != nil {
		a.logger.WarnContext(ctx, "auto-update pass failed", "error", err)
	}
}

func (a *App) runFixtureSync(ctx context.Context, tick time.Time) {
	if !a.cfg.APIFootballEnabled {
		return
	}

	if a.jobs != nil {
		dedupID := fmt.Sprintf("sync-fixtures-%d", tick.Truncate(a.cfg.FixtureSyncInterval).Unix())
		if err := a.jobs.Enqueue(ctx, "/v1/internal/jobs/sync-fixtures", nil, 0, dedupID); err != nil {
			a.logger.WarnContext(ctx, "enqueue sync-fixtures job failed", "error", err)
		}
		return
	}

	if _, err := a.sync.SyncFixtures(ctx); err != nil {
		a.logger.WarnContext(ctx, "fixture sync pass failed", "error", err)
	}
}
