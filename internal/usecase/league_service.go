package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/futemax/futemax-api/internal/domain/league"
	"github.com/futemax/futemax-api/internal/platform/logging"
)

type LeagueService struct {
	repo   league.Repository
	logger *logging.Logger
}

func NewLeagueService(repo league.Repository, logger *logging.Logger) *LeagueService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeagueService{repo: repo, logger: logger}
}

// ListLeagues returns the catalog ordered by priority.
func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.Config, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	leagues, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	sort.SliceStable(leagues, func(i, j int) bool {
		return leagues[i].Priority < leagues[j].Priority
	})
	return leagues, nil
}

// SetEnabledLeagues replaces the enabled set. IDs not present in the
// catalog are rejected rather than silently dropped.
func (s *LeagueService) SetEnabledLeagues(ctx context.Context, enabledIDs []string) ([]league.Config, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.SetEnabledLeagues")
	defer span.End()

	catalog, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	known := make(map[string]struct{}, len(catalog))
	for _, item := range catalog {
		known[item.ID] = struct{}{}
	}

	normalized := make([]string, 0, len(enabledIDs))
	for _, raw := range enabledIDs {
		id := strings.TrimSpace(raw)
		if id == "" {
			continue
		}
		if _, ok := known[id]; !ok {
			return nil, fmt.Errorf("%w: unknown league id=%s", ErrInvalidInput, id)
		}
		normalized = append(normalized, id)
	}

	if err := s.repo.SetEnabled(ctx, normalized); err != nil {
		return nil, fmt.Errorf("set enabled leagues: %w", err)
	}

	s.logger.InfoContext(ctx, "enabled leagues updated", "count", len(normalized))
	return s.ListLeagues(ctx)
}
