package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/futemax/futemax-api/internal/domain/league"
	"github.com/futemax/futemax-api/internal/infrastructure/repository/memory"
	"github.com/futemax/futemax-api/internal/platform/logging"
)

func newTestLeagueService() *LeagueService {
	catalog := []league.Config{
		{ID: "la-liga", Name: "La Liga", Country: "Espanha", Priority: 3, ProviderID: 140},
		{ID: "premier-league", Name: "Premier League", Country: "Inglaterra", Enabled: true, Priority: 1, ProviderID: 39},
		{ID: "brasileirao", Name: "Brasileirão Série A", Country: "Brasil", Enabled: true, Priority: 2, ProviderID: 71},
	}
	return NewLeagueService(memory.NewLeagueRepository(catalog), logging.NewNop())
}

func TestListLeagues_OrdersByPriority(t *testing.T) {
	t.Parallel()

	svc := newTestLeagueService()

	leagues, err := svc.ListLeagues(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(leagues) != 3 {
		t.Fatalf("expected 3 leagues, got %d", len(leagues))
	}
	if leagues[0].ID != "premier-league" || leagues[1].ID != "brasileirao" || leagues[2].ID != "la-liga" {
		t.Fatalf("unexpected order: %s, %s, %s", leagues[0].ID, leagues[1].ID, leagues[2].ID)
	}
}

func TestSetEnabledLeagues_ReplacesEnabledSet(t *testing.T) {
	t.Parallel()

	svc := newTestLeagueService()

	leagues, err := svc.SetEnabledLeagues(context.Background(), []string{" la-liga ", ""})
	if err != nil {
		t.Fatalf("set enabled: %v", err)
	}
	for _, item := range leagues {
		if item.ID == "la-liga" && !item.Enabled {
			t.Fatalf("expected la-liga enabled")
		}
		if item.ID != "la-liga" && item.Enabled {
			t.Fatalf("expected %s disabled", item.ID)
		}
	}
}

func TestSetEnabledLeagues_RejectsUnknownID(t *testing.T) {
	t.Parallel()

	svc := newTestLeagueService()

	if _, err := svc.SetEnabledLeagues(context.Background(), []string{"mls"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSetEnabledLeagues_EmptyListDisablesAll(t *testing.T) {
	t.Parallel()

	svc := newTestLeagueService()

	leagues, err := svc.SetEnabledLeagues(context.Background(), nil)
	if err != nil {
		t.Fatalf("set enabled: %v", err)
	}
	for _, item := range leagues {
		if item.Enabled {
			t.Fatalf("expected all leagues disabled, %s is enabled", item.ID)
		}
	}
}
