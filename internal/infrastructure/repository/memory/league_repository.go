package memory

import (
	"context"
	"sync"

	"github.com/futemax/futemax-api/internal/domain/league"
)

type LeagueRepository struct {
	mu      sync.RWMutex
	leagues []league.Config
}

func NewLeagueRepository(seed []league.Config) *LeagueRepository {
	leagues := make([]league.Config, len(seed))
	copy(leagues, seed)
	return &LeagueRepository{leagues: leagues}
}

func (r *LeagueRepository) List(_ context.Context) ([]league.Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.Config, len(r.leagues))
	copy(out, r.leagues)
	return out, nil
}

func (r *LeagueRepository) SetEnabled(_ context.Context, enabledIDs []string) error {
	enabled := make(map[string]struct{}, len(enabledIDs))
	for _, id := range enabledIDs {
		enabled[id] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.leagues {
		_, ok := enabled[r.leagues[i].ID]
		r.leagues[i].Enabled = ok
	}
	return nil
}

func (r *LeagueRepository) EnabledProviderIDs(_ context.Context) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]int64, 0, len(r.leagues))
	for _, l := range r.leagues {
		if l.Enabled && l.ProviderID > 0 {
			out = append(out, l.ProviderID)
		}
	}
	return out, nil
}
