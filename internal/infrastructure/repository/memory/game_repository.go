package memory

import (
	"context"
	"sync"

	"github.com/futemax/futemax-api/internal/domain/game"
)

// GameRepository keeps the authoritative game collection in an
// order-preserving slice guarded by a RWMutex. Last writer wins; there
// is deliberately no optimistic-concurrency token at this scale.
type GameRepository struct {
	mu    sync.RWMutex
	games []game.Game
}

func NewGameRepository(seed []game.Game) *GameRepository {
	games := make([]game.Game, 0, len(seed))
	for _, g := range seed {
		games = append(games, g.Clone())
	}
	return &GameRepository{games: games}
}

func (r *GameRepository) List(_ context.Context) ([]game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Game, 0, len(r.games))
	for _, g := range r.games {
		out = append(out, g.Clone())
	}
	return out, nil
}

func (r *GameRepository) GetByID(_ context.Context, id string) (game.Game, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, g := range r.games {
		if g.ID == id {
			return g.Clone(), true, nil
		}
	}
	return game.Game{}, false, nil
}

func (r *GameRepository) Create(_ context.Context, g game.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.games = append(r.games, g.Clone())
	return nil
}

func (r *GameRepository) Update(_ context.Context, g game.Game) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.games {
		if r.games[i].ID == g.ID {
			r.games[i] = g.Clone()
			return true, nil
		}
	}
	return false, nil
}

func (r *GameRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.games {
		if r.games[i].ID == id {
			r.games = append(r.games[:i], r.games[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *GameRepository) ReplaceAll(_ context.Context, games []game.Game) error {
	next := make([]game.Game, 0, len(games))
	for _, g := range games {
		next = append(next, g.Clone())
	}

	r.mu.Lock()
	r.games = next
	r.mu.Unlock()
	return nil
}
