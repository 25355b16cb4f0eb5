package game

import "context"

// Repository is the authoritative game collection. Status fields held
// by the repository are whatever the last evaluation wrote; readers
// must re-project through Evaluate before exposing them.
type Repository interface {
	List(ctx context.Context) ([]Game, error)
	GetByID(ctx context.Context, id string) (Game, bool, error)
	Create(ctx context.Context, g Game) error
	Update(ctx context.Context, g Game) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	ReplaceAll(ctx context.Context, games []Game) error
}
