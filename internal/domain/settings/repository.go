package settings

import "context"

// Repository holds the singleton settings record.
type Repository interface {
	Get(ctx context.Context) (Settings, error)
	Set(ctx context.Context, s Settings) error
}
