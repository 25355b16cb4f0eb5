package league

import "context"

// Repository exposes the fixed league catalog and its enabled set.
type Repository interface {
	List(ctx context.Context) ([]Config, error)
	SetEnabled(ctx context.Context, enabledIDs []string) error
	EnabledProviderIDs(ctx context.Context) ([]int64, error)
}
