package memory

import (
	"context"
	"sync"

	"github.com/futemax/futemax-api/internal/domain/user"
)

type CredentialRepository struct {
	mu    sync.RWMutex
	creds user.Credentials
}

func NewCredentialRepository(initial user.Credentials) *CredentialRepository {
	return &CredentialRepository{creds: initial}
}

func (r *CredentialRepository) Get(_ context.Context) (user.Credentials, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.creds, nil
}

func (r *CredentialRepository) Set(_ context.Context, creds user.Credentials) error {
	r.mu.Lock()
	r.creds = creds
	r.mu.Unlock()
	return nil
}
