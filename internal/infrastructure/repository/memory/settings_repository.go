package memory

import (
	"context"
	"sync"

	"github.com/futemax/futemax-api/internal/domain/settings"
)

type SettingsRepository struct {
	mu      sync.RWMutex
	current settings.Settings
}

func NewSettingsRepository(seed settings.Settings) *SettingsRepository {
	return &SettingsRepository{current: cloneSettings(seed)}
}

func (r *SettingsRepository) Get(_ context.Context) (settings.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneSettings(r.current), nil
}

func (r *SettingsRepository) Set(_ context.Context, s settings.Settings) error {
	r.mu.Lock()
	r.current = cloneSettings(s)
	r.mu.Unlock()
	return nil
}

func cloneSettings(s settings.Settings) settings.Settings {
	out := s
	if s.FooterLinks != nil {
		out.FooterLinks = make([]settings.FooterLink, len(s.FooterLinks))
		copy(out.FooterLinks, s.FooterLinks)
	}
	return out
}
