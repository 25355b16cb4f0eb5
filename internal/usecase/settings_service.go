package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/futemax/futemax-api/internal/domain/settings"
	"github.com/futemax/futemax-api/internal/platform/logging"
)

type SettingsService struct {
	repo   settings.Repository
	logger *logging.Logger
}

func NewSettingsService(repo settings.Repository, logger *logging.Logger) *SettingsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SettingsService{repo: repo, logger: logger}
}

func (s *SettingsService) GetSettings(ctx context.Context) (settings.Settings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SettingsService.GetSettings")
	defer span.End()

	current, err := s.repo.Get(ctx)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return current, nil
}

// UpdateSettings merges the supplied fields over the stored record.
// Empty strings leave the stored value untouched; FooterLinks replace
// wholesale when non-nil.
func (s *SettingsService) UpdateSettings(ctx context.Context, patch settings.Settings) (settings.Settings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SettingsService.UpdateSettings")
	defer span.End()

	current, err := s.repo.Get(ctx)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("load settings: %w", err)
	}

	merged := mergeSettings(current, patch)
	if err := s.repo.Set(ctx, merged); err != nil {
		return settings.Settings{}, fmt.Errorf("store settings: %w", err)
	}

	s.logger.InfoContext(ctx, "site settings updated")
	return merged, nil
}

func mergeSettings(current, patch settings.Settings) settings.Settings {
	applyString := func(dst *string, value string) {
		if strings.TrimSpace(value) != "" {
			*dst = value
		}
	}

	merged := current
	applyString(&merged.Title, patch.Title)
	applyString(&merged.Description, patch.Description)
	applyString(&merged.Keywords, patch.Keywords)
	applyString(&merged.OGTitle, patch.OGTitle)
	applyString(&merged.OGDescription, patch.OGDescription)
	applyString(&merged.OGImage, patch.OGImage)
	applyString(&merged.TwitterTitle, patch.TwitterTitle)
	applyString(&merged.TwitterDescription, patch.TwitterDescription)
	applyString(&merged.TwitterImage, patch.TwitterImage)
	applyString(&merged.Favicon, patch.Favicon)
	applyString(&merged.GoogleAnalytics, patch.GoogleAnalytics)
	applyString(&merged.FacebookPixel, patch.FacebookPixel)
	applyString(&merged.FooterText, patch.FooterText)
	applyString(&merged.AdminPath, patch.AdminPath)
	if patch.FooterLinks != nil {
		merged.FooterLinks = make([]settings.FooterLink, len(patch.FooterLinks))
		copy(merged.FooterLinks, patch.FooterLinks)
	}
	return merged
}
