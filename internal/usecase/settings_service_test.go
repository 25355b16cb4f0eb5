package usecase

import (
	"context"
	"testing"

	"github.com/futemax/futemax-api/internal/domain/settings"
	"github.com/futemax/futemax-api/internal/infrastructure/repository/memory"
	"github.com/futemax/futemax-api/internal/platform/logging"
)

func TestUpdateSettings_MergesOverStored(t *testing.T) {
	t.Parallel()

	seed := settings.Settings{
		Title:       "FUTEMAX HD",
		Description: "Futebol ao vivo",
		Keywords:    "futebol, ao vivo",
		FooterText:  "© FUTEMAX",
		FooterLinks: []settings.FooterLink{{Name: "Início", URL: "/"}},
		AdminPath:   "/admin",
	}
	svc := NewSettingsService(memory.NewSettingsRepository(seed), logging.NewNop())

	merged, err := svc.UpdateSettings(context.Background(), settings.Settings{
		Title:           "FUTEMAX HD - Jogos de Hoje",
		GoogleAnalytics: "G-ABC123",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if merged.Title != "FUTEMAX HD - Jogos de Hoje" {
		t.Fatalf("expected patched title, got %q", merged.Title)
	}
	if merged.Description != "Futebol ao vivo" {
		t.Fatalf("blank patch field must keep stored value, got %q", merged.Description)
	}
	if merged.GoogleAnalytics != "G-ABC123" {
		t.Fatalf("expected analytics id set, got %q", merged.GoogleAnalytics)
	}
	if len(merged.FooterLinks) != 1 || merged.FooterLinks[0].Name != "Início" {
		t.Fatalf("nil footer links patch must keep stored links, got %+v", merged.FooterLinks)
	}

	current, err := svc.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if current.Title != merged.Title {
		t.Fatalf("expected merged settings to be persisted, got %q", current.Title)
	}
}

func TestUpdateSettings_ReplacesFooterLinksWholesale(t *testing.T) {
	t.Parallel()

	seed := settings.Settings{
		Title:       "FUTEMAX HD",
		FooterLinks: []settings.FooterLink{{Name: "Início", URL: "/"}, {Name: "Contato", URL: "/contato"}},
	}
	svc := NewSettingsService(memory.NewSettingsRepository(seed), logging.NewNop())

	merged, err := svc.UpdateSettings(context.Background(), settings.Settings{
		FooterLinks: []settings.FooterLink{{Name: "DMCA", URL: "/dmca"}},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(merged.FooterLinks) != 1 || merged.FooterLinks[0].Name != "DMCA" {
		t.Fatalf("expected footer links replaced, got %+v", merged.FooterLinks)
	}

	// An explicit empty slice clears the links; only nil means "keep".
	merged, err = svc.UpdateSettings(context.Background(), settings.Settings{
		FooterLinks: []settings.FooterLink{},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(merged.FooterLinks) != 0 {
		t.Fatalf("expected footer links cleared, got %+v", merged.FooterLinks)
	}
}
