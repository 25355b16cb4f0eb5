package memory

import (
	"github.com/futemax/futemax-api/internal/domain/game"
	"github.com/futemax/futemax-api/internal/domain/league"
	"github.com/futemax/futemax-api/internal/domain/settings"
	"github.com/futemax/futemax-api/internal/domain/user"
)

// SeedGames returns demo fixtures for local development. Production
// deployments start empty and fill from the admin panel and provider sync.
func SeedGames() []game.Game {
	return []game.Game{
		{
			ID:       "1",
			HomeTeam: "Flamengo",
			AwayTeam: "Palmeiras",
			League:   "Brasileirão Série A",
			Date:     "2024-01-15",
			Time:     "16:00",
			Status:   game.StatusLive,
			EmbedCodes: []string{
				"https://example.com/stream1",
				"https://example.com/stream2",
			},
			Viewers:        15420,
			SEOTitle:       "Flamengo x Palmeiras - Ao Vivo | FUTEMAX HD",
			SEODescription: "Assista Flamengo x Palmeiras ao vivo grátis. Brasileirão Série A.",
			SEOKeywords:    "flamengo, palmeiras, ao vivo, futebol",
		},
		{
			ID:       "2",
			HomeTeam: "Corinthians",
			AwayTeam: "São Paulo",
			League:   "Brasileirão Série A",
			Date:     "2024-01-15",
			Time:     "18:30",
			Status:   game.StatusUpcoming,
			EmbedCodes: []string{
				"https://example.com/stream3",
			},
			SEOTitle:       "Corinthians x São Paulo - Ao Vivo | FUTEMAX HD",
			SEODescription: "Assista Corinthians x São Paulo ao vivo grátis. Brasileirão Série A.",
			SEOKeywords:    "corinthians, são paulo, ao vivo, futebol",
		},
	}
}

// SeedLeagues is the curated provider catalog. Priority drives the admin
// panel ordering; ProviderID is the API-Football league id.
func SeedLeagues() []league.Config {
	return []league.Config{
		{ID: "brasileirao-a", Name: "Brasileirão Série A", Country: "Brasil", Enabled: true, Priority: 1, ProviderID: 71},
		{ID: "brasileirao-b", Name: "Brasileirão Série B", Country: "Brasil", Enabled: true, Priority: 2, ProviderID: 72},
		{ID: "copa-brasil", Name: "Copa do Brasil", Country: "Brasil", Enabled: true, Priority: 3, ProviderID: 73},
		{ID: "libertadores", Name: "Copa Libertadores", Country: "América do Sul", Enabled: true, Priority: 4, ProviderID: 13},
		{ID: "sul-americana", Name: "Copa Sul-Americana", Country: "América do Sul", Enabled: true, Priority: 5, ProviderID: 11},
		{ID: "premier-league", Name: "Premier League", Country: "Inglaterra", Enabled: true, Priority: 6, ProviderID: 39},
		{ID: "la-liga", Name: "La Liga", Country: "Espanha", Enabled: true, Priority: 7, ProviderID: 140},
		{ID: "serie-a", Name: "Serie A", Country: "Itália", Enabled: true, Priority: 8, ProviderID: 135},
		{ID: "bundesliga", Name: "Bundesliga", Country: "Alemanha", Enabled: true, Priority: 9, ProviderID: 78},
		{ID: "ligue-1", Name: "Ligue 1", Country: "França", Enabled: true, Priority: 10, ProviderID: 61},
		{ID: "champions-league", Name: "Champions League", Country: "Europa", Enabled: true, Priority: 11, ProviderID: 2},
		{ID: "europa-league", Name: "Europa League", Country: "Europa", Enabled: true, Priority: 12, ProviderID: 3},
		{ID: "liga-portugal", Name: "Liga Portugal", Country: "Portugal", Enabled: false, Priority: 13, ProviderID: 94},
		{ID: "eredivisie", Name: "Eredivisie", Country: "Holanda", Enabled: false, Priority: 14, ProviderID: 88},
		{ID: "mls", Name: "MLS", Country: "Estados Unidos", Enabled: false, Priority: 15, ProviderID: 253},
		{ID: "liga-mx", Name: "Liga MX", Country: "México", Enabled: false, Priority: 16, ProviderID: 262},
		{ID: "mundial-clubes", Name: "Mundial de Clubes", Country: "Mundo", Enabled: false, Priority: 17, ProviderID: 15},
		{ID: "copa-mundo", Name: "Copa do Mundo", Country: "Mundo", Enabled: false, Priority: 18, ProviderID: 1},
		{ID: "eurocopa", Name: "Eurocopa", Country: "Europa", Enabled: false, Priority: 19, ProviderID: 4},
		{ID: "copa-america", Name: "Copa América", Country: "América do Sul", Enabled: false, Priority: 20, ProviderID: 9},
	}
}

func SeedSettings() settings.Settings {
	return settings.Settings{
		Title:              "FUTEMAX HD - Futebol Ao Vivo Grátis",
		Description:        "Assista futebol ao vivo grátis em HD. Brasileirão, Libertadores, Champions League e muito mais.",
		Keywords:           "futebol ao vivo, futemax, assistir futebol grátis, brasileirão ao vivo",
		OGTitle:            "FUTEMAX HD - Futebol Ao Vivo",
		OGDescription:      "Os melhores jogos de futebol ao vivo e de graça.",
		OGImage:            "/og-image.jpg",
		TwitterTitle:       "FUTEMAX HD - Futebol Ao Vivo",
		TwitterDescription: "Os melhores jogos de futebol ao vivo e de graça.",
		TwitterImage:       "/og-image.jpg",
		Favicon:            "/favicon.ico",
		FooterText:         "FUTEMAX HD - Todos os direitos reservados.",
		AdminPath:          "/admin",
		FooterLinks: []settings.FooterLink{
			{Name: "Termos de Uso", URL: "/termos"},
			{Name: "Política de Privacidade", URL: "/privacidade"},
			{Name: "Contato", URL: "/contato"},
		},
	}
}

func SeedCredentials(username, password string) user.Credentials {
	if username == "" {
		username = "admin"
	}
	if password == "" {
		password = "123456"
	}
	return user.Credentials{Username: username, Password: password}
}
