package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/games", handler.ListGames)
	mux.HandleFunc("GET /v1/games/{gameID}", handler.GetGame)
	mux.HandleFunc("GET /v1/games/{gameID}/embed", handler.GetGameEmbed)
	mux.HandleFunc("GET /v1/settings", handler.GetSettings)
	mux.HandleFunc("POST /v1/auth/login", handler.Login)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/auth/verify", RequireAuth(verifier, http.HandlerFunc(handler.VerifyAuth)))
	mux.Handle("PUT /v1/auth/credentials", RequireAuth(verifier, http.HandlerFunc(handler.UpdateCredentials)))
	mux.Handle("POST /v1/games", RequireAuth(verifier, http.HandlerFunc(handler.CreateGame)))
	mux.Handle("PUT /v1/games/{gameID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateGame)))
	mux.Handle("DELETE /v1/games/{gameID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteGame)))
	mux.Handle("PUT /v1/settings", RequireAuth(verifier, http.HandlerFunc(handler.UpdateSettings)))
	mux.Handle("GET /v1/leagues", RequireAuth(verifier, http.HandlerFunc(handler.ListLeagues)))
	mux.Handle("PUT /v1/leagues/enabled", RequireAuth(verifier, http.HandlerFunc(handler.SetEnabledLeagues)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/auto-update", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunAutoUpdateJob)))
	mux.Handle("POST /v1/internal/jobs/sync-fixtures", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSyncFixturesJob)))
}
