package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(securityHeadersMiddleware)
	r.Use(s.languageMiddleware)

	r.Get("/", s.handleHome)
	r.Get("/leaderboard", s.handleLeaderboard)
	r.Get("/match", s.handleMatch)
	r.Get("/match/{matchId}", s.handleMatch)
	r.Get("/player", s.handlePlayer)
	r.Get("/player/{playerId}", s.handlePlayer)
	r.Post("/language", s.handleLanguage)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.New(cors.Options{
			AllowedOrigins:   s.CORSOrigins,
			AllowedMethods:   []string{http.MethodGet},
			AllowCredentials: false,
		}).Handler)
		r.Get("/search", s.handleSearch)
	})

	if s.Static != nil && strings.HasPrefix(s.AssetPrefix, "/") {
		prefix := strings.TrimRight(s.AssetPrefix, "/")
		r.Handle(prefix+"/*", http.StripPrefix(prefix+"/", http.FileServer(http.FS(s.Static))))
	}

	r.NotFound(s.handleNotFound)
	return r
}
