package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/herodex/herodex/internal/api/handler"
	"github.com/herodex/herodex/internal/api/middleware"
	"github.com/herodex/herodex/internal/hero"
	"github.com/herodex/herodex/internal/team"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	TeamRepo team.Repository
	HeroRepo hero.Repository
	Hasher   *hero.Hasher
	DBPinger handler.DBPinger
	Version  string
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)

	healthHandler := handler.NewHealthHandler(deps.DBPinger, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)

	teamHandler := handler.NewTeamHandler(deps.TeamRepo, deps.HeroRepo)
	r.Route("/teams", func(r chi.Router) {
		r.Post("/", teamHandler.Create)
		r.Get("/", teamHandler.List)
		r.Get("/{id}", teamHandler.GetByID)
		r.Patch("/{id}", teamHandler.Update)
		r.Delete("/{id}", teamHandler.Delete)
	})

	heroHandler := handler.NewHeroHandler(deps.HeroRepo, deps.TeamRepo, deps.Hasher)
	r.Route("/heroes", func(r chi.Router) {
		r.Post("/", heroHandler.Create)
		r.Get("/", heroHandler.List)
		r.Get("/{id}", heroHandler.GetByID)
		r.Patch("/{id}", heroHandler.Update)
		r.Delete("/{id}", heroHandler.Delete)
	})

	return r
}
