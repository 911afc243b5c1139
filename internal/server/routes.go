package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pokecard/internal/catalog"
	"pokecard/internal/handlers"
	"pokecard/internal/handlers/api"
	"pokecard/internal/middleware"
	"pokecard/internal/pages"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(registry *pages.Registry, client catalog.Client) {
	// Initialize middleware
	pageMiddleware := middleware.NewPageMiddleware(registry)

	// Initialize handlers
	lookupHandler := handlers.NewLookupHandler(registry, s.Cfg)
	probeHandler := handlers.NewProbeHandler(s.Storage)
	apiLookupHandler := api.NewLookupHandler(client)

	// Probes
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)

	if s.Cfg.MetricsEnabled {
		s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	// Lookup page
	s.App.Get("/", lookupHandler.Index)
	s.App.Post("/lookup", pageMiddleware.RequirePage, lookupHandler.Submit)
	s.App.Post("/random", pageMiddleware.RequirePage, lookupHandler.Random)
	s.App.Post("/clear", pageMiddleware.RequirePage, lookupHandler.Clear)
	s.App.Post("/helper", pageMiddleware.OptionalPage, lookupHandler.Helper)

	// JSON API
	s.App.Get("/api/creatures/:query", apiLookupHandler.Lookup)
}
