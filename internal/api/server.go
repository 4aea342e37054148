// Package api exposes the engine over HTTP as JSON endpoints.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ledren/scoutbook/internal/services"
	"github.com/ledren/scoutbook/internal/worker"
)

type Server struct {
	Scout       services.ScoutService
	RebuildPool *worker.Pool
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/api/players/{platform}/{username}", func(r chi.Router) {
		r.Get("/profile", s.handleProfile)
		r.Post("/profile/rebuild", s.handleRebuildProfile)
		r.Post("/model", s.handleModelQuery)
	})

	return r
}
