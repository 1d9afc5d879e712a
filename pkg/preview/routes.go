package preview

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(noCache)

	r.Get("/", s.chartHandler)
	r.Get("/healthz", s.healthHandler)
	return r
}
