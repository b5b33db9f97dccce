package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wblg/bookquiz/internal/services"
)

type Server struct {
	SessionService  services.SessionService
	CatalogService  services.CatalogService
	ProgressService services.ProgressService
	SummaryService  services.SummaryService
	ResultService   services.ResultService
	AllowedOrigins  []string
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(s.corsMiddleware)

	r.Get("/health", s.handleHealth)
	r.Post("/session", s.handleCreateSession)

	r.Group(func(r chi.Router) {
		r.Use(s.optionalSession)
		r.Get("/books", s.handleListBooks)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.requireSession)
		r.Get("/progress", s.handleProgress)
		r.Get("/progress/summary", s.handleAllBooksSummary)
		r.Get("/books/{bookID}/summary", s.handleBookSummary)
		r.Post("/results", s.handleSaveResult)
		r.Get("/results/latest", s.handleLatestResults)
	})

	return r
}
