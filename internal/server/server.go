// Package server exposes the recommender over a JSON HTTP API.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"smartcareer/internal/recommend"
)

// New builds the HTTP server around the recommendation service.
func New(addr string, svc *recommend.Service, defaultTopN int, logger zerolog.Logger) *http.Server {
	h := newHandlers(svc, defaultTopN, logger)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Route("/api", func(r chi.Router) {
		r.Post("/recommendations", h.handleRecommend)
		r.Get("/courses", h.handleCourses)
		r.Get("/health", h.handleHealth)
	})

	return &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// requestLogger logs one line per request with method, path, status and
// latency.
func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("elapsed", time.Since(start)).
				Msg("request")
		})
	}
}
