package httpserver

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mmohamedd-cyber/ai-report-generator/internal/handle"
)

// New assembles the route table. Unknown paths and methods fall through to
// the router's plain-text 404 and 405 responses.
func New(h *handle.Handle) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/comment", h.Comment)
	r.Get("/api/models", h.Models)

	return r
}

func Start(addr string, h *handle.Handle) error {
	log.Printf("report-server listening on %s", addr)
	return http.ListenAndServe(addr, New(h))
}
