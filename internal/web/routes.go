package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter mounts the pages, the JSON API and the health check.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(h.log))
	r.Use(chimw.Recoverer)

	r.Get("/healthz", h.Healthz)

	r.Group(func(r chi.Router) {
		r.Use(clientHints)
		r.Get("/", h.Home)
		r.Get("/tools", h.Tools)
		r.Get("/tools/{id}", h.Tool)
		r.Get("/tools/{id}/live", h.Live)
		r.Get("/checklist", h.Checklist)
		r.Post("/checklist/{id}", h.CheckItem)
		r.Post("/theme", h.CycleTheme)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.origins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.Use(h.rateLimit)
		r.Get("/calc", h.APICalculators)
		r.Get("/calc/{id}", h.APICalc)
	})
	return r
}
