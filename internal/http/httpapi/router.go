package httpapi

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"creative-api/internal/http/handlers"
	"creative-api/internal/middleware"
)

// NewRouter wires the fixed API surface. Routes are registered once at
// startup; there is no dynamic routing state.
func NewRouter(app *handlers.App, logger zerolog.Logger) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP, chimw.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", app.Health)
		r.Get("/segments", app.Segments)
		r.Get("/history", app.History)
		r.Post("/generate", app.GenerateImages)
	})

	return r
}
