package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"creative-api/internal/generate"
)

const (
	serviceName    = "Egg Digital Dynamic Creative Intelligence Platform"
	serviceVersion = "1.0.0"
)

// App bundles the dependencies shared by the endpoint handlers.
type App struct {
	Generate *generate.Service
	Logger   zerolog.Logger
}

func NewApp(svc *generate.Service, logger zerolog.Logger) *App {
	return &App{Generate: svc, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]string{"error": message})
}
