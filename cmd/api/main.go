package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"creative-api/internal/gemini"
	"creative-api/internal/generate"
	"creative-api/internal/http/handlers"
	"creative-api/internal/http/httpapi"
	"creative-api/internal/infra"
)

func main() {
	_ = godotenv.Load()

	cfg := infra.LoadConfig()
	logger := infra.NewLogger(cfg.AppEnv)

	if cfg.GeminiAPIKey == "" {
		logger.Warn().Msg("GOOGLE_AI_STUDIO_API_KEY is not set; generation requests will fail with a configuration error")
	}

	client := gemini.NewClient(gemini.Options{
		APIKey:  cfg.GeminiAPIKey,
		BaseURL: cfg.GeminiBaseURL,
		Model:   cfg.GeminiModel,
		Timeout: cfg.GeminiTimeout,
		Logger:  logger,
	})

	svc := generate.NewService(client, cfg.GenerateConcurrency, logger)
	app := handlers.NewApp(svc, logger)
	router := httpapi.NewRouter(app, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
