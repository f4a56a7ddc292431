package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"carbazaar-api/internal/client"
	"carbazaar-api/internal/config"
	"carbazaar-api/internal/display"
	"carbazaar-api/internal/handler"
	"carbazaar-api/internal/resolve"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	slog.Info("starting carbazaar-api", "catalog_origin", cfg.Catalog.Origin)

	// Upstream catalog client
	catalog := client.NewCatalogClient(
		cfg.Catalog.Origin,
		cfg.Catalog.RateLimit,
		time.Duration(cfg.Catalog.TimeoutSeconds)*time.Second,
	)

	// Core components
	resolver := resolve.NewResolver(catalog)
	normalizer := display.NewNormalizer(cfg.Catalog.Origin)

	// Handlers
	healthHandler := handler.NewHealthHandler(catalog)
	brandHandler := handler.NewBrandHandler(catalog)
	catalogHandler := handler.NewCatalogHandler(resolver, normalizer)

	// Router
	r := chi.NewRouter()

	// Middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// CORS middleware
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	// Routes
	r.Get("/health", healthHandler.Check)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/brands", brandHandler.List)
		r.Get("/catalog/{brandSlug}/models", catalogHandler.ListModels)
		r.Get("/catalog/{brandSlug}/{modelSlug}/variants", catalogHandler.ListVariants)
		r.Get("/catalog/{brandSlug}/{modelSlug}/{variantSlug}", catalogHandler.ResolveVariant)
	})

	// Server
	srv := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		slog.Info("server started", "port", cfg.APIPort)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("server stopped")
}

func logLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
