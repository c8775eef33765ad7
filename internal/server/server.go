// Package server is the composition root: it wires the storage backend,
// services, handlers, and middleware into a chi router and owns the HTTP
// server lifecycle.
//
// Dependency chain assembled in New:
//
//	config → repository.Storage (memory or sqlite)
//	       → services (catalog, favorites, orders) + generator
//	       → handlers
//	       → routes
//
// Handlers never touch storage directly and services never touch HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/artifyai/storefront/internal/config"
	"github.com/artifyai/storefront/internal/generator"
	"github.com/artifyai/storefront/internal/handler"
	"github.com/artifyai/storefront/internal/middleware"
	"github.com/artifyai/storefront/internal/repository"
	"github.com/artifyai/storefront/internal/repository/memory"
	sqliteRepo "github.com/artifyai/storefront/internal/repository/sqlite"
	"github.com/artifyai/storefront/internal/service"
)

// Server holds the router and the storage backend it owns. The backend is
// closed during graceful shutdown.
type Server struct {
	router *chi.Mux
	config config.Config
	logger *slog.Logger
	store  repository.Storage
}

// New builds the server from config. STORAGE_DRIVER selects the backend:
// "memory" (default) or "sqlite".
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	store, err := newStorage(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("creating storage: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		store:  store,
	}
	s.setupRoutes()

	return s, nil
}

func newStorage(cfg config.Config, logger *slog.Logger) (repository.Storage, error) {
	switch cfg.StorageDriver {
	case "memory":
		return memory.New(logger), nil
	case "sqlite":
		return sqliteRepo.New(cfg.SQLitePath, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// setupRoutes configures middleware and the API surface.
//
// GET    /api/artworks            → catalog (optional ?style= / ?q=)
// GET    /api/artworks/{id}       → single artwork
// POST   /api/artworks            → create artwork
// POST   /api/favorites           → add favorite (idempotent)
// GET    /api/favorites/{userId}  → user's favorited artworks
// DELETE /api/favorites/{id}      → remove favorite
// POST   /api/orders              → place order
// GET    /api/orders/{userId}     → user's orders
// POST   /api/generate-art        → mock art generation
func (s *Server) setupRoutes() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	catalogService := service.NewCatalogService(s.store, s.logger)
	favoriteService := service.NewFavoriteService(s.store, s.logger)
	orderService := service.NewOrderService(s.store, s.logger)
	gen := generator.NewMock(generator.Config{Delay: s.config.GenerateDelay})

	artworkHandler := handler.NewArtworkHandler(catalogService, s.logger)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService, s.logger)
	orderHandler := handler.NewOrderHandler(orderService, s.logger)
	generateHandler := handler.NewGenerateHandler(gen, s.logger)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/artworks", artworkHandler.HandleList)
		r.Get("/artworks/{id}", artworkHandler.HandleGet)
		r.Post("/artworks", artworkHandler.HandleCreate)

		r.Post("/favorites", favoriteHandler.HandleAdd)
		r.Get("/favorites/{userId}", favoriteHandler.HandleListForUser)
		r.Delete("/favorites/{id}", favoriteHandler.HandleRemove)

		r.Post("/orders", orderHandler.HandleCreate)
		r.Get("/orders/{userId}", orderHandler.HandleListForUser)

		r.Post("/generate-art", generateHandler.HandleGenerate)
	})
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully: stop accepting connections, wait up to 30s for in-flight
// requests (art generation can hold one for a couple of seconds), close
// the storage backend.
func (s *Server) Start() error {
	defer s.store.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("storage", s.config.StorageDriver),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
