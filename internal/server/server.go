// Package server собирает HTTP сервер linkkeeper из хендлеров,
// middleware и зависимостей.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/linkkeeper/internal/config"
	"github.com/iudanet/linkkeeper/internal/server/handlers"
	"github.com/iudanet/linkkeeper/internal/server/linkcheck"
	"github.com/iudanet/linkkeeper/internal/server/middleware"
	"github.com/iudanet/linkkeeper/internal/server/ratelimit"
	"github.com/iudanet/linkkeeper/internal/server/storage"
	"github.com/iudanet/linkkeeper/internal/server/token"
)

const healthPath = "/api/v1/health"

// shutdownTimeout - время на завершение активных запросов при остановке
const shutdownTimeout = 10 * time.Second

// Storage объединяет все storage интерфейсы, которые нужны серверу
type Storage interface {
	storage.UserStorage
	storage.CollectionStorage
	storage.ItemStorage
}

// Server представляет HTTP сервер приложения
type Server struct {
	logger       *slog.Logger
	httpServer   *http.Server
	limiterStore *ratelimit.MemoryStore
}

// New создает сервер со всеми зависимостями и маршрутами
func New(cfg *config.Server, logger *slog.Logger, store Storage, version string) *Server {
	tokens := token.NewService(token.Config{
		Secret:         []byte(cfg.JWTSecret),
		AccessTokenTTL: cfg.AccessTokenTTL,
		IdleTimeout:    cfg.IdleTimeout,
	})

	limiterStore := ratelimit.NewMemoryStore(cfg.LoginWindow)
	limiter := ratelimit.New(limiterStore, ratelimit.Config{
		MaxAttempts: cfg.LoginMaxAttempts,
		Window:      cfg.LoginWindow,
		Lockout:     cfg.LoginLockout,
	}, logger)

	links := linkcheck.New(logger)

	authHandler := handlers.NewAuthHandler(logger, store, tokens, limiter)
	collectionsHandler := handlers.NewCollectionsHandler(logger, store)
	itemsHandler := handlers.NewItemsHandler(logger, store, store, links)
	healthHandler := handlers.NewHealthHandler(logger, version)

	authRequired := middleware.AuthMiddleware(logger, tokens, store)

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+healthPath, healthHandler.Health)
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)

	mux.Handle("GET /api/v1/collections", authRequired(http.HandlerFunc(collectionsHandler.List)))
	mux.Handle("POST /api/v1/collections", authRequired(http.HandlerFunc(collectionsHandler.Create)))
	mux.Handle("GET /api/v1/collections/{id}/items", authRequired(http.HandlerFunc(itemsHandler.List)))
	mux.Handle("POST /api/v1/collections/{id}/items", authRequired(http.HandlerFunc(itemsHandler.Create)))

	handler := middleware.RecoveryMiddleware(logger)(
		middleware.LoggingWithSkip(logger, []string{healthPath})(mux),
	)

	return &Server{
		logger: logger,
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		limiterStore: limiterStore,
	}
}

// Handler возвращает корневой HTTP handler сервера
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run запускает сервер и блокируется до отмены контекста
// После отмены выполняется graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	errC := make(chan error, 1)

	go func() {
		s.logger.Info("HTTP server starting", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	select {
	case err := <-errC:
		s.limiterStore.Stop()
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	s.limiterStore.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}
