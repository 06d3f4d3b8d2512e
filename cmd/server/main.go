package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"emporia-be/internal/config"
	"emporia-be/internal/db"
	"emporia-be/internal/logger"
	"emporia-be/internal/middleware"
	"emporia-be/internal/seller"
	"emporia-be/internal/session"
	"emporia-be/internal/user"
	"emporia-be/internal/web"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	database := db.InitDB(cfg)
	defer database.Close()

	sessions := newSessionStore(cfg, log)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	sellerRepo := seller.NewRepository(database)
	sellerSvc := seller.NewService(sellerRepo)

	handler := web.NewHandler(userSvc, sellerSvc, sessions)
	mux := http.NewServeMux()
	handler.Register(mux)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := database.Ping(); err != nil {
			http.Error(w, "db unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	var root http.Handler = mux
	root = middleware.RateLimitMiddleware(root)
	root = middleware.ResolveSession(sessions)(root)
	root = logger.LoggingMiddleware(root)
	root = logger.RequestIDMiddleware(root)

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           root,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("port", cfg.AppPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
}

func newSessionStore(cfg *config.Config, log *zap.Logger) session.Store {
	if cfg.RedisURL == "" {
		log.Info("using in-memory session store")
		return session.NewMemoryStore(cfg.SessionTTL)
	}

	store, err := session.NewRedisStore(cfg.RedisURL, cfg.SessionTTL)
	if err != nil {
		log.Fatal("failed to connect session store", zap.Error(err))
	}

	log.Info("using redis session store")
	return store
}
