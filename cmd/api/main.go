// Package main is the entry point for the Wanderlust API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/pkordes/wanderlust/internal/auth"
	"github.com/pkordes/wanderlust/internal/cache"
	"github.com/pkordes/wanderlust/internal/config"
	"github.com/pkordes/wanderlust/internal/handler"
	"github.com/pkordes/wanderlust/internal/middleware"
	"github.com/pkordes/wanderlust/internal/repo"
	"github.com/pkordes/wanderlust/internal/service"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// New() does not open connections immediately; the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Redis ------------------------------------------------------------
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		slog.Error("invalid REDIS_URL", "error", err)
		os.Exit(1)
	}
	rdb := redis.NewClient(redisOpts)
	defer rdb.Close()

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	slog.Info("redis connection established")

	// --- Services ---------------------------------------------------------
	trips := repo.NewTripRepo(pool)
	diary := repo.NewDiaryRepo(pool)
	destinations := repo.NewDestinationRepo(pool)

	destinationCache := cache.NewDestinations(rdb, destinations, cfg.CatalogCacheTTL, logger)
	explore := service.NewExploreService(destinationCache, destinations, cfg.CatalogCacheTTL, logger)

	// Warm the Explore snapshot; a failure here only means the first search loads it.
	if n, err := explore.Refresh(context.Background()); err != nil {
		slog.Warn("destination snapshot not loaded at startup", "error", err)
	} else {
		slog.Info("destination snapshot loaded", "count", n)
	}

	srv := handler.NewServer(handler.Services{
		Auth: service.NewAuthService(
			repo.NewUserRepo(pool),
			repo.NewProfileRepo(pool),
			auth.NewIssuer(cfg.JWTSecret, cfg.SessionTTL),
			auth.NewStore(rdb),
		),
		Explore:   explore,
		Trips:     service.NewTripService(trips),
		Diary:     service.NewDiaryService(diary),
		Packing:   service.NewPackingService(repo.NewPackingRepo(pool)),
		Profile:   service.NewProfileService(repo.NewProfileRepo(pool), trips, diary),
		Dashboard: service.NewDashboardService(trips, diary),
		Export:    service.NewExportService(trips, diary),
	}, logger)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body limit.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Mount("/", srv.Routes())

	// --- HTTP Server ------------------------------------------------------
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
