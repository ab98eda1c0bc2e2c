package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"precheck/internal/audit"
	"precheck/internal/check"
	"precheck/internal/ingest"
	"precheck/internal/platform/config"
	"precheck/internal/platform/httpserver"
	"precheck/internal/platform/logger"
	platformredis "precheck/internal/platform/redis"
	"precheck/internal/ratelimit"
	"precheck/internal/screening"
	screeninghandler "precheck/internal/screening/handler"
	"precheck/internal/screening/metrics"
	httptransport "precheck/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Optional backends: absent redis means in-process rate limiting,
	// absent postgres means in-memory audit.
	redisClient, err := platformredis.New(ctx, cfg.RedisURL)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}

	auditStore, db, err := buildAuditStore(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("audit store init failed", "error", err)
		os.Exit(1)
	}

	// The worker outlives the signal context: shutdown seals the publisher
	// and the worker exits once the queued events are persisted.
	publisher := audit.NewPublisher(cfg.AuditBuffer, log)
	worker := audit.NewWorker(auditStore, publisher.Inbox(), log)
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		if err := worker.Run(context.Background()); err != nil {
			log.Error("audit worker stopped", "error", err)
		}
	}()

	policy := ingest.IgnoreUnknownSources
	if cfg.RejectUnknownSources {
		policy = ingest.RejectUnknownSources
	}

	svc := screening.New(
		ingest.New(policy),
		check.NewRunner(check.Default(), cfg.ParallelChecks),
		publisher,
		log,
		metrics.New(),
	)

	fallback := ratelimit.NewMemoryLimiter(float64(cfg.RateLimitPerMinute)/60.0, cfg.RateLimitBurst)
	var primary ratelimit.Limiter = fallback
	if redisClient != nil {
		primary = ratelimit.NewRedisLimiter(redisClient.Client, cfg.RateLimitPerMinute, time.Minute)
	}

	health := map[string]httptransport.HealthChecker{}
	if redisClient != nil {
		health["redis"] = redisClient
	}
	if db != nil {
		health["postgres"] = dbHealth{db}
	}

	router := httptransport.NewRouter(httptransport.Deps{
		Screening:       screeninghandler.New(svc, log),
		Logger:          log,
		Limiter:         primary,
		FallbackLimiter: fallback,
		Health:          health,
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting precheck", "addr", cfg.Addr,
		"redis", redisClient != nil, "postgres", db != nil)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}

	publisher.Close()
	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		log.Warn("audit drain timed out, queued events lost")
	}

	if redisClient != nil {
		_ = redisClient.Close()
	}
	if db != nil {
		_ = db.Close()
	}
}

// buildAuditStore picks postgres when configured, in-memory otherwise.
func buildAuditStore(ctx context.Context, databaseURL string) (audit.Store, *sql.DB, error) {
	if databaseURL == "" {
		return audit.NewMemoryStore(), nil, nil
	}

	db, err := audit.OpenPostgres(ctx, databaseURL)
	if err != nil {
		return nil, nil, err
	}

	store := audit.NewPostgresStore(db)
	if err := store.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	return store, db, nil
}

// dbHealth adapts *sql.DB to the router's health probe.
type dbHealth struct {
	db *sql.DB
}

func (h dbHealth) Health(ctx context.Context) error {
	return h.db.PingContext(ctx)
}
