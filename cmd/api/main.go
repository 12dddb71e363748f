package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/booking-api/internal/audit"
	"github.com/BruksfildServices01/booking-api/internal/config"
	dbpkg "github.com/BruksfildServices01/booking-api/internal/db"
	"github.com/BruksfildServices01/booking-api/internal/infra/cache"
	"github.com/BruksfildServices01/booking-api/internal/infra/payment"
	"github.com/BruksfildServices01/booking-api/internal/infra/storage"
	"github.com/BruksfildServices01/booking-api/internal/logger"
	"github.com/BruksfildServices01/booking-api/internal/middleware"
	"github.com/BruksfildServices01/booking-api/internal/routes"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		zerolog.New(os.Stderr).Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg)

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := dbpkg.Close(db); err != nil {
			log.Error().Err(err).Msg("closing database")
		}
	}()

	deps := routes.Deps{
		DB:     db,
		Config: cfg,
		Log:    log,
	}

	// ------------------------------
	// Optional integrations
	// ------------------------------
	if cfg.CacheEnabled() {
		client, err := cache.NewClient(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeRedis(client, log)
		deps.Cache = cache.NewRedisCache(client, cfg.CacheTTL())
	} else {
		log.Info().Msg("redis not configured, cache disabled")
	}

	if cfg.StorageEnabled() {
		deps.Uploader = storage.NewS3Uploader(storage.NewS3Client(cfg), cfg)
	} else {
		log.Info().Msg("s3 not configured, image uploads disabled")
	}

	if cfg.PaymentsEnabled() {
		client, err := payment.NewMercadoPagoClient(cfg.MPAccessToken)
		if err != nil {
			return err
		}
		deps.Payments = payment.NewMercadoPagoGateway(client)
	} else {
		log.Info().Msg("mercadopago not configured, checkout disabled")
	}

	// Registered after the pool so it closes first.
	deps.Audit = audit.NewDispatcher(audit.New(db), log, 256)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := deps.Audit.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("draining audit queue")
		}
	}()

	// ------------------------------
	// HTTP
	// ------------------------------
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func closeRedis(client *redis.Client, log zerolog.Logger) {
	if err := client.Close(); err != nil {
		log.Error().Err(err).Msg("closing redis")
	}
}
