package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zatekoja/nursematch/internal/adapters/cache"
	"github.com/zatekoja/nursematch/internal/adapters/nursestore"
	"github.com/zatekoja/nursematch/internal/api/handlers"
	"github.com/zatekoja/nursematch/internal/api/routes"
	"github.com/zatekoja/nursematch/internal/application/services"
	"github.com/zatekoja/nursematch/internal/domain/providers"
	"github.com/zatekoja/nursematch/internal/infrastructure/clients/openai"
	"github.com/zatekoja/nursematch/internal/infrastructure/clients/redis"
	"github.com/zatekoja/nursematch/internal/infrastructure/observability"
	"github.com/zatekoja/nursematch/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)
	logger := observability.GetLogger()

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Redis is optional; the candidate list read path works without it.
	var cacheProvider providers.CacheProvider
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, candidate cache disabled")
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
		logger.Info().Msg("redis client initialized")
	}

	// Candidate source: relational store, document store, or the bundled
	// static file. Store failures degrade, they never stop the process.
	resolver := nursestore.New(cfg, cacheProvider)
	defer resolver.Close()

	var ranker providers.RankingProvider
	if cfg.OpenAI.Configured() {
		client, err := openai.NewClient(&cfg.OpenAI)
		if err != nil {
			logger.Warn().Err(err).Msg("model client unavailable, using mock ranking")
		} else {
			ranker = client
			logger.Info().Str("model", cfg.OpenAI.Model).Msg("model client initialized")
		}
	} else {
		logger.Info().Msg("no model endpoint configured, using mock ranking")
	}

	matchService := services.NewMatchService(resolver, ranker)

	matchHandler := handlers.NewMatchHandler(matchService)
	healthHandler := handlers.NewHealthHandler(resolver, ranker != nil)

	router := routes.NewRouter(matchHandler, healthHandler, metrics)
	handler := router.SetupRoutes()

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("error during server shutdown")
	}
}
