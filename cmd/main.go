package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/nordavia/airport-aip-service/internal/app/config"
	"github.com/nordavia/airport-aip-service/internal/app/dto"
	"github.com/nordavia/airport-aip-service/internal/app/endpoints"
	"github.com/nordavia/airport-aip-service/internal/app/service"
	"github.com/nordavia/airport-aip-service/internal/app/transport"
	"github.com/nordavia/airport-aip-service/internal/pkg/airport"
	"github.com/nordavia/airport-aip-service/internal/pkg/docsource"
	"github.com/nordavia/airport-aip-service/internal/pkg/logger"
	"github.com/nordavia/airport-aip-service/internal/pkg/registry"
)

// @title           Airport AIP Service API
// @version         0.0.1
// @description     airport-aip-service
// @host      localhost:8080
// @BasePath  /
func main() {
	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	endpts := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(&cfg, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	// init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	countryRegistry := initRegistry(cfg, redisClient)
	store := initRecordStore(ctx, cfg)

	return endpoints.Endpoints{
		AirportEndpoint: makeAirportEndpoint(countryRegistry, store, redisClient, cfg),
	}
}

// initRegistry builds the country routing table with the shared source
// configuration; per-country base URLs live in the embedded table.
func initRegistry(cfg *config.Config, redisClient *redis.Client) *registry.Registry {
	limiter := redis_rate.NewLimiter(redisClient)

	countryRegistry, err := registry.New(docsource.SourceConfig{
		Timeout:      cfg.Source.HTMLTimeout,
		MaxRetries:   cfg.Source.HTMLMaxRetries,
		RateLimitRPS: cfg.Source.HTMLRateLimitRPS,
		Limiter:      limiter,
		DocumentDir:  cfg.Source.PDFTextDir,
	})
	if err != nil {
		slog.Error("failed to init country registry", slog.String("error", err.Error()))
		panic(err)
	}

	return countryRegistry
}

// initRecordStore connects the daily record store. An empty DSN disables
// it; the service then runs on the redis cache alone.
func initRecordStore(ctx context.Context, cfg *config.Config) service.RecordStorer {
	if cfg.DB.DSN == "" {
		slog.InfoContext(ctx, "daily record store disabled, no DB_DSN configured")

		return nil
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse db dsn", slog.String("error", err.Error()))
		panic(err)
	}

	if cfg.DB.MaxOpenConnections > 0 {
		poolConfig.MaxConns = int32(cfg.DB.MaxOpenConnections)
	}

	poolConfig.MaxConnLifetime = cfg.DB.MaxConnectionLifetime
	poolConfig.MaxConnIdleTime = cfg.DB.MaxConnectionIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to db", slog.String("error", err.Error()))
		panic(err)
	}

	if err := airport.EnsureSchema(ctx, pool); err != nil {
		slog.ErrorContext(ctx, "failed to ensure db schema", slog.String("error", err.Error()))
		panic(err)
	}

	return airport.NewRecordStore(pool)
}

func makeAirportEndpoint(countryRegistry *registry.Registry, store service.RecordStorer,
	redisClient *redis.Client, cfg *config.Config,
) endpoints.AirportEndpoint {
	// cache
	recordCache := airport.NewRecordCache(redisClient)

	// service
	lookupService := service.NewLookupService(countryRegistry, recordCache, store,
		cfg.Lookup.CacheExpiration, cfg.Lookup.LockTimeout)

	// endpoint
	return endpoints.MakeAirportEndpoint(lookupService)
}
