package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	portsrepo "github.com/SscSPs/savkar_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/savkar_ledger/internal/core/services"
	"github.com/SscSPs/savkar_ledger/internal/handlers"
	"github.com/SscSPs/savkar_ledger/internal/middleware"
	"github.com/SscSPs/savkar_ledger/internal/platform/config"
	"github.com/SscSPs/savkar_ledger/internal/repositories/database/docstore"
	firestorestore "github.com/SscSPs/savkar_ledger/internal/repositories/database/firestore"
	"github.com/SscSPs/savkar_ledger/internal/repositories/database/memory"
	"github.com/SscSPs/savkar_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/savkar_ledger/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Savkar Ledger API
// @version 1.0
// @description Loan ledger for a small money-lending business: loans, documents, legal notices, transactions and borrower profiles.
// @description Every route is also served under /users/me, partitioned by the X-User-Id header or the uid query parameter.

// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.ParseLogLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	ctx := context.Background()

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize document store",
			slog.String("driver", cfg.StoreDriver),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Error("Error closing document store", slog.String("error", cerr.Error()))
		}
	}()
	logger.Info("Document store ready", slog.String("driver", cfg.StoreDriver))

	repos := docstore.NewRepositoryProvider(store, nil)
	serviceContainer := services.NewServiceContainer(repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.New(corsConfig(cfg)))

	if cfg.RateLimit != "" {
		rateLimiter, err := newRateLimiter(cfg)
		if err != nil {
			logger.Error("Failed to initialize rate limiter", slog.String("error", err.Error()))
			os.Exit(1)
		}
		r.Use(rateLimiter)
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.DocumentStore, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		logger.Warn("Using in-memory document store")
		return memory.NewStore(), nil

	case config.StorePostgres:
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return nil, err
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, err
		}
		return pgsql.NewStore(pool), nil

	case config.StoreFirestore:
		client, err := database.NewFirestoreClient(ctx, database.FirestoreOptions{
			ProjectID:          cfg.FirestoreProjectID,
			ServiceAccountFile: cfg.ServiceAccountFile,
			CredentialsFile:    cfg.GoogleApplicationCredentials,
			CredentialsJSON:    cfg.FirebaseServiceAccountJSON,
		}, logger)
		if err != nil {
			return nil, err
		}
		return firestorestore.NewStore(client), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 0 || slices.Contains(cfg.CORSAllowedOrigins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowedOrigins
	}
	c.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	c.AllowHeaders = append(c.AllowHeaders, "Authorization", middleware.UserIDHeader, middleware.RequestIDHeader)
	c.ExposeHeaders = []string{middleware.RequestIDHeader}
	c.MaxAge = 12 * time.Hour
	return c
}

func newRateLimiter(cfg *config.Config) (gin.HandlerFunc, error) {
	if cfg.RedisAddr == "" {
		l, err := middleware.NewRateLimiter(cfg.RateLimit, nil)
		if err != nil {
			return nil, err
		}
		return middleware.RateLimit(l), nil
	}
	rdb, err := database.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}
	l, err := middleware.NewRateLimiter(cfg.RateLimit, rdb)
	if err != nil {
		return nil, err
	}
	return middleware.RateLimit(l), nil
}
