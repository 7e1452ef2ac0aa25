package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/savkar_ledger/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers selectable with STORE_DRIVER.
const (
	StoreFirestore = "firestore"
	StorePostgres  = "postgres"
	StoreMemory    = "memory"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     string

	StoreDriver string

	// Postgres driver
	DatabaseURL    string
	EnableDBCheck  bool
	MigrationsPath string

	// Firestore driver. Credentials are resolved in this order:
	// ServiceAccountFile if it exists, GoogleApplicationCredentials,
	// FirebaseServiceAccountJSON, then application default credentials.
	FirestoreProjectID           string
	ServiceAccountFile           string
	GoogleApplicationCredentials string
	FirebaseServiceAccountJSON   string

	// DefaultAccountID partitions the routes served without a caller identity.
	DefaultAccountID string

	CORSAllowedOrigins []string

	// RateLimit uses the ulule limiter format, e.g. "100-M". Empty disables limiting.
	RateLimit string
	RedisAddr string
	RedisDB   int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", StoreFirestore)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("FIRESTORE_PROJECT_ID", "savkardatabase")
	v.SetDefault("SERVICE_ACCOUNT_FILE", "service-account.json")
	v.SetDefault("GOOGLE_APPLICATION_CREDENTIALS", "")
	v.SetDefault("FIREBASE_SERVICE_ACCOUNT_JSON", "")
	v.SetDefault("DEFAULT_ACCOUNT_ID", domain.DefaultAccountID)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_DB", 0)
	v.AutomaticEnv()

	cfg := &Config{
		Port:                         v.GetString("PORT"),
		IsProduction:                 v.GetBool("IS_PRODUCTION"),
		LogLevel:                     strings.ToLower(v.GetString("LOG_LEVEL")),
		StoreDriver:                  strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		DatabaseURL:                  v.GetString("PGSQL_URL"),
		EnableDBCheck:                v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:               v.GetString("MIGRATIONS_PATH"),
		FirestoreProjectID:           v.GetString("FIRESTORE_PROJECT_ID"),
		ServiceAccountFile:           v.GetString("SERVICE_ACCOUNT_FILE"),
		GoogleApplicationCredentials: v.GetString("GOOGLE_APPLICATION_CREDENTIALS"),
		FirebaseServiceAccountJSON:   v.GetString("FIREBASE_SERVICE_ACCOUNT_JSON"),
		DefaultAccountID:             v.GetString("DEFAULT_ACCOUNT_ID"),
		CORSAllowedOrigins:           splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimit:                    strings.TrimSpace(v.GetString("RATE_LIMIT")),
		RedisAddr:                    v.GetString("REDIS_ADDR"),
		RedisDB:                      v.GetInt("REDIS_DB"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT environment variable not set, using default", slog.String("port", cfg.Port))
	}
	if cfg.DefaultAccountID == "" {
		cfg.DefaultAccountID = domain.DefaultAccountID
	}

	switch cfg.StoreDriver {
	case StoreFirestore, StoreMemory:
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("STORE_DRIVER=%s requires PGSQL_URL", StorePostgres)
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	if cfg.IsProduction && cfg.StoreDriver == StoreMemory {
		slog.Warn("In-memory store selected in production, data will not survive a restart")
	}

	return cfg, nil
}

// ParseLogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func ParseLogLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
