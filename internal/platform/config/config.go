package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// StorageDriver selects the persistence backend.
type StorageDriver string

const (
	StoragePostgres StorageDriver = "postgres"
	StorageMemory   StorageDriver = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	StorageDriver     StorageDriver
	DBMaxConns        int32
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Seeded on startup when both are set
	AdminEmail    string `mapstructure:"ADMIN_EMAIL"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`

	RateLimit       string `mapstructure:"RATE_LIMIT"` // ulule format, e.g. "20-M"
	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`

	// Circuit breaker around the principal lookup
	BreakerMaxRequests      uint32
	BreakerTimeout          time.Duration
	BreakerFailureThreshold uint32
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("STORAGE_DRIVER", string(StoragePostgres))
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "corebank")
	viper.SetDefault("ADMIN_EMAIL", "")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("RATE_LIMIT", "20-M")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("BREAKER_MAX_REQUESTS", 1)
	viper.SetDefault("BREAKER_TIMEOUT", "30s")
	viper.SetDefault("BREAKER_FAILURE_THRESHOLD", 5)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	switch driver := StorageDriver(strings.ToLower(viper.GetString("STORAGE_DRIVER"))); driver {
	case StoragePostgres, StorageMemory:
		cfg.StorageDriver = driver
	default:
		log.Printf("Warning: Invalid value for STORAGE_DRIVER ('%s'). Defaulting to %s.\n", driver, StoragePostgres)
		cfg.StorageDriver = StoragePostgres
	}
	if cfg.StorageDriver == StoragePostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.DBMaxConns = viper.GetInt32("DB_MAX_CONNS")
	if cfg.DBMaxConns <= 0 {
		cfg.DBMaxConns = 10
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	cfg.JWTExpiryDuration = parseDuration("JWT_EXPIRY_DURATION", time.Hour)

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "corebank"
	}

	cfg.AdminEmail = viper.GetString("ADMIN_EMAIL")
	cfg.AdminPassword = viper.GetString("ADMIN_PASSWORD")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	cfg.BreakerMaxRequests = viper.GetUint32("BREAKER_MAX_REQUESTS")
	cfg.BreakerTimeout = parseDuration("BREAKER_TIMEOUT", 30*time.Second)
	cfg.BreakerFailureThreshold = viper.GetUint32("BREAKER_FAILURE_THRESHOLD")
	if cfg.BreakerFailureThreshold == 0 {
		cfg.BreakerFailureThreshold = 5
	}

	return cfg, nil
}

func parseDuration(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
