package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string

	// Rate resolution
	RateServiceURL   string
	RateCacheTTL     time.Duration
	RateFetchLockTTL time.Duration
	RateFetchTimeout time.Duration

	// Price scraping
	PageFetchTimeout time.Duration
	FetchRateLimit   string // ulule/limiter format, e.g. "20-M"

	CORSAllowedOrigins []string
	StoreCurrency      string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("RATE_SERVICE_URL", "http://api.navasan.tech/latest/")
	viper.SetDefault("RATE_CACHE_TTL", "5m")
	viper.SetDefault("RATE_FETCH_LOCK_TTL", "30s")
	viper.SetDefault("RATE_FETCH_TIMEOUT", "10s")
	viper.SetDefault("PAGE_FETCH_TIMEOUT", "30s")
	viper.SetDefault("FETCH_RATE_LIMIT", "20-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("STORE_CURRENCY", "USD")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RateServiceURL = viper.GetString("RATE_SERVICE_URL")
	cfg.RateCacheTTL = durationOrDefault("RATE_CACHE_TTL", 5*time.Minute)
	cfg.RateFetchLockTTL = durationOrDefault("RATE_FETCH_LOCK_TTL", 30*time.Second)
	cfg.RateFetchTimeout = durationOrDefault("RATE_FETCH_TIMEOUT", 10*time.Second)
	cfg.PageFetchTimeout = durationOrDefault("PAGE_FETCH_TIMEOUT", 30*time.Second)
	cfg.FetchRateLimit = viper.GetString("FETCH_RATE_LIMIT")
	cfg.StoreCurrency = strings.ToUpper(strings.TrimSpace(viper.GetString("STORE_CURRENCY")))

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

// durationOrDefault reads a duration such as "5m", warning on invalid values.
func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def)
		}
		return def
	}
	return d
}
