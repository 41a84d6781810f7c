// Package config reads the runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	// Load .env file to environments
	_ "github.com/joho/godotenv/autoload"

	"github.com/seifeddinerezgui/gethrought/internal/database"
)

// Store drivers accepted in STORE_DRIVER
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// RedisConfig holds the optional listing cache connection. An empty Addr disables the cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// JWTConfig holds signing parameters for back-office access tokens.
type JWTConfig struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Port          int
	GinMode       string
	StoreDriver   string
	DB            *database.DBConfig
	Redis         RedisConfig
	NewsCacheTTL  time.Duration
	JWT           JWTConfig
	AdminUsername string
	AdminPassword string
	AllowOrigins  []string
	RateLimit     uint
	BodyLimit     int64
	LogLevel      string
	LogFormat     string
	SeedOnStart   bool
}

// Load reads environment variables and returns a fully populated Config.
func Load() (Config, error) {
	var errs []error

	port, err := strconv.Atoi(envOrDefault("PORT", "8080"))
	if err != nil || port <= 0 {
		errs = append(errs, fmt.Errorf("PORT must be a positive integer: %q", os.Getenv("PORT")))
	}

	driver := strings.ToLower(envOrDefault("STORE_DRIVER", StoreDriverPostgres))
	if driver != StoreDriverPostgres && driver != StoreDriverMemory {
		errs = append(errs, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreDriverPostgres, StoreDriverMemory, driver))
	}

	useConnStr, err := parseBool("USE_CONNECTION_STR", false)
	if err != nil {
		errs = append(errs, err)
	}

	redisDB, err := strconv.Atoi(envOrDefault("REDIS_DB", "0"))
	if err != nil {
		errs = append(errs, fmt.Errorf("REDIS_DB must be an integer: %w", err))
	}

	cacheTTL, err := parseDuration("NEWS_CACHE_TTL", time.Minute)
	if err != nil {
		errs = append(errs, err)
	}

	tokenTTL, err := parseDuration("JWT_TTL", time.Hour)
	if err != nil {
		errs = append(errs, err)
	}

	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		errs = append(errs, errors.New("SECRET_KEY must be configured"))
	}

	rateLimit, err := strconv.Atoi(envOrDefault("RATE_LIMIT_REQUESTS_PER_SECOND", "5"))
	if err != nil || rateLimit <= 0 {
		// default to 5 requests per second if env variable is invalid
		rateLimit = 5
	}

	seed, err := parseBool("SEED_ON_START", true)
	if err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}

	return Config{
		Port:        port,
		GinMode:     envOrDefault("GIN_MODE", "release"),
		StoreDriver: driver,
		DB: &database.DBConfig{
			Host:      os.Getenv("DB_HOST"),
			Port:      os.Getenv("DB_PORT"),
			User:      os.Getenv("DB_USERNAME"),
			Password:  os.Getenv("DB_PASSWORD"),
			DBName:    os.Getenv("DB_DATABASE"),
			Constr:    os.Getenv("DB_CONNECTION_STR"),
			UseConstr: useConnStr,
		},
		Redis: RedisConfig{
			Addr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		NewsCacheTTL: cacheTTL,
		JWT: JWTConfig{
			Secret: []byte(secret),
			Issuer: envOrDefault("JWT_ISSUER", "gethrought"),
			TTL:    tokenTTL,
		},
		AdminUsername: strings.TrimSpace(os.Getenv("ADMIN_USERNAME")),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		AllowOrigins:  parseList("ALLOW_ORIGIN", []string{"*"}),
		RateLimit:     uint(rateLimit),
		BodyLimit:     1 << 20,
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		LogFormat:     envOrDefault("LOG_FORMAT", "json"),
		SeedOnStart:   seed,
	}, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseBool(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback, fmt.Errorf("%s environments variables are invalid: %w", key, err)
	}
	return v, nil
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return v, nil
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
