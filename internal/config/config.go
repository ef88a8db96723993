package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort        = "8080"
	defaultJWTSecret   = "change-me-jwt-secret"
	defaultJWTTTL      = "24h"
	defaultLeadsFile   = "data/leads.json"
	defaultUsersFile   = "data/users.json"
	defaultCORSOrigins = "http://localhost:3000"
	defaultLoginRPM    = "10"
	defaultLoginBurst  = "5"
)

// Config holds the process-wide runtime settings, loaded once at startup.
type Config struct {
	AppEnv      string
	Port        string
	JWTSecret   string
	JWTTTL      time.Duration
	LeadsFile   string
	UsersFile   string
	CORSOrigins []string

	// Login throttling (requests per minute per client IP).
	LoginRatePerMinute int
	LoginBurst         int
}

// Load reads configuration from the environment, after an optional .env file.
func Load() (*Config, error) {
	// .env is for local development only; absence is not an error.
	_ = godotenv.Load()

	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.LeadsFile = strings.TrimSpace(getEnv("LEADS_FILE", defaultLeadsFile))
	cfg.UsersFile = strings.TrimSpace(getEnv("USERS_FILE", defaultUsersFile))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	cfg.LoginRatePerMinute, err = parseIntEnv("LOGIN_RATE_PER_MINUTE", defaultLoginRPM)
	if err != nil {
		return nil, err
	}
	cfg.LoginBurst, err = parseIntEnv("LOGIN_BURST", defaultLoginBurst)
	if err != nil {
		return nil, err
	}

	for _, o := range strings.Split(getEnv("CORS_ALLOWED_ORIGINS", defaultCORSOrigins), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.LeadsFile == "" {
		return fmt.Errorf("LEADS_FILE must not be empty")
	}
	if cfg.UsersFile == "" {
		return fmt.Errorf("USERS_FILE must not be empty")
	}
	if cfg.LoginRatePerMinute <= 0 || cfg.LoginBurst <= 0 {
		return fmt.Errorf("LOGIN_RATE_PER_MINUTE and LOGIN_BURST must be > 0")
	}

	if IsProdLike(cfg.AppEnv) && isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}

	return nil
}

func IsProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
