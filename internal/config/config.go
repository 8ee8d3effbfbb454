package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"impactDashboardAPI/internal/validation"
)

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"

	AuthClerk = "clerk"
	AuthHS256 = "hs256"

	minSecretLen = 16
)

type Config struct {
	Port string `json:"PORT" validate:"required,numeric"`
	Env  string `json:"ENV" validate:"oneof=development production test"`

	ImpactAPIURL     string        `json:"IMPACT_API_URL" validate:"required,url"`
	ImpactAPITimeout time.Duration `json:"IMPACT_API_TIMEOUT" validate:"gt=0"`

	StateBackend  string `json:"STATE_BACKEND" validate:"oneof=memory redis postgres"`
	RedisAddr     string `json:"REDIS_ADDR" validate:"required_if=StateBackend redis"`
	RedisPassword string `json:"REDIS_PASSWORD"`
	RedisDB       int    `json:"REDIS_DB" validate:"gte=0"`
	DatabaseURL   string `json:"DATABASE_URL" validate:"required_if=StateBackend postgres"`

	AuthMode       string `json:"AUTH_MODE" validate:"oneof=clerk hs256"`
	ClerkSecretKey string `json:"CLERK_SECRET_KEY" validate:"required_if=AuthMode clerk"`
	JWTSecret      string `json:"JWT_SECRET" validate:"required_if=AuthMode hs256"`

	MetricsUser string `json:"METRICS_USER"`
	MetricsPass string `json:"METRICS_PASS"`

	FCMCredentialsFile    string `json:"FCM_CREDENTIALS_FILE"`
	FCMServiceAccountJSON string `json:"FCM_SERVICE_ACCOUNT_JSON"`

	MonthlyTargetFallback float64 `json:"MONTHLY_TARGET_FALLBACK" validate:"gt=0"`
	RateLimitRPS          float64 `json:"RATE_LIMIT_RPS" validate:"gt=0"`
	RateLimitBurst        int     `json:"RATE_LIMIT_BURST" validate:"gt=0"`
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup so tests can supply their own environment.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	get := func(name, fallback string) string {
		if v, ok := lookup(name); ok && v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		Port:                  get("PORT", "3333"),
		Env:                   get("ENV", "production"),
		ImpactAPIURL:          get("IMPACT_API_URL", ""),
		StateBackend:          get("STATE_BACKEND", BackendMemory),
		RedisAddr:             get("REDIS_ADDR", ""),
		RedisPassword:         get("REDIS_PASSWORD", ""),
		DatabaseURL:           get("DATABASE_URL", ""),
		AuthMode:              get("AUTH_MODE", AuthClerk),
		ClerkSecretKey:        get("CLERK_SECRET_KEY", ""),
		JWTSecret:             get("JWT_SECRET", ""),
		MetricsUser:           get("METRICS_USER", ""),
		MetricsPass:           get("METRICS_PASS", ""),
		FCMCredentialsFile:    get("FCM_CREDENTIALS_FILE", ""),
		FCMServiceAccountJSON: get("FCM_SERVICE_ACCOUNT_JSON", ""),
	}

	var err error
	if cfg.ImpactAPITimeout, err = time.ParseDuration(get("IMPACT_API_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("invalid IMPACT_API_TIMEOUT: %w", err)
	}
	if cfg.RedisDB, err = strconv.Atoi(get("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	if cfg.MonthlyTargetFallback, err = strconv.ParseFloat(get("MONTHLY_TARGET_FALLBACK", "100"), 64); err != nil {
		return nil, fmt.Errorf("invalid MONTHLY_TARGET_FALLBACK: %w", err)
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(get("RATE_LIMIT_RPS", "5"), 64); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(get("RATE_LIMIT_BURST", "30")); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
	}

	if err := validation.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.JWTSecret != "" && len(cfg.JWTSecret) < minSecretLen {
		return nil, fmt.Errorf("invalid configuration: JWT_SECRET must be at least %d characters", minSecretLen)
	}
	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

// PushEnabled reports whether FCM credentials were supplied.
func (c *Config) PushEnabled() bool {
	return c.FCMCredentialsFile != "" || c.FCMServiceAccountJSON != ""
}
