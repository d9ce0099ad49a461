package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

type Config struct {
	Env  string
	Port string

	DBDriver       string
	DBLogLevel     string
	DBMaxOpenConns int
	DBMaxIdleConns int
	SeedSampleData bool

	CORSOrigins []string
	JWTSecret   string

	HotelLocation       *time.Location
	MaxStayNights       int
	EnforceRoomCapacity bool

	Redis     RedisConfig
	RateLimit RateLimitConfig

	RabbitMQURL string

	LogLevel  string
	LogFormat string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RateLimitConfig drives the token bucket guarding booking creation.
type RateLimitConfig struct {
	Enabled        bool
	Prefix         string
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
}

// Load reads the configuration from the environment. Unset values fall back
// to defaults; malformed values are reported as errors.
func Load() (*Config, error) {
	loc, err := time.LoadLocation(envOrDefault("HOTEL_TIMEZONE", "Local"))
	if err != nil {
		return nil, fmt.Errorf("invalid HOTEL_TIMEZONE: %w", err)
	}

	cfg := &Config{
		Env:           envOrDefault("APP_ENV", "development"),
		Port:          envOrDefault("PORT", "8080"),
		DBDriver:      strings.ToLower(envOrDefault("DB_DRIVER", "mysql")),
		DBLogLevel:    envOrDefault("DB_LOG_LEVEL", "warn"),
		CORSOrigins:   parseList(os.Getenv("CORS_ORIGINS")),
		JWTSecret:     strings.TrimSpace(os.Getenv("JWT_SECRET")),
		HotelLocation: loc,
		RabbitMQURL:   strings.TrimSpace(os.Getenv("RABBITMQ_URL")),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		LogFormat:     envOrDefault("LOG_FORMAT", "json"),
		Redis:         RedisConfig{Password: os.Getenv("REDIS_PASSWORD")},
	}

	var errs []string
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err.Error())
		}
	}

	cfg.DBMaxOpenConns, err = envInt("DB_MAX_OPEN_CONNS", 25)
	collect(err)
	cfg.DBMaxIdleConns, err = envInt("DB_MAX_IDLE_CONNS", 10)
	collect(err)
	cfg.SeedSampleData, err = envBool("SEED_SAMPLE_DATA", false)
	collect(err)
	cfg.MaxStayNights, err = envInt("MAX_STAY_NIGHTS", 365)
	collect(err)
	cfg.EnforceRoomCapacity, err = envBool("ENFORCE_ROOM_CAPACITY", true)
	collect(err)

	cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
	if host, port := os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT"); host != "" && port != "" {
		cfg.Redis.Addr = host + ":" + port
	}
	cfg.Redis.DB, err = envInt("REDIS_DB", 0)
	collect(err)

	cfg.RateLimit.Enabled, err = envBool("RATE_LIMIT_ENABLED", cfg.Redis.Addr != "")
	collect(err)
	cfg.RateLimit.Prefix = envOrDefault("RATE_LIMIT_PREFIX", "rl:bookings")
	cfg.RateLimit.Capacity, err = envInt("RATE_LIMIT_CAPACITY", 10)
	collect(err)
	cfg.RateLimit.RefillTokens, err = envInt("RATE_LIMIT_REFILL_TOKENS", 1)
	collect(err)
	cfg.RateLimit.RefillInterval, err = envDuration("RATE_LIMIT_REFILL_INTERVAL", 6*time.Second)
	collect(err)
	cfg.RateLimit.TTL, err = envDuration("RATE_LIMIT_TTL", 10*time.Minute)
	collect(err)

	switch cfg.DBDriver {
	case "mysql", "postgres", "sqlite":
	default:
		errs = append(errs, fmt.Sprintf("unsupported DB_DRIVER %q", cfg.DBDriver))
	}
	if cfg.MaxStayNights < 1 {
		errs = append(errs, "MAX_STAY_NIGHTS must be at least 1")
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def, fmt.Errorf("invalid int for %s: %q", key, raw)
	}
	return n, nil
}

func envBool(key string, def bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return def, fmt.Errorf("invalid bool for %s: %q", key, raw)
	}
	return b, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def, fmt.Errorf("invalid duration for %s: %q", key, raw)
	}
	return d, nil
}

func parseList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
