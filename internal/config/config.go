package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultEnv             = "development"
	defaultLogLevel        = "info"
	defaultHTTPHost        = "0.0.0.0"
	defaultHTTPPort        = 8080
	defaultRedisDB         = 0
	defaultCacheTTLSeconds = 30
	defaultTargetCount     = 100
	defaultExchange        = "marketboard.companies"
	defaultPrefetch        = 1
	defaultPublishInterval = 30 * time.Second
)

// Config keeps the runtime configuration for the service.
type Config struct {
	Env      string
	LogLevel logrus.Level
	HTTP     HTTPConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Market   MarketConfig
	RabbitMQ RabbitMQConfig
}

// HTTPConfig holds HTTP server related settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr renders the listen address in host:port form.
func (h HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

// RedisConfig stores Redis connection parameters. An empty Addr disables
// the response cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// CacheConfig stores cache behavior.
type CacheConfig struct {
	TTLSeconds int
}

// TTL returns the cache lifetime as a duration.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// MarketConfig controls batch generation.
type MarketConfig struct {
	TargetCount int
	// Seed feeds the random source. Zero picks a time based seed.
	Seed uint64
}

// SeedOrClock returns Seed, or one derived from now when Seed is zero.
func (m MarketConfig) SeedOrClock(now time.Time) uint64 {
	if m.Seed != 0 {
		return m.Seed
	}
	return uint64(now.UnixNano())
}

// RabbitMQConfig stores the mock feed settings. An empty URL disables it.
type RabbitMQConfig struct {
	URL             string
	Exchange        string
	Prefetch        int
	PublishInterval time.Duration
}

// Load builds Config from environment variables, reading a .env file first
// when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	level, err := logrus.ParseLevel(getString("LOG_LEVEL", defaultLogLevel))
	if err != nil {
		return nil, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}

	port, err := getInt("HTTP_PORT", defaultHTTPPort)
	if err != nil {
		return nil, fmt.Errorf("parse HTTP_PORT: %w", err)
	}

	redisDB, err := getInt("REDIS_DB", defaultRedisDB)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_DB: %w", err)
	}

	cacheTTL, err := getInt("CACHE_TTL_SECONDS", defaultCacheTTLSeconds)
	if err != nil {
		return nil, fmt.Errorf("parse CACHE_TTL_SECONDS: %w", err)
	}
	if cacheTTL < 0 {
		return nil, fmt.Errorf("CACHE_TTL_SECONDS must not be negative, got %d", cacheTTL)
	}

	targetCount, err := getInt("MARKET_TARGET_COUNT", defaultTargetCount)
	if err != nil {
		return nil, fmt.Errorf("parse MARKET_TARGET_COUNT: %w", err)
	}
	if targetCount < 0 {
		return nil, fmt.Errorf("MARKET_TARGET_COUNT must not be negative, got %d", targetCount)
	}

	seed, err := getUint64("MARKET_SEED", 0)
	if err != nil {
		return nil, fmt.Errorf("parse MARKET_SEED: %w", err)
	}

	prefetch, err := getInt("RABBITMQ_PREFETCH", defaultPrefetch)
	if err != nil {
		return nil, fmt.Errorf("parse RABBITMQ_PREFETCH: %w", err)
	}

	interval, err := getDuration("PUBLISH_INTERVAL", defaultPublishInterval)
	if err != nil {
		return nil, fmt.Errorf("parse PUBLISH_INTERVAL: %w", err)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("PUBLISH_INTERVAL must be positive, got %s", interval)
	}

	return &Config{
		Env:      getString("APP_ENV", defaultEnv),
		LogLevel: level,
		HTTP: HTTPConfig{
			Host: getString("HTTP_HOST", defaultHTTPHost),
			Port: port,
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Cache: CacheConfig{
			TTLSeconds: cacheTTL,
		},
		Market: MarketConfig{
			TargetCount: targetCount,
			Seed:        seed,
		},
		RabbitMQ: RabbitMQConfig{
			URL:             os.Getenv("RABBITMQ_URL"),
			Exchange:        getString("RABBITMQ_EXCHANGE", defaultExchange),
			Prefetch:        prefetch,
			PublishInterval: interval,
		},
	}, nil
}

// NewLogger returns a JSON logger at the configured level.
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(c.LogLevel)
	return logger
}

func getString(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}

func getInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("convert %s value %q to int: %w", key, value, err)
	}
	return parsed, nil
}

func getUint64(key string, fallback uint64) (uint64, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("convert %s value %q to uint64: %w", key, value, err)
	}
	return parsed, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("convert %s value %q to duration: %w", key, value, err)
	}
	return parsed, nil
}
