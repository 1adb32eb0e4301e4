package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort           string
	MongoURI           string
	MongoDBName        string
	RedisAddr          string
	RedisPassword      string
	CartCacheTTL       time.Duration
	RequestTimeout     time.Duration
	ShutdownTimeout    time.Duration
	MaxRequestBodySize int64
	LogLevel           string

	// EnvFiles lists the env files that were found and loaded.
	EnvFiles []string
}

// StoreConfigured reports whether a MongoDB URI was supplied.
func (c *Config) StoreConfigured() bool {
	return c.MongoURI != ""
}

// Load reads envFiles (".env" when none are given) into the process
// environment, then builds the Config. Missing env files are not an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	var loaded []string
	for _, f := range envFiles {
		err := godotenv.Load(f)
		switch {
		case err == nil:
			loaded = append(loaded, f)
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{
		HTTPPort:           getEnv("PORT", "8000"),
		MongoURI:           getEnv("MONGO_URI", os.Getenv("DATABASE_URL")),
		MongoDBName:        getEnv("MONGO_DB_NAME", getEnv("DATABASE_NAME", "sneakerdb")),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		MaxRequestBodySize: 1 << 20, // 1MB
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		EnvFiles:           loaded,
	}

	var err error
	if cfg.CartCacheTTL, err = getDuration("CART_CACHE_TTL", 15*time.Minute); err != nil {
		return nil, err
	}
	if cfg.RequestTimeout, err = getDuration("REQUEST_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return d, nil
}
