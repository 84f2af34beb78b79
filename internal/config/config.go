// Package config reads server settings from the environment, with defaults
// tuned for local development.
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr          string
	AllowOrigins  []string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SnapshotTTL   time.Duration
}

// Load never fails: unset or malformed variables fall back to defaults.
func Load() Config {
	return Config{
		Addr:          envString("ADDR", ":8080"),
		AllowOrigins:  []string{envString("ALLOW_ORIGIN", "*")},
		RedisAddr:     envString("REDIS_ADDR", ""),
		RedisPassword: envString("REDIS_PASSWORD", ""),
		RedisDB:       envInt("REDIS_DB", 0),
		SnapshotTTL:   envDuration("SNAPSHOT_TTL", 24*time.Hour),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
