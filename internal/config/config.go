package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}

// SchedulerConfig carries the scheduling rules that vary per deployment.
// It is passed into the scheduling service explicitly; nothing reads it
// through package state, so tests can use whatever limit they need.
type SchedulerConfig struct {
	// MaxDays is the largest allowed distance, in whole calendar days,
	// between the scheduling date and the transfer date.
	MaxDays int64

	// TierCacheTTL controls how long the fee tier table stays cached.
	TierCacheTTL time.Duration
}

// LoadSchedulerConfig builds a SchedulerConfig from the environment.
func LoadSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		MaxDays:      int64(GetIntEnv("SCHEDULER_MAX_DAYS", 50)),
		TierCacheTTL: time.Duration(GetIntEnv("SCHEDULER_TIER_CACHE_TTL_MINUTES", 60)) * time.Minute,
	}
}
