// internal/config/config.go
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults are the flag defaults before CLI parsing. Values may be
// overridden by the environment (or a .env file in the working
// directory); explicit flags always win over both.
type Defaults struct {
	Threads   int
	ChunkSize int
	Threshold float64
	MinLength int
	Output    string
}

// FromEnv loads .env (if present) and resolves the default set from
// CPGSCAN_* variables, falling back to the built-in values.
func FromEnv() Defaults {
	_ = godotenv.Load()

	return Defaults{
		Threads:   getEnvInt("CPGSCAN_THREADS", 0),
		ChunkSize: getEnvInt("CPGSCAN_CHUNK_SIZE", 4),
		Threshold: getEnvFloat("CPGSCAN_THRESHOLD", 0.6),
		MinLength: getEnvInt("CPGSCAN_MIN_LENGTH", 8),
		Output:    getEnv("CPGSCAN_OUTPUT", "text"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
