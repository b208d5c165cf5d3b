package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	StorageDriver string // "sqlite" or "memory"
	DataDir       string
	FrontendURL   string
	SeedCandidates int
	// Network simulation (mirrors the flaky-network demo boundary)
	SimulateNetwork bool
	LatencyMinMs    int
	LatencyMaxMs    int
	WriteErrorRate  float64
	ReorderFailRate float64
	// Search
	SearchCacheTTLSeconds int
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		StorageDriver: getEnv("STORAGE_DRIVER", "sqlite"),
		DataDir:       getEnv("DATA_DIR", "./data"),
		FrontendURL:   getEnv("FRONTEND_URL", ""),
		SeedCandidates: getEnvInt("SEED_CANDIDATES", 1000),
		// Simulation defaults match the local demo profile
		SimulateNetwork: getEnvBool("SIMULATE_NETWORK", false),
		LatencyMinMs:    getEnvInt("LATENCY_MIN_MS", 200),
		LatencyMaxMs:    getEnvInt("LATENCY_MAX_MS", 1200),
		WriteErrorRate:  getEnvFloat("WRITE_ERROR_RATE", 0.075),
		ReorderFailRate: getEnvFloat("REORDER_FAIL_RATE", 0.1),

		SearchCacheTTLSeconds: getEnvInt("SEARCH_CACHE_TTL_SECONDS", 30),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvFloat returns a float environment variable or fallback if not set/invalid
func getEnvFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return fallback
}
