package config

import (
	"os"
	"strconv"
)

type Config struct {
	Catalog  CatalogConfig
	APIPort  string
	LogLevel string
}

// CatalogConfig locates the upstream catalog service. Origin is also the
// base for relative image paths, so it is injected once here instead of
// being read from the environment at every call site.
type CatalogConfig struct {
	Origin         string
	TimeoutSeconds int
	RateLimit      float64
}

func Load() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Origin:         getEnv("CATALOG_ORIGIN", "http://localhost:1337"),
			TimeoutSeconds: getEnvInt("CATALOG_TIMEOUT_SECONDS", 15),
			RateLimit:      getEnvFloat("CATALOG_RATE_LIMIT", 20),
		},
		APIPort:  getEnv("API_PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
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
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
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
