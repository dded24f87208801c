// Package config reads runtime settings from the environment with
// per-key fallbacks. Composition roots load a .env file first (via
// godotenv) so local runs and deployments share one mechanism.
package config

import (
	"log"
	"os"
	"strconv"
)

// Get returns the environment variable key, or fallback when unset or
// empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetFloat returns the environment variable key parsed as a float64.
// Unparsable values are logged and replaced by fallback.
func GetFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("config %s=%q is not a number, using %v", key, v, fallback)
		return fallback
	}
	return f
}
