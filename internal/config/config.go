package config

import (
	"os"
	"strconv"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr        string
	CatalogCSV  string
	DatabaseURL string

	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string

	// m in the Bayesian trending score
	TrendingMinVotes float64
	// K most similar users considered by collaborative filtering
	CollabNeighbors int
	DefaultPageSize int
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		Addr:              envString("APP_ADDR", ":8080"),
		CatalogCSV:        envString("CATALOG_CSV", "clean_data.csv"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		TrendingMinVotes:  envFloat("TRENDING_MIN_VOTES", 50),
		CollabNeighbors:   envInt("COLLAB_NEIGHBORS", 10),
		DefaultPageSize:   envInt("DEFAULT_PAGE_SIZE", 12),
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
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return fallback
}
