package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Quotes   QuotesConfig
	Engine   EngineConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// QuotesConfig holds market-data configuration
type QuotesConfig struct {
	// RefreshSpec is a cron expression for the background refresh of
	// cached quotes.
	RefreshSpec string
	// CacheTTL is how long a fetched quote is served before a lookup
	// triggers a refetch.
	CacheTTL time.Duration
}

// EngineConfig holds lot-matching configuration
type EngineConfig struct {
	// MatchPolicy selects the lot-matching order: LIFO (default) or FIFO.
	MatchPolicy string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	cacheTTL, err := time.ParseDuration(getEnv("QUOTE_CACHE_TTL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid QUOTE_CACHE_TTL: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/stock_tracker.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost"), ","),
		},
		Quotes: QuotesConfig{
			RefreshSpec: getEnv("QUOTE_REFRESH_SPEC", "@every 15m"),
			CacheTTL:    cacheTTL,
		},
		Engine: EngineConfig{
			MatchPolicy: getEnv("MATCH_POLICY", "LIFO"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
