package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if cfg.Server.Addr != "localhost:5001" {
			t.Errorf("Expected localhost:5001, got %s", cfg.Server.Addr)
		}
		if cfg.Quotes.CacheTTL != 15*time.Minute {
			t.Errorf("Expected 15m cache TTL, got %s", cfg.Quotes.CacheTTL)
		}
		if cfg.Engine.MatchPolicy != "LIFO" {
			t.Errorf("Expected LIFO policy, got %s", cfg.Engine.MatchPolicy)
		}
	})

	t.Run("reads overrides from environment", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "8080")
		t.Setenv("SERVER_HOST", "0.0.0.0")
		t.Setenv("MATCH_POLICY", "FIFO")
		t.Setenv("QUOTE_CACHE_TTL", "1h")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if cfg.Server.Addr != "0.0.0.0:8080" {
			t.Errorf("Expected 0.0.0.0:8080, got %s", cfg.Server.Addr)
		}
		if cfg.Engine.MatchPolicy != "FIFO" {
			t.Errorf("Expected FIFO policy, got %s", cfg.Engine.MatchPolicy)
		}
		if cfg.Quotes.CacheTTL != time.Hour {
			t.Errorf("Expected 1h cache TTL, got %s", cfg.Quotes.CacheTTL)
		}
	})

	t.Run("rejects invalid cache TTL", func(t *testing.T) {
		t.Setenv("QUOTE_CACHE_TTL", "soon")

		if _, err := Load(); err == nil {
			t.Error("Expected an error for invalid duration")
		}
	})
}
