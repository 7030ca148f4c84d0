package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Venue.Rows != 10 || cfg.Venue.SeatsPerRow != 10 {
		t.Errorf("venue = %dx%d, want 10x10", cfg.Venue.Rows, cfg.Venue.SeatsPerRow)
	}
	if cfg.Hold.Timeout != 60*time.Second {
		t.Errorf("hold timeout = %v, want 60s", cfg.Hold.Timeout)
	}
	if cfg.RateLimit.Enabled {
		t.Error("rate limiting should default to disabled")
	}
	if cfg.GetAPIBasePath() != "/api/v1" {
		t.Errorf("api base path = %q, want /api/v1", cfg.GetAPIBasePath())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("VENUE_ROWS", "5")
	t.Setenv("VENUE_SEATS_PER_ROW", "8")
	t.Setenv("SEAT_HOLD_TIMEOUT", "90")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_WHITELISTED_IPS", "10.0.0.1, 10.0.0.2")
	t.Setenv("REDIS_HOST", "redis.internal")

	cfg := Load()

	if cfg.Venue.Rows != 5 || cfg.Venue.SeatsPerRow != 8 {
		t.Errorf("venue = %dx%d, want 5x8", cfg.Venue.Rows, cfg.Venue.SeatsPerRow)
	}
	if cfg.Hold.Timeout != 90*time.Second {
		t.Errorf("hold timeout = %v, want 90s", cfg.Hold.Timeout)
	}
	if !cfg.RateLimit.Enabled {
		t.Error("rate limiting should be enabled")
	}
	if len(cfg.RateLimit.WhitelistedIPs) != 2 || cfg.RateLimit.WhitelistedIPs[1] != "10.0.0.2" {
		t.Errorf("whitelist = %v", cfg.RateLimit.WhitelistedIPs)
	}
	if cfg.Redis.Addr != "redis.internal:6379" {
		t.Errorf("redis addr = %q", cfg.Redis.Addr)
	}
}
