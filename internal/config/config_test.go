package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.HTTPAddr)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected default log level INFO, got %v", cfg.LogLevel)
	}
	if cfg.WeatherTimeout != 10*time.Second {
		t.Errorf("expected default weather timeout 10s, got %v", cfg.WeatherTimeout)
	}
	if cfg.WeatherBaseURL != "" {
		t.Errorf("expected empty weather base url by default, got %q", cfg.WeatherBaseURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("WEATHER_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.HTTPAddr != ":9999" {
		t.Errorf("expected addr :9999, got %q", cfg.HTTPAddr)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected log level DEBUG, got %v", cfg.LogLevel)
	}
	if cfg.WeatherTimeout != 3*time.Second {
		t.Errorf("expected weather timeout 3s, got %v", cfg.WeatherTimeout)
	}
}
