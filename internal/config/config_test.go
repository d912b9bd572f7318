package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HOST", "PORT", "MATERIAIS_URL", "MATERIAIS_TIMEOUT", "MATERIAIS_REFRESH",
		"RELOAD_LIMIT_PER_MIN", "METRICS_ENABLED", "METRICS_TOKEN", "CORS_ORIGINS", "LOG_LEVEL", "TRUST_PROXY"} {
		t.Setenv(k, "")
	}
	t.Setenv("PORT", "5000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SourceURL != "" {
		t.Fatalf("SourceURL=%q", cfg.SourceURL)
	}
	if cfg.FetchTimeout != 30*time.Second {
		t.Fatalf("FetchTimeout=%s", cfg.FetchTimeout)
	}
	if cfg.RefreshInterval != 0 {
		t.Fatalf("RefreshInterval=%s", cfg.RefreshInterval)
	}
	if cfg.ReloadLimitPerMin != 6 {
		t.Fatalf("ReloadLimitPerMin=%d", cfg.ReloadLimitPerMin)
	}
	if !cfg.MetricsEnabled {
		t.Fatalf("metrics should default on")
	}
	if cfg.TrustProxy {
		t.Fatalf("forwarding headers should not be trusted by default")
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("CORSOrigins=%v", cfg.CORSOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", ":8090")
	t.Setenv("MATERIAIS_URL", "  https://docs.google.com/spreadsheets/d/e/x/pubhtml  ")
	t.Setenv("MATERIAIS_TIMEOUT", "5")
	t.Setenv("MATERIAIS_REFRESH", "15m")
	t.Setenv("METRICS_ENABLED", "off")
	t.Setenv("TRUST_PROXY", "true")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr() != "127.0.0.1:8090" {
		t.Fatalf("Addr=%s", cfg.Addr())
	}
	if cfg.SourceURL != "https://docs.google.com/spreadsheets/d/e/x/pubhtml" {
		t.Fatalf("SourceURL=%q", cfg.SourceURL)
	}
	if cfg.FetchTimeout != 5*time.Second {
		t.Fatalf("FetchTimeout=%s", cfg.FetchTimeout)
	}
	if cfg.RefreshInterval != 15*time.Minute {
		t.Fatalf("RefreshInterval=%s", cfg.RefreshInterval)
	}
	if cfg.MetricsEnabled {
		t.Fatalf("metrics should be off")
	}
	if !cfg.TrustProxy {
		t.Fatalf("TrustProxy should be on")
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("CORSOrigins=%v", cfg.CORSOrigins)
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "http")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for bad port")
	}
}
