package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Host string
	Port string

	// SourceURL is the published spreadsheet. Empty is allowed: the service
	// starts with an empty catalog.
	SourceURL       string
	FetchTimeout    time.Duration
	RefreshInterval time.Duration

	ReloadLimitPerMin int

	// TrustProxy takes the client address from forwarding headers. Only
	// enable it behind a proxy that overwrites them.
	TrustProxy bool

	MetricsEnabled bool
	MetricsToken   string

	CORSOrigins []string
	LogLevel    string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Host: getEnv("HOST", "0.0.0.0"),
		Port: strings.TrimPrefix(getEnv("PORT", "5000"), ":"),

		SourceURL:       strings.TrimSpace(getEnv("MATERIAIS_URL", "")),
		FetchTimeout:    getEnvDuration("MATERIAIS_TIMEOUT", 30*time.Second),
		RefreshInterval: getEnvDuration("MATERIAIS_REFRESH", 0),

		ReloadLimitPerMin: getEnvInt("RELOAD_LIMIT_PER_MIN", 6),
		TrustProxy:        getEnvBool("TRUST_PROXY", false),

		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
		MetricsToken:   getEnv("METRICS_TOKEN", ""),

		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"*"}),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	if n, err := strconv.Atoi(cfg.Port); err != nil || n <= 0 || n > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %q", cfg.Port)
	}
	if cfg.FetchTimeout <= 0 {
		return Config{}, fmt.Errorf("invalid MATERIAIS_TIMEOUT %s: must be positive", cfg.FetchTimeout)
	}

	return cfg, nil
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// getEnvDuration accepts Go durations ("45s") or a bare number of seconds.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := strings.TrimSpace(getEnv(key, ""))
	if value == "" {
		return fallback
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	switch value {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvList(key string, fallback []string) []string {
	value := getEnv(key, "")
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
