package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr        = "0.0.0.0:8080"
	defaultSessionTTL  = 60 * time.Second
	defaultSweepPeriod = 30 * time.Second
	defaultIDMode      = "legacy"
)

type Config struct {
	Addr        string
	SessionTTL  time.Duration
	SweepPeriod time.Duration
	IDMode      string
	LogLevel    slog.Level
}

// Load reads an optional .env file and applies env overrides on top of
// the defaults. Nothing is required; the zero-config service binds
// 0.0.0.0:8080 with a 60s TTL and 30s sweep period.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Addr:        defaultAddr,
		SessionTTL:  defaultSessionTTL,
		SweepPeriod: defaultSweepPeriod,
		IDMode:      defaultIDMode,
		LogLevel:    slog.LevelInfo,
	}

	if v := os.Getenv("ONLINETRACKER_ADDR"); v != "" {
		cfg.Addr = v
	}
	if d := durationEnv("SESSION_TTL"); d > 0 {
		cfg.SessionTTL = d
	}
	if d := durationEnv("SWEEP_PERIOD"); d > 0 {
		cfg.SweepPeriod = d
	}
	if v := os.Getenv("SESSION_ID_MODE"); v != "" {
		cfg.IDMode = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = parseLevel(v)
	}

	return cfg
}

func durationEnv(key string) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0
	}
	return d
}

func parseLevel(v string) slog.Level {
	switch strings.ToLower(v) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
