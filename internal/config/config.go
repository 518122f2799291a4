package config

import (
	"os"
	"strconv"
	"strings"
)

// AppConfig carries environment-derived defaults. Command-line flags are
// merged on top of these by the CLI layer.
type AppConfig struct {
	EnginePath string

	TimeSeconds float64
	Depth       int
	MultiPV     int
	Preset      string
}

func Load() *AppConfig {
	cfg := &AppConfig{
		EnginePath:  "stockfish",
		TimeSeconds: 0.5,
		MultiPV:     2,
		Preset:      "default",
	}

	if v := strings.TrimSpace(os.Getenv("CHESS_REVIEW_ENGINE")); v != "" {
		cfg.EnginePath = v
	}
	if v := strings.TrimSpace(os.Getenv("CHESS_REVIEW_TIME")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.TimeSeconds = f
		}
	}
	if v := strings.TrimSpace(os.Getenv("CHESS_REVIEW_DEPTH")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Depth = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("CHESS_REVIEW_MULTIPV")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MultiPV = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("CHESS_REVIEW_PRESET")); v != "" {
		cfg.Preset = v
	}

	return cfg
}
