package config

import (
	"os"
	"strconv"
	"time"

	"github.com/alexanderramin/timeglass/internal/extract"
)

// Config holds all runtime configuration for timeglass. Environment
// variables override defaults; command-line flags override both.
type Config struct {
	GapMinutes  int
	MaxSessions int // session-table display cap
	LogRuns     bool

	Sampling extract.SamplingPolicy
}

// DefaultConfig returns the built-in defaults: 30-minute gap, 30-row
// session table, historical sampling policy, logging off.
func DefaultConfig() Config {
	return Config{
		GapMinutes:  30,
		MaxSessions: 30,
		LogRuns:     false,
		Sampling:    extract.DefaultPolicy(),
	}
}

// LoadConfig reads configuration from TIMEGLASS_* environment variables,
// falling back to defaults for any unset or malformed values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("TIMEGLASS_LOG"); v != "" {
		cfg.LogRuns, _ = strconv.ParseBool(v)
	}
	applyIntEnv(&cfg.GapMinutes, "TIMEGLASS_GAP_MINUTES")
	applyIntEnv(&cfg.MaxSessions, "TIMEGLASS_MAX_SESSIONS")

	applyInt64Env(&cfg.Sampling.LargeFileThreshold, "TIMEGLASS_LARGE_FILE_THRESHOLD")
	applyInt64Env(&cfg.Sampling.WindowSize, "TIMEGLASS_WINDOW_BYTES")
	applyInt64Env(&cfg.Sampling.Stride, "TIMEGLASS_STRIDE_BYTES")

	if v := os.Getenv("TIMEGLASS_REGION_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Sampling.RegionTimeout = time.Duration(n) * time.Millisecond
		}
	}

	// Plausible epoch-ms range for extracted values.
	applyInt64Env(&cfg.Sampling.MinValue, "TIMEGLASS_TS_MIN")
	applyInt64Env(&cfg.Sampling.MaxValue, "TIMEGLASS_TS_MAX")

	return cfg
}

func applyIntEnv(dst *int, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		*dst = n
	}
}

func applyInt64Env(dst *int64, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
		*dst = n
	}
}
