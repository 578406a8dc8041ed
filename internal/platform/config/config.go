package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	LogLevel        string
	MetricsEnabled  bool
	ShutdownTimeout time.Duration
	// BatchLimit caps the number of values accepted by one batch check.
	BatchLimit int
}

const (
	defaultAddr            = ":8080"
	defaultLogLevel        = "info"
	defaultShutdownTimeout = 10 * time.Second
	defaultBatchLimit      = 1000
)

// FromEnv builds a Server config from environment variables so main stays lean.
// Malformed numeric or boolean values fall back to their defaults.
func FromEnv() Server {
	return fromLookup(os.Getenv)
}

func fromLookup(getenv func(string) string) Server {
	cfg := Server{
		Addr:            defaultAddr,
		LogLevel:        defaultLogLevel,
		MetricsEnabled:  true,
		ShutdownTimeout: defaultShutdownTimeout,
		BatchLimit:      defaultBatchLimit,
	}

	if addr := getenv("CORETYPES_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if level := getenv("CORETYPES_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if enabled, err := strconv.ParseBool(getenv("CORETYPES_METRICS_ENABLED")); err == nil {
		cfg.MetricsEnabled = enabled
	}
	if timeout, err := time.ParseDuration(getenv("CORETYPES_SHUTDOWN_TIMEOUT")); err == nil && timeout > 0 {
		cfg.ShutdownTimeout = timeout
	}
	if limit, err := strconv.Atoi(getenv("CORETYPES_BATCH_LIMIT")); err == nil && limit > 0 {
		cfg.BatchLimit = limit
	}

	return cfg
}
