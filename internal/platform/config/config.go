package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Server captures process-level configuration. Everything comes from the
// environment so main stays lean; a local .env file is honored when present.
type Server struct {
	Addr string

	// LogLevel is debug, info, warn, or error. LogFormat is json or text.
	LogLevel  string
	LogFormat string

	// RedisURL enables the shared rate-limit window when set.
	RedisURL string

	// DatabaseURL enables the postgres audit store when set.
	DatabaseURL string

	// RejectUnknownSources switches ingestion from dropping unrecognized
	// information sources to failing the request.
	RejectUnknownSources bool

	// ParallelChecks fans check execution out per request. Off by default;
	// the registry is small enough that sequential is simpler and just as
	// fast.
	ParallelChecks bool

	// RateLimitPerMinute bounds requests per client IP. RateLimitBurst is
	// the in-memory fallback burst.
	RateLimitPerMinute int64
	RateLimitBurst     int

	// AuditBuffer is the audit publisher's channel capacity.
	AuditBuffer int

	ShutdownTimeout time.Duration
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	return Server{
		Addr:                 envOr("PRECHECK_ADDR", ":8080"),
		LogLevel:             envOr("PRECHECK_LOG_LEVEL", "info"),
		LogFormat:            envOr("PRECHECK_LOG_FORMAT", "json"),
		RedisURL:             os.Getenv("PRECHECK_REDIS_URL"),
		DatabaseURL:          os.Getenv("PRECHECK_DATABASE_URL"),
		RejectUnknownSources: os.Getenv("PRECHECK_REJECT_UNKNOWN_SOURCES") == "true",
		ParallelChecks:       os.Getenv("PRECHECK_PARALLEL_CHECKS") == "true",
		RateLimitPerMinute:   envInt64("PRECHECK_RATE_LIMIT_PER_MINUTE", 120),
		RateLimitBurst:       int(envInt64("PRECHECK_RATE_LIMIT_BURST", 20)),
		AuditBuffer:          int(envInt64("PRECHECK_AUDIT_BUFFER", 256)),
		ShutdownTimeout:      10 * time.Second,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
