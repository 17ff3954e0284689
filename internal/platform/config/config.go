package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage backends selectable through STORAGE_BACKEND.
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// Trace exporters selectable through TRACE_EXPORTER.
const (
	TraceExporterNone   = "none"
	TraceExporterStdout = "stdout"
)

// DefaultRelayURL is the public CORS relay the lookups fall back to.
const DefaultRelayURL = "https://cors-anywhere.herokuapp.com/"

// Server captures process level configuration.
type Server struct {
	Addr     string
	LogLevel string
	Storage  Storage
	Redis    RedisConfig
	Lookup   Lookup
	Tracing  Tracing
}

// Storage selects and configures the key-value backend.
type Storage struct {
	Backend     string
	FilePath    string
	DatabaseURL string
}

// RedisConfig configures the optional Redis storage backend.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	KeyPrefix    string
}

// Lookup holds the remote endpoints and retention policy for lookups.
type Lookup struct {
	PhoneURL      string
	VehicleURL    string
	NationalIDURL string
	RelayURL      string
	FetchTimeout  time.Duration
	CacheTTL      time.Duration
	HistoryLimit  int
}

// Tracing selects where OpenTelemetry spans go.
type Tracing struct {
	Exporter    string
	ServiceName string
	SampleRatio float64
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:     envString("LOOKUP_ADDR", "127.0.0.1:8080"),
		LogLevel: envString("LOG_LEVEL", "info"),
		Storage: Storage{
			Backend:     strings.ToLower(envString("STORAGE_BACKEND", StorageFile)),
			FilePath:    envString("STORAGE_FILE", "lookupdesk.json"),
			DatabaseURL: os.Getenv("DATABASE_URL"),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 1),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
			KeyPrefix:    envString("REDIS_KEY_PREFIX", "lookupdesk:"),
		},
		Lookup: Lookup{
			PhoneURL:      os.Getenv("PHONE_API_URL"),
			VehicleURL:    os.Getenv("VEHICLE_API_URL"),
			NationalIDURL: os.Getenv("NATIONAL_ID_API_URL"),
			RelayURL:      envString("RELAY_URL", DefaultRelayURL),
			FetchTimeout:  envDuration("FETCH_TIMEOUT", 15*time.Second),
			CacheTTL:      envDuration("CACHE_TTL", 24*time.Hour),
			HistoryLimit:  envInt("HISTORY_LIMIT", 20),
		},
		Tracing: Tracing{
			Exporter:    strings.ToLower(envString("TRACE_EXPORTER", TraceExporterNone)),
			ServiceName: envString("OTEL_SERVICE_NAME", "lookupdesk"),
			SampleRatio: envRatio("TRACE_SAMPLE_RATIO", 1),
		},
	}
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func envRatio(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 || f > 1 {
		return fallback
	}
	return f
}
