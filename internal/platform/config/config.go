package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Defaults used when the corresponding environment variable is unset.
const (
	DefaultAddr            = ":8080"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"
	DefaultCacheMaxAge     = 300 * time.Second
	DefaultSiteURL         = "https://ara-standard.org"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultRequestTimeout  = 30 * time.Second
	DefaultServiceName     = "ara-api"
)

// Server captures process level configuration.
type Server struct {
	Addr            string
	MetricsAddr     string
	LogLevel        string
	LogFormat       string
	// StrictFilters rejects malformed filter values with 400 instead of
	// matching nothing.
	StrictFilters   bool
	CacheMaxAge     time.Duration
	SiteURL         string
	CatalogDir      string
	ShutdownTimeout time.Duration
	RequestTimeout  time.Duration
	CORSOrigins     []string
	Telemetry       Telemetry
}

// Telemetry configures trace export.
type Telemetry struct {
	ServiceName  string
	OTLPEndpoint string
	Insecure     bool
}

// FromEnv builds a Server config from environment variables so main stays lean.
// Malformed numeric or boolean values are reported rather than silently
// replaced by defaults.
func FromEnv() (Server, error) {
	cfg := Server{
		Addr:        env("ARA_ADDR", DefaultAddr),
		MetricsAddr: strings.TrimSpace(os.Getenv("ARA_METRICS_ADDR")),
		LogLevel:    env("ARA_LOG_LEVEL", DefaultLogLevel),
		LogFormat:   env("ARA_LOG_FORMAT", DefaultLogFormat),
		SiteURL:     strings.TrimRight(env("ARA_SITE_URL", DefaultSiteURL), "/"),
		CatalogDir:  strings.TrimSpace(os.Getenv("ARA_CATALOG_DIR")),
		CORSOrigins: splitList(os.Getenv("ARA_CORS_ORIGINS")),
		Telemetry: Telemetry{
			ServiceName:  env("OTEL_SERVICE_NAME", DefaultServiceName),
			OTLPEndpoint: strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")),
		},
	}

	var err error
	if cfg.StrictFilters, err = envBool("ARA_STRICT_FILTERS", false); err != nil {
		return Server{}, err
	}
	if cfg.Telemetry.Insecure, err = envBool("OTEL_EXPORTER_OTLP_INSECURE", false); err != nil {
		return Server{}, err
	}
	if cfg.CacheMaxAge, err = envSeconds("ARA_CACHE_MAX_AGE", DefaultCacheMaxAge); err != nil {
		return Server{}, err
	}
	if cfg.ShutdownTimeout, err = envDuration("ARA_SHUTDOWN_TIMEOUT", DefaultShutdownTimeout); err != nil {
		return Server{}, err
	}
	if cfg.RequestTimeout, err = envSeconds("ARA_REQUEST_TIMEOUT", DefaultRequestTimeout); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

func env(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", key, v)
	}
	return b, nil
}

// envSeconds accepts a bare number of seconds or a Go duration string.
func envSeconds(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	if n, err := strconv.Atoi(v); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("%s: must not be negative", key)
		}
		return time.Duration(n) * time.Second, nil
	}
	return envDuration(key, def)
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: must not be negative", key)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
