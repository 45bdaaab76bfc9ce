package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"foodorders/internal/jobs"
	"foodorders/internal/platform/observability"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

const (
	defaultHTTPPort        = "3000"
	defaultLogLevel        = "info"
	defaultServiceName     = "food-orders"
	defaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	HTTPPort            string
	OrderStatusSchedule string
	LogLevel            string
	ServiceName         string
	TracesExporter      string
	OTLPEndpoint        string
	ShutdownTimeout     time.Duration
}

// LoadConfig reads configuration from the process environment, falling back to
// the given dotenv files and then to defaults. Files that do not exist are
// skipped; variables already set in the environment win over file values.
func LoadConfig(envFiles ...string) (Config, error) {
	fileValues := map[string]string{}
	for _, path := range envFiles {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		values, err := godotenv.Read(path)
		if err != nil {
			return Config{}, fmt.Errorf("read %s: %w", path, err)
		}
		for k, v := range values {
			if _, seen := fileValues[k]; !seen {
				fileValues[k] = v
			}
		}
	}

	return LoadConfigFrom(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			return v, true
		}
		v, ok := fileValues[key]
		return v, ok
	})
}

// LoadConfigFrom builds and validates a Config using lookup for every key.
func LoadConfigFrom(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}

	config := Config{
		HTTPPort:            get("PORT", defaultHTTPPort),
		OrderStatusSchedule: get("ORDER_STATUS_SCHEDULE", jobs.DefaultOrderStatusSchedule),
		LogLevel:            get("LOG_LEVEL", defaultLogLevel),
		ServiceName:         get("SERVICE_NAME", defaultServiceName),
		TracesExporter:      strings.ToLower(get("TRACES_EXPORTER", observability.ExporterNone)),
		OTLPEndpoint:        get("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ShutdownTimeout:     defaultShutdownTimeout,
	}

	var errs []error
	if raw := get("SHUTDOWN_TIMEOUT", ""); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err))
		}
		config.ShutdownTimeout = timeout
	}

	return config, errors.Join(append(errs, config.Validate())...)
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error

	if port, err := strconv.Atoi(c.HTTPPort); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("PORT: %q is not a valid port", c.HTTPPort))
	}
	if _, err := cron.ParseStandard(c.OrderStatusSchedule); err != nil {
		errs = append(errs, fmt.Errorf("ORDER_STATUS_SCHEDULE: %w", err))
	}
	if _, err := observability.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	switch c.TracesExporter {
	case observability.ExporterNone, observability.ExporterStdout, observability.ExporterOTLP:
	default:
		errs = append(errs, fmt.Errorf("TRACES_EXPORTER: %w: %q", observability.ErrUnknownExporter, c.TracesExporter))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT: must be positive, got %s", c.ShutdownTimeout))
	}

	return errors.Join(errs...)
}

// Address is the listen address of the HTTP server.
func (c Config) Address() string {
	return fmt.Sprintf("0.0.0.0:%s", c.HTTPPort)
}
