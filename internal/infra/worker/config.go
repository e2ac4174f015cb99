package worker

import (
	"fmt"
	"log/slog"
	"time"

	"lucr-news/internal/pkg/config"
)

// WorkerConfig controls the worker binary: the cron schedule for automatic
// crawl triggers, the stale-job reaper, and the health endpoint.
//
// Configuration is loaded from environment variables with validation and
// fallback to defaults (fail-open): an invalid value never stops the worker,
// it is logged, counted in metrics, and replaced by the default.
type WorkerConfig struct {
	// CronSchedule is the cron expression for scheduled crawl triggers.
	// Five-field format, e.g. "0 6 * * *" (every day at 06:00).
	CronSchedule string

	// Timezone is the IANA timezone name the schedule is evaluated in.
	Timezone string

	// MaxArticles is the article cap passed with scheduled crawl triggers.
	// Range: 1-500.
	MaxArticles int

	// StaleJobTimeout is how long a PENDING or RUNNING job may go without an
	// update before the reaper fails it. Range: 1m-4h.
	StaleJobTimeout time.Duration

	// HealthPort is the port for the liveness/readiness HTTP server.
	// Range: 1024-65535.
	HealthPort int
}

// DefaultConfig returns production-ready defaults: a daily 06:00 UTC crawl,
// a 30-minute stale timeout, and the conventional exporter port range.
func DefaultConfig() WorkerConfig {
	return WorkerConfig{
		CronSchedule:    "0 6 * * *",
		Timezone:        "UTC",
		MaxArticles:     50,
		StaleJobTimeout: 30 * time.Minute,
		HealthPort:      9091,
	}
}

// Validate checks every field and returns all violations together.
func (c *WorkerConfig) Validate() error {
	var errs []error

	if err := config.ValidateCronSchedule(c.CronSchedule); err != nil {
		errs = append(errs, fmt.Errorf("cron schedule: %w", err))
	}
	if err := config.ValidateTimezone(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if err := config.ValidateIntRange(c.MaxArticles, 1, 500); err != nil {
		errs = append(errs, fmt.Errorf("max articles: %w", err))
	}
	if err := config.ValidateDuration(c.StaleJobTimeout, time.Minute, 4*time.Hour); err != nil {
		errs = append(errs, fmt.Errorf("stale job timeout: %w", err))
	}
	if err := config.ValidateIntRange(c.HealthPort, 1024, 65535); err != nil {
		errs = append(errs, fmt.Errorf("health port: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %v", errs)
	}
	return nil
}

// LoadConfigFromEnv loads worker configuration from the environment.
//
// Environment variables:
//   - CRAWL_SCHEDULE: cron expression (default "0 6 * * *")
//   - WORKER_TIMEZONE: IANA timezone name (default "UTC")
//   - CRAWL_MAX_ARTICLES: integer 1-500 (default 50)
//   - STALE_JOB_TIMEOUT: duration string 1m-4h (default "30m")
//   - WORKER_HEALTH_PORT: integer 1024-65535 (default 9091)
//
// Each invalid value falls back to its default, emits a warning, and is
// recorded in the config metrics. The returned config is always valid and
// the error is always nil.
func LoadConfigFromEnv(logger *slog.Logger, metrics *WorkerMetrics) (*WorkerConfig, error) {
	cfg := DefaultConfig()
	fallbackApplied := false

	apply := func(field string, result config.ConfigLoadResult) {
		if !result.FallbackApplied {
			return
		}
		fallbackApplied = true
		metrics.RecordValidationError(field)
		metrics.RecordFallback(field, "default")
		for _, warning := range result.Warnings {
			logger.Warn("configuration fallback applied",
				slog.String("field", field),
				slog.String("warning", warning))
		}
	}

	result := config.LoadEnvWithFallback("CRAWL_SCHEDULE", cfg.CronSchedule, config.ValidateCronSchedule)
	cfg.CronSchedule = result.Value.(string)
	apply("crawl_schedule", result)

	result = config.LoadEnvWithFallback("WORKER_TIMEZONE", cfg.Timezone, config.ValidateTimezone)
	cfg.Timezone = result.Value.(string)
	apply("worker_timezone", result)

	result = config.LoadEnvInt("CRAWL_MAX_ARTICLES", cfg.MaxArticles, func(v int) error {
		return config.ValidateIntRange(v, 1, 500)
	})
	cfg.MaxArticles = result.Value.(int)
	apply("crawl_max_articles", result)

	result = config.LoadEnvDuration("STALE_JOB_TIMEOUT", cfg.StaleJobTimeout, func(d time.Duration) error {
		return config.ValidateDuration(d, time.Minute, 4*time.Hour)
	})
	cfg.StaleJobTimeout = result.Value.(time.Duration)
	apply("stale_job_timeout", result)

	result = config.LoadEnvInt("WORKER_HEALTH_PORT", cfg.HealthPort, func(v int) error {
		return config.ValidateIntRange(v, 1024, 65535)
	})
	cfg.HealthPort = result.Value.(int)
	apply("worker_health_port", result)

	metrics.SetFallbackActive("", fallbackApplied)
	metrics.RecordLoadTimestamp()

	return &cfg, nil
}
