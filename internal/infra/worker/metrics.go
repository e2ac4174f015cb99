package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"lucr-news/internal/pkg/config"
)

// WorkerMetrics exposes Prometheus metrics for the worker binary. It embeds
// the shared ConfigMetrics for configuration fallback tracking and adds
// counters for scheduled triggers, consumed crawl results, and the reaper.
//
// Worker metrics:
//   - worker_scheduled_triggers_total: scheduled trigger attempts by result
//   - worker_crawl_results_total: consumed result messages by status
//   - worker_crawl_job_duration_seconds: wall time from trigger to terminal state
//   - worker_stale_jobs_failed_total: jobs failed by the stale-job reaper
//   - worker_last_result_timestamp: Unix time of the last applied result
type WorkerMetrics struct {
	*config.ConfigMetrics

	ScheduledTriggersTotal *prometheus.CounterVec
	CrawlResultsTotal      *prometheus.CounterVec
	CrawlJobDuration       prometheus.Histogram
	StaleJobsFailedTotal   prometheus.Counter
	LastResultTimestamp    prometheus.Gauge
}

// NewWorkerMetrics creates and registers all worker metrics.
func NewWorkerMetrics() *WorkerMetrics {
	return &WorkerMetrics{
		ConfigMetrics: config.NewConfigMetrics("worker"),

		ScheduledTriggersTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_scheduled_triggers_total",
			Help: "Scheduled crawl trigger attempts by result (triggered/skipped/error)",
		}, []string{"result"}),

		CrawlResultsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_crawl_results_total",
			Help: "Crawl result messages applied by status (RUNNING/COMPLETED/FAILED)",
		}, []string{"status"}),

		CrawlJobDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "worker_crawl_job_duration_seconds",
			Help:    "Wall time from crawl trigger to terminal state in seconds",
			Buckets: []float64{1, 5, 30, 60, 300, 900, 1800},
		}),

		StaleJobsFailedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "worker_stale_jobs_failed_total",
			Help: "Crawl jobs failed by the stale-job reaper",
		}),

		LastResultTimestamp: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "worker_last_result_timestamp",
			Help: "Unix timestamp of the last crawl result applied",
		}),
	}
}

// MustRegister is a no-op kept for call-site symmetry; metrics register
// themselves via promauto in NewWorkerMetrics.
func (m *WorkerMetrics) MustRegister() {}

// RecordTrigger counts one scheduled trigger attempt.
// Result is "triggered", "skipped" (another job active), or "error".
func (m *WorkerMetrics) RecordTrigger(result string) {
	m.ScheduledTriggersTotal.WithLabelValues(result).Inc()
}

// RecordResult counts one applied crawl result message and refreshes the
// last-result gauge.
func (m *WorkerMetrics) RecordResult(status string) {
	m.CrawlResultsTotal.WithLabelValues(status).Inc()
	m.LastResultTimestamp.SetToCurrentTime()
}

// RecordJobDuration observes how long a job took from trigger to its
// terminal state.
func (m *WorkerMetrics) RecordJobDuration(seconds float64) {
	m.CrawlJobDuration.Observe(seconds)
}

// RecordStaleJobs adds reaped jobs to the stale counter.
func (m *WorkerMetrics) RecordStaleJobs(count int) {
	m.StaleJobsFailedTotal.Add(float64(count))
}
