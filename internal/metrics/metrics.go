// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// StoreOps counts file store operations by op (read, write, append) and
	// result (ok, error).
	StoreOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "surveybot_store_operations_total",
		Help: "File store operations by operation and result",
	}, []string{"op", "result"})

	// StoreRetries counts retried file store attempts by op.
	StoreRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "surveybot_store_retries_total",
		Help: "File store attempts retried after a transient failure",
	}, []string{"op"})

	// StoreRestores counts backups restored after a failed commit or read.
	StoreRestores = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "surveybot_store_restores_total",
		Help: "Backups restored by reason",
	}, []string{"reason"})

	// StoreCorruptReads counts reads that decoded to binary garbage.
	StoreCorruptReads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "surveybot_store_corrupt_reads_total",
		Help: "Reads whose content was treated as corrupt",
	})

	// SkippedBlocks counts malformed response log blocks ignored by the parser.
	SkippedBlocks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "surveybot_responselog_skipped_blocks_total",
		Help: "Malformed response log blocks skipped by reason",
	}, []string{"reason"})

	// RateLimited counts actions rejected by the rate limiter.
	RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "surveybot_rate_limited_total",
		Help: "Actions rejected by the rate limiter by class",
	}, []string{"class"})

	// SessionsStarted counts survey sessions started.
	SessionsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "surveybot_sessions_started_total",
		Help: "Survey sessions started",
	})

	// SessionsCompleted counts survey sessions whose record was persisted.
	SessionsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "surveybot_sessions_completed_total",
		Help: "Survey sessions completed and persisted",
	})
)

// Result maps an error to the "result" label value.
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
