package observability

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RepositoryCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "repository_calls_total",
			Help: "Total number of repository method calls",
		},
		[]string{"method", "status"},
	)

	RepositoryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "repository_duration_seconds",
			Help:    "Duration of repository method calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// Payments applied to credits, by credit type, payment kind and resulting status.
	PaymentsApplied = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_payments_applied_total",
			Help: "Total number of credit payments applied",
		},
		[]string{"credit_type", "kind", "status"},
	)

	ReconcileFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_reconcile_failures_total",
			Help: "Total number of rejected or failed ledger operations",
		},
		[]string{"operation", "kind"},
	)

	EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_events_published_total",
			Help: "Total number of ledger events sent to the broker",
		},
		[]string{"type", "status"},
	)
)

func InitMetrics(addr string) {
	prometheus.MustRegister(RepositoryCalls, RepositoryDuration, PaymentsApplied, ReconcileFailures, EventsPublished)
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
			slog.Error("metrics server failed", "addr", addr, "error", err)
		}
	}()
}
