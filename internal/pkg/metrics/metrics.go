// Package metrics exposes Prometheus metrics for the planning computations
// and the HTTP surface.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the application's own prometheus registry; the default global
// registry stays untouched.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// ComputationsTotal counts planning computations by kind
// (conflicts, reassignments, monthly_plan, client_balance, worker_balance).
var ComputationsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "planning",
	Name:      "computations_total",
	Help:      "Total planning computations by kind",
}, []string{"kind"})

// ComputationDurationSeconds tracks how long each computation kind takes.
var ComputationDurationSeconds = factory.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "planning",
	Name:      "computation_duration_seconds",
	Help:      "Time taken per planning computation",
	Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
}, []string{"kind"})

// ConflictsFound counts conflicts surfaced per detector run, by type.
var ConflictsFound = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "planning",
	Name:      "conflicts_found_total",
	Help:      "Conflicts surfaced by the detector, by conflict type",
}, []string{"type"})

// UnresolvedServicesTotal counts festive-day services no holiday/weekend
// worker could absorb. A growing value means coverage gaps.
var UnresolvedServicesTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "planning",
	Name:      "unresolved_services_total",
	Help:      "Festive-day services with no holiday/weekend worker available",
})

// HolidayLookupsTotal counts calendar provider lookups by outcome
// (ok, error, cache_hit, cache_miss).
var HolidayLookupsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "calendar",
	Name:      "holiday_lookups_total",
	Help:      "Holiday calendar lookups by outcome",
}, []string{"outcome"})

// SnapshotRunsTotal counts monthly balance snapshot job executions by result.
var SnapshotRunsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "snapshot",
	Name:      "runs_total",
	Help:      "Monthly balance snapshot job runs by result",
}, []string{"result"})
