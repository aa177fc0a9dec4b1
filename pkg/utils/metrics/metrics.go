package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "octosched"

// Result label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	registry = prometheus.NewRegistry()

	// Reconciliations counts reconciliation passes by trigger and result.
	Reconciliations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reconciliations_total",
		Help:      "Number of installation reconciliation passes.",
	}, []string{"trigger", "result"})

	// RepositoryChanges counts repository rows written by kind (added, updated, removed).
	RepositoryChanges = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "repository_changes_total",
		Help:      "Number of repository records changed by reconciliation.",
	}, []string{"kind"})

	// ScheduleOperations counts scheduler calls by operation and result.
	ScheduleOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "schedule_operations_total",
		Help:      "Number of job scheduler operations.",
	}, []string{"operation", "result"})

	// FullSyncInstallations counts installations processed by the full-sync sweep.
	FullSyncInstallations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "full_sync_installations_total",
		Help:      "Number of installations processed by full sync.",
	}, []string{"result"})

	// JobsProcessed counts repository jobs executed by queue workers.
	JobsProcessed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_processed_total",
		Help:      "Number of repository jobs executed.",
	}, []string{"result"})
)

func init() {
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		Reconciliations,
		RepositoryChanges,
		ScheduleOperations,
		FullSyncInstallations,
		JobsProcessed,
	)
}

func Result(err error) string {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}

// Handler serves the Prometheus exposition of all metrics above.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
