package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rios0rios0/scmbridge/internal/domain/commands"
	"github.com/rios0rios0/scmbridge/internal/domain/entities"
)

const namespace = "scmbridge"

// SCMMetrics exports the state of an SCM service as Prometheus metrics.
type SCMMetrics struct {
	registry *prometheus.Registry

	repositories     prometheus.Gauge
	selected         prometheus.Gauge
	added            *prometheus.CounterVec
	removed          *prometheus.CounterVec
	selectionChanges prometheus.Counter
	statusBarUpserts *prometheus.CounterVec
}

// NewSCMMetrics creates the collectors on a fresh registry.
func NewSCMMetrics() *SCMMetrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &SCMMetrics{
		registry: registry,
		repositories: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "repositories",
			Help:      "Number of registered SCM repositories",
		}),
		selected: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "selected_repositories",
			Help:      "Number of selected SCM repositories",
		}),
		added: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "repositories_added_total",
			Help:      "Total number of SCM repositories registered",
		}, []string{"provider"}),
		removed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "repositories_removed_total",
			Help:      "Total number of SCM repositories removed",
		}, []string{"provider"}),
		selectionChanges: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "selection_changes_total",
			Help:      "Total number of published selection changes",
		}),
		statusBarUpserts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_bar_updates_total",
			Help:      "Total number of status bar entries created or replaced",
		}, []string{"command"}),
	}
}

// Registry returns the registry the collectors live in.
func (m *SCMMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Observe keeps the metrics in step with service until the returned
// Disposable is disposed.
func (m *SCMMetrics) Observe(service commands.SCM) entities.Disposable {
	m.repositories.Set(float64(len(service.Repositories())))
	m.selected.Set(float64(len(service.SelectedRepositories())))

	subscriptions := []entities.Disposable{
		service.OnDidAddRepository()(func(repository *commands.SCMRepository) {
			m.added.WithLabelValues(repository.Provider().ID()).Inc()
			m.repositories.Set(float64(len(service.Repositories())))
		}),
		service.OnDidRemoveRepository()(func(repository *commands.SCMRepository) {
			m.removed.WithLabelValues(repository.Provider().ID()).Inc()
			m.repositories.Set(float64(len(service.Repositories())))
		}),
		service.OnDidChangeSelectedRepositories()(func(selected []*commands.SCMRepository) {
			m.selectionChanges.Inc()
			m.selected.Set(float64(len(selected)))
		}),
	}

	return entities.DisposableFunc(func() {
		for _, subscription := range subscriptions {
			subscription.Dispose()
		}
	})
}

// CountStatusBarUpdate records one status-bar upsert for command id.
func (m *SCMMetrics) CountStatusBarUpdate(id string) {
	m.statusBarUpserts.WithLabelValues(id).Inc()
}
