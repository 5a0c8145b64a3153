//go:build unit

package metrics_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/scmbridge/internal/domain/commands"
	"github.com/rios0rios0/scmbridge/internal/infrastructure/metrics"
	doubles "github.com/rios0rios0/scmbridge/test/infrastructure/repositorydoubles"
)

func TestSCMMetricsObserve(t *testing.T) {
	t.Parallel()

	t.Run("should follow registrations, removals and selection changes", func(t *testing.T) {
		t.Parallel()

		// given
		service := commands.NewSCMService()
		scmMetrics := metrics.NewSCMMetrics()
		scmMetrics.Observe(service)

		// when
		first := service.RegisterSCMProvider(doubles.NewSpyProviderRepository("git"))
		second := service.RegisterSCMProvider(doubles.NewSpyProviderRepository("hg"))
		second.SetSelected(true)
		first.Dispose()

		// then
		expected := `
# HELP scmbridge_repositories Number of registered SCM repositories
# TYPE scmbridge_repositories gauge
scmbridge_repositories 1
# HELP scmbridge_selected_repositories Number of selected SCM repositories
# TYPE scmbridge_selected_repositories gauge
scmbridge_selected_repositories 1
# HELP scmbridge_repositories_added_total Total number of SCM repositories registered
# TYPE scmbridge_repositories_added_total counter
scmbridge_repositories_added_total{provider="git"} 1
scmbridge_repositories_added_total{provider="hg"} 1
# HELP scmbridge_repositories_removed_total Total number of SCM repositories removed
# TYPE scmbridge_repositories_removed_total counter
scmbridge_repositories_removed_total{provider="git"} 1
# HELP scmbridge_selection_changes_total Total number of published selection changes
# TYPE scmbridge_selection_changes_total counter
scmbridge_selection_changes_total 3
`
		err := testutil.GatherAndCompare(scmMetrics.Registry(), strings.NewReader(expected),
			"scmbridge_repositories",
			"scmbridge_selected_repositories",
			"scmbridge_repositories_added_total",
			"scmbridge_repositories_removed_total",
			"scmbridge_selection_changes_total",
		)
		require.NoError(t, err)
	})

	t.Run("should stop following the service once disposed", func(t *testing.T) {
		t.Parallel()

		// given
		service := commands.NewSCMService()
		scmMetrics := metrics.NewSCMMetrics()
		observation := scmMetrics.Observe(service)
		observation.Dispose()

		// when
		service.RegisterSCMProvider(doubles.NewSpyProviderRepository("git"))

		// then
		count, err := testutil.GatherAndCount(scmMetrics.Registry(), "scmbridge_repositories_added_total")
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestSCMMetricsCountStatusBarUpdate(t *testing.T) {
	t.Parallel()

	t.Run("should count upserts per command", func(t *testing.T) {
		t.Parallel()

		// given
		scmMetrics := metrics.NewSCMMetrics()

		// when
		scmMetrics.CountStatusBarUpdate("git.sync")
		scmMetrics.CountStatusBarUpdate("git.sync")
		scmMetrics.CountStatusBarUpdate("git.pull")

		// then
		count, err := testutil.GatherAndCount(scmMetrics.Registry(), "scmbridge_status_bar_updates_total")
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}
