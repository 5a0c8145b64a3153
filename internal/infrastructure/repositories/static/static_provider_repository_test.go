//go:build unit

package static_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/scmbridge/config"
	"github.com/rios0rios0/scmbridge/internal/domain/entities"
	"github.com/rios0rios0/scmbridge/internal/domain/repositories"
	"github.com/rios0rios0/scmbridge/internal/infrastructure/repositories/static"
	"github.com/rios0rios0/scmbridge/test/domain/entitybuilders"
)

func newStaticProvider(t *testing.T, cfg config.ProviderConfig) *static.StaticProviderRepository {
	t.Helper()
	provider, ok := static.NewProviderRepository(cfg).(*static.StaticProviderRepository)
	require.True(t, ok)
	return provider
}

func TestNewProviderRepository(t *testing.T) {
	t.Parallel()

	t.Run("should expose the configured values", func(t *testing.T) {
		t.Parallel()

		// given
		count := 7
		accept := entitybuilders.NewCommandBuilder().WithID("git.commit").BuildCommand()
		cfg := config.ProviderConfig{
			ID:                 "git",
			Label:              "Git",
			ContextValue:       "git-repo",
			RootURI:            "file:///work",
			CommitTemplate:     "feat: ",
			Count:              &count,
			AcceptInputCommand: &accept,
		}

		// when
		provider := newStaticProvider(t, cfg)

		// then
		assert.Equal(t, "git", provider.ID())
		assert.Equal(t, "Git", provider.Label())
		assert.Equal(t, "git-repo", provider.ContextValue())
		assert.Equal(t, "file:///work", provider.RootURI())
		assert.Equal(t, "feat: ", provider.CommitTemplate())
		value, ok := provider.Count()
		assert.True(t, ok)
		assert.Equal(t, 7, value)
		assert.Equal(t, &accept, provider.AcceptInputCommand())
	})

	t.Run("should report no count when none is configured", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := config.ProviderConfig{ID: "git"}

		// when
		provider := newStaticProvider(t, cfg)

		// then
		_, ok := provider.Count()
		assert.False(t, ok)
		assert.Nil(t, provider.AcceptInputCommand())
		assert.Empty(t, provider.StatusBarCommands())
	})

	t.Run("should not share state with the configuration", func(t *testing.T) {
		t.Parallel()

		// given
		count := 1
		cfg := config.ProviderConfig{
			ID:                "git",
			Count:             &count,
			StatusBarCommands: []entities.Command{entitybuilders.NewCommandBuilder().BuildCommand()},
			Status: &entities.WorkingDirectoryStatus{
				Changes: []entities.FileChange{{URI: "a.go", Status: entities.FileStatusModified}},
			},
		}
		provider := newStaticProvider(t, cfg)

		// when
		count = 2
		cfg.StatusBarCommands[0].Label = "changed"
		cfg.Status.Changes[0].URI = "b.go"

		// then
		value, _ := provider.Count()
		assert.Equal(t, 1, value)
		assert.Equal(t, "Sync", provider.StatusBarCommands()[0].Label)
		assert.Equal(t, "a.go", provider.WorkingDirectoryStatus().Changes[0].URI)
	})
}

func TestStaticProviderRepositorySetters(t *testing.T) {
	t.Parallel()

	t.Run("should announce replaced status bar commands", func(t *testing.T) {
		t.Parallel()

		// given
		provider := newStaticProvider(t, config.ProviderConfig{ID: "git"})
		var announced [][]entities.Command
		changes := 0
		provider.OnDidChangeStatusBarCommands()(func(commands []entities.Command) {
			announced = append(announced, commands)
		})
		provider.OnDidChange()(func(struct{}) { changes++ })
		command := entitybuilders.NewCommandBuilder().WithID("git.push").BuildCommand()

		// when
		provider.SetStatusBarCommands([]entities.Command{command})

		// then
		assert.Equal(t, [][]entities.Command{{command}}, announced)
		assert.Equal(t, []entities.Command{command}, provider.StatusBarCommands())
		assert.Equal(t, 1, changes)
	})

	t.Run("should announce a replaced commit template", func(t *testing.T) {
		t.Parallel()

		// given
		provider := newStaticProvider(t, config.ProviderConfig{ID: "git"})
		var templates []string
		provider.OnDidChangeCommitTemplate()(func(template string) { templates = append(templates, template) })

		// when
		provider.SetCommitTemplate("chore: ")

		// then
		assert.Equal(t, []string{"chore: "}, templates)
		assert.Equal(t, "chore: ", provider.CommitTemplate())
	})

	t.Run("should ignore setters after dispose", func(t *testing.T) {
		t.Parallel()

		// given
		provider := newStaticProvider(t, config.ProviderConfig{ID: "git", CommitTemplate: "feat: "})
		notified := false
		provider.OnDidChangeCommitTemplate()(func(string) { notified = true })
		provider.Dispose()

		// when
		provider.SetCommitTemplate("fix: ")
		provider.SetStatusBarCommands([]entities.Command{entitybuilders.NewCommandBuilder().BuildCommand()})
		provider.Dispose()

		// then
		assert.False(t, notified)
		assert.Equal(t, "feat: ", provider.CommitTemplate())
		assert.Empty(t, provider.StatusBarCommands())
	})

	t.Run("should implement every optional capability", func(t *testing.T) {
		t.Parallel()

		// given
		var provider repositories.ProviderRepository = newStaticProvider(t, config.ProviderConfig{ID: "git"})

		// when
		_, notifies := provider.(repositories.StatusBarCommandsNotifier)
		_, reports := provider.(repositories.WorkingDirectoryStatusReporter)

		// then
		assert.True(t, notifies)
		assert.True(t, reports)
	})
}
