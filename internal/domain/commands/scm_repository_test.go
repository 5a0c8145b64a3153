//go:build unit

package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/scmbridge/internal/domain/commands"
	"github.com/rios0rios0/scmbridge/internal/domain/entities"
	doubles "github.com/rios0rios0/scmbridge/test/infrastructure/repositorydoubles"
)

func TestSCMRepository(t *testing.T) {
	t.Parallel()

	t.Run("should start unselected with an empty visible input", func(t *testing.T) {
		t.Parallel()

		// given
		provider := doubles.NewSpyProviderRepository("git")

		// when
		repository := commands.NewSCMRepository(provider, nil)

		// then
		assert.Same(t, provider, repository.Provider())
		assert.False(t, repository.Selected())
		assert.Empty(t, repository.Input().Value())
		assert.True(t, repository.Input().Visible())
	})

	t.Run("should notify on every SetSelected call", func(t *testing.T) {
		t.Parallel()

		// given
		repository := commands.NewSCMRepository(doubles.NewSpyProviderRepository("git"), nil)
		var received []bool
		repository.OnDidChangeSelection()(func(selected bool) { received = append(received, selected) })

		// when
		repository.SetSelected(false)
		repository.SetSelected(true)
		repository.SetSelected(true)

		// then
		assert.Equal(t, []bool{false, true, true}, received)
		assert.True(t, repository.Selected())
	})

	t.Run("should notify focus listeners", func(t *testing.T) {
		t.Parallel()

		// given
		repository := commands.NewSCMRepository(doubles.NewSpyProviderRepository("git"), nil)
		focused := 0
		repository.OnDidFocus()(func(struct{}) { focused++ })

		// when
		repository.Focus()

		// then
		assert.Equal(t, 1, focused)
	})

	t.Run("should run the teardown before disposing the provider", func(t *testing.T) {
		t.Parallel()

		// given
		var order []string
		provider := doubles.NewSpyProviderRepository("git")
		provider.OnDispose = func() { order = append(order, "provider") }
		teardown := entities.DisposableFunc(func() { order = append(order, "teardown") })
		repository := commands.NewSCMRepository(provider, teardown)

		// when
		repository.Dispose()

		// then
		assert.Equal(t, []string{"teardown", "provider"}, order)
		assert.Equal(t, 1, provider.DisposeCount)
	})
}
