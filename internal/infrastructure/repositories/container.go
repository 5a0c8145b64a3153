package repositories

import (
	"github.com/rios0rios0/scmbridge/config"
	domainRepos "github.com/rios0rios0/scmbridge/internal/domain/repositories"
	"github.com/rios0rios0/scmbridge/internal/infrastructure/repositories/memory"
	"github.com/rios0rios0/scmbridge/internal/infrastructure/repositories/static"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register provider registry with all provider factories
	if err := container.Provide(func() *ProviderRegistry {
		reg := NewProviderRegistry()
		reg.Register(config.KindStatic, static.NewProviderRepository)
		return reg
	}); err != nil {
		return err
	}

	// Register the in-memory host status bar
	if err := container.Provide(memory.NewStatusBarRepository); err != nil {
		return err
	}
	if err := container.Provide(func(impl *memory.StatusBarRepository) domainRepos.StatusBarRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
